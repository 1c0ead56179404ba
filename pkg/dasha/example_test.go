package dasha_test

import (
	"fmt"
	"time"

	"github.com/matzehuels/kundali/pkg/dasha"
)

func ExampleGenerate() {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	tree, err := dasha.Generate(0, birth, dasha.Options{Levels: 2, SpanYears: 30})
	if err != nil {
		fmt.Println(err)
		return
	}
	rows := dasha.Flatten(tree, dasha.FlattenOptions{})
	fmt.Println(len(rows), "rows")
	for _, r := range rows {
		if r.Level == dasha.Maha {
			fmt.Println(r.Lord, r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
		}
	}
	// Output:
	// 30 rows
	// Ketu 2000-01-01 2006-12-31
	// Venus 2006-12-31 2026-12-31
	// Sun 2026-12-31 2032-12-31
}
