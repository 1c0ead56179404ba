package kp_test

import (
	"fmt"

	"github.com/matzehuels/kundali/pkg/kp"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

func ExampleResolveSubSubLord() {
	// One degree into Ashwini falls in the Venus sub of the Ketu star.
	sub := kp.ResolveSubLord(1)
	subsub := kp.ResolveSubSubLord(1)
	fmt.Println(sub.Lord, zodiac.FormatDMS(sub.AbsStart()), zodiac.FormatDMS(sub.AbsEnd()))
	fmt.Println(subsub.Lord, zodiac.FormatDMS(subsub.AbsStart()), zodiac.FormatDMS(subsub.AbsEnd()))
	// Output:
	// Venus 0°46′40″ 3°00′00″
	// Venus 0°46′40″ 1°08′53″
}
