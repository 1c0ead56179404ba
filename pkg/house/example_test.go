package house_test

import (
	"fmt"

	"github.com/matzehuels/kundali/pkg/house"
)

func ExampleBadhak() {
	// A Leo ascendant is fixed, so the 9th house obstructs.
	h, ok := house.Badhak(123.4)
	fmt.Println(h, ok, house.BadhakLord(123.4))
	// Output:
	// 9 true Mars
}
