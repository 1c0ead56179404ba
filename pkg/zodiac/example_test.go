package zodiac_test

import (
	"fmt"

	"github.com/matzehuels/kundali/pkg/zodiac"
)

func ExampleLocate() {
	pos := zodiac.Locate(35.5)
	fmt.Println(pos.RashiName, pos.RashiLord)
	fmt.Println(pos.NakshatraName, pos.NakshatraLord, pos.Pada, pos.PadaAlphabet)
	fmt.Println(zodiac.FormatDMS(zodiac.DegreeInSign(pos.Longitude)))
	fmt.Println(zodiac.RashiName(zodiac.Navamsa(pos.Longitude)))
	// Output:
	// Taurus Venus
	// Krittika Sun 3 U
	// 5°30′00″
	// Aquarius
}
