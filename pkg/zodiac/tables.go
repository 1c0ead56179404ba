package zodiac

import "github.com/matzehuels/kundali/pkg/graha"

// Modality is a sign's quality (chara/sthira/dwiswabhava).
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

// String returns the modality name.
func (m Modality) String() string {
	switch m {
	case Movable:
		return "Movable"
	case Fixed:
		return "Fixed"
	default:
		return "Dual"
	}
}

// Rashi describes one zodiac sign.
type Rashi struct {
	Index    int
	Name     string
	Lord     graha.Planet
	Modality Modality
}

// Odd reports whether the sign is odd-numbered counting Aries as 1.
func (r Rashi) Odd() bool { return r.Index%2 == 0 }

// Rashis is the ordered sign table, Aries first.
var Rashis = [12]Rashi{
	{0, "Aries", graha.Mars, Movable},
	{1, "Taurus", graha.Venus, Fixed},
	{2, "Gemini", graha.Mercury, Dual},
	{3, "Cancer", graha.Moon, Movable},
	{4, "Leo", graha.Sun, Fixed},
	{5, "Virgo", graha.Mercury, Dual},
	{6, "Libra", graha.Venus, Movable},
	{7, "Scorpio", graha.Mars, Fixed},
	{8, "Sagittarius", graha.Jupiter, Dual},
	{9, "Capricorn", graha.Saturn, Movable},
	{10, "Aquarius", graha.Saturn, Fixed},
	{11, "Pisces", graha.Jupiter, Dual},
}

// MovableSigns lists the indices of the movable signs.
var MovableSigns = []int{0, 3, 6, 9}

// FixedSigns lists the indices of the fixed signs.
var FixedSigns = []int{1, 4, 7, 10}

// Nakshatra describes one lunar mansion.
type Nakshatra struct {
	Index int
	Name  string
	Padas [4]string // naming syllables, pada 1-4
}

// Lord returns the Vimshottari ruler of the nakshatra.
func (n Nakshatra) Lord() graha.Lord { return graha.NakshatraLord(n.Index) }

// Start returns the nakshatra's starting longitude.
func (n Nakshatra) Start() float64 { return float64(n.Index) * NakshatraSpan }

// Nakshatras is the ordered mansion table, Ashwini first.
var Nakshatras = [27]Nakshatra{
	{0, "Ashwini", [4]string{"Chu", "Che", "Cho", "La"}},
	{1, "Bharani", [4]string{"Li", "Lu", "Le", "Lo"}},
	{2, "Krittika", [4]string{"A", "I", "U", "E"}},
	{3, "Rohini", [4]string{"O", "Va", "Vi", "Vu"}},
	{4, "Mrigashira", [4]string{"Ve", "Vo", "Ka", "Ki"}},
	{5, "Ardra", [4]string{"Ku", "Gha", "Ng", "Chha"}},
	{6, "Punarvasu", [4]string{"Ke", "Ko", "Ha", "Hi"}},
	{7, "Pushya", [4]string{"Hu", "He", "Ho", "Da"}},
	{8, "Ashlesha", [4]string{"Di", "Du", "De", "Do"}},
	{9, "Magha", [4]string{"Ma", "Mi", "Mu", "Me"}},
	{10, "Purva Phalguni", [4]string{"Mo", "Ta", "Ti", "Tu"}},
	{11, "Uttara Phalguni", [4]string{"Te", "To", "Pa", "Pi"}},
	{12, "Hasta", [4]string{"Pu", "Sha", "Na", "Tha"}},
	{13, "Chitra", [4]string{"Pe", "Po", "Ra", "Ri"}},
	{14, "Swati", [4]string{"Ru", "Re", "Ro", "Ta"}},
	{15, "Vishakha", [4]string{"Ti", "Tu", "Te", "To"}},
	{16, "Anuradha", [4]string{"Na", "Ni", "Nu", "Ne"}},
	{17, "Jyeshtha", [4]string{"No", "Ya", "Yi", "Yu"}},
	{18, "Mula", [4]string{"Ye", "Yo", "Bha", "Bhi"}},
	{19, "Purva Ashadha", [4]string{"Bhu", "Dha", "Pha", "Dha"}},
	{20, "Uttara Ashadha", [4]string{"Bhe", "Bho", "Ja", "Ji"}},
	{21, "Shravana", [4]string{"Khi", "Khu", "Khe", "Kho"}},
	{22, "Dhanishta", [4]string{"Ga", "Gi", "Gu", "Ge"}},
	{23, "Shatabhisha", [4]string{"Go", "Sa", "Si", "Su"}},
	{24, "Purva Bhadrapada", [4]string{"Se", "So", "Da", "Di"}},
	{25, "Uttara Bhadrapada", [4]string{"Du", "Tha", "Jha", "Da"}},
	{26, "Revati", [4]string{"De", "Do", "Cha", "Chi"}},
}

// RashiLord returns the ruler of the sign at index.
func RashiLord(index int) graha.Lord {
	if index < 0 || index >= len(Rashis) {
		return graha.Failed("rashi index out of range")
	}
	return graha.Resolved(Rashis[index].Lord)
}

// RashiName returns the sign name at index, or "Unknown".
func RashiName(index int) string {
	if index < 0 || index >= len(Rashis) {
		return UnknownName
	}
	return Rashis[index].Name
}

// NakshatraName returns the mansion name at index, or "Unknown".
func NakshatraName(index int) string {
	if index < 0 || index >= len(Nakshatras) {
		return UnknownName
	}
	return Nakshatras[index].Name
}
