package zodiac

import "testing"

func TestTableIndices(t *testing.T) {
	for i, r := range Rashis {
		if r.Index != i {
			t.Errorf("Rashis[%d].Index = %d, want %d (%s)", i, r.Index, i, r.Name)
		}
	}
	for i, n := range Nakshatras {
		if n.Index != i {
			t.Errorf("Nakshatras[%d].Index = %d, want %d (%s)", i, n.Index, i, n.Name)
		}
	}
}
