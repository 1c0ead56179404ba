package dasha

import (
	"time"

	"github.com/matzehuels/kundali/pkg/graha"
)

// Row is one flattened period for report tables.
type Row struct {
	Level     Level        `json:"level"`
	Lord      graha.Planet `json:"lord"`
	Start     time.Time    `json:"start"`
	End       time.Time    `json:"end"`
	MahaLord  graha.Lord   `json:"maha_lord"`
	AntarLord graha.Lord   `json:"antar_lord"`
}

// FlattenOptions controls [Flatten].
type FlattenOptions struct {
	// FromBirth drops periods that end at or before birth and clips the
	// start of periods running at birth.
	FromBirth bool
	// MaxLevel limits the depth emitted; 0 emits every level.
	MaxLevel Level
}

// Flatten walks the tree depth-first and returns one row per period. Maha
// rows carry missing MahaLord/AntarLord; Antar rows carry MahaLord only.
func Flatten(t *Tree, opts FlattenOptions) []Row {
	if t == nil {
		return nil
	}
	var rows []Row
	var walk func(ps []*Period)
	walk = func(ps []*Period) {
		for _, p := range ps {
			if opts.MaxLevel > 0 && p.Level > opts.MaxLevel {
				return
			}
			if opts.FromBirth && !p.End.After(t.Birth) {
				continue
			}
			r := Row{
				Level:     p.Level,
				Lord:      p.Lord,
				Start:     p.Start,
				End:       p.End,
				MahaLord:  graha.Missing("maha level"),
				AntarLord: graha.Missing("maha or antar level"),
			}
			if len(p.ParentLords) >= 1 {
				r.MahaLord = graha.Resolved(p.ParentLords[0])
			}
			if len(p.ParentLords) >= 2 {
				r.AntarLord = graha.Resolved(p.ParentLords[1])
			}
			if opts.FromBirth && r.Start.Before(t.Birth) {
				r.Start = t.Birth
			}
			rows = append(rows, r)
			walk(p.Children)
		}
	}
	walk(t.Periods)
	return rows
}
