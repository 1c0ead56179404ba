package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
)

// dateLayout is used for period boundaries in tables.
const dateLayout = "2006-01-02"

// noValue is shown for data that could not be computed.
const noValue = "—"

// formatValue renders v with prec decimals, or a dash when unknown.
func formatValue(v chart.Value, prec int) string {
	if !v.IsKnown() {
		return noValue
	}
	return strconv.FormatFloat(float64(v), 'f', prec, 64)
}

// formatHouses renders a house list as "1 4 7".
func formatHouses(hs []int) string {
	if len(hs) == 0 {
		return noValue
	}
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, " ")
}

// planetList renders planets as "Sun, Moon".
func planetList(ps []graha.Planet) string {
	if len(ps) == 0 {
		return noValue
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

// formatYears renders a duration as fractional years of yearDays days.
func formatYears(d time.Duration, yearDays float64) string {
	return fmt.Sprintf("%.2fy", d.Hours()/24/yearDays)
}

// planetFlags abbreviates retrograde, combust and vargottama as R C V.
func planetFlags(pr chart.PlanetReport) string {
	var b strings.Builder
	if pr.Retrograde {
		b.WriteString("R")
	}
	if pr.Combust {
		b.WriteString("C")
	}
	if pr.Vargottama {
		b.WriteString("V")
	}
	return b.String()
}

// parseTime accepts RFC 3339 timestamps and bare dates (UTC midnight).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errors.New(errors.ErrCodeInvalidInput, "invalid time %q (want YYYY-MM-DD or RFC 3339)", s)
	}
	return t, nil
}
