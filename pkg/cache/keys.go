package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Keyer generates cache keys.
type Keyer interface {
	// ReportKey identifies a chart report by the hash of its input.
	ReportKey(inputHash string, opts ReportKeyOpts) string

	// ArtifactKey identifies a rendering of a report.
	ArtifactKey(reportHash string, opts ArtifactKeyOpts) string
}

// ReportKeyOpts are the calculation options that change a report.
type ReportKeyOpts struct {
	DashaLevels int     `json:"dasha_levels"`
	SpanYears   float64 `json:"span_years"`
	YearDays    float64 `json:"year_days"`
	FromBirth   bool    `json:"from_birth"`
}

// ArtifactKeyOpts are the rendering options that change an artifact.
type ArtifactKeyOpts struct {
	Kind   string `json:"kind"`
	Format string `json:"format"`
}

// DefaultKeyer builds keys of the form "type:sha256(parts)".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ReportKey implements Keyer.
func (DefaultKeyer) ReportKey(inputHash string, opts ReportKeyOpts) string {
	return digestKey("report", inputHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(reportHash string, opts ArtifactKeyOpts) string {
	return digestKey("artifact:"+opts.Kind, reportHash, opts)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// digestKey joins kind and the digest of the JSON-encoded parts. The parts
// are plain strings and option structs, which always encode.
func digestKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}
