package graha

import "strings"

// Status is the resolution state of a [Lord].
type Status int

const (
	// StatusMissing means no lord applies (rendered "N/A").
	StatusMissing Status = iota
	// StatusResolved means the lookup produced a planet.
	StatusResolved
	// StatusError means a lookup table had a gap (rendered "Error: ...").
	StatusError
)

// Lord is the result of a lord lookup: a planet, a soft "not applicable", or
// a hard table gap. The zero value is a missing lord.
type Lord struct {
	planet Planet
	status Status
	reason string
}

// Resolved wraps a known planet.
func Resolved(p Planet) Lord {
	if !p.Valid() {
		return Failed("invalid planet")
	}
	return Lord{planet: p, status: StatusResolved}
}

// Missing returns a lord for data that is legitimately unavailable.
func Missing(reason string) Lord {
	return Lord{status: StatusMissing, reason: reason}
}

// Failed returns a lord for a lookup-table gap.
func Failed(reason string) Lord {
	return Lord{status: StatusError, reason: reason}
}

// Planet returns the resolved planet. ok is false for missing or failed
// lords; the returned planet must not be used in that case.
func (l Lord) Planet() (p Planet, ok bool) {
	if l.status != StatusResolved {
		return 0, false
	}
	return l.planet, true
}

// Status returns the resolution state.
func (l Lord) Status() Status { return l.status }

// Reason explains a missing or failed lord.
func (l Lord) Reason() string { return l.reason }

// IsResolved reports whether the lord names a planet.
func (l Lord) IsResolved() bool { return l.Status() == StatusResolved }

// IsError reports whether the lord is a table-gap sentinel.
func (l Lord) IsError() bool { return l.status == StatusError }

// Is reports whether the lord resolved to p.
func (l Lord) Is(p Planet) bool {
	got, ok := l.Planet()
	return ok && got == p
}

// String renders the lord for reports.
func (l Lord) String() string {
	switch l.Status() {
	case StatusResolved:
		return l.planet.String()
	case StatusError:
		if l.reason == "" {
			return "Error"
		}
		return "Error: " + l.reason
	default:
		return "N/A"
	}
}

// MarshalText renders the lord the same way as String.
func (l Lord) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes the String form. A missing lord's reason does not
// survive the round trip.
func (l *Lord) UnmarshalText(b []byte) error {
	s := string(b)
	switch {
	case s == "N/A" || s == "":
		*l = Missing("")
	case s == "Error":
		*l = Failed("")
	case strings.HasPrefix(s, "Error: "):
		*l = Failed(strings.TrimPrefix(s, "Error: "))
	default:
		p, err := ParsePlanet(s)
		if err != nil {
			return err
		}
		*l = Resolved(p)
	}
	return nil
}
