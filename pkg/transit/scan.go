package transit

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kundali/pkg/ephemeris"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/observability"
)

// DefaultStep is the coarse scan interval. The Moon, the fastest body,
// crosses a nakshatra in about a day and a sub-lord span in a few hours.
const DefaultStep = 2 * time.Hour

// Event is one refined classification change.
type Event struct {
	Body           graha.Planet   `json:"body"`
	Classification Classification `json:"-"`
	From           int            `json:"from"`
	To             int            `json:"to"`
	FromLabel      string         `json:"from_label"`
	ToLabel        string         `json:"to_label"`
	At             time.Time      `json:"at"`
}

// Scanner walks a time range over a provider looking for changes.
type Scanner struct {
	Provider   ephemeris.Provider
	Step       time.Duration
	Iterations int
	Logger     *log.Logger
}

// NewScanner returns a Scanner with default step and iterations.
func NewScanner(p ephemeris.Provider, logger *log.Logger) *Scanner {
	return &Scanner{
		Provider:   p,
		Step:       DefaultStep,
		Iterations: DefaultIterations,
		Logger:     logger,
	}
}

// Classifier returns the classifier of body under c backed by the scanner's
// provider.
func (s *Scanner) Classifier(body graha.Planet, c Classification) Classifier {
	return func(t time.Time) (int, error) {
		pos, err := s.Provider.Position(body, t)
		if err != nil {
			return -1, err
		}
		return c.Classify(pos.Longitude), nil
	}
}

// Changes reports every change of body's classification in [from, to].
// Each step whose endpoints differ is refined as an entry into the class at
// the step's end. Retrograde motion is handled naturally since only the
// endpoint classes matter. The scan stops early when ctx is cancelled.
func (s *Scanner) Changes(ctx context.Context, body graha.Planet, c Classification, from, to time.Time) ([]Event, error) {
	start := time.Now()
	observability.Transit().OnScanStart(ctx, body.String(), c.String())
	events, err := s.changes(ctx, body, c, from, to)
	observability.Transit().OnScanComplete(ctx, body.String(), c.String(), len(events), time.Since(start), err)
	return events, err
}

func (s *Scanner) changes(ctx context.Context, body graha.Planet, c Classification, from, to time.Time) ([]Event, error) {
	if s.Provider == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scanner has no provider")
	}
	if !to.After(from) {
		return nil, errors.New(errors.ErrCodeInvalidWindow, "scan end %s not after start %s",
			to.Format(time.RFC3339), from.Format(time.RFC3339))
	}
	if !s.Provider.Available(body) {
		return nil, errors.New(errors.ErrCodeNotFound, "%s has no %s positions", s.Provider.Name(), body)
	}
	step := s.Step
	if step <= 0 {
		step = DefaultStep
	}

	classify := s.Classifier(body, c)
	prevT := from
	prev, err := classify(prevT)
	if err != nil {
		return nil, err
	}

	var events []Event
	for prevT.Before(to) {
		if err := ctx.Err(); err != nil {
			return events, err
		}
		next := prevT.Add(step)
		if next.After(to) {
			next = to
		}
		cur, err := classify(next)
		if err != nil {
			return events, err
		}
		if cur != prev {
			at, err := Refine(prevT, next, cur, Entry, classify, s.Iterations)
			if err != nil {
				return events, err
			}
			ev := Event{
				Body:           body,
				Classification: c,
				From:           prev,
				To:             cur,
				FromLabel:      c.Label(prev),
				ToLabel:        c.Label(cur),
				At:             at,
			}
			if s.Logger != nil {
				s.Logger.Debug("transit change", "body", body, "from", ev.FromLabel, "to", ev.ToLabel, "at", at.Format(time.RFC3339))
			}
			events = append(events, ev)
		}
		prevT, prev = next, cur
	}
	return events, nil
}
