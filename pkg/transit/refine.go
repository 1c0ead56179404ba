package transit

import (
	"time"

	"github.com/matzehuels/kundali/pkg/errors"
)

// DefaultIterations narrows a 2-hour scan step to about 7 seconds.
const DefaultIterations = 10

// Direction selects which side of a boundary the target lies on.
type Direction int

const (
	// Entry searches for the moment the body moves into the target.
	Entry Direction = iota
	// Exit searches for the moment the body leaves the target.
	Exit
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Exit {
		return "exit"
	}
	return "entry"
}

// Classifier maps an instant to a discrete classification such as a
// nakshatra index.
type Classifier func(t time.Time) (int, error)

// Refine bisects [lo, hi] for the boundary of target. For Entry the window
// is expected to start outside target and end inside it; Exit is the
// reverse. After iterations halvings it returns the upper bound of the
// remaining window, clamped to [lo, hi]. Zero or negative iterations select
// [DefaultIterations].
func Refine(lo, hi time.Time, target int, dir Direction, classify Classifier, iterations int) (time.Time, error) {
	if hi.Before(lo) {
		return time.Time{}, errors.New(errors.ErrCodeInvalidWindow, "window end %s before start %s",
			hi.Format(time.RFC3339), lo.Format(time.RFC3339))
	}
	if classify == nil {
		return time.Time{}, errors.New(errors.ErrCodeInvalidInput, "classifier is required")
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	left, right := lo, hi
	for i := 0; i < iterations; i++ {
		mid := left.Add(right.Sub(left) / 2)
		c, err := classify(mid)
		if err != nil {
			return time.Time{}, errors.Wrap(errors.ErrCodeInternal, err, "classify %s", mid.Format(time.RFC3339))
		}
		inside := c == target
		if inside == (dir == Entry) {
			right = mid
		} else {
			left = mid
		}
	}

	switch {
	case right.Before(lo):
		return lo, nil
	case right.After(hi):
		return hi, nil
	}
	return right, nil
}
