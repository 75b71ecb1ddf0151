package schedule

import "time"

// Interval is a half-open time span [Start, End). Values are immutable;
// corrections replace the whole interval.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval, rejecting zero-length and inverted spans.
func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share any instant. Intervals
// that only touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether t falls inside the interval (start inclusive,
// end exclusive).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
