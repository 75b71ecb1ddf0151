package schedule

import "time"

// WeekWindow is a derived sequence of exactly 7 contiguous calendar days,
// anchored to a configurable week-start day. Days are midnight-normalized in
// the reference time's location.
type WeekWindow struct {
	days [7]time.Time
}

// NewWeekWindow computes the window containing ref: the first day is the most
// recent occurrence of weekStartsOn on or before ref.
func NewWeekWindow(ref time.Time, weekStartsOn time.Weekday) WeekWindow {
	day := StartOfDay(ref)
	offset := (int(day.Weekday()) - int(weekStartsOn) + 7) % 7
	anchor := day.AddDate(0, 0, -offset)

	var w WeekWindow
	for i := range w.days {
		w.days[i] = anchor.AddDate(0, 0, i)
	}
	return w
}

// Days returns the 7 days in ascending order.
func (w WeekWindow) Days() [7]time.Time {
	return w.days
}

// Start returns the window's anchor day.
func (w WeekWindow) Start() time.Time {
	return w.days[0]
}

// End returns the window's last day.
func (w WeekWindow) End() time.Time {
	return w.days[6]
}

// Shift moves the window by deltaWeeks in either direction. Shift(0) returns
// the window unchanged.
func (w WeekWindow) Shift(deltaWeeks int) WeekWindow {
	var shifted WeekWindow
	for i, d := range w.days {
		shifted.days[i] = d.AddDate(0, 0, deltaWeeks*7)
	}
	return shifted
}

// Equal reports whether both windows cover the same days.
func (w WeekWindow) Equal(other WeekWindow) bool {
	for i := range w.days {
		if !w.days[i].Equal(other.days[i]) {
			return false
		}
	}
	return true
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether both instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BucketByDay assigns each entry to the window day its interval STARTS on.
// A shift that runs past midnight is bucketed only under its start day; this
// matches the calendar behavior the schedule view has always had, so it is
// kept even though an overnight shift never shows on the day it ends.
func BucketByDay(w WeekWindow, entries []DayEntry) map[time.Time][]DayEntry {
	buckets := make(map[time.Time][]DayEntry, len(w.days))
	for _, day := range w.days {
		buckets[day] = nil
	}

	// Map keys compare location as well as instant, so each start is viewed
	// in the window's location before truncating. Without this an entry
	// carrying an offset zone lands on a key that never matches a window day.
	loc := w.days[0].Location()
	for _, e := range entries {
		day := StartOfDay(e.Interval.Start.In(loc))
		if _, ok := buckets[day]; ok {
			buckets[day] = append(buckets[day], e)
		}
	}

	return buckets
}
