package schedule

import (
	"testing"
	"time"
)

func TestNewWeekWindow(t *testing.T) {
	// 2024-06-05 is a Wednesday.
	ref := time.Date(2024, 6, 5, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		weekStartsOn time.Weekday
		wantStart    string
		wantEnd      string
	}{
		{time.Sunday, "2024-06-02", "2024-06-08"},
		{time.Monday, "2024-06-03", "2024-06-09"},
		{time.Wednesday, "2024-06-05", "2024-06-11"},
		{time.Thursday, "2024-05-30", "2024-06-05"},
	}
	for _, c := range cases {
		w := NewWeekWindow(ref, c.weekStartsOn)
		if got := w.Start().Format("2006-01-02"); got != c.wantStart {
			t.Errorf("weekStartsOn=%v: Start = %s, want %s", c.weekStartsOn, got, c.wantStart)
		}
		if got := w.End().Format("2006-01-02"); got != c.wantEnd {
			t.Errorf("weekStartsOn=%v: End = %s, want %s", c.weekStartsOn, got, c.wantEnd)
		}

		days := w.Days()
		for i := 1; i < len(days); i++ {
			if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
				t.Errorf("weekStartsOn=%v: days not contiguous at index %d", c.weekStartsOn, i)
			}
		}
		if days[0].Weekday() != c.weekStartsOn {
			t.Errorf("weekStartsOn=%v: first day is %v", c.weekStartsOn, days[0].Weekday())
		}
	}
}

func TestWeekWindowContainsReferenceDay(t *testing.T) {
	ref := time.Date(2024, 6, 5, 23, 59, 0, 0, time.UTC)
	w := NewWeekWindow(ref, time.Monday)

	found := false
	for _, d := range w.Days() {
		if SameDay(d, ref) {
			found = true
		}
	}
	if !found {
		t.Fatal("window does not contain its reference day")
	}
}

func TestWeekWindowShift(t *testing.T) {
	ref := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	w := NewWeekWindow(ref, time.Sunday)

	next := w.Shift(1)
	if got := next.Start().Format("2006-01-02"); got != "2024-06-09" {
		t.Errorf("Shift(1).Start = %s, want 2024-06-09", got)
	}

	prev := w.Shift(-2)
	if got := prev.Start().Format("2006-01-02"); got != "2024-05-19" {
		t.Errorf("Shift(-2).Start = %s, want 2024-05-19", got)
	}

	if !w.Shift(0).Equal(w) {
		t.Error("Shift(0) changed the window")
	}

	// Round trip returns to the original window.
	if !w.Shift(3).Shift(-3).Equal(w) {
		t.Error("Shift(3).Shift(-3) did not return to the original window")
	}
}

func TestBucketByDay(t *testing.T) {
	w := NewWeekWindow(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Monday)

	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	entries := []DayEntry{
		{Entry: Entry{ID: "morning", Interval: Interval{monday.Add(9 * time.Hour), monday.Add(17 * time.Hour)}}},
		{Entry: Entry{ID: "overnight", Interval: Interval{monday.Add(22 * time.Hour), monday.Add(30 * time.Hour)}}},
		{Entry: Entry{ID: "tuesday", Interval: Interval{monday.Add(33 * time.Hour), monday.Add(41 * time.Hour)}}},
		{Entry: Entry{ID: "outside", Interval: Interval{monday.AddDate(0, 0, 7), monday.AddDate(0, 0, 7).Add(8 * time.Hour)}}},
	}

	buckets := BucketByDay(w, entries)

	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}

	mondayIDs := ids(buckets[w.Days()[0]])
	if len(mondayIDs) != 2 || mondayIDs[0] != "morning" || mondayIDs[1] != "overnight" {
		t.Errorf("monday bucket = %v, want [morning overnight]", mondayIDs)
	}

	// The overnight shift ends on Tuesday but belongs to Monday only.
	tuesdayIDs := ids(buckets[w.Days()[1]])
	if len(tuesdayIDs) != 1 || tuesdayIDs[0] != "tuesday" {
		t.Errorf("tuesday bucket = %v, want [tuesday]", tuesdayIDs)
	}

	total := 0
	for _, day := range w.Days() {
		total += len(buckets[day])
	}
	if total != 3 {
		t.Errorf("window holds %d entries, want 3 (outside entry must be dropped)", total)
	}
}

func TestBucketByDayNormalizesLocations(t *testing.T) {
	w := NewWeekWindow(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Monday)

	// Monday 09:00 UTC expressed in an offset zone. The instant is inside
	// the window even though its wall clock carries a different location.
	zone := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2024, 6, 3, 11, 0, 0, 0, zone)
	entries := []DayEntry{
		{Entry: Entry{ID: "offset", Interval: Interval{start, start.Add(8 * time.Hour)}}},
	}

	buckets := BucketByDay(w, entries)

	mondayIDs := ids(buckets[w.Days()[0]])
	if len(mondayIDs) != 1 || mondayIDs[0] != "offset" {
		t.Errorf("monday bucket = %v, want [offset]", mondayIDs)
	}

	// A late-evening wall clock in a western zone is already the next UTC
	// day; it belongs to Tuesday's bucket.
	west := time.FixedZone("UTC-5", -5*60*60)
	lateStart := time.Date(2024, 6, 3, 20, 0, 0, 0, west) // 01:00 UTC Tuesday
	buckets = BucketByDay(w, []DayEntry{
		{Entry: Entry{ID: "late", Interval: Interval{lateStart, lateStart.Add(6 * time.Hour)}}},
	})

	tuesdayIDs := ids(buckets[w.Days()[1]])
	if len(tuesdayIDs) != 1 || tuesdayIDs[0] != "late" {
		t.Errorf("tuesday bucket = %v, want [late]", tuesdayIDs)
	}
}

func ids(entries []DayEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
