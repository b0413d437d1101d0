// Package core implements the snapshot reconciliation engine: window
// expansion, cross-snapshot reconciliation, point-series alignment and the
// trailing-window invariant audit.
package core

import (
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// WindowDays is the nominal length of the trailing window the traffic API can
// report, counted in calendar days rather than emitted entries.
const WindowDays = 14

// Window edge offsets, relative to the fetch date. The effective span is
// [fetchDate-windowStartOffset, fetchDate-windowEndOffset), which excludes
// the newest (still incomplete) day and the oldest edge of the nominal
// window. The exact span is preserved as observed from the API; see the
// boundary tests before changing either offset.
const (
	windowEndOffset = 1
)

func windowStartOffset(windowDays int) int {
	return windowDays - 2
}

// windowSpan computes the half-open day range [start, stop) covered by a
// snapshot fetched at the given Unix time.
func windowSpan(fetchTime float64, windowDays int) (start, stop time.Time) {
	t := time.Unix(int64(fetchTime), 0).Local()
	fetchDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	start = fetchDate.AddDate(0, 0, -windowStartOffset(windowDays))
	stop = fetchDate.AddDate(0, 0, -windowEndOffset)
	return start, stop
}

// dayLookup maps calendar days to observed (count, uniques) pairs and
// substitutes an explicit zero pair for days absent from the sparse input.
type dayLookup map[string][2]int

func (l dayLookup) get(date string) (count, uniques int) {
	pair, ok := l[date]
	if !ok {
		return 0, 0
	}
	return pair[0], pair[1]
}

// ExpandWindow reconstructs the dense daily sequence a snapshot's window
// logically covers, substituting zero entries for days the API dropped.
// The result is chronological, oldest first. The function is pure: it never
// mutates its input and the same inputs always produce the same output.
func ExpandWindow(repo string, daily []schema.TrafficDay, fetchTime float64, windowDays int) ([]schema.TrafficDay, error) {
	lookup := make(dayLookup, len(daily))
	for _, day := range daily {
		if _, seen := lookup[day.Date]; seen {
			return nil, &DuplicateDayError{Repo: repo, Date: day.Date}
		}
		lookup[day.Date] = [2]int{day.Count, day.Uniques}
	}

	start, stop := windowSpan(fetchTime, windowDays)
	var expanded []schema.TrafficDay
	for d := start; d.Before(stop); d = d.AddDate(0, 0, 1) {
		date := d.Format(schema.DayFormat)
		count, uniques := lookup.get(date)
		expanded = append(expanded, schema.TrafficDay{Date: date, Count: count, Uniques: uniques})
	}
	return expanded, nil
}
