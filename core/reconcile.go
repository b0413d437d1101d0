package core

import (
	"sort"

	"github.com/gitpulse/gitpulse/schema"
)

// Reconcile merges the expanded daily sequences from all snapshots of one
// repository and one metric into a single canonical series spanning the union
// of observed days, sorted chronologically.
//
// For each day the first observation wins; every later observation of the
// same day must agree exactly, otherwise a *ReconciliationConflictError is
// returned. The equality rule makes the merge order-insensitive: reconciling
// snapshots in any order yields the same canonical series.
func Reconcile(repo, metric string, windows [][]schema.TrafficDay) ([]schema.TrafficDay, error) {
	observed := make(map[string][2]int)
	for _, window := range windows {
		for _, day := range window {
			pair := [2]int{day.Count, day.Uniques}
			first, seen := observed[day.Date]
			if !seen {
				observed[day.Date] = pair
				continue
			}
			if first != pair {
				return nil, &ReconciliationConflictError{
					Repo:   repo,
					Metric: metric,
					Date:   day.Date,
					First:  first,
					Second: pair,
				}
			}
		}
	}

	dates := make([]string, 0, len(observed))
	for date := range observed {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]schema.TrafficDay, len(dates))
	for i, date := range dates {
		pair := observed[date]
		series[i] = schema.TrafficDay{Date: date, Count: pair[0], Uniques: pair[1]}
	}
	return series, nil
}

// ExpandAndReconcile runs window expansion over every snapshot for the given
// metric and reconciles the results into one canonical series.
func ExpandAndReconcile(repo, metric string, snaps []schema.Snapshot, pick func(*schema.Snapshot) *schema.TrafficWindow) ([]schema.TrafficDay, error) {
	windows := make([][]schema.TrafficDay, 0, len(snaps))
	for i := range snaps {
		expanded, err := ExpandWindow(repo, pick(&snaps[i]).Daily, snaps[i].Time, WindowDays)
		if err != nil {
			return nil, err
		}
		windows = append(windows, expanded)
	}
	return Reconcile(repo, metric, windows)
}
