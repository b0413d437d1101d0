package core

import "github.com/gitpulse/gitpulse/schema"

// pointStats extracts the per-snapshot fetch times and one point metric's
// values, in snapshot order. Colliding timestamps are kept as-is: each
// snapshot contributes exactly one entry.
func pointStats(snaps []schema.Snapshot, value func(*schema.Snapshot) int) (times []float64, values []int) {
	times = make([]float64, len(snaps))
	values = make([]int, len(snaps))
	for i := range snaps {
		times[i] = snaps[i].Time
		values[i] = value(&snaps[i])
	}
	return times, values
}

// AlignPoints collects the point-in-time counters from every snapshot of one
// repository into parallel sequences where position i in every output
// corresponds to snapshot i's fetch time. The timestamp sequences extracted
// independently per metric must be pairwise identical; a divergence is
// reported as an *AlignmentError since it means the snapshots themselves are
// inconsistent.
func AlignPoints(repo string, snaps []schema.Snapshot) (schema.PointSeries, error) {
	times, forks := pointStats(snaps, func(s *schema.Snapshot) int { return s.Forks })
	starTimes, stars := pointStats(snaps, func(s *schema.Snapshot) int { return s.Stars })
	watcherTimes, watchers := pointStats(snaps, func(s *schema.Snapshot) int { return s.Watchers })

	if !equalTimes(times, starTimes) {
		return schema.PointSeries{}, &AlignmentError{Repo: repo, Metrics: [2]string{"forks", "stars"}}
	}
	if !equalTimes(times, watcherTimes) {
		return schema.PointSeries{}, &AlignmentError{Repo: repo, Metrics: [2]string{"forks", "watchers"}}
	}

	return schema.PointSeries{
		Times:    times,
		Forks:    forks,
		Stars:    stars,
		Watchers: watchers,
	}, nil
}

func equalTimes(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
