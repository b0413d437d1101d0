package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gitpulse/gitpulse/schema"
)

// ProcessRepo builds the canonical processed record for one repository from
// its full history of snapshots. Any invariant violation aborts the record
// entirely; no partial record is ever emitted.
func ProcessRepo(repo string, snaps []schema.Snapshot) (*schema.ProcessedRepo, error) {
	// Order by fetch time so the point series comes out time-sorted. The
	// reconciliation merge itself is order-insensitive.
	ordered := make([]schema.Snapshot, len(snaps))
	copy(ordered, snaps)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Time < ordered[j].Time })

	clones, err := ExpandAndReconcile(repo, "clones", ordered, func(s *schema.Snapshot) *schema.TrafficWindow { return &s.Clones })
	if err != nil {
		return nil, err
	}
	views, err := ExpandAndReconcile(repo, "views", ordered, func(s *schema.Snapshot) *schema.TrafficWindow { return &s.Views })
	if err != nil {
		return nil, err
	}

	// Both metrics cover the same snapshots under the same window rule, so
	// their reconciled date sets must be identical.
	if !sameDates(clones, views) {
		return nil, &MetricAlignmentError{Repo: repo, ClonesDays: len(clones), ViewsDays: len(views)}
	}

	daily, err := buildDailySeries(clones, views)
	if err != nil {
		return nil, fmt.Errorf("daily series for %s: %w", repo, err)
	}

	point, err := AlignPoints(repo, ordered)
	if err != nil {
		return nil, err
	}

	return &schema.ProcessedRepo{Repo: repo, Daily: daily, Point: point}, nil
}

// ProcessAll processes every repository found in the given snapshots, in
// sorted repository order. A failing repository is skipped and reported in
// the joined error; it never prevents the remaining repositories from
// completing.
func ProcessAll(snaps []schema.Snapshot) ([]schema.ProcessedRepo, error) {
	byRepo := make(map[string][]schema.Snapshot)
	for _, s := range snaps {
		byRepo[s.Repo] = append(byRepo[s.Repo], s)
	}

	repos := make([]string, 0, len(byRepo))
	for repo := range byRepo {
		repos = append(repos, repo)
	}
	sort.Strings(repos)

	var (
		processed []schema.ProcessedRepo
		errs      []error
	)
	for _, repo := range repos {
		record, err := ProcessRepo(repo, byRepo[repo])
		if err != nil {
			errs = append(errs, fmt.Errorf("process %s: %w", repo, err))
			continue
		}
		processed = append(processed, *record)
	}
	return processed, errors.Join(errs...)
}

func sameDates(a, b []schema.TrafficDay) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Date != b[i].Date {
			return false
		}
	}
	return true
}

func buildDailySeries(clones, views []schema.TrafficDay) (schema.DailySeries, error) {
	daily := schema.DailySeries{
		Dates:   make([]string, len(clones)),
		Times:   make([]float64, len(clones)),
		Clones:  make([]int, len(clones)),
		Cloners: make([]int, len(clones)),
		Views:   make([]int, len(clones)),
		Viewers: make([]int, len(clones)),
	}
	for i := range clones {
		noon, err := schema.NoonTime(clones[i].Date)
		if err != nil {
			return schema.DailySeries{}, err
		}
		daily.Dates[i] = clones[i].Date
		daily.Times[i] = noon
		daily.Clones[i] = clones[i].Count
		daily.Cloners[i] = clones[i].Uniques
		daily.Views[i] = views[i].Count
		daily.Viewers[i] = views[i].Uniques
	}
	return daily, nil
}
