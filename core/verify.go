package core

import (
	"fmt"
	"sort"

	"github.com/gitpulse/gitpulse/schema"
)

const secsPerDay = 24 * 60 * 60

// WindowGap is one snapshot's distance, in fractional days, between its fetch
// time and the earliest day reported in its sparse daily lists.
type WindowGap struct {
	Repo    string  `json:"repo"`
	GapDays float64 `json:"gap_days"`
}

// VerifyWindows audits the core assumption the window expander depends on:
// that the API's trailing window never reaches further back than WindowDays.
// It computes the gap for every snapshot, taking the minimum over the clones
// and views lists, and returns the distribution sorted by gap. If any gap
// falls outside [0, WindowDays), the distribution is returned together with
// a *WindowGapError for the worst offender.
//
// With traffic on every day the gaps cluster at 13-14 days (complete lists);
// with sparse traffic anywhere in 0-14 days (truncated lists).
func VerifyWindows(snaps []schema.Snapshot) ([]WindowGap, error) {
	gaps := make([]WindowGap, 0, len(snaps))
	for i := range snaps {
		gap, err := snapshotGap(&snaps[i])
		if err != nil {
			return nil, err
		}
		gaps = append(gaps, WindowGap{Repo: snaps[i].Repo, GapDays: gap})
	}

	sort.Slice(gaps, func(i, j int) bool { return gaps[i].GapDays < gaps[j].GapDays })

	if len(gaps) > 0 {
		if first := gaps[0]; first.GapDays < 0 {
			return gaps, &WindowGapError{Repo: first.Repo, GapDays: first.GapDays}
		}
		if last := gaps[len(gaps)-1]; last.GapDays >= WindowDays {
			return gaps, &WindowGapError{Repo: last.Repo, GapDays: last.GapDays}
		}
	}
	return gaps, nil
}

// snapshotGap computes one snapshot's gap in fractional days. The API emits
// daily lists oldest-first, so the first entry of each list is its earliest
// reported day.
func snapshotGap(snap *schema.Snapshot) (float64, error) {
	earliest := 0.0
	found := false
	for _, window := range []*schema.TrafficWindow{&snap.Clones, &snap.Views} {
		if len(window.Daily) == 0 {
			return 0, fmt.Errorf("snapshot for %s has an empty daily list", snap.Repo)
		}
		day, err := schema.ParseDay(window.Daily[0].Date)
		if err != nil {
			return 0, fmt.Errorf("snapshot for %s: %w", snap.Repo, err)
		}
		then := float64(day.Unix())
		if !found || then < earliest {
			earliest = then
			found = true
		}
	}
	return (snap.Time - earliest) / secsPerDay, nil
}
