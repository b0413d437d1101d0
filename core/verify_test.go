package core

import (
	"testing"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trafficSince(date string) schema.TrafficWindow {
	return schema.TrafficWindow{Daily: []schema.TrafficDay{{Date: date, Count: 1, Uniques: 1}}}
}

func TestVerifyWindowsInRange(t *testing.T) {
	snaps := []schema.Snapshot{
		{
			Time:   fetchAt(t, "2024-03-20"),
			Repo:   "acme/widget",
			Clones: trafficSince("2024-03-08"),
			Views:  trafficSince("2024-03-10"),
		},
		{
			Time:   fetchAt(t, "2024-03-27"),
			Repo:   "acme/gadget",
			Clones: trafficSince("2024-03-26"),
			Views:  trafficSince("2024-03-26"),
		},
	}

	gaps, err := VerifyWindows(snaps)
	require.NoError(t, err)
	require.Len(t, gaps, 2)

	// Distribution is sorted ascending; the gap uses the earlier of the two
	// metrics' first days.
	assert.Equal(t, "acme/gadget", gaps[0].Repo)
	assert.InDelta(t, 1.5, gaps[0].GapDays, 0.05)
	assert.Equal(t, "acme/widget", gaps[1].Repo)
	assert.InDelta(t, 12.5, gaps[1].GapDays, 0.05)
}

func TestVerifyWindowsGapTooLarge(t *testing.T) {
	// Earliest reported day 20 days before the fetch breaks the trailing
	// window assumption.
	snaps := []schema.Snapshot{{
		Time:   fetchAt(t, "2024-03-28"),
		Repo:   "acme/widget",
		Clones: trafficSince("2024-03-08"),
		Views:  trafficSince("2024-03-20"),
	}}

	gaps, err := VerifyWindows(snaps)

	var gapErr *WindowGapError
	require.ErrorAs(t, err, &gapErr)
	assert.Equal(t, "acme/widget", gapErr.Repo)
	assert.GreaterOrEqual(t, gapErr.GapDays, float64(WindowDays))
	require.Len(t, gaps, 1, "distribution is still reported on failure")
}

func TestVerifyWindowsNegativeGap(t *testing.T) {
	// A reported day after the fetch time is just as broken as one too far
	// in the past.
	snaps := []schema.Snapshot{{
		Time:   fetchAt(t, "2024-03-20"),
		Repo:   "acme/widget",
		Clones: trafficSince("2024-03-25"),
		Views:  trafficSince("2024-03-25"),
	}}

	_, err := VerifyWindows(snaps)

	var gapErr *WindowGapError
	require.ErrorAs(t, err, &gapErr)
	assert.Negative(t, gapErr.GapDays)
}

func TestVerifyWindowsEmptyDailyList(t *testing.T) {
	snaps := []schema.Snapshot{{
		Time:  fetchAt(t, "2024-03-20"),
		Repo:  "acme/widget",
		Views: trafficSince("2024-03-10"),
	}}

	_, err := VerifyWindows(snaps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty daily list")
}

func TestVerifyWindowsNoSnapshots(t *testing.T) {
	gaps, err := VerifyWindows(nil)
	require.NoError(t, err)
	assert.Empty(t, gaps)
}
