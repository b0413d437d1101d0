package core

import (
	"testing"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileIdempotent(t *testing.T) {
	sparse := []schema.TrafficDay{{Date: "2024-03-12", Count: 7, Uniques: 4}}
	expanded, err := ExpandWindow("acme/widget", sparse, fetchAt(t, "2024-03-20"), WindowDays)
	require.NoError(t, err)

	// Observing the same window twice must change nothing.
	merged, err := Reconcile("acme/widget", "clones", [][]schema.TrafficDay{expanded, expanded})
	require.NoError(t, err)
	assert.Equal(t, expanded, merged)
}

func TestReconcileCommutative(t *testing.T) {
	first, err := ExpandWindow("acme/widget",
		[]schema.TrafficDay{{Date: "2024-03-10", Count: 5, Uniques: 2}},
		fetchAt(t, "2024-03-20"), WindowDays)
	require.NoError(t, err)
	second, err := ExpandWindow("acme/widget",
		[]schema.TrafficDay{{Date: "2024-03-20", Count: 9, Uniques: 3}},
		fetchAt(t, "2024-03-27"), WindowDays)
	require.NoError(t, err)

	forward, err := Reconcile("acme/widget", "clones", [][]schema.TrafficDay{first, second})
	require.NoError(t, err)
	reverse, err := Reconcile("acme/widget", "clones", [][]schema.TrafficDay{second, first})
	require.NoError(t, err)

	assert.Equal(t, forward, reverse)
}

func TestReconcileUnionSorted(t *testing.T) {
	first, err := ExpandWindow("acme/widget", nil, fetchAt(t, "2024-03-20"), WindowDays)
	require.NoError(t, err)
	second, err := ExpandWindow("acme/widget", nil, fetchAt(t, "2024-03-27"), WindowDays)
	require.NoError(t, err)

	merged, err := Reconcile("acme/widget", "views", [][]schema.TrafficDay{first, second})
	require.NoError(t, err)

	// Union of [03-08, 03-18] and [03-15, 03-25] is 18 consecutive days.
	require.Len(t, merged, 18)
	assert.Equal(t, "2024-03-08", merged[0].Date)
	assert.Equal(t, "2024-03-25", merged[len(merged)-1].Date)
	for i := 1; i < len(merged); i++ {
		assert.Less(t, merged[i-1].Date, merged[i].Date)
	}
}

func TestReconcileConflict(t *testing.T) {
	// Both snapshots cover 2024-03-15: the first reports traffic, the second
	// omits the day and therefore zero-fills it. That is contradictory
	// history and must never be silently resolved.
	first, err := ExpandWindow("acme/widget",
		[]schema.TrafficDay{{Date: "2024-03-15", Count: 5, Uniques: 2}},
		fetchAt(t, "2024-03-20"), WindowDays)
	require.NoError(t, err)
	second, err := ExpandWindow("acme/widget", nil, fetchAt(t, "2024-03-21"), WindowDays)
	require.NoError(t, err)

	_, err = Reconcile("acme/widget", "clones", [][]schema.TrafficDay{first, second})

	var conflict *ReconciliationConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "acme/widget", conflict.Repo)
	assert.Equal(t, "clones", conflict.Metric)
	assert.Equal(t, "2024-03-15", conflict.Date)
	assert.Equal(t, [2]int{5, 2}, conflict.First)
	assert.Equal(t, [2]int{0, 0}, conflict.Second)
}

func TestReconcileEmptyInput(t *testing.T) {
	merged, err := Reconcile("acme/widget", "clones", nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}
