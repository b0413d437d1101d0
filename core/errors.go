package core

import "fmt"

// DuplicateDayError reports a snapshot whose sparse daily list contains the
// same calendar day twice. This is malformed input and aborts expansion of
// the affected snapshot.
type DuplicateDayError struct {
	Repo string
	Date string
}

func (e *DuplicateDayError) Error() string {
	return fmt.Sprintf("duplicate day %s in sparse daily list for %s", e.Date, e.Repo)
}

// ReconciliationConflictError reports two snapshots that disagree on the
// traffic recorded for the same day. The API returned contradictory history,
// which is a correctness violation the engine refuses to paper over.
type ReconciliationConflictError struct {
	Repo   string
	Metric string
	Date   string
	First  [2]int // count, uniques from the first observation
	Second [2]int // count, uniques from the conflicting observation
}

func (e *ReconciliationConflictError) Error() string {
	return fmt.Sprintf("reconciliation conflict for %s %s on %s: (%d,%d) vs (%d,%d)",
		e.Repo, e.Metric, e.Date, e.First[0], e.First[1], e.Second[0], e.Second[1])
}

// MetricAlignmentError reports reconciled clones and views series whose date
// sets differ. Both metrics are drawn from the same snapshots with the same
// window expansion, so their date sets must always match.
type MetricAlignmentError struct {
	Repo       string
	ClonesDays int
	ViewsDays  int
}

func (e *MetricAlignmentError) Error() string {
	return fmt.Sprintf("clones and views date sets differ for %s: %d vs %d days",
		e.Repo, e.ClonesDays, e.ViewsDays)
}

// AlignmentError reports point-metric timestamp sequences that diverge across
// metrics. All three point metrics come from the same snapshot objects, so
// divergence signals an upstream data-model violation.
type AlignmentError struct {
	Repo    string
	Metrics [2]string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("point timestamp sequences diverge for %s: %s vs %s",
		e.Repo, e.Metrics[0], e.Metrics[1])
}

// WindowGapError reports a snapshot whose earliest reported day falls outside
// the expected trailing-window distance of its fetch time.
type WindowGapError struct {
	Repo    string
	GapDays float64
}

func (e *WindowGapError) Error() string {
	return fmt.Sprintf("window gap of %.3f days for %s is outside [0, %d)",
		e.GapDays, e.Repo, WindowDays)
}
