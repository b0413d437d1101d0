package schema

// DailySeries holds the canonical per-day traffic series for one repository.
// All slices are parallel and aligned by index; Dates is sorted chronologically
// and contains no duplicates.
type DailySeries struct {
	Dates   []string  `json:"dates"`   // Calendar days in YYYY-MM-DD form
	Times   []float64 `json:"times"`   // Local-noon Unix seconds per day, for a numeric axis
	Clones  []int     `json:"clones"`  // Clone counts per day
	Cloners []int     `json:"cloners"` // Unique cloners per day
	Views   []int     `json:"views"`   // View counts per day
	Viewers []int     `json:"viewers"` // Unique viewers per day
}

// PointSeries holds the point-in-time counters for one repository, one entry
// per snapshot, sorted by fetch time. All slices are parallel.
type PointSeries struct {
	Times    []float64 `json:"times"`
	Forks    []int     `json:"forks"`
	Stars    []int     `json:"stars"`
	Watchers []int     `json:"watchers"`
}

// ProcessedRepo is the final derived artifact for one repository. It is
// rebuilt from scratch on every processing run and holds no authority of its
// own; the raw snapshot log is always the source of truth.
type ProcessedRepo struct {
	Repo  string      `json:"repo"`
	Daily DailySeries `json:"daily"`
	Point PointSeries `json:"point"`
}

// Len returns the number of days in the daily series.
func (d *DailySeries) Len() int {
	return len(d.Dates)
}

// Len returns the number of snapshots in the point series.
func (p *PointSeries) Len() int {
	return len(p.Times)
}
