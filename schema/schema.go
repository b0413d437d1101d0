// Package schema has configs, models and global variables for all parts of gitpulse.
package schema

// TrafficDay represents one day of windowed traffic for a single metric.
// The GitHub traffic API drops days with zero traffic, so a sparse list of
// TrafficDay entries never contains zero-count days.
type TrafficDay struct {
	Date    string `json:"date"`    // Calendar day in YYYY-MM-DD form
	Count   int    `json:"count"`   // Total events recorded on that day
	Uniques int    `json:"uniques"` // Unique actors recorded on that day
}

// TrafficWindow represents the trailing window of a single windowed metric
// (clones or views) as reported by one poll of the traffic API.
type TrafficWindow struct {
	Count   int          `json:"count"`   // Window-wide event total
	Uniques int          `json:"uniques"` // Window-wide unique actor total
	Daily   []TrafficDay `json:"daily"`   // Sparse daily entries, zero days omitted
}

// Snapshot holds one crawl's worth of raw observations for one repository.
// One Snapshot is appended to the raw log per repository per poll; once
// appended it is immutable.
type Snapshot struct {
	Time     float64       `json:"time"`     // Unix seconds of the poll, right edge of the window
	Repo     string        `json:"repo"`     // Full owner/name identifier, stable key
	Stars    int           `json:"stars"`    // Stargazer count at poll time
	Watchers int           `json:"watchers"` // Subscriber count at poll time
	Forks    int           `json:"forks"`    // Fork count at poll time
	Clones   TrafficWindow `json:"clones"`
	Views    TrafficWindow `json:"views"`
}
