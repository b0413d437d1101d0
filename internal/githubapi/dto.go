package githubapi

// repoResponse maps the repository metadata fields the fetch step needs.
type repoResponse struct {
	FullName         string `json:"full_name"`
	StargazersCount  int    `json:"stargazers_count"`
	SubscribersCount int    `json:"subscribers_count"`
	ForksCount       int    `json:"forks_count"`
}

// trafficEntry is one day of a traffic timeseries as reported by the API.
// The timestamp is RFC 3339; only its date part is kept.
type trafficEntry struct {
	Timestamp string `json:"timestamp"`
	Count     int    `json:"count"`
	Uniques   int    `json:"uniques"`
}

// clonesResponse maps GET /repos/{repo}/traffic/clones.
type clonesResponse struct {
	Count   int            `json:"count"`
	Uniques int            `json:"uniques"`
	Clones  []trafficEntry `json:"clones"`
}

// viewsResponse maps GET /repos/{repo}/traffic/views.
type viewsResponse struct {
	Count   int            `json:"count"`
	Uniques int            `json:"uniques"`
	Views   []trafficEntry `json:"views"`
}
