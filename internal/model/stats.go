package model

// BoardStats aggregates row counts for the admin dashboard.
type BoardStats struct {
	Users    int64 `json:"users"`
	Messages int64 `json:"messages"`
	Replies  int64 `json:"replies"`
	Appeals  int64 `json:"appeals"`
}
