package models

// Status is the result of a connection check against the backends.
type Status struct {
	Database bool // PostgreSQL answered the ping query
	Cache    bool // Redis answered PING, false when caching is disabled
}

// Connected reports whether the database is reachable.
func (s Status) Connected() bool {
	return s.Database
}

// StatusResponse represents the connection status of the service
// swagger:model StatusResponse
type StatusResponse struct {
	// Overall status
	// example: Connected
	Status string `json:"status"`

	// Database reachability
	// example: true
	Database bool `json:"database"`

	// Cache reachability
	// example: true
	Cache bool `json:"cache"`
}
