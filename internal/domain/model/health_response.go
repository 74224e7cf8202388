package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp       HealthStatus = "UP"
	StatusDown     HealthStatus = "DOWN"
	StatusDisabled HealthStatus = "DISABLED"
)

// ComponentHealthStatus represents the health of one application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of the application
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Provider ComponentHealthStatus `json:"provider"`
	Cache    ComponentHealthStatus `json:"cache"`
	State    ComponentHealthStatus `json:"state"`
}
