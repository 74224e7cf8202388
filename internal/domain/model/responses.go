package model

// ErrorResponse is returned by the HTTP API on failures. Retry tells the client the
// same request may succeed when issued again.
type ErrorResponse struct {
	Error string `json:"error"`
	Retry bool   `json:"retry,omitempty"`
}

// StateResponse describes the latest committed weather state.
type StateResponse struct {
	Status     string       `json:"status"`
	Generation uint64       `json:"generation"`
	View       *WeatherView `json:"view,omitempty"`
	Error      string       `json:"error,omitempty"`
	Retry      bool         `json:"retry,omitempty"`
}

// RefreshResponse acknowledges a background refresh.
type RefreshResponse struct {
	Generation uint64 `json:"generation"`
	Message    string `json:"message"`
}
