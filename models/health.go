package models

// HealthCheckResponse returns the health check response duh
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// MessageResponse is the generic success envelope
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// SessionResponse reports the admin state of the caller
type SessionResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token,omitempty"`
}
