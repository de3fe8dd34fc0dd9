package events

import "time"

// EventType enumerates security events emitted by the gateway.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventLoginSucceeded  EventType = "login_succeeded"
	EventLoginFailed     EventType = "login_failed"
	EventRequestRejected EventType = "request_rejected"
)

// Event is a security event published to the audit trail.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64 `json:"user_id"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginFailedPayload payload.
type LoginFailedPayload struct {
	Reason string `json:"reason"`
}

// RequestRejectedPayload payload.
type RequestRejectedPayload struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Reason string `json:"reason"`
}
