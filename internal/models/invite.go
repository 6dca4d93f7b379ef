package models

import "time"

// Invite is a simulated invitation to a shared focus session.
type Invite struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Message      string    `json:"message"`
	SessionToken string    `json:"session_token"`
	Status       string    `json:"status"` // sent
	SentAt       time.Time `json:"sent_at"`
}
