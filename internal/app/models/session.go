package models

import "time"

// Session is the server-side session record stored in redis, keyed by
// SessionID. The token handed to the client only carries SessionID.
type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ProfileID string    `json:"profileId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}
