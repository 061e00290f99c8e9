package models

import (
	"time"

	usermodels "insightdeck/internal/users/models"
)

// Session links an opaque bearer token to the sanitized user snapshot taken
// at login. There is no expiry, refresh, or revocation: a session is either
// absent or active, and every session is lost on process restart.
//
// The snapshot is deliberately not refreshed when the underlying account's
// role changes; callers keep the privileges they logged in with until they
// log in again.
type Session struct {
	Token     string             `json:"token"`
	User      usermodels.Profile `json:"user"`
	Device    string             `json:"device,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful login body.
type LoginResponse struct {
	Token string             `json:"token"`
	User  usermodels.Profile `json:"user"`
}
