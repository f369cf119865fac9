package dto

import "time"

// LoginRequest is the credential pair accepted by POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the upstream answer to a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionDTO describes the authenticated session without exposing the token.
type SessionDTO struct {
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	IsAdmin   bool       `json:"isAdmin"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
