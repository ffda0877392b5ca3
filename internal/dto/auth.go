package dto

import "time"

// TokenRequest defines the data needed to obtain an editor token.
type TokenRequest struct {
	AccessCode string `json:"accessCode" binding:"required"`
}

// TokenResponse defines the data returned for a successful token issuance.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
