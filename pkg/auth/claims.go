package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID       uuid.UUID
	IsStaff      bool
	Capabilities []string
	JTI          string
}

// AccessTokenClaims represents the typed JWT issued to clients. Staff flag and
// capabilities travel in the token so request handling needs no user lookup.
type AccessTokenClaims struct {
	UserID       uuid.UUID `json:"user_id"`
	IsStaff      bool      `json:"is_staff"`
	Capabilities []string  `json:"capabilities,omitempty"`
	jwt.RegisteredClaims
}
