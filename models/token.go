package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used to authenticate realtime connections.
//
// The subject claim carries the reader's user id.
type Token struct {
	// Token is the parsed token. Excluded from JSON.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact serialized form sent by the client.
	SignedString string `json:"-"`

	// UserID is a cached copy of the subject claim.
	UserID string `json:"-"`
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
