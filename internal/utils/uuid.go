// Package utils provides helpers shared by the reader-sync server and client:
// content digests, JSON response writing, the resty HTTP client, JWT issuing
// and parsing, and identifier generation.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// userNamespace seeds deterministic user identifiers.
var userNamespace = uuid.MustParse("6f0e2a1c-4d3b-5a9e-8c7f-2b1d0e9a3c54")

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// UserIDFromUsername derives a stable user id from a username, so the same
// person gets the same id on every device. Case and surrounding spaces are
// ignored.
func UserIDFromUsername(username string) string {
	name := strings.ToLower(strings.TrimSpace(username))
	return uuid.NewSHA1(userNamespace, []byte(name)).String()
}
