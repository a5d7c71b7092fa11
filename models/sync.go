// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/goccy/go-json"
)

// SyncPayload is the unit of state exchanged with every remote backend.
//
// Each field carries the serialized form of one local domain. An empty
// string means "nothing to carry" and is always encoded explicitly: no
// field tag uses omitempty, so a decoded payload never lacks a key.
//
// A payload is built fresh for every push and never mutated afterwards.
type SyncPayload struct {
	// Auth is the minimized session snapshot ({"state":{"user":..,"isAuthenticated":..}}).
	// Saved accounts are never part of it.
	Auth string `json:"auth"`

	// Library is either the full local database export or the reduced
	// library/progress shape, depending on the backend's [LibraryFormat].
	Library string `json:"library"`

	// ReaderSettings is the raw reader-settings blob.
	ReaderSettings string `json:"readerSettings"`

	// Theme is the raw theme-storage blob.
	Theme string `json:"theme"`

	// LastSync is the ISO-8601 timestamp stamped when the payload was built
	// (or by the server, for backends that stamp on write).
	LastSync string `json:"lastSync"`
}

// IsEmpty reports whether the payload carries no domain data at all.
func (p SyncPayload) IsEmpty() bool {
	return p.Auth == "" && p.Library == "" && p.ReaderSettings == "" && p.Theme == ""
}

// Fingerprint identifies the payload content regardless of when it was
// built: LastSync is left out.
func (p SyncPayload) Fingerprint() string {
	h := sha256.New()
	for _, part := range []string{p.Auth, p.Library, p.ReaderSettings, p.Theme} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Size returns the length of the serialized payload in bytes.
func (p SyncPayload) Size() (int, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// LibraryFormat selects which library shape a backend stores.
type LibraryFormat int

const (
	// LibraryFormatFull stores the complete [DatabaseSnapshot].
	LibraryFormatFull LibraryFormat = iota
	// LibraryFormatReduced stores only the current user's library and
	// reading progress ([LibrarySnapshot]).
	LibraryFormatReduced
)

func (f LibraryFormat) String() string {
	switch f {
	case LibraryFormatFull:
		return "full"
	case LibraryFormatReduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// RemoteRecord is what the proxy KV server keeps per user: the object sent
// by the client with lastSync overwritten by the server.
type RemoteRecord map[string]any
