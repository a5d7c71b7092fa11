// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote backends a reader-sync client pushes
// its [models.SyncPayload] to.
//
// Every backend implements [Backend]. Capabilities that only some backends
// have ([Subscriber], [PresenceTracker], [IncrementalUpdater], [Beaconer])
// are separate interfaces discovered with a type assertion.
//
// Errors are mapped to the sentinels in errors.go so that callers can decide
// on retries with [Classify] regardless of the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-reader-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Backend names used in configuration and metrics.
const (
	NameProxy    = "proxy"
	NameDocument = "document"
	NameRealtime = "realtime"
)

// Backend is one remote store of the sync payload.
type Backend interface {
	// Name returns the backend name from the adapter order.
	Name() string

	// Configured reports whether the backend has an endpoint. Calls on an
	// unconfigured backend return [ErrNotConfigured].
	Configured() bool

	// MaxPayloadBytes is the largest serialized payload the backend accepts.
	MaxPayloadBytes() int

	// LibraryFormat selects the library shape carried in the payload.
	LibraryFormat() models.LibraryFormat

	// Push stores payload for userID, replacing what was there.
	Push(ctx context.Context, userID string, payload models.SyncPayload) error

	// Pull returns the stored payload. [ErrNotFound] means nothing is stored.
	Pull(ctx context.Context, userID string) (models.SyncPayload, error)

	// Delete removes the stored payload. Deleting an absent payload is not
	// an error.
	Delete(ctx context.Context, userID string) error
}

// Subscriber is implemented by backends that announce remote writes.
type Subscriber interface {
	// Subscribe calls onChange with every new payload of userID until the
	// returned function is called or ctx is done.
	Subscribe(ctx context.Context, userID string, onChange func(models.SyncPayload)) (unsubscribe func(), err error)
}

// PresenceTracker is implemented by backends that keep online state.
type PresenceTracker interface {
	GoOnline(ctx context.Context, userID string, info models.PresenceInfo) error
	GoOffline(ctx context.Context, userID string) error
	OnlineUsers(ctx context.Context) ([]models.OnlineUser, error)
	OnlineCount(ctx context.Context) (int, error)
}

// IncrementalUpdater is implemented by backends that accept partial writes
// between whole-payload pushes.
type IncrementalUpdater interface {
	UpdateProgress(ctx context.Context, userID string, progress models.ReadingProgress) error
	SyncLibrary(ctx context.Context, userID string, items []models.LibraryItem) error
}

// Beaconer is implemented by backends that can send a push which outlives
// the caller, as on process exit.
type Beaconer interface {
	// Beacon starts a push and returns at once.
	Beacon(userID string, payload models.SyncPayload)
	// Flush waits until pending beacons finish or ctx is done.
	Flush(ctx context.Context) error
}
