// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// proxy KV handlers and by the client sync status.
//
// The Msg* constants of the proxy are part of its wire contract: clients
// and tests compare response bodies against them.
package app

// Proxy KV responses.
const (
	// MsgUserIDRequired is returned when a sync request has no userId.
	MsgUserIDRequired = "userId is required"

	// MsgInvalidAction is returned for an action other than save, load or
	// delete.
	MsgInvalidAction = "Invalid action. Use: save, load, or delete"

	// MsgDataRequired is returned by save without a data object.
	MsgDataRequired = "data is required for save action"

	// MsgNotConfigured is returned while the KV store has no backing
	// database.
	MsgNotConfigured = "Redis not configured"

	// MsgNoData is returned by load when nothing is stored for the user.
	MsgNoData = "No data found for this user"

	// MsgInternalServerError is returned for unexpected failures, together
	// with the error details.
	MsgInternalServerError = "Internal server error"

	MsgSaved   = "Data saved successfully"
	MsgDeleted = "Data deleted successfully"

	MsgNotFound        = "Not found"
	MsgTooManyRequests = "Too many requests"
)

// Client sync status texts.
const (
	MsgBackendNotConfigured = "sync backend is not configured"
	MsgPayloadTooLarge      = "data is too large to sync, use a file backup instead"
	MsgBackendUnavailable   = "sync backend is unreachable, will retry later"
	MsgRemoteDataCorrupt    = "remote data is corrupt and was ignored"
	MsgBackendRejected      = "sync backend rejected the request"
	MsgSyncFailed           = "sync failed"
)
