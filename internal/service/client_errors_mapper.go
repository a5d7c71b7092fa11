// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/app"
)

// pushOutcome is the metrics label of a push result.
func pushOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	return adapter.Classify(err).String()
}

// pullOutcome is the metrics label of a pull result. An absent record is a
// normal outcome.
func pullOutcome(err error) string {
	switch adapter.Classify(err) {
	case adapter.KindNone:
		return "found"
	case adapter.KindNotFound:
		return "absent"
	default:
		return adapter.Classify(err).String()
	}
}

// statusMessage is the text shown next to an error status.
func statusMessage(err error) string {
	if errors.Is(err, ErrDeserialization) {
		return app.MsgRemoteDataCorrupt
	}

	switch adapter.Classify(err) {
	case adapter.KindNotConfigured:
		return app.MsgBackendNotConfigured
	case adapter.KindPayloadTooLarge:
		return app.MsgPayloadTooLarge
	case adapter.KindTransient, adapter.KindUnavailable:
		return app.MsgBackendUnavailable
	case adapter.KindDeserialization:
		return app.MsgRemoteDataCorrupt
	case adapter.KindBadRequest:
		return app.MsgBackendRejected
	default:
		return app.MsgSyncFailed
	}
}
