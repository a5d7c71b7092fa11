package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/settings"
	"github.com/MKhiriev/go-reader-sync/internal/store"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
)

// PayloadBuilder assembles a [models.SyncPayload] from the settings mirror
// and the local database.
type PayloadBuilder struct {
	mirror    SettingsStore
	snapshots store.SnapshotRepository
	now       func() time.Time
	logger    *logger.Logger
}

func NewPayloadBuilder(mirror SettingsStore, snapshots store.SnapshotRepository, logger *logger.Logger) *PayloadBuilder {
	return &PayloadBuilder{mirror: mirror, snapshots: snapshots, now: time.Now, logger: logger}
}

// Build returns a fresh payload for userID. The auth blob never carries
// saved accounts. format selects the library shape.
func (b *PayloadBuilder) Build(ctx context.Context, userID string, format models.LibraryFormat) (models.SyncPayload, error) {
	var payload models.SyncPayload

	auth, ok, err := b.mirror.LoadAuth()
	if err != nil {
		return models.SyncPayload{}, fmt.Errorf("read auth: %w", err)
	}
	if ok {
		data, err := json.Marshal(auth.Minimized())
		if err != nil {
			return models.SyncPayload{}, fmt.Errorf("encode auth: %w", err)
		}
		payload.Auth = string(data)
	}

	if payload.Library, err = b.library(ctx, userID, format); err != nil {
		return models.SyncPayload{}, err
	}

	if payload.ReaderSettings, _, err = b.mirror.Get(settings.KeyReaderSettings); err != nil {
		return models.SyncPayload{}, fmt.Errorf("read reader settings: %w", err)
	}
	if payload.Theme, _, err = b.mirror.Get(settings.KeyTheme); err != nil {
		return models.SyncPayload{}, fmt.Errorf("read theme: %w", err)
	}

	payload.LastSync = formatTimestamp(b.now())
	return payload, nil
}

func (b *PayloadBuilder) library(ctx context.Context, userID string, format models.LibraryFormat) (string, error) {
	var (
		v   any
		err error
	)

	switch format {
	case models.LibraryFormatReduced:
		v, err = b.snapshots.UserLibrarySnapshot(ctx, userID)
	default:
		v, err = b.snapshots.ExportAll(ctx)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "PayloadBuilder.library").
			Str("format", format.String()).
			Msg("failed to export library")
		return "", fmt.Errorf("export library: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode library: %w", err)
	}
	return string(data), nil
}

// Decode parses a serialized payload. Every field must be a string.
func (b *PayloadBuilder) Decode(blob []byte) (models.SyncPayload, error) {
	var payload models.SyncPayload
	if err := json.Unmarshal(blob, &payload); err != nil {
		return models.SyncPayload{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return payload, nil
}
