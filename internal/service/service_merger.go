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

// Merger applies a remote payload to local state.
type Merger struct {
	session   *SessionContext
	mirror    SettingsStore
	snapshots store.SnapshotRepository
	now       func() time.Time
	logger    *logger.Logger
}

func NewMerger(session *SessionContext, mirror SettingsStore, snapshots store.SnapshotRepository, logger *logger.Logger) *Merger {
	return &Merger{session: session, mirror: mirror, snapshots: snapshots, now: time.Now, logger: logger}
}

// decodedLibrary is a library blob in one of the two shapes.
type decodedLibrary struct {
	full    *models.DatabaseSnapshot
	reduced *models.LibrarySnapshot
}

// Apply writes payload into the local store and the settings mirror.
//
// Every blob is decoded before anything is written, so a payload with one
// bad field changes nothing. Empty fields are left alone.
func (m *Merger) Apply(ctx context.Context, userID string, payload models.SyncPayload) error {
	if payload.Auth != "" {
		if _, err := decodeAuth(payload.Auth); err != nil {
			return err
		}
	}
	library, err := decodeLibrary(payload.Library)
	if err != nil {
		return err
	}
	for key, blob := range map[string]string{settings.KeyReaderSettings: payload.ReaderSettings, settings.KeyTheme: payload.Theme} {
		if blob != "" && !json.Valid([]byte(blob)) {
			return fmt.Errorf("%w: %s", ErrDeserialization, key)
		}
	}

	if err = m.applyLibrary(ctx, userID, library); err != nil {
		return err
	}

	if err = m.session.ApplyRemoteAuth(ctx, payload.Auth); err != nil {
		return err
	}

	if payload.ReaderSettings != "" {
		if err = m.mirror.Set(ctx, settings.KeyReaderSettings, payload.ReaderSettings); err != nil {
			return err
		}
	}
	if payload.Theme != "" {
		if err = m.mirror.Set(ctx, settings.KeyTheme, payload.Theme); err != nil {
			return err
		}
	}
	if payload.LastSync != "" {
		if err = m.mirror.Set(ctx, settings.KeyLastSync, payload.LastSync); err != nil {
			return err
		}
	}

	m.logger.Info().
		Str("func", "Merger.Apply").
		Str("user_id", userID).
		Str("last_sync", payload.LastSync).
		Msg("remote payload applied")
	return nil
}

// applyLibrary writes a decoded library into the store and stamps the
// library key. An empty library is a no-op.
func (m *Merger) applyLibrary(ctx context.Context, userID string, library decodedLibrary) error {
	switch {
	case library.full != nil:
		if err := m.snapshots.ImportAll(ctx, *library.full); err != nil {
			return fmt.Errorf("import library: %w", err)
		}
	case library.reduced != nil:
		items := library.reduced.State.Library
		for i := range items {
			items[i].UserID = userID
		}
		progress := library.reduced.ProgressList()
		for i := range progress {
			progress[i].UserID = userID
		}
		if err := m.snapshots.ReplaceUserLibrary(ctx, userID, items, progress); err != nil {
			return fmt.Errorf("replace library: %w", err)
		}
	default:
		return nil
	}
	return m.mirror.Set(ctx, settings.KeyLibrary, formatTimestamp(m.now()))
}

// decodeLibrary tells the two library shapes apart by their keys.
func decodeLibrary(blob string) (decodedLibrary, error) {
	if blob == "" {
		return decodedLibrary{}, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &keys); err != nil {
		return decodedLibrary{}, fmt.Errorf("%w: library: %w", ErrDeserialization, err)
	}

	if _, ok := keys["state"]; ok {
		var reduced models.LibrarySnapshot
		if err := json.Unmarshal([]byte(blob), &reduced); err != nil {
			return decodedLibrary{}, fmt.Errorf("%w: library: %w", ErrDeserialization, err)
		}
		return decodedLibrary{reduced: &reduced}, nil
	}

	var full models.DatabaseSnapshot
	if err := json.Unmarshal([]byte(blob), &full); err != nil {
		return decodedLibrary{}, fmt.Errorf("%w: library: %w", ErrDeserialization, err)
	}
	return decodedLibrary{full: &full}, nil
}
