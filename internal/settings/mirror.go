// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings keeps the small preference blobs of a reader-sync client
// as one file per key in a shared directory, and watches that directory for
// writes made by other client processes.
package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
)

// Mirror is the settings directory of one client process.
type Mirror struct {
	dir       string
	publisher bus.Publisher
	logger    *logger.Logger

	mu sync.Mutex
	// written holds the digest of the last value this process wrote per key.
	written map[string]string
}

// NewMirror opens (and creates, if needed) the settings directory. A nil
// publisher disables local-change events.
func NewMirror(dir string, publisher bus.Publisher, log *logger.Logger) (*Mirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create settings dir: %w", err)
	}
	return &Mirror{
		dir:       dir,
		publisher: publisher,
		logger:    log,
		written:   make(map[string]string),
	}, nil
}

// Dir returns the settings directory.
func (m *Mirror) Dir() string {
	return m.dir
}

func validKey(key string) bool {
	return key != "" && !strings.HasPrefix(key, ".") && !strings.ContainsAny(key, `/\`) && key != ".."
}

func (m *Mirror) path(key string) string {
	return filepath.Join(m.dir, key)
}

// Get returns the value of key. ok is false when the key is absent.
func (m *Mirror) Get(key string) (value string, ok bool, err error) {
	if !validKey(key) {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	data, err := os.ReadFile(m.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read settings key %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value under key atomically (temp file plus rename). A write to
// a synced key publishes local-change.
func (m *Mirror) Set(ctx context.Context, key, value string) error {
	if err := m.write(key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Mirror.Set").
			Str("key", key).
			Msg("failed to write settings key")
		return err
	}

	m.notify(ctx, key)
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (m *Mirror) Remove(ctx context.Context, key string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	m.remember(key, "")
	if err := os.Remove(m.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "Mirror.Remove").
			Str("key", key).
			Msg("failed to remove settings key")
		return fmt.Errorf("failed to remove settings key %s: %w", key, err)
	}

	m.notify(ctx, key)
	return nil
}

// BroadcastSync writes a fresh timestamp to the sync trigger key. Every other
// process watching the directory reinitializes from shared state.
func (m *Mirror) BroadcastSync(ctx context.Context) error {
	return m.Set(ctx, KeySyncTrigger, time.Now().UTC().Format(time.RFC3339Nano))
}

// IsSelfWrite reports whether content is exactly what this process last
// wrote (or removed, for empty content) under key.
func (m *Mirror) IsSelfWrite(key, content string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	digest, ok := m.written[key]
	return ok && digest == utils.DigestString(content)
}

func (m *Mirror) remember(key, value string) {
	m.mu.Lock()
	m.written[key] = utils.DigestString(value)
	m.mu.Unlock()
}

func (m *Mirror) write(key, value string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	tmp, err := os.CreateTemp(m.dir, "."+key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file for %s: %w", key, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file for %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}

	// remembered before the rename so the watcher never sees an unknown digest
	m.remember(key, value)
	if err = os.Rename(tmpName, m.path(key)); err != nil {
		return fmt.Errorf("failed to replace settings key %s: %w", key, err)
	}
	return nil
}

func (m *Mirror) notify(ctx context.Context, key string) {
	if m.publisher == nil || !IsSynced(key) {
		return
	}
	if err := m.publisher.Publish(ctx, bus.NewEvent(bus.TopicLocalChange, key).FromSource("settings")); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "Mirror.notify").
			Str("key", key).
			Msg("failed to publish local change")
	}
}
