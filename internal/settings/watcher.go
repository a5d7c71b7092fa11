package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// Watcher turns writes to the settings directory made by other processes
// into foreign-change events. Writes made through the watched [Mirror] are
// recognised by content digest and dropped.
type Watcher struct {
	mirror    *Mirror
	publisher bus.Publisher
	watcher   *fsnotify.Watcher
	logger    *logger.Logger
}

func NewWatcher(mirror *Mirror, publisher bus.Publisher, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err = fw.Add(mirror.Dir()); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch settings dir %s: %w", mirror.Dir(), err)
	}

	return &Watcher{
		mirror:    mirror,
		publisher: publisher,
		watcher:   fw,
		logger:    log,
	}, nil
}

// Run processes file system events until ctx is done. The underlying
// watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if key, changed := w.convertEvent(event); changed {
				w.publish(ctx, key)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("func", "Watcher.Run").Msg("settings watcher error")
		}
	}
}

// Close stops watching. Needed only when Run is never called.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// convertEvent returns the settings key of a relevant foreign write.
func (w *Watcher) convertEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}

	key := filepath.Base(event.Name)
	// temp files of in-flight atomic writes
	if strings.HasPrefix(key, ".") || !IsWatched(key) {
		return "", false
	}

	content, err := os.ReadFile(event.Name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		w.logger.Warn().Err(err).Str("func", "Watcher.convertEvent").Str("key", key).Msg("failed to read changed key")
		return "", false
	}
	if w.mirror.IsSelfWrite(key, string(content)) {
		return "", false
	}
	return key, true
}

func (w *Watcher) publish(ctx context.Context, key string) {
	w.logger.Debug().Str("func", "Watcher.publish").Str("key", key).Msg("foreign settings change")

	if err := w.publisher.Publish(ctx, bus.NewEvent(bus.TopicForeignChange, key).FromSource("watcher")); err != nil {
		w.logger.Err(err).Str("func", "Watcher.publish").Str("key", key).Msg("failed to publish foreign change")
	}
}
