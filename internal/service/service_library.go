package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/settings"
	"github.com/MKhiriev/go-reader-sync/internal/store"
	"github.com/MKhiriev/go-reader-sync/models"
)

// incrementalTimeout bounds one fire-and-forget incremental update.
const incrementalTimeout = 10 * time.Second

type libraryService struct {
	library  store.LibraryRepository
	progress store.ProgressRepository
	mirror   SettingsStore
	backends BackendSource
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientLibraryService(library store.LibraryRepository, progress store.ProgressRepository, mirror SettingsStore, backends BackendSource, logger *logger.Logger) ClientLibraryService {
	return &libraryService{
		library:  library,
		progress: progress,
		mirror:   mirror,
		backends: backends,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *libraryService) AddToLibrary(ctx context.Context, userID, novelID string, status models.LibraryStatus) (models.LibraryItem, error) {
	if status == "" {
		status = models.LibraryStatusPlanToRead
	}
	if !status.Valid() {
		return models.LibraryItem{}, fmt.Errorf("%w: status %q", ErrInvalidDataProvided, status)
	}

	item, err := s.library.GetLibraryItem(ctx, userID, novelID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		item = models.LibraryItem{
			UserID:    userID,
			NovelID:   novelID,
			AddedDate: formatTimestamp(s.now()),
		}
	case err != nil:
		return models.LibraryItem{}, err
	}
	item.Status = status

	if err = s.save(ctx, item); err != nil {
		return models.LibraryItem{}, err
	}
	return item, nil
}

func (s *libraryService) RemoveFromLibrary(ctx context.Context, userID, novelID string) error {
	if err := s.library.DeleteLibraryItem(ctx, userID, novelID); err != nil {
		return err
	}
	return s.changed(ctx, userID)
}

func (s *libraryService) SetStatus(ctx context.Context, userID, novelID string, status models.LibraryStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidDataProvided, status)
	}

	item, err := s.library.GetLibraryItem(ctx, userID, novelID)
	if err != nil {
		return err
	}
	item.Status = status
	return s.save(ctx, item)
}

func (s *libraryService) ToggleFavorite(ctx context.Context, userID, novelID string) (bool, error) {
	item, err := s.library.GetLibraryItem(ctx, userID, novelID)
	if err != nil {
		return false, err
	}
	item.IsFavorite = !item.IsFavorite
	if err = s.save(ctx, item); err != nil {
		return false, err
	}
	return item.IsFavorite, nil
}

func (s *libraryService) UpdateProgress(ctx context.Context, progress models.ReadingProgress) error {
	if progress.UserID == "" || progress.NovelID == "" {
		return fmt.Errorf("%w: progress without user or novel", ErrInvalidDataProvided)
	}
	progress.ClampProgress()
	if progress.LastRead == "" {
		progress.LastRead = formatTimestamp(s.now())
	}

	if err := s.progress.SaveProgress(ctx, progress); err != nil {
		return err
	}
	if err := s.touch(ctx); err != nil {
		return err
	}

	if updater := s.updater(); updater != nil {
		s.detach(ctx, "UpdateProgress", func(ctx context.Context) error {
			return updater.UpdateProgress(ctx, progress.UserID, progress)
		})
	}
	return nil
}

func (s *libraryService) Library(ctx context.Context, userID string) ([]models.LibraryItem, error) {
	return s.library.GetUserLibrary(ctx, userID)
}

func (s *libraryService) save(ctx context.Context, item models.LibraryItem) error {
	if err := s.library.SaveLibraryItems(ctx, item); err != nil {
		return err
	}
	return s.changed(ctx, item.UserID)
}

// changed stamps the library key and sends the user's library to a backend
// that accepts incremental updates.
func (s *libraryService) changed(ctx context.Context, userID string) error {
	if err := s.touch(ctx); err != nil {
		return err
	}

	updater := s.updater()
	if updater == nil {
		return nil
	}
	items, err := s.library.GetUserLibrary(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "libraryService.changed").Msg("library not sent incrementally")
		return nil
	}
	s.detach(ctx, "SyncLibrary", func(ctx context.Context) error {
		return updater.SyncLibrary(ctx, userID, items)
	})
	return nil
}

// touch writes the library key, which schedules a push.
func (s *libraryService) touch(ctx context.Context) error {
	return s.mirror.Set(ctx, settings.KeyLibrary, formatTimestamp(s.now()))
}

func (s *libraryService) updater() adapter.IncrementalUpdater {
	if s.backends == nil {
		return nil
	}
	backend := s.backends.Backend()
	if backend == nil {
		return nil
	}
	updater, _ := adapter.AsIncrementalUpdater(backend)
	return updater
}

// detach runs call in the background. Its failure is only logged: the next
// whole-payload push carries the same change.
func (s *libraryService) detach(ctx context.Context, op string, call func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), incrementalTimeout)
	go func() {
		defer cancel()
		if err := call(ctx); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "libraryService."+op).
				Str("kind", adapter.Classify(err).String()).
				Msg("incremental update failed")
		}
	}()
}
