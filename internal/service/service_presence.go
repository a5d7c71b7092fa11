package service

import (
	"context"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
)

type presenceService struct {
	backends BackendSource
	users    UserSource
	logger   *logger.Logger
}

func NewPresenceService(backends BackendSource, users UserSource, logger *logger.Logger) PresenceService {
	return &presenceService{backends: backends, users: users, logger: logger}
}

func (p *presenceService) Online(ctx context.Context) error {
	tracker, err := p.tracker()
	if err != nil {
		return err
	}
	user, ok := p.users.User()
	if !ok {
		return ErrNotLoggedIn
	}

	if err = tracker.GoOnline(ctx, user.ID, models.NewPresenceInfo(user)); err != nil {
		return err
	}
	p.logger.Debug().Str("func", "presenceService.Online").Str("user_id", user.ID).Msg("marked online")
	return nil
}

func (p *presenceService) Offline(ctx context.Context) error {
	tracker, err := p.tracker()
	if err != nil {
		return err
	}
	userID := p.users.UserID()
	if userID == "" {
		return ErrNotLoggedIn
	}
	return tracker.GoOffline(ctx, userID)
}

func (p *presenceService) OnlineUsers(ctx context.Context) ([]models.OnlineUser, error) {
	tracker, err := p.tracker()
	if err != nil {
		return nil, err
	}
	return tracker.OnlineUsers(ctx)
}

func (p *presenceService) OnlineCount(ctx context.Context) (int, error) {
	tracker, err := p.tracker()
	if err != nil {
		return 0, err
	}
	return tracker.OnlineCount(ctx)
}

func (p *presenceService) tracker() (adapter.PresenceTracker, error) {
	backend := p.backends.Backend()
	if backend == nil {
		return nil, ErrNoPresence
	}
	tracker, ok := adapter.AsPresenceTracker(backend)
	if !ok {
		return nil, ErrNoPresence
	}
	return tracker, nil
}
