package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
)

// authStorageVersion is written into every persisted auth-storage blob.
const authStorageVersion = 0

// SessionContext is the local session of this client process: the active
// user, the authentication flag and the saved accounts of the device.
// Every mutation is persisted to the auth-storage key before it returns.
type SessionContext struct {
	mirror SettingsStore
	now    func() time.Time
	logger *logger.Logger

	mu   sync.RWMutex
	auth models.AuthStorage
}

// NewSessionContext loads the session from mirror.
func NewSessionContext(mirror SettingsStore, logger *logger.Logger) (*SessionContext, error) {
	s := &SessionContext{mirror: mirror, now: time.Now, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns a copy of the session.
func (s *SessionContext) Current() models.AuthStorage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAuth(s.auth)
}

// UserID returns the id of the logged-in user, or "".
func (s *SessionContext) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.auth.State.IsAuthenticated || s.auth.State.User == nil {
		return ""
	}
	return s.auth.State.User.ID
}

// User returns the logged-in user.
func (s *SessionContext) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.auth.State.IsAuthenticated || s.auth.State.User == nil {
		return models.User{}, false
	}
	return *s.auth.State.User, true
}

// Login makes username the active user. The user id is derived from the
// username, so a known profile (saved on this device) is picked up again.
func (s *SessionContext) Login(ctx context.Context, username, email string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: empty username", ErrInvalidDataProvided)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:        utils.UserIDFromUsername(username),
		Username:  username,
		Role:      models.RoleUser,
		CreatedAt: formatTimestamp(s.now()),
	}
	if i := s.auth.State.FindSavedAccount(user.ID); i >= 0 {
		user = s.auth.State.SavedAccounts[i].User
	}
	if email != "" {
		user.Email = email
	}

	next := cloneAuth(s.auth)
	next.State.User = &user
	next.State.IsAuthenticated = true
	s.touchSavedAccount(&next, user)

	if err := s.save(ctx, next); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the active user. Saved accounts stay.
func (s *SessionContext) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAuth(s.auth)
	next.State.User = nil
	next.State.IsAuthenticated = false
	return s.save(ctx, next)
}

// SwitchAccount makes the saved account id the active user.
func (s *SessionContext) SwitchAccount(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.auth.State.FindSavedAccount(id)
	if i < 0 {
		return models.User{}, fmt.Errorf("%w: %s", ErrUnknownAccount, id)
	}

	next := cloneAuth(s.auth)
	user := next.State.SavedAccounts[i].User
	next.State.User = &user
	next.State.IsAuthenticated = true
	s.touchSavedAccount(&next, user)

	if err := s.save(ctx, next); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// RemoveAccount forgets a saved account. Removing the active account logs
// out.
func (s *SessionContext) RemoveAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.auth.State.FindSavedAccount(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, id)
	}

	next := cloneAuth(s.auth)
	next.State.SavedAccounts = slices.Delete(next.State.SavedAccounts, i, i+1)
	if next.State.User != nil && next.State.User.ID == id {
		next.State.User = nil
		next.State.IsAuthenticated = false
	}
	return s.save(ctx, next)
}

// UpdateProfile merges the non-empty fields of patch into the active user
// and its saved entry. The id cannot change.
func (s *SessionContext) UpdateProfile(ctx context.Context, patch models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.auth.State.IsAuthenticated || s.auth.State.User == nil {
		return models.User{}, ErrNotLoggedIn
	}

	user := *s.auth.State.User
	patch.ID = user.ID
	if err := mergo.Merge(&user, patch, mergo.WithOverride); err != nil {
		return models.User{}, fmt.Errorf("merge profile: %w", err)
	}

	next := cloneAuth(s.auth)
	next.State.User = &user
	if i := next.State.FindSavedAccount(user.ID); i >= 0 {
		next.State.SavedAccounts[i].User = user
	}

	if err := s.save(ctx, next); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Reload re-reads the session from the settings mirror.
func (s *SessionContext) Reload() error {
	auth, _, err := s.mirror.LoadAuth()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	s.auth = auth
	s.mu.Unlock()
	return nil
}

// ApplyRemoteAuth merges a remote auth-storage blob into the session. The
// remote profile replaces the local one; saved accounts always stay local. A
// remote user other than the active one is ignored.
func (s *SessionContext) ApplyRemoteAuth(ctx context.Context, blob string) error {
	if blob == "" {
		return nil
	}

	remote, err := decodeAuth(blob)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := mergeAuth(s.auth, remote)
	if !ok {
		s.logger.Info().
			Str("func", "SessionContext.ApplyRemoteAuth").
			Msg("remote auth belongs to another user, skipped")
		return nil
	}
	return s.save(ctx, next)
}

func (s *SessionContext) touchSavedAccount(auth *models.AuthStorage, user models.User) {
	entry := models.SavedAccount{User: user, LastActive: formatTimestamp(s.now())}
	if i := auth.State.FindSavedAccount(user.ID); i >= 0 {
		auth.State.SavedAccounts[i] = entry
		return
	}
	auth.State.SavedAccounts = append(auth.State.SavedAccounts, entry)
}

// save persists next and makes it current. Callers hold s.mu.
func (s *SessionContext) save(ctx context.Context, next models.AuthStorage) error {
	next.Version = authStorageVersion
	if err := s.mirror.SaveAuth(ctx, next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "SessionContext.save").Msg("failed to persist session")
		return fmt.Errorf("save session: %w", err)
	}
	s.auth = next
	return nil
}

func decodeAuth(blob string) (models.AuthStorage, error) {
	var auth models.AuthStorage
	if err := json.Unmarshal([]byte(blob), &auth); err != nil {
		return models.AuthStorage{}, fmt.Errorf("%w: auth: %w", ErrDeserialization, err)
	}
	return auth, nil
}

// mergeAuth applies remote over local. ok is false when remote carries a
// different user than the active one.
func mergeAuth(local, remote models.AuthStorage) (models.AuthStorage, bool) {
	next := cloneAuth(local)
	if remote.State.User == nil {
		return next, true
	}

	if local.State.User != nil && remote.State.User.ID != "" && remote.State.User.ID != local.State.User.ID {
		return local, false
	}

	// the remote profile replaces the local one as a whole, so cleared
	// fields stay cleared
	user := copyUser(*remote.State.User)
	if user.ID == "" && local.State.User != nil {
		user.ID = local.State.User.ID
	}
	next.State.User = &user
	next.State.IsAuthenticated = remote.State.IsAuthenticated || local.State.IsAuthenticated

	return next, true
}

func cloneAuth(a models.AuthStorage) models.AuthStorage {
	out := a
	if a.State.User != nil {
		user := copyUser(*a.State.User)
		out.State.User = &user
	}
	out.State.SavedAccounts = slices.Clone(a.State.SavedAccounts)
	return out
}

func copyUser(u models.User) models.User {
	if u.AvatarFrame != nil {
		frame := *u.AvatarFrame
		u.AvatarFrame = &frame
	}
	return u
}

// formatTimestamp renders t the way payload timestamps are rendered.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(lastSyncLayout)
}
