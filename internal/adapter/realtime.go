package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/realtime"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var (
	errConnectionClosed = fmt.Errorf("%w: realtime connection closed", ErrTransient)
	errNoSession        = fmt.Errorf("%w: no realtime session", ErrBadRequest)
)

// realtimeWrite is the value written to users/<id>/data.
type realtimeWrite struct {
	Auth           string `json:"auth"`
	Library        string `json:"library"`
	ReaderSettings string `json:"readerSettings"`
	Theme          string `json:"theme"`
	LastSync       any    `json:"lastSync"`
}

// realtimeData is the value read from users/<id>/data, incremental children
// included.
type realtimeData struct {
	Auth           string                            `json:"auth"`
	Library        string                            `json:"library"`
	ReaderSettings string                            `json:"readerSettings"`
	Theme          string                            `json:"theme"`
	LastSync       json.RawMessage                   `json:"lastSync"`
	Progress       map[string]models.ReadingProgress `json:"progress,omitempty"`
	LibraryItems   []models.LibraryItem              `json:"libraryItems,omitempty"`
}

// realtimeUser is one child of the users node as seen by presence queries.
type realtimeUser struct {
	Status *struct {
		State    models.PresenceState `json:"state"`
		LastSeen json.RawMessage      `json:"lastSeen"`
	} `json:"status"`
	Info models.PresenceInfo `json:"info"`
}

// RealtimeBackend keeps one websocket session with the realtime server.
// The session authenticates as a single user; a call for another user
// replaces it. Subscriptions survive reconnects.
type RealtimeBackend struct {
	url           string
	signKey       string
	issuer        string
	tokenDuration time.Duration
	timeout       time.Duration
	dialer        *websocket.Dialer

	mu      sync.Mutex
	session *realtimeSession

	subsMu sync.Mutex
	subs   map[string]map[uint64]func(json.RawMessage)
	subID  atomic.Uint64

	logger *logger.Logger
}

func NewRealtimeBackend(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (*RealtimeBackend, error) {
	r := &RealtimeBackend{
		signKey:       appCfg.TokenSignKey,
		issuer:        appCfg.TokenIssuer,
		tokenDuration: appCfg.TokenDuration,
		timeout:       adapterCfg.RequestTimeout,
		dialer:        &websocket.Dialer{HandshakeTimeout: adapterCfg.RequestTimeout},
		subs:          make(map[string]map[uint64]func(json.RawMessage)),
		logger:        log,
	}
	if adapterCfg.RealtimeURL == "" {
		return r, nil
	}

	url, err := normalizeBaseURL(adapterCfg.RealtimeURL, "ws")
	if err != nil {
		return nil, fmt.Errorf("invalid realtime url: %w", err)
	}
	r.url = url
	return r, nil
}

func (r *RealtimeBackend) Name() string                        { return NameRealtime }
func (r *RealtimeBackend) Configured() bool                    { return r.url != "" && r.signKey != "" }
func (r *RealtimeBackend) MaxPayloadBytes() int                { return 0 }
func (r *RealtimeBackend) LibraryFormat() models.LibraryFormat { return models.LibraryFormatReduced }

// Push writes the payload with a server-stamped lastSync. Incremental
// children are replaced.
func (r *RealtimeBackend) Push(ctx context.Context, userID string, payload models.SyncPayload) error {
	_, err := r.call(ctx, userID, realtime.OpSet, realtime.UserPath(userID, "data"), realtimeWrite{
		Auth:           payload.Auth,
		Library:        payload.Library,
		ReaderSettings: payload.ReaderSettings,
		Theme:          payload.Theme,
		LastSync:       realtime.ServerTimestamp(),
	})
	return err
}

// Pull reads the payload and folds incremental progress and library items
// into the reduced library.
func (r *RealtimeBackend) Pull(ctx context.Context, userID string) (models.SyncPayload, error) {
	raw, err := r.call(ctx, userID, realtime.OpGet, realtime.UserPath(userID, "data"), nil)
	if err != nil {
		return models.SyncPayload{}, err
	}
	return decodeRealtimeData(raw)
}

func (r *RealtimeBackend) Delete(ctx context.Context, userID string) error {
	_, err := r.call(ctx, userID, realtime.OpSet, realtime.UserPath(userID, "data"), nil)
	return err
}

// Subscribe delivers every new value of users/<id>/data. Removals are not
// delivered.
func (r *RealtimeBackend) Subscribe(ctx context.Context, userID string, onChange func(models.SyncPayload)) (func(), error) {
	path := realtime.UserPath(userID, "data")
	id := r.subID.Add(1)

	r.subsMu.Lock()
	if r.subs[path] == nil {
		r.subs[path] = make(map[uint64]func(json.RawMessage))
	}
	r.subs[path][id] = func(raw json.RawMessage) {
		payload, err := decodeRealtimeData(raw)
		if errors.Is(err, ErrNotFound) {
			return
		}
		if err != nil {
			r.logger.Warn().Err(err).Str("func", "RealtimeBackend.Subscribe").Msg("undecodable remote payload")
			return
		}
		onChange(payload)
	}
	r.subsMu.Unlock()

	subCtx, cancel := context.WithCancel(ctx)
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			r.unsubscribe(userID, path, id)
		})
	}

	if _, err := r.call(ctx, userID, realtime.OpSubscribe, path, nil); err != nil {
		unsubscribe()
		return nil, err
	}

	go func() {
		<-subCtx.Done()
		unsubscribe()
	}()
	return unsubscribe, nil
}

func (r *RealtimeBackend) unsubscribe(userID, path string, id uint64) {
	r.subsMu.Lock()
	delete(r.subs[path], id)
	last := len(r.subs[path]) == 0
	if last {
		delete(r.subs, path)
	}
	r.subsMu.Unlock()

	// never dial just to unsubscribe
	if !last || r.sessionUser() != userID {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	_, _ = r.call(ctx, userID, realtime.OpUnsubscribe, path, nil)
}

// GoOnline marks the user online, publishes the profile and arranges for
// the server to mark the user offline when this session drops.
func (r *RealtimeBackend) GoOnline(ctx context.Context, userID string, info models.PresenceInfo) error {
	statusPath := realtime.UserPath(userID, "status")

	if _, err := r.call(ctx, userID, realtime.OpSet, statusPath, presenceStatus(models.PresenceOnline)); err != nil {
		return err
	}
	if _, err := r.call(ctx, userID, realtime.OpSet, realtime.UserPath(userID, "info"), info); err != nil {
		return err
	}
	_, err := r.call(ctx, userID, realtime.OpOnDisconnectSet, statusPath, presenceStatus(models.PresenceOffline))
	return err
}

func (r *RealtimeBackend) GoOffline(ctx context.Context, userID string) error {
	statusPath := realtime.UserPath(userID, "status")

	if _, err := r.call(ctx, userID, realtime.OpCancelOnDisconnect, statusPath, nil); err != nil {
		return err
	}
	_, err := r.call(ctx, userID, realtime.OpSet, statusPath, presenceStatus(models.PresenceOffline))
	return err
}

// OnlineUsers reads the users node through the current session.
func (r *RealtimeBackend) OnlineUsers(ctx context.Context) ([]models.OnlineUser, error) {
	userID := r.sessionUser()
	if userID == "" {
		return nil, errNoSession
	}

	raw, err := r.call(ctx, userID, realtime.OpGet, "users", nil)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return []models.OnlineUser{}, nil
	}

	var users map[string]realtimeUser
	if err = json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: users: %w", ErrDeserialization, err)
	}

	online := make([]models.OnlineUser, 0, len(users))
	for id, u := range users {
		if u.Status == nil || u.Status.State != models.PresenceOnline {
			continue
		}
		online = append(online, models.OnlineUser{
			UserID:       id,
			PresenceInfo: u.Info,
			LastSeen:     formatServerTime(u.Status.LastSeen),
		})
	}
	return online, nil
}

func (r *RealtimeBackend) OnlineCount(ctx context.Context) (int, error) {
	users, err := r.OnlineUsers(ctx)
	return len(users), err
}

// UpdateProgress writes users/<id>/data/progress/<novelId>.
func (r *RealtimeBackend) UpdateProgress(ctx context.Context, userID string, progress models.ReadingProgress) error {
	_, err := r.call(ctx, userID, realtime.OpSet, realtime.UserPath(userID, "data", "progress", progress.NovelID), progress)
	return err
}

// SyncLibrary writes users/<id>/data/libraryItems.
func (r *RealtimeBackend) SyncLibrary(ctx context.Context, userID string, items []models.LibraryItem) error {
	if items == nil {
		items = []models.LibraryItem{}
	}
	_, err := r.call(ctx, userID, realtime.OpSet, realtime.UserPath(userID, "data", "libraryItems"), items)
	return err
}

// Close drops the session. Registered on-disconnect writes run on the server.
func (r *RealtimeBackend) Close() error {
	r.mu.Lock()
	s := r.session
	r.session = nil
	r.mu.Unlock()

	if s != nil {
		s.close()
	}
	return nil
}

func (r *RealtimeBackend) sessionUser() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return ""
	}
	return r.session.userID
}

// call sends one request and waits for its reply.
func (r *RealtimeBackend) call(ctx context.Context, userID string, op realtime.Op, path string, value any) (json.RawMessage, error) {
	if !r.Configured() {
		return nil, ErrNotConfigured
	}

	var encoded json.RawMessage
	if value != nil || op == realtime.OpSet {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode realtime value: %w", err)
		}
		encoded = data
	}

	s, err := r.connect(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, realtime.Request{Op: op, Path: path, Value: encoded})
	if err != nil {
		if errors.Is(err, errConnectionClosed) {
			r.drop(s)
		}
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s %s: %s", ErrBadRequest, op, path, resp.Error)
	}
	return resp.Value, nil
}

// connect returns a live session authenticated as userID, dialling a new
// one when needed.
func (r *RealtimeBackend) connect(ctx context.Context, userID string) (*realtimeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s := r.session; s != nil {
		if s.userID == userID && !s.closed() {
			return s, nil
		}
		s.close()
		r.session = nil
	}

	token, err := utils.GenerateJWTToken(r.issuer, userID, r.tokenDuration, r.signKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token.String())

	conn, resp, err := r.dialer.DialContext(ctx, r.url, header)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: realtime handshake: %s", ErrNotConfigured, resp.Status)
		}
		return nil, fmt.Errorf("%w: realtime dial: %w", ErrTransient, err)
	}

	s := newRealtimeSession(conn, userID, r.dispatch, r.logger)
	r.session = s
	go s.readLoop()

	if err = r.resubscribe(ctx, s); err != nil {
		s.close()
		r.session = nil
		return nil, err
	}
	return s, nil
}

// resubscribe restores the subscriptions of userID on a fresh session.
func (r *RealtimeBackend) resubscribe(ctx context.Context, s *realtimeSession) error {
	r.subsMu.Lock()
	var paths []string
	for path := range r.subs {
		if len(realtime.SplitPath(path)) > 1 && realtime.SplitPath(path)[1] == s.userID {
			paths = append(paths, path)
		}
	}
	r.subsMu.Unlock()

	for _, path := range paths {
		resp, err := s.call(ctx, realtime.Request{Op: realtime.OpSubscribe, Path: path})
		if err != nil {
			return err
		}
		if resp.Error != "" {
			return fmt.Errorf("%w: resubscribe %s: %s", ErrBadRequest, path, resp.Error)
		}
	}
	return nil
}

func (r *RealtimeBackend) drop(s *realtimeSession) {
	r.mu.Lock()
	if r.session == s {
		r.session = nil
	}
	r.mu.Unlock()
	s.close()
}

func (r *RealtimeBackend) dispatch(path string, value json.RawMessage) {
	r.subsMu.Lock()
	handlers := make([]func(json.RawMessage), 0, len(r.subs[path]))
	for _, h := range r.subs[path] {
		handlers = append(handlers, h)
	}
	r.subsMu.Unlock()

	for _, h := range handlers {
		h(value)
	}
}

func decodeRealtimeData(raw json.RawMessage) (models.SyncPayload, error) {
	if isNull(raw) {
		return models.SyncPayload{}, ErrNotFound
	}

	var data realtimeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.SyncPayload{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	payload := models.SyncPayload{
		Auth:           data.Auth,
		Library:        data.Library,
		ReaderSettings: data.ReaderSettings,
		Theme:          data.Theme,
		LastSync:       formatServerTime(data.LastSync),
	}
	if len(data.Progress) == 0 && data.LibraryItems == nil {
		return payload, nil
	}

	library, err := foldIncremental(data)
	if err != nil {
		return models.SyncPayload{}, err
	}
	payload.Library = library
	return payload, nil
}

// foldIncremental applies incremental children on top of the reduced
// library. They are always newer than the last whole-payload write, which
// replaces them.
func foldIncremental(data realtimeData) (string, error) {
	var snapshot models.LibrarySnapshot
	if data.Library != "" {
		if err := json.Unmarshal([]byte(data.Library), &snapshot); err != nil {
			return "", fmt.Errorf("%w: library: %w", ErrDeserialization, err)
		}
	}
	if snapshot.State.ReadingProgress == nil {
		snapshot.State.ReadingProgress = make(map[string]models.ReadingProgress, len(data.Progress))
	}
	if snapshot.State.Library == nil {
		snapshot.State.Library = []models.LibraryItem{}
	}

	for novelID, p := range data.Progress {
		snapshot.State.ReadingProgress[novelID] = p
	}
	if data.LibraryItems != nil {
		snapshot.State.Library = data.LibraryItems
	}

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encode folded library: %w", err)
	}
	return string(encoded), nil
}

// formatServerTime renders a server timestamp (unix ms) or passes a string
// through.
func formatServerTime(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339Nano)
}

func presenceStatus(state models.PresenceState) models.PresenceStatus {
	return models.PresenceStatus{State: state, LastSeen: realtime.ServerTimestamp()}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
