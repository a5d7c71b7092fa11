package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/kvstore"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "realtime-test-key"
	testIssuer  = "reader-sync"
)

type testServer struct {
	srv *httptest.Server
	db  *Database
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	kv, err := kvstore.New(kvstore.Options{InMemory: true}, logger.Nop())
	require.NoError(t, err)
	db, err := OpenDatabase(context.Background(), kv, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(db, logger.Nop())
	go hub.Run(ctx)

	srv := httptest.NewServer(NewHandler(hub, testSignKey, testIssuer, logger.Nop()).Routes())
	t.Cleanup(func() {
		srv.Close()
		cancel()
		_ = kv.Close()
	})
	return &testServer{srv: srv, db: db}
}

func (s *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(s.srv.URL, "http") + "/ws"
}

func (s *testServer) dial(t *testing.T, userID string) *websocket.Conn {
	t.Helper()

	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token.String())
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL(), header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, id uint64, op Op, path, value string) {
	t.Helper()
	req := Request{ID: id, Op: op, Path: path}
	if value != "" {
		req.Value = json.RawMessage(value)
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func next(t *testing.T, conn *websocket.Conn) Response {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

func call(t *testing.T, conn *websocket.Conn, id uint64, op Op, path, value string) Response {
	t.Helper()
	send(t, conn, id, op, path, value)
	for {
		resp := next(t, conn)
		if resp.Type == MessageReply && resp.ID == id {
			return resp
		}
	}
}

func assertNull(t *testing.T, raw json.RawMessage) {
	t.Helper()
	assert.True(t, len(raw) == 0 || string(raw) == "null", "expected null, got %s", raw)
}

// ── authentication ──

func TestHandler_RejectsMissingOrBadToken(t *testing.T) {
	s := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL(), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	bad, err := utils.GenerateJWTToken(testIssuer, "u1", time.Hour, "other-key")
	require.NoError(t, err)
	_, resp, err = websocket.DefaultDialer.Dial(s.wsURL()+"?token="+bad.String(), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_TokenQueryParameter(t *testing.T) {
	s := newTestServer(t)

	token, err := utils.GenerateJWTToken(testIssuer, "u1", time.Hour, testSignKey)
	require.NoError(t, err)
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL()+"?token="+token.String(), nil)
	require.NoError(t, err)
	defer conn.Close()

	resp := call(t, conn, 1, OpGet, "users/u1", "")
	assert.Empty(t, resp.Error)
}

func TestHandler_Healthz(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Get(s.srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ── operations ──

func TestHub_SetGetUpdate(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t, "u1")

	resp := call(t, conn, 1, OpSet, "users/u1/data", `{"auth":"a","lastSync":{".sv":"timestamp"}}`)
	require.Empty(t, resp.Error)

	resp = call(t, conn, 2, OpUpdate, "users/u1/data", `{"theme":"t"}`)
	require.Empty(t, resp.Error)

	resp = call(t, conn, 3, OpGet, "users/u1/data", "")
	require.Empty(t, resp.Error)

	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Value, &data))
	assert.Equal(t, "a", data["auth"])
	assert.Equal(t, "t", data["theme"])
	assert.IsType(t, float64(0), data["lastSync"])

	resp = call(t, conn, 4, OpGet, "users/u1/missing", "")
	assertNull(t, resp.Value)
}

func TestHub_Permissions(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t, "u1")

	tests := []struct {
		name  string
		op    Op
		path  string
		value string
	}{
		{name: "write other user", op: OpSet, path: "users/u2/data", value: `{"a":1}`},
		{name: "write users root", op: OpSet, path: "users", value: `{}`},
		{name: "update other user", op: OpUpdate, path: "users/u2", value: `{"a":1}`},
		{name: "read outside users", op: OpGet, path: "config"},
		{name: "subscribe outside users", op: OpSubscribe, path: ""},
		{name: "on-disconnect other user", op: OpOnDisconnectSet, path: "users/u2/status", value: `"offline"`},
		{name: "unknown op", op: Op("transaction"), path: "users/u1"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, conn, uint64(i+1), tt.op, tt.path, tt.value)
			assert.NotEmpty(t, resp.Error)
		})
	}

	resp := call(t, conn, 100, OpGet, "users", "")
	assert.Empty(t, resp.Error)
}

// ── subscriptions ──

func TestHub_SubscribeReceivesInitialAndOverlappingWrites(t *testing.T) {
	s := newTestServer(t)
	watcher := s.dial(t, "u1")
	writer := s.dial(t, "u1")

	resp := call(t, watcher, 1, OpSubscribe, "users/u1/data", "")
	require.Empty(t, resp.Error)

	initial := next(t, watcher)
	assert.Equal(t, MessageEvent, initial.Type)
	assert.Equal(t, "users/u1/data", initial.Path)
	assertNull(t, initial.Value)

	call(t, writer, 1, OpSet, "users/u1/data/progress/n1", `{"page":7}`)

	event := next(t, watcher)
	assert.Equal(t, MessageEvent, event.Type)
	assert.Equal(t, "users/u1/data", event.Path)
	assert.JSONEq(t, `{"progress":{"n1":{"page":7}}}`, string(event.Value))

	// a disjoint write produces nothing for the watcher
	call(t, writer, 2, OpSet, "users/u1/status", `"online"`)
	resp = call(t, watcher, 2, OpUnsubscribe, "users/u1/data", "")
	assert.Empty(t, resp.Error)

	call(t, writer, 3, OpSet, "users/u1/data", `null`)
	resp = call(t, watcher, 3, OpGet, "users/u1/data", "")
	assertNull(t, resp.Value)
}

func TestHub_OnDisconnectWriteRunsWhenConnectionDrops(t *testing.T) {
	s := newTestServer(t)
	observer := s.dial(t, "u2")
	conn := s.dial(t, "u1")

	call(t, conn, 1, OpSet, "users/u1/status", `{"state":"online"}`)
	resp := call(t, conn, 2, OpOnDisconnectSet, "users/u1/status", `{"state":"offline","lastSeen":{".sv":"timestamp"}}`)
	require.Empty(t, resp.Error)

	resp = call(t, observer, 1, OpSubscribe, "users/u1/status", "")
	require.Empty(t, resp.Error)
	initial := next(t, observer)
	assert.JSONEq(t, `{"state":"online"}`, string(initial.Value))

	require.NoError(t, conn.Close())

	event := next(t, observer)
	var status struct {
		State    string `json:"state"`
		LastSeen int64  `json:"lastSeen"`
	}
	require.NoError(t, json.Unmarshal(event.Value, &status))
	assert.Equal(t, "offline", status.State)
	assert.Positive(t, status.LastSeen)
}

func TestHub_CancelOnDisconnect(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t, "u1")

	call(t, conn, 1, OpSet, "users/u1/status", `{"state":"online"}`)
	call(t, conn, 2, OpOnDisconnectSet, "users/u1/status/state", `"offline"`)
	resp := call(t, conn, 3, OpCancelOnDisconnect, "users/u1/status", "")
	require.Empty(t, resp.Error)
	require.NoError(t, conn.Close())

	other := s.dial(t, "u2")
	// give the hub time to process the disconnect
	time.Sleep(200 * time.Millisecond)
	resp = call(t, other, 1, OpGet, "users/u1/status/state", "")
	assert.JSONEq(t, `"online"`, string(resp.Value))
}
