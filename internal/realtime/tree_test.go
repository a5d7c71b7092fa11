package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/kvstore"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	v, err := DecodeValue(json.RawMessage(raw), time.UnixMilli(1700000000000))
	require.NoError(t, err)
	return v
}

// ── Tree ──

func TestTree_SetGet(t *testing.T) {
	tree := NewTree()

	require.NoError(t, tree.Set("users/a/data", decode(t, `{"auth":"x","n":1}`)))

	got, err := tree.Get("users/a/data/auth")
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(got))

	got, err = tree.Get("/users//a/")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"auth":"x","n":1}}`, string(got))

	got, err = tree.Get("users/b")
	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}

func TestTree_NullRemovesAndPrunes(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Set("users/a/data/progress/n1", decode(t, `{"page":3}`)))
	require.NoError(t, tree.Set("users/b/status", decode(t, `"online"`)))

	require.NoError(t, tree.Set("users/a/data/progress/n1", nil))

	got, err := tree.Get("users")
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":{"status":"online"}}`, string(got))

	require.NoError(t, tree.Set("users/b/status", decode(t, `{}`)))
	got, err = tree.Get("")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got))
}

func TestTree_Update(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Set("users/a", decode(t, `{"info":{"username":"ann"},"status":{"state":"offline"}}`)))

	values := decode(t, `{"status/state":"online","info":{"username":"anna"},"extra":null}`).(map[string]any)
	require.NoError(t, tree.Update("users/a", values))

	got, err := tree.Get("users/a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"info":{"username":"anna"},"status":{"state":"online"}}`, string(got))
}

func TestTree_InvalidPath(t *testing.T) {
	tree := NewTree()
	assert.ErrorIs(t, tree.Set("users/../x", "v"), ErrInvalidPath)
	_, err := tree.Get("users/.sv")
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.ErrorIs(t, tree.Set("", "scalar"), ErrInvalidValue)
}

func TestTree_Children(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Set("users/a/info", decode(t, `{"username":"ann"}`)))
	require.NoError(t, tree.Set("users/b/info", decode(t, `{"username":"bob"}`)))

	children, err := tree.Children("users")
	require.NoError(t, err)
	assert.Len(t, children, 2)
	assert.JSONEq(t, `{"info":{"username":"bob"}}`, string(children["b"]))
}

// ── values ──

func TestDecodeValue_ServerTimestamp(t *testing.T) {
	v := decode(t, `{"state":"online","lastSeen":{".sv":"timestamp"},"empty":{}}`)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"online","lastSeen":1700000000000}`, string(data))
}

func TestDecodeValue_Empty(t *testing.T) {
	v, err := DecodeValue(nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = DecodeValue(json.RawMessage(`{bad`), time.Now())
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps("users/a/data", "users/a/data/progress/n1"))
	assert.True(t, Overlaps("users/a/data/progress", "users/a"))
	assert.True(t, Overlaps("users", "users/b/status"))
	assert.False(t, Overlaps("users/a/data", "users/b/data"))
	assert.False(t, Overlaps("users/a/data", "users/a/status"))
}

// ── Database ──

func TestDatabase_PersistsUserSubtrees(t *testing.T) {
	ctx := context.Background()
	kv, err := kvstore.New(kvstore.Options{InMemory: true}, logger.Nop())
	require.NoError(t, err)
	defer kv.Close()

	db, err := OpenDatabase(ctx, kv, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Set(ctx, "users/a/data", json.RawMessage(`{"auth":"x","lastSync":{".sv":"timestamp"}}`)))
	require.NoError(t, db.Update(ctx, "users/b", json.RawMessage(`{"status/state":"online"}`)))

	stored, err := kv.Get(ctx, "users/a")
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"auth":"x"`)

	reopened, err := OpenDatabase(ctx, kv, logger.Nop())
	require.NoError(t, err)
	got, err := reopened.Get("users/b/status/state")
	require.NoError(t, err)
	assert.JSONEq(t, `"online"`, string(got))

	got, err = reopened.Get("users/a/data/lastSync")
	require.NoError(t, err)
	var ms int64
	require.NoError(t, json.Unmarshal(got, &ms))
	assert.Positive(t, ms)

	require.NoError(t, reopened.Set(ctx, "users/a", json.RawMessage(`null`)))
	_, err = kv.Get(ctx, "users/a")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestDatabase_UpdateRejectsScalar(t *testing.T) {
	kv, err := kvstore.New(kvstore.Options{}, logger.Nop())
	require.NoError(t, err)
	db, err := OpenDatabase(context.Background(), kv, logger.Nop())
	require.NoError(t, err)

	err = db.Update(context.Background(), "users/a", json.RawMessage(`"x"`))
	assert.ErrorIs(t, err, ErrInvalidValue)
}
