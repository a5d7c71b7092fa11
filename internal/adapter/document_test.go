package adapter

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCouch serves the handful of CouchDB endpoints the document backend
// uses, for a single database.
type fakeCouch struct {
	mu      sync.Mutex
	dbName  string
	created bool
	docs    map[string]map[string]any
	revs    map[string]int
}

func newFakeCouch(dbName string) *fakeCouch {
	return &fakeCouch{dbName: dbName, docs: map[string]map[string]any{}, revs: map[string]int{}}
}

func (f *fakeCouch) rev(id string) string {
	return strconv.Itoa(f.revs[id]) + "-abc"
}

func (f *fakeCouch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	if parts[0] != f.dbName {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not_found","reason":"no_db_file"}`)
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodHead, http.MethodGet:
			if !f.created {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = io.WriteString(w, `{"db_name":"`+f.dbName+`"}`)
		case http.MethodPut:
			f.created = true
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"ok":true}`)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	id := parts[1]
	doc, exists := f.docs[id]
	switch r.Method {
	case http.MethodHead, http.MethodGet:
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			if r.Method == http.MethodGet {
				_, _ = io.WriteString(w, `{"error":"not_found","reason":"missing"}`)
			}
			return
		}
		w.Header().Set("ETag", `"`+f.rev(id)+`"`)
		if r.Method == http.MethodHead {
			return
		}
		doc["_rev"] = f.rev(id)
		_ = json.NewEncoder(w).Encode(doc)

	case http.MethodPut:
		body, err := decodeBody(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"bad_request","reason":"invalid body"}`)
			return
		}
		rev, _ := body["_rev"].(string)
		if rev == "" {
			rev = r.URL.Query().Get("rev")
		}
		if exists && rev != f.rev(id) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"error":"conflict","reason":"Document update conflict."}`)
			return
		}
		f.revs[id]++
		f.docs[id] = body
		w.Header().Set("ETag", `"`+f.rev(id)+`"`)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"ok":true,"id":"`+id+`","rev":"`+f.rev(id)+`"}`)

	case http.MethodDelete:
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"not_found","reason":"missing"}`)
			return
		}
		f.revs[id]++
		delete(f.docs, id)
		w.Header().Set("ETag", `"`+f.rev(id)+`"`)
		_, _ = io.WriteString(w, `{"ok":true,"id":"`+id+`","rev":"`+f.rev(id)+`"}`)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// decodeBody reads a JSON request body. The client gzips document bodies.
func decodeBody(r *http.Request) (map[string]any, error) {
	var src io.Reader = r.Body
	if r.Header.Get("Content-Encoding") == "gzip" {
		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		src = zr
	}

	var body map[string]any
	if err := json.NewDecoder(src).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func newTestDocument(t *testing.T) (*DocumentBackend, *fakeCouch) {
	t.Helper()
	couch := newFakeCouch("reader_sync")
	srv := httptest.NewServer(couch)
	t.Cleanup(srv.Close)

	d, err := NewDocumentBackend(config.ClientAdapter{
		DocumentURL:    srv.URL,
		DocumentDB:     "reader_sync",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d, couch
}

func TestDocument_NotConfigured(t *testing.T) {
	d, err := NewDocumentBackend(config.ClientAdapter{DocumentDB: "reader_sync"}, logger.Nop())
	require.NoError(t, err)

	assert.False(t, d.Configured())
	assert.ErrorIs(t, d.Push(context.Background(), "u1", samplePayload), ErrNotConfigured)
	_, err = d.Pull(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = d.Subscribe(context.Background(), "u1", func(models.SyncPayload) {})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDocument_Descriptors(t *testing.T) {
	d, _ := newTestDocument(t)
	assert.Equal(t, NameDocument, d.Name())
	assert.Equal(t, models.LibraryFormatReduced, d.LibraryFormat())
	assert.Equal(t, 900_000, d.MaxPayloadBytes())
	assert.Equal(t, "users:u1", documentID("u1"))
}

func TestDocument_PullMissing(t *testing.T) {
	d, couch := newTestDocument(t)

	_, err := d.Pull(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, couch.created, "database is created on first use")
}

func TestDocument_PushPullUpsert(t *testing.T) {
	d, couch := newTestDocument(t)
	ctx := context.Background()

	require.NoError(t, d.Push(ctx, "u1", samplePayload))

	second := samplePayload
	second.ReaderSettings = `{"fontSize":22}`
	require.NoError(t, d.Push(ctx, "u1", second))

	couch.mu.Lock()
	assert.Equal(t, 2, couch.revs["users:u1"])
	couch.mu.Unlock()

	got, err := d.Pull(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestDocument_Delete(t *testing.T) {
	d, _ := newTestDocument(t)
	ctx := context.Background()

	// absent document
	require.NoError(t, d.Delete(ctx, "u1"))

	require.NoError(t, d.Push(ctx, "u1", samplePayload))
	require.NoError(t, d.Delete(ctx, "u1"))

	_, err := d.Pull(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocument_PushTooLarge(t *testing.T) {
	d, _ := newTestDocument(t)

	big := samplePayload
	big.Library = strings.Repeat("x", 900_001)
	assert.ErrorIs(t, d.Push(context.Background(), "u1", big), ErrPayloadTooLarge)
}
