package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/go-kivik/kivik/v4"
	_ "github.com/go-kivik/kivik/v4/couchdb" // CouchDB driver
)

const (
	documentMaxPayloadBytes = 900_000
	documentPutAttempts     = 3
	changesRetryDelay       = 5 * time.Second
)

// userDoc is the CouchDB document holding one user's payload.
type userDoc struct {
	ID  string `json:"_id"`
	Rev string `json:"_rev,omitempty"`
	models.SyncPayload
}

func documentID(userID string) string {
	return "users:" + userID
}

// DocumentBackend stores the payload as a CouchDB document users:<id>.
type DocumentBackend struct {
	client *kivik.Client
	dbName string

	mu sync.Mutex
	db *kivik.DB

	logger *logger.Logger
}

// NewDocumentBackend builds the document backend. An empty DocumentURL
// yields an unconfigured backend. The database is created on first use.
func NewDocumentBackend(cfg config.ClientAdapter, log *logger.Logger) (*DocumentBackend, error) {
	d := &DocumentBackend{dbName: cfg.DocumentDB, logger: log}
	if cfg.DocumentURL == "" {
		return d, nil
	}

	client, err := kivik.New("couch", cfg.DocumentURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create couchdb client: %w", err)
	}
	d.client = client
	return d, nil
}

func (d *DocumentBackend) Name() string                        { return NameDocument }
func (d *DocumentBackend) Configured() bool                    { return d.client != nil }
func (d *DocumentBackend) MaxPayloadBytes() int                { return documentMaxPayloadBytes }
func (d *DocumentBackend) LibraryFormat() models.LibraryFormat { return models.LibraryFormatReduced }

// database returns the handle of the configured database, creating it when
// missing.
func (d *DocumentBackend) database(ctx context.Context) (*kivik.DB, error) {
	if !d.Configured() {
		return nil, ErrNotConfigured
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return d.db, nil
	}

	exists, err := d.client.DBExists(ctx, d.dbName)
	if err != nil {
		return nil, mapKivikError(fmt.Errorf("check database %s: %w", d.dbName, err))
	}
	if !exists {
		err = d.client.CreateDB(ctx, d.dbName)
		if err != nil && kivik.HTTPStatus(err) != http.StatusPreconditionFailed {
			return nil, mapKivikError(fmt.Errorf("create database %s: %w", d.dbName, err))
		}
		d.logger.Info().Str("func", "DocumentBackend.database").Str("db", d.dbName).Msg("created database")
	}

	d.db = d.client.DB(d.dbName)
	return d.db, nil
}

// Push upserts the user document with its current revision. A revision
// conflict from a concurrent writer is retried.
func (d *DocumentBackend) Push(ctx context.Context, userID string, payload models.SyncPayload) error {
	if err := checkSize(payload, d.MaxPayloadBytes()); err != nil {
		return err
	}
	db, err := d.database(ctx)
	if err != nil {
		return err
	}

	id := documentID(userID)
	for attempt := 1; ; attempt++ {
		rev, err := d.currentRev(ctx, db, id)
		if err != nil {
			return err
		}

		_, err = db.Put(ctx, id, userDoc{ID: id, Rev: rev, SyncPayload: payload})
		if err == nil {
			return nil
		}
		if kivik.HTTPStatus(err) != http.StatusConflict || attempt == documentPutAttempts {
			return mapKivikError(fmt.Errorf("put %s: %w", id, err))
		}
	}
}

// Pull reads the user document.
func (d *DocumentBackend) Pull(ctx context.Context, userID string) (models.SyncPayload, error) {
	db, err := d.database(ctx)
	if err != nil {
		return models.SyncPayload{}, err
	}

	var doc userDoc
	if err = db.Get(ctx, documentID(userID)).ScanDoc(&doc); err != nil {
		return models.SyncPayload{}, mapKivikError(fmt.Errorf("get %s: %w", documentID(userID), err))
	}
	return doc.SyncPayload, nil
}

// Delete removes the user document.
func (d *DocumentBackend) Delete(ctx context.Context, userID string) error {
	db, err := d.database(ctx)
	if err != nil {
		return err
	}

	id := documentID(userID)
	rev, err := d.currentRev(ctx, db, id)
	if err != nil || rev == "" {
		return err
	}

	if _, err = db.Delete(ctx, id, rev); err != nil && kivik.HTTPStatus(err) != http.StatusNotFound {
		return mapKivikError(fmt.Errorf("delete %s: %w", id, err))
	}
	return nil
}

// currentRev returns "" for a missing document.
func (d *DocumentBackend) currentRev(ctx context.Context, db *kivik.DB, id string) (string, error) {
	rev, err := db.GetRev(ctx, id)
	if kivik.HTTPStatus(err) == http.StatusNotFound {
		return "", nil
	}
	if err != nil {
		return "", mapKivikError(fmt.Errorf("get rev %s: %w", id, err))
	}
	return rev, nil
}

// Subscribe follows the continuous changes feed of the user document. Every
// write fires onChange, this client's own pushes included. A broken feed is
// reopened from the last seen sequence.
func (d *DocumentBackend) Subscribe(ctx context.Context, userID string, onChange func(models.SyncPayload)) (func(), error) {
	db, err := d.database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	go d.follow(ctx, db, documentID(userID), onChange)
	return cancel, nil
}

func (d *DocumentBackend) follow(ctx context.Context, db *kivik.DB, id string, onChange func(models.SyncPayload)) {
	log := d.logger.With().Str("func", "DocumentBackend.follow").Str("doc", id).Logger()
	since := "now"

	for {
		changes := db.Changes(ctx, kivik.Params(map[string]any{
			"feed":         "continuous",
			"filter":       "_doc_ids",
			"doc_ids":      []string{id},
			"include_docs": true,
			"since":        since,
			"heartbeat":    30_000,
		}))

		for changes.Next() {
			if seq := changes.Seq(); seq != "" {
				since = seq
			}
			if changes.Deleted() {
				continue
			}

			var doc userDoc
			if err := changes.ScanDoc(&doc); err != nil {
				log.Warn().Err(err).Msg("failed to decode changed document")
				continue
			}
			onChange(doc.SyncPayload)
		}
		if err := changes.Err(); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("changes feed broken")
		}
		_ = changes.Close()

		select {
		case <-ctx.Done():
			return
		case <-time.After(changesRetryDelay):
		}
	}
}

// Close releases the CouchDB client.
func (d *DocumentBackend) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}

func mapKivikError(err error) error {
	if err == nil {
		return nil
	}

	switch status := kivik.HTTPStatus(err); {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	case status == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrNotConfigured, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
}
