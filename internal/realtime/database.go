package realtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/kvstore"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/goccy/go-json"
)

const usersRoot = "users"

// Database is the realtime tree with every users/<id> subtree persisted as
// one badger entry.
type Database struct {
	tree   *Tree
	kv     *kvstore.Store
	now    func() time.Time
	logger *logger.Logger
}

// OpenDatabase loads persisted subtrees from kv. An unconfigured kv store
// gives a purely in-memory database.
func OpenDatabase(ctx context.Context, kv *kvstore.Store, log *logger.Logger) (*Database, error) {
	db := &Database{tree: NewTree(), kv: kv, now: time.Now, logger: log}
	if !kv.Configured() {
		return db, nil
	}

	entries, err := kv.Scan(ctx, usersRoot+"/")
	if err != nil {
		return nil, fmt.Errorf("load realtime tree: %w", err)
	}
	for key, data := range entries {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err = dec.Decode(&v); err != nil {
			log.Warn().Err(err).Str("func", "OpenDatabase").Str("key", key).Msg("skipping undecodable subtree")
			continue
		}
		if err = db.tree.Set(key, v); err != nil {
			return nil, err
		}
	}
	log.Info().Int("subtrees", len(entries)).Msg("realtime tree loaded")
	return db, nil
}

func (d *Database) Get(path string) (json.RawMessage, error) {
	return d.tree.Get(path)
}

// Set decodes raw, resolves server values and writes it at path.
func (d *Database) Set(ctx context.Context, path string, raw json.RawMessage) error {
	v, err := DecodeValue(raw, d.now())
	if err != nil {
		return err
	}
	if err = d.tree.Set(path, v); err != nil {
		return err
	}
	return d.persist(ctx, path)
}

// Update merges the children of an object value into path.
func (d *Database) Update(ctx context.Context, path string, raw json.RawMessage) error {
	v, err := DecodeValue(raw, d.now())
	if err != nil {
		return err
	}
	values, ok := v.(map[string]any)
	if v != nil && !ok {
		return fmt.Errorf("%w: update expects an object", ErrInvalidValue)
	}
	if err = d.tree.Update(path, values); err != nil {
		return err
	}
	return d.persist(ctx, path)
}

// persist stores the users/<id> subtree containing path.
func (d *Database) persist(ctx context.Context, path string) error {
	if !d.kv.Configured() {
		return nil
	}
	segs := SplitPath(path)
	if len(segs) < 2 || segs[0] != usersRoot {
		return nil
	}

	key := JoinPath(segs[:2]...)
	data, err := d.tree.Get(key)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(data)) == "null" {
		err = d.kv.Delete(ctx, key)
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil
		}
		return err
	}
	return d.kv.Set(ctx, key, data, 0)
}
