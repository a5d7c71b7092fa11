// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kvstore is a small key-value store on top of badger with native
// per-entry expiry. It backs the proxy KV server and the persistence of the
// realtime tree.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/dgraph-io/badger/v4"
)

const gcDiscardRatio = 0.5

// Options selects where the store lives. With neither a path nor InMemory
// the store is unconfigured.
type Options struct {
	Path     string
	InMemory bool
}

// Store is a badger-backed key-value store. The zero value is an
// unconfigured store: every call returns [ErrNotConfigured].
type Store struct {
	db     *badger.DB
	logger *logger.Logger
}

// New opens the store described by opts.
func New(opts Options, log *logger.Logger) (*Store, error) {
	if opts.Path == "" && !opts.InMemory {
		return &Store{logger: log}, nil
	}

	badgerOpts := badger.DefaultOptions(opts.Path)
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	badgerOpts = badgerOpts.WithLogger(badgerLogger{log: log})

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &Store{db: db, logger: log}, nil
}

// Configured reports whether the store has a backing database.
func (s *Store) Configured() bool {
	return s.db != nil
}

// Get returns the value of key or [ErrNotFound]. Expired entries are absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if key == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Store.Get").Str("key", key).Msg("badger read failed")
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key. A positive ttl makes the entry expire.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if key == "" {
		return ErrEmptyKey
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Store.Set").Str("key", key).Msg("badger write failed")
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key reports [ErrNotFound].
func (s *Store) Delete(ctx context.Context, key string) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if key == "" {
		return ErrEmptyKey
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); err != nil {
			return err
		}
		return txn.Delete([]byte(key))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Store.Delete").Str("key", key).Msg("badger delete failed")
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Scan returns every live entry whose key starts with prefix.
func (s *Store) Scan(ctx context.Context, prefix string) (map[string][]byte, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	out := make(map[string][]byte)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out[string(item.KeyCopy(nil))] = value
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Store.Scan").Str("prefix", prefix).Msg("badger scan failed")
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	return out, nil
}

// RunGC reclaims value log space until there is nothing left to collect.
func (s *Store) RunGC() error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	for {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Store) Close() error {
	if !s.Configured() {
		return nil
	}
	return s.db.Close()
}
