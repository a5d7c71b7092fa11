package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/kvstore"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
)

const (
	// ProxyRecordTTL is how long a saved record lives without being saved again.
	ProxyRecordTTL = 30 * 24 * time.Hour

	// lastSyncLayout is RFC 3339 in UTC with millisecond precision.
	lastSyncLayout = "2006-01-02T15:04:05.000Z07:00"
)

type proxySyncService struct {
	kv  KVStore
	now func() time.Time

	logger *logger.Logger
}

func NewProxySyncService(kv KVStore, logger *logger.Logger) ProxySyncService {
	return &proxySyncService{kv: kv, now: time.Now, logger: logger}
}

// ProxyKey is the KV key of a user's sync record.
func ProxyKey(userID string) string {
	return "user:" + userID + ":sync"
}

func (s *proxySyncService) Configured() bool {
	return s.kv.Configured()
}

func (s *proxySyncService) Save(ctx context.Context, userID string, data models.RemoteRecord) error {
	if !s.kv.Configured() {
		return ErrKVNotConfigured
	}
	if userID == "" {
		return ErrValidationNoUserID
	}
	if data == nil {
		return ErrValidationNoData
	}

	record := make(models.RemoteRecord, len(data)+1)
	for k, v := range data {
		record[k] = v
	}
	record["lastSync"] = s.now().UTC().Format(lastSyncLayout)

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.kv.Set(ctx, ProxyKey(userID), encoded, ProxyRecordTTL); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "proxySyncService.Save").Str("user_id", userID).Msg("error saving sync record")
		return err
	}
	return nil
}

func (s *proxySyncService) Load(ctx context.Context, userID string) (models.RemoteRecord, error) {
	if !s.kv.Configured() {
		return nil, ErrKVNotConfigured
	}
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	data, err := s.kv.Get(ctx, ProxyKey(userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, ErrNoSyncData
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "proxySyncService.Load").Str("user_id", userID).Msg("error loading sync record")
		return nil, err
	}

	var record models.RemoteRecord
	if err = json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode sync record: %w", err)
	}
	return record, nil
}

// Delete removes the record. A missing record is not an error.
func (s *proxySyncService) Delete(ctx context.Context, userID string) error {
	if !s.kv.Configured() {
		return ErrKVNotConfigured
	}
	if userID == "" {
		return ErrValidationNoUserID
	}

	err := s.kv.Delete(ctx, ProxyKey(userID))
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "proxySyncService.Delete").Str("user_id", userID).Msg("error deleting sync record")
		return err
	}
	return nil
}
