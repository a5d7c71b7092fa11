package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-reader-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProxySyncService stores one sync record per user in the KV store.
type ProxySyncService interface {
	// Configured reports whether the KV store is available.
	Configured() bool
	// Save stores data with lastSync stamped to the current server time.
	Save(ctx context.Context, userID string, data models.RemoteRecord) error
	// Load returns the stored record or ErrNoSyncData.
	Load(ctx context.Context, userID string) (models.RemoteRecord, error)
	Delete(ctx context.Context, userID string) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// KVStore is the subset of the badger store used by ProxySyncService.
type KVStore interface {
	Configured() bool
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
