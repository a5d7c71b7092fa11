package service

import (
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
)

// Services are the server-side services behind the proxy KV endpoint.
type Services struct {
	AppInfoService   AppInfoService
	ProxySyncService ProxySyncService
}

func NewServices(kv KVStore, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:   appInfo,
		ProxySyncService: NewProxySyncService(kv, logger),
	}, nil
}
