package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-reader-sync/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrValidationNoUserID:  http.StatusBadRequest,
	service.ErrValidationNoData:    http.StatusBadRequest,
	service.ErrNoSyncData:          http.StatusNotFound,
	service.ErrKVNotConfigured:     http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
