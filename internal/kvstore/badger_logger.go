package kvstore

import (
	"strings"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
)

// badgerLogger routes badger's internal logs to zerolog. Info and debug
// chatter is logged at debug level.
type badgerLogger struct {
	log *logger.Logger
}

func (b badgerLogger) Errorf(format string, args ...any) {
	b.log.Error().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}

func (b badgerLogger) Warningf(format string, args ...any) {
	b.log.Warn().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}

func (b badgerLogger) Infof(format string, args ...any) {
	b.log.Debug().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}

func (b badgerLogger) Debugf(format string, args ...any) {
	b.log.Trace().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}
