package bus

import (
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

// zerologAdapter routes watermill's internal logs into the application logger.
type zerologAdapter struct {
	log *logger.Logger
}

func newZerologAdapter(log *logger.Logger) watermill.LoggerAdapter {
	return &zerologAdapter{log: log}
}

func withFields(e *zerolog.Event, fields watermill.LogFields) *zerolog.Event {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	return e
}

func (a *zerologAdapter) Error(msg string, err error, fields watermill.LogFields) {
	withFields(a.log.Err(err), fields).Str("func", "watermill").Msg(msg)
}

func (a *zerologAdapter) Info(msg string, fields watermill.LogFields) {
	withFields(a.log.Debug(), fields).Str("func", "watermill").Msg(msg)
}

func (a *zerologAdapter) Debug(msg string, fields watermill.LogFields) {
	withFields(a.log.Trace(), fields).Str("func", "watermill").Msg(msg)
}

func (a *zerologAdapter) Trace(msg string, fields watermill.LogFields) {
	withFields(a.log.Trace(), fields).Str("func", "watermill").Msg(msg)
}

func (a *zerologAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	ctx := a.log.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &zerologAdapter{log: &logger.Logger{Logger: ctx.Logger()}}
}
