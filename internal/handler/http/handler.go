package http

import (
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services
	validate *validator.Validate

	rateLimit      int
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validate:       validator.New(),
		rateLimit:      cfg.RateLimit,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
