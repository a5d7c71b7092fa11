package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/MKhiriev/go-reader-sync/models"
)

const (
	proxySyncPath        = "/api/sync"
	proxyMaxPayloadBytes = 900_000
	beaconTimeout        = 5 * time.Second
)

// ProxyBackend talks to the proxy KV server over HTTP. The whole payload is
// stored as one record per user; the server stamps lastSync.
type ProxyBackend struct {
	client  *utils.HTTPClient
	baseURL string

	beacons sync.WaitGroup
	logger  *logger.Logger
}

// NewProxyBackend builds the proxy backend. An empty ProxyURL yields an
// unconfigured backend; an unparsable one is an error.
func NewProxyBackend(cfg config.ClientAdapter, log *logger.Logger) (*ProxyBackend, error) {
	p := &ProxyBackend{logger: log}
	if cfg.ProxyURL == "" {
		return p, nil
	}

	baseURL, err := normalizeBaseURL(cfg.ProxyURL, "http")
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}
	p.baseURL = baseURL
	p.client = utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	return p, nil
}

func (p *ProxyBackend) Name() string                        { return NameProxy }
func (p *ProxyBackend) Configured() bool                    { return p.client != nil }
func (p *ProxyBackend) MaxPayloadBytes() int                { return proxyMaxPayloadBytes }
func (p *ProxyBackend) LibraryFormat() models.LibraryFormat { return models.LibraryFormatFull }

// Push sends action "save".
func (p *ProxyBackend) Push(ctx context.Context, userID string, payload models.SyncPayload) error {
	if !p.Configured() {
		return ErrNotConfigured
	}
	if err := checkSize(payload, p.MaxPayloadBytes()); err != nil {
		return err
	}

	record, err := payloadToRecord(payload)
	if err != nil {
		return err
	}

	_, err = p.do(ctx, models.ProxyRequest{UserID: userID, Action: models.ProxyActionSave, Data: record})
	return err
}

// Pull sends action "load". A 404 is reported as ErrNotFound.
func (p *ProxyBackend) Pull(ctx context.Context, userID string) (models.SyncPayload, error) {
	if !p.Configured() {
		return models.SyncPayload{}, ErrNotConfigured
	}

	result, err := p.do(ctx, models.ProxyRequest{UserID: userID, Action: models.ProxyActionLoad})
	if err != nil {
		return models.SyncPayload{}, err
	}
	if len(result.Data) == 0 {
		return models.SyncPayload{}, ErrNotFound
	}

	return recordToPayload(result.Data)
}

// Delete sends action "delete".
func (p *ProxyBackend) Delete(ctx context.Context, userID string) error {
	if !p.Configured() {
		return ErrNotConfigured
	}

	_, err := p.do(ctx, models.ProxyRequest{UserID: userID, Action: models.ProxyActionDelete})
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// Beacon pushes on a detached context bounded by a short timeout.
func (p *ProxyBackend) Beacon(userID string, payload models.SyncPayload) {
	p.beacons.Add(1)
	go func() {
		defer p.beacons.Done()

		ctx, cancel := context.WithTimeout(context.Background(), beaconTimeout)
		defer cancel()

		if err := p.Push(ctx, userID, payload); err != nil {
			p.logger.Err(err).Str("func", "ProxyBackend.Beacon").Msg("beacon push failed")
		}
	}()
}

// Flush waits for pending beacons.
func (p *ProxyBackend) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.beacons.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ProxyBackend) do(ctx context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
	var result models.ProxyResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&models.ProxyResponse{}).
		Post(proxySyncPath)
	if err != nil {
		return result, fmt.Errorf("%w: proxy %s request: %w", ErrTransient, req.Action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}
