package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
)

// payloadToRecord converts a payload to the generic object the proxy stores.
func payloadToRecord(p models.SyncPayload) (models.RemoteRecord, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var record models.RemoteRecord
	if err = json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return record, nil
}

// recordToPayload converts a stored object back to a payload. Every domain
// field must be a string.
func recordToPayload(record models.RemoteRecord) (models.SyncPayload, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return models.SyncPayload{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	var p models.SyncPayload
	if err = json.Unmarshal(data, &p); err != nil {
		return models.SyncPayload{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return p, nil
}

// checkSize returns ErrPayloadTooLarge when p does not fit into limit bytes.
func checkSize(p models.SyncPayload, limit int) error {
	size, err := p.Size()
	if err != nil {
		return fmt.Errorf("measure payload: %w", err)
	}
	if limit > 0 && size > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, size, limit)
	}
	return nil
}

func normalizeBaseURL(raw string, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
