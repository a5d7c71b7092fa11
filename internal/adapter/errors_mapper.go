package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// mapHTTPError translates a proxy response status into the adapter taxonomy.
// The proxy puts its message into the "error" field of the body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp)

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, body)
	case code == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrNotConfigured, body)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrTransient, code, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}

func errorBody(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var decoded models.ProxyResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err == nil && decoded.Error != "" {
		if decoded.Details != "" {
			return decoded.Error + ": " + decoded.Details
		}
		return decoded.Error
	}
	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
