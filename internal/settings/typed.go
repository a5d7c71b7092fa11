package settings

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
)

// themeStorage is the persisted shape of the theme-storage key.
type themeStorage struct {
	State   models.ThemePreferences `json:"state"`
	Version int                     `json:"version"`
}

// LoadAuth decodes the auth-storage key. ok is false when it is absent.
func (m *Mirror) LoadAuth() (models.AuthStorage, bool, error) {
	raw, ok, err := m.Get(KeyAuth)
	if err != nil || !ok || raw == "" {
		return models.AuthStorage{}, false, err
	}

	var auth models.AuthStorage
	if err = json.Unmarshal([]byte(raw), &auth); err != nil {
		return models.AuthStorage{}, false, fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyAuth, err)
	}
	return auth, true, nil
}

// SaveAuth encodes auth into the auth-storage key.
func (m *Mirror) SaveAuth(ctx context.Context, auth models.AuthStorage) error {
	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to encode auth storage: %w", err)
	}
	return m.Set(ctx, KeyAuth, string(data))
}

// LoadReaderSettings decodes reader-settings, falling back to the defaults
// when the key is absent. Fields missing from a stored blob keep their
// default value.
func (m *Mirror) LoadReaderSettings() (models.ReaderSettings, error) {
	settings := models.DefaultReaderSettings()

	raw, ok, err := m.Get(KeyReaderSettings)
	if err != nil {
		return settings, err
	}
	if !ok || raw == "" {
		return settings, nil
	}

	if err = json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.DefaultReaderSettings(), fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyReaderSettings, err)
	}
	return settings, nil
}

func (m *Mirror) SaveReaderSettings(ctx context.Context, settings models.ReaderSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode reader settings: %w", err)
	}
	return m.Set(ctx, KeyReaderSettings, string(data))
}

// LoadTheme decodes theme-storage, falling back to the defaults.
func (m *Mirror) LoadTheme() (models.ThemePreferences, error) {
	stored := themeStorage{State: models.DefaultThemePreferences()}

	raw, ok, err := m.Get(KeyTheme)
	if err != nil {
		return stored.State, err
	}
	if !ok || raw == "" {
		return stored.State, nil
	}

	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		return models.DefaultThemePreferences(), fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyTheme, err)
	}
	return stored.State, nil
}

func (m *Mirror) SaveTheme(ctx context.Context, theme models.ThemePreferences) error {
	data, err := json.Marshal(themeStorage{State: theme})
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	return m.Set(ctx, KeyTheme, string(data))
}
