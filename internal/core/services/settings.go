package services

import (
	"fmt"
	"strconv"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL     = "api.base_url"
	keyAPIPageSize    = "api.page_size"
	keyAPIMinInterval = "api.min_interval_ms"
	keyAPIBackoffBase = "api.backoff_base_ms"
	keyAPIBackoffCap  = "api.backoff_cap_ms"
	keyAPITimeout     = "api.timeout_s"
	keySchemaID       = "schema.id_property"
	keySchemaURL      = "schema.url_property"
	keyLinkAcceptTop  = "link.accept_top"
	keyLibraryDir     = "library.dir"
)

// settingKeys lists every known key in display order.
var settingKeys = []string{
	keyAPIBaseURL,
	keyAPIPageSize,
	keyAPIMinInterval,
	keyAPIBackoffBase,
	keyAPIBackoffCap,
	keyAPITimeout,
	keySchemaID,
	keySchemaURL,
	keyLinkAcceptTop,
	keyLibraryDir,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, falling back to
// defaults for anything the config file does not set.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:       s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			PageSize:      s.getInt(keyAPIPageSize, defaults.API.PageSize),
			MinIntervalMs: s.getInt(keyAPIMinInterval, defaults.API.MinIntervalMs),
			BackoffBaseMs: s.getInt(keyAPIBackoffBase, defaults.API.BackoffBaseMs),
			BackoffCapMs:  s.getInt(keyAPIBackoffCap, defaults.API.BackoffCapMs),
			TimeoutS:      s.getInt(keyAPITimeout, defaults.API.TimeoutS),
		},
		Schema: domain.SchemaSettings{
			IDProperty:  s.getString(keySchemaID, defaults.Schema.IDProperty),
			URLProperty: s.getString(keySchemaURL, defaults.Schema.URLProperty),
		},
		Link: domain.LinkSettings{
			AcceptTop: s.getBool(keyLinkAcceptTop, defaults.Link.AcceptTop),
		},
		Library: domain.LibrarySettings{
			Dir: s.getString(keyLibraryDir, defaults.Library.Dir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	entries := []struct {
		key   string
		value any
	}{
		{keyAPIBaseURL, settings.API.BaseURL},
		{keyAPIPageSize, settings.API.PageSize},
		{keyAPIMinInterval, settings.API.MinIntervalMs},
		{keyAPIBackoffBase, settings.API.BackoffBaseMs},
		{keyAPIBackoffCap, settings.API.BackoffCapMs},
		{keyAPITimeout, settings.API.TimeoutS},
		{keySchemaID, settings.Schema.IDProperty},
		{keySchemaURL, settings.Schema.URLProperty},
		{keyLinkAcceptTop, settings.Link.AcceptTop},
		{keyLibraryDir, settings.Library.Dir},
	}
	for _, e := range entries {
		if err := s.configStore.Set(e.key, e.value); err != nil {
			return fmt.Errorf("save %s: %w", e.key, err)
		}
	}
	return nil
}

// Set stores one dotted-key setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyAPIBaseURL, keySchemaID, keySchemaURL, keyLibraryDir:
		return s.configStore.Set(key, value)

	case keyAPIPageSize, keyAPIMinInterval, keyAPIBackoffBase, keyAPIBackoffCap, keyAPITimeout:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants an integer: %w", key, err)
		}
		return s.configStore.Set(key, n)

	case keyLinkAcceptTop:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s wants a boolean: %w", key, err)
		}
		return s.configStore.Set(key, b)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
	}
}

// List returns every known setting with its current value, in stable
// order.
func (s *SettingsService) List() ([]driving.Setting, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	values := map[string]string{
		keyAPIBaseURL:     settings.API.BaseURL,
		keyAPIPageSize:    strconv.Itoa(settings.API.PageSize),
		keyAPIMinInterval: strconv.Itoa(settings.API.MinIntervalMs),
		keyAPIBackoffBase: strconv.Itoa(settings.API.BackoffBaseMs),
		keyAPIBackoffCap:  strconv.Itoa(settings.API.BackoffCapMs),
		keyAPITimeout:     strconv.Itoa(settings.API.TimeoutS),
		keySchemaID:       settings.Schema.IDProperty,
		keySchemaURL:      settings.Schema.URLProperty,
		keyLinkAcceptTop:  strconv.FormatBool(settings.Link.AcceptTop),
		keyLibraryDir:     settings.Library.Dir,
	}

	out := make([]driving.Setting, 0, len(settingKeys))
	for _, key := range settingKeys {
		out = append(out, driving.Setting{Key: key, Value: values[key]})
	}
	return out, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.API.BaseURL == "" {
		return fmt.Errorf("%s must not be empty", keyAPIBaseURL)
	}
	if settings.API.PageSize <= 0 {
		return fmt.Errorf("%s must be positive", keyAPIPageSize)
	}
	if settings.API.MinIntervalMs < 0 {
		return fmt.Errorf("%s must not be negative", keyAPIMinInterval)
	}
	if settings.API.BackoffBaseMs <= 0 {
		return fmt.Errorf("%s must be positive", keyAPIBackoffBase)
	}
	if settings.API.BackoffCapMs < settings.API.BackoffBaseMs {
		return fmt.Errorf("%s must not be below %s", keyAPIBackoffCap, keyAPIBackoffBase)
	}
	if settings.API.TimeoutS <= 0 {
		return fmt.Errorf("%s must be positive", keyAPITimeout)
	}
	if settings.Schema.IDProperty == "" {
		return fmt.Errorf("%s must not be empty", keySchemaID)
	}
	if settings.Schema.URLProperty == "" {
		return fmt.Errorf("%s must not be empty", keySchemaURL)
	}
	return nil
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getString returns the stored string for key, or fallback when the
// key is unset.
func (s *SettingsService) getString(key, fallback string) string {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetString(key)
}

// getInt returns the stored integer for key, or fallback when the key
// is unset.
func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}

// getBool returns the stored boolean for key, or fallback when the
// key is unset.
func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}
