package driving

import "github.com/partlink-labs/partlink-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set stores one dotted-key setting (e.g. "api.page_size") from
	// its string form. Returns domain.ErrNotFound for unknown keys.
	Set(key, value string) error

	// List returns every known setting key with its current value, in
	// stable order.
	List() ([]Setting, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Validate checks that current settings are usable.
	Validate() error

	// Path returns the configuration file path.
	Path() string
}

// Setting is one configuration entry for display.
type Setting struct {
	// Key is the dotted configuration key.
	Key string

	// Value is the current value rendered as a string.
	Value string
}
