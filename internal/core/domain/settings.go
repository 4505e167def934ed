package domain

import "time"

// APISettings holds catalog search client configuration.
type APISettings struct {
	// BaseURL is the search endpoint root.
	BaseURL string

	// PageSize is the number of candidates requested per search.
	PageSize int

	// MinIntervalMs is the minimum gap between requests, in
	// milliseconds.
	MinIntervalMs int

	// BackoffBaseMs is the first backoff after a throttled request,
	// in milliseconds.
	BackoffBaseMs int

	// BackoffCapMs is the ceiling the exponential backoff grows to,
	// in milliseconds.
	BackoffCapMs int

	// TimeoutS is the per-request timeout, in seconds.
	TimeoutS int
}

// MinInterval returns the minimum inter-request gap as a duration.
func (a APISettings) MinInterval() time.Duration {
	return time.Duration(a.MinIntervalMs) * time.Millisecond
}

// BackoffBase returns the first backoff as a duration.
func (a APISettings) BackoffBase() time.Duration {
	return time.Duration(a.BackoffBaseMs) * time.Millisecond
}

// BackoffCap returns the backoff ceiling as a duration.
func (a APISettings) BackoffCap() time.Duration {
	return time.Duration(a.BackoffCapMs) * time.Millisecond
}

// Timeout returns the per-request timeout as a duration.
func (a APISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutS) * time.Second
}

// SchemaSettings names the schematic properties the tool writes.
type SchemaSettings struct {
	// IDProperty is the property holding the supplier part number.
	IDProperty string

	// URLProperty is the property holding the product page.
	URLProperty string
}

// LinkSettings holds defaults for the link command.
type LinkSettings struct {
	// AcceptTop commits the first candidate without asking.
	AcceptTop bool
}

// LibrarySettings holds offline parts-library configuration.
type LibrarySettings struct {
	// Dir is the directory holding the local index and store.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// API holds catalog client settings.
	API APISettings

	// Schema holds property naming settings.
	Schema SchemaSettings

	// Link holds link command defaults.
	Link LinkSettings

	// Library holds offline library settings.
	Library LibrarySettings
}

// DefaultAppSettings returns settings with sensible defaults. The
// endpoint and pacing values match the public catalog's observed
// tolerances; anything can be overridden in the config file.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:       "https://jlcpcb.com",
			PageSize:      10,
			MinIntervalMs: 1500,
			BackoffBaseMs: 3000,
			BackoffCapMs:  60000,
			TimeoutS:      15,
		},
		Schema: SchemaSettings{
			IDProperty:  PropSupplierID,
			URLProperty: PropSupplierURL,
		},
		Link:    LinkSettings{AcceptTop: false},
		Library: LibrarySettings{Dir: ""},
	}
}
