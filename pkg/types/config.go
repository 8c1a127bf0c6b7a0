package types

import "time"

// HTTPConfig holds shared HTTP settings for provider clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the number of retries on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// ProviderConfig selects and configures the maps provider.
type ProviderConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIKey is the Google Maps Web Services key. Empty selects the
	// offline provider, which makes every search fall back to mock data.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Language is passed to the provider for localized names (optional).
	Language string `json:"language,omitempty" yaml:"language,omitempty" mapstructure:"language"`
}

// GeocoderConfig holds settings for location resolution.
type GeocoderConfig struct {
	// Timeout bounds a single live geocode call (default 5s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// CacheTTL is how long resolved coordinates are reused (default 1h).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// SearchConfig holds the tunables of the fan-out and ranking pipeline.
// The thresholds were tuned empirically and are configurable on purpose.
type SearchConfig struct {
	// MaxCategoryQueries caps category queries in the primary fan-out (default 5).
	MaxCategoryQueries int `json:"max_category_queries" yaml:"max_category_queries" mapstructure:"max_category_queries"`

	// MaxSecondaryQueries caps queries in the broad secondary fan-out (default 50).
	MaxSecondaryQueries int `json:"max_secondary_queries" yaml:"max_secondary_queries" mapstructure:"max_secondary_queries"`

	// QueryTimeout bounds each individual provider query (default 10s).
	QueryTimeout time.Duration `json:"query_timeout" yaml:"query_timeout" mapstructure:"query_timeout"`

	// FilterThreshold: score filtering applies only above this many results (default 20).
	FilterThreshold int `json:"filter_threshold" yaml:"filter_threshold" mapstructure:"filter_threshold"`

	// MinScore is the lowest score kept when filtering applies (default 3).
	MinScore int `json:"min_score" yaml:"min_score" mapstructure:"min_score"`

	// SecondaryThreshold: fewer aggregated results than this triggers the
	// secondary fan-out (default 10).
	SecondaryThreshold int `json:"secondary_threshold" yaml:"secondary_threshold" mapstructure:"secondary_threshold"`

	// MinRawResults: fewer raw provider results than this means the
	// provider is starved and mock data is used instead (default 3).
	MinRawResults int `json:"min_raw_results" yaml:"min_raw_results" mapstructure:"min_raw_results"`

	// Seed seeds the random source used for synthetic values. Zero seeds
	// from the clock.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`
}

// SessionBackend identifies the session persistence implementation.
type SessionBackend string

const (
	SessionFile   SessionBackend = "file"
	SessionSQLite SessionBackend = "sqlite"
)

// SessionConfig holds settings for trial/premium state persistence.
type SessionConfig struct {
	// Backend selects file (JSON) or sqlite.
	Backend SessionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Path is the JSON file or SQLite database path.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// Config groups every component configuration.
type Config struct {
	Provider ProviderConfig `json:"provider" yaml:"provider" mapstructure:"provider"`
	Geocoder GeocoderConfig `json:"geocoder" yaml:"geocoder" mapstructure:"geocoder"`
	Search   SearchConfig   `json:"search" yaml:"search" mapstructure:"search"`
	Session  SessionConfig  `json:"session" yaml:"session" mapstructure:"session"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
}

// DefaultSearchConfig returns the pipeline defaults.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MaxCategoryQueries:  5,
		MaxSecondaryQueries: 50,
		QueryTimeout:        10 * time.Second,
		FilterThreshold:     20,
		MinScore:            3,
		SecondaryThreshold:  10,
		MinRawResults:       3,
	}
}

// DefaultConfig returns a complete configuration with defaults for every
// component. The provider has no API key, so it runs offline.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			HTTPConfig: HTTPConfig{Timeout: 10 * time.Second, MaxRetries: 3},
		},
		Geocoder: GeocoderConfig{
			Timeout:  5 * time.Second,
			CacheTTL: time.Hour,
		},
		Search: DefaultSearchConfig(),
		Session: SessionConfig{
			Backend: SessionFile,
			Path:    ".seekspot/session.json",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}
