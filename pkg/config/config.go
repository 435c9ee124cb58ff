// Package config provides configuration management for GNprofiles.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//   - Verifier: url, data_sources, requests_per_second, timeout
//   - Import: immediate_contributors
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.ProgressBar
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNPROFILES_ prefix with underscores for nesting:
//
//	GNPROFILES_DATABASE_HOST=localhost
//	GNPROFILES_VERIFIER_URL=https://verifier.globalnames.org/api/v1/
//	GNPROFILES_JOBS_NUMBER=10
package config

// Config represents the complete GNprofiles configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Verifier contains settings of the name resolution service.
	Verifier VerifierConfig `mapstructure:"verifier" yaml:"verifier"`

	// Import contains settings of the bulk profile import.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the size of the worker pool used by the import for both
	// the collection scan and the profile build passes.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// VerifierConfig contains settings for GNverifier, the service that
// matches scientific names to taxonomic records.
type VerifierConfig struct {
	// URL is the base URL of GNverifier API, it must end with a slash.
	URL string `mapstructure:"url" yaml:"url"`

	// DataSources are IDs of data-sources names are matched against.
	// The first data-source that has a match provides GUID and
	// classification.
	DataSources []int `mapstructure:"data_sources" yaml:"data_sources"`

	// RequestsPerSecond limits how often import workers call the service.
	RequestsPerSecond int `mapstructure:"requests_per_second" yaml:"requests_per_second"`

	// Timeout is the HTTP timeout in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// ImportConfig contains settings of the profile import.
type ImportConfig struct {
	// ImmediateContributors makes the import persist new contributors
	// right away instead of saving them with the first profile that
	// references them.
	ImmediateContributors bool `mapstructure:"immediate_contributors" yaml:"immediate_contributors"`

	// ProgressBar shows a terminal progress bar during the profile
	// build pass. Runtime only.
	ProgressBar bool `mapstructure:"progress_bar" yaml:"progress_bar"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "gnprofiles",
			SSLMode:  "disable",
		},
		Verifier: VerifierConfig{
			URL:               "https://verifier.globalnames.org/api/v1/",
			DataSources:       []int{1},
			RequestsPerSecond: 10,
			Timeout:           30,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: 10,
	}

	return res
}
