package config

import (
	"net/url"
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptVerifierURL sets the base URL of GNverifier API.
// A trailing slash is added when missing.
func OptVerifierURL(s string) Option {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return func(c *Config) {
		if !isValidString("Verifier URL", s) {
			return
		}
		if !isValidURL("Verifier URL", s) {
			return
		}
		c.Verifier.URL = s
	}
}

// OptVerifierDataSources sets data-sources used for name matching.
// Empty slice and non-positive IDs are ignored.
func OptVerifierDataSources(ii []int) Option {
	return func(c *Config) {
		var res []int
		for _, v := range ii {
			if isValidInt("Verifier Data Source", v) {
				res = append(res, v)
			}
		}
		if len(res) > 0 {
			c.Verifier.DataSources = res
		}
	}
}

// OptVerifierRequestsPerSecond limits the rate of calls to GNverifier.
func OptVerifierRequestsPerSecond(i int) Option {
	return func(c *Config) {
		if isValidInt("Verifier Requests Per Second", i) {
			c.Verifier.RequestsPerSecond = i
		}
	}
}

// OptVerifierTimeout sets HTTP timeout of GNverifier requests in seconds.
func OptVerifierTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Verifier Timeout", i) {
			c.Verifier.Timeout = i
		}
	}
}

// OptImportImmediateContributors makes new contributors persist during
// reference materialization.
func OptImportImmediateContributors(b bool) Option {
	return func(c *Config) {
		c.Import.ImmediateContributors = b
	}
}

// OptImportProgressBar toggles the terminal progress bar.
// Runtime-only field - not in ToOptions().
func OptImportProgressBar(b bool) Option {
	return func(c *Config) {
		c.Import.ProgressBar = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent import workers.
// Default is 10.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		gn.Warn("<em>%s</em> is not a valid URL: '%s', ignoring", name, s)
		return false
	}
	return true
}
