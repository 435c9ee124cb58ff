package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnprofiles"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnprofiles"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnprofiles", "logs"),
		},
		{
			msg: "match cache",
			fn:  config.MatchCachePath,
			res: filepath.Join(tempHome, ".cache", "gnprofiles", "matches.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "gnprofiles", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		assert.Equal(t, "https://verifier.globalnames.org/api/v1/",
			cfg.Verifier.URL)
		assert.Equal(t, []int{1}, cfg.Verifier.DataSources)
		assert.Equal(t, 10, cfg.Verifier.RequestsPerSecond)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, 10, cfg.JobsNumber)
		assert.False(t, cfg.Import.ImmediateContributors)
		assert.False(t, cfg.Import.ProgressBar)
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid host", "db.example.com", "db.example.com"},
		{"trims whitespace", "  db.example.com  ", "db.example.com"},
		{"ignores empty string", "", "localhost"},
		{"ignores whitespace-only", "   ", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets require", "require", "require"},
		{"sets verify-full", "verify-full", "verify-full"},
		{"normalizes to lowercase", "REQUIRE", "require"},
		{"ignores invalid value", "invalid", "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseSSLMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionVerifierURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps trailing slash",
			input:    "http://localhost:8888/api/v1/",
			expected: "http://localhost:8888/api/v1/",
		},
		{
			name:     "adds trailing slash",
			input:    "http://localhost:8888/api/v1",
			expected: "http://localhost:8888/api/v1/",
		},
		{
			name:     "ignores empty",
			input:    "",
			expected: "https://verifier.globalnames.org/api/v1/",
		},
		{
			name:     "ignores value without host",
			input:    "verifier",
			expected: "https://verifier.globalnames.org/api/v1/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptVerifierURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.Verifier.URL)
		})
	}
}

func TestOptionVerifierDataSources(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"sets data sources", []int{1, 11}, []int{1, 11}},
		{"drops non-positive", []int{0, 3, -1}, []int{3}},
		{"ignores empty", nil, []int{1}},
		{"ignores all invalid", []int{0, -2}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptVerifierDataSources(tt.input)})
			assert.Equal(t, tt.expected, cfg.Verifier.DataSources)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets debug", "debug", "debug"},
		{"sets error", "error", "error"},
		{"normalizes to lowercase", "DEBUG", "debug"},
		{"ignores invalid value", "trace", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets text", "text", "text"},
		{"normalizes to lowercase", " TEXT ", "text"},
		{"ignores colored format", "tint", "json"},
		{"ignores invalid value", "xml", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Format)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid jobs number", 4, 4},
		{"ignores zero", 0, 10},
		{"ignores negative", -5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptJobsNumber(tt.input)})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDatabaseHost("first.host.com"),
			config.OptDatabaseHost("second.host.com"),
		})
		assert.Equal(t, "second.host.com", cfg.Database.Host)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("round-trips persistent fields", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptVerifierURL("http://localhost:8888/api/v1/"),
			config.OptVerifierDataSources([]int{1, 169}),
			config.OptVerifierRequestsPerSecond(3),
			config.OptVerifierTimeout(5),
			config.OptImportImmediateContributors(true),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Verifier, newCfg.Verifier)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
		assert.True(t, newCfg.Import.ImmediateContributors)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptImportProgressBar(true),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.False(t, newCfg.Import.ProgressBar)
	})
}
