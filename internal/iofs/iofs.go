// Package iofs prepares directories and files GNprofiles keeps in the
// user's home directory.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnprofiles/pkg/config"
)

// ConfigYAML is the template of config.yaml with default settings.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache and log directories if they do not
// exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the file
// already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ClearMatchCache removes the file with cached results of name
// verification. A missing file is not an error.
func ClearMatchCache(homeDir string) error {
	path := config.MatchCachePath(homeDir)
	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return RemoveFileError(path, err)
}
