/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/internal/iofs"
	"github.com/gnames/gnprofiles/internal/iologger"
	app "github.com/gnames/gnprofiles/pkg"
	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnprofiles",
		Short:   "GNprofiles imports species profiles into a PostgreSQL database",
		Long: `GNprofiles keeps collections (opuses) of species profiles in
PostgreSQL and imports batches of profile records into them.

Features:
  - Schema Management: create and migrate the database schema
  - Opus Management: create and list collections of profiles
  - Profile Import: bulk import of profiles from JSON or YAML files,
    with scientific names matched by GNverifier

Configuration is read from ~/.config/gnprofiles/config.yaml and from
environment variables with GNPROFILES_ prefix.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnprofiles version" prefix
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	cmd.Flags().BoolP("version", "V", false, "version for gnprofiles")

	cmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getOpusCmd(),
		getImportCmd(),
	)
	return cmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with defaults until config is read.
	if err = iologger.Init(config.LogDir(homeDir), config.New().Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	gn.Info(
		"Configuration file is available at <em>%s</em>",
		config.ConfigFilePath(homeDir),
	)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, ConfigReadError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, ConfigReadError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed env variables are listed explicitly. They match the fields
	// of config.ToOptions(), the persistent part of configuration.
	v.SetEnvPrefix("GNPROFILES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "GNPROFILES_DATABASE_HOST")
	v.BindEnv("database.port", "GNPROFILES_DATABASE_PORT")
	v.BindEnv("database.user", "GNPROFILES_DATABASE_USER")
	v.BindEnv("database.password", "GNPROFILES_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNPROFILES_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNPROFILES_DATABASE_SSL_MODE")

	// Verifier configuration
	v.BindEnv("verifier.url", "GNPROFILES_VERIFIER_URL")
	v.BindEnv("verifier.requests_per_second",
		"GNPROFILES_VERIFIER_REQUESTS_PER_SECOND")
	v.BindEnv("verifier.timeout", "GNPROFILES_VERIFIER_TIMEOUT")

	// Import configuration
	v.BindEnv("import.immediate_contributors",
		"GNPROFILES_IMPORT_IMMEDIATE_CONTRIBUTORS")

	// Log configuration
	v.BindEnv("log.level", "GNPROFILES_LOG_LEVEL")
	v.BindEnv("log.format", "GNPROFILES_LOG_FORMAT")
	v.BindEnv("log.destination", "GNPROFILES_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNPROFILES_JOBS_NUMBER")

	v.AutomaticEnv()
}
