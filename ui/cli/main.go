// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the oadkit command line interface: airplane
// sizing, mission evaluation, payload-range envelopes, fleet analysis
// and the study catalog.
package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cadolab/oadkit/internal/config"
	"github.com/cadolab/oadkit/internal/db"
	"github.com/cadolab/oadkit/internal/i18n"
	"github.com/cadolab/oadkit/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// SetBuildInfo lets the main package forward linker-set build metadata.
func SetBuildInfo(v, commit, date string) {
	if v != "" {
		version = v
	}
	if commit != "" {
		gitCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	// Load config
	defaults := map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./oadkit.db",
		"language":      "en",
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it specifically.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// This is the first run, or the config file was deleted. Create a default one.
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// Log a warning but don't fail, as the app can run on defaults.
			log.Warnf("Warning: could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Post-process config to ensure critical values are not empty, falling back to defaults.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
		viper.Set("database.type", appConfig.Database.Type)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
		viper.Set("database.dsn", appConfig.Database.Dsn)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
		viper.Set("language", appConfig.Language)
	}

	// Initialize i18n
	i18n.Init(appConfig.Language)

	// Initialize the database if not already initialized by tests or earlier setup.
	if !db.IsInitialized() {
		if _, err := db.New(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("error.db_init"), err)
		}
	}

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()
	return rootCmd.Execute()
}

func applyDefaultFlags(cmd *cobra.Command) {
	// Avoid redefining flags if they already exist (NewRootCmd may be called
	// multiple times in tests which creates a new root but uses package-level
	// subcommands). pflag will panic on duplicate flag definitions, so check
	// first.
	if cmd.Flags().Lookup("database.type") == nil {
		cmd.Flags().String("database.type", "sqlite", "Database type (e.g., sqlite, postgres)")
	}
	if cmd.Flags().Lookup("database.dsn") == nil {
		cmd.Flags().String("database.dsn", "./oadkit.db", "Database connection string (DSN)")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// resolveBuildVersion prefers linker-set values and falls back to module
// build info when the binary was installed with `go install`.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	versionOut, commitOut, dateOut = version, gitCommit, buildDate
	if versionOut != "dev" {
		return versionOut, commitOut, dateOut
	}
	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}
	if info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		versionOut = info.Main.Version
	}
	return versionOut, commitOut, dateOut
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oadkit",
		Short: "oadkit is a conceptual aircraft pre-design toolkit.",
		Long: `oadkit sizes transport airplanes from top level requirements.
A mass-mission adaptation closes the weights, statistical pre-design
laws evaluate the component geometry and masses, and a catalog stores
the resulting studies for mission, payload-range and fleet analyses.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				v, c, d := resolveBuildVersion(nil)
				compositeVersion := v
				if c != "" && c != "dev" {
					compositeVersion = compositeVersion + " (" + c + ")"
				}
				if d != "" {
					compositeVersion = compositeVersion + " built: " + d
				}
				fmt.Printf("%s\n", compositeVersion)
				os.Exit(0)
			}
			if verbose {
				db.SetDebug(true)
				logging.SetDebug(true)
			}
			return setupDefaultServices(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets -v for DB logs)")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)
	applyDefaultFlags(cmd)

	// Add subcommand flags
	applyDefaultFlags(designCmd)
	applyDefaultFlags(missionCmd)
	applyDefaultFlags(payloadRangeCmd)
	applyDefaultFlags(fleetCmd)
	applyDefaultFlags(catalogListCmd)
	applyDefaultFlags(catalogShowCmd)
	applyDefaultFlags(catalogDeleteCmd)
	applyDefaultFlags(auditLogCmd)
	applyDefaultFlags(backupCmd)
	applyDefaultFlags(restoreCmd)
	applyDefaultFlags(dbMaintainCmd)

	cmd.AddCommand(designCmd)
	cmd.AddCommand(missionCmd)
	cmd.AddCommand(payloadRangeCmd)
	cmd.AddCommand(fleetCmd)

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)
	catalogCmd.AddCommand(auditLogCmd)
	cmd.AddCommand(catalogCmd)

	cmd.AddCommand(backupCmd)
	cmd.AddCommand(restoreCmd)
	cmd.AddCommand(dbMaintainCmd)

	return cmd
}
