package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration resolved by LoadConfig.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Language string `mapstructure:"language" yaml:"language"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Oadkit")
		default: // Linux, macOS, etc.
			configDir = "/etc/oadkit"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "oadkit")
	}

	return filepath.Join(configDir, "oadkit.yaml"), nil
}

// LoadConfig resolves the configuration from defaults, the config file,
// environment variables and command flags, in increasing precedence.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("oadkit")
	v.SetConfigType("yaml")

	// 3. Add explicit config file path if provided via --config flag.
	// This has the highest precedence for file-based configuration.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for oadkit.yaml in current dir

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// 6. Merge a `.oadkit.yaml` dropped next to a study, so a project
	// directory can pin its own database and defaults.
	mergeProjectConfig(v)

	// 7. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("oadkit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// cli
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	// parse config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// mergeProjectConfig checks for a `.oadkit.yaml` file in the current
// directory and merges it into the viper configuration if found.
func mergeProjectConfig(v *viper.Viper) {
	projectConfigFile := ".oadkit.yaml"
	if _, err := os.Stat(projectConfigFile); err == nil {
		// File exists, let's try to merge it.
		v.SetConfigFile(projectConfigFile)
		// It will error on a malformed file; ignore it here to avoid
		// breaking startup on a stray file.
		_ = v.MergeInConfig()
		// Reset the config file path to avoid side effects.
		v.SetConfigFile("")
	}
}

// WriteConfigFile persists the configuration in the standard location.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		return err
	}

	return nil
}
