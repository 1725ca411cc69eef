package config_test

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/cadolab/oadkit/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func resetViper() {
	// Reset global viper state between tests
	viper.Reset()
}

func TestLoadConfig_Defaults(t *testing.T) {
	tmp := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmp)
	defer os.Unsetenv("XDG_CONFIG_HOME")

	resetViper()
	defer resetViper()

	defaults := map[string]any{"database.type": "sqlite", "database.dsn": "./oadkit.db", "language": "en"}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, nil)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
	}
	if got.Database.Type != "sqlite" {
		t.Fatalf("expected sqlite default, got %q", got.Database.Type)
	}
	if got.Language != "en" {
		t.Fatalf("expected en default, got %q", got.Language)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmp)
	defer os.Unsetenv("XDG_CONFIG_HOME")

	resetViper()
	defer resetViper()

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./oadkit.db"
	c.Language = "en"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/db\nlanguage: de\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	resetViper()
	defer resetViper()

	defaults := map[string]any{"database.type": "sqlite", "database.dsn": "./oadkit.db", "language": "en"}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
}
