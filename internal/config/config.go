// Package config layers CLI settings: defaults, then an optional notes.yaml,
// then NOTES_* environment variables, then flags bound by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aretw0/notes/pkg/core"
)

const (
	// EnvPrefix prefixes every environment override (NOTES_DIR, ...).
	EnvPrefix = "NOTES"
	// FileName is the config file base name looked up in search dirs.
	FileName = "notes"
)

// Config is the resolved CLI configuration.
type Config struct {
	Dir         string        `mapstructure:"dir"`
	DeleteDelay time.Duration `mapstructure:"delete_delay"`
	ReadOnly    bool          `mapstructure:"read_only"`
	Memory      bool          `mapstructure:"memory"`
	Verbose     bool          `mapstructure:"verbose"`
	Theme       string        `mapstructure:"theme"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("dir", "")
	v.SetDefault("delete_delay", core.DefaultDeleteDelay)
	v.SetDefault("read_only", false)
	v.SetDefault("memory", false)
	v.SetDefault("verbose", false)
	v.SetDefault("theme", "dark")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile when given, otherwise the first notes.yaml (or
// notes.yml) found in searchDirs, and decodes the merged settings. Only an
// explicit configFile must exist. Other files in the search dirs, such as
// the notes.json slot, are never read as config.
func Load(v *viper.Viper, configFile string, searchDirs ...string) (Config, error) {
	path := configFile
	if path == "" {
		path = findConfig(searchDirs)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// findConfig returns the first existing FileName.yaml or FileName.yml.
func findConfig(dirs []string) string {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, ext := range []string{".yaml", ".yml"} {
			candidate := filepath.Join(dir, FileName+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
	}
	return ""
}
