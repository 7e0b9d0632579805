// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	// DefaultWindowSize is the number of bases in each GC window
	DefaultWindowSize = 70

	// DefaultGCBases are the bases counted towards GC content
	DefaultGCBases = "GC"
)

var (
	// RootSettingsFile is the settings file read when no --settings is passed.
	// It's optional: a missing file leaves the defaults in place.
	RootSettingsFile = filepath.Join(homeDir(), ".gcwin", "settings.yaml")

	// formats that tables can be written in
	formats = map[string]bool{"csv": true, "json": true}
)

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml, GCWIN_* environment
// variables and those available from the command line
type Config struct {
	// WindowSize is the length of each non-overlapping window
	WindowSize int `mapstructure:"window-size"`

	// GCBases are the letters counted as GC, "GC" unless set
	GCBases string `mapstructure:"gc-bases"`

	// Seed for the shuffled control. Zero draws a random seed
	Seed int64 `mapstructure:"seed"`

	// MultiMatch returns every matching record in a file rather
	// than the last one
	MultiMatch bool `mapstructure:"multi-match"`

	// Format of the written tables: csv or json
	Format string `mapstructure:"format"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `mapstructure:"log-level"`

	// Verbose forces debug logging
	Verbose bool `mapstructure:"verbose"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults sets the built-in settings on v and enables GCWIN_*
// environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window-size", DefaultWindowSize)
	v.SetDefault("gc-bases", DefaultGCBases)
	v.SetDefault("seed", 0)
	v.SetDefault("multi-match", false)
	v.SetDefault("format", "csv")
	v.SetDefault("log-level", "info")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("gcwin")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// New returns a new Config struct populated by Viper settings
// (the settings file, environment and command line arguments).
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	return c
}

// Load merges the settings file named by the "settings" key (if any)
// into v and decodes the result into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	settings := v.GetString("settings")
	if settings == "" {
		settings = RootSettingsFile
	}

	if _, err := os.Stat(settings); err == nil {
		v.SetConfigFile(settings)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	} else if settings != RootSettingsFile {
		return nil, fmt.Errorf("failed to find settings file %s: %w", settings, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the settings can drive an analysis.
func (c *Config) Validate() error {
	if c.WindowSize < 1 {
		return fmt.Errorf("window-size must be positive, got %d", c.WindowSize)
	}

	if strings.TrimSpace(c.GCBases) == "" {
		return fmt.Errorf("gc-bases is empty")
	}
	c.GCBases = strings.ToUpper(strings.TrimSpace(c.GCBases))

	c.Format = strings.ToLower(c.Format)
	if !formats[c.Format] {
		return fmt.Errorf("unknown table format %q, use csv or json", c.Format)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unknown log-level %q: %w", c.LogLevel, err)
	}

	return nil
}

// Level returns the logging level for the settings.
func (c *Config) Level() log.Level {
	if c.Verbose {
		return log.DebugLevel
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
