package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

func withRootSettings(t *testing.T, path string) {
	old := RootSettingsFile
	RootSettingsFile = path
	t.Cleanup(func() { RootSettingsFile = old })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	withRootSettings(t, filepath.Join(dir, "missing.yaml"))

	settings := filepath.Join(dir, "settings.yaml")
	yaml := "window-size: 100\ngc-bases: gcs\nseed: 7\nmulti-match: true\nformat: JSON\n"
	if err := os.WriteFile(settings, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		set     map[string]interface{}
		want    Config
		wantErr bool
	}{
		{
			"defaults without a settings file",
			map[string]interface{}{},
			Config{WindowSize: 70, GCBases: "GC", Format: "csv", LogLevel: "info"},
			false,
		},
		{
			"settings file overrides defaults",
			map[string]interface{}{"settings": settings},
			Config{WindowSize: 100, GCBases: "GCS", Seed: 7, MultiMatch: true, Format: "json", LogLevel: "info"},
			false,
		},
		{
			"flags override settings file",
			map[string]interface{}{"settings": settings, "window-size": 35},
			Config{WindowSize: 35, GCBases: "GCS", Seed: 7, MultiMatch: true, Format: "json", LogLevel: "info"},
			false,
		},
		{
			"missing explicit settings file",
			map[string]interface{}{"settings": filepath.Join(dir, "nope.yaml")},
			Config{},
			true,
		},
		{
			"zero window size",
			map[string]interface{}{"window-size": 0},
			Config{},
			true,
		},
		{
			"unknown format",
			map[string]interface{}{"format": "xlsx"},
			Config{},
			true,
		},
		{
			"unknown log level",
			map[string]interface{}{"log-level": "loud"},
			Config{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			for k, val := range tt.set {
				v.Set(k, val)
			}

			got, err := Load(v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *got != tt.want {
				t.Errorf("Load() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoad_env(t *testing.T) {
	withRootSettings(t, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GCWIN_WINDOW_SIZE", "140")

	v := viper.New()
	SetDefaults(v)
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.WindowSize != 140 {
		t.Errorf("WindowSize = %d, want 140", c.WindowSize)
	}
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		want log.Level
	}{
		{"info", Config{LogLevel: "info"}, log.InfoLevel},
		{"warn", Config{LogLevel: "warn"}, log.WarnLevel},
		{"verbose wins", Config{LogLevel: "error", Verbose: true}, log.DebugLevel},
		{"garbage falls back", Config{LogLevel: "??"}, log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Level(); got != tt.want {
				t.Errorf("Config.Level() = %v, want %v", got, tt.want)
			}
		})
	}
}
