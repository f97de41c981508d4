package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/decker502/carquiz/pkg/quiz"
)

const testDefaults = `
assets:
  dir: logos
  extensions: [".png"]
  order: sorted
window:
  title: "GAME - guess the car brand"
  width: 900
  height: 600
`

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Assets.Dir != "logos" {
		t.Errorf("Assets.Dir = %q, want logos", cfg.Assets.Dir)
	}
	if cfg.Window.Width != 900 || cfg.Window.Height != 600 {
		t.Errorf("Window = %dx%d, want 900x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Persistence.Enabled {
		t.Error("Persistence.Enabled should default to false")
	}
	if !cfg.Audio.Enabled {
		t.Error("Audio.Enabled should default to true")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carquiz.yaml")
	content := "assets:\n  dir: /srv/logos\n  order: shuffled\n  seed: 7\nwindow:\n  width: 1024\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := Load(LoadOptions{Defaults: []byte(testDefaults), File: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Assets.Dir != "/srv/logos" {
		t.Errorf("Assets.Dir = %q", cfg.Assets.Dir)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Errorf("Window = %dx%d, want 1024x600", cfg.Window.Width, cfg.Window.Height)
	}

	opts := cfg.CatalogOptions()
	if opts.Order != quiz.OrderShuffled || opts.Seed != 7 {
		t.Errorf("CatalogOptions() = %+v", opts)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CARQUIZ_ASSETS_DIR", "/env/logos")
	t.Setenv("CARQUIZ_PERSISTENCE_ENABLED", "true")

	cfg, err := Load(LoadOptions{Defaults: []byte(testDefaults)})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Assets.Dir != "/env/logos" {
		t.Errorf("Assets.Dir = %q, want /env/logos", cfg.Assets.Dir)
	}
	if !cfg.Persistence.Enabled {
		t.Error("Persistence.Enabled not overridden by env")
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("CARQUIZ_WINDOW_TITLE=From Env File\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("CARQUIZ_WINDOW_TITLE") })

	cfg, err := Load(LoadOptions{Defaults: []byte(testDefaults), EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Title != "From Env File" {
		t.Errorf("Window.Title = %q", cfg.Window.Title)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	if _, err := Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), "missing.env")}); err != nil {
		t.Errorf("Load() error: %v", err)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("Load() with a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Assets:      AssetsConfig{Dir: "logos", Order: "sorted"},
			Window:      WindowConfig{Width: 10, Height: 10},
			Persistence: PersistenceConfig{AppName: "carquiz"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty dir", func(c *Config) { c.Assets.Dir = "" }},
		{"bad order", func(c *Config) { c.Assets.Order = "random" }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"persistence without app name", func(c *Config) { c.Persistence.Enabled = true; c.Persistence.AppName = "" }},
	}

	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestCatalogOptionsNormalizesExtensions(t *testing.T) {
	c := Config{Assets: AssetsConfig{Extensions: []string{"png", " .jpg ", ""}, Order: "filesystem"}}
	opts := c.CatalogOptions()
	if !slices.Equal(opts.Extensions, []string{".png", ".jpg"}) {
		t.Errorf("Extensions = %v", opts.Extensions)
	}
	if opts.Order != quiz.OrderFilesystem {
		t.Errorf("Order = %v", opts.Order)
	}
}
