package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/decker502/carquiz/pkg/quiz"
)

// EnvPrefix prefixes every environment override (CARQUIZ_ASSETS_DIR, ...).
const EnvPrefix = "CARQUIZ"

// Config holds the application configuration.
type Config struct {
	Assets      AssetsConfig      `mapstructure:"assets"`
	Window      WindowConfig      `mapstructure:"window"`
	Audio       AudioConfig       `mapstructure:"audio"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Verbose     bool              `mapstructure:"verbose"`
}

// AssetsConfig locates the logo folders.
type AssetsConfig struct {
	Dir        string   `mapstructure:"dir"`        // root holding easy/, normal/ and hard/
	Extensions []string `mapstructure:"extensions"` // accepted image extensions
	Order      string   `mapstructure:"order"`      // sorted | shuffled | filesystem
	Seed       uint64   `mapstructure:"seed"`       // shuffle seed
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// AudioConfig toggles the answer feedback tones.
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// PersistenceConfig controls whether settings and scores are written to disk.
type PersistenceConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	AppName string `mapstructure:"app_name"` // gdata application folder
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// Defaults is a YAML document read before anything else, usually the
	// embedded assets/config/game.yaml.
	Defaults []byte
	// File is an optional user configuration file merged over the defaults.
	File string
	// EnvFile is loaded into the process environment when it exists.
	EnvFile string
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("assets.dir", "logos")
	v.SetDefault("assets.extensions", []string{".png"})
	v.SetDefault("assets.order", string(quiz.OrderSorted))
	v.SetDefault("assets.seed", 0)
	v.SetDefault("window.title", "GAME - guess the car brand")
	v.SetDefault("window.width", 900)
	v.SetDefault("window.height", 600)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("persistence.enabled", false)
	v.SetDefault("persistence.app_name", "carquiz")
	v.SetDefault("verbose", false)
}

// Load reads configuration from the embedded defaults, an optional file, an
// optional .env file and CARQUIZ_* environment variables, in that order.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if len(opts.Defaults) > 0 {
		if err := v.ReadConfig(bytes.NewReader(opts.Defaults)); err != nil {
			return nil, fmt.Errorf("error reading default config: %w", err)
		}
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", opts.File, err)
		}
	}

	if opts.EnvFile != "" {
		if _, err := os.Stat(opts.EnvFile); err == nil {
			if err := godotenv.Load(opts.EnvFile); err != nil {
				return nil, fmt.Errorf("error loading env file %s: %w", opts.EnvFile, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.Assets.Dir == "" {
		return fmt.Errorf("%w: assets.dir is empty", ErrInvalidConfig)
	}
	if !quiz.Order(c.Assets.Order).Valid() {
		return fmt.Errorf("%w: assets.order %q (want sorted, shuffled or filesystem)", ErrInvalidConfig, c.Assets.Order)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Persistence.Enabled && c.Persistence.AppName == "" {
		return fmt.Errorf("%w: persistence.app_name is empty", ErrInvalidConfig)
	}
	return nil
}

// CatalogOptions converts the assets section for quiz.LoadCatalog.
func (c *Config) CatalogOptions() quiz.LoadOptions {
	exts := make([]string, 0, len(c.Assets.Extensions))
	for _, e := range c.Assets.Extensions {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return quiz.LoadOptions{
		Extensions: exts,
		Order:      quiz.Order(c.Assets.Order),
		Seed:       c.Assets.Seed,
	}
}
