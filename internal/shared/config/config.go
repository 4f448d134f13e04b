package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// EnvPrefix is stripped from environment variables before they are mapped to keys
const EnvPrefix = "VIEWER_"

type Config struct {
	ArchiveDir  string        `koanf:"archive_dir"`
	PayloadFile string        `koanf:"payload_file"`
	OutputFile  string        `koanf:"output_file"`
	BundleFile  string        `koanf:"bundle_file"`
	Title       string        `koanf:"title"`
	Timezone    string        `koanf:"timezone"`
	HTTPPort    string        `koanf:"http_port"`
	FeedLimit   int           `koanf:"feed_limit"`
	LogLevel    string        `koanf:"log_level"`
	AppEnv      domain.AppEnv `koanf:"app_env"`

	location *time.Location
}

// Load reads the first config file found in the working directory
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from path, or from the first of
// config.{yaml,yml,json,toml} in the working directory when path is empty
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFile := path
	if configFile == "" {
		configFiles := []string{
			"config.yaml",
			"config.yml",
			"config.json",
			"config.toml",
		}

		// Use lo.Find to find the first existing config file
		configFile, _ = lo.Find(configFiles, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if configFile != "" {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("archive_dir") {
		k.Set("archive_dir", ".")
	}
	if !k.Exists("payload_file") {
		k.Set("payload_file", "messages.jsonp")
	}
	if !k.Exists("output_file") {
		k.Set("output_file", "archive.html")
	}
	if !k.Exists("bundle_file") {
		k.Set("bundle_file", DefaultBundleFile(k.String("archive_dir")))
	}
	if !k.Exists("title") {
		k.Set("title", "Archive")
	}
	if !k.Exists("timezone") {
		k.Set("timezone", "Local")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("feed_limit") {
		k.Set("feed_limit", 50)
	}
	if !k.Exists("log_level") {
		k.Set("log_level", "info")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse AppEnv from string if needed
	if env, err := domain.ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = env
	} else {
		cfg.AppEnv = domain.AppEnvProduction
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be defaulted and resolves the timezone
func (c *Config) Validate() error {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return oops.With("timezone", c.Timezone).Wrap(errors.ErrInvalidTimezone)
	}
	c.location = location

	if c.FeedLimit <= 0 {
		return oops.With("feed_limit", c.FeedLimit).Wrap(errors.ErrInvalidFeedLimit)
	}

	return nil
}

// Location returns the zone short message times are shown in
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// PayloadPath returns the payload location inside the archive directory
func (c *Config) PayloadPath() string {
	return c.resolve(c.PayloadFile)
}

// OutputPath returns where the rendered page is written
func (c *Config) OutputPath() string {
	return c.resolve(c.OutputFile)
}

// AssetsDir returns the directory exported assets live in
func (c *Config) AssetsDir() string {
	return c.resolve("assets")
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.ArchiveDir, name)
}

// DefaultBundleFile returns <archive_dir>.zip next to the archive directory
func DefaultBundleFile(archiveDir string) string {
	abs, err := filepath.Abs(archiveDir)
	if err != nil {
		return filepath.Clean(archiveDir) + ".zip"
	}
	return abs + ".zip"
}
