package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kubelouislu/sre-portfolio/internal/lang"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "PORTFOLIO_"

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "portfolio.yml"

// Config is the runtime configuration, corresponding to portfolio.yml.
type Config struct {
	ListenAddr      string `yaml:"listen_addr" koanf:"listen_addr"`
	DefaultLanguage string `yaml:"default_language" koanf:"default_language"`
	// ContentDir, when set, replaces the embedded content with <dir>/en.yaml
	// and <dir>/zh.yaml.
	ContentDir string `yaml:"content_dir" koanf:"content_dir"`
	Watch      bool   `yaml:"watch" koanf:"watch"`
	GinMode    string `yaml:"gin_mode" koanf:"gin_mode"`
	ExportDir  string `yaml:"export_dir" koanf:"export_dir"`
	VisitorLog bool   `yaml:"visitor_log" koanf:"visitor_log"`
	// VisitorSalt is mixed into hashed client IPs. Empty means a random
	// salt per process.
	VisitorSalt string `yaml:"visitor_salt" koanf:"visitor_salt"`
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddr:      ":8080",
		DefaultLanguage: string(lang.Default),
		GinMode:         gin.DebugMode,
		ExportDir:       "public",
		VisitorLog:      true,
	}
}

// Load reads .env, then the given YAML file if it exists, then overlays
// PORTFOLIO_* environment variables. A bare PORT variable sets the listen
// address unless listen_addr was configured explicitly.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && !k.Exists("listen_addr") {
		cfg.ListenAddr = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var validGinModes = map[string]bool{
	gin.DebugMode:   true,
	gin.ReleaseMode: true,
	gin.TestMode:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if _, ok := lang.Parse(c.DefaultLanguage); !ok {
		return fmt.Errorf("invalid default_language %q: must be en or zh", c.DefaultLanguage)
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid gin_mode %q: must be one of debug, release, test", c.GinMode)
	}
	if c.Watch && c.ContentDir == "" {
		return fmt.Errorf("watch requires content_dir")
	}
	return nil
}

// Language returns the validated default language.
func (c *Config) Language() lang.Language {
	l, ok := lang.Parse(c.DefaultLanguage)
	if !ok {
		return lang.Default
	}
	return l
}
