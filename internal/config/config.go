package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/postgen/postgen/internal/render"
)

// Config holds all service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `yaml:"mode"`
}

type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type RenderConfig struct {
	PreviewWidth        int `yaml:"preview_width"`
	PreviewQuality      int `yaml:"preview_quality"`
	PreviewLayerQuality int `yaml:"preview_layer_quality"`
	MaxParallelSlides   int `yaml:"max_parallel_slides"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", Mode: "release"},
		Fetch: FetchConfig{
			Timeout:   15 * time.Second,
			UserAgent: "Mozilla/5.0 PostGenerator/1.0",
		},
		Render: RenderConfig{
			PreviewWidth:        540,
			PreviewQuality:      75,
			PreviewLayerQuality: 70,
			MaxParallelSlides:   4,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads .env (if present), then the yaml file at path (if present), then
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("POSTGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("POSTGEN_USER_AGENT"); v != "" {
		c.Fetch.UserAgent = v
	}
	if v := os.Getenv("POSTGEN_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("POSTGEN_FETCH_TIMEOUT: %w", err)
		}
		c.Fetch.Timeout = d
	}
	if v := os.Getenv("POSTGEN_PREVIEW_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("POSTGEN_PREVIEW_WIDTH: %w", err)
		}
		c.Render.PreviewWidth = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Render.PreviewWidth <= 0 {
		return fmt.Errorf("render.preview_width must be positive, got %d", c.Render.PreviewWidth)
	}
	for name, q := range map[string]int{
		"render.preview_quality":       c.Render.PreviewQuality,
		"render.preview_layer_quality": c.Render.PreviewLayerQuality,
	} {
		if q < 1 || q > 100 {
			return fmt.Errorf("%s must be within 1..100, got %d", name, q)
		}
	}
	return nil
}

// RenderOptions maps the render section onto engine options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		PreviewWidth:      c.Render.PreviewWidth,
		PreviewQuality:    c.Render.PreviewQuality,
		LayerQuality:      c.Render.PreviewLayerQuality,
		MaxParallelSlides: c.Render.MaxParallelSlides,
	}
}
