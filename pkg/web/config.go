package web

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

// Env maps environment variable names for web configuration.
type Env struct {
	TemplatesDir    string
	StaticDir       string
	Reload          string
	MaxTemplateSize string
}

// Config holds template and asset settings.
type Config struct {
	TemplatesDir    string `toml:"templates_dir"`
	StaticDir       string `toml:"static_dir"`
	Reload          bool   `toml:"reload"`
	MaxTemplateSize string `toml:"max_template_size"`

	maxTemplateSize int64
}

// MaxTemplateSizeBytes returns the parsed template size limit.
func (c *Config) MaxTemplateSizeBytes() int64 {
	return c.maxTemplateSize
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if err := c.loadEnv(env); err != nil {
		return err
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.TemplatesDir != "" {
		c.TemplatesDir = overlay.TemplatesDir
	}
	if overlay.StaticDir != "" {
		c.StaticDir = overlay.StaticDir
	}
	if overlay.Reload {
		c.Reload = true
	}
	if overlay.MaxTemplateSize != "" {
		c.MaxTemplateSize = overlay.MaxTemplateSize
	}
}

// EnableDebug turns on per-request template reloading.
func (c *Config) EnableDebug() {
	c.Reload = true
}

func (c *Config) loadDefaults() {
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.MaxTemplateSize == "" {
		c.MaxTemplateSize = "1MB"
	}
}

func (c *Config) loadEnv(env *Env) error {
	if env == nil {
		return nil
	}
	if v := os.Getenv(env.TemplatesDir); v != "" {
		c.TemplatesDir = v
	}
	if v := os.Getenv(env.StaticDir); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv(env.Reload); v != "" {
		reload, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env.Reload, err)
		}
		c.Reload = reload
	}
	if v := os.Getenv(env.MaxTemplateSize); v != "" {
		c.MaxTemplateSize = v
	}
	return nil
}

func (c *Config) validate() error {
	size, err := units.FromHumanSize(c.MaxTemplateSize)
	if err != nil {
		return fmt.Errorf("invalid max_template_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_template_size must be positive")
	}
	c.maxTemplateSize = size
	return nil
}
