package config

import (
	"os"
	"strings"

	"github.com/JaimeStill/physics-lab/internal/registry"
)

// RoutesConfig selects which demo pages the registry serves.
type RoutesConfig struct {
	Set     string   `toml:"set"`
	Exclude []string `toml:"exclude"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *RoutesConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *RoutesConfig) Merge(overlay *RoutesConfig) {
	if overlay.Set != "" {
		c.Set = overlay.Set
	}
	if overlay.Exclude != nil {
		c.Exclude = overlay.Exclude
	}
}

// Select returns the route table described by the configuration.
func (c *RoutesConfig) Select() ([]registry.Route, error) {
	return registry.Select(c.Set, c.Exclude)
}

func (c *RoutesConfig) loadDefaults() {
	if c.Set == "" {
		c.Set = registry.DefaultSet
	}
}

func (c *RoutesConfig) loadEnv() {
	if v := os.Getenv("ROUTES_SET"); v != "" {
		c.Set = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("ROUTES_EXCLUDE"); ok {
		c.Exclude = splitList(v)
	}
}

func (c *RoutesConfig) validate() error {
	_, err := c.Select()
	return err
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	return out
}
