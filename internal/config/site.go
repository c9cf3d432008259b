package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvSiteBasePath    = "SITE_BASE_PATH"
	EnvSiteTitle       = "SITE_TITLE"
	EnvSiteCacheMaxAge = "SITE_CACHE_MAX_AGE"
)

// SiteConfig contains the portfolio site settings.
type SiteConfig struct {
	// BasePath is the URL prefix the site is mounted at. Default: "/"
	BasePath string `toml:"base_path"`

	// Title is the header title. Empty uses the site default.
	Title string `toml:"title"`

	// CacheMaxAge is the Cache-Control max-age for static assets. "0s" disables caching.
	CacheMaxAge string `toml:"cache_max_age"`
}

func (c *SiteConfig) CacheMaxAgeDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheMaxAge)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the site configuration.
func (c *SiteConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SiteConfig) Merge(overlay *SiteConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.CacheMaxAge != "" {
		c.CacheMaxAge = overlay.CacheMaxAge
	}
}

func (c *SiteConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.CacheMaxAge == "" {
		c.CacheMaxAge = "1h"
	}
}

func (c *SiteConfig) loadEnv() {
	if v := os.Getenv(EnvSiteBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvSiteTitle); v != "" {
		c.Title = v
	}
	if v := os.Getenv(EnvSiteCacheMaxAge); v != "" {
		c.CacheMaxAge = v
	}
}

func (c *SiteConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %q", c.BasePath)
	}
	if c.BasePath != "/" && strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("base_path must not end with /: %q", c.BasePath)
	}
	d, err := time.ParseDuration(c.CacheMaxAge)
	if err != nil {
		return fmt.Errorf("invalid cache_max_age: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("cache_max_age must not be negative")
	}
	return nil
}
