package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gukin-han/portfolio/internal/config"
	"github.com/gukin-han/portfolio/pkg/logging"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_RepositoryConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Chdir("../..")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Site.BasePath != "/" {
		t.Errorf("Site.BasePath = %q, want %q", cfg.Site.BasePath, "/")
	}
}

func TestLoadFrom_AppliesDefaults(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	path := writeConfig(t, t.TempDir(), "config.toml", "")

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want %q", cfg.Server.Addr(), "0.0.0.0:8080")
	}
	if cfg.Server.MaxHeaderBytesValue() != 1<<20 {
		t.Errorf("MaxHeaderBytesValue() = %d, want %d", cfg.Server.MaxHeaderBytesValue(), 1<<20)
	}
	if cfg.Logging.Level != logging.LevelInfo {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, logging.LevelInfo)
	}
	if cfg.Site.BasePath != "/" {
		t.Errorf("Site.BasePath = %q, want %q", cfg.Site.BasePath, "/")
	}
	if cfg.Site.CacheMaxAgeDuration() != time.Hour {
		t.Errorf("Site.CacheMaxAge = %v, want 1h", cfg.Site.CacheMaxAgeDuration())
	}
	if cfg.CORS.Enabled {
		t.Error("CORS should be disabled by default")
	}
}

func TestLoadFrom_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
[server]
port = 8080

[site]
title = "Base"
`)
	writeConfig(t, dir, "config.test.toml", `
shutdown_timeout = "60s"

[server]
port = 9090
`)

	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() with overlay failed: %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Site.Title != "Base" {
		t.Errorf("Site.Title = %q, want preserved %q", cfg.Site.Title, "Base")
	}
	if cfg.Env() != "test" {
		t.Errorf("Env() = %q, want %q", cfg.Env(), "test")
	}
}

func TestLoadFrom_EnvVarOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv(config.EnvServiceShutdownTimeout, "120s")
	t.Setenv(config.EnvServerPort, "3000")
	t.Setenv(config.EnvServerMaxHeaderBytes, "64KiB")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("CORS_ENABLED", "true")
	t.Setenv(config.EnvSiteBasePath, "/portfolio")
	t.Setenv(config.EnvSiteTitle, "Someone Else")

	path := writeConfig(t, t.TempDir(), "config.toml", "")

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.ShutdownTimeout != "120s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "120s")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.MaxHeaderBytesValue() != 64*1024 {
		t.Errorf("MaxHeaderBytesValue() = %d, want %d", cfg.Server.MaxHeaderBytesValue(), 64*1024)
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.CORS.Enabled {
		t.Error("CORS.Enabled should be true from env")
	}
	if cfg.Site.BasePath != "/portfolio" {
		t.Errorf("Site.BasePath = %q, want %q", cfg.Site.BasePath, "/portfolio")
	}
	if cfg.Site.Title != "Someone Else" {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "Someone Else")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"shutdown timeout", `shutdown_timeout = "invalid"`},
		{"server port", "[server]\nport = 70000"},
		{"read timeout", "[server]\nread_timeout = \"soon\""},
		{"header size", "[server]\nmax_header_bytes = \"lots\""},
		{"log level", "[logging]\nlevel = \"loud\""},
		{"base path", "[site]\nbase_path = \"portfolio\""},
		{"base path trailing slash", "[site]\nbase_path = \"/portfolio/\""},
		{"cache max age", "[site]\ncache_max_age = \"forever\""},
		{"malformed toml", "[server"},
	}

	t.Setenv(config.EnvServiceEnv, "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)

			if _, err := config.LoadFrom(path); err == nil {
				t.Error("LoadFrom() succeeded, want error")
			}
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	if _, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFrom() with missing file should return error")
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "5s"}
	base.Merge(&config.ServerConfig{Port: 9000, MaxHeaderBytes: "2MB"})

	if base.Host != "localhost" {
		t.Errorf("Host = %q, want preserved localhost", base.Host)
	}
	if base.Port != 9000 {
		t.Errorf("Port = %d, want 9000", base.Port)
	}
	if base.ReadTimeout != "5s" {
		t.Errorf("ReadTimeout = %q, want preserved 5s", base.ReadTimeout)
	}
	if base.MaxHeaderBytes != "2MB" {
		t.Errorf("MaxHeaderBytes = %q, want 2MB", base.MaxHeaderBytes)
	}
}
