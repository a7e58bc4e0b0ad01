package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "3001" {
			t.Errorf("Server.Port = %s, want 3001", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Database.Driver != "sqlite" {
			t.Errorf("Database.Driver = %s, want sqlite", cfg.Database.Driver)
		}
		if cfg.Database.ConnectRetries != 10 || cfg.Database.ConnectRetryDelay != 3*time.Second {
			t.Errorf("connect retry = %d x %v, want 10 x 3s", cfg.Database.ConnectRetries, cfg.Database.ConnectRetryDelay)
		}
		if cfg.Extractor.RelayURL != "https://api.allorigins.win/raw?url=" {
			t.Errorf("Extractor.RelayURL = %s", cfg.Extractor.RelayURL)
		}
		if cfg.Extractor.RetryMax != 0 {
			t.Errorf("Extractor.RetryMax = %d, want 0", cfg.Extractor.RetryMax)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 10*time.Minute {
			t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 || cfg.RateLimit.Window != time.Minute {
			t.Errorf("RateLimit = %+v, want 100 per 1m", cfg.RateLimit)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOUSESTOCK_SERVER_PORT", "9090")
		t.Setenv("HOUSESTOCK_SERVER_ENVIRONMENT", "production")
		t.Setenv("HOUSESTOCK_SERVER_ALLOWED_ORIGINS", "https://keller.example,http://localhost:5173")
		t.Setenv("HOUSESTOCK_DATABASE_DRIVER", "mysql")
		t.Setenv("HOUSESTOCK_DATABASE_DSN", "vinotheque:secret@tcp(db:3306)/house_stock")
		t.Setenv("HOUSESTOCK_EXTRACTOR_RETRY_MAX", "2")
		t.Setenv("HOUSESTOCK_EXTRACTOR_TIMEOUT", "5s")
		t.Setenv("HOUSESTOCK_CACHE_TYPE", "redis")
		t.Setenv("HOUSESTOCK_CACHE_REDIS_URL", "redis://localhost:6379")
		t.Setenv("HOUSESTOCK_RATELIMIT_PER_IP", "200")
		t.Setenv("HOUSESTOCK_LOG_LEVEL", "debug")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://localhost:5173" {
			t.Errorf("Server.AllowedOrigins = %v", cfg.Server.AllowedOrigins)
		}
		if cfg.Database.Driver != "mysql" {
			t.Errorf("Database.Driver = %s, want mysql", cfg.Database.Driver)
		}
		if cfg.Extractor.RetryMax != 2 || cfg.Extractor.Timeout != 5*time.Second {
			t.Errorf("Extractor = %+v", cfg.Extractor)
		}
		if cfg.Cache.Type != "redis" || cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache = %+v", cfg.Cache)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
		}
	})

	t.Run("reads explicit config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "housestock.yaml")
		content := "server:\n  port: \"4000\"\nextractor:\n  relay_url: \"https://relay.example/?u=\"\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Port != "4000" {
			t.Errorf("Server.Port = %s, want 4000", cfg.Server.Port)
		}
		if cfg.Extractor.RelayURL != "https://relay.example/?u=" {
			t.Errorf("Extractor.RelayURL = %s", cfg.Extractor.RelayURL)
		}
	})

	t.Run("fails on missing explicit config file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:    ServerConfig{Port: "3001"},
			Database:  DatabaseConfig{Driver: "sqlite", DSN: "file:test.db", ConnectRetries: 1},
			Extractor: ExtractorConfig{Timeout: time.Second},
			Cache:     CacheConfig{Type: "memory"},
			RateLimit: RateLimitConfig{PerIP: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid configuration", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "port"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "postgres" }, wantErr: "database driver"},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.DSN = "" }, wantErr: "DSN"},
		{name: "no connect attempts", mutate: func(c *Config) { c.Database.ConnectRetries = 0 }, wantErr: "connect_retries"},
		{name: "negative retries", mutate: func(c *Config) { c.Extractor.RetryMax = -1 }, wantErr: "retry_max"},
		{name: "zero timeout", mutate: func(c *Config) { c.Extractor.Timeout = 0 }, wantErr: "timeout"},
		{name: "invalid cache type", mutate: func(c *Config) { c.Cache.Type = "memcached" }, wantErr: "cache type"},
		{name: "redis without url", mutate: func(c *Config) { c.Cache.Type = "redis" }, wantErr: "Redis URL"},
		{name: "negative per ip", mutate: func(c *Config) { c.RateLimit.PerIP = -5 }, wantErr: "per_ip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := validate(&cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
