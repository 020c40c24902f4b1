package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Server.Addr == "" {
		t.Error("default server addr is empty")
	}
	if !cfg.Database.AutoMigrate {
		t.Error("default config should auto-migrate")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad debounce", func(c *Config) { c.Run.WatchDebounce = "fast" }},
		{"negative ascension", func(c *Config) { c.Run.Ascension = -1 }},
		{"ascension too high", func(c *Config) { c.Run.Ascension = 21 }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate accepted a bad config", tc.name)
		}
	}
}

func TestGetWatchDebounce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Run.WatchDebounce = "300ms"

	d, err := cfg.GetWatchDebounce()
	if err != nil {
		t.Fatalf("GetWatchDebounce: %v", err)
	}
	if d != 300*time.Millisecond {
		t.Errorf("debounce = %v, want 300ms", d)
	}
}
