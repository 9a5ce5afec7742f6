package cache

import (
	"context"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Capacity != 10000 {
		t.Errorf("expected default capacity 10000, got %d", cfg.Capacity)
	}
	if cfg.NumShards != 256 {
		t.Errorf("expected default shard count 256, got %d", cfg.NumShards)
	}
	if cfg.TTL != 5*time.Minute {
		t.Errorf("expected default TTL of 5m, got %v", cfg.TTL)
	}
	if cfg.EvictionPercentage != 10 {
		t.Errorf("expected default eviction percentage 10, got %d", cfg.EvictionPercentage)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected the default config to validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, true},
		{"negative shards", func(c *Config) { c.NumShards = -1 }, true},
		{"zero ttl", func(c *Config) { c.TTL = 0 }, true},
		{"eviction percentage too low", func(c *Config) { c.EvictionPercentage = 0 }, true},
		{"eviction percentage too high", func(c *Config) { c.EvictionPercentage = 101 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected the config to validate, got %v", err)
			}
		})
	}
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(DefaultConfig())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	ctx := context.Background()
	store.Add(ctx, "k", "v")

	value, ok := Get[string](ctx, store, "k")
	if !ok || value != "v" {
		t.Errorf("expected roundtrip of %q, got %q (hit=%v)", "v", value, ok)
	}
}

func TestNewStore_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 0

	if _, err := NewStore(cfg); err == nil {
		t.Error("expected an invalid config to fail store construction")
	}
}
