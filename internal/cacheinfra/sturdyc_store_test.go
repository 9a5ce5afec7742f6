package cacheinfra

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Capacity:           100,
		NumShards:          4,
		TTL:                time.Minute,
		EvictionPercentage: 10,
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, "Capacity"},
		{"negative capacity", func(c *Config) { c.Capacity = -5 }, "Capacity"},
		{"zero shards", func(c *Config) { c.NumShards = 0 }, "NumShards"},
		{"zero ttl", func(c *Config) { c.TTL = 0 }, "TTL"},
		{"negative ttl", func(c *Config) { c.TTL = -time.Second }, "TTL"},
		{"eviction percentage zero", func(c *Config) { c.EvictionPercentage = 0 }, "EvictionPercentage"},
		{"eviction percentage over 100", func(c *Config) { c.EvictionPercentage = 150 }, "EvictionPercentage"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected a *ConfigError, got %v", err)
			}
			if cfgErr.Field != tc.wantField {
				t.Errorf("expected the error on field %s, got %s", tc.wantField, cfgErr.Field)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("expected the default config to validate, got %v", err)
	}
}

func TestToSturdycOptions(t *testing.T) {
	cfg := validConfig()
	if opts := cfg.ToSturdycOptions(); len(opts) != 0 {
		t.Errorf("expected no options without an eviction interval, got %d", len(opts))
	}

	cfg.EvictionInterval = time.Second
	if opts := cfg.ToSturdycOptions(); len(opts) != 1 {
		t.Errorf("expected the eviction interval option, got %d options", len(opts))
	}
}

func TestNewSturdycStore_RejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Capacity = 0

	if _, err := NewSturdycStore(cfg); err == nil {
		t.Error("expected construction to fail for an invalid config")
	}
}

func TestStoreRoundtrip(t *testing.T) {
	store, err := NewSturdycStore(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycStore failed: %v", err)
	}
	ctx := context.Background()

	if _, ok := store.Get(ctx, "absent"); ok {
		t.Error("expected a miss for an absent key")
	}

	store.Add(ctx, "key", "value")
	got, ok := store.Get(ctx, "key")
	if !ok {
		t.Fatal("expected a hit after Add")
	}
	if got != "value" {
		t.Errorf("expected %q, got %v", "value", got)
	}

	store.Add(ctx, "key", "replaced")
	if got, _ := store.Get(ctx, "key"); got != "replaced" {
		t.Errorf("expected the overwrite to win, got %v", got)
	}

	store.Evict(ctx, "key")
	if _, ok := store.Get(ctx, "key"); ok {
		t.Error("expected a miss after Evict")
	}
}

func TestEvictAbsentKeyIsANoOp(t *testing.T) {
	store, err := NewSturdycStore(validConfig())
	if err != nil {
		t.Fatalf("NewSturdycStore failed: %v", err)
	}

	// Must not panic or disturb other entries.
	ctx := context.Background()
	store.Add(ctx, "kept", 1)
	store.Evict(ctx, "never-added")

	if _, ok := store.Get(ctx, "kept"); !ok {
		t.Error("expected unrelated entries to survive an absent-key evict")
	}
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	cfg := validConfig()
	cfg.TTL = 25 * time.Millisecond

	store, err := NewSturdycStore(cfg)
	if err != nil {
		t.Fatalf("NewSturdycStore failed: %v", err)
	}
	ctx := context.Background()

	store.Add(ctx, "ephemeral", "v")
	if _, ok := store.Get(ctx, "ephemeral"); !ok {
		t.Fatal("expected a hit before expiry")
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok := store.Get(ctx, "ephemeral"); ok {
		t.Error("expected the entry to expire after its TTL")
	}
}

func TestConcurrentAccess(t *testing.T) {
	store, err := NewSturdycStore(Config{
		Capacity:           1000,
		NumShards:          16,
		TTL:                time.Minute,
		EvictionPercentage: 10,
	})
	if err != nil {
		t.Fatalf("NewSturdycStore failed: %v", err)
	}
	ctx := context.Background()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				key := fmt.Sprintf("worker-%d-key-%d", worker, i)
				store.Add(ctx, key, i)
				store.Get(ctx, key)
				if i%5 == 0 {
					store.Evict(ctx, key)
				}
			}
		}(worker)
	}
	wg.Wait()
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	expected := "config error in field TTL: must be greater than 0"
	if err.Error() != expected {
		t.Errorf("unexpected error text: %q", err.Error())
	}
}
