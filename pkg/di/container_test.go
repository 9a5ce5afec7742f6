package di

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-studygroup-directory/cache"
	"github.com/goliatone/go-studygroup-directory/pkg/testsupport"
)

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}

	if container.CacheStore() == nil {
		t.Error("expected a cache store")
	}
	if container.Keyer() == nil {
		t.Error("expected a keyer")
	}
	if container.Config().Capacity != cache.DefaultConfig().Capacity {
		t.Errorf("expected the default cache config, got %+v", container.Config())
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := cache.DefaultConfig()
	cfg.TTL = 0

	if _, err := NewContainer(cfg, nil); err == nil {
		t.Error("expected an invalid cache config to fail container construction")
	}
}

func TestContainerSharesOneStore(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults failed: %v", err)
	}

	first := container.CacheStore()
	second := container.CacheStore()
	if first != second {
		t.Error("expected the container to hand out a singleton store")
	}

	ctx := context.Background()
	first.Add(ctx, "shared", "value")
	if _, ok := second.Get(ctx, "shared"); !ok {
		t.Error("expected both references to see the same entries")
	}
}

func TestContainerBuildsServices(t *testing.T) {
	cfg := cache.DefaultConfig()
	cfg.TTL = 30 * time.Second

	container, err := NewContainer(cfg, nil)
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}

	dirSvc := container.NewDirectoryService(
		testsupport.NewMemoryGroupRepository(),
		testsupport.NewMemoryMembershipRepository(),
		testsupport.NewMemoryMemberRepository(),
	)
	if dirSvc == nil {
		t.Error("expected a directory service")
	}

	reviewSvc := container.NewReviewService(testsupport.NewMemoryReviewRepository())
	if reviewSvc == nil {
		t.Error("expected a review service")
	}
}
