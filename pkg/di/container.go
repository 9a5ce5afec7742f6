package di

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-studygroup-directory/cache"
	"github.com/goliatone/go-studygroup-directory/directory"
	"github.com/goliatone/go-studygroup-directory/review"
	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// Container provides dependency injection for the directory and review
// services. It owns the singleton cache store and keyer; repositories
// are supplied by the hosting process, which decides whether they are
// bun-backed, in-memory, or something else entirely.
type Container struct {
	store  cache.Store
	keyer  cache.Keyer
	config cache.Config
	log    *zap.Logger
}

// NewContainer creates a new DI container with the provided cache
// configuration and logger. A nil logger disables logging.
func NewContainer(config cache.Config, log *zap.Logger) (*Container, error) {
	store, err := cache.NewStore(config)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Container{
		store:  store,
		keyer:  cache.NewDefaultKeyer(),
		config: config,
		log:    log,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default
// cache configuration and no logging.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(cache.DefaultConfig(), nil)
}

// CacheStore returns the singleton cache store instance.
func (c *Container) CacheStore() cache.Store {
	return c.store
}

// Keyer returns the singleton keyer instance.
func (c *Container) Keyer() cache.Keyer {
	return c.keyer
}

// Config returns a copy of the cache configuration used by this container.
func (c *Container) Config() cache.Config {
	return c.config
}

// NewDirectoryService wires a group directory service over the given
// repositories and the container's cache store.
func (c *Container) NewDirectoryService(
	groups studygroup.GroupRepository,
	members studygroup.StudyGroupMemberRepository,
	identities studygroup.MemberRepository,
) *directory.Service {
	return directory.New(groups, members, identities, c.store, c.keyer, c.log)
}

// NewReviewService wires a review aggregation service over the given
// repository.
func (c *Container) NewReviewService(reviews studygroup.ReviewRepository) *review.Service {
	return review.New(reviews, c.log)
}
