// Package cache provides the cache store contract and key construction
// used by the group directory service.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - Store: a process-local key/value cache with explicit add, get and
//     evict operations
//   - Keyer: builds stable, namespaced cache keys from identifiers
//
// The default Store is backed by a sharded in-memory cache bounded by
// both capacity and TTL (see internal/cacheinfra). The store is strictly
// a read-side optimization: services consult it before the repository on
// reads and evict after confirmed writes, never the other way around.
//
// # Basic Usage
//
//	store, err := cache.NewStore(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	keys := cache.NewDefaultKeyer()
//
//	key := keys.Key("study_group", groupID)
//	if group, ok := cache.Get[studygroup.StudyGroup](ctx, store, key); ok {
//		return &group, nil
//	}
//
// # Key Construction
//
// Keys are namespaced ("study_group" + KeySeparator + id) so distinct
// entity kinds can share one store without collisions. The typed Get
// helper additionally treats a value of the wrong dynamic type as a
// miss, so a collision costs one extra repository read instead of a
// panic.
//
// # Concurrency
//
// Store implementations serialize their own internal mutations; callers
// may use one store from any number of goroutines. There is no
// cross-operation synchronization: the window between a repository write
// and the matching Evict call is observable by concurrent readers, and
// is bounded only by how quickly the evict executes.
package cache
