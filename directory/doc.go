// Package directory implements the group-directory consistency layer:
// the service that keeps a read-through/write-invalidate cache coherent
// with the group repository while enforcing the cross-entity rules of
// the study-group domain.
//
// # Caching Behavior
//
// Reads follow the cache-aside pattern:
//
//  1. Check the cache store for the group's namespaced key
//  2. On a hit, return the cached copy without a repository call
//  3. On a miss, read the repository
//  4. Store the result only when the group exists (no negative caching)
//  5. Return the result to the caller
//
// Writes never touch the cache before the repository confirms them.
// Update and delete evict the group's key after the store write, so the
// next cached read observes fresh state. Between the write and the
// evict there is a staleness window observable by concurrent readers,
// bounded only by how quickly the evict executes.
//
// # Multi-step Operations
//
// Cascading group deletion removes memberships first, then the group
// record, then the cache entry. The steps are not wrapped in a
// cross-store transaction: a crash mid-sequence leaves an observable
// intermediate state, and the failure policy is fail loud rather than
// auto-roll-back. Callers treating these operations as best-effort may
// need to retry cleanup.
//
// # Error Taxonomy
//
// Existence failures surface as studygroup.ErrGroupNotFound and
// studygroup.ErrMemberNotFound, matched with errors.Is. Repository
// failures propagate as the repository's own error; the service adds no
// retry logic and no translation.
package directory
