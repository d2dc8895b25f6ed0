// Package cache provides optional persistence for rendered math,
// keyed by the source expression. Rendering is deterministic, so a
// hit is always safe to reuse.
package cache

// Store is the interface for render caches.
type Store interface {
	// Get retrieves a rendered result by expression. The second
	// return is false on a miss.
	Get(expr string) (string, bool, error)
	// Put stores a rendered result, overwriting if it exists.
	Put(expr, rendered string) error
	// Close releases resources.
	Close() error
}
