// Package cache layers lookup caching in front of zipdir.Lookup, keyed by
// the standardized address string.
package cache

import "context"

// Cache resolves addresses to zipcodes without touching the directory
// store. A miss is ok=false with a nil error; a nil error and ok=false
// together mean "not cached", not "not found in the directory" — callers
// still owe a Set after a real directory lookup.
type Cache interface {
	Get(ctx context.Context, key string) (zipcode string, ok bool, err error)
	Set(ctx context.Context, key, zipcode string) error
	Close() error
}
