package config

import (
	"fmt"
	"log/slog"
	"sort"

	lru "github.com/hashicorp/golang-lru"
)

// Resolver answers configuration lookups against an ordered set of sources.
// Sources are consulted in descending ordinal order; the first value found
// wins. The source set is fixed at construction, so a Resolver is safe for
// concurrent use by multiple readers.
type Resolver struct {
	sources []Source
	cache   *lru.Cache
}

// NewResolver creates a Resolver over the given sources, ordered by
// descending ordinal. Sources with equal ordinals keep their relative order.
// A cacheSize greater than zero enables an LRU cache of resolved lookups;
// the cache never needs invalidation because sources are immutable.
func NewResolver(sources []Source, cacheSize int) (*Resolver, error) {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Ordinal() > ordered[j].Ordinal()
	})

	var cache *lru.Cache

	if cacheSize > 0 {
		var err error

		cache, err = lru.New(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating lookup cache: %w", err)
		}
	}

	return &Resolver{
		sources: ordered,
		cache:   cache,
	}, nil
}

// Lookup returns the value for key from the highest-priority source that
// holds it.
func (r *Resolver) Lookup(key string) (string, bool) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			value, _ := cached.(string)

			return value, true
		}
	}

	for _, src := range r.sources {
		value, ok := src.Lookup(key)
		if !ok {
			continue
		}

		slog.Debug("configuration key resolved", "key", key, "source", src.Name())

		if r.cache != nil {
			r.cache.Add(key, value)
		}

		return value, true
	}

	return "", false
}

// Value returns the value for key, or an error wrapping ErrKeyNotFound when
// no source holds it.
func (r *Resolver) Value(key string) (string, error) {
	value, ok := r.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	return value, nil
}

// Sources returns the sources in resolution order.
func (r *Resolver) Sources() []Source {
	ordered := make([]Source, len(r.sources))
	copy(ordered, r.sources)

	return ordered
}
