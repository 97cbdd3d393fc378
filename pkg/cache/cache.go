package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a small wrapper around an in-process TTL cache. The schedule
// documents are tiny and read-mostly, so a single-process cache is all the
// service needs.
type Store struct {
	cache *gocache.Cache
}

// New builds a cache store with the given default TTL and cleanup interval.
func New(defaultExpiration, cleanupInterval time.Duration) *Store {
	return &Store{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

func (s *Store) Get(key string) (interface{}, bool) {
	return s.cache.Get(key)
}

func (s *Store) Set(key string, value interface{}) {
	s.cache.Set(key, value, gocache.DefaultExpiration)
}

func (s *Store) Delete(key string) {
	s.cache.Delete(key)
}

func (s *Store) Flush() {
	s.cache.Flush()
}
