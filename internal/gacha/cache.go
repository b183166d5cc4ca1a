package gacha

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GachaGame_Go/internal/domain"
)

// characterCache is an in-memory LRU for character lookups. Characters are
// immutable after mint, so a hit can never be stale; the TTL only bounds
// memory held for cold ids.
type characterCache struct {
	lru *expirable.LRU[uint64, domain.Character]
}

// newCharacterCache creates a cache with the given capacity and TTL.
func newCharacterCache(size int, ttl time.Duration) *characterCache {
	return &characterCache{
		lru: expirable.NewLRU[uint64, domain.Character](size, nil, ttl),
	}
}

// Get retrieves a character from the cache.
func (c *characterCache) Get(tokenID uint64) (*domain.Character, bool) {
	ch, found := c.lru.Get(tokenID)
	if !found {
		return nil, false
	}
	return &ch, true
}

// Set stores a character in the cache.
func (c *characterCache) Set(ch domain.Character) {
	c.lru.Add(ch.ID, ch)
}

// Len returns the number of cached characters.
func (c *characterCache) Len() int {
	return c.lru.Len()
}
