package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSize bounds the in-process cache; the LRU evicts the coldest entries
// once it fills.
const DefaultSize = 4096

// Memory is an in-process Cache backed by an expirable LRU. Expiry is native
// to the store: entries become unobservable at their deadline without a
// read-time check here.
type Memory struct {
	lru *expirable.LRU[string, string]
}

// NewMemory creates an in-process cache with the given capacity and TTL.
// Non-positive values fall back to the defaults.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (c *Memory) Get(_ context.Context, content string) (string, bool) {
	return c.lru.Get(Key(content))
}

func (c *Memory) Set(_ context.Context, content, response string) error {
	c.lru.Add(Key(content), response)
	return nil
}

// Ensure Memory implements Cache
var _ Cache = (*Memory)(nil)
