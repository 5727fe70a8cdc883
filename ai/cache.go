package ai

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/konanebot/konane/konane"
)

type cacheKey struct {
	board konane.Key
	color konane.Color
}

type cache interface {
	get(k cacheKey) (int64, bool)
	put(k cacheKey, v int64)
	len() int
	purge()
}

type mapCache struct {
	sync.Mutex
	m map[cacheKey]int64
}

func newMapCache() *mapCache {
	return &mapCache{m: make(map[cacheKey]int64)}
}

func (c *mapCache) get(k cacheKey) (int64, bool) {
	c.Lock()
	defer c.Unlock()
	v, ok := c.m[k]
	return v, ok
}

func (c *mapCache) put(k cacheKey, v int64) {
	c.Lock()
	defer c.Unlock()
	c.m[k] = v
}

func (c *mapCache) len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.m)
}

func (c *mapCache) purge() {
	c.Lock()
	defer c.Unlock()
	c.m = make(map[cacheKey]int64)
}

type lruCache struct {
	l *lru.Cache[cacheKey, int64]
}

func newLRUCache(size int) *lruCache {
	l, err := lru.New[cacheKey, int64](size)
	if err != nil {
		panic(err)
	}
	return &lruCache{l: l}
}

func (c *lruCache) get(k cacheKey) (int64, bool) {
	return c.l.Get(k)
}

func (c *lruCache) put(k cacheKey, v int64) {
	c.l.Add(k, v)
}

func (c *lruCache) len() int {
	return c.l.Len()
}

func (c *lruCache) purge() {
	c.l.Purge()
}
