// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const (
	DefaultExpiration      = 5 * time.Minute
	DefaultCleanupInterval = 10 * time.Minute
)

// Cache is a read-through cache of byte slices, such as rendered images.
type Cache struct {
	cache *gocache.Cache
}

// Get returns the bytes for the key, calling load and storing the result on a miss.
// The returned bool is true if the bytes came from the cache.
func (c *Cache) Get(key string, load func() ([]byte, error)) (bool, []byte, error) {
	if item, found := c.cache.Get(key); found {
		b, ok := item.([]byte)
		if !ok {
			return true, nil, errors.Errorf("object retrieved from cache was not a byte slice but %T", item)
		}
		return true, b, nil
	}
	b, err := load()
	if err != nil {
		return false, nil, errors.Wrapf(err, "error loading %q", key)
	}
	c.cache.Set(key, b, gocache.DefaultExpiration)
	return false, b, nil
}

// Delete removes every key with the given prefix.
func (c *Cache) Delete(prefix string) {
	for key := range c.cache.Items() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			c.cache.Delete(key)
		}
	}
}

func (c *Cache) ItemCount() int {
	return c.cache.ItemCount()
}

func New(defaultExpiration time.Duration, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func NewCache() *Cache {
	return New(DefaultExpiration, DefaultCleanupInterval)
}
