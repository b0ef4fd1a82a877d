package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	cacheOnce sync.Once
	cache     *Cache
)

// Cache pairs an in-process Redis server with a client pointed at it.
type Cache struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewCache starts the shared miniredis server on first use.
func NewCache() *Cache {
	cacheOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic("failed to start miniredis. err: " + err.Error())
		}
		cache = &Cache{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return cache
}

// Clear drops every cached key.
func (c *Cache) Clear() {
	c.Server.FlushAll()
}

// Close stops the client and the server.
func (c *Cache) Close() {
	_ = c.Client.Close()
	c.Server.Close()
}
