// Package cache memoizes bench results in Redis so that re-running
// the same benchmark corpus doesn't re-pay the search cost for
// puzzles that haven't changed.
//
// This is advisory only: every caller treats a Cache error as "no
// cache today" and falls back to solving from scratch. Nothing
// about puzzle correctness depends on it, per the ban on persisted
// state anywhere in the solving path.
package cache

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"
)

// A Cache holds one Redis connection, guarded by a mutex so that a
// Cache may be shared between goroutines: Redis connections aren't
// safe for concurrent use.
type Cache struct {
	mu  sync.Mutex
	rdc redis.Conn
	url string
}

// Connect dials Redis at $REDIS_URL, or redis://localhost:6379/
// if that's unset.
func Connect() (*Cache, error) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/"
	}
	conn, err := redis.DialURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: couldn't connect to %q: %w", url, err)
	}
	return &Cache{rdc: conn, url: url}, nil
}

// Close releases the Redis connection, if any.
func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rdc != nil {
		c.rdc.Close()
		c.rdc = nil
	}
}

// An Entry is one cached bench result for a puzzle digest.
type Entry struct {
	Elapsed time.Duration
	Unique  bool
}

const keyPrefix = "srither:bench:"

// reconnect pings the live connection and re-dials on failure; a
// plain returned error is enough here, since nothing needs to cross
// a handler boundary.
func (c *Cache) reconnect() error {
	if _, err := c.rdc.Do("PING"); err == nil {
		return nil
	}
	c.rdc.Close()
	conn, err := redis.DialURL(c.url)
	if err != nil {
		return fmt.Errorf("cache: lost connection to %q and couldn't reconnect: %w", c.url, err)
	}
	c.rdc = conn
	return nil
}

// Get looks up a previously-stored bench result by puzzle digest.
func (c *Cache) Get(digest string) (Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.reconnect(); err != nil {
		return Entry{}, false, err
	}
	vals, err := redis.Strings(c.rdc.Do("HMGET", keyPrefix+digest, "elapsed_ns", "unique"))
	if err != nil {
		return Entry{}, false, err
	}
	if len(vals) != 2 || vals[0] == "" {
		return Entry{}, false, nil
	}
	var ns int64
	var uniqueFlag string
	if _, err := fmt.Sscanf(vals[0], "%d", &ns); err != nil {
		return Entry{}, false, nil
	}
	uniqueFlag = vals[1]
	return Entry{Elapsed: time.Duration(ns), Unique: uniqueFlag == "1"}, true, nil
}

// Put stores a bench result by puzzle digest.
func (c *Cache) Put(digest string, e Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.reconnect(); err != nil {
		return err
	}
	unique := "0"
	if e.Unique {
		unique = "1"
	}
	_, err := c.rdc.Do("HMSET", keyPrefix+digest,
		"elapsed_ns", e.Elapsed.Nanoseconds(),
		"unique", unique)
	return err
}
