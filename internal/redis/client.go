package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Pool sizing: every activity worker parks a blocking stream read on its
// own connection, and request handlers share the rest for trending
// pipeline traffic.
const (
	minPoolSize  = 16
	minIdleConns = 2
	maxRetries   = 3
	dialTimeout  = 5 * time.Second
)

// Client is the shared Redis handle for the trending ranking and the
// activity stream. One client serves the whole process.
type Client struct {
	*redis.Client
}

// NewClient creates a client from a redis://[:password@]host:port[/db]
// URL, widening the pool when the URL asks for less than the workers need.
func NewClient(redisURL string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	if opts.PoolSize < minPoolSize {
		opts.PoolSize = minPoolSize
	}
	if opts.MinIdleConns < minIdleConns {
		opts.MinIdleConns = minIdleConns
	}
	opts.MaxRetries = maxRetries
	opts.DialTimeout = dialTimeout

	return &Client{Client: redis.NewClient(opts)}, nil
}

// Ping verifies the connection to Redis.
// Call this on application startup to fail fast if Redis is unreachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.Client.Close()
}
