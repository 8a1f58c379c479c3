// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects the API to the optional Redis instance that holds the
shared rate-limit counters.

Every replica increments the same per-client window keys, so the request
budget holds across the whole deployment. Book data is never stored here.

Counters sit on the path of every request: the client uses short timeouts
and no retries, and the limiter lets a request through when Redis fails.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter traffic is tiny and latency-bound.
const (
	dialTimeout    = time.Second
	commandTimeout = 250 * time.Millisecond
	pingTimeout    = 2 * time.Second
	poolSize       = 20
)

// NewClient connects to redisURL and checks that the server answers.
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := Options(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)

	return client, nil
}

// Options parses redisURL and applies the counter-store tuning.
func Options(redisURL string) (*redis.Options, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.DialTimeout = dialTimeout
	options.ReadTimeout = commandTimeout
	options.WriteTimeout = commandTimeout
	options.PoolSize = poolSize

	// No retries: a failed INCR is skipped by the limiter.
	options.MaxRetries = -1

	return options, nil
}

// Ping reports whether Redis answers within pingTimeout. Used by /ready.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
