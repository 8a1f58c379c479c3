// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/bookstore/internal/platform/redis"
)

/*
TestNewClient_InvalidURL rejects URLs go-redis cannot parse.
*/
func TestNewClient_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	_, err := redisstore.NewClient(context.Background(), "http://not-redis", logger)
	assert.ErrorContains(t, err, "redis: invalid URL")
}

/*
TestNewClient_Unreachable fails fast when nothing listens on the address.
*/
func TestNewClient_Unreachable(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	_, err := redisstore.NewClient(context.Background(), "redis://127.0.0.1:1/0", logger)
	assert.ErrorContains(t, err, "redis: ping failed")
}

/*
TestOptions keeps the URL target and applies the fail-fast tuning.
*/
func TestOptions(t *testing.T) {
	options, err := redisstore.Options("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, -1, options.MaxRetries)
	assert.Equal(t, time.Second, options.DialTimeout)
	assert.Less(t, options.ReadTimeout, time.Second)
	assert.Less(t, options.WriteTimeout, time.Second)
}
