// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/constants"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
)

// ErrShowBusy is returned when another writer keeps the show locked past the wait limit.
var ErrShowBusy = &apperr.AppError{
	Code:       "SHOW_BUSY",
	Message:    "Show is being modified by another request, retry later",
	HTTPStatus: http.StatusConflict,
}

// Locker serialises writers of one show across API instances.
type Locker interface {
	// Lock blocks until the show is held or ctx ends. The returned func releases it.
	Lock(ctx context.Context, showID string) (release func(), err error)
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a [Locker] backed by SET NX PX keys.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, logger: logger}
}

func (locker *RedisLocker) Lock(ctx context.Context, showID string) (func(), error) {
	key := constants.RedisPrefixShowLock + showID

	token, err := sec.GenerateSecureToken(16)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("show_lock_token: %w", err))
	}

	waitCtx, cancel := context.WithTimeout(ctx, constants.ShowLockMaxWait)
	defer cancel()

	ticker := time.NewTicker(constants.ShowLockRetryInterval)
	defer ticker.Stop()

	for {
		acquired, err := locker.client.SetNX(waitCtx, key, token, locker.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !errors.Is(err, context.DeadlineExceeded) {
				unavailable := apperr.ServiceUnavailable("Show locks are unavailable, retry later")
				unavailable.Cause = fmt.Errorf("show_lock_acquire: %w", err)
				return nil, unavailable
			}
		}
		if acquired {
			return func() { locker.release(ctx, key, token) }, nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, ErrShowBusy
		case <-ticker.C:
		}
	}
}

// release runs even when the request context was cancelled.
func (locker *RedisLocker) release(ctx context.Context, key, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()

	if err := releaseScript.Run(releaseCtx, locker.client, []string{key}, token).Err(); err != nil {
		locker.logger.WarnContext(ctx, "show_lock_release_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
