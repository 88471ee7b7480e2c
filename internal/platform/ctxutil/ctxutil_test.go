// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negativchik09/TheatreAPI/internal/platform/ctxutil"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Falls back to the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that AuthClaims can be stored in context and
that the admin check follows the role claim.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ctxutil.GetAuthUser(ctx))
	assert.False(t, ctxutil.IsAdmin(ctx))

	actorCtx := ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "actor-1", Role: string(sec.RoleActor)})
	retrieved := ctxutil.GetAuthUser(actorCtx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "actor-1", retrieved.UserID)
	assert.False(t, ctxutil.IsAdmin(actorCtx))

	adminCtx := ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "admin-1", Role: string(sec.RoleAdmin)})
	assert.True(t, ctxutil.IsAdmin(adminCtx))
}
