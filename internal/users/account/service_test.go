// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package account_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
	"github.com/negativchik09/TheatreAPI/internal/users/account"
)

type memoryRepository struct {
	byLogin map[string]*account.Account
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byLogin: map[string]*account.Account{}}
}

func (repository *memoryRepository) FindByLogin(_ context.Context, login string) (*account.Account, error) {
	found, ok := repository.byLogin[login]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return found, nil
}

func (repository *memoryRepository) Create(_ context.Context, created *account.Account) error {
	if _, ok := repository.byLogin[created.Login]; ok {
		return apperr.Conflict("Resource already exists")
	}
	repository.byLogin[created.Login] = created
	return nil
}

func newService(t *testing.T) (*account.Service, *memoryRepository, *sec.TokenService) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tokens := sec.NewTokenServiceFromKey(key, &key.PublicKey, "theatre-api")
	repository := newMemoryRepository()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return account.NewService(repository, tokens, logger), repository, tokens
}

/*
TestEnsureAdmin_Idempotent verifies the seed runs once and keeps the first password.
*/
func TestEnsureAdmin_Idempotent(t *testing.T) {
	service, repository, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, service.EnsureAdmin(ctx, account.AdminSeed{Login: "admin", Password: "Admin123", Email: "admin@theatre.ua"}))
	require.NoError(t, service.EnsureAdmin(ctx, account.AdminSeed{Login: "admin", Password: "Other456", Email: "admin@theatre.ua"}))

	admin := repository.byLogin["admin"]
	require.NotNil(t, admin)
	assert.Equal(t, sec.RoleAdmin, admin.Role)
	assert.True(t, sec.CheckPasswordHash("Admin123", admin.PasswordHash))
}

/*
TestLogin maps unknown logins and wrong passwords to their domain errors and
issues a verifiable token otherwise.
*/
func TestLogin(t *testing.T) {
	service, _, tokens := newService(t)
	ctx := context.Background()
	require.NoError(t, service.EnsureAdmin(ctx, account.AdminSeed{Login: "admin", Password: "Admin123", Email: "admin@theatre.ua"}))

	t.Run("unknown_login", func(t *testing.T) {
		_, err := service.Login(ctx, account.LoginInput{Login: "ghost", Password: "x"})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, domainerr.UserNotFound.Code, appError.Code)
		assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(ctx, account.LoginInput{Login: "admin", Password: "nope"})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, domainerr.Identity.Code, appError.Code)
		assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := service.Login(ctx, account.LoginInput{})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})

	t.Run("success", func(t *testing.T) {
		session, err := service.Login(ctx, account.LoginInput{Login: "admin", Password: "Admin123"})
		require.NoError(t, err)
		assert.Equal(t, sec.RoleAdmin, session.Role)

		claims, err := tokens.VerifyToken(session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, string(sec.RoleAdmin), claims.Role)
	})
}

/*
TestNewActorAccount verifies that the returned password matches the stored hash,
so the actor can log in with what they were given.
*/
func TestNewActorAccount(t *testing.T) {
	service, repository, _ := newService(t)
	ctx := context.Background()

	created, password, err := service.NewActorAccount("0190b4a2-7c3e-7c1a-9f00-0123456789ab", "petrenko", "p@theatre.ua", "+380501234567")
	require.NoError(t, err)

	assert.Equal(t, "0190b4a2-7c3e-7c1a-9f00-0123456789ab", created.ID)
	assert.Equal(t, sec.RoleActor, created.Role)
	assert.NotEmpty(t, password)
	assert.True(t, sec.CheckPasswordHash(password, created.PasswordHash))

	require.NoError(t, repository.Create(ctx, created))
	session, err := service.Login(ctx, account.LoginInput{Login: "petrenko", Password: password})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleActor, session.Role)

	_, _, err = service.NewActorAccount("id", "ab", "", "")
	assert.Error(t, err)
}
