// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/constants"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
	"github.com/negativchik09/TheatreAPI/internal/platform/validate"
	"github.com/negativchik09/TheatreAPI/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, role sec.UserRole, timeToLive time.Duration) (string, error)
}

// Service implements login and account provisioning.
type Service struct {
	repository    Repository
	tokenProvider TokenProvider
	logger        *slog.Logger
}

// NewService constructs a new account [Service].
func NewService(repository Repository, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repository:    repository,
		tokenProvider: tokenProvider,
		logger:        logger,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginSession is returned to a client after a successful login.
type LoginSession struct {
	AccessToken string       `json:"access_token"`
	Role        sec.UserRole `json:"role"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

/*
Login validates credentials and issues an access token.

Returns:
  - *LoginSession: Token and role of the account
  - error: UserNotFound (404) for an unknown login, Identity (400) for a wrong password
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	validator := &validate.Validator{}
	validator.Required("login", input.Login).Required("password", input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.repository.FindByLogin(context, input.Login)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.FromDomain(domainerr.UserNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("account_service_login_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		service.logger.WarnContext(context, "login_rejected", slog.String("login", input.Login))
		return nil, apperr.FromDomain(domainerr.Identity, http.StatusBadRequest)
	}

	token, err := service.tokenProvider.GenerateAccessToken(account.ID, account.Login, account.Role, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("account_service_token_failed: %w", err))
	}

	service.logger.InfoContext(context, "login_succeeded",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
	)

	return &LoginSession{
		AccessToken: token,
		Role:        account.Role,
		ExpiresAt:   time.Now().Add(constants.AccessTokenTTL),
	}, nil
}

// # Provisioning

// AdminSeed holds the administrator credentials read from configuration.
type AdminSeed struct {
	Login    string
	Password string
	Email    string
}

/*
EnsureAdmin creates the administrator account unless an account with the same
login already exists. It is safe to call on every startup.
*/
func (service *Service) EnsureAdmin(context context.Context, seed AdminSeed) error {
	_, err := service.repository.FindByLogin(context, seed.Login)
	if err == nil {
		return nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return fmt.Errorf("account_service_admin_lookup_failed: %w", err)
	}

	hash, err := sec.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("account_service_admin_hash_failed: %w", err)
	}

	admin := &Account{
		ID:           uuid.New(),
		Login:        seed.Login,
		Email:        seed.Email,
		PasswordHash: hash,
		Role:         sec.RoleAdmin,
	}

	if err := service.repository.Create(context, admin); err != nil {
		return fmt.Errorf("account_service_admin_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "admin_account_seeded", slog.String("login", seed.Login))
	return nil
}

/*
NewActorAccount prepares, without persisting, the account of a new actor.

The account takes the actor's id. The returned password is the only copy of
the plain-text secret and must be handed to the actor once.

Returns:
  - *Account: Account with a bcrypt password hash and [sec.RoleActor]
  - string: Generated one-time password
  - error: Validation or hashing failures
*/
func (service *Service) NewActorAccount(actorID, login, email, telephone string) (*Account, string, error) {
	validator := &validate.Validator{}
	validator.Required("login", login).MinLen("login", login, 3).MaxLen("login", login, 64)
	if err := validator.Err(); err != nil {
		return nil, "", err
	}

	password, err := sec.GenerateSecureToken(constants.GeneratedPasswordBytes)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	return &Account{
		ID:           actorID,
		Login:        login,
		Email:        email,
		Telephone:    telephone,
		PasswordHash: hash,
		Role:         sec.RoleActor,
	}, password, nil
}
