// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

/*
Package account handles login accounts and access tokens.

There are two kinds of accounts: the administrator, seeded from configuration at
startup, and one account per actor, created together with the actor record.

# Architecture

  - Entities: Account.
  - Service: Login, EnsureAdmin, NewActorAccount.
  - Storage: users.account in PostgreSQL. Actor accounts are inserted by the
    actor repository inside its own transaction through [Insert].
*/
package account

import (
	"context"
	"time"

	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
)

// # Domain Entities

// Account is a set of login credentials with a role.
type Account struct {
	ID           string       `json:"id"`
	Login        string       `json:"login"`
	Email        string       `json:"email"`
	Telephone    string       `json:"telephone"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// # Repository Contracts

// Repository defines the persistence contract for accounts.
type Repository interface {
	/*
		FindByLogin retrieves an account by its unique login.

		Returns:
		  - *Account: Loaded account
		  - error: dberr.ErrNotFound or storage failures
	*/
	FindByLogin(context context.Context, login string) (*Account, error)

	/*
		Create persists a new account.

		Returns:
		  - error: Conflict when the login is taken, or storage failures
	*/
	Create(context context.Context, account *Account) error
}
