// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/database/schema"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
)

// Execer is the write surface shared by [*pgxpool.Pool] and [pgx.Tx].
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var (
	insertAccountQuery = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		schema.UserAccount.Table, schema.List(schema.UserAccount.Columns()...),
	)

	selectAccountByLoginQuery = fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		schema.List(schema.UserAccount.Columns()...), schema.UserAccount.Table, schema.UserAccount.Login,
	)
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL account repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Insert writes account through db, which may be a pool or an open transaction.

Returns:
  - error: Conflict when the login is taken, or storage failures
*/
func Insert(context context.Context, db Execer, account *Account) error {
	_, err := db.Exec(context, insertAccountQuery,
		account.ID,
		account.Login,
		account.Email,
		account.Telephone,
		account.PasswordHash,
		string(account.Role),
	)
	if dberr.IsUniqueViolation(err) {
		conflict := apperr.Conflict("Login is already taken")
		conflict.Cause = fmt.Errorf("postgres_account_insert_failed: %w", err)
		return conflict
	}
	return dberr.Wrap(err, "postgres_account_insert_failed")
}

// Create persists a new account outside any caller transaction.
func (repository *PostgresRepository) Create(context context.Context, account *Account) error {
	return Insert(context, repository.pool, account)
}

// FindByLogin retrieves an account by login.
func (repository *PostgresRepository) FindByLogin(context context.Context, login string) (*Account, error) {
	return scanAccount(repository.pool.QueryRow(context, selectAccountByLoginQuery, login))
}

func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	var role string

	err := row.Scan(
		&account.ID,
		&account.Login,
		&account.Email,
		&account.Telephone,
		&account.PasswordHash,
		&role,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_account_scan_failed")
	}

	account.Role = sec.UserRole(role)
	return account, nil
}
