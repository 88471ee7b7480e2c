// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
)

// ErrConcurrentUpdate is returned when the stored show version moved after it was loaded.
var ErrConcurrentUpdate = &apperr.AppError{
	Code:       "CONCURRENT_UPDATE",
	Message:    "Show was modified concurrently, reload and retry",
	HTTPStatus: http.StatusConflict,
}

// Summary is one row of the show table, aggregated by storage.
type Summary struct {
	ID             string
	Title          string
	TotalBudget    decimal.Decimal
	AlreadySpent   decimal.Decimal
	DateOfPremiere time.Time
	RoleCount      int
	ActorCount     int
}

// TransactionFilter narrows a transaction listing. Empty fields match everything.
type TransactionFilter struct {
	ContractID string
	ActorID    string
}

/*
Repository persists show aggregates.

Every method that receives a *Show writes one child change and bumps the show
version in the same database transaction, failing with [ErrConcurrentUpdate]
when the version no longer matches [Show.Version]. On success the in-memory
version follows.
*/
type Repository interface {
	// ListShows returns summaries ordered by premiere. A non-empty actorID keeps
	// only shows where that actor holds a contract.
	ListShows(ctx context.Context, actorID string, limit, offset int) ([]Summary, int, error)
	GetShow(ctx context.Context, id string) (*Show, error)
	CreateShow(ctx context.Context, show *Show) error
	DeleteShow(ctx context.Context, id string) error

	InsertRole(ctx context.Context, show *Show, role *Role) error
	DeleteRole(ctx context.Context, show *Show, roleID string) error
	InsertContract(ctx context.Context, show *Show, contract *Contract) error
	DeleteContract(ctx context.Context, show *Show, contractID string) error
	InsertTransaction(ctx context.Context, show *Show, transaction *Transaction) error

	ShowIDByRole(ctx context.Context, roleID string) (string, error)
	ShowIDByContract(ctx context.Context, contractID string) (string, error)

	// ListContracts returns contracts without their transactions. A non-empty
	// actorID keeps only that actor's contracts.
	ListContracts(ctx context.Context, actorID string, limit, offset int) ([]*Contract, int, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*Transaction, error)
}
