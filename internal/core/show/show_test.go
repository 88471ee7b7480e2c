// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/result"
	"github.com/negativchik09/TheatreAPI/internal/core/show"
	"github.com/negativchik09/TheatreAPI/pkg/uuid"
)

var premiere = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func newShow(t *testing.T, budget int64) *show.Show {
	t.Helper()

	outcome := show.Create("Лісова пісня", decimal.NewFromInt(budget), premiere)
	require.True(t, outcome.IsSuccess())
	return outcome.Value()
}

func addRole(t *testing.T, s *show.Show, title string) *show.Role {
	t.Helper()

	outcome := s.AddRole(title)
	require.True(t, outcome.IsSuccess(), "add role %q", title)
	return outcome.Value()
}

/*
TestCreate checks the budget guard and the initial state of a new show.
*/
func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		budget  decimal.Decimal
		wantErr bool
	}{
		{"Positive", decimal.NewFromInt(1000), false},
		{"Fraction", decimal.RequireFromString("0.01"), false},
		{"Zero", decimal.Zero, true},
		{"Negative", decimal.NewFromInt(-5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := show.Create("Title", tt.budget, premiere)

			if tt.wantErr {
				require.True(t, outcome.IsFailure())
				assert.Equal(t, domainerr.MoneyMustBeGreaterThanZero, outcome.Error())
				return
			}

			require.True(t, outcome.IsSuccess())
			created := outcome.Value()
			assert.NotEmpty(t, created.ID())
			assert.True(t, created.AlreadySpent().IsZero())
			assert.Empty(t, created.Roles())
			assert.Empty(t, created.Contracts())
			assert.Equal(t, premiere, created.DateOfPremiere())
		})
	}
}

/*
TestAddRole checks that role titles are unique per show and compared exactly.
*/
func TestAddRole(t *testing.T) {
	s := newShow(t, 1000)

	first := addRole(t, s, "Мавка")
	assert.Equal(t, s.ID(), first.ShowID())

	duplicate := s.AddRole("Мавка")
	require.True(t, duplicate.IsFailure())
	assert.Equal(t, domainerr.RoleAlreadyCreatedForShow, duplicate.Error())

	addRole(t, s, "мавка")
	addRole(t, s, "Лукаш")

	titles := []string{}
	for _, role := range s.Roles() {
		titles = append(titles, role.Title())
	}
	assert.Equal(t, []string{"Мавка", "мавка", "Лукаш"}, titles)
}

/*
TestCreateContract_Budget covers the inclusive budget boundary.
*/
func TestCreateContract_Budget(t *testing.T) {
	t.Run("Overdue", func(t *testing.T) {
		s := newShow(t, 1000)
		first := addRole(t, s, "A")
		second := addRole(t, s, "B")

		require.True(t, s.CreateContract(first.ID(), uuid.New(), decimal.NewFromInt(600)).IsSuccess())

		outcome := s.CreateContract(second.ID(), uuid.New(), decimal.NewFromInt(500))
		require.True(t, outcome.IsFailure())
		assert.Equal(t, domainerr.BudgetOverdue, outcome.Error())
		assert.Len(t, s.Contracts(), 1)
		assert.True(t, s.AlreadySpent().Equal(decimal.NewFromInt(600)))
	})

	t.Run("ExactlyFull", func(t *testing.T) {
		s := newShow(t, 1000)
		first := addRole(t, s, "A")
		second := addRole(t, s, "B")

		require.True(t, s.CreateContract(first.ID(), uuid.New(), decimal.NewFromInt(600)).IsSuccess())
		require.True(t, s.CreateContract(second.ID(), uuid.New(), decimal.NewFromInt(400)).IsSuccess())

		assert.True(t, s.AlreadySpent().Equal(decimal.NewFromInt(1000)))
	})
}

/*
TestCreateContract_ValidationOrder checks which error wins when several rules fail.
*/
func TestCreateContract_ValidationOrder(t *testing.T) {
	s := newShow(t, 1000)
	role := addRole(t, s, "A")
	require.True(t, s.CreateContract(role.ID(), uuid.New(), decimal.NewFromInt(100)).IsSuccess())

	tests := []struct {
		name   string
		roleID string
		cost   decimal.Decimal
		want   result.Error
	}{
		{"MoneyBeforeEverything", uuid.New(), decimal.Zero, domainerr.MoneyMustBeGreaterThanZero},
		{"BudgetBeforeRole", uuid.New(), decimal.NewFromInt(5000), domainerr.BudgetOverdue},
		{"BudgetBeforeDuplicate", role.ID(), decimal.NewFromInt(5000), domainerr.BudgetOverdue},
		{"UnknownRole", uuid.New(), decimal.NewFromInt(10), domainerr.RoleNotFound},
		{"RoleTaken", role.ID(), decimal.NewFromInt(10), domainerr.ContractAlreadyCreatedForRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := s.CreateContract(tt.roleID, uuid.New(), tt.cost)

			require.True(t, outcome.IsFailure())
			assert.Equal(t, tt.want, outcome.Error())
			assert.Len(t, s.Contracts(), 1)
		})
	}
}

/*
TestActorCount counts distinct actors, not contracts.
*/
func TestActorCount(t *testing.T) {
	s := newShow(t, 1000)
	actorID := uuid.New()

	for _, title := range []string{"A", "B"} {
		role := addRole(t, s, title)
		require.True(t, s.CreateContract(role.ID(), actorID, decimal.NewFromInt(100)).IsSuccess())
	}
	other := addRole(t, s, "C")
	require.True(t, s.CreateContract(other.ID(), uuid.New(), decimal.NewFromInt(100)).IsSuccess())

	assert.Equal(t, 2, s.ActorCount())
	assert.True(t, s.HasActor(actorID))
	assert.False(t, s.HasActor(uuid.New()))
}

/*
TestRemoveRole checks that removing a role also frees its contract and budget share.
*/
func TestRemoveRole(t *testing.T) {
	s := newShow(t, 1000)
	role := addRole(t, s, "A")
	require.True(t, s.CreateContract(role.ID(), uuid.New(), decimal.NewFromInt(1000)).IsSuccess())

	assert.True(t, s.RemoveRole(role.ID()))
	assert.False(t, s.RemoveRole(role.ID()))
	assert.Empty(t, s.Roles())
	assert.Empty(t, s.Contracts())
	assert.True(t, s.AlreadySpent().IsZero())

	again := addRole(t, s, "A")
	assert.True(t, s.CreateContract(again.ID(), uuid.New(), decimal.NewFromInt(1000)).IsSuccess())
}

/*
TestRemoveContract checks that the role becomes free for a new contract.
*/
func TestRemoveContract(t *testing.T) {
	s := newShow(t, 1000)
	role := addRole(t, s, "A")
	contract := s.CreateContract(role.ID(), uuid.New(), decimal.NewFromInt(700)).Value()

	assert.True(t, s.RemoveContract(contract.ID()))
	assert.False(t, s.RemoveContract(contract.ID()))
	assert.Len(t, s.Roles(), 1)

	outcome := s.CreateContract(role.ID(), uuid.New(), decimal.NewFromInt(1000))
	assert.True(t, outcome.IsSuccess())
}

/*
TestCreateTransaction checks the monthly sum and the twelve-installment cap.
*/
func TestCreateTransaction(t *testing.T) {
	s := newShow(t, 5000)
	role := addRole(t, s, "A")
	actorID := uuid.New()
	contract := s.CreateContract(role.ID(), actorID, decimal.NewFromInt(1200)).Value()

	before := time.Now().UTC()
	for month := 1; month <= show.MonthsPerYear; month++ {
		outcome := contract.CreateTransaction()
		require.True(t, outcome.IsSuccess(), "month %d", month)

		transaction := outcome.Value()
		assert.True(t, transaction.Sum().Amount().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, contract.ID(), transaction.ContractID())
		assert.Equal(t, actorID, transaction.ActorID())
		assert.Equal(t, time.UTC, transaction.Date().Location())
		assert.False(t, transaction.Date().Before(before))
	}

	overdraft := contract.CreateTransaction()
	require.True(t, overdraft.IsFailure())
	assert.Equal(t, domainerr.Overdraft, overdraft.Error())

	assert.Len(t, contract.Transactions(), show.MonthsPerYear)
	assert.True(t, contract.AlreadyPaid().Equal(decimal.NewFromInt(1200)))
}

/*
TestViews checks that the exposed slices are snapshots.
*/
func TestViews(t *testing.T) {
	s := newShow(t, 1000)
	role := addRole(t, s, "A")
	contract := s.CreateContract(role.ID(), uuid.New(), decimal.NewFromInt(120)).Value()
	require.True(t, contract.CreateTransaction().IsSuccess())

	roles := s.Roles()
	roles[0] = nil
	contracts := s.Contracts()
	contracts[0] = nil
	transactions := contract.Transactions()
	transactions[0] = nil

	assert.NotNil(t, s.Roles()[0])
	assert.NotNil(t, s.Contracts()[0])
	assert.NotNil(t, contract.Transactions()[0])
}

/*
TestRestore rebuilds an aggregate and keeps enforcing its rules.
*/
func TestRestore(t *testing.T) {
	showID := uuid.New()
	role := show.RestoreRole(uuid.New(), showID, "A")
	free := show.RestoreRole(uuid.New(), showID, "B")

	payments := make([]*show.Transaction, 0, show.MonthsPerYear)
	contractID := uuid.New()
	actorID := uuid.New()
	for range show.MonthsPerYear {
		payments = append(payments, show.RestoreTransaction(uuid.New(), contractID, actorID, decimal.NewFromInt(50), premiere))
	}
	contract := show.RestoreContract(contractID, showID, role.ID(), actorID, decimal.NewFromInt(600), payments)

	restored := show.Restore(show.Snapshot{
		ID:             showID,
		Title:          "Title",
		TotalBudget:    decimal.NewFromInt(1000),
		DateOfPremiere: premiere,
		Version:        7,
		Roles:          []*show.Role{role, free},
		Contracts:      []*show.Contract{contract},
	})

	assert.Equal(t, int64(7), restored.Version())
	assert.True(t, restored.AlreadySpent().Equal(decimal.NewFromInt(600)))

	found, ok := restored.Contract(contractID)
	require.True(t, ok)
	assert.Equal(t, domainerr.Overdraft, found.CreateTransaction().Error())

	overdue := restored.CreateContract(free.ID(), uuid.New(), decimal.NewFromInt(401))
	assert.Equal(t, domainerr.BudgetOverdue, overdue.Error())
}
