// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/money"
	"github.com/negativchik09/TheatreAPI/internal/core/result"
	"github.com/negativchik09/TheatreAPI/pkg/uuid"
)

// MonthsPerYear is both the number of installments of a contract and the
// divisor of its yearly cost.
const MonthsPerYear = 12

var monthsPerYear = decimal.NewFromInt(MonthsPerYear)

// Contract binds an actor to a role for a yearly cost paid in monthly installments.
type Contract struct {
	id       string
	showID   string
	roleID   string
	actorID  string
	yearCost money.Money

	transactions []*Transaction
}

func (c *Contract) ID() string            { return c.id }
func (c *Contract) ShowID() string        { return c.showID }
func (c *Contract) RoleID() string        { return c.roleID }
func (c *Contract) ActorID() string       { return c.actorID }
func (c *Contract) YearCost() money.Money { return c.yearCost }

// Transactions returns a read-only snapshot of the payments in creation order.
func (c *Contract) Transactions() []*Transaction {
	return append([]*Transaction(nil), c.transactions...)
}

// AlreadyPaid sums every payment made on the contract.
func (c *Contract) AlreadyPaid() decimal.Decimal {
	total := decimal.Zero
	for _, transaction := range c.transactions {
		total = total.Add(transaction.sum.Amount())
	}
	return total
}

// MonthlySum is one twelfth of the yearly cost.
func (c *Contract) MonthlySum() decimal.Decimal {
	return c.yearCost.Amount().Div(monthsPerYear)
}

// CreateTransaction records the next monthly payment, dated now in UTC.
// It fails with Overdraft once twelve payments exist.
func (c *Contract) CreateTransaction() result.Of[*Transaction] {
	return c.createTransaction(time.Now().UTC())
}

func (c *Contract) createTransaction(date time.Time) result.Of[*Transaction] {
	if len(c.transactions) >= MonthsPerYear {
		return result.Fail[*Transaction](domainerr.Overdraft)
	}

	sum := money.Create(c.MonthlySum())
	if sum.IsFailure() {
		return result.Fail[*Transaction](sum.Error())
	}

	transaction := &Transaction{
		id:         uuid.New(),
		contractID: c.id,
		actorID:    c.actorID,
		sum:        sum.Value(),
		date:       date,
	}
	c.transactions = append(c.transactions, transaction)

	return result.Ok(transaction)
}

// RestoreContract rebuilds a stored contract with its payments.
// It panics on a non-positive yearly cost.
func RestoreContract(id, showID, roleID, actorID string, yearCost decimal.Decimal, transactions []*Transaction) *Contract {
	return &Contract{
		id:           id,
		showID:       showID,
		roleID:       roleID,
		actorID:      actorID,
		yearCost:     money.Create(yearCost).Value(),
		transactions: append([]*Transaction(nil), transactions...),
	}
}
