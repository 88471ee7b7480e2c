// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/core/money"
)

// Transaction is one immutable monthly payment to an actor.
type Transaction struct {
	id         string
	contractID string
	actorID    string
	sum        money.Money
	date       time.Time
}

func (t *Transaction) ID() string         { return t.id }
func (t *Transaction) ContractID() string { return t.contractID }
func (t *Transaction) ActorID() string    { return t.actorID }
func (t *Transaction) Sum() money.Money   { return t.sum }
func (t *Transaction) Date() time.Time    { return t.date }

// RestoreTransaction rebuilds a stored payment. It panics on a non-positive sum.
func RestoreTransaction(id, contractID, actorID string, sum decimal.Decimal, date time.Time) *Transaction {
	return &Transaction{
		id:         id,
		contractID: contractID,
		actorID:    actorID,
		sum:        money.Create(sum).Value(),
		date:       date,
	}
}
