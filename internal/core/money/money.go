// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

/*
Package money provides the strictly positive monetary amount used for budgets,
yearly contract costs and monthly installments.

Money has no setters and no exported fields. [Create] is the only validation
point; arithmetic happens on [Money.Amount] and is re-wrapped through [Create].
*/
package money

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/result"
)

// Money is an immutable amount greater than zero.
type Money struct {
	amount decimal.Decimal
}

// Create validates amount and wraps it.
func Create(amount decimal.Decimal) result.Of[Money] {
	if !amount.IsPositive() {
		return result.Fail[Money](domainerr.MoneyMustBeGreaterThanZero)
	}
	return result.Ok(Money{amount: amount})
}

// FromFloat is [Create] for amounts decoded from JSON numbers.
func FromFloat(amount float64) result.Of[Money] {
	return Create(decimal.NewFromFloat(amount))
}

// Amount returns the raw decimal value.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Equal reports whether both amounts are numerically equal.
func (m Money) Equal(other Money) bool { return m.amount.Equal(other.amount) }

// String renders the amount with two decimal places.
func (m Money) String() string { return m.amount.StringFixed(2) }

// MarshalJSON renders Money as its bare amount.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount)
}

// Sum adds up amounts. It returns zero for an empty input.
func Sum(amounts ...Money) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount.amount)
	}
	return total
}
