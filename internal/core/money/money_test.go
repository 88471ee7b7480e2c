// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/money"
)

/*
TestCreate_RejectsNonPositive verifies that zero and negative amounts never become Money.
*/
func TestCreate_RejectsNonPositive(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"zero", "0"},
		{"negative_cent", "-0.01"},
		{"negative_large", "-1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := money.Create(decimal.RequireFromString(tt.amount))

			assert.False(t, outcome.IsSuccess())
			assert.Equal(t, domainerr.MoneyMustBeGreaterThanZero, outcome.Error())
		})
	}
}

/*
TestCreate_AcceptsPositive verifies that the stored amount equals the input.
*/
func TestCreate_AcceptsPositive(t *testing.T) {
	for _, raw := range []string{"0.01", "1", "1000", "123456.789"} {
		t.Run(raw, func(t *testing.T) {
			amount := decimal.RequireFromString(raw)
			outcome := money.Create(amount)

			require.True(t, outcome.IsSuccess())
			assert.True(t, outcome.Value().Amount().Equal(amount))
		})
	}
}

/*
TestFromFloat_SameRules checks the float entry point used by HTTP payloads.
*/
func TestFromFloat_SameRules(t *testing.T) {
	assert.Equal(t, domainerr.MoneyMustBeGreaterThanZero, money.FromFloat(0).Error())
	assert.Equal(t, domainerr.MoneyMustBeGreaterThanZero, money.FromFloat(-5.5).Error())

	outcome := money.FromFloat(600)
	require.True(t, outcome.IsSuccess())
	assert.Equal(t, "600.00", outcome.Value().String())
}

/*
TestSum adds amounts and returns zero for nothing.
*/
func TestSum(t *testing.T) {
	assert.True(t, money.Sum().IsZero())

	a := money.FromFloat(600).Value()
	b := money.FromFloat(400).Value()
	assert.True(t, money.Sum(a, b).Equal(decimal.NewFromInt(1000)))
}

/*
TestMarshalJSON renders the bare amount.
*/
func TestMarshalJSON(t *testing.T) {
	raw, err := money.FromFloat(12.5).Value().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(raw))
}
