// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negativchik09/TheatreAPI/internal/core/result"
)

var errSample = result.NewError("SAMPLE", "Sample failure")

/*
TestSuccess carries no error.
*/
func TestSuccess(t *testing.T) {
	outcome := result.Success()

	assert.True(t, outcome.IsSuccess())
	assert.False(t, outcome.IsFailure())
	assert.Equal(t, result.None, outcome.Error())
	assert.True(t, outcome.Error().IsNone())
}

/*
TestFailure carries its error and compares by identity.
*/
func TestFailure(t *testing.T) {
	outcome := result.Failure(errSample)

	assert.False(t, outcome.IsSuccess())
	assert.Equal(t, errSample, outcome.Error())
	assert.NotEqual(t, result.NewError("OTHER", "Sample failure"), outcome.Error())
	assert.Equal(t, "Sample failure", outcome.Error().Error())
}

/*
TestFailure_RequiresError verifies a failure cannot be built from the sentinel.
*/
func TestFailure_RequiresError(t *testing.T) {
	assert.Panics(t, func() { result.Failure(result.None) })
	assert.Panics(t, func() { result.Fail[int](result.None) })
}

/*
TestOf_Value returns the value on success and panics on failure.
*/
func TestOf_Value(t *testing.T) {
	ok := result.Ok(42)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 42, ok.Value())

	failed := result.Fail[int](errSample)
	assert.False(t, failed.IsSuccess())
	assert.Equal(t, errSample, failed.Error())
	assert.Panics(t, func() { _ = failed.Value() })
}

/*
TestOf_Untyped keeps the outcome but drops the value.
*/
func TestOf_Untyped(t *testing.T) {
	failed := result.Fail[string](errSample).Untyped()
	assert.Equal(t, errSample, failed.Error())

	ok := result.Ok("x").Untyped()
	assert.True(t, ok.IsSuccess())
}
