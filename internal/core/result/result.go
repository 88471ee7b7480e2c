// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

/*
Package result provides the outcome type returned by every domain operation.

A domain operation never panics or returns a bare error for an expected failure.
It returns a [Result] (or an [Of] when a value is produced) that is either a
success or a failure carrying exactly one [Error].

Usage:

	outcome := money.Create(amount)
	if !outcome.IsSuccess() {
	    return result.Fail[*Show](outcome.Error())
	}
	budget := outcome.Value()

Reading the value of a failed outcome is a programming error and panics.
*/
package result

import "fmt"

// # Errors

// Error is a named domain failure. Two errors are the same failure when they are equal;
// the Message is carried for display only.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// None is the sentinel carried by successful outcomes.
var None = Error{}

// NewError declares a domain failure.
func NewError(code, message string) Error {
	return Error{Code: code, Message: message}
}

// Error implements the error interface.
func (e Error) Error() string { return e.Message }

// IsNone reports whether e is the empty sentinel.
func (e Error) IsNone() bool { return e == None }

// # Outcome

// Result is a success/failure outcome without a value.
type Result struct {
	isSuccess bool
	err       Error
}

func newResult(isSuccess bool, err Error) Result {
	if isSuccess && !err.IsNone() {
		panic(fmt.Sprintf("result: successful outcome cannot carry error %q", err.Code))
	}
	if !isSuccess && err.IsNone() {
		panic("result: failed outcome requires an error")
	}
	return Result{isSuccess: isSuccess, err: err}
}

// Success returns a successful outcome.
func Success() Result { return newResult(true, None) }

// Failure returns a failed outcome. It panics if err is [None].
func Failure(err Error) Result { return newResult(false, err) }

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool { return r.isSuccess }

// IsFailure is the negation of [Result.IsSuccess].
func (r Result) IsFailure() bool { return !r.isSuccess }

// Error returns the failure, or [None] for a successful outcome.
func (r Result) Error() Error { return r.err }

// # Outcome With Value

// Of is an outcome that carries a value of type T when successful.
type Of[T any] struct {
	Result
	value T
}

// Ok returns a successful outcome carrying value.
func Ok[T any](value T) Of[T] {
	return Of[T]{Result: newResult(true, None), value: value}
}

// Fail returns a failed outcome of type T. It panics if err is [None].
func Fail[T any](err Error) Of[T] {
	return Of[T]{Result: newResult(false, err)}
}

// Value returns the carried value.
//
// # Panics
//
// Value panics when the outcome failed. Callers must check [Result.IsSuccess] first.
func (r Of[T]) Value() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("result: value read from failed outcome (%s)", r.err.Code))
	}
	return r.value
}

// Untyped drops the value and returns the bare outcome.
func (r Of[T]) Untyped() Result { return r.Result }
