// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

// Package domainerr declares every named failure the theatre domain can report.
//
// Callers compare failures by equality (outcome.Error() == domainerr.Overdraft),
// never by message text.
package domainerr

import "github.com/negativchik09/TheatreAPI/internal/core/result"

// # Money

var (
	MoneyMustBeGreaterThanZero = result.NewError("MONEY_MUST_BE_GREATER_THAN_ZERO", "Money must be greater than zero")
)

// # Actors

var (
	ActorNotFound                   = result.NewError("ACTOR_NOT_FOUND", "Actor not found")
	ActorMustBeAdult                = result.NewError("ACTOR_MUST_BE_ADULT", "Actor must be adult")
	ExperienceMustBeGreaterThanZero = result.NewError("EXPERIENCE_MUST_BE_GREATER_THAN_ZERO", "Experience must be greater than zero")
	NameIssue                       = result.NewError("NAME_ISSUE", "Invalid name")
)

// # Contracts

var (
	ContractNotFound = result.NewError("CONTRACT_NOT_FOUND", "Contract not found")
	BudgetOverdue    = result.NewError("BUDGET_OVERDUE", "It's not enough money to create contract")
	// RoleNotFound is also reported when a role lookup outside contract creation misses.
	RoleNotFound                  = result.NewError("ROLE_NOT_FOUND", "Role not found")
	ContractAlreadyCreatedForRole = result.NewError("CONTRACT_ALREADY_CREATED_FOR_ROLE", "For provided role contract have already been created")
	Overdraft                     = result.NewError("OVERDRAFT", "All money have been payed on this contract")
)

// # Roles

var (
	RoleAlreadyCreatedForShow = result.NewError("ROLE_ALREADY_CREATED_FOR_SHOW", "Role with this title already exists in the show")
)

// # Shows

var (
	ShowNotFound = result.NewError("SHOW_NOT_FOUND", "Show not found")
)

// # Accounts

var (
	UserNotFound = result.NewError("USER_NOT_FOUND", "User not found")
	Identity     = result.NewError("IDENTITY", "Identity error")
)
