// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

/*
Package show implements the show aggregate with its roles, contracts and
monthly payments, and the HTTP, service and storage layers around it.

# Aggregate

A [Show] owns its roles and contracts; a [Contract] owns its transactions.
Every rule that spans children lives on the owner:

  - [Show.AddRole] keeps role titles unique within the show.
  - [Show.CreateContract] keeps the sum of yearly costs within the budget and
    allows one contract per role.
  - [Contract.CreateTransaction] pays at most twelve monthly installments.

# Concurrency

Domain types carry no locks. Writers hold the per-show [Locker] while they
load, mutate and save a show, and the save is rejected with
[ErrConcurrentUpdate] when the stored version moved in the meantime.
*/
package show

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/money"
	"github.com/negativchik09/TheatreAPI/internal/core/result"
	"github.com/negativchik09/TheatreAPI/pkg/uuid"
)

// Show is a production with a fixed budget for yearly actor contracts.
type Show struct {
	id             string
	title          string
	totalBudget    money.Money
	dateOfPremiere time.Time
	version        int64

	roles     []*Role
	contracts []*Contract
}

// Create builds a show with no roles and no contracts.
// It fails with MoneyMustBeGreaterThanZero when the budget is not positive.
func Create(title string, totalBudget decimal.Decimal, dateOfPremiere time.Time) result.Of[*Show] {
	budget := money.Create(totalBudget)
	if budget.IsFailure() {
		return result.Fail[*Show](budget.Error())
	}

	return result.Ok(&Show{
		id:             uuid.New(),
		title:          title,
		totalBudget:    budget.Value(),
		dateOfPremiere: dateOfPremiere,
	})
}

// # Accessors

func (s *Show) ID() string                { return s.id }
func (s *Show) Title() string             { return s.title }
func (s *Show) TotalBudget() money.Money  { return s.totalBudget }
func (s *Show) DateOfPremiere() time.Time { return s.dateOfPremiere }

// Version is the optimistic concurrency token read from storage.
func (s *Show) Version() int64 { return s.version }

// Roles returns a read-only snapshot of the roles in creation order.
func (s *Show) Roles() []*Role {
	return append([]*Role(nil), s.roles...)
}

// Contracts returns a read-only snapshot of the contracts in creation order.
func (s *Show) Contracts() []*Contract {
	return append([]*Contract(nil), s.contracts...)
}

// Role finds a role by id.
func (s *Show) Role(id string) (*Role, bool) {
	for _, role := range s.roles {
		if role.id == id {
			return role, true
		}
	}
	return nil, false
}

// Contract finds a contract by id.
func (s *Show) Contract(id string) (*Contract, bool) {
	for _, contract := range s.contracts {
		if contract.id == id {
			return contract, true
		}
	}
	return nil, false
}

// ContractForRole finds the contract bound to roleID, if any.
func (s *Show) ContractForRole(roleID string) (*Contract, bool) {
	for _, contract := range s.contracts {
		if contract.roleID == roleID {
			return contract, true
		}
	}
	return nil, false
}

// AlreadySpent sums the yearly cost of every contract. It is zero without contracts.
func (s *Show) AlreadySpent() decimal.Decimal {
	total := decimal.Zero
	for _, contract := range s.contracts {
		total = total.Add(contract.yearCost.Amount())
	}
	return total
}

// ActorCount is the number of distinct actors holding a contract.
func (s *Show) ActorCount() int {
	seen := make(map[string]struct{}, len(s.contracts))
	for _, contract := range s.contracts {
		seen[contract.actorID] = struct{}{}
	}
	return len(seen)
}

// HasActor reports whether actorID holds any contract in the show.
func (s *Show) HasActor(actorID string) bool {
	for _, contract := range s.contracts {
		if contract.actorID == actorID {
			return true
		}
	}
	return false
}

// # Mutations

// AddRole appends a role. Titles are compared exactly, including case.
func (s *Show) AddRole(title string) result.Of[*Role] {
	for _, role := range s.roles {
		if role.title == title {
			return result.Fail[*Role](domainerr.RoleAlreadyCreatedForShow)
		}
	}

	role := &Role{id: uuid.New(), showID: s.id, title: title}
	s.roles = append(s.roles, role)

	return result.Ok(role)
}

/*
CreateContract binds actorID to roleID for yearCost per year.

Validation order, first failure wins:
 1. yearCost not positive: MoneyMustBeGreaterThanZero
 2. AlreadySpent + yearCost above the total budget: BudgetOverdue
 3. roleID not a role of this show: RoleNotFound
 4. roleID already under contract: ContractAlreadyCreatedForRole

Spending exactly the whole budget is allowed. The actor is not checked here;
callers verify it exists.
*/
func (s *Show) CreateContract(roleID, actorID string, yearCost decimal.Decimal) result.Of[*Contract] {
	cost := money.Create(yearCost)
	if cost.IsFailure() {
		return result.Fail[*Contract](cost.Error())
	}

	if s.AlreadySpent().Add(yearCost).GreaterThan(s.totalBudget.Amount()) {
		return result.Fail[*Contract](domainerr.BudgetOverdue)
	}

	if _, found := s.Role(roleID); !found {
		return result.Fail[*Contract](domainerr.RoleNotFound)
	}

	if _, taken := s.ContractForRole(roleID); taken {
		return result.Fail[*Contract](domainerr.ContractAlreadyCreatedForRole)
	}

	contract := &Contract{
		id:       uuid.New(),
		showID:   s.id,
		roleID:   roleID,
		actorID:  actorID,
		yearCost: cost.Value(),
	}
	s.contracts = append(s.contracts, contract)

	return result.Ok(contract)
}

// RemoveRole detaches a role and the contract bound to it.
// It reports whether the role was present.
func (s *Show) RemoveRole(roleID string) bool {
	index := -1
	for i, role := range s.roles {
		if role.id == roleID {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	s.roles = append(s.roles[:index:index], s.roles[index+1:]...)
	if contract, found := s.ContractForRole(roleID); found {
		s.RemoveContract(contract.id)
	}
	return true
}

// RemoveContract detaches a contract with its transactions, freeing its budget
// share and its role. It reports whether the contract was present.
func (s *Show) RemoveContract(contractID string) bool {
	for i, contract := range s.contracts {
		if contract.id == contractID {
			s.contracts = append(s.contracts[:i:i], s.contracts[i+1:]...)
			return true
		}
	}
	return false
}

// # Persistence

// Snapshot carries the stored state of a show.
type Snapshot struct {
	ID             string
	Title          string
	TotalBudget    decimal.Decimal
	DateOfPremiere time.Time
	Version        int64
	Roles          []*Role
	Contracts      []*Contract
}

// Restore rebuilds a show that was validated before it was stored.
// It is meant for repositories only and panics on a non-positive budget.
func Restore(snapshot Snapshot) *Show {
	return &Show{
		id:             snapshot.ID,
		title:          snapshot.Title,
		totalBudget:    money.Create(snapshot.TotalBudget).Value(),
		dateOfPremiere: snapshot.DateOfPremiere,
		version:        snapshot.Version,
		roles:          append([]*Role(nil), snapshot.Roles...),
		contracts:      append([]*Contract(nil), snapshot.Contracts...),
	}
}

// advance records a successful save.
func (s *Show) advance() {
	s.version++
}
