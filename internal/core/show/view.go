// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/core/actor"
)

// # Shows

// TableView is one row of the show list.
type TableView struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	AlreadySpent   decimal.Decimal `json:"already_spent"`
	DateOfPremiere time.Time       `json:"date_of_premiere"`
	RoleCount      int             `json:"role_count"`
	ActorCount     int             `json:"actor_count"`
}

func TableViewOf(summary Summary) TableView {
	return TableView(summary)
}

// FlatView describes a show without its children.
type FlatView struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	DateOfPremiere time.Time       `json:"date_of_premiere"`
}

func FlatViewOf(s *Show) FlatView {
	return FlatView{
		ID:             s.id,
		Title:          s.title,
		TotalBudget:    s.totalBudget.Amount(),
		DateOfPremiere: s.dateOfPremiere,
	}
}

// RoleDescription pairs a role with its contract and actor, both null while the role is open.
type RoleDescription struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Actor    *actor.FlatView `json:"actor"`
	Contract *ContractView   `json:"contract"`
}

// FullInfo is the detailed show page.
type FullInfo struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	TotalBudget    decimal.Decimal   `json:"total_budget"`
	AlreadySpent   decimal.Decimal   `json:"already_spent"`
	DateOfPremiere time.Time         `json:"date_of_premiere"`
	Roles          []RoleDescription `json:"roles"`
}

// # Roles

type RoleView struct {
	ID     string `json:"id"`
	ShowID string `json:"show_id"`
	Title  string `json:"title"`
}

func RoleViewOf(role *Role) RoleView {
	return RoleView{ID: role.id, ShowID: role.showID, Title: role.title}
}

// # Contracts

type ContractView struct {
	ID       string          `json:"id"`
	ShowID   string          `json:"show_id"`
	RoleID   string          `json:"role_id"`
	ActorID  string          `json:"actor_id"`
	YearCost decimal.Decimal `json:"year_cost"`
}

func ContractViewOf(contract *Contract) ContractView {
	return ContractView{
		ID:       contract.id,
		ShowID:   contract.showID,
		RoleID:   contract.roleID,
		ActorID:  contract.actorID,
		YearCost: contract.yearCost.Amount(),
	}
}

// ContractFullInfo is the detailed contract page with its payment history.
type ContractFullInfo struct {
	ID           string            `json:"id"`
	Actor        actor.FlatView    `json:"actor"`
	Show         FlatView          `json:"show"`
	Role         RoleView          `json:"role"`
	YearCost     decimal.Decimal   `json:"year_cost"`
	AlreadyPaid  decimal.Decimal   `json:"already_paid"`
	Transactions []TransactionView `json:"transactions"`
}

// # Transactions

type TransactionView struct {
	ID         string          `json:"id"`
	ContractID string          `json:"contract_id"`
	ActorID    string          `json:"actor_id"`
	Sum        decimal.Decimal `json:"sum"`
	Date       time.Time       `json:"date"`
}

func TransactionViewOf(transaction *Transaction) TransactionView {
	return TransactionView{
		ID:         transaction.id,
		ContractID: transaction.contractID,
		ActorID:    transaction.actorID,
		Sum:        transaction.sum.Amount(),
		Date:       transaction.date,
	}
}

func TransactionViewsOf(transactions []*Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(transactions))
	for _, transaction := range transactions {
		views = append(views, TransactionViewOf(transaction))
	}
	return views
}
