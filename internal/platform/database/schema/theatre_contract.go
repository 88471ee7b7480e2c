// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package schema

// TheatreContractTable represents the 'theatre.contract' table
type TheatreContractTable struct {
	Table     string
	ID        string
	ShowID    string
	RoleID    string
	ActorID   string
	YearCost  string
	CreatedAt string
}

// TheatreContract is the schema definition for theatre.contract
var TheatreContract = TheatreContractTable{
	Table:     "theatre.contract",
	ID:        "id",
	ShowID:    "showid",
	RoleID:    "roleid",
	ActorID:   "actorid",
	YearCost:  "yearcost",
	CreatedAt: "createdat",
}

// Columns returns the columns mapped onto a contract, in scan order.
func (t TheatreContractTable) Columns() []string {
	return []string{t.ID, t.ShowID, t.RoleID, t.ActorID, t.YearCost}
}

// TheatreTransactionTable represents the 'theatre.transaction' table
type TheatreTransactionTable struct {
	Table      string
	ID         string
	ContractID string
	ActorID    string
	Sum        string
	Date       string
}

// TheatreTransaction is the schema definition for theatre.transaction
var TheatreTransaction = TheatreTransactionTable{
	Table:      "theatre.transaction",
	ID:         "id",
	ContractID: "contractid",
	ActorID:    "actorid",
	Sum:        "sum",
	Date:       "paidat",
}

// Columns returns all standard column names
func (t TheatreTransactionTable) Columns() []string {
	return []string{t.ID, t.ContractID, t.ActorID, t.Sum, t.Date}
}
