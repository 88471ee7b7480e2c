// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package schema

// TheatreShowTable represents the 'theatre.show' table
type TheatreShowTable struct {
	Table          string
	ID             string
	Title          string
	TotalBudget    string
	DateOfPremiere string
	Version        string
	CreatedAt      string
}

// TheatreShow is the schema definition for theatre.show
var TheatreShow = TheatreShowTable{
	Table:          "theatre.show",
	ID:             "id",
	Title:          "title",
	TotalBudget:    "totalbudget",
	DateOfPremiere: "dateofpremiere",
	Version:        "version",
	CreatedAt:      "createdat",
}

// Columns returns the columns mapped onto the show aggregate, in scan order.
func (t TheatreShowTable) Columns() []string {
	return []string{t.ID, t.Title, t.TotalBudget, t.DateOfPremiere, t.Version}
}

// TheatreRoleTable represents the 'theatre.role' table
type TheatreRoleTable struct {
	Table  string
	ID     string
	ShowID string
	Title  string
}

// TheatreRole is the schema definition for theatre.role
var TheatreRole = TheatreRoleTable{
	Table:  "theatre.role",
	ID:     "id",
	ShowID: "showid",
	Title:  "title",
}

// Columns returns all standard column names
func (t TheatreRoleTable) Columns() []string {
	return []string{t.ID, t.ShowID, t.Title}
}
