// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package schema

// TheatreActorTable represents the 'theatre.actor' table
type TheatreActorTable struct {
	Table           string
	ID              string
	FirstName       string
	LastName        string
	MiddleName      string
	DateOfBirth     string
	Dignity         string
	Experience      string
	Email           string
	Telephone       string
	Address         string
	PassportNumber  string
	PassportGivenBy string
	PassportSeries  string
	TaxesNumber     string
	CreatedAt       string
	UpdatedAt       string
}

// TheatreActor is the schema definition for theatre.actor
var TheatreActor = TheatreActorTable{
	Table:           "theatre.actor",
	ID:              "id",
	FirstName:       "firstname",
	LastName:        "lastname",
	MiddleName:      "middlename",
	DateOfBirth:     "dateofbirth",
	Dignity:         "dignity",
	Experience:      "experience",
	Email:           "email",
	Telephone:       "telephone",
	Address:         "address",
	PassportNumber:  "passportnumber",
	PassportGivenBy: "passportgivenby",
	PassportSeries:  "passportseries",
	TaxesNumber:     "taxesnumber",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns the columns mapped onto the actor aggregate, in scan order.
func (t TheatreActorTable) Columns() []string {
	return []string{
		t.ID, t.FirstName, t.LastName, t.MiddleName, t.DateOfBirth, t.Dignity,
		t.Experience, t.Email, t.Telephone, t.Address, t.PassportNumber,
		t.PassportGivenBy, t.PassportSeries, t.TaxesNumber,
	}
}
