// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

/*
Package actor implements the performer aggregate and its HTTP, service and
storage layers.

# Domain

An [Actor] is created once through [Create], which enforces the adult-age,
experience and personal-name rules. There is no partial update: changing an
actor means running [Create] again with the same ID and replacing the stored
aggregate.

The actor ID is the ID of the account that logs in as this actor.
*/
package actor

import (
	"time"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/result"
)

// AdultAge is the minimum age, in whole years, at creation time.
const AdultAge = 18

// # Aggregate

// Actor is a performer that can be bound to show roles by contracts.
type Actor struct {
	id          string
	name        FullName
	dateOfBirth time.Time
	dignity     string
	experience  float64
	email       string
	telephone   string
	address     string
	passport    Passport
	taxesNumber string
}

// CreateParams carries the raw input of [Create].
type CreateParams struct {
	ID              string
	FirstName       string
	LastName        string
	MiddleName      string
	DateOfBirth     time.Time
	Dignity         string
	Experience      float64
	Email           string
	Telephone       string
	Address         string
	PassportNumber  string
	PassportGivenBy string
	PassportSeries  *string
	TaxesNumber     string

	// Now overrides the clock used for the age check. Nil means time.Now.
	Now func() time.Time
}

/*
Create validates params and builds an Actor.

Validation order, first failure wins:
 1. DateOfBirth + 18 years after now: ActorMustBeAdult
 2. Experience below zero: ExperienceMustBeGreaterThanZero
 3. First, last or middle name outside the personal-name script: NameIssue
*/
func Create(params CreateParams) result.Of[*Actor] {
	now := time.Now
	if params.Now != nil {
		now = params.Now
	}

	if params.DateOfBirth.AddDate(AdultAge, 0, 0).After(now()) {
		return result.Fail[*Actor](domainerr.ActorMustBeAdult)
	}

	if params.Experience < 0 {
		return result.Fail[*Actor](domainerr.ExperienceMustBeGreaterThanZero)
	}

	first := normalizeName(params.FirstName)
	last := normalizeName(params.LastName)
	middle := normalizeName(params.MiddleName)

	for _, name := range []string{first, last, middle} {
		if !isPersonalName(name) {
			return result.Fail[*Actor](domainerr.NameIssue)
		}
	}

	return result.Ok(&Actor{
		id:          params.ID,
		name:        FullName{first: first, last: last, middle: middle},
		dateOfBirth: params.DateOfBirth,
		dignity:     params.Dignity,
		experience:  params.Experience,
		email:       params.Email,
		telephone:   params.Telephone,
		address:     params.Address,
		passport:    NewPassport(params.PassportNumber, params.PassportGivenBy, params.PassportSeries),
		taxesNumber: params.TaxesNumber,
	})
}

// Restore rebuilds an Actor that was validated before it was stored.
// It is meant for repositories only.
func Restore(params CreateParams) *Actor {
	return &Actor{
		id:          params.ID,
		name:        FullName{first: params.FirstName, last: params.LastName, middle: params.MiddleName},
		dateOfBirth: params.DateOfBirth,
		dignity:     params.Dignity,
		experience:  params.Experience,
		email:       params.Email,
		telephone:   params.Telephone,
		address:     params.Address,
		passport:    NewPassport(params.PassportNumber, params.PassportGivenBy, params.PassportSeries),
		taxesNumber: params.TaxesNumber,
	}
}

// # Accessors

func (a *Actor) ID() string             { return a.id }
func (a *Actor) Name() FullName         { return a.name }
func (a *Actor) DateOfBirth() time.Time { return a.dateOfBirth }
func (a *Actor) Dignity() string        { return a.dignity }
func (a *Actor) Experience() float64    { return a.experience }
func (a *Actor) Email() string          { return a.email }
func (a *Actor) Telephone() string      { return a.telephone }
func (a *Actor) Address() string        { return a.address }
func (a *Actor) Passport() Passport     { return a.passport }
func (a *Actor) TaxesNumber() string    { return a.taxesNumber }

// # Views

// FlatView is the public card of an actor, visible to every signed-in account.
type FlatView struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	MiddleName  string    `json:"middle_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Dignity     string    `json:"dignity"`
	Experience  float64   `json:"experience"`
}

// FlatViewOf projects a onto its public fields.
func FlatViewOf(a *Actor) FlatView {
	return FlatView{
		ID:          a.id,
		FirstName:   a.name.first,
		LastName:    a.name.last,
		MiddleName:  a.name.middle,
		DateOfBirth: a.dateOfBirth,
		Dignity:     a.dignity,
		Experience:  a.experience,
	}
}

// View is the full record of an actor, contacts and documents included.
// Only admins and the actor themselves may see it.
type View struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	MiddleName      string    `json:"middle_name"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	Dignity         string    `json:"dignity"`
	Experience      float64   `json:"experience"`
	Email           string    `json:"email"`
	Telephone       string    `json:"telephone"`
	Address         string    `json:"address"`
	PassportNumber  string    `json:"passport_number"`
	PassportGivenBy string    `json:"passport_given_by"`
	PassportSeries  *string   `json:"passport_series,omitempty"`
	TaxesNumber     string    `json:"taxes_number"`
}

// ViewOf flattens a for transport.
func ViewOf(a *Actor) View {
	return View{
		ID:              a.id,
		FirstName:       a.name.first,
		LastName:        a.name.last,
		MiddleName:      a.name.middle,
		DateOfBirth:     a.dateOfBirth,
		Dignity:         a.dignity,
		Experience:      a.experience,
		Email:           a.email,
		Telephone:       a.telephone,
		Address:         a.address,
		PassportNumber:  a.passport.number,
		PassportGivenBy: a.passport.givenBy,
		PassportSeries:  a.passport.Series(),
		TaxesNumber:     a.taxesNumber,
	}
}
