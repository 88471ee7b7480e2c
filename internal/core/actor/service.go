// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/validate"
	"github.com/negativchik09/TheatreAPI/internal/users/account"
	"github.com/negativchik09/TheatreAPI/pkg/uuid"
)

// AccountProvisioner prepares the login account of a new actor.
type AccountProvisioner interface {
	NewActorAccount(actorID, login, email, telephone string) (*account.Account, string, error)
}

type Service struct {
	repo     Repository
	accounts AccountProvisioner
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, accounts AccountProvisioner, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		logger:   logger,
		now:      time.Now,
	}
}

// PersonalInfo is the full personal record of an actor as sent by clients.
type PersonalInfo struct {
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
	PassportSeries  *string   `json:"passport_series"`
	TaxesNumber     string    `json:"taxes_number"`
}

// CreateActorInput adds the login of the account created with the actor.
type CreateActorInput struct {
	Login string `json:"login"`
	PersonalInfo
}

// Registration is returned once, when an actor is created.
type Registration struct {
	View
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (service *Service) ListActors(context context.Context, limit, offset int) ([]*Actor, int, error) {
	return service.repo.ListActors(context, limit, offset)
}

// GetActor returns ActorNotFound (404) for an unknown id.
func (service *Service) GetActor(context context.Context, id string) (*Actor, error) {
	actor, err := service.repo.GetActor(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.FromDomain(domainerr.ActorNotFound, http.StatusNotFound)
	}
	return actor, err
}

// CreateActor validates the actor before any account exists, then stores both together.
func (service *Service) CreateActor(context context.Context, input CreateActorInput) (*Registration, error) {
	actor, err := service.build(uuid.New(), input.PersonalInfo)
	if err != nil {
		return nil, err
	}

	login, password, err := service.accounts.NewActorAccount(actor.ID(), input.Login, actor.Email(), actor.Telephone())
	if err != nil {
		return nil, err
	}

	if err := service.repo.RegisterActor(context, actor, login); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "actor_created",
		slog.String("actor_id", actor.ID()),
		slog.String("login", login.Login),
	)

	return &Registration{View: ViewOf(actor), Login: login.Login, Password: password}, nil
}

// UpdateActor replaces every personal field of an existing actor.
func (service *Service) UpdateActor(context context.Context, id string, input PersonalInfo) (*Actor, error) {
	actor, err := service.build(id, input)
	if err != nil {
		return nil, err
	}

	err = service.repo.UpdateActor(context, actor)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.FromDomain(domainerr.ActorNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "actor_updated", slog.String("actor_id", id))
	return actor, nil
}

func (service *Service) DeleteActor(context context.Context, id string) error {
	if err := service.repo.DeleteActor(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "actor_deleted", slog.String("actor_id", id))
	return nil
}

// build checks transport-level fields, then runs the domain factory.
func (service *Service) build(id string, input PersonalInfo) (*Actor, error) {
	validator := &validate.Validator{}

	validator.Required(FieldFirstName, input.FirstName).MaxLen(FieldFirstName, input.FirstName, 100)
	validator.Required(FieldLastName, input.LastName).MaxLen(FieldLastName, input.LastName, 100)
	validator.Required(FieldMiddleName, input.MiddleName).MaxLen(FieldMiddleName, input.MiddleName, 100)
	validator.Date(FieldDateOfBirth, input.DateOfBirth)
	validator.MaxLen(FieldDignity, input.Dignity, 255)
	validator.Email(FieldEmail, input.Email)
	validator.Phone(FieldTelephone, input.Telephone)
	validator.MaxLen(FieldAddress, input.Address, 500)
	validator.Required(FieldPassportNumber, input.PassportNumber).MaxLen(FieldPassportNumber, input.PassportNumber, 32)
	validator.Required(FieldPassportGivenBy, input.PassportGivenBy).MaxLen(FieldPassportGivenBy, input.PassportGivenBy, 255)
	if input.PassportSeries != nil {
		validator.MaxLen(FieldPassportSeries, *input.PassportSeries, 16)
	}
	validator.Required(FieldTaxesNumber, input.TaxesNumber).MaxLen(FieldTaxesNumber, input.TaxesNumber, 32)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	outcome := Create(CreateParams{
		ID:              id,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		MiddleName:      input.MiddleName,
		DateOfBirth:     input.DateOfBirth,
		Dignity:         input.Dignity,
		Experience:      input.Experience,
		Email:           input.Email,
		Telephone:       input.Telephone,
		Address:         input.Address,
		PassportNumber:  input.PassportNumber,
		PassportGivenBy: input.PassportGivenBy,
		PassportSeries:  input.PassportSeries,
		TaxesNumber:     input.TaxesNumber,
		Now:             service.now,
	})
	if outcome.IsFailure() {
		return nil, apperr.FromDomain(outcome.Error(), http.StatusBadRequest)
	}

	return outcome.Value(), nil
}
