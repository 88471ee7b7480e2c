// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/negativchik09/TheatreAPI/internal/core/actor"
	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/result"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
)

// JSON field names reported in validation errors.
const (
	FieldTitle          = "title"
	FieldTotalBudget    = "total_budget"
	FieldDateOfPremiere = "date_of_premiere"
	FieldShowID         = "show_id"
	FieldRoleID         = "role_id"
	FieldActorID        = "actor_id"
	FieldYearCost       = "year_cost"
)

// ActorFinder resolves actors, answering ActorNotFound (404) for unknown ids.
type ActorFinder interface {
	GetActor(ctx context.Context, id string) (*actor.Actor, error)
}

/*
Service runs the show, contract and transaction use cases.

Writers go through [Service.withShow]: lock the show, load the aggregate,
apply one domain operation and save the change. Readers load without locking.
*/
type Service struct {
	repo   Repository
	locker Locker
	actors ActorFinder
	logger *slog.Logger
}

func NewService(repo Repository, locker Locker, actors ActorFinder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		locker: locker,
		actors: actors,
		logger: logger,
	}
}

// withShow holds the show lock while apply runs on a fresh copy of the aggregate.
// A missing show is reported as missing with status 404.
func (service *Service) withShow(context context.Context, showID string, missing result.Error, apply func(show *Show) error) error {
	release, err := service.locker.Lock(context, showID)
	if err != nil {
		return err
	}
	defer release()

	show, err := service.loadShow(context, showID, missing)
	if err != nil {
		return err
	}
	return apply(show)
}

func (service *Service) loadShow(context context.Context, showID string, missing result.Error) (*Show, error) {
	show, err := service.repo.GetShow(context, showID)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.FromDomain(missing, http.StatusNotFound)
	}
	return show, err
}

// requireActor checks that actorID names an existing actor.
func (service *Service) requireActor(context context.Context, actorID string) (*actor.Actor, error) {
	return service.actors.GetActor(context, actorID)
}

// domainFailure lifts a domain error, answering 404 for the not-found family.
func domainFailure(err result.Error) *apperr.AppError {
	switch err {
	case domainerr.ShowNotFound, domainerr.RoleNotFound, domainerr.ContractNotFound, domainerr.ActorNotFound:
		return apperr.FromDomain(err, http.StatusNotFound)
	default:
		return apperr.FromDomain(err, http.StatusBadRequest)
	}
}
