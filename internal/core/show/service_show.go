// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/core/actor"
	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/validate"
)

// MaxShowTitleLength is the longest show title storage accepts.
const MaxShowTitleLength = 255

type CreateShowInput struct {
	Title          string          `json:"title"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	DateOfPremiere time.Time       `json:"date_of_premiere"`
}

type AddRoleInput struct {
	Title string `json:"title"`
}

// ListShows returns every show, or only the shows of actorID when it is set.
func (service *Service) ListShows(context context.Context, actorID string, limit, offset int) ([]TableView, int, error) {
	if actorID != "" {
		if _, err := service.requireActor(context, actorID); err != nil {
			return nil, 0, err
		}
	}

	summaries, total, err := service.repo.ListShows(context, actorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]TableView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, TableViewOf(summary))
	}
	return views, total, nil
}

// GetShow returns the show with every role paired to its contract and actor.
func (service *Service) GetShow(context context.Context, id string) (*FullInfo, error) {
	show, err := service.loadShow(context, id, domainerr.ShowNotFound)
	if err != nil {
		return nil, err
	}

	info := &FullInfo{
		ID:             show.id,
		Title:          show.title,
		TotalBudget:    show.totalBudget.Amount(),
		AlreadySpent:   show.AlreadySpent(),
		DateOfPremiere: show.dateOfPremiere,
		Roles:          make([]RoleDescription, 0, len(show.roles)),
	}

	for _, role := range show.roles {
		description := RoleDescription{ID: role.id, Title: role.title}

		if contract, found := show.ContractForRole(role.id); found {
			contractView := ContractViewOf(contract)
			description.Contract = &contractView

			holder, err := service.requireActor(context, contract.actorID)
			if err != nil {
				return nil, err
			}
			actorView := actor.FlatViewOf(holder)
			description.Actor = &actorView
		}

		info.Roles = append(info.Roles, description)
	}

	return info, nil
}

func (service *Service) CreateShow(context context.Context, input CreateShowInput) (*FullInfo, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, MaxShowTitleLength)
	validator.Date(FieldDateOfPremiere, input.DateOfPremiere)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	outcome := Create(input.Title, input.TotalBudget, input.DateOfPremiere)
	if outcome.IsFailure() {
		return nil, domainFailure(outcome.Error())
	}
	show := outcome.Value()

	if err := service.repo.CreateShow(context, show); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "show_created",
		slog.String("show_id", show.id),
		slog.String("total_budget", show.totalBudget.String()),
	)

	return &FullInfo{
		ID:             show.id,
		Title:          show.title,
		TotalBudget:    show.totalBudget.Amount(),
		AlreadySpent:   show.AlreadySpent(),
		DateOfPremiere: show.dateOfPremiere,
		Roles:          []RoleDescription{},
	}, nil
}

// DeleteShow removes the show and everything it owns. Unknown ids succeed.
func (service *Service) DeleteShow(context context.Context, id string) error {
	release, err := service.locker.Lock(context, id)
	if err != nil {
		return err
	}
	defer release()

	if err := service.repo.DeleteShow(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "show_deleted", slog.String("show_id", id))
	return nil
}

func (service *Service) AddRole(context context.Context, showID string, input AddRoleInput) (*RoleView, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, MaxRoleTitleLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var view RoleView
	err := service.withShow(context, showID, domainerr.ShowNotFound, func(show *Show) error {
		outcome := show.AddRole(input.Title)
		if outcome.IsFailure() {
			return domainFailure(outcome.Error())
		}
		role := outcome.Value()

		if err := service.repo.InsertRole(context, show, role); err != nil {
			return err
		}
		view = RoleViewOf(role)
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "role_created",
		slog.String("show_id", showID),
		slog.String("role_id", view.ID),
	)
	return &view, nil
}

// DeleteRole removes a role and the contract bound to it. Unknown ids succeed.
func (service *Service) DeleteRole(context context.Context, roleID string) error {
	showID, err := service.repo.ShowIDByRole(context, roleID)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	err = service.withShow(context, showID, domainerr.RoleNotFound, func(show *Show) error {
		if !show.RemoveRole(roleID) {
			return nil
		}
		return service.repo.DeleteRole(context, show, roleID)
	})
	if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus == http.StatusNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	service.logger.WarnContext(context, "role_deleted",
		slog.String("show_id", showID),
		slog.String("role_id", roleID),
	)
	return nil
}
