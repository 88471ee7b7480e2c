// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/core/actor"
	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/validate"
)

type CreateContractInput struct {
	ShowID   string          `json:"show_id"`
	RoleID   string          `json:"role_id"`
	ActorID  string          `json:"actor_id"`
	YearCost decimal.Decimal `json:"year_cost"`
}

// ListContracts returns every contract, or only the contracts of actorID when it is set.
func (service *Service) ListContracts(context context.Context, actorID string, limit, offset int) ([]ContractView, int, error) {
	if actorID != "" {
		if _, err := service.requireActor(context, actorID); err != nil {
			return nil, 0, err
		}
	}

	contracts, total, err := service.repo.ListContracts(context, actorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ContractView, 0, len(contracts))
	for _, contract := range contracts {
		views = append(views, ContractViewOf(contract))
	}
	return views, total, nil
}

/*
GetContract returns the contract with its actor, show, role and payments.

When ownerID is set the contract must belong to that actor, otherwise the call
fails with 403 Forbidden.
*/
func (service *Service) GetContract(context context.Context, id, ownerID string) (*ContractFullInfo, error) {
	show, contract, err := service.findContract(context, id)
	if err != nil {
		return nil, err
	}

	if ownerID != "" && contract.actorID != ownerID {
		return nil, apperr.Forbidden("Contract belongs to another actor")
	}

	holder, err := service.requireActor(context, contract.actorID)
	if err != nil {
		return nil, err
	}

	role, found := show.Role(contract.roleID)
	if !found {
		return nil, apperr.Internal(fmt.Errorf("get_contract: role %s of contract %s is missing", contract.roleID, contract.id))
	}

	return &ContractFullInfo{
		ID:           contract.id,
		Actor:        actor.FlatViewOf(holder),
		Show:         FlatViewOf(show),
		Role:         RoleViewOf(role),
		YearCost:     contract.yearCost.Amount(),
		AlreadyPaid:  contract.AlreadyPaid(),
		Transactions: TransactionViewsOf(contract.Transactions()),
	}, nil
}

/*
CreateContract binds an actor to a role of a show.

Errors:
  - ShowNotFound, ActorNotFound, RoleNotFound: 404
  - MoneyMustBeGreaterThanZero, BudgetOverdue, ContractAlreadyCreatedForRole: 400
*/
func (service *Service) CreateContract(context context.Context, input CreateContractInput) (*ContractView, error) {
	validator := &validate.Validator{}
	validator.UUID(FieldShowID, input.ShowID)
	validator.UUID(FieldRoleID, input.RoleID)
	validator.UUID(FieldActorID, input.ActorID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var view ContractView
	err := service.withShow(context, input.ShowID, domainerr.ShowNotFound, func(show *Show) error {
		if _, err := service.requireActor(context, input.ActorID); err != nil {
			return err
		}

		outcome := show.CreateContract(input.RoleID, input.ActorID, input.YearCost)
		if outcome.IsFailure() {
			return domainFailure(outcome.Error())
		}
		contract := outcome.Value()

		if err := service.repo.InsertContract(context, show, contract); err != nil {
			return err
		}
		view = ContractViewOf(contract)
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "contract_created",
		slog.String("contract_id", view.ID),
		slog.String("show_id", view.ShowID),
		slog.String("actor_id", view.ActorID),
		slog.String("year_cost", view.YearCost.String()),
	)
	return &view, nil
}

// DeleteContract removes a contract with its payments. Unknown ids succeed.
func (service *Service) DeleteContract(context context.Context, id string) error {
	showID, err := service.repo.ShowIDByContract(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	err = service.withShow(context, showID, domainerr.ContractNotFound, func(show *Show) error {
		if !show.RemoveContract(id) {
			return nil
		}
		return service.repo.DeleteContract(context, show, id)
	})
	if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus == http.StatusNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	service.logger.WarnContext(context, "contract_deleted",
		slog.String("show_id", showID),
		slog.String("contract_id", id),
	)
	return nil
}

// findContract loads the owning show without locking it.
func (service *Service) findContract(context context.Context, id string) (*Show, *Contract, error) {
	showID, err := service.repo.ShowIDByContract(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, nil, apperr.FromDomain(domainerr.ContractNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, nil, err
	}

	show, err := service.loadShow(context, showID, domainerr.ContractNotFound)
	if err != nil {
		return nil, nil, err
	}

	contract, found := show.Contract(id)
	if !found {
		return nil, nil, apperr.FromDomain(domainerr.ContractNotFound, http.StatusNotFound)
	}
	return show, contract, nil
}
