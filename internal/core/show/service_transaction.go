// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
)

// CreateTransaction pays the next monthly installment of a contract.
// It fails with ContractNotFound (404) or Overdraft (400).
func (service *Service) CreateTransaction(context context.Context, contractID string) (*TransactionView, error) {
	showID, err := service.repo.ShowIDByContract(context, contractID)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.FromDomain(domainerr.ContractNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, err
	}

	var view TransactionView
	err = service.withShow(context, showID, domainerr.ContractNotFound, func(show *Show) error {
		contract, found := show.Contract(contractID)
		if !found {
			return apperr.FromDomain(domainerr.ContractNotFound, http.StatusNotFound)
		}

		outcome := contract.CreateTransaction()
		if outcome.IsFailure() {
			return domainFailure(outcome.Error())
		}
		transaction := outcome.Value()

		if err := service.repo.InsertTransaction(context, show, transaction); err != nil {
			return err
		}
		view = TransactionViewOf(transaction)
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "transaction_created",
		slog.String("transaction_id", view.ID),
		slog.String("contract_id", contractID),
		slog.String("sum", view.Sum.String()),
	)
	return &view, nil
}

// ListContractTransactions returns the payments of one contract in payment order.
// When ownerID is set the contract must belong to that actor.
func (service *Service) ListContractTransactions(context context.Context, contractID, ownerID string) ([]TransactionView, error) {
	_, contract, err := service.findContract(context, contractID)
	if err != nil {
		return nil, err
	}

	if ownerID != "" && contract.actorID != ownerID {
		return nil, apperr.Forbidden("Contract belongs to another actor")
	}
	return TransactionViewsOf(contract.Transactions()), nil
}

// ListActorTransactions returns every payment made to an actor across contracts.
// When ownerID is set it must equal actorID.
func (service *Service) ListActorTransactions(context context.Context, actorID, ownerID string) ([]TransactionView, error) {
	if ownerID != "" && actorID != ownerID {
		return nil, apperr.Forbidden("Transactions belong to another actor")
	}

	if _, err := service.requireActor(context, actorID); err != nil {
		return nil, err
	}

	transactions, err := service.repo.ListTransactions(context, TransactionFilter{ActorID: actorID})
	if err != nil {
		return nil, err
	}
	return TransactionViewsOf(transactions), nil
}
