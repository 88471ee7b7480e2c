// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/negativchik09/TheatreAPI/internal/platform/ctxutil"
	"github.com/negativchik09/TheatreAPI/internal/platform/middleware"
	requestutil "github.com/negativchik09/TheatreAPI/internal/platform/request"
	"github.com/negativchik09/TheatreAPI/internal/platform/respond"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
	"github.com/negativchik09/TheatreAPI/pkg/pagination"
)

// Handler serves the show, contract and transaction endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ShowRoutes is mounted at /shows.
func (handler *Handler) ShowRoutes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(readRoute chi.Router) {
		readRoute.Use(middleware.RequireRole(sec.RoleActor))

		readRoute.Get("/", handler.listShows)
		readRoute.Get("/{id}", handler.getShow)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createShow)
		admin.Delete("/{id}", handler.deleteShow)

		// Roles
		admin.Post("/{id}/roles", handler.addRole)
		admin.Delete("/roles/{roleID}", handler.deleteRole)
	})

	return router
}

// ContractRoutes is mounted at /contracts.
func (handler *Handler) ContractRoutes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(readRoute chi.Router) {
		readRoute.Use(middleware.RequireRole(sec.RoleActor))

		readRoute.Get("/", handler.listContracts)
		readRoute.Get("/{id}", handler.getContract)
		readRoute.Get("/{id}/transactions", handler.listContractTransactions)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createContract)
		admin.Delete("/{id}", handler.deleteContract)

		// Payments
		admin.Post("/{id}/transactions", handler.createTransaction)
	})

	return router
}

// TransactionRoutes is mounted at /transactions.
func (handler *Handler) TransactionRoutes() chi.Router {
	router := chi.NewRouter()

	router.With(middleware.RequireRole(sec.RoleActor)).Get("/by-actor/{actorID}", handler.listActorTransactions)

	return router
}

// ownerFilter is empty for admins and the caller's actor id for everybody else.
func ownerFilter(request *http.Request) (string, error) {
	if ctxutil.IsAdmin(request.Context()) {
		return "", nil
	}
	return requestutil.RequiredUserID(request)
}

// # Shows

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := ownerFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	views, total, err := handler.service.ListShows(request.Context(), ownerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getShow(writer http.ResponseWriter, request *http.Request) {
	showID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	info, err := handler.service.GetShow(request.Context(), showID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}

func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	var input CreateShowInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	info, err := handler.service.CreateShow(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, info)
}

func (handler *Handler) deleteShow(writer http.ResponseWriter, request *http.Request) {
	showID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteShow(request.Context(), showID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) addRole(writer http.ResponseWriter, request *http.Request) {
	showID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input AddRoleInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	role, err := handler.service.AddRole(request.Context(), showID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, role)
}

func (handler *Handler) deleteRole(writer http.ResponseWriter, request *http.Request) {
	roleID, err := requestutil.ID(request, "roleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteRole(request.Context(), roleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Contracts

func (handler *Handler) listContracts(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := ownerFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	views, total, err := handler.service.ListContracts(request.Context(), ownerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getContract(writer http.ResponseWriter, request *http.Request) {
	contractID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID, err := ownerFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	info, err := handler.service.GetContract(request.Context(), contractID, ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}

func (handler *Handler) createContract(writer http.ResponseWriter, request *http.Request) {
	var input CreateContractInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	contract, err := handler.service.CreateContract(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, contract)
}

func (handler *Handler) deleteContract(writer http.ResponseWriter, request *http.Request) {
	contractID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteContract(request.Context(), contractID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Transactions

func (handler *Handler) createTransaction(writer http.ResponseWriter, request *http.Request) {
	contractID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	transaction, err := handler.service.CreateTransaction(request.Context(), contractID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, transaction)
}

func (handler *Handler) listContractTransactions(writer http.ResponseWriter, request *http.Request) {
	contractID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID, err := ownerFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	transactions, err := handler.service.ListContractTransactions(request.Context(), contractID, ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, transactions)
}

func (handler *Handler) listActorTransactions(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "actorID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID, err := ownerFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	transactions, err := handler.service.ListActorTransactions(request.Context(), actorID, ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, transactions)
}
