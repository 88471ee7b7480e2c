// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor

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

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Any signed-in account
	router.Group(func(readRoute chi.Router) {
		readRoute.Use(middleware.RequireRole(sec.RoleActor))

		readRoute.Get("/", handler.listActors)
		readRoute.Get("/{id}", handler.getActor)
	})

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createActor)
		adminRoute.Put("/{id}", handler.updateActor)
		adminRoute.Delete("/{id}", handler.deleteActor)
	})
}

func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	actors, total, err := handler.service.ListActors(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	meta := pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total)

	if ctxutil.IsAdmin(request.Context()) {
		views := make([]View, 0, len(actors))
		for _, actor := range actors {
			views = append(views, ViewOf(actor))
		}
		respond.Paginated(writer, views, meta)
		return
	}

	views := make([]FlatView, 0, len(actors))
	for _, actor := range actors {
		views = append(views, FlatViewOf(actor))
	}
	respond.Paginated(writer, views, meta)
}

func (handler *Handler) getActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.GetActor(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !canSeePrivate(request, actorID) {
		respond.OK(writer, FlatViewOf(actor))
		return
	}
	respond.OK(writer, ViewOf(actor))
}

// canSeePrivate reports whether the caller may read contacts and documents of actorID.
func canSeePrivate(request *http.Request, actorID string) bool {
	if ctxutil.IsAdmin(request.Context()) {
		return true
	}
	claims := requestutil.Claims(request)
	return claims != nil && claims.UserID == actorID
}

func (handler *Handler) createActor(writer http.ResponseWriter, request *http.Request) {
	var input CreateActorInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	registration, err := handler.service.CreateActor(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, registration)
}

func (handler *Handler) updateActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input PersonalInfo
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.UpdateActor(request.Context(), actorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ViewOf(actor))
}

func (handler *Handler) deleteActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteActor(request.Context(), actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
