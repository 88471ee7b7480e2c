// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/negativchik09/TheatreAPI/internal/platform/middleware"
	requestutil "github.com/negativchik09/TheatreAPI/internal/platform/request"
	"github.com/negativchik09/TheatreAPI/internal/platform/respond"
)

// Handler implements the HTTP layer for accounts.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.With(middleware.RequireAuth).Get("/me", handler.getMe)

	return router
}

/*
POST /api/v1/account/login.

Response:
  - 200: LoginSession
  - 400: Identity (wrong password) or VALIDATION_ERROR
  - 404: UserNotFound
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.accountService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

// meResponse is the identity carried by the caller's token.
type meResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

/*
GET /api/v1/account/me.

Response:
  - 200: identity from the access token
  - 401: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, meResponse{ID: claims.UserID, Login: claims.Username, Role: claims.Role})
}
