// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/core/show"
	"github.com/negativchik09/TheatreAPI/internal/platform/ctxutil"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
	"github.com/negativchik09/TheatreAPI/pkg/uuid"
)

func newRouter(f *fixture) chi.Router {
	handler := show.NewHandler(f.service)

	router := chi.NewRouter()
	router.Mount("/shows", handler.ShowRoutes())
	router.Mount("/contracts", handler.ContractRoutes())
	router.Mount("/transactions", handler.TransactionRoutes())
	return router
}

// serve sends a request as the given account. An empty role sends it anonymously.
func serve(router http.Handler, method, target, body string, role sec.UserRole, userID string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	if role != "" {
		claims := &sec.AuthClaims{UserID: userID, Username: "tester", Role: string(role)}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

// decodeData unwraps the success envelope into target.
func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()

	envelope := struct {
		Data any `json:"data"`
	}{Data: target}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Code
}

/*
TestHandler_Access checks role gating and contract ownership over HTTP.
*/
func TestHandler_Access(t *testing.T) {
	f := newFixture()
	router := newRouter(f)

	showID := f.createShow(t, 1000)
	owner := f.actors.add("Леся")
	stranger := f.actors.add("Марко")
	contractID := f.createContract(t, showID, f.addRole(t, showID, "A"), owner, 600)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		role   sec.UserRole
		userID string
		status int
	}{
		{"AnonymousList", http.MethodGet, "/shows", "", "", "", http.StatusUnauthorized},
		{"ActorListsOwnShows", http.MethodGet, "/shows", "", sec.RoleActor, owner, http.StatusOK},
		{"ActorReadsOwnContract", http.MethodGet, "/contracts/" + contractID, "", sec.RoleActor, owner, http.StatusOK},
		{"ActorReadsForeignContract", http.MethodGet, "/contracts/" + contractID, "", sec.RoleActor, stranger, http.StatusForbidden},
		{"AdminReadsAnyContract", http.MethodGet, "/contracts/" + contractID, "", sec.RoleAdmin, uuid.New(), http.StatusOK},
		{"ActorCannotCreateShow", http.MethodPost, "/shows", `{"title":"X","total_budget":"10","date_of_premiere":"2025-03-01T00:00:00Z"}`, sec.RoleActor, owner, http.StatusForbidden},
		{"ActorCannotPay", http.MethodPost, "/contracts/" + contractID + "/transactions", "", sec.RoleActor, owner, http.StatusForbidden},
		{"ActorForeignTransactions", http.MethodGet, "/transactions/by-actor/" + owner, "", sec.RoleActor, stranger, http.StatusForbidden},
		{"MalformedID", http.MethodGet, "/contracts/not-a-uuid", "", sec.RoleAdmin, uuid.New(), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.target, tt.body, tt.role, tt.userID)
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}

/*
TestHandler_AdminFlow runs show creation through payment over HTTP.
*/
func TestHandler_AdminFlow(t *testing.T) {
	f := newFixture()
	router := newRouter(f)
	admin := uuid.New()
	actorID := f.actors.add("Леся")

	created := serve(router, http.MethodPost, "/shows",
		`{"title":"Наталка Полтавка","total_budget":"1000.50","date_of_premiere":"2025-03-01T00:00:00Z"}`,
		sec.RoleAdmin, admin)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var info show.FullInfo
	decodeData(t, created, &info)
	assert.Equal(t, "1000.5", info.TotalBudget.String())

	role := serve(router, http.MethodPost, "/shows/"+info.ID+"/roles", `{"title":"Наталка"}`, sec.RoleAdmin, admin)
	require.Equal(t, http.StatusCreated, role.Code, role.Body.String())

	var roleView show.RoleView
	decodeData(t, role, &roleView)

	duplicate := serve(router, http.MethodPost, "/shows/"+info.ID+"/roles", `{"title":"Наталка"}`, sec.RoleAdmin, admin)
	assert.Equal(t, http.StatusBadRequest, duplicate.Code)
	assert.Equal(t, domainerr.RoleAlreadyCreatedForShow.Code, errorCode(t, duplicate))

	overdue := serve(router, http.MethodPost, "/contracts",
		`{"show_id":"`+info.ID+`","role_id":"`+roleView.ID+`","actor_id":"`+actorID+`","year_cost":"2000"}`,
		sec.RoleAdmin, admin)
	assert.Equal(t, http.StatusBadRequest, overdue.Code)
	assert.Equal(t, domainerr.BudgetOverdue.Code, errorCode(t, overdue))

	contract := serve(router, http.MethodPost, "/contracts",
		`{"show_id":"`+info.ID+`","role_id":"`+roleView.ID+`","actor_id":"`+actorID+`","year_cost":"600"}`,
		sec.RoleAdmin, admin)
	require.Equal(t, http.StatusCreated, contract.Code, contract.Body.String())

	var contractView show.ContractView
	decodeData(t, contract, &contractView)

	payment := serve(router, http.MethodPost, "/contracts/"+contractView.ID+"/transactions", "", sec.RoleAdmin, admin)
	require.Equal(t, http.StatusCreated, payment.Code, payment.Body.String())

	var paid show.TransactionView
	decodeData(t, payment, &paid)
	assert.Equal(t, "50", paid.Sum.String())

	missing := serve(router, http.MethodDelete, "/shows/"+uuid.New(), "", sec.RoleAdmin, admin)
	assert.Equal(t, http.StatusNoContent, missing.Code)

	removed := serve(router, http.MethodDelete, "/shows/roles/"+roleView.ID, "", sec.RoleAdmin, admin)
	assert.Equal(t, http.StatusNoContent, removed.Code)
	assert.Empty(t, f.repo.shows[info.ID].Contracts())
}

/*
TestHandler_ActorCardsArePublic checks that show and contract pages expose only
the public card of the cast actor.
*/
func TestHandler_ActorCardsArePublic(t *testing.T) {
	f := newFixture()
	router := newRouter(f)

	showID := f.createShow(t, 1000)
	owner := f.actors.add("Леся")
	stranger := f.actors.add("Марко")
	contractID := f.createContract(t, showID, f.addRole(t, showID, "A"), owner, 600)

	private := []string{"email", "telephone", "address", "passport_number", "passport_given_by", "passport_series", "taxes_number"}

	t.Run("ShowPageForAnotherActor", func(t *testing.T) {
		recorder := serve(router, http.MethodGet, "/shows/"+showID, "", sec.RoleActor, stranger)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var page struct {
			Roles []struct {
				Actor map[string]any `json:"actor"`
			} `json:"roles"`
		}
		decodeData(t, recorder, &page)
		require.Len(t, page.Roles, 1)
		require.NotNil(t, page.Roles[0].Actor)

		assert.Equal(t, owner, page.Roles[0].Actor["id"])
		assert.Equal(t, "Леся", page.Roles[0].Actor["first_name"])
		for _, field := range private {
			assert.NotContains(t, page.Roles[0].Actor, field)
		}
	})

	t.Run("ContractPage", func(t *testing.T) {
		recorder := serve(router, http.MethodGet, "/contracts/"+contractID, "", sec.RoleAdmin, uuid.New())
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var page struct {
			Actor map[string]any `json:"actor"`
		}
		decodeData(t, recorder, &page)

		assert.Equal(t, owner, page.Actor["id"])
		for _, field := range private {
			assert.NotContains(t, page.Actor, field)
		}
	})
}
