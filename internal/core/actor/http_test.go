// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negativchik09/TheatreAPI/internal/core/actor"
	"github.com/negativchik09/TheatreAPI/internal/platform/ctxutil"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
	"github.com/negativchik09/TheatreAPI/pkg/uuid"
)

var privateFields = []string{
	"email", "telephone", "address",
	"passport_number", "passport_given_by", "passport_series", "taxes_number",
}

func newRouter(service *actor.Service) chi.Router {
	router := chi.NewRouter()
	router.Route("/actors", actor.NewHandler(service).RegisterRoutes)
	return router
}

func get(router http.Handler, target string, role sec.UserRole, userID string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, target, nil)
	claims := &sec.AuthClaims{UserID: userID, Username: "tester", Role: string(role)}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()

	envelope := struct {
		Data any `json:"data"`
	}{Data: target}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
}

/*
TestHandler_PrivateFields checks who may read the contacts and documents of an actor.
*/
func TestHandler_PrivateFields(t *testing.T) {
	service, _, _ := newService()
	router := newRouter(service)

	registration, err := service.CreateActor(context.Background(), actor.CreateActorInput{Login: "koval", PersonalInfo: personalInfo()})
	require.NoError(t, err)
	actorID := registration.ID

	other, err := service.CreateActor(context.Background(), actor.CreateActorInput{Login: "moroz", PersonalInfo: personalInfo()})
	require.NoError(t, err)

	tests := []struct {
		name        string
		role        sec.UserRole
		userID      string
		wantPrivate bool
	}{
		{"AnotherActor", sec.RoleActor, other.ID, false},
		{"Self", sec.RoleActor, actorID, true},
		{"Admin", sec.RoleAdmin, uuid.New(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(router, "/actors/"+actorID, tt.role, tt.userID)
			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			var card map[string]any
			decodeData(t, recorder, &card)

			assert.Equal(t, actorID, card["id"])
			assert.Equal(t, "Олена", card["first_name"])
			assert.Contains(t, card, "dignity")
			assert.Contains(t, card, "experience")

			if tt.wantPrivate {
				assert.Equal(t, "654321", card["passport_number"])
				assert.Equal(t, "3111111111", card["taxes_number"])
				assert.Equal(t, "koval@theatre.ua", card["email"])
				return
			}
			for _, field := range privateFields {
				assert.NotContains(t, card, field)
			}
		})
	}
}

/*
TestHandler_ListActors returns public cards to actors and full records to admins.
*/
func TestHandler_ListActors(t *testing.T) {
	service, _, _ := newService()
	router := newRouter(service)

	first, err := service.CreateActor(context.Background(), actor.CreateActorInput{Login: "koval", PersonalInfo: personalInfo()})
	require.NoError(t, err)
	_, err = service.CreateActor(context.Background(), actor.CreateActorInput{Login: "moroz", PersonalInfo: personalInfo()})
	require.NoError(t, err)

	tests := []struct {
		name        string
		role        sec.UserRole
		wantPrivate bool
	}{
		{"Actor", sec.RoleActor, false},
		{"Admin", sec.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(router, "/actors", tt.role, first.ID)
			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			var cards []map[string]any
			decodeData(t, recorder, &cards)
			require.Len(t, cards, 2)

			for _, card := range cards {
				for _, field := range privateFields {
					if tt.wantPrivate && field == "passport_series" {
						continue
					}
					if tt.wantPrivate {
						assert.Contains(t, card, field)
					} else {
						assert.NotContains(t, card, field)
					}
				}
			}
		})
	}
}
