// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negativchik09/TheatreAPI/internal/core/actor"
	"github.com/negativchik09/TheatreAPI/internal/core/domainerr"
	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/sec"
	"github.com/negativchik09/TheatreAPI/internal/users/account"
)

type memoryRepository struct {
	actors   map[string]*actor.Actor
	accounts map[string]*account.Account
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{actors: map[string]*actor.Actor{}, accounts: map[string]*account.Account{}}
}

func (repository *memoryRepository) ListActors(_ context.Context, limit, offset int) ([]*actor.Actor, int, error) {
	all := make([]*actor.Actor, 0, len(repository.actors))
	for _, stored := range repository.actors {
		all = append(all, stored)
	}
	return all, len(all), nil
}

func (repository *memoryRepository) GetActor(_ context.Context, id string) (*actor.Actor, error) {
	stored, ok := repository.actors[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return stored, nil
}

func (repository *memoryRepository) RegisterActor(_ context.Context, created *actor.Actor, login *account.Account) error {
	repository.actors[created.ID()] = created
	repository.accounts[login.ID] = login
	return nil
}

func (repository *memoryRepository) UpdateActor(_ context.Context, updated *actor.Actor) error {
	if _, ok := repository.actors[updated.ID()]; !ok {
		return dberr.ErrNotFound
	}
	repository.actors[updated.ID()] = updated
	return nil
}

func (repository *memoryRepository) DeleteActor(_ context.Context, id string) error {
	delete(repository.actors, id)
	delete(repository.accounts, id)
	return nil
}

type stubProvisioner struct {
	calls int
	err   error
}

func (provisioner *stubProvisioner) NewActorAccount(actorID, login, email, telephone string) (*account.Account, string, error) {
	provisioner.calls++
	if provisioner.err != nil {
		return nil, "", provisioner.err
	}
	return &account.Account{ID: actorID, Login: login, Email: email, Telephone: telephone, Role: sec.RoleActor}, "one-time", nil
}

func personalInfo() actor.PersonalInfo {
	return actor.PersonalInfo{
		FirstName:       "Олена",
		LastName:        "Коваль",
		MiddleName:      "Петрівна",
		DateOfBirth:     time.Date(1985, time.May, 20, 0, 0, 0, 0, time.UTC),
		Dignity:         "Заслужена артистка",
		Experience:      15,
		Email:           "koval@theatre.ua",
		Telephone:       "+380671112233",
		Address:         "Львів",
		PassportNumber:  "654321",
		PassportGivenBy: "Галицький РВ",
		TaxesNumber:     "3111111111",
	}
}

func newService() (*actor.Service, *memoryRepository, *stubProvisioner) {
	repository := newMemoryRepository()
	provisioner := &stubProvisioner{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return actor.NewService(repository, provisioner, logger), repository, provisioner
}

/*
TestCreateActor_Success stores the actor and its account under one id and
returns the one-time password.
*/
func TestCreateActor_Success(t *testing.T) {
	service, repository, _ := newService()

	registration, err := service.CreateActor(context.Background(), actor.CreateActorInput{Login: "koval", PersonalInfo: personalInfo()})
	require.NoError(t, err)

	assert.NotEmpty(t, registration.ID)
	assert.Equal(t, "koval", registration.Login)
	assert.Equal(t, "one-time", registration.Password)
	assert.Contains(t, repository.actors, registration.ID)
	assert.Equal(t, sec.RoleActor, repository.accounts[registration.ID].Role)
}

/*
TestCreateActor_DomainFailure verifies that an invalid actor never provisions an account.
*/
func TestCreateActor_DomainFailure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(info *actor.PersonalInfo)
		wantErr string
	}{
		{"minor", func(info *actor.PersonalInfo) { info.DateOfBirth = time.Now().AddDate(-17, 0, 0) }, domainerr.ActorMustBeAdult.Code},
		{"negative_experience", func(info *actor.PersonalInfo) { info.Experience = -1 }, domainerr.ExperienceMustBeGreaterThanZero.Code},
		{"latin_name", func(info *actor.PersonalInfo) { info.FirstName = "Olena" }, domainerr.NameIssue.Code},
		{"bad_email", func(info *actor.PersonalInfo) { info.Email = "nope" }, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repository, provisioner := newService()
			info := personalInfo()
			tt.mutate(&info)

			_, err := service.CreateActor(context.Background(), actor.CreateActorInput{Login: "koval", PersonalInfo: info})

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, tt.wantErr, appError.Code)
			assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
			assert.Zero(t, provisioner.calls)
			assert.Empty(t, repository.actors)
		})
	}
}

/*
TestCreateActor_ProvisionFailure leaves nothing behind when the account cannot be prepared.
*/
func TestCreateActor_ProvisionFailure(t *testing.T) {
	service, repository, provisioner := newService()
	provisioner.err = errors.New("entropy exhausted")

	_, err := service.CreateActor(context.Background(), actor.CreateActorInput{Login: "koval", PersonalInfo: personalInfo()})
	assert.Error(t, err)
	assert.Empty(t, repository.actors)
	assert.Empty(t, repository.accounts)
}

/*
TestUpdateActor replaces the record and reports ActorNotFound for unknown ids.
*/
func TestUpdateActor(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	registration, err := service.CreateActor(ctx, actor.CreateActorInput{Login: "koval", PersonalInfo: personalInfo()})
	require.NoError(t, err)

	info := personalInfo()
	info.LastName = "Ковальчук"
	info.Experience = 16

	updated, err := service.UpdateActor(ctx, registration.ID, info)
	require.NoError(t, err)
	assert.Equal(t, "Ковальчук", updated.Name().Last())

	fetched, err := service.GetActor(ctx, registration.ID)
	require.NoError(t, err)
	assert.Equal(t, 16.0, fetched.Experience())

	_, err = service.UpdateActor(ctx, "0190b4a2-0000-7000-8000-000000000000", info)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, domainerr.ActorNotFound.Code, appError.Code)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
}

/*
TestDeleteActor is idempotent and makes the actor unreachable.
*/
func TestDeleteActor(t *testing.T) {
	service, _, _ := newService()
	ctx := context.Background()

	registration, err := service.CreateActor(ctx, actor.CreateActorInput{Login: "koval", PersonalInfo: personalInfo()})
	require.NoError(t, err)

	require.NoError(t, service.DeleteActor(ctx, registration.ID))
	require.NoError(t, service.DeleteActor(ctx, registration.ID))

	_, err = service.GetActor(ctx, registration.ID)
	assert.Equal(t, domainerr.ActorNotFound.Code, apperr.As(err).Code)
}
