// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor

import (
	"context"

	"github.com/negativchik09/TheatreAPI/internal/users/account"
)

// Repository persists actors. Not-found reads return dberr.ErrNotFound.
type Repository interface {
	ListActors(context context.Context, limit, offset int) ([]*Actor, int, error)
	GetActor(context context.Context, id string) (*Actor, error)
	// RegisterActor stores the actor and its login account atomically.
	RegisterActor(context context.Context, actor *Actor, login *account.Account) error
	UpdateActor(context context.Context, actor *Actor) error
	// DeleteActor removes the actor, its account, contracts and payments.
	// Deleting a missing actor is not an error.
	DeleteActor(context context.Context, id string) error
}
