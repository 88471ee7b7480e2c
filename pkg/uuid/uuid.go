// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

/*
Package uuid generates the identifiers of actors, shows, roles, contracts and
transactions.

Identifiers are UUIDv7: time-ordered, so rows inserted together sit together
in PostgreSQL B-tree indexes, and stored in native 'uuid' columns.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// # Panics
//
// New panics only when the OS random source fails, which the process cannot recover from.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}
	return id.String()
}

// IsNil reports whether id is empty or the all-zero UUID.
func IsNil(id string) bool {
	return id == "" || id == uuid.Nil.String()
}
