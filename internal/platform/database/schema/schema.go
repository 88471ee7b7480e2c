// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

// Package schema names the tables and columns created by data/migrations so
// repositories never spell them by hand.
package schema

import "strings"

// # Schemas

const (
	SchemaUsers   = "users"
	SchemaTheatre = "theatre"
)

// List joins column names for SELECT and INSERT column lists.
func List(columns ...string) string {
	return strings.Join(columns, ", ")
}
