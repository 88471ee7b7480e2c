// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Manages actors, shows, roles, contracts and payments.
	RoleAdmin UserRole = "admin"

	// Reads own contracts, payments and the shows they perform in.
	RoleActor UserRole = "actor"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 20
	case RoleActor:
		return 10
	default:
		return 0
	}
}
