// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

// MaxRoleTitleLength is the longest role title storage accepts.
const MaxRoleTitleLength = 255

// Role is a part in a show that at most one actor can be contracted for.
type Role struct {
	id     string
	showID string
	title  string
}

func (r *Role) ID() string     { return r.id }
func (r *Role) ShowID() string { return r.showID }
func (r *Role) Title() string  { return r.title }

// RestoreRole rebuilds a stored role.
func RestoreRole(id, showID, title string) *Role {
	return &Role{id: id, showID: showID, title: title}
}
