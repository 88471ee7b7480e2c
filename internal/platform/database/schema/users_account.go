// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Login     string
	Email     string
	Telephone string
	Password  string
	Role      string
	CreatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	Login:     "login",
	Email:     "email",
	Telephone: "telephone",
	Password:  "passwordhash",
	Role:      "role",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Login, t.Email, t.Telephone, t.Password, t.Role, t.CreatedAt}
}
