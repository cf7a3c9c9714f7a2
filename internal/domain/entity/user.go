// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an employee account synced from the identity provider.
type User struct {
	ID        uuid.UUID `json:"id"`         // Server-issued identifier.
	Email     string    `json:"email"`      // Unique login email supplied by the identity provider.
	Name      string    `json:"name"`       // Display name.
	Role      Role      `json:"role"`       // admin or employee.
	IsActive  bool      `json:"is_active"`  // Inactive users cannot sign in.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Roles returns the user's role as a Roles slice for token claims.
func (u *User) Roles() Roles {
	if u == nil || !u.Role.IsValid() {
		return nil
	}

	return Roles{u.Role}
}
