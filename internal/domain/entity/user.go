// Package entity contains the core business objects of the project.
package entity

import "time"

// Role represents the type of role a user can have in the store.
type Role string

const (
	// RoleAdmin grants access to the back-office.
	RoleAdmin Role = "ADMIN"
	// RoleUser is a regular customer.
	RoleUser Role = "USER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// User is a store customer or administrator. Identity is owned by the hosted
// provider; ClerkID links the local row to it.
type User struct {
	ID        uint      `json:"id"`
	ClerkID   string    `json:"clerkId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone"`
	DNI       string    `json:"dni"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user can access the back-office.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
