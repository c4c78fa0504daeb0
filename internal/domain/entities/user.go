package entities

import (
	"time"
)

// UserRole is the platform role carried in a user's token
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleShop  UserRole = "shop"
	UserRoleAdmin UserRole = "admin"
)

// Valid reports whether r is a known role
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleShop, UserRoleAdmin:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	Role      UserRole  `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
