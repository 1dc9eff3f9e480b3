package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailExists        = errors.New("email already registered")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrNameExists         = errors.New("name already registered")
	ErrAccountNotFound    = errors.New("account not found")
)

const (
	RoleUser       = "user"
	RoleManager    = "manager"
	RoleAccountant = "accountant"
)

// KnownRole reports whether role is one of the three recognised roles.
func KnownRole(role string) bool {
	switch role {
	case RoleUser, RoleManager, RoleAccountant:
		return true
	}
	return false
}

// Account models a registered actor in the system. The role is fixed at
// registration; no endpoint mutates an account after creation.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
