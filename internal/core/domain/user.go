package domain

import "errors"

// Roles form a closed set: every stored user belongs to exactly one portal.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// DefaultRole is assigned when signup omits the role field.
const DefaultRole = RoleEmployee

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingCredentials = errors.New("email and password required")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User models a portal account. The password hash never leaves the process:
// it is excluded from JSON and auth responses only carry role and email.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
