package users

import (
	"errors"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"
)

// Role of a marketplace account
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleSupplier   Role = "supplier"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var (
	// ErrProfileNotFound is returned when no profile exists for an ID
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidRole is returned for role names outside the known set
	ErrInvalidRole = errors.New("invalid role")
	// ErrLastSuperAdmin is returned when a change would leave no super admin
	ErrLastSuperAdmin = errors.New("cannot demote the last super admin")
)

// ParseRole maps a role name to a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleSupplier, RoleAdmin, RoleSuperAdmin:
		return r, nil
	}
	return "", ErrInvalidRole
}

// IsAdmin reports whether r may use the admin console.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Profile is the marketplace account bound to an auth subject.
type Profile struct {
	ID        string    `validate:"required,uuid"`
	Email     string    `validate:"omitempty,email"`
	FullName  string    `validate:"omitempty,max=255"`
	Role      Role      `validate:"required,oneof=customer supplier admin super_admin"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time `validate:"required"`
}

// Validate for validating Profile struct
func (p *Profile) Validate() error {
	return validators.Struct(p)
}

// HasRole reports whether the profile holds one of roles.
func (p *Profile) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// ProfileQuery filters the admin listing of profiles
type ProfileQuery struct {
	Role   Role `validate:"omitempty,oneof=customer supplier admin super_admin"`
	Limit  int  `validate:"omitempty,min=1,max=500"`
	Offset int  `validate:"omitempty,min=0"`
}

// Validate for validating ProfileQuery struct
func (q *ProfileQuery) Validate() error {
	return validators.Struct(q)
}
