package users

import "context"

// UserService manages marketplace profiles.
type UserService interface {
	// EnsureProfile returns the profile of an authenticated subject, creating a
	// customer profile the first time the subject is seen.
	EnsureProfile(ctx context.Context, id, email, fullName string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context, query *ProfileQuery) ([]*Profile, error)
	// UpdateRole changes the role of a profile. Demoting the last super admin fails with ErrLastSuperAdmin.
	UpdateRole(ctx context.Context, id string, role Role) (*Profile, error)
}

// ProfileRepository defines persistence for profiles
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context, query *ProfileQuery) ([]*Profile, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}
