package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
)

// userService implements the UserService interface
type userService struct {
	repo   users.ProfileRepository
	clock  clock.Clock
	logger logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(repo users.ProfileRepository, clk clock.Clock, logger logger.Logger) (users.UserService, error) {
	return &userService{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}, nil
}

// EnsureProfile returns the profile of id, creating a customer profile on first sight
func (s *userService) EnsureProfile(ctx context.Context, id, email, fullName string) (*users.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, users.ErrProfileNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	profile = &users.Profile{
		ID:        id,
		Email:     strings.TrimSpace(email),
		FullName:  strings.TrimSpace(fullName),
		Role:      users.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		// a concurrent request for the same subject may have won the insert
		if existing, getErr := s.repo.GetByID(ctx, id); getErr == nil {
			return existing, nil
		}
		return nil, err
	}

	s.logger.Info("Created customer profile with id ", id)
	return profile, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*users.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, query *users.ProfileQuery) ([]*users.Profile, error) {
	if query == nil {
		query = &users.ProfileQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

// UpdateRole changes the role of a profile, refusing to demote the last super admin
func (s *userService) UpdateRole(ctx context.Context, id string, role users.Role) (*users.Profile, error) {
	if _, err := users.ParseRole(string(role)); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Role == role {
		return profile, nil
	}

	if profile.Role == users.RoleSuperAdmin {
		count, err := s.repo.CountByRole(ctx, users.RoleSuperAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to count super admins: %w", err)
		}
		if count <= 1 {
			return nil, users.ErrLastSuperAdmin
		}
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	profile.Role = role
	profile.UpdatedAt = s.clock.Now()

	s.logger.Info("Changed role of profile ", id, " to ", role)
	return profile, nil
}
