package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/google/uuid"
)

// supplierService implements the SupplierService interface
type supplierService struct {
	repo          suppliers.SupplierRepository
	profiles      users.ProfileRepository
	notifications notifications.NotificationService
	clock         clock.Clock
	logger        logger.Logger
}

// NewSupplierService creates a new instance of SupplierService
func NewSupplierService(
	repo suppliers.SupplierRepository,
	profiles users.ProfileRepository,
	notificationService notifications.NotificationService,
	clk clock.Clock,
	logger logger.Logger,
) (suppliers.SupplierService, error) {
	return &supplierService{
		repo:          repo,
		profiles:      profiles,
		notifications: notificationService,
		clock:         clk,
		logger:        logger,
	}, nil
}

// Register creates a pending supplier account for userID
func (s *supplierService) Register(ctx context.Context, userID string, input *suppliers.RegistrationInput) (*suppliers.Supplier, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, suppliers.ErrSupplierExists
	} else if !errors.Is(err, suppliers.ErrSupplierNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	supplier := &suppliers.Supplier{
		ID:          uuid.NewString(),
		UserID:      userID,
		CompanyName: input.CompanyName,
		Email:       input.Email,
		Phone:       input.Phone,
		TaxID:       input.TaxID,
		Country:     input.Country,
		Address:     input.Address,
		Status:      suppliers.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	notify(ctx, s.notifications, s.logger, userID, notifications.TypeSupplier,
		"Supplier application received", "Your application for %s is awaiting review", supplier.CompanyName)
	s.logger.Info("Registered supplier with id ", supplier.ID)
	return supplier, nil
}

func (s *supplierService) GetByUserID(ctx context.Context, userID string) (*suppliers.Supplier, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *supplierService) List(ctx context.Context, query *suppliers.SupplierQuery) ([]*suppliers.Supplier, error) {
	if query == nil {
		query = &suppliers.SupplierQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

// UpdateStatus approves or suspends a supplier and keeps the owner's role in step
func (s *supplierService) UpdateStatus(ctx context.Context, id string, status suppliers.Status) (*suppliers.Supplier, error) {
	if _, err := suppliers.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier.Status == status {
		return supplier, nil
	}

	supplier.Status = status
	supplier.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateByID(ctx, supplier); err != nil {
		return nil, err
	}

	if err := s.syncRole(ctx, supplier); err != nil {
		return nil, err
	}

	switch status {
	case suppliers.StatusApproved:
		notify(ctx, s.notifications, s.logger, supplier.UserID, notifications.TypeSupplier,
			"Supplier account approved", "%s can now list products on Electrify", supplier.CompanyName)
	case suppliers.StatusSuspended:
		notify(ctx, s.notifications, s.logger, supplier.UserID, notifications.TypeSupplier,
			"Supplier account suspended", "%s has been suspended; contact support for details", supplier.CompanyName)
	}

	s.logger.Info("Changed status of supplier ", id, " to ", status)
	return supplier, nil
}

// syncRole grants the supplier role on approval and reverts it otherwise. Admin roles are left untouched.
func (s *supplierService) syncRole(ctx context.Context, supplier *suppliers.Supplier) error {
	profile, err := s.profiles.GetByID(ctx, supplier.UserID)
	if err != nil {
		return fmt.Errorf("failed to load supplier owner profile: %w", err)
	}
	if profile.Role.IsAdmin() {
		return nil
	}

	want := users.RoleCustomer
	if supplier.Status == suppliers.StatusApproved {
		want = users.RoleSupplier
	}
	if profile.Role == want {
		return nil
	}
	if err := s.profiles.UpdateRole(ctx, profile.ID, want); err != nil {
		return fmt.Errorf("failed to update supplier owner role: %w", err)
	}
	return nil
}
