package suppliers

import "context"

// SupplierService manages supplier onboarding and moderation.
type SupplierService interface {
	// Register creates a pending supplier account for userID.
	Register(ctx context.Context, userID string, input *RegistrationInput) (*Supplier, error)
	GetByUserID(ctx context.Context, userID string) (*Supplier, error)
	List(ctx context.Context, query *SupplierQuery) ([]*Supplier, error)
	// UpdateStatus approves or suspends a supplier. Approval grants the user the
	// supplier role and suspension reverts it to customer.
	UpdateStatus(ctx context.Context, id string, status Status) (*Supplier, error)
}

// SupplierRepository defines persistence for suppliers
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	GetByID(ctx context.Context, id string) (*Supplier, error)
	GetByUserID(ctx context.Context, userID string) (*Supplier, error)
	List(ctx context.Context, query *SupplierQuery) ([]*Supplier, error)
	UpdateByID(ctx context.Context, supplier *Supplier) error
}
