package products

import (
	"context"
	"mime/multipart"
)

// StorefrontService serves approved listings to customers.
type StorefrontService interface {
	// ListApproved lists approved products matching query. When displayCurrency is
	// set, prices are converted into it.
	ListApproved(ctx context.Context, query *ProductQuery, displayCurrency string) ([]*Product, error)
	// GetApproved returns an approved product by ID, ErrProductNotFound otherwise.
	GetApproved(ctx context.Context, id, displayCurrency string) (*Product, error)
}

// SupplierProductService defines the supplier dashboard operations on own listings.
type SupplierProductService interface {
	// Create adds a listing. It enters the review queue unless saved as draft.
	Create(ctx context.Context, supplierID string, input *ProductInput) (*Product, error)
	// Update edits an own listing and sends it back to review.
	Update(ctx context.Context, supplierID, id string, input *ProductInput) (*Product, error)
	Delete(ctx context.Context, supplierID, id string) error
	ListOwn(ctx context.Context, supplierID string, query *ProductQuery) ([]*Product, error)
	// UploadImages stores the images of a multipart form and appends their URLs to the product.
	UploadImages(ctx context.Context, supplierID, id string, form *multipart.Form) (*Product, error)
}

// AdminProductService defines the moderation operations
type AdminProductService interface {
	ListAll(ctx context.Context, query *ProductQuery) ([]*Product, error)
	// Review approves or rejects a listing and notifies its supplier.
	Review(ctx context.Context, id string, decision *ReviewDecision) (*Product, error)
}

// ProductRepository defines the interface for Product-related operations
type ProductRepository interface {
	// Create adds a new Product to the database
	Create(ctx context.Context, product *Product) error
	// List lists Products in the database with optional filter
	List(ctx context.Context, query *ProductQuery) ([]*Product, error)
	// GetByID retrieves a Product from the database by ID
	GetByID(ctx context.Context, id string) (*Product, error)
	// UpdateByID updates a Product in the database by ID
	UpdateByID(ctx context.Context, product *Product) error
	// DeleteByID deletes a Product in the database by ID
	DeleteByID(ctx context.Context, id string) error
	// DecrementStock removes qty units from stock, failing with ErrInsufficientStock
	DecrementStock(ctx context.Context, id string, qty int) error
}

// ImageConnector stores product images and returns their public URLs
type ImageConnector interface {
	Upload(ctx context.Context, form *multipart.Form, productID string) ([]string, error)
	Delete(ctx context.Context, url string) error
}
