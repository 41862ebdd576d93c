package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/httputil"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
	"github.com/google/uuid"
)

// storefrontService implements the StorefrontService interface
type storefrontService struct {
	repo            products.ProductRepository
	currencyService currency.CurrencyService
	logger          logger.Logger
}

// NewStorefrontService creates a new instance of StorefrontService
func NewStorefrontService(repo products.ProductRepository, currencyService currency.CurrencyService, logger logger.Logger) (products.StorefrontService, error) {
	return &storefrontService{
		repo:            repo,
		currencyService: currencyService,
		logger:          logger,
	}, nil
}

// ListApproved lists approved products, optionally priced in displayCurrency
func (s *storefrontService) ListApproved(ctx context.Context, query *products.ProductQuery, displayCurrency string) ([]*products.Product, error) {
	if query == nil {
		query = products.NewProductQuery()
	}
	query.Status = products.StatusApproved
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if err := s.priceIn(ctx, p, displayCurrency); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// GetApproved returns an approved product by ID
func (s *storefrontService) GetApproved(ctx context.Context, id, displayCurrency string) (*products.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != products.StatusApproved {
		return nil, products.ErrProductNotFound
	}
	if err := s.priceIn(ctx, p, displayCurrency); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *storefrontService) priceIn(ctx context.Context, p *products.Product, displayCurrency string) error {
	if displayCurrency == "" || strings.EqualFold(displayCurrency, p.Currency) {
		return nil
	}
	price, err := s.currencyService.Convert(ctx, p.Price, p.Currency, displayCurrency)
	if err != nil {
		return fmt.Errorf("failed to convert price of product %s: %w", p.ID, err)
	}
	p.Price = price
	p.Currency = strings.ToUpper(displayCurrency)
	return nil
}

// supplierProductService implements the SupplierProductService interface
type supplierProductService struct {
	repo           products.ProductRepository
	imageConnector products.ImageConnector
	clock          clock.Clock
	logger         logger.Logger
}

// NewSupplierProductService creates a new instance of SupplierProductService
func NewSupplierProductService(repo products.ProductRepository, imageConnector products.ImageConnector, clk clock.Clock, logger logger.Logger) (products.SupplierProductService, error) {
	return &supplierProductService{
		repo:           repo,
		imageConnector: imageConnector,
		clock:          clk,
		logger:         logger,
	}, nil
}

// Create adds a listing owned by supplierID
func (s *supplierProductService) Create(ctx context.Context, supplierID string, input *products.ProductInput) (*products.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	p := &products.Product{
		ID:         uuid.NewString(),
		SupplierID: supplierID,
		CreatedAt:  now,
	}
	applyProductInput(p, input, now)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Created product with id ", p.ID, " for supplier ", supplierID)
	return p, nil
}

// Update edits an own listing and sends it back to review
func (s *supplierProductService) Update(ctx context.Context, supplierID, id string, input *products.ProductInput) (*products.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ownProduct(ctx, supplierID, id)
	if err != nil {
		return nil, err
	}
	applyProductInput(p, input, s.clock.Now())

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateByID(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Updated product with id ", p.ID)
	return p, nil
}

// Delete removes an own listing together with its images
func (s *supplierProductService) Delete(ctx context.Context, supplierID, id string) error {
	p, err := s.ownProduct(ctx, supplierID, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	for _, url := range p.ImageURLs {
		if err := s.imageConnector.Delete(ctx, url); err != nil {
			s.logger.Warn("Failed to delete image ", url, " of product ", id, ": ", err)
		}
	}

	s.logger.Info("Deleted product with id ", id)
	return nil
}

func (s *supplierProductService) ListOwn(ctx context.Context, supplierID string, query *products.ProductQuery) ([]*products.Product, error) {
	if query == nil {
		query = products.NewProductQuery()
	}
	query.SupplierID = supplierID
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

// UploadImages stores the images of form and appends their URLs to the product
func (s *supplierProductService) UploadImages(ctx context.Context, supplierID, id string, form *multipart.Form) (*products.Product, error) {
	if form == nil || len(form.File[httputil.FormFilesField]) == 0 {
		return nil, fmt.Errorf("no files provided in upload request")
	}

	p, err := s.ownProduct(ctx, supplierID, id)
	if err != nil {
		return nil, err
	}

	urls, err := s.imageConnector.Upload(ctx, form, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upload product images: %w", err)
	}
	p.ImageURLs = append(p.ImageURLs, urls...)
	p.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateByID(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Uploaded ", len(urls), " images for product ", p.ID)
	return p, nil
}

func (s *supplierProductService) ownProduct(ctx context.Context, supplierID, id string) (*products.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SupplierID != supplierID {
		return nil, products.ErrNotOwner
	}
	return p, nil
}

func applyProductInput(p *products.Product, input *products.ProductInput, now time.Time) {
	p.Name = strings.TrimSpace(input.Name)
	p.Description = strings.TrimSpace(input.Description)
	p.Category = input.Category
	p.Brand = strings.TrimSpace(input.Brand)
	p.Price = input.Price
	p.Currency = strings.ToUpper(input.Currency)
	p.Stock = input.Stock
	p.Specifications = input.Specifications
	p.RejectionReason = ""
	p.Status = products.StatusPending
	if input.SaveAsDraft {
		p.Status = products.StatusDraft
	}
	p.UpdatedAt = now
}

// adminProductService implements the AdminProductService interface
type adminProductService struct {
	repo          products.ProductRepository
	notifications notifications.NotificationService
	clock         clock.Clock
	logger        logger.Logger
}

// NewAdminProductService creates a new instance of AdminProductService
func NewAdminProductService(repo products.ProductRepository, notificationService notifications.NotificationService, clk clock.Clock, logger logger.Logger) (products.AdminProductService, error) {
	return &adminProductService{
		repo:          repo,
		notifications: notificationService,
		clock:         clk,
		logger:        logger,
	}, nil
}

func (s *adminProductService) ListAll(ctx context.Context, query *products.ProductQuery) ([]*products.Product, error) {
	if query == nil {
		query = products.NewProductQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, query)
}

// Review approves or rejects a listing and notifies its supplier
func (s *adminProductService) Review(ctx context.Context, id string, decision *products.ReviewDecision) (*products.Product, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if decision.Approve {
		p.Status = products.StatusApproved
		p.RejectionReason = ""
	} else {
		p.Status = products.StatusRejected
		p.RejectionReason = strings.TrimSpace(decision.Reason)
	}
	p.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateByID(ctx, p); err != nil {
		return nil, err
	}

	if decision.Approve {
		notify(ctx, s.notifications, s.logger, p.SupplierID, notifications.TypeProduct,
			"Product approved", "%s is now live on the storefront", p.Name)
	} else {
		notify(ctx, s.notifications, s.logger, p.SupplierID, notifications.TypeProduct,
			"Product rejected", "%s was rejected: %s", p.Name, p.RejectionReason)
	}

	s.logger.Info("Reviewed product ", p.ID, ", status ", p.Status)
	return p, nil
}
