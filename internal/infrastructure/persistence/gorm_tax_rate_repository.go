package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence/models"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTaxRateRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTaxRateRepository creates a new GORM-based TaxRateRepository implementation
func NewGormTaxRateRepository(db *gorm.DB, logger logger.Logger) (tax.TaxRateRepository, error) {
	return &gormTaxRateRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTaxRateRepository) Create(ctx context.Context, rate *tax.TaxRate) error {
	if err := rate.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaxRateModel{}
	model.FromDomain(rate)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tax rate: %w", err)
	}

	r.logger.Info("Created tax rate with id ", rate.ID)
	return nil
}

func (r *gormTaxRateRepository) List(ctx context.Context, query *tax.TaxRateQuery) ([]*tax.TaxRate, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TaxRateModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TaxRateModel{})

	if query.Country != "" {
		dbQuery = dbQuery.Where("UPPER(country) = ?", strings.ToUpper(query.Country))
	}
	if query.ProductCategory != "" {
		dbQuery = dbQuery.Where("LOWER(product_category) = ?", strings.ToLower(query.ProductCategory))
	}
	if query.ActiveOnly {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}

	dbQuery = dbQuery.Order("created_at asc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tax rates: %w", err)
	}

	domainList := make([]*tax.TaxRate, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTaxRateRepository) GetByID(ctx context.Context, id string) (*tax.TaxRate, error) {
	var model models.TaxRateModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", tax.ErrTaxRateNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch tax rate: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTaxRateRepository) UpdateByID(ctx context.Context, rate *tax.TaxRate) error {
	if err := rate.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaxRateModel{}
	model.FromDomain(rate)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update tax rate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", tax.ErrTaxRateNotFound, rate.ID)
	}

	r.logger.Info("Updated tax rate with id ", rate.ID)
	return nil
}

func (r *gormTaxRateRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TaxRateModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tax rate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", tax.ErrTaxRateNotFound, id)
	}

	r.logger.Info("Deleted tax rate with id ", id)
	return nil
}

// ClearDefault removes the default flag from every rate except exceptID
func (r *gormTaxRateRepository) ClearDefault(ctx context.Context, exceptID string) error {
	err := r.db.WithContext(ctx).
		Model(&models.TaxRateModel{}).
		Where("is_default = ? AND id <> ?", true, exceptID).
		Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear default tax rate: %w", err)
	}
	return nil
}
