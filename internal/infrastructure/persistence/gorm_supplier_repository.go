package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence/models"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSupplierRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSupplierRepository creates a new GORM-based SupplierRepository implementation
func NewGormSupplierRepository(db *gorm.DB, logger logger.Logger) (suppliers.SupplierRepository, error) {
	return &gormSupplierRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSupplierRepository) Create(ctx context.Context, supplier *suppliers.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SupplierModel{}
	model.FromDomain(supplier)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return suppliers.ErrSupplierExists
		}
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	r.logger.Info("Created supplier with id ", supplier.ID)
	return nil
}

func (r *gormSupplierRepository) GetByID(ctx context.Context, id string) (*suppliers.Supplier, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormSupplierRepository) GetByUserID(ctx context.Context, userID string) (*suppliers.Supplier, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *gormSupplierRepository) first(ctx context.Context, where string, arg string) (*suppliers.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", suppliers.ErrSupplierNotFound, arg)
		}
		return nil, fmt.Errorf("failed to fetch supplier: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSupplierRepository) List(ctx context.Context, query *suppliers.SupplierQuery) ([]*suppliers.Supplier, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SupplierModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SupplierModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	dbQuery = dbQuery.Order("created_at desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch suppliers: %w", err)
	}

	domainList := make([]*suppliers.Supplier, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSupplierRepository) UpdateByID(ctx context.Context, supplier *suppliers.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SupplierModel{}
	model.FromDomain(supplier)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", suppliers.ErrSupplierNotFound, supplier.ID)
	}

	r.logger.Info("Updated supplier with id ", supplier.ID)
	return nil
}
