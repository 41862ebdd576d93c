package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence/models"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTransactionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository implementation
func NewGormTransactionRepository(db *gorm.DB, logger logger.Logger) (payments.TransactionRepository, error) {
	return &gormTransactionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTransactionRepository) Create(ctx context.Context, tx *payments.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(tx)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment transaction: %w", err)
	}

	r.logger.Info("Created payment transaction with reference ", tx.Reference)
	return nil
}

func (r *gormTransactionRepository) GetByReference(ctx context.Context, reference string) (*payments.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", payments.ErrTransactionNotFound, reference)
		}
		return nil, fmt.Errorf("failed to fetch payment transaction: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTransactionRepository) UpdateByID(ctx context.Context, tx *payments.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(tx)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update payment transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", payments.ErrTransactionNotFound, tx.Reference)
	}

	r.logger.Info("Updated payment transaction ", tx.Reference, " to status ", tx.Status)
	return nil
}
