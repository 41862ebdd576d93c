package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence/models"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormExchangeRateRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormExchangeRateRepository creates a new GORM-based ExchangeRateRepository implementation
func NewGormExchangeRateRepository(db *gorm.DB, logger logger.Logger) (currency.ExchangeRateRepository, error) {
	return &gormExchangeRateRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormExchangeRateRepository) List(ctx context.Context) ([]*currency.ExchangeRate, error) {
	var modelList []*models.ExchangeRateModel
	if err := r.db.WithContext(ctx).Order("currency asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	domainList := make([]*currency.ExchangeRate, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormExchangeRateRepository) GetByCurrency(ctx context.Context, code string) (*currency.ExchangeRate, error) {
	code = strings.ToUpper(code)

	var model models.ExchangeRateModel
	if err := r.db.WithContext(ctx).Where("currency = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", currency.ErrRateNotFound, code)
		}
		return nil, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	return model.ToDomain(), nil
}

// Upsert inserts the rate or overwrites the stored rate of the same currency
func (r *gormExchangeRateRepository) Upsert(ctx context.Context, rate *currency.ExchangeRate) error {
	if err := rate.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ExchangeRateModel{}
	model.FromDomain(rate)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "source", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate: %w", err)
	}

	r.logger.Info("Upserted exchange rate for ", rate.Currency)
	return nil
}
