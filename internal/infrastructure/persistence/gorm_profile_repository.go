package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence/models"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (users.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProfileRepository) Create(ctx context.Context, profile *users.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	r.logger.Info("Created profile with id ", profile.ID)
	return nil
}

func (r *gormProfileRepository) GetByID(ctx context.Context, id string) (*users.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", users.ErrProfileNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) List(ctx context.Context, query *users.ProfileQuery) ([]*users.Profile, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProfileModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProfileModel{})

	if query.Role != "" {
		dbQuery = dbQuery.Where("role = ?", string(query.Role))
	}
	dbQuery = dbQuery.Order("created_at desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	domainList := make([]*users.Profile, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormProfileRepository) UpdateRole(ctx context.Context, id string, role users.Role) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Where("id = ?", id).
		Update("role", string(role))
	if result.Error != nil {
		return fmt.Errorf("failed to update profile role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", users.ErrProfileNotFound, id)
	}

	r.logger.Info("Updated role of profile ", id, " to ", role)
	return nil
}

func (r *gormProfileRepository) CountByRole(ctx context.Context, role users.Role) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProfileModel{}).Where("role = ?", string(role)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}
