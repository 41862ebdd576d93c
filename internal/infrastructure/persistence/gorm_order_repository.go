package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/infrastructure/persistence/models"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	// Items are inserted with the order in the same transaction
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Info("Created order with id ", order.ID, " and ", len(order.Items), " items")
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*orders.Order, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormOrderRepository) first(ctx context.Context, where string, arg string) (*orders.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Preload("Items").Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", orders.ErrOrderNotFound, arg)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return model.ToDomain(), nil
}

// filtered applies the query filters shared by List and Count
func (r *gormOrderRepository) filtered(ctx context.Context, query *orders.OrderQuery) *gorm.DB {
	dbQuery := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if query.CustomerID != "" {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}
	if query.SupplierID != "" {
		supplierOrders := r.db.Model(&models.OrderItemModel{}).Select("order_id").Where("supplier_id = ?", query.SupplierID)
		dbQuery = dbQuery.Where("id IN (?)", supplierOrders)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	return dbQuery
}

func (r *gormOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.filtered(ctx, query).Preload("Items").Order("created_at desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.OrderModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// Count ignores Limit and Offset
func (r *gormOrderRepository) Count(ctx context.Context, query *orders.OrderQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	var count int64
	if err := r.filtered(ctx, query).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *gormOrderRepository) UpdateStatus(ctx context.Context, id string, status orders.Status) error {
	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, id)
	}

	r.logger.Info("Updated order ", id, " to status ", status)
	return nil
}

func (r *gormOrderRepository) SetPaymentReference(ctx context.Context, id, reference string) error {
	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", id).
		Update("payment_reference", reference)
	if result.Error != nil {
		return fmt.Errorf("failed to set payment reference: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, id)
	}
	return nil
}

// MarkPaid flips the order to paid and takes its items out of stock, never below zero.
// A second call for the same order fails with ErrOrderAlreadyPaid and leaves stock untouched.
func (r *gormOrderRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.OrderModel{}).
			Where("id = ? AND payment_status <> ?", id, string(orders.PaymentPaid)).
			Updates(map[string]interface{}{
				"status":         string(orders.StatusPaid),
				"payment_status": string(orders.PaymentPaid),
				"paid_at":        paidAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark order paid: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to fetch order: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("%w: %s", orders.ErrOrderNotFound, id)
			}
			return orders.ErrOrderAlreadyPaid
		}

		var items []models.OrderItemModel
		if err := tx.Where("order_id = ?", id).Find(&items).Error; err != nil {
			return fmt.Errorf("failed to fetch order items: %w", err)
		}
		for _, item := range items {
			err := decrementStock(tx, item.ProductID, item.Quantity)
			switch {
			case err == nil:
			case errors.Is(err, products.ErrInsufficientStock):
				// the money is already taken, so the order stays paid and the product is sold out
				r.logger.Warn("Product ", item.ProductID, " oversold by order ", id)
				if err := tx.Model(&models.ProductModel{}).Where("id = ?", item.ProductID).UpdateColumn("stock", 0).Error; err != nil {
					return fmt.Errorf("failed to decrement stock: %w", err)
				}
			case errors.Is(err, products.ErrProductNotFound):
				r.logger.Warn("Product ", item.ProductID, " of paid order ", id, " no longer exists")
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Marked order ", id, " as paid")
	return nil
}
