//go:build unit
// +build unit

package persistence

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	testCustomerID = "0b8f6a4e-8f7e-4f57-9a51-3c1d5f0e2a11"
	testSupplierID = "5d1c7f0a-2e4b-4a8c-b5e3-9f6d2c4b1a22"
)

func newMockOrderRepository(t *testing.T) (orders.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	repo, err := NewGormOrderRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return repo, mock
}

func TestGormOrderRepository_Count(t *testing.T) {
	tests := []struct {
		name  string
		query *orders.OrderQuery
		sql   string // regexp
		args  []driver.Value
		count int64
	}{
		{
			name:  "unscoped",
			query: &orders.OrderQuery{},
			sql:   `SELECT count\(\*\) FROM "orders"$`,
			count: 42,
		},
		{
			name:  "customer",
			query: &orders.OrderQuery{CustomerID: testCustomerID},
			sql:   `SELECT count\(\*\) FROM "orders" WHERE customer_id = \$1`,
			args:  []driver.Value{testCustomerID},
			count: 3,
		},
		{
			name:  "supplier and status",
			query: &orders.OrderQuery{SupplierID: testSupplierID, Status: orders.StatusPaid},
			sql:   `SELECT count\(\*\) FROM "orders" WHERE id IN \(SELECT "?order_id"? FROM "order_items" WHERE supplier_id = \$1\) AND status = \$2`,
			args:  []driver.Value{testSupplierID, "paid"},
			count: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockOrderRepository(t)

			expectation := mock.ExpectQuery(tt.sql)
			if len(tt.args) > 0 {
				expectation = expectation.WithArgs(tt.args...)
			}
			expectation.WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			count, err := repo.Count(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.count, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGormOrderRepository_Count_InvalidQuery(t *testing.T) {
	repo, mock := newMockOrderRepository(t)

	_, err := repo.Count(context.Background(), &orders.OrderQuery{CustomerID: "not-a-uuid"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockOrderRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs("shipped", sqlmock.AnyArg(), testCustomerID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), testCustomerID, orders.StatusShipped)
	assert.ErrorIs(t, err, orders.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
