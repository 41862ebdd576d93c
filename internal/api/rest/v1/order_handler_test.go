//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testOrder() *orders.Order {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &orders.Order{
		ID:            testOrderID,
		OrderNumber:   "ELX-20240301-1A2B3C",
		CustomerID:    testCustomerID,
		CustomerEmail: "customer@electrify.test",
		Items: []*orders.OrderItem{{
			ID:         "7c6b5a4d-3e2f-4a1b-8c9d-0e1f2a3b4c06",
			OrderID:    testOrderID,
			ProductID:  testProductID,
			SupplierID: testSupplierID,
			Name:       "400W Mono Panel",
			Category:   "solar_panels",
			Quantity:   2,
			UnitPrice:  decimal.NewFromInt(50000),
			TaxRate:    decimal.RequireFromString("7.5"),
			TaxAmount:  decimal.NewFromInt(7500),
			LineTotal:  decimal.NewFromInt(100000),
		}},
		Currency:       "NGN",
		Subtotal:       decimal.NewFromInt(100000),
		TaxAmount:      decimal.NewFromInt(7500),
		ShippingAmount: decimal.Zero,
		Total:          decimal.NewFromInt(107500),
		Status:         orders.StatusPending,
		PaymentStatus:  orders.PaymentUnpaid,
		ShippingAddress: orders.ShippingAddress{
			Line1:   "12 Marina Road",
			City:    "Lagos",
			Country: "NG",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderHandler_Checkout(t *testing.T) {
	orderService := new(MockOrderService)
	customer := testProfile(testCustomerID, users.RoleCustomer)
	orderService.On("Checkout", mock.Anything, customer, mock.MatchedBy(func(in *orders.CheckoutInput) bool {
		return len(in.Items) == 1 && in.Items[0].ProductID == testProductID && in.Items[0].Quantity == 2 && in.Currency == "NGN"
	})).Return(testOrder(), nil)

	body := fmt.Sprintf(`{
		"items": [{"product_id": %q, "quantity": 2}],
		"currency": "NGN",
		"shipping_address": {"line1": "12 Marina Road", "city": "Lagos", "country": "NG"}
	}`, testProductID)

	handler := NewOrderHandler(orderService)
	c, w := newTestContext("POST", "/orders", body, customer)

	handler.Checkout(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"order_number":"ELX-20240301-1A2B3C"`)
	assert.Contains(t, w.Body.String(), `"total":"107500"`)
	orderService.AssertExpectations(t)
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	orderService := new(MockOrderService)
	handler := NewOrderHandler(orderService)
	c, w := newTestContext("POST", "/orders", `{"items": [], "currency": "NGN"}`, testProfile(testCustomerID, users.RoleCustomer))

	handler.Checkout(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	orderService.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_Checkout_Unavailable(t *testing.T) {
	orderService := new(MockOrderService)
	orderService.On("Checkout", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %s", orders.ErrProductUnavailable, testProductID))

	body := fmt.Sprintf(`{"items": [{"product_id": %q, "quantity": 500}], "currency": "NGN",
		"shipping_address": {"line1": "1 Allen Avenue", "city": "Ikeja", "country": "NG"}}`, testProductID)

	handler := NewOrderHandler(orderService)
	c, w := newTestContext("POST", "/orders", body, testProfile(testCustomerID, users.RoleCustomer))

	handler.Checkout(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestOrderHandler_Count(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		viewer     *users.Profile
		wantStatus orders.Status
		count      int64
	}{
		{"customer without filter", "/orders/count", testProfile(testCustomerID, users.RoleCustomer), "", 3},
		{"supplier paid orders", "/orders/count?status=paid", testProfile(testSupplierID, users.RoleSupplier), orders.StatusPaid, 7},
		{"admin pending orders", "/orders/count?status=pending", testProfile(testAdminID, users.RoleAdmin), orders.StatusPending, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderService := new(MockOrderService)
			orderService.On("Count", mock.Anything, tt.viewer, mock.MatchedBy(func(q *orders.OrderQuery) bool {
				return q.Status == tt.wantStatus
			})).Return(tt.count, nil)

			handler := NewOrderHandler(orderService)
			c, w := newTestContext("GET", tt.url, "", tt.viewer)

			handler.Count(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"count": %d}`, tt.count), w.Body.String())
			orderService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_Count_InvalidStatus(t *testing.T) {
	orderService := new(MockOrderService)
	handler := NewOrderHandler(orderService)
	c, w := newTestContext("GET", "/orders/count?status=lost", "", testProfile(testCustomerID, users.RoleCustomer))

	handler.Count(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	orderService.AssertNotCalled(t, "Count", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_GetByID_NotVisible(t *testing.T) {
	orderService := new(MockOrderService)
	stranger := testProfile("3c2b1a09-8f7e-4d6c-9b5a-4f3e2d1c0b07", users.RoleCustomer)
	orderService.On("GetByID", mock.Anything, stranger, testOrderID).
		Return(nil, fmt.Errorf("%w: %s", orders.ErrOrderNotFound, testOrderID))

	handler := NewOrderHandler(orderService)
	c, w := newTestContext("GET", "/orders/"+testOrderID, "", stranger, gin.Param{Key: "id", Value: testOrderID})

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"valid transition", `{"status":"processing"}`, nil, http.StatusOK},
		{"invalid transition", `{"status":"processing"}`, orders.ErrInvalidStatusTransition, http.StatusConflict},
		{"unknown status", `{"status":"teleported"}`, nil, http.StatusBadRequest},
		{"missing status", `{}`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderService := new(MockOrderService)
			if tt.err != nil {
				orderService.On("UpdateStatus", mock.Anything, testOrderID, orders.StatusProcessing).Return(nil, tt.err)
			} else {
				updated := testOrder()
				updated.Status = orders.StatusProcessing
				orderService.On("UpdateStatus", mock.Anything, testOrderID, orders.StatusProcessing).Return(updated, nil)
			}

			handler := NewOrderHandler(orderService)
			c, w := newTestContext("PATCH", "/admin/orders/"+testOrderID+"/status", tt.body,
				testProfile(testAdminID, users.RoleAdmin), gin.Param{Key: "id", Value: testOrderID})

			handler.UpdateStatus(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
