//go:build unit
// +build unit

package payments

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGatewayStatus(t *testing.T) {
	assert.Equal(t, StatusSuccess, ParseGatewayStatus("success"))
	assert.Equal(t, StatusFailed, ParseGatewayStatus("failed"))
	assert.Equal(t, StatusFailed, ParseGatewayStatus("reversed"))
	assert.Equal(t, StatusAbandoned, ParseGatewayStatus("abandoned"))
	assert.Equal(t, StatusPending, ParseGatewayStatus("ongoing"))
}

func TestGatewayError(t *testing.T) {
	err := &GatewayError{StatusCode: 401, Message: "Invalid key"}
	assert.Equal(t, "payment gateway error (status 401): Invalid key", err.Error())
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()
	tx := &Transaction{
		ID:        uuid.NewString(),
		Reference: "ELX-REF-1",
		Email:     "buyer@example.com",
		Amount:    decimal.NewFromInt(2500),
		Currency:  "NGN",
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, tx.Validate())

	tx.Amount = decimal.Zero
	assert.ErrorIs(t, tx.Validate(), ErrInvalidPaymentRequest)

	tx.Amount = decimal.NewFromInt(1)
	tx.Email = "nope"
	assert.Error(t, tx.Validate())
}
