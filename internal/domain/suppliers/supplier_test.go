//go:build unit
// +build unit

package suppliers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationInput_Validate(t *testing.T) {
	valid := RegistrationInput{
		CompanyName: " Sunlit Energy Ltd ",
		Email:       "sales@sunlit.ng",
		Phone:       "+234 803 555 0101",
		TaxID:       "12345678-0001",
		Country:     "ng",
	}

	tests := []struct {
		name    string
		mutate  func(in *RegistrationInput)
		wantErr error
	}{
		{name: "valid", mutate: func(in *RegistrationInput) {}},
		{name: "bad email", mutate: func(in *RegistrationInput) { in.Email = "sales@" }, wantErr: ErrInvalidEmail},
		{name: "short tax id", mutate: func(in *RegistrationInput) { in.TaxID = "1234" }, wantErr: ErrInvalidTaxID},
		{name: "bad phone", mutate: func(in *RegistrationInput) { in.Phone = "call me" }, wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			in.Normalize()
			err := in.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "NG", in.Country)
				assert.Equal(t, "Sunlit Energy Ltd", in.CompanyName)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSupplier_Validate(t *testing.T) {
	now := time.Now()
	s := &Supplier{
		ID:          uuid.NewString(),
		UserID:      uuid.NewString(),
		CompanyName: "Sunlit Energy Ltd",
		Email:       "sales@sunlit.ng",
		Phone:       "+2348035550101",
		TaxID:       "12345678-0001",
		Country:     "NG",
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Validate())

	s.TaxID = "ABCDEFGH"
	assert.Error(t, s.Validate())
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("suspended")
	require.NoError(t, err)
	assert.Equal(t, StatusSuspended, st)

	_, err = ParseStatus("banned")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
