//go:build unit
// +build unit

package v1

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const (
	testCustomerID = "2b1c7f0e-3a55-4e8e-9d61-0f3c2b9c1a01"
	testSupplierID = "6e0b9a4d-1f2c-4b7a-8c3e-5d4f6a7b8c02"
	testAdminID    = "9f8e7d6c-5b4a-4392-8171-605f4e3d2c03"
	testProductID  = "0d7c6b5a-4e3f-4a2b-9c1d-8e7f6a5b4c04"
	testOrderID    = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c05"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testProfile(id string, role users.Role) *users.Profile {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &users.Profile{
		ID:        id,
		Email:     string(role) + "@electrify.test",
		FullName:  "Test " + string(role),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// newTestContext builds a gin context for calling a handler directly. A nil profile means anonymous.
func newTestContext(method, url, body string, profile *users.Profile, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	if profile != nil {
		c.Set(PrincipalKey, profile)
	}
	return c, w
}
