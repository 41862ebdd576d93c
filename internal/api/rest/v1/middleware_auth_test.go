//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signTestToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":           testCustomerID,
		"email":         "customer@electrify.test",
		"role":          "authenticated",
		"aud":           "authenticated",
		"exp":           time.Now().Add(time.Hour).Unix(),
		"iat":           time.Now().Unix(),
		"user_metadata": map[string]interface{}{"full_name": "Ada Obi"},
	}
}

func newAuthTestEngine(t *testing.T, userService users.UserService) *gin.Engine {
	t.Helper()
	auth, err := NewAuthenticator(&config.AuthSettings{JWTSecret: testJWTSecret, Audience: "authenticated"}, userService, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	r := gin.New()
	r.Use(auth.Middleware())
	r.GET("/public", func(ctx *gin.Context) {
		if p := principal(ctx); p != nil {
			ctx.String(http.StatusOK, p.ID)
			return
		}
		ctx.String(http.StatusOK, "anonymous")
	})
	r.GET("/private", RequireAuth(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, principal(ctx).FullName)
	})
	r.GET("/admin", RequireRole(users.RoleAdmin, users.RoleSuperAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticator_Middleware(t *testing.T) {
	customer := testProfile(testCustomerID, users.RoleCustomer)
	customer.FullName = "Ada Obi"

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	wrongAudience := validClaims()
	wrongAudience["aud"] = "service_role"

	noSubject := validClaims()
	delete(noSubject, "sub")

	tests := []struct {
		name          string
		path          string
		authorization string
		wantCode      int
		wantBody      string
	}{
		{"anonymous public", "/public", "", http.StatusOK, "anonymous"},
		{"authenticated public", "/public", "Bearer " + signTestToken(t, testJWTSecret, jwt.SigningMethodHS256, validClaims()), http.StatusOK, testCustomerID},
		{"authenticated private", "/private", "Bearer " + signTestToken(t, testJWTSecret, jwt.SigningMethodHS256, validClaims()), http.StatusOK, "Ada Obi"},
		{"anonymous private", "/private", "", http.StatusUnauthorized, "authentication required"},
		{"customer on admin route", "/admin", "Bearer " + signTestToken(t, testJWTSecret, jwt.SigningMethodHS256, validClaims()), http.StatusForbidden, "insufficient permissions"},
		{"malformed header", "/public", "Token abc", http.StatusUnauthorized, "invalid authorization header format"},
		{"wrong secret", "/public", "Bearer " + signTestToken(t, "another-secret-of-sufficient-length!!", jwt.SigningMethodHS256, validClaims()), http.StatusUnauthorized, "invalid token"},
		{"wrong algorithm", "/public", "Bearer " + signTestToken(t, testJWTSecret, jwt.SigningMethodHS512, validClaims()), http.StatusUnauthorized, "invalid token"},
		{"expired", "/public", "Bearer " + signTestToken(t, testJWTSecret, jwt.SigningMethodHS256, expired), http.StatusUnauthorized, "invalid token"},
		{"wrong audience", "/public", "Bearer " + signTestToken(t, testJWTSecret, jwt.SigningMethodHS256, wrongAudience), http.StatusUnauthorized, "invalid token"},
		{"no subject", "/public", "Bearer " + signTestToken(t, testJWTSecret, jwt.SigningMethodHS256, noSubject), http.StatusUnauthorized, "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userService := new(MockUserService)
			userService.On("EnsureProfile", mock.Anything, testCustomerID, "customer@electrify.test", "Ada Obi").
				Return(customer, nil).Maybe()

			r := newAuthTestEngine(t, userService)
			req, _ := http.NewRequest("GET", tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthenticator_Middleware_ProfileStoreDown(t *testing.T) {
	userService := new(MockUserService)
	userService.On("EnsureProfile", mock.Anything, testCustomerID, mock.Anything, mock.Anything).
		Return(nil, errors.New("database is closed"))

	r := newAuthTestEngine(t, userService)
	req, _ := http.NewRequest("GET", "/public", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, testJWTSecret, jwt.SigningMethodHS256, validClaims()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database is closed")
}

func TestNewAuthenticator_ShortSecret(t *testing.T) {
	_, err := NewAuthenticator(&config.AuthSettings{JWTSecret: "short"}, new(MockUserService), testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestRequireRole_SupplierOnly(t *testing.T) {
	tests := []struct {
		name     string
		role     users.Role
		wantCode int
	}{
		{"supplier", users.RoleSupplier, http.StatusOK},
		{"customer", users.RoleCustomer, http.StatusForbidden},
		{"admin", users.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(ctx *gin.Context) {
				ctx.Set(PrincipalKey, testProfile(testSupplierID, tt.role))
			})
			r.GET("/supplier", RequireRole(users.RoleSupplier), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})

			req, _ := http.NewRequest("GET", "/supplier", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
