package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// PrincipalKey is the gin context key holding the authenticated *users.Profile
const PrincipalKey = "principal"

var errInvalidAuthHeader = errors.New("invalid authorization header format")

// Authenticator verifies access tokens issued by the hosted auth backend and
// resolves them to marketplace profiles
type Authenticator struct {
	secret      []byte
	issuer      string
	audience    string
	userService users.UserService
	logger      logger.Logger
}

// NewAuthenticator creates an Authenticator for HS256 tokens signed with settings.JWTSecret
func NewAuthenticator(settings *config.AuthSettings, userService users.UserService, logger logger.Logger) (*Authenticator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Authenticator{
		secret:      []byte(settings.JWTSecret),
		issuer:      settings.Issuer,
		audience:    settings.Audience,
		userService: userService,
		logger:      logger,
	}, nil
}

// Middleware resolves the bearer token when present. Requests without an
// Authorization header pass through anonymously; a malformed or invalid token is rejected.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: errInvalidAuthHeader.Error()})
			return
		}

		claims, err := a.parseToken(parts[1])
		if err != nil {
			a.logger.Debug("Rejected access token: ", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token"})
			return
		}

		profile, err := a.userService.EnsureProfile(ctx, claims.Subject, claims.Email, claims.fullName())
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set(PrincipalKey, profile)
		ctx.Next()
	}
}

// accessClaims are the claims carried by the auth backend's access tokens
type accessClaims struct {
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

func (c *accessClaims) fullName() string {
	for _, key := range []string{"full_name", "name"} {
		if v, ok := c.UserMetadata[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func (a *Authenticator) parseToken(token string) (*accessClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		options = append(options, jwt.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		options = append(options, jwt.WithAudience(a.audience))
	}

	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("jwt invalid")
	}
	if claims.Subject == "" {
		return nil, errors.New("jwt has no subject")
	}
	return claims, nil
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if principal(ctx) == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		ctx.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and profiles holding none of roles with 403
func RequireRole(roles ...users.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		profile := principal(ctx)
		if profile == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		if !profile.HasRole(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient permissions"})
			return
		}
		ctx.Next()
	}
}

// principal returns the authenticated profile or nil
func principal(ctx *gin.Context) *users.Profile {
	v, ok := ctx.Get(PrincipalKey)
	if !ok {
		return nil
	}
	profile, _ := v.(*users.Profile)
	return profile
}
