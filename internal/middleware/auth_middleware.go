package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/pkg/auth"
)

// actorContextKey is where JWTAuth stores the resolved actor.
const actorContextKey = "actor"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func abortUnauthorized(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Could not validate credentials")
	errorDetail = errorDetail.WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// JWTAuth validates the access token and puts the acting identity into
// the request context. Every token failure produces the same message.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(strings.Trim(authHeader, "\"'"))
		if err != nil {
			abortUnauthorized(c, "Invalid token format")
			return
		}

		claims, err := m.jwtService.Validate(tokenString, auth.TokenTypeAccess)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(actorContextKey, appauth.Actor{
			ID:           claims.UserID,
			Email:        claims.Subject,
			Role:         models.Role(claims.Role),
			UniversityID: claims.UniversityID,
		})
		c.Next()
	}
}

// RoleRequired checks that the authenticated actor holds one of the
// given roles. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}

		if err := appauth.RequireRole(actor, roles...); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodePermissionDenied, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// ActorFromContext returns the actor set by JWTAuth.
func ActorFromContext(c *gin.Context) (appauth.Actor, bool) {
	v, exists := c.Get(actorContextKey)
	if !exists {
		return appauth.Actor{}, false
	}
	actor, ok := v.(appauth.Actor)
	return actor, ok
}
