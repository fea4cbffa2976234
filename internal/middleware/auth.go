package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/auth"
	"stagelink_backend/internal/authz"
	"stagelink_backend/internal/logger"
	"stagelink_backend/internal/models"
	"stagelink_backend/pkg/apperrors"
)

// CallerContextKey is the gin context key holding the verified authz.Caller.
const CallerContextKey = "caller"

// AuthMiddleware verifies the Bearer token and stores the caller identity
// in the request context. The role claim goes through the same normalization
// as every other role string entering the system.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header is missing or malformed"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		role, ok := models.NormalizeRole(claims.Role)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		caller := authz.Caller{ID: claims.UserID, Role: role}
		c.Set(CallerContextKey, caller)

		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(caller.ID), 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allow list.
// It must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

// GetCaller extracts the verified caller set by AuthMiddleware.
func GetCaller(c *gin.Context) (authz.Caller, bool) {
	v, exists := c.Get(CallerContextKey)
	if !exists {
		return authz.Caller{}, false
	}
	caller, ok := v.(authz.Caller)
	return caller, ok
}
