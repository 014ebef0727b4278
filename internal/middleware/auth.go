package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/auth"
	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/pkg/apperrors"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the gin context and the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header is missing"))
			c.Abort()
			return
		}

		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must be a bearer token"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.Wrap(err, apperrors.CodeInvalidToken, "auth",
				"Invalid or expired token", http.StatusUnauthorized))
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("claims", claims)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not in the list.
// Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("userRole")
		if !exists {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		role := models.UserRole(roleVal.(string))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.NewForbiddenError("Your role does not allow this action"))
		c.Abort()
	}
}
