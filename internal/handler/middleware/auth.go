package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxUserGroupKey = "user_group"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, group, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserGroupKey, group)
		c.Set("jwt_claims", map[string]any{
			"user_id":    userID.String(),
			"user_group": string(group),
		})
		c.Next()
	}
}

// GetUserGroup returns the authenticated caller's group from context
func GetUserGroup(c *gin.Context) (rate.UserGroup, bool) {
	group, exists := c.Get(ctxUserGroupKey)
	if !exists {
		return "", false
	}

	g, ok := group.(rate.UserGroup)
	return g, ok
}
