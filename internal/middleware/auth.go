package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DB1132/Odoo-hackathon/internal/services"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

const (
	ContextAccountID = "accountId"
	ContextRole      = "role"
)

func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization"})
			return
		}

		claims, err := utils.ParseAccessToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		accountID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return RequireAnyRole(role)
}

func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(ContextRole)
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// CurrentActor returns the caller stored by AuthRequired.
func CurrentActor(c *gin.Context) (services.Actor, bool) {
	value, ok := c.Get(ContextAccountID)
	if !ok {
		return services.Actor{}, false
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{ID: id, Role: c.GetString(ContextRole)}, true
}
