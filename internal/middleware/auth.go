package middleware

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
)

// AuthMiddleware extracts JWT claims from the request. The token is already
// validated by the gateway in front of this service, so only the claims are
// decoded here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := extractClaims(parts[1])
		if err != nil {
			observability.Logger().Error("failed to extract claims from token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// extractClaims decodes the claims segment of a JWT without re-validating
// the signature
func extractClaims(token string) (*models.JWTClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid token format")
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	var claims models.JWTClaims
	if err := json.Unmarshal(claimsBytes, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %w", err)
	}
	return &claims, nil
}

// UserClaims returns the decoded claims stored by AuthMiddleware
func UserClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}

// UserEmail returns the authenticated user's email, preferring the email
// claim over preferred_username
func UserEmail(c *gin.Context) string {
	claims, ok := UserClaims(c)
	if !ok {
		return ""
	}
	if claims.Email != "" {
		return claims.Email
	}
	return claims.PreferredUsername
}

// RequireAdmin allows only users carrying the configured admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := UserClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Claims not found"})
			c.Abort()
			return
		}

		for _, role := range claims.RealmAccess.Roles {
			if role == config.AppConfig.AdminGroup {
				c.Next()
				return
			}
		}

		observability.Logger().Warn("admin route denied",
			zap.String("email", observability.MaskEmail(UserEmail(c))),
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
		c.Abort()
	}
}
