package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/services"
)

// SecureAreaHeader carries the unlock token issued by the PIN verification
// endpoint
const SecureAreaHeader = "X-Secure-Area"

// RequireSecureArea gates the magistrate routes behind a valid unlock token.
// The token must belong to the authenticated user: a leaked token is
// useless with someone else's JWT.
func RequireSecureArea() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SecureAreaHeader)

		email, err := services.MagistrateServiceInstance.ValidateToken(c.Request.Context(), token)
		if err == models.ErrSecureAreaLocked {
			c.JSON(http.StatusForbidden, gin.H{"error": "Secure area is locked"})
			c.Abort()
			return
		}
		if err != nil {
			observability.Logger().Error("failed to validate secure-area token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate secure-area token"})
			c.Abort()
			return
		}

		if userEmail := UserEmail(c); userEmail != "" && userEmail != email {
			observability.Logger().Warn("secure-area token used by another user",
				zap.String("token_email", observability.MaskEmail(email)),
				zap.String("user_email", observability.MaskEmail(userEmail)))
			c.JSON(http.StatusForbidden, gin.H{"error": "Secure area is locked"})
			c.Abort()
			return
		}

		c.Next()
	}
}
