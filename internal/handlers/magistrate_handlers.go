package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/middleware"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/services"
)

// CheckMagistrateAccess godoc
// @Summary Verificar acesso à área de magistrados
// @Description Informa se o e-mail autenticado está na lista de permissões da área restrita. Não desbloqueia nada por si só.
// @Tags magistrates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /magistrates/access [get]
func CheckMagistrateAccess(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CheckMagistrateAccess")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "check_magistrate_access"))

	response, err := services.MagistrateServiceInstance.CheckAccess(ctx, middleware.UserEmail(c))
	if err == models.ErrMagistrateConfigAbsent {
		c.JSON(http.StatusOK, models.AccessResponse{Email: middleware.UserEmail(c), HasAccess: false})
		return
	}
	if err != nil {
		observability.Logger().Error("failed to check magistrate access", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check access"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// UnlockMagistrateArea godoc
// @Summary Desbloquear área de magistrados
// @Description Verifica o PIN de 4 dígitos para um e-mail permitido e emite um token de desbloqueio de curta duração. O token vai no cabeçalho X-Secure-Area das rotas de magistrados.
// @Tags magistrates
// @Accept json
// @Produce json
// @Param input body models.UnlockRequest true "PIN de acesso"
// @Security BearerAuth
// @Success 200 {object} models.UnlockResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "PIN incorreto"
// @Failure 403 {object} ErrorResponse "E-mail fora da lista de permissões"
// @Failure 500 {object} ErrorResponse
// @Router /magistrates/unlock [post]
func UnlockMagistrateArea(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UnlockMagistrateArea")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "unlock_magistrate_area"))

	var request models.UnlockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "PIN must be 4 digits"})
		return
	}

	response, err := services.MagistrateServiceInstance.Unlock(ctx, middleware.UserEmail(c), request.PIN)
	switch err {
	case nil:
		c.JSON(http.StatusOK, response)
	case models.ErrAccessListDenied:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "User is not on the access list"})
	case models.ErrInvalidPIN:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Incorrect PIN"})
	case models.ErrMagistrateConfigAbsent:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Secure area is not configured"})
	default:
		observability.Logger().Error("failed to unlock secure area", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to unlock secure area"})
	}
}

// LockMagistrateArea godoc
// @Summary Bloquear área de magistrados
// @Description Revoga o token de desbloqueio antes do fim do prazo.
// @Tags magistrates
// @Produce json
// @Security BearerAuth
// @Success 204 "Área bloqueada"
// @Failure 500 {object} ErrorResponse
// @Router /magistrates/lock [post]
func LockMagistrateArea(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "LockMagistrateArea")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "lock_magistrate_area"))

	token := c.GetHeader(middleware.SecureAreaHeader)
	if err := services.MagistrateServiceInstance.Lock(ctx, token); err != nil {
		observability.Logger().Error("failed to lock secure area", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to lock secure area"})
		return
	}
	c.Status(http.StatusNoContent)
}
