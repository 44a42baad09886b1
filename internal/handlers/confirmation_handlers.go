package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/services"
)

// ConfirmAction godoc
// @Summary Confirmar ação pendente
// @Description Consome um token de confirmação e executa a mutação que ele descreve (dispensa, descarte, exclusão ou limpeza). Cada token só pode ser confirmado uma vez; tokens expirados retornam 404.
// @Tags confirmations
// @Produce json
// @Param token path string true "Token de confirmação"
// @Security BearerAuth
// @Success 200 {object} models.ConfirmationResult
// @Failure 404 {object} ErrorResponse "Token expirado ou desconhecido"
// @Failure 500 {object} ErrorResponse
// @Router /confirmations/{token} [post]
func ConfirmAction(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ConfirmAction")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "confirm_action"))

	token := c.Param("token")
	pending, err := services.ConfirmationServiceInstance.Consume(ctx, token)
	if err == models.ErrConfirmationNotFound {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Confirmation expired or not found"})
		return
	}
	if err != nil {
		observability.Logger().Error("failed to consume confirmation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to consume confirmation"})
		return
	}
	span.SetAttributes(attribute.String("action", pending.Action))

	result, err := services.ConfirmationServiceInstance.Execute(ctx, pending)
	if err != nil {
		respondRecordError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AbortAction godoc
// @Summary Abortar ação pendente
// @Description Cancela um token de confirmação sem executar nada. Abortar um token já expirado também é um no-op bem-sucedido.
// @Tags confirmations
// @Produce json
// @Param token path string true "Token de confirmação"
// @Security BearerAuth
// @Success 204 "Confirmação cancelada"
// @Failure 500 {object} ErrorResponse
// @Router /confirmations/{token} [delete]
func AbortAction(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "AbortAction")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "abort_action"))

	if err := services.ConfirmationServiceInstance.Abort(ctx, c.Param("token")); err != nil {
		observability.Logger().Error("failed to abort confirmation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to abort confirmation"})
		return
	}
	c.Status(http.StatusNoContent)
}
