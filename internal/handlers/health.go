package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/observability"
)

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API e suas dependências (MongoDB e Redis).
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Todos os serviços estão saudáveis"
// @Failure 503 {object} HealthResponse "Um ou mais serviços estão indisponíveis"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "health_check"))

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{},
	}

	if err := config.MongoDB.Client().Ping(ctx, readpref.Primary()); err != nil {
		observability.Logger().Error("mongodb health check failed", zap.Error(err))
		health.Status = "unhealthy"
		health.Services["mongodb"] = "unavailable"
	} else {
		health.Services["mongodb"] = "healthy"
	}

	if err := config.Redis.Ping(ctx).Err(); err != nil {
		observability.Logger().Error("redis health check failed", zap.Error(err))
		health.Status = "unhealthy"
		health.Services["redis"] = "unavailable"
	} else {
		health.Services["redis"] = "healthy"
	}

	if health.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
