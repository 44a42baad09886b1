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
	"github.com/salomao-adv/crm-backend/internal/utils"
)

// RecordHandler serves CRUD over a client-shaped collection. The same
// handler set runs twice: once for clientes and once for magistrados.
type RecordHandler struct {
	records *services.ClientService
}

// NewRecordHandler creates a record handler bound to a client service
func NewRecordHandler(records *services.ClientService) *RecordHandler {
	return &RecordHandler{records: records}
}

// List godoc
// @Summary Listar registros
// @Description Lista os registros da coleção, mais recentes primeiro. Filtros exatos por sócio e tipo de brinde; q filtra por substring do nome.
// @Tags clients
// @Produce json
// @Param socio query string false "Filtro exato por sócio responsável"
// @Param tipo_brinde query string false "Filtro exato por tipo de brinde"
// @Param q query string false "Busca por substring do nome"
// @Security BearerAuth
// @Success 200 {object} models.ClientListResponse
// @Failure 500 {object} ErrorResponse
// @Router /clients [get]
func (h *RecordHandler) List(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListRecords")
	defer span.End()
	span.SetAttributes(
		attribute.String("operation", "list_records"),
		attribute.String("collection", h.records.Collection()),
	)

	var filter models.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter parameters"})
		return
	}

	ctx, findSpan := utils.TraceDatabaseFind(ctx, h.records.Collection(), "list")
	response, err := h.records.List(ctx, filter)
	if err != nil {
		utils.RecordErrorInSpan(findSpan, err, map[string]interface{}{
			"socio":       filter.Socio,
			"tipo_brinde": filter.TipoBrinde,
		})
		findSpan.End()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list records"})
		return
	}
	utils.AddSpanAttribute(findSpan, "records_found", response.Total)
	findSpan.End()

	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary Obter registro
// @Description Recupera um registro pelo seu ID.
// @Tags clients
// @Produce json
// @Param id path string true "ID do registro"
// @Security BearerAuth
// @Success 200 {object} models.ClientRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clients/{id} [get]
func (h *RecordHandler) Get(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetRecord")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "get_record"),
		attribute.String("record_id", id),
	)

	record, err := h.records.Get(ctx, id)
	if err != nil {
		respondRecordError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary Criar registro
// @Description Cria um novo registro. Apenas o nome é obrigatório; os demais campos podem ser preenchidos depois e aparecem como pendências.
// @Tags clients
// @Accept json
// @Produce json
// @Param input body models.ClientInput true "Dados do registro"
// @Security BearerAuth
// @Success 201 {object} models.ClientRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clients [post]
func (h *RecordHandler) Create(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateRecord")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "create_record"))

	var input models.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	ctx, validationSpan := utils.TraceInputValidation(ctx, "client_input", "create")
	if result := utils.ValidateClientInput(input, true); !result.IsValid {
		validationSpan.End()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": result.Errors})
		return
	}
	validationSpan.End()

	record, err := h.records.Create(ctx, input, middleware.UserEmail(c))
	if err != nil {
		observability.Logger().Error("failed to create record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create record"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary Atualizar registro
// @Description Aplica uma atualização parcial. Campos ausentes do corpo não são alterados; dispensas de pendência existentes são preservadas.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "ID do registro"
// @Param input body models.ClientInput true "Campos a atualizar"
// @Security BearerAuth
// @Success 200 {object} models.ClientRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clients/{id} [put]
func (h *RecordHandler) Update(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateRecord")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "update_record"),
		attribute.String("record_id", id),
	)

	var input models.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if result := utils.ValidateClientInput(input, false); !result.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": result.Errors})
		return
	}

	record, err := h.records.Update(ctx, id, input, middleware.UserEmail(c))
	if err != nil {
		respondRecordError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// RequestDelete godoc
// @Summary Solicitar exclusão de registro
// @Description Cria uma confirmação pendente para excluir o registro. A exclusão só ocorre quando o token retornado é confirmado dentro do prazo.
// @Tags clients
// @Produce json
// @Param id path string true "ID do registro"
// @Security BearerAuth
// @Success 202 {object} models.PendingConfirmation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clients/{id}/delete [post]
func (h *RecordHandler) RequestDelete(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RequestDeleteRecord")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "request_delete_record"),
		attribute.String("record_id", id),
	)

	pending, err := h.records.RequestDelete(ctx, id, middleware.UserEmail(c))
	if err != nil {
		respondRecordError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, pending)
}

// respondRecordError maps service errors onto HTTP status codes
func respondRecordError(c *gin.Context, err error) {
	switch err {
	case models.ErrInvalidRecordID:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid record ID"})
	case models.ErrRecordNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Record not found"})
	case models.ErrFieldNotInSchema:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Field is not part of the required-field schema"})
	case models.ErrFieldNotMissing:
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Field is not currently missing on this record"})
	case models.ErrStaleWorkingSet:
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Working set superseded by a newer fetch"})
	case models.ErrInvalidSortKey, models.ErrInvalidSortDirection:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		observability.Logger().Error("record operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
