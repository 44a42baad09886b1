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

// PendencyHandler serves the incomplete-record work queue for one
// client-shaped collection
type PendencyHandler struct {
	pendencies *services.PendencyService
	records    *services.ClientService
}

// NewPendencyHandler creates a pendency handler bound to a collection's
// services
func NewPendencyHandler(pendencies *services.PendencyService, records *services.ClientService) *PendencyHandler {
	return &PendencyHandler{pendencies: pendencies, records: records}
}

// List godoc
// @Summary Listar pendências
// @Description Monta a fila de registros incompletos: busca todos os registros, mantém os que têm campos obrigatórios faltando, aplica filtros exatos e ordena com colação pt-BR. A resposta carrega um número de sequência; buscas obsoletas são descartadas.
// @Tags pendencies
// @Produce json
// @Param socio query string false "Filtro exato por sócio responsável"
// @Param tipo_brinde query string false "Filtro exato por tipo de brinde"
// @Param sort query string false "Chave de ordenação (nome ou socio)" Enums(nome, socio)
// @Param order query string false "Direção (asc ou desc)" Enums(asc, desc)
// @Security BearerAuth
// @Success 200 {object} models.WorkingSet
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Busca substituída por uma mais recente"
// @Failure 500 {object} ErrorResponse
// @Router /pendencies [get]
func (h *PendencyHandler) List(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPendencies")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "list_pendencies"))

	var query models.WorkingSetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	workingSet, err := h.pendencies.BuildWorkingSet(ctx, query)
	if err != nil {
		respondRecordError(c, err)
		return
	}
	utils.AddSpanAttribute(span, "pendencies_found", workingSet.Total)

	c.JSON(http.StatusOK, workingSet)
}

// RequestDismiss godoc
// @Summary Solicitar dispensa de campo
// @Description Cria uma confirmação pendente para dispensar um campo obrigatório de um registro. O campo precisa estar faltando no momento; a dispensa só é gravada quando o token é confirmado.
// @Tags pendencies
// @Accept json
// @Produce json
// @Param id path string true "ID do registro"
// @Param input body models.DismissRequest true "Chave do campo a dispensar"
// @Security BearerAuth
// @Success 202 {object} models.PendingConfirmation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Campo não está faltando neste registro"
// @Failure 500 {object} ErrorResponse
// @Router /pendencies/{id}/dismiss [post]
func (h *PendencyHandler) RequestDismiss(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RequestDismiss")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "request_dismiss"),
		attribute.String("record_id", id),
	)

	var request models.DismissRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Field is required"})
		return
	}
	utils.AddSpanAttribute(span, "field", request.Field)

	pending, err := h.pendencies.RequestDismiss(ctx, id, request.Field, middleware.UserEmail(c))
	if err != nil {
		respondRecordError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, pending)
}

// RequestDiscard godoc
// @Summary Solicitar descarte de pendências
// @Description Cria uma confirmação pendente para dispensar todos os campos faltantes de um registro de uma vez. O conjunto de campos é resolvido no momento da confirmação.
// @Tags pendencies
// @Produce json
// @Param id path string true "ID do registro"
// @Security BearerAuth
// @Success 202 {object} models.PendingConfirmation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Registro não tem pendências"
// @Failure 500 {object} ErrorResponse
// @Router /pendencies/{id}/discard [post]
func (h *PendencyHandler) RequestDiscard(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RequestDiscard")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "request_discard"),
		attribute.String("record_id", id),
	)

	pending, err := h.pendencies.RequestDiscard(ctx, id, middleware.UserEmail(c))
	if err != nil {
		respondRecordError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, pending)
}

// Export godoc
// @Summary Exportar pendências em XLSX
// @Description Gera uma planilha com a fila de pendências atual: nome, empresa, sócio e campos faltantes de cada registro.
// @Tags pendencies
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param socio query string false "Filtro exato por sócio responsável"
// @Param tipo_brinde query string false "Filtro exato por tipo de brinde"
// @Param sort query string false "Chave de ordenação (nome ou socio)" Enums(nome, socio)
// @Param order query string false "Direção (asc ou desc)" Enums(asc, desc)
// @Security BearerAuth
// @Success 200 {file} file "Planilha XLSX"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pendencies/export [get]
func (h *PendencyHandler) Export(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ExportPendencies")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "export_pendencies"))

	var query models.WorkingSetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	workingSet, err := h.pendencies.BuildWorkingSet(ctx, query)
	if err != nil {
		respondRecordError(c, err)
		return
	}

	workbook, err := services.ReportServiceInstance.BuildWorkbook(workingSet)
	if err != nil {
		observability.Logger().Error("failed to build export workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build export"})
		return
	}
	defer workbook.Close()

	fileName := services.ReportServiceInstance.ExportFileName()
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		observability.Logger().Error("failed to stream export workbook", zap.Error(err))
	}
}

// Print godoc
// @Summary Relatório imprimível
// @Description Gera a página HTML de impressão. Sem parâmetros imprime toda a fila em cartões; com id imprime a ficha de um único registro.
// @Tags pendencies
// @Produce html
// @Param id query string false "ID do registro para impressão individual"
// @Security BearerAuth
// @Success 200 {string} string "Página HTML pronta para impressão"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pendencies/print [get]
func (h *PendencyHandler) Print(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "PrintPendencies")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "print_pendencies"))

	if id := c.Query("id"); id != "" {
		record, err := h.records.Get(ctx, id)
		if err != nil {
			respondRecordError(c, err)
			return
		}

		pendency := models.Pendency{Client: *record, MissingFields: services.MissingFields(record)}
		page, err := services.ReportServiceInstance.RenderPrintSingle(&pendency)
		if err != nil {
			observability.Logger().Error("failed to render print page", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render print page"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	var query models.WorkingSetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	workingSet, err := h.pendencies.BuildWorkingSet(ctx, query)
	if err != nil {
		respondRecordError(c, err)
		return
	}

	page, err := services.ReportServiceInstance.RenderPrintAll(workingSet)
	if err != nil {
		observability.Logger().Error("failed to render print page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render print page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
