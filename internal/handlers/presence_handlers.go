package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

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

// ImportPresence godoc
// @Summary Importar planilha de presença
// @Description Importa a primeira aba de um XLSX da portaria. Linhas sem nome de colaborador são puladas e contadas; datas ilegíveis caem para o horário da importação. A resposta informa quantas linhas entraram e quantas foram puladas.
// @Tags presence
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Planilha XLSX"
// @Security BearerAuth
// @Success 200 {object} models.ImportResult
// @Failure 400 {object} ErrorResponse "Arquivo ausente, ilegível ou sem linhas importáveis"
// @Failure 500 {object} ErrorResponse
// @Router /presence/import [post]
func ImportPresence(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ImportPresence")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "import_presence"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Spreadsheet file is required"})
		return
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Only .xlsx files are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	ctx, importSpan := utils.TraceBusinessLogic(ctx, "spreadsheet_import")
	result, err := services.PresenceServiceInstance.ImportSpreadsheet(ctx, file, fileHeader.Filename)
	importSpan.End()
	switch err {
	case nil:
		c.JSON(http.StatusOK, result)
	case models.ErrNoImportableRows:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No importable rows found in spreadsheet"})
	case models.ErrMissingSheetColumns:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not identify the name column"})
	default:
		observability.Logger().Error("failed to import presence spreadsheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import spreadsheet"})
	}
}

// ListPresence godoc
// @Summary Listar registros de presença
// @Description Lista o histórico de presença da portaria, mais recentes primeiro.
// @Tags presence
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PresenceListResponse
// @Failure 500 {object} ErrorResponse
// @Router /presence [get]
func ListPresence(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPresence")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "list_presence"))

	response, err := services.PresenceServiceInstance.List(ctx)
	if err != nil {
		observability.Logger().Error("failed to list presence records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list presence records"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// RequestClearPresence godoc
// @Summary Solicitar limpeza do histórico de presença
// @Description Cria uma confirmação pendente para apagar todo o histórico de presença.
// @Tags presence
// @Produce json
// @Security BearerAuth
// @Success 202 {object} models.PendingConfirmation
// @Failure 500 {object} ErrorResponse
// @Router /presence/clear [post]
func RequestClearPresence(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RequestClearPresence")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "request_clear_presence"))

	pending, err := services.PresenceServiceInstance.RequestClear(ctx, middleware.UserEmail(c))
	if err != nil {
		observability.Logger().Error("failed to request presence clear", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to request history clear"})
		return
	}
	c.JSON(http.StatusAccepted, pending)
}
