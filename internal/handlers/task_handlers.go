package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/middleware"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/services"
)

// ListTasks godoc
// @Summary Listar tarefas
// @Description Lista todas as tarefas ordenadas por coluna e posição.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Task
// @Failure 500 {object} ErrorResponse
// @Router /tasks [get]
func ListTasks(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListTasks")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "list_tasks"))

	tasks, err := services.TaskServiceInstance.List(ctx)
	if err != nil {
		observability.Logger().Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetBoard godoc
// @Summary Quadro kanban
// @Description Retorna as tarefas agrupadas por coluna (todo, doing, done), ordenadas por posição.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BoardResponse
// @Failure 500 {object} ErrorResponse
// @Router /board [get]
func GetBoard(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetBoard")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "get_board"))

	board, err := services.TaskServiceInstance.Board(ctx)
	if err != nil {
		observability.Logger().Error("failed to build board", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build board"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// CreateTask godoc
// @Summary Criar tarefa
// @Description Cria uma tarefa. Sem posição explícita, o cartão entra no fim da coluna.
// @Tags tasks
// @Accept json
// @Produce json
// @Param input body models.TaskInput true "Dados da tarefa"
// @Security BearerAuth
// @Success 201 {object} models.Task
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [post]
func CreateTask(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateTask")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "create_task"))

	var input models.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Task title is required"})
		return
	}

	task, err := services.TaskServiceInstance.Create(ctx, input, middleware.UserEmail(c))
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask godoc
// @Summary Atualizar tarefa
// @Description Aplica uma atualização parcial a uma tarefa.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "ID da tarefa"
// @Param input body models.TaskInput true "Campos a atualizar"
// @Security BearerAuth
// @Success 200 {object} models.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id} [put]
func UpdateTask(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateTask")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "update_task"),
		attribute.String("task_id", id),
	)

	var input models.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	task, err := services.TaskServiceInstance.Update(ctx, id, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// MoveTask godoc
// @Summary Mover tarefa
// @Description Move uma tarefa para outra coluna e posição do quadro.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "ID da tarefa"
// @Param input body models.TaskMoveRequest true "Coluna e posição de destino"
// @Security BearerAuth
// @Success 200 {object} models.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id}/move [post]
func MoveTask(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "MoveTask")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "move_task"),
		attribute.String("task_id", id),
	)

	var move models.TaskMoveRequest
	if err := c.ShouldBindJSON(&move); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status is required"})
		return
	}

	task, err := services.TaskServiceInstance.Move(ctx, id, move)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// RequestDeleteTask godoc
// @Summary Solicitar exclusão de tarefa
// @Description Cria uma confirmação pendente para excluir a tarefa.
// @Tags tasks
// @Produce json
// @Param id path string true "ID da tarefa"
// @Security BearerAuth
// @Success 202 {object} models.PendingConfirmation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id}/delete [post]
func RequestDeleteTask(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RequestDeleteTask")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("operation", "request_delete_task"),
		attribute.String("task_id", id),
	)

	pending, err := services.TaskServiceInstance.RequestDelete(ctx, id, middleware.UserEmail(c))
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, pending)
}

func respondTaskError(c *gin.Context, err error) {
	switch err {
	case models.ErrInvalidRecordID:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task ID"})
	case models.ErrRecordNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	case models.ErrInvalidTaskStatus:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task status"})
	default:
		observability.Logger().Error("task operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
