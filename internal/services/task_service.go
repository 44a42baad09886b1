package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/logging"
	"github.com/salomao-adv/crm-backend/internal/models"
)

// TaskService handles the kanban task board
type TaskService struct {
	database *mongo.Database
	logger   *logging.SafeLogger
}

// NewTaskService creates a new task service instance
func NewTaskService(database *mongo.Database, logger *logging.SafeLogger) *TaskService {
	return &TaskService{
		database: database,
		logger:   logger,
	}
}

// Global task service instance
var TaskServiceInstance *TaskService

// InitTaskService initializes the global task service instance
func InitTaskService() {
	TaskServiceInstance = NewTaskService(config.MongoDB, logging.Logger)
	logging.Logger.Info("task service initialized")
}

func (s *TaskService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.TaskCollection)
}

// List returns all tasks ordered by column and position
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "status", Value: 1},
		{Key: "position", Value: 1},
	})
	cursor, err := s.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

// Board returns the kanban view grouped by column
func (s *TaskService) Board(ctx context.Context) (*models.BoardResponse, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	board := &models.BoardResponse{
		Todo:  []models.Task{},
		Doing: []models.Task{},
		Done:  []models.Task{},
	}
	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusDoing:
			board.Doing = append(board.Doing, task)
		case models.TaskStatusDone:
			board.Done = append(board.Done, task)
		default:
			board.Todo = append(board.Todo, task)
		}
	}
	return board, nil
}

// Create inserts a new task. New cards land at the end of their column.
func (s *TaskService) Create(ctx context.Context, input models.TaskInput, createdBy string) (*models.Task, error) {
	task := models.Task{CreatedBy: createdBy}
	if err := applyTaskInput(&task, input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(task.Title) == "" {
		return nil, fmt.Errorf("task title is required")
	}
	task.BeforeCreate()

	if input.Position == nil {
		position, err := s.nextPosition(ctx, task.Status)
		if err != nil {
			return nil, err
		}
		task.Position = position
	}

	result, err := s.collection().InsertOne(ctx, &task)
	if err != nil {
		s.logger.Error("failed to create task", zap.Error(err))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	task.ID = result.InsertedID.(primitive.ObjectID)

	s.logger.Info("task created",
		zap.String("task_id", task.ID.Hex()),
		zap.String("status", task.Status))
	return &task, nil
}

// Update applies a partial update to a task
func (s *TaskService) Update(ctx context.Context, id string, input models.TaskInput) (*models.Task, error) {
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTaskInput(task, input); err != nil {
		return nil, err
	}
	task.BeforeUpdate()

	if _, err := s.collection().ReplaceOne(ctx, bson.M{"_id": task.ID}, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Move places a task in a column at a position
func (s *TaskService) Move(ctx context.Context, id string, move models.TaskMoveRequest) (*models.Task, error) {
	if !models.ValidTaskStatus(move.Status) {
		return nil, models.ErrInvalidTaskStatus
	}

	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = move.Status
	task.Position = move.Position
	task.BeforeUpdate()

	if _, err := s.collection().ReplaceOne(ctx, bson.M{"_id": task.ID}, task); err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	s.logger.Info("task moved",
		zap.String("task_id", id),
		zap.String("status", move.Status),
		zap.Int("position", move.Position))
	return task, nil
}

// RequestDelete creates a pending confirmation for removing a task
func (s *TaskService) RequestDelete(ctx context.Context, id, requestedBy string) (*models.PendingConfirmation, error) {
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return ConfirmationServiceInstance.Create(ctx, models.PendingConfirmation{
		Action:      models.ActionDeleteTask,
		Collection:  config.AppConfig.TaskCollection,
		RecordID:    id,
		Summary:     fmt.Sprintf("Excluir a tarefa %q", task.Title),
		RequestedBy: requestedBy,
	})
}

// ConfirmDelete executes a confirmed task removal
func (s *TaskService) ConfirmDelete(ctx context.Context, pending *models.PendingConfirmation) (*models.ConfirmationResult, error) {
	objectID, err := primitive.ObjectIDFromHex(pending.RecordID)
	if err != nil {
		return nil, models.ErrInvalidRecordID
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return nil, models.ErrRecordNotFound
	}

	s.logger.Info("task deleted",
		zap.String("task_id", pending.RecordID),
		zap.String("requested_by", pending.RequestedBy))
	return &models.ConfirmationResult{
		Action:   models.ActionDeleteTask,
		RecordID: pending.RecordID,
	}, nil
}

func (s *TaskService) get(ctx context.Context, id string) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidRecordID
	}

	var task models.Task
	err = s.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// nextPosition returns the position after the last card in a column
func (s *TaskService) nextPosition(ctx context.Context, status string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "position", Value: -1}})

	var last models.Task
	err := s.collection().FindOne(ctx, bson.M{"status": status}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find last position: %w", err)
	}
	return last.Position + 1, nil
}

// applyTaskInput copies the set fields of a partial input onto a task
func applyTaskInput(task *models.Task, input models.TaskInput) error {
	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !models.ValidTaskStatus(*input.Status) {
			return models.ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.Assignee != nil {
		task.Assignee = strings.TrimSpace(*input.Assignee)
	}
	if input.Position != nil {
		task.Position = *input.Position
	}
	return nil
}
