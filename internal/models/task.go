package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses, mirroring the kanban board columns
const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

// ValidTaskStatus reports whether status names a board column
func ValidTaskStatus(status string) bool {
	return status == TaskStatusTodo || status == TaskStatusDoing || status == TaskStatusDone
}

// Task is one kanban board card
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	Assignee    string             `bson:"assignee" json:"assignee"`
	Position    int                `bson:"position" json:"position"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy   string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// BeforeCreate sets timestamps and defaults the board column
func (t *Task) BeforeCreate() {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = TaskStatusTodo
	}
}

// BeforeUpdate sets the update timestamp
func (t *Task) BeforeUpdate() {
	t.UpdatedAt = time.Now()
}

// TaskInput is the create/update request body
type TaskInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	Position    *int    `json:"position,omitempty"`
}

// TaskMoveRequest moves a card to a column/position
type TaskMoveRequest struct {
	Status   string `json:"status" binding:"required"`
	Position int    `json:"position"`
}

// BoardResponse is the kanban view: cards grouped by column, ordered by
// position within each column
type BoardResponse struct {
	Todo  []Task `json:"todo"`
	Doing []Task `json:"doing"`
	Done  []Task `json:"done"`
}
