package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func TestApplyTaskInput(t *testing.T) {
	title := "  Preparar contrato  "
	status := models.TaskStatusDoing
	assignee := "Marina"
	position := 3

	var task models.Task
	err := applyTaskInput(&task, models.TaskInput{
		Title:    &title,
		Status:   &status,
		Assignee: &assignee,
		Position: &position,
	})
	require.NoError(t, err)

	assert.Equal(t, "Preparar contrato", task.Title)
	assert.Equal(t, models.TaskStatusDoing, task.Status)
	assert.Equal(t, "Marina", task.Assignee)
	assert.Equal(t, 3, task.Position)
}

func TestApplyTaskInput_InvalidStatus(t *testing.T) {
	status := "blocked"

	var task models.Task
	err := applyTaskInput(&task, models.TaskInput{Status: &status})
	assert.ErrorIs(t, err, models.ErrInvalidTaskStatus)
}

func TestApplyTaskInput_PartialUpdateKeepsFields(t *testing.T) {
	task := models.Task{Title: "Revisar petição", Status: models.TaskStatusTodo, Assignee: "Paulo"}

	description := "Prazo na sexta"
	err := applyTaskInput(&task, models.TaskInput{Description: &description})
	require.NoError(t, err)

	assert.Equal(t, "Revisar petição", task.Title)
	assert.Equal(t, "Paulo", task.Assignee)
	assert.Equal(t, "Prazo na sexta", task.Description)
}
