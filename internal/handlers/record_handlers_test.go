package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondRecordError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid id", models.ErrInvalidRecordID, http.StatusBadRequest},
		{"not found", models.ErrRecordNotFound, http.StatusNotFound},
		{"field outside schema", models.ErrFieldNotInSchema, http.StatusBadRequest},
		{"field not missing", models.ErrFieldNotMissing, http.StatusConflict},
		{"stale working set", models.ErrStaleWorkingSet, http.StatusConflict},
		{"invalid sort key", models.ErrInvalidSortKey, http.StatusBadRequest},
		{"invalid sort direction", models.ErrInvalidSortDirection, http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondRecordError(c, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespondTaskError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{models.ErrInvalidRecordID, http.StatusBadRequest},
		{models.ErrRecordNotFound, http.StatusNotFound},
		{models.ErrInvalidTaskStatus, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondTaskError(c, tt.err)
		assert.Equal(t, tt.status, w.Code)
	}
}
