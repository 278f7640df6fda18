package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dukadash/backend/internal/domain/shared"
)

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &BaseHandler{}
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		h.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"validation", shared.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"already exists", shared.ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
		{"concurrency conflict", shared.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"unauthorized", shared.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"insufficient stock", shared.ErrInsufficientStock, http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(t, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}

	t.Run("unwraps wrapped domain errors", func(t *testing.T) {
		wrapped := fmt.Errorf("loading stock: %w", shared.ErrNotFound)

		w := serveError(t, wrapped)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown errors become an opaque 500", func(t *testing.T) {
		w := serveError(t, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An unexpected error occurred")
		assert.NotContains(t, w.Body.String(), "pq:")
	})

	t.Run("formatted domain errors keep their message", func(t *testing.T) {
		err := shared.NewDomainErrorf("INSUFFICIENT_STOCK", "Insufficient stock: only %d available", 3)

		w := serveError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "only 3 available")
	})
}
