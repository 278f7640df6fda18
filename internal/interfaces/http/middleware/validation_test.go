package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dukadash/backend/internal/application/finance"
)

func TestExpenseCategoryValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	r := gin.New()
	r.POST("/expenses", func(c *gin.Context) {
		var input finance.CreateExpenseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("accepts a known category", func(t *testing.T) {
		w := post(`{"shop_id":"70b4f0a0-44a5-4f32-8f5c-2722e3c4a893","category":"rent","description":"August rent","amount":"8000"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		w := post(`{"shop_id":"70b4f0a0-44a5-4f32-8f5c-2722e3c4a893","category":"gambling","description":"no","amount":"10"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "expensecategory")
	})
}
