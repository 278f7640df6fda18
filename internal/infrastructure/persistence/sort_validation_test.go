package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	assert.Equal(t, "DESC", ValidateSortOrder("DESC"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("sideways"))
}

func TestValidateSortField(t *testing.T) {
	t.Run("accepts allow-listed fields", func(t *testing.T) {
		assert.Equal(t, "price", ValidateSortField("price", StockSortFields, "created_at"))
		assert.Equal(t, "total_amount", ValidateSortField("total_amount", SaleSortFields, "created_at"))
	})

	t.Run("falls back to the default for anything else", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("", StockSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("password", StockSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("name; DROP TABLE stocks", StockSortFields, "created_at"))
	})
}
