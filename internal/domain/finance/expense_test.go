package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukadash/backend/internal/domain/shared"
)

func TestNewExpense(t *testing.T) {
	t.Run("creates expense", func(t *testing.T) {
		e, err := NewExpense(uuid.New(), uuid.New(), CategoryRent, "October rent", decimal.NewFromInt(15000))
		require.NoError(t, err)

		assert.Equal(t, CategoryRent, e.Category)
		assert.Equal(t, "October rent", e.Description)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewExpense(uuid.New(), uuid.New(), "groceries", "stuff", decimal.NewFromInt(100))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		assert.Contains(t, domainErr.Message, "groceries")
	})

	t.Run("rejects blank description", func(t *testing.T) {
		_, err := NewExpense(uuid.New(), uuid.New(), CategoryOther, "   ", decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewExpense(uuid.New(), uuid.New(), CategoryOther, "misc", decimal.Zero)
		assert.Error(t, err)
	})
}

func TestExpenseCategoryIsValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid(), "category %s", c)
	}
	assert.False(t, ExpenseCategory("fuel").IsValid())
	assert.False(t, ExpenseCategory("").IsValid())
}

func TestExpenseUpdate(t *testing.T) {
	e, err := NewExpense(uuid.New(), uuid.New(), CategoryRent, "October rent", decimal.NewFromInt(15000))
	require.NoError(t, err)

	require.NoError(t, e.Update(CategoryUtilities, "Electricity token", decimal.NewFromInt(2000)))
	assert.Equal(t, CategoryUtilities, e.Category)

	assert.Error(t, e.Update("fuel", "petrol", decimal.NewFromInt(500)))
	assert.Equal(t, CategoryUtilities, e.Category)
}
