package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginated(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		p := NewPaginated([]int{1, 2, 3}, 45, 1, 20)

		assert.Equal(t, int64(45), p.Total)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("exact multiple needs no extra page", func(t *testing.T) {
		p := NewPaginated([]int{}, 40, 2, 20)

		assert.Equal(t, 2, p.TotalPages)
	})

	t.Run("unpaginated filter collapses to a single page", func(t *testing.T) {
		p := NewPaginated([]string{"a", "b"}, 2, 0, 0)

		assert.Equal(t, 1, p.TotalPages)
	})

	t.Run("empty result with no page size has no pages", func(t *testing.T) {
		p := NewPaginated([]string{}, 0, 0, 0)

		assert.Equal(t, 0, p.TotalPages)
	})
}

func TestFilterWithFilter(t *testing.T) {
	t.Run("adds to a nil map", func(t *testing.T) {
		f := Filter{}.WithFilter("shop_id", "abc")

		assert.Equal(t, "abc", f.Filters["shop_id"])
	})

	t.Run("keeps existing constraints", func(t *testing.T) {
		f := DefaultFilter().WithFilter("category", "rent").WithFilter("shop_id", "abc")

		assert.Equal(t, "rent", f.Filters["category"])
		assert.Equal(t, "abc", f.Filters["shop_id"])
	})
}
