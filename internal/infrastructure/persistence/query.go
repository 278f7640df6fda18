package persistence

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/dukadash/backend/internal/domain/shared"
)

// applySort orders the query by an allow-listed column
func applySort(query *gorm.DB, filter shared.Filter, allowed map[string]bool) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowed, "created_at")
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
}

// applyPagination limits the query to the requested page
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

// translateError maps database errors onto domain errors. Unique
// violations become ALREADY_EXISTS so callers don't leak pq internals.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return shared.ErrAlreadyExists
	}
	return err
}
