package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/dukadash/backend/internal/domain/shared"
)

// HistoryAction classifies a stock mutation
type HistoryAction string

const (
	ActionSold     HistoryAction = "sold"
	ActionAdded    HistoryAction = "added"
	ActionAdjusted HistoryAction = "adjusted"
)

// nowFunc is swapped in tests to pin timestamps
var nowFunc = time.Now

// StockHistory is an append-only audit entry bracketing exactly one
// quantity change on a stock line.
type StockHistory struct {
	shared.BaseEntity
	StockID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	ShopID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	QuantityBefore int           `gorm:"not null"`
	QuantityAfter  int           `gorm:"not null"`
	Action         HistoryAction `gorm:"size:20;not null"`
	Note           string        `gorm:"size:500"`
}

// TableName returns the database table name
func (StockHistory) TableName() string {
	return "stock_histories"
}

func newStockHistory(s *Stock, before, after int, action HistoryAction, note string) *StockHistory {
	return &StockHistory{
		BaseEntity:     shared.NewBaseEntity(),
		StockID:        s.ID,
		ShopID:         s.ShopID,
		UserID:         s.UserID,
		QuantityBefore: before,
		QuantityAfter:  after,
		Action:         action,
		Note:           note,
	}
}

// Delta returns the signed quantity change recorded by this entry
func (h *StockHistory) Delta() int {
	return h.QuantityAfter - h.QuantityBefore
}
