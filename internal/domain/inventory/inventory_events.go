package inventory

import (
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for InventoryItem
const AggregateTypeInventoryItem = "InventoryItem"

// Event type constants for inventory
const (
	EventTypeStockBelowThreshold = "StockBelowThreshold"
)

// StockBelowThresholdEvent is published when stock falls below the minimum level
type StockBelowThresholdEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
}

// NewStockBelowThresholdEvent creates a new StockBelowThresholdEvent
func NewStockBelowThresholdEvent(item *InventoryItem) *StockBelowThresholdEvent {
	return &StockBelowThresholdEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowThreshold, AggregateTypeInventoryItem, item.ID, item.EnterpriseID),
		WarehouseID:     item.WarehouseID,
		ProductID:       item.ProductID,
		Quantity:        item.Quantity,
		MinQuantity:     item.MinQuantity,
	}
}
