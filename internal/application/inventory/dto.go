package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gescom/backend/internal/domain/inventory"
)

// ReceiveStockRequest receives purchased quantity into a warehouse.
// WarehouseID may be omitted to target the enterprise's main warehouse.
type ReceiveStockRequest struct {
	WarehouseID *uuid.UUID      `json:"warehouse_id"`
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Reference   string          `json:"reference" binding:"required,max=100"`
}

// TransferStockRequest moves quantity between two warehouses
type TransferStockRequest struct {
	SourceWarehouseID      uuid.UUID       `json:"source_warehouse_id" binding:"required"`
	DestinationWarehouseID uuid.UUID       `json:"destination_warehouse_id" binding:"required"`
	ProductID              uuid.UUID       `json:"product_id" binding:"required"`
	Quantity               decimal.Decimal `json:"quantity" binding:"required"`
	Reference              string          `json:"reference" binding:"required,max=100"`
}

// SetMinQuantityRequest sets the low-stock threshold on an inventory row
type SetMinQuantityRequest struct {
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
}

// InventoryItemResponse is the API view of one inventory row
type InventoryItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	WarehouseID    uuid.UUID       `json:"warehouse_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	MinQuantity    decimal.Decimal `json:"min_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`
	BelowMinimum   bool            `json:"below_minimum"`
	LastMovementAt *time.Time      `json:"last_movement_at,omitempty"`
}

// MovementResponse is the API view of one stock movement
type MovementResponse struct {
	ID                     uuid.UUID       `json:"id"`
	SourceWarehouseID      *uuid.UUID      `json:"source_warehouse_id,omitempty"`
	DestinationWarehouseID *uuid.UUID      `json:"destination_warehouse_id,omitempty"`
	ProductID              uuid.UUID       `json:"product_id"`
	Direction              string          `json:"direction"`
	Quantity               decimal.Decimal `json:"quantity"`
	UnitCost               decimal.Decimal `json:"unit_cost"`
	TotalCost              decimal.Decimal `json:"total_cost"`
	QuantityBefore         decimal.Decimal `json:"quantity_before"`
	QuantityAfter          decimal.Decimal `json:"quantity_after"`
	Reference              string          `json:"reference"`
	IsTransfer             bool            `json:"is_transfer"`
	MovementDate           time.Time       `json:"movement_date"`
}

// TransferResponse carries both legs of a completed transfer
type TransferResponse struct {
	Out MovementResponse `json:"out"`
	In  MovementResponse `json:"in"`
}

// ToInventoryItemResponse converts an InventoryItem to its response DTO
func ToInventoryItemResponse(item *inventory.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:             item.ID,
		WarehouseID:    item.WarehouseID,
		ProductID:      item.ProductID,
		Quantity:       item.Quantity,
		UnitCost:       item.UnitCost,
		MinQuantity:    item.MinQuantity,
		TotalValue:     item.Quantity.Mul(item.UnitCost),
		BelowMinimum:   item.IsBelowMinimum(),
		LastMovementAt: item.LastMovementAt,
	}
}

// ToMovementResponse converts a Movement to its response DTO
func ToMovementResponse(m *inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:                     m.ID,
		SourceWarehouseID:      m.SourceWarehouseID,
		DestinationWarehouseID: m.DestinationWarehouseID,
		ProductID:              m.ProductID,
		Direction:              string(m.Direction),
		Quantity:               m.Quantity,
		UnitCost:               m.UnitCost,
		TotalCost:              m.TotalCost,
		QuantityBefore:         m.QuantityBefore,
		QuantityAfter:          m.QuantityAfter,
		Reference:              m.Reference,
		IsTransfer:             m.IsTransfer(),
		MovementDate:           m.MovementDate,
	}
}
