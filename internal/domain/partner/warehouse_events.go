package partner

import (
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Warehouse
const AggregateTypeWarehouse = "Warehouse"

// Event type constants for Warehouse
const (
	EventTypeWarehouseCreated       = "WarehouseCreated"
	EventTypeWarehouseStatusChanged = "WarehouseStatusChanged"
	EventTypeWarehouseSetAsDefault  = "WarehouseSetAsDefault"
)

// WarehouseCreatedEvent is published when a new warehouse is created
type WarehouseCreatedEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID     `json:"warehouse_id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	WhType      WarehouseType `json:"type"`
}

// NewWarehouseCreatedEvent creates a new WarehouseCreatedEvent
func NewWarehouseCreatedEvent(warehouse *Warehouse) *WarehouseCreatedEvent {
	return &WarehouseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWarehouseCreated, AggregateTypeWarehouse, warehouse.ID, warehouse.EnterpriseID),
		WarehouseID:     warehouse.ID,
		Code:            warehouse.Code,
		Name:            warehouse.Name,
		WhType:          warehouse.Type,
	}
}

// WarehouseStatusChangedEvent is published when a warehouse's status changes
type WarehouseStatusChangedEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	Code        string          `json:"code"`
	OldStatus   WarehouseStatus `json:"old_status"`
	NewStatus   WarehouseStatus `json:"new_status"`
}

// NewWarehouseStatusChangedEvent creates a new WarehouseStatusChangedEvent
func NewWarehouseStatusChangedEvent(warehouse *Warehouse, oldStatus, newStatus WarehouseStatus) *WarehouseStatusChangedEvent {
	return &WarehouseStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWarehouseStatusChanged, AggregateTypeWarehouse, warehouse.ID, warehouse.EnterpriseID),
		WarehouseID:     warehouse.ID,
		Code:            warehouse.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// WarehouseSetAsDefaultEvent is published when a warehouse is set as the default
type WarehouseSetAsDefaultEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
}

// NewWarehouseSetAsDefaultEvent creates a new WarehouseSetAsDefaultEvent
func NewWarehouseSetAsDefaultEvent(warehouse *Warehouse) *WarehouseSetAsDefaultEvent {
	return &WarehouseSetAsDefaultEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWarehouseSetAsDefault, AggregateTypeWarehouse, warehouse.ID, warehouse.EnterpriseID),
		WarehouseID:     warehouse.ID,
		Code:            warehouse.Code,
		Name:            warehouse.Name,
	}
}
