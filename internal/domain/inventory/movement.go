package inventory

import (
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDirection is the direction of a stock movement
type MovementDirection string

const (
	MovementIn  MovementDirection = "IN"
	MovementOut MovementDirection = "OUT"
)

// IsValid returns true if the direction is valid
func (d MovementDirection) IsValid() bool {
	return d == MovementIn || d == MovementOut
}

// Movement is an append-only record of one quantity change on an
// inventory row. Once created, movements are never modified; corrections
// are new movements. A warehouse transfer produces an OUT and an IN
// movement sharing the same reference, each carrying both warehouses.
type Movement struct {
	shared.BaseEntity
	EnterpriseID           uuid.UUID         `gorm:"type:uuid;not null;index:idx_movement_enterprise_time,priority:1"`
	SourceWarehouseID      *uuid.UUID        `gorm:"type:uuid;index"` // Set on OUT movements
	DestinationWarehouseID *uuid.UUID        `gorm:"type:uuid;index"` // Set on IN movements
	ProductID              uuid.UUID         `gorm:"type:uuid;not null;index"`
	Direction              MovementDirection `gorm:"type:varchar(10);not null"`
	Quantity               decimal.Decimal   `gorm:"type:decimal(18,4);not null"` // Always positive
	UnitCost               decimal.Decimal   `gorm:"type:decimal(18,4);not null"` // Cost per unit at movement time
	TotalCost              decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	QuantityBefore         decimal.Decimal   `gorm:"type:decimal(18,4);not null"` // Row quantity before this movement
	QuantityAfter          decimal.Decimal   `gorm:"type:decimal(18,4);not null"` // Row quantity after this movement
	Reference              string            `gorm:"type:varchar(100);not null;index"`
	RecordedBy             *uuid.UUID        `gorm:"type:uuid"`
	MovementDate           time.Time         `gorm:"type:timestamptz;not null;index:idx_movement_enterprise_time,priority:2"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "movements"
}

// NewMovement creates a movement record. warehouseID is the warehouse whose
// row this movement changes; counterpartID, when non-nil, is the other end
// of a transfer.
func NewMovement(
	enterpriseID uuid.UUID,
	warehouseID uuid.UUID,
	counterpartID *uuid.UUID,
	productID uuid.UUID,
	direction MovementDirection,
	quantity, unitCost, quantityBefore, quantityAfter decimal.Decimal,
	reference string,
	userID *uuid.UUID,
) (*Movement, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Invalid movement direction")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Movement reference cannot be empty")
	}

	m := &Movement{
		BaseEntity:     shared.NewBaseEntity(),
		EnterpriseID:   enterpriseID,
		ProductID:      productID,
		Direction:      direction,
		Quantity:       quantity,
		UnitCost:       unitCost,
		TotalCost:      quantity.Mul(unitCost),
		QuantityBefore: quantityBefore,
		QuantityAfter:  quantityAfter,
		Reference:      reference,
		RecordedBy:     userID,
		MovementDate:   time.Now(),
	}

	wh := warehouseID
	switch direction {
	case MovementOut:
		m.SourceWarehouseID = &wh
		m.DestinationWarehouseID = counterpartID
	case MovementIn:
		m.DestinationWarehouseID = &wh
		m.SourceWarehouseID = counterpartID
	}

	return m, nil
}

// WarehouseID returns the warehouse whose row this movement changed
func (m *Movement) WarehouseID() uuid.UUID {
	if m.Direction == MovementOut && m.SourceWarehouseID != nil {
		return *m.SourceWarehouseID
	}
	if m.DestinationWarehouseID != nil {
		return *m.DestinationWarehouseID
	}
	return uuid.Nil
}

// SignedQuantity returns the quantity with direction sign applied
func (m *Movement) SignedQuantity() decimal.Decimal {
	if m.Direction == MovementOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

// IsTransfer returns true when the movement is one leg of a warehouse transfer
func (m *Movement) IsTransfer() bool {
	return m.SourceWarehouseID != nil && m.DestinationWarehouseID != nil
}
