package inventory

import (
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem represents stock of one product at one warehouse.
// It is the aggregate root for inventory operations. The composite
// identifier is WarehouseID + ProductID.
type InventoryItem struct {
	shared.EnterpriseAggregateRoot
	WarehouseID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_item_warehouse_product,priority:1"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_item_warehouse_product,priority:2"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitCost       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Moving weighted average cost
	MinQuantity    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Minimum stock threshold for alerts
	LastMovementAt *time.Time      `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a new inventory row for a warehouse-product combination
func NewInventoryItem(enterpriseID, warehouseID, productID uuid.UUID) (*InventoryItem, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}

	return &InventoryItem{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		WarehouseID:             warehouseID,
		ProductID:               productID,
		Quantity:                decimal.Zero,
		UnitCost:                decimal.Zero,
		MinQuantity:             decimal.Zero,
	}, nil
}

// Receive increases the quantity and recalculates the moving weighted
// average cost. Only inbound movements change the average.
func (i *InventoryItem) Receive(quantity, unitCost decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	if i.Quantity.IsZero() {
		i.UnitCost = unitCost
	} else {
		totalValue := i.Quantity.Mul(i.UnitCost).Add(quantity.Mul(unitCost))
		totalQuantity := i.Quantity.Add(quantity)
		i.UnitCost = totalValue.Div(totalQuantity).Round(4)
	}

	i.Quantity = i.Quantity.Add(quantity)
	i.touchMovement()

	return nil
}

// Issue decreases the quantity. The average cost is unchanged on outbound.
func (i *InventoryItem) Issue(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if i.Quantity.LessThan(quantity) {
		return shared.NewDomainError(shared.ErrCodeInsufficientStock, "Insufficient stock available")
	}

	i.Quantity = i.Quantity.Sub(quantity)
	i.touchMovement()

	if i.IsBelowMinimum() {
		i.AddDomainEvent(NewStockBelowThresholdEvent(i))
	}

	return nil
}

func (i *InventoryItem) touchMovement() {
	now := time.Now()
	i.LastMovementAt = &now
	i.UpdatedAt = now
	i.IncrementVersion()
}

// SetMinQuantity sets the minimum stock threshold for alerts
func (i *InventoryItem) SetMinQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Minimum quantity cannot be negative")
	}

	i.MinQuantity = quantity
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// CanFulfill returns true if the current quantity covers the requested quantity
func (i *InventoryItem) CanFulfill(quantity decimal.Decimal) bool {
	return i.Quantity.GreaterThanOrEqual(quantity)
}

// IsBelowMinimum returns true if quantity is below the minimum threshold
func (i *InventoryItem) IsBelowMinimum() bool {
	return i.MinQuantity.GreaterThan(decimal.Zero) && i.Quantity.LessThan(i.MinQuantity)
}

// TotalValue returns the stock value (quantity * average unit cost)
func (i *InventoryItem) TotalValue() valueobject.Money {
	return valueobject.NewMoneyUSD(i.Quantity.Mul(i.UnitCost))
}
