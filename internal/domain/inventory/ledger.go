package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Demand is one (product, quantity) requirement against a warehouse
type Demand struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// Shortage describes one product whose demand exceeds current stock
type Shortage struct {
	ProductID uuid.UUID       `json:"product_id"`
	Needed    decimal.Decimal `json:"needed"`
	Available decimal.Decimal `json:"available"`
}

// InsufficientStockError carries the full shortage list for a multi-line check
type InsufficientStockError struct {
	Shortages []Shortage
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("product %s needs %s, has %s",
			s.ProductID, s.Needed.String(), s.Available.String()))
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// Code returns the domain error code for handler mapping
func (e *InsufficientStockError) Code() string {
	return shared.ErrCodeInsufficientStock
}

// Ledger is the domain service for inventory quantity changes. It keeps
// the row update and its movement record together so every change is
// reconciled (quantity_after = quantity_before + signed quantity).
//
// A Ledger instance is bound to one set of repositories; callers running
// inside a transaction construct it from the transactional repositories.
type Ledger struct {
	items     ItemRepository
	movements MovementRepository
}

// NewLedger creates a ledger over the given repositories
func NewLedger(items ItemRepository, movements MovementRepository) *Ledger {
	return &Ledger{items: items, movements: movements}
}

// CheckAvailability verifies each demand against the warehouse rows and
// returns the full shortage list. It never short-circuits on the first
// shortage; missing rows count as zero availability.
func (l *Ledger) CheckAvailability(ctx context.Context, enterpriseID, warehouseID uuid.UUID, demands []Demand) ([]Shortage, error) {
	var shortages []Shortage
	for _, d := range demands {
		available := decimal.Zero
		item, err := l.items.FindByWarehouseAndProduct(ctx, enterpriseID, warehouseID, d.ProductID)
		if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		if item != nil {
			available = item.Quantity
		}
		if available.LessThan(d.Quantity) {
			shortages = append(shortages, Shortage{
				ProductID: d.ProductID,
				Needed:    d.Quantity,
				Available: available,
			})
		}
	}
	return shortages, nil
}

// ApplyOut removes quantity from the warehouse row and records an OUT
// movement. The row must exist and cover the quantity. The average cost
// is not changed on outbound.
func (l *Ledger) ApplyOut(
	ctx context.Context,
	enterpriseID, warehouseID, productID uuid.UUID,
	quantity, unitCost decimal.Decimal,
	reference string,
	userID *uuid.UUID,
) (*Movement, error) {
	return l.applyOut(ctx, enterpriseID, warehouseID, nil, productID, quantity, unitCost, reference, userID)
}

// ApplyIn adds quantity to the warehouse row, creating it at zero if it
// does not exist, and updates the weighted-average cost.
func (l *Ledger) ApplyIn(
	ctx context.Context,
	enterpriseID, warehouseID, productID uuid.UUID,
	quantity, unitCost decimal.Decimal,
	reference string,
	userID *uuid.UUID,
) (*Movement, error) {
	return l.applyIn(ctx, enterpriseID, warehouseID, nil, productID, quantity, unitCost, reference, userID)
}

// ApplyTransfer moves quantity between warehouses at the source row's
// current average cost. Both movements share the reference and are
// written in order; the caller supplies the enclosing transaction.
func (l *Ledger) ApplyTransfer(
	ctx context.Context,
	enterpriseID, sourceID, destinationID, productID uuid.UUID,
	quantity decimal.Decimal,
	reference string,
	userID *uuid.UUID,
) (*Movement, *Movement, error) {
	if sourceID == destinationID {
		return nil, nil, shared.NewDomainError("INVALID_TRANSFER", "Source and destination warehouses must differ")
	}

	sourceItem, err := l.items.FindByWarehouseAndProduct(ctx, enterpriseID, sourceID, productID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, nil, &InsufficientStockError{Shortages: []Shortage{
				{ProductID: productID, Needed: quantity, Available: decimal.Zero},
			}}
		}
		return nil, nil, err
	}
	transferCost := sourceItem.UnitCost

	out, err := l.applyOut(ctx, enterpriseID, sourceID, &destinationID, productID, quantity, transferCost, reference, userID)
	if err != nil {
		return nil, nil, err
	}

	in, err := l.applyIn(ctx, enterpriseID, destinationID, &sourceID, productID, quantity, transferCost, reference, userID)
	if err != nil {
		return nil, nil, err
	}

	return out, in, nil
}

func (l *Ledger) applyOut(
	ctx context.Context,
	enterpriseID, warehouseID uuid.UUID,
	counterpartID *uuid.UUID,
	productID uuid.UUID,
	quantity, unitCost decimal.Decimal,
	reference string,
	userID *uuid.UUID,
) (*Movement, error) {
	item, err := l.items.FindByWarehouseAndProduct(ctx, enterpriseID, warehouseID, productID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, &InsufficientStockError{Shortages: []Shortage{
				{ProductID: productID, Needed: quantity, Available: decimal.Zero},
			}}
		}
		return nil, err
	}

	before := item.Quantity
	if err := item.Issue(quantity); err != nil {
		if shared.IsDomainErrorWithCode(err, shared.ErrCodeInsufficientStock) {
			return nil, &InsufficientStockError{Shortages: []Shortage{
				{ProductID: productID, Needed: quantity, Available: before},
			}}
		}
		return nil, err
	}

	movement, err := NewMovement(enterpriseID, warehouseID, counterpartID, productID,
		MovementOut, quantity, unitCost, before, item.Quantity, reference, userID)
	if err != nil {
		return nil, err
	}

	if err := l.items.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := l.movements.Save(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

func (l *Ledger) applyIn(
	ctx context.Context,
	enterpriseID, warehouseID uuid.UUID,
	counterpartID *uuid.UUID,
	productID uuid.UUID,
	quantity, unitCost decimal.Decimal,
	reference string,
	userID *uuid.UUID,
) (*Movement, error) {
	item, err := l.items.FindByWarehouseAndProduct(ctx, enterpriseID, warehouseID, productID)
	if err != nil {
		if err != shared.ErrNotFound {
			return nil, err
		}
		item, err = NewInventoryItem(enterpriseID, warehouseID, productID)
		if err != nil {
			return nil, err
		}
	}

	before := item.Quantity
	if err := item.Receive(quantity, unitCost); err != nil {
		return nil, err
	}

	movement, err := NewMovement(enterpriseID, warehouseID, counterpartID, productID,
		MovementIn, quantity, unitCost, before, item.Quantity, reference, userID)
	if err != nil {
		return nil, err
	}

	if err := l.items.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := l.movements.Save(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}
