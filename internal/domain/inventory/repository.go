package inventory

import (
	"context"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemRepository defines persistence for inventory rows
type ItemRepository interface {
	// FindByID finds an inventory row by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindByWarehouseAndProduct finds the row for a warehouse-product pair.
	// Returns shared.ErrNotFound when no row exists.
	FindByWarehouseAndProduct(ctx context.Context, enterpriseID, warehouseID, productID uuid.UUID) (*InventoryItem, error)

	// FindByWarehouse finds all rows for a warehouse
	FindByWarehouse(ctx context.Context, enterpriseID, warehouseID uuid.UUID, filter shared.Filter) ([]InventoryItem, error)

	// FindAllForEnterprise finds all rows for an enterprise
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]InventoryItem, error)

	// Save creates or updates an inventory row
	Save(ctx context.Context, item *InventoryItem) error
}

// MovementRepository defines persistence for the append-only movement log
type MovementRepository interface {
	// Save appends a movement record
	Save(ctx context.Context, movement *Movement) error

	// FindByReference finds all movements sharing a reference, in insertion order
	FindByReference(ctx context.Context, enterpriseID uuid.UUID, reference string) ([]Movement, error)

	// FindByProduct finds movements for a product, most recent first
	FindByProduct(ctx context.Context, enterpriseID, productID uuid.UUID, filter shared.Filter) ([]Movement, error)

	// FindAllForEnterprise finds movements for an enterprise, most recent first
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]Movement, error)
}
