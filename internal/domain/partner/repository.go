package partner

import (
	"context"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EnterpriseRepository defines the interface for enterprise persistence
type EnterpriseRepository interface {
	// FindByID finds an enterprise by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Enterprise, error)

	// FindAll finds all enterprises matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Enterprise, error)

	// Save creates or updates an enterprise
	Save(ctx context.Context, enterprise *Enterprise) error
}

// POSRepository defines the interface for point-of-sale persistence
type POSRepository interface {
	// FindByID finds a POS by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*POS, error)

	// FindByIDForEnterprise finds a POS by ID within an enterprise
	FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*POS, error)

	// FindAllForEnterprise finds all points of sale for an enterprise
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]POS, error)

	// Save creates or updates a POS
	Save(ctx context.Context, pos *POS) error
}

// POSWarehouseConfigRepository defines persistence for POS warehouse mappings
type POSWarehouseConfigRepository interface {
	// FindByPOS finds the warehouse mapping for a POS
	FindByPOS(ctx context.Context, enterpriseID, posID uuid.UUID) (*POSWarehouseConfig, error)

	// Save creates or updates a mapping
	Save(ctx context.Context, config *POSWarehouseConfig) error
}

// WarehouseRepository defines the interface for warehouse persistence
type WarehouseRepository interface {
	// FindByID finds a warehouse by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)

	// FindByIDForEnterprise finds a warehouse by ID within an enterprise
	FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*Warehouse, error)

	// FindByCode finds a warehouse by its code within an enterprise
	FindByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (*Warehouse, error)

	// FindAllForEnterprise finds all warehouses for an enterprise
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]Warehouse, error)

	// FindByType finds active warehouses of the given type for an enterprise
	FindByType(ctx context.Context, enterpriseID uuid.UUID, warehouseType WarehouseType) ([]Warehouse, error)

	// FindDefault finds the default active warehouse for an enterprise
	FindDefault(ctx context.Context, enterpriseID uuid.UUID) (*Warehouse, error)

	// ExistsByCode checks if a warehouse with the given code exists in the enterprise
	ExistsByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (bool, error)

	// Save creates or updates a warehouse
	Save(ctx context.Context, warehouse *Warehouse) error

	// ClearDefault clears the default flag for all warehouses in an enterprise
	ClearDefault(ctx context.Context, enterpriseID uuid.UUID) error
}
