package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

// WarehouseResolver maps a POS to the warehouse its sales draw stock
// from. Resolution order: the POS mapping if it points at an active
// warehouse, then the enterprise default active warehouse. A failed
// resolution is a configuration error, never a silent fallback to an
// arbitrary warehouse.
type WarehouseResolver struct {
	posConfigs partner.POSWarehouseConfigRepository
	warehouses partner.WarehouseRepository
}

// NewWarehouseResolver creates a new WarehouseResolver
func NewWarehouseResolver(
	posConfigs partner.POSWarehouseConfigRepository,
	warehouses partner.WarehouseRepository,
) *WarehouseResolver {
	return &WarehouseResolver{posConfigs: posConfigs, warehouses: warehouses}
}

// ResolveForPOS returns the operational warehouse for a POS
func (r *WarehouseResolver) ResolveForPOS(ctx context.Context, enterpriseID, posID uuid.UUID) (*partner.Warehouse, error) {
	config, err := r.posConfigs.FindByPOS(ctx, enterpriseID, posID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	if config != nil {
		warehouse, err := r.warehouses.FindByIDForEnterprise(ctx, enterpriseID, config.WarehouseID)
		if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		if warehouse != nil && warehouse.IsActive() {
			return warehouse, nil
		}
		// Mapped warehouse is missing or inactive; fall through to the default
	}

	warehouse, err := r.warehouses.FindDefault(ctx, enterpriseID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError(shared.ErrCodeConfigurationMissing,
				"No operational warehouse configured for this point of sale")
		}
		return nil, err
	}

	return warehouse, nil
}

// ResolveMain returns the enterprise's main warehouse, falling back to
// the default active warehouse when no main warehouse exists
func (r *WarehouseResolver) ResolveMain(ctx context.Context, enterpriseID uuid.UUID) (*partner.Warehouse, error) {
	mains, err := r.warehouses.FindByType(ctx, enterpriseID, partner.WarehouseTypeMain)
	if err != nil {
		return nil, err
	}
	if len(mains) > 0 {
		return &mains[0], nil
	}

	warehouse, err := r.warehouses.FindDefault(ctx, enterpriseID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError(shared.ErrCodeConfigurationMissing,
				"No main warehouse configured for this enterprise")
		}
		return nil, err
	}

	return warehouse, nil
}
