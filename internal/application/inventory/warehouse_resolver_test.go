package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

type memPOSConfigRepo struct {
	configs map[uuid.UUID]*partner.POSWarehouseConfig
}

func newMemPOSConfigRepo() *memPOSConfigRepo {
	return &memPOSConfigRepo{configs: make(map[uuid.UUID]*partner.POSWarehouseConfig)}
}

func (r *memPOSConfigRepo) FindByPOS(_ context.Context, _, posID uuid.UUID) (*partner.POSWarehouseConfig, error) {
	config, ok := r.configs[posID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return config, nil
}

func (r *memPOSConfigRepo) Save(_ context.Context, config *partner.POSWarehouseConfig) error {
	r.configs[config.POSID] = config
	return nil
}

type memWarehouseRepo struct {
	warehouses map[uuid.UUID]*partner.Warehouse
}

func newMemWarehouseRepo() *memWarehouseRepo {
	return &memWarehouseRepo{warehouses: make(map[uuid.UUID]*partner.Warehouse)}
}

func (r *memWarehouseRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Warehouse, error) {
	warehouse, ok := r.warehouses[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return warehouse, nil
}

func (r *memWarehouseRepo) FindByIDForEnterprise(_ context.Context, enterpriseID, id uuid.UUID) (*partner.Warehouse, error) {
	warehouse, ok := r.warehouses[id]
	if !ok || warehouse.EnterpriseID != enterpriseID {
		return nil, shared.ErrNotFound
	}
	return warehouse, nil
}

func (r *memWarehouseRepo) FindByCode(_ context.Context, enterpriseID uuid.UUID, code string) (*partner.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.Code == code {
			return w, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memWarehouseRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]partner.Warehouse, error) {
	var out []partner.Warehouse
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memWarehouseRepo) FindByType(_ context.Context, enterpriseID uuid.UUID, warehouseType partner.WarehouseType) ([]partner.Warehouse, error) {
	var out []partner.Warehouse
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.Type == warehouseType && w.IsActive() {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memWarehouseRepo) FindDefault(_ context.Context, enterpriseID uuid.UUID) (*partner.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.IsDefault && w.IsActive() {
			return w, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memWarehouseRepo) ExistsByCode(_ context.Context, enterpriseID uuid.UUID, code string) (bool, error) {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID && w.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memWarehouseRepo) Save(_ context.Context, warehouse *partner.Warehouse) error {
	r.warehouses[warehouse.ID] = warehouse
	return nil
}

func (r *memWarehouseRepo) ClearDefault(_ context.Context, enterpriseID uuid.UUID) error {
	for _, w := range r.warehouses {
		if w.EnterpriseID == enterpriseID {
			w.IsDefault = false
		}
	}
	return nil
}

func TestWarehouseResolverResolveForPOS(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()
	posID := uuid.New()

	t.Run("uses the POS mapping when active", func(t *testing.T) {
		warehouses := newMemWarehouseRepo()
		posConfigs := newMemPOSConfigRepo()

		mapped, err := partner.NewPOSWarehouse(enterpriseID, "SHOP", "Shop floor")
		require.NoError(t, err)
		require.NoError(t, warehouses.Save(ctx, mapped))

		mapping, err := partner.NewPOSWarehouseConfig(enterpriseID, posID, mapped.ID)
		require.NoError(t, err)
		require.NoError(t, posConfigs.Save(ctx, mapping))

		resolver := NewWarehouseResolver(posConfigs, warehouses)
		resolved, err := resolver.ResolveForPOS(ctx, enterpriseID, posID)
		require.NoError(t, err)
		assert.Equal(t, mapped.ID, resolved.ID)
	})

	t.Run("falls back to the default when the mapping is inactive", func(t *testing.T) {
		warehouses := newMemWarehouseRepo()
		posConfigs := newMemPOSConfigRepo()

		mapped, err := partner.NewPOSWarehouse(enterpriseID, "SHOP", "Shop floor")
		require.NoError(t, err)
		require.NoError(t, warehouses.Save(ctx, mapped))

		fallback, err := partner.NewMainWarehouse(enterpriseID, "MAIN", "Main warehouse")
		require.NoError(t, err)
		fallback.SetDefault(true)
		require.NoError(t, warehouses.Save(ctx, fallback))

		mapping, err := partner.NewPOSWarehouseConfig(enterpriseID, posID, mapped.ID)
		require.NoError(t, err)
		require.NoError(t, posConfigs.Save(ctx, mapping))
		require.NoError(t, mapped.Disable())

		resolver := NewWarehouseResolver(posConfigs, warehouses)
		resolved, err := resolver.ResolveForPOS(ctx, enterpriseID, posID)
		require.NoError(t, err)
		assert.Equal(t, fallback.ID, resolved.ID)
	})

	t.Run("falls back to the default when no mapping exists", func(t *testing.T) {
		warehouses := newMemWarehouseRepo()
		fallback, err := partner.NewMainWarehouse(enterpriseID, "MAIN", "Main warehouse")
		require.NoError(t, err)
		fallback.SetDefault(true)
		require.NoError(t, warehouses.Save(ctx, fallback))

		resolver := NewWarehouseResolver(newMemPOSConfigRepo(), warehouses)
		resolved, err := resolver.ResolveForPOS(ctx, enterpriseID, posID)
		require.NoError(t, err)
		assert.Equal(t, fallback.ID, resolved.ID)
	})

	t.Run("fails when nothing can be resolved", func(t *testing.T) {
		resolver := NewWarehouseResolver(newMemPOSConfigRepo(), newMemWarehouseRepo())
		_, err := resolver.ResolveForPOS(ctx, enterpriseID, posID)
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeConfigurationMissing))
	})
}

func TestWarehouseResolverResolveMain(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()

	t.Run("prefers an active main warehouse", func(t *testing.T) {
		warehouses := newMemWarehouseRepo()
		main, err := partner.NewMainWarehouse(enterpriseID, "MAIN", "Main warehouse")
		require.NoError(t, err)
		require.NoError(t, warehouses.Save(ctx, main))

		resolver := NewWarehouseResolver(newMemPOSConfigRepo(), warehouses)
		resolved, err := resolver.ResolveMain(ctx, enterpriseID)
		require.NoError(t, err)
		assert.Equal(t, main.ID, resolved.ID)
	})

	t.Run("falls back to the default warehouse", func(t *testing.T) {
		warehouses := newMemWarehouseRepo()
		fallback, err := partner.NewPOSWarehouse(enterpriseID, "SHOP", "Shop floor")
		require.NoError(t, err)
		fallback.SetDefault(true)
		require.NoError(t, warehouses.Save(ctx, fallback))

		resolver := NewWarehouseResolver(newMemPOSConfigRepo(), warehouses)
		resolved, err := resolver.ResolveMain(ctx, enterpriseID)
		require.NoError(t, err)
		assert.Equal(t, fallback.ID, resolved.ID)
	})

	t.Run("fails without any candidate", func(t *testing.T) {
		resolver := NewWarehouseResolver(newMemPOSConfigRepo(), newMemWarehouseRepo())
		_, err := resolver.ResolveMain(ctx, enterpriseID)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeConfigurationMissing))
	})
}
