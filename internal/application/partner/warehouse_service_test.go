package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

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

func TestWarehouseServiceCreate(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()

	t.Run("first warehouse becomes the default", func(t *testing.T) {
		repo := newMemWarehouseRepo()
		svc := NewWarehouseService(repo, zap.NewNop())

		created, err := svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
			Code: "main", Name: "Main warehouse", Type: "main",
		})
		require.NoError(t, err)
		assert.Equal(t, "MAIN", created.Code)
		assert.True(t, created.IsDefault)
	})

	t.Run("later warehouses keep the existing default", func(t *testing.T) {
		repo := newMemWarehouseRepo()
		svc := NewWarehouseService(repo, zap.NewNop())

		_, err := svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
			Code: "MAIN", Name: "Main warehouse", Type: "main",
		})
		require.NoError(t, err)

		second, err := svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
			Code: "SHOP", Name: "Shop floor", Type: "pos",
		})
		require.NoError(t, err)
		assert.False(t, second.IsDefault)
	})

	t.Run("rejects a duplicate code", func(t *testing.T) {
		repo := newMemWarehouseRepo()
		svc := NewWarehouseService(repo, zap.NewNop())

		_, err := svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
			Code: "MAIN", Name: "Main warehouse", Type: "main",
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
			Code: "MAIN", Name: "Another", Type: "pos",
		})
		assert.True(t, shared.IsDomainErrorWithCode(err, "DUPLICATE_CODE"))
	})
}

func TestWarehouseServiceSetDefault(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()
	repo := newMemWarehouseRepo()
	svc := NewWarehouseService(repo, zap.NewNop())

	first, err := svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
		Code: "MAIN", Name: "Main warehouse", Type: "main",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
		Code: "SHOP", Name: "Shop floor", Type: "pos",
	})
	require.NoError(t, err)

	promoted, err := svc.SetDefault(ctx, enterpriseID, second.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	demoted, err := svc.Get(ctx, enterpriseID, first.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsDefault)
}

func TestWarehouseServiceSetStatus(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()
	repo := newMemWarehouseRepo()
	svc := NewWarehouseService(repo, zap.NewNop())

	created, err := svc.Create(ctx, enterpriseID, CreateWarehouseRequest{
		Code: "MAIN", Name: "Main warehouse", Type: "main",
	})
	require.NoError(t, err)

	disabled, err := svc.SetStatus(ctx, enterpriseID, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, string(partner.WarehouseStatusInactive), disabled.Status)

	_, err = svc.SetDefault(ctx, enterpriseID, created.ID)
	assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_STATE"))
}
