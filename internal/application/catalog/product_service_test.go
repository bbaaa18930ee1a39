package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/gescom/backend/internal/domain/shared"
)

type memProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

func (r *memProductRepo) FindByIDForEnterprise(_ context.Context, enterpriseID, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok || product.EnterpriseID != enterpriseID {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

func (r *memProductRepo) FindByIDs(_ context.Context, enterpriseID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, id := range ids {
		if product, ok := r.products[id]; ok && product.EnterpriseID == enterpriseID {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (r *memProductRepo) FindByCode(_ context.Context, enterpriseID uuid.UUID, code string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.EnterpriseID == enterpriseID && p.Code == code {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range r.products {
		if p.EnterpriseID == enterpriseID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ExistsByCode(_ context.Context, enterpriseID uuid.UUID, code string) (bool, error) {
	for _, p := range r.products {
		if p.EnterpriseID == enterpriseID && p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()

	t.Run("creates with prices and uppercased code", func(t *testing.T) {
		svc := NewProductService(newMemProductRepo(), zap.NewNop())

		created, err := svc.Create(ctx, enterpriseID, CreateProductRequest{
			Code:      "sku-1",
			Name:      "Widget",
			CostPrice: decimal.NewFromInt(40),
			SalePrice: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
		assert.Equal(t, "SKU-1", created.Code)
		assert.True(t, created.SalePrice.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects a duplicate code", func(t *testing.T) {
		svc := NewProductService(newMemProductRepo(), zap.NewNop())

		_, err := svc.Create(ctx, enterpriseID, CreateProductRequest{Code: "SKU-1", Name: "Widget"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, enterpriseID, CreateProductRequest{Code: "SKU-1", Name: "Other"})
		assert.True(t, shared.IsDomainErrorWithCode(err, "DUPLICATE_CODE"))
	})
}

func TestProductServiceUpdatePrices(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()
	svc := NewProductService(newMemProductRepo(), zap.NewNop())

	created, err := svc.Create(ctx, enterpriseID, CreateProductRequest{Code: "SKU-1", Name: "Widget"})
	require.NoError(t, err)

	updated, err := svc.UpdatePrices(ctx, enterpriseID, created.ID, UpdatePricesRequest{
		CostPrice: decimal.NewFromInt(45),
		SalePrice: decimal.NewFromInt(110),
	})
	require.NoError(t, err)
	assert.True(t, updated.SalePrice.Equal(decimal.NewFromInt(110)))
}

func TestProductServiceDiscontinue(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()
	svc := NewProductService(newMemProductRepo(), zap.NewNop())

	created, err := svc.Create(ctx, enterpriseID, CreateProductRequest{Code: "SKU-1", Name: "Widget"})
	require.NoError(t, err)

	discontinued, err := svc.Discontinue(ctx, enterpriseID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(catalog.ProductStatusDiscontinued), discontinued.Status)

	_, err = svc.Discontinue(ctx, enterpriseID, created.ID)
	assert.Error(t, err)
}
