package catalog

import (
	"context"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDForEnterprise finds a product by ID within an enterprise
	FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs within an enterprise
	FindByIDs(ctx context.Context, enterpriseID uuid.UUID, ids []uuid.UUID) ([]Product, error)

	// FindByCode finds a product by its code within an enterprise
	FindByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (*Product, error)

	// FindAllForEnterprise finds all products for an enterprise
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]Product, error)

	// ExistsByCode checks if a product with the given code exists in the enterprise
	ExistsByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}
