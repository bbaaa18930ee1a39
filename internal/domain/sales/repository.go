package sales

import (
	"context"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CartRepository defines persistence for carts with their lines and payments
type CartRepository interface {
	// FindByID finds a cart with lines and payments by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// FindByIDForEnterprise finds a cart by ID within an enterprise
	FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*Cart, error)

	// FindAllForEnterprise finds carts for an enterprise
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]Cart, error)

	// Save persists the cart together with its lines and payments.
	// Removed lines are deleted from the store.
	Save(ctx context.Context, cart *Cart) error
}
