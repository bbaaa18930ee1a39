package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormMovementRepository implements MovementRepository using GORM.
// Movements are append-only; there is no update or delete path.
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Save appends a movement record
func (r *GormMovementRepository) Save(ctx context.Context, movement *inventory.Movement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByReference finds all movements sharing a reference, in insertion order
func (r *GormMovementRepository) FindByReference(ctx context.Context, enterpriseID uuid.UUID, reference string) ([]inventory.Movement, error) {
	var movements []inventory.Movement
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND reference = ?", enterpriseID, reference).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByProduct finds movements for a product, most recent first
func (r *GormMovementRepository) FindByProduct(ctx context.Context, enterpriseID, productID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	var movements []inventory.Movement
	query := applyFilter(
		r.db.WithContext(ctx).Model(&inventory.Movement{}).
			Where("enterprise_id = ? AND product_id = ?", enterpriseID, productID),
		filter, map[string]bool{"created_at": true}, "created_at DESC",
	)

	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindAllForEnterprise finds movements for an enterprise, most recent first
func (r *GormMovementRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	var movements []inventory.Movement
	query := applyFilter(
		r.db.WithContext(ctx).Model(&inventory.Movement{}).Where("enterprise_id = ?", enterpriseID),
		filter, map[string]bool{"created_at": true}, "created_at DESC",
	)

	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Ensure GormMovementRepository implements MovementRepository
var _ inventory.MovementRepository = (*GormMovementRepository)(nil)
