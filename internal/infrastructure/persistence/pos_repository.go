package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormPOSRepository implements POSRepository using GORM
type GormPOSRepository struct {
	db *gorm.DB
}

// NewGormPOSRepository creates a new GormPOSRepository
func NewGormPOSRepository(db *gorm.DB) *GormPOSRepository {
	return &GormPOSRepository{db: db}
}

// FindByID finds a POS by its ID
func (r *GormPOSRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.POS, error) {
	var pos partner.POS
	if err := r.db.WithContext(ctx).First(&pos, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pos, nil
}

// FindByIDForEnterprise finds a POS by ID within an enterprise
func (r *GormPOSRepository) FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*partner.POS, error) {
	var pos partner.POS
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND id = ?", enterpriseID, id).
		First(&pos).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pos, nil
}

// FindAllForEnterprise finds all points of sale for an enterprise
func (r *GormPOSRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]partner.POS, error) {
	var points []partner.POS
	query := applyFilter(
		r.db.WithContext(ctx).Model(&partner.POS{}).Where("enterprise_id = ?", enterpriseID),
		filter, map[string]bool{"name": true, "created_at": true}, "name ASC",
	)

	if err := query.Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// Save creates or updates a POS
func (r *GormPOSRepository) Save(ctx context.Context, pos *partner.POS) error {
	return r.db.WithContext(ctx).Save(pos).Error
}

// Ensure GormPOSRepository implements POSRepository
var _ partner.POSRepository = (*GormPOSRepository)(nil)
