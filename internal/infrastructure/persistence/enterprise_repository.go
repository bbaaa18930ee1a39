package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormEnterpriseRepository implements EnterpriseRepository using GORM
type GormEnterpriseRepository struct {
	db *gorm.DB
}

// NewGormEnterpriseRepository creates a new GormEnterpriseRepository
func NewGormEnterpriseRepository(db *gorm.DB) *GormEnterpriseRepository {
	return &GormEnterpriseRepository{db: db}
}

// FindByID finds an enterprise by its ID
func (r *GormEnterpriseRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Enterprise, error) {
	var enterprise partner.Enterprise
	if err := r.db.WithContext(ctx).First(&enterprise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &enterprise, nil
}

// FindAll finds all enterprises matching the filter
func (r *GormEnterpriseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Enterprise, error) {
	var enterprises []partner.Enterprise
	query := applyFilter(
		r.db.WithContext(ctx).Model(&partner.Enterprise{}),
		filter, map[string]bool{"name": true, "created_at": true}, "name ASC",
	)

	if err := query.Find(&enterprises).Error; err != nil {
		return nil, err
	}
	return enterprises, nil
}

// Save creates or updates an enterprise
func (r *GormEnterpriseRepository) Save(ctx context.Context, enterprise *partner.Enterprise) error {
	return r.db.WithContext(ctx).Save(enterprise).Error
}

// Ensure GormEnterpriseRepository implements EnterpriseRepository
var _ partner.EnterpriseRepository = (*GormEnterpriseRepository)(nil)
