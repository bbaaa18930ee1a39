package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormPOSWarehouseConfigRepository implements POSWarehouseConfigRepository using GORM
type GormPOSWarehouseConfigRepository struct {
	db *gorm.DB
}

// NewGormPOSWarehouseConfigRepository creates a new GormPOSWarehouseConfigRepository
func NewGormPOSWarehouseConfigRepository(db *gorm.DB) *GormPOSWarehouseConfigRepository {
	return &GormPOSWarehouseConfigRepository{db: db}
}

// FindByPOS finds the warehouse mapping for a POS
func (r *GormPOSWarehouseConfigRepository) FindByPOS(ctx context.Context, enterpriseID, posID uuid.UUID) (*partner.POSWarehouseConfig, error) {
	var config partner.POSWarehouseConfig
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND pos_id = ?", enterpriseID, posID).
		First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &config, nil
}

// Save creates or updates a mapping
func (r *GormPOSWarehouseConfigRepository) Save(ctx context.Context, config *partner.POSWarehouseConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}

// Ensure GormPOSWarehouseConfigRepository implements POSWarehouseConfigRepository
var _ partner.POSWarehouseConfigRepository = (*GormPOSWarehouseConfigRepository)(nil)
