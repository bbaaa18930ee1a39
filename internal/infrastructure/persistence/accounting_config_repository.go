package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormAccountingConfigRepository implements AccountingConfigRepository using GORM
type GormAccountingConfigRepository struct {
	db *gorm.DB
}

// NewGormAccountingConfigRepository creates a new GormAccountingConfigRepository
func NewGormAccountingConfigRepository(db *gorm.DB) *GormAccountingConfigRepository {
	return &GormAccountingConfigRepository{db: db}
}

// FindByPOS finds the configuration for a specific POS
func (r *GormAccountingConfigRepository) FindByPOS(ctx context.Context, enterpriseID, posID uuid.UUID) (*accounting.AccountingConfig, error) {
	var config accounting.AccountingConfig
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

// FindEnterpriseDefault finds the enterprise-level fallback row
func (r *GormAccountingConfigRepository) FindEnterpriseDefault(ctx context.Context, enterpriseID uuid.UUID) (*accounting.AccountingConfig, error) {
	var config accounting.AccountingConfig
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND pos_id IS NULL", enterpriseID).
		First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &config, nil
}

// Save creates or updates a configuration
func (r *GormAccountingConfigRepository) Save(ctx context.Context, config *accounting.AccountingConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}

// Ensure GormAccountingConfigRepository implements AccountingConfigRepository
var _ accounting.AccountingConfigRepository = (*GormAccountingConfigRepository)(nil)
