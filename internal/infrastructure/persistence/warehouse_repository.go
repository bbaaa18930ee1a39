package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

var warehouseOrderColumns = map[string]bool{
	"code":       true,
	"name":       true,
	"type":       true,
	"created_at": true,
}

// GormWarehouseRepository implements WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// FindByID finds a warehouse by its ID
func (r *GormWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Warehouse, error) {
	var warehouse partner.Warehouse
	if err := r.db.WithContext(ctx).First(&warehouse, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &warehouse, nil
}

// FindByIDForEnterprise finds a warehouse by ID within an enterprise
func (r *GormWarehouseRepository) FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*partner.Warehouse, error) {
	var warehouse partner.Warehouse
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND id = ?", enterpriseID, id).
		First(&warehouse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &warehouse, nil
}

// FindByCode finds a warehouse by its code within an enterprise
func (r *GormWarehouseRepository) FindByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (*partner.Warehouse, error) {
	var warehouse partner.Warehouse
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND code = ?", enterpriseID, strings.ToUpper(code)).
		First(&warehouse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &warehouse, nil
}

// FindAllForEnterprise finds all warehouses for an enterprise
func (r *GormWarehouseRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]partner.Warehouse, error) {
	var warehouses []partner.Warehouse
	query := applyFilter(
		r.db.WithContext(ctx).Model(&partner.Warehouse{}).Where("enterprise_id = ?", enterpriseID),
		filter, warehouseOrderColumns, "is_default DESC, name ASC",
	)

	if err := query.Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

// FindByType finds active warehouses of the given type for an enterprise
func (r *GormWarehouseRepository) FindByType(ctx context.Context, enterpriseID uuid.UUID, warehouseType partner.WarehouseType) ([]partner.Warehouse, error) {
	var warehouses []partner.Warehouse
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND type = ? AND status = ?",
			enterpriseID, warehouseType, partner.WarehouseStatusActive).
		Order("is_default DESC, created_at ASC").
		Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

// FindDefault finds the default active warehouse for an enterprise
func (r *GormWarehouseRepository) FindDefault(ctx context.Context, enterpriseID uuid.UUID) (*partner.Warehouse, error) {
	var warehouse partner.Warehouse
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND is_default = ? AND status = ?",
			enterpriseID, true, partner.WarehouseStatusActive).
		First(&warehouse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &warehouse, nil
}

// ExistsByCode checks if a warehouse with the given code exists in the enterprise
func (r *GormWarehouseRepository) ExistsByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Warehouse{}).
		Where("enterprise_id = ? AND code = ?", enterpriseID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a warehouse
func (r *GormWarehouseRepository) Save(ctx context.Context, warehouse *partner.Warehouse) error {
	return r.db.WithContext(ctx).Save(warehouse).Error
}

// ClearDefault clears the default flag for all warehouses in an enterprise
func (r *GormWarehouseRepository) ClearDefault(ctx context.Context, enterpriseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&partner.Warehouse{}).
		Where("enterprise_id = ? AND is_default = ?", enterpriseID, true).
		Update("is_default", false).Error
}

// Ensure GormWarehouseRepository implements WarehouseRepository
var _ partner.WarehouseRepository = (*GormWarehouseRepository)(nil)
