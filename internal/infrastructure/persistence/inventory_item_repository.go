package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormInventoryItemRepository implements ItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// FindByID finds an inventory row by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByWarehouseAndProduct finds the row for a warehouse-product pair
func (r *GormInventoryItemRepository) FindByWarehouseAndProduct(ctx context.Context, enterpriseID, warehouseID, productID uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND warehouse_id = ? AND product_id = ?", enterpriseID, warehouseID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByWarehouse finds all rows for a warehouse
func (r *GormInventoryItemRepository) FindByWarehouse(ctx context.Context, enterpriseID, warehouseID uuid.UUID, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryItem{}).
			Where("enterprise_id = ? AND warehouse_id = ?", enterpriseID, warehouseID),
		filter, map[string]bool{"quantity": true, "created_at": true, "updated_at": true}, "created_at ASC",
	)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindAllForEnterprise finds all rows for an enterprise
func (r *GormInventoryItemRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := applyFilter(
		r.db.WithContext(ctx).Model(&inventory.InventoryItem{}).Where("enterprise_id = ?", enterpriseID),
		filter, map[string]bool{"quantity": true, "created_at": true, "updated_at": true}, "created_at ASC",
	)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an inventory row
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Ensure GormInventoryItemRepository implements ItemRepository
var _ inventory.ItemRepository = (*GormInventoryItemRepository)(nil)
