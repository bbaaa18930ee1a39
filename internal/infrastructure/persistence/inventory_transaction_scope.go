package persistence

import (
	"context"

	"gorm.io/gorm"

	appinventory "github.com/gescom/backend/internal/application/inventory"
	"github.com/gescom/backend/internal/domain/inventory"
)

// GormInventoryTransactionScope implements the inventory
// TransactionScope using GORM transactions.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

type gormInventoryRepositories struct {
	tx *gorm.DB
}

// InventoryItems returns the inventory item repository scoped to the current transaction
func (r *gormInventoryRepositories) InventoryItems() inventory.ItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

// Movements returns the movement repository scoped to the current transaction
func (r *gormInventoryRepositories) Movements() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

// Ensure GormInventoryTransactionScope implements TransactionScope
var _ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)

// Ensure gormInventoryRepositories implements TransactionalRepositories
var _ appinventory.TransactionalRepositories = (*gormInventoryRepositories)(nil)
