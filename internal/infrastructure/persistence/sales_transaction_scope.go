package persistence

import (
	"context"

	"gorm.io/gorm"

	appsales "github.com/gescom/backend/internal/application/sales"
	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/sales"
)

// GormSalesTransactionScope implements the sales TransactionScope using
// GORM transactions. A sale touches the cart, both journals and the
// stock tables; all of it commits or none of it does.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesRepositories{tx: tx})
	})
}

type gormSalesRepositories struct {
	tx *gorm.DB
}

// Carts returns the cart repository scoped to the current transaction
func (r *gormSalesRepositories) Carts() sales.CartRepository {
	return NewGormCartRepository(r.tx)
}

// Journals returns the journal repository scoped to the current transaction
func (r *gormSalesRepositories) Journals() accounting.JournalRepository {
	return NewGormJournalRepository(r.tx)
}

// InventoryItems returns the inventory item repository scoped to the current transaction
func (r *gormSalesRepositories) InventoryItems() inventory.ItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

// Movements returns the movement repository scoped to the current transaction
func (r *gormSalesRepositories) Movements() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

// Ensure GormSalesTransactionScope implements TransactionScope
var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)

// Ensure gormSalesRepositories implements TransactionalRepositories
var _ appsales.TransactionalRepositories = (*gormSalesRepositories)(nil)
