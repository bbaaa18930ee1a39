package inventory

import (
	"context"

	"github.com/gescom/backend/internal/domain/inventory"
)

// TransactionalRepositories exposes the inventory repositories bound to
// one transaction so a stock change and its movement commit together.
type TransactionalRepositories interface {
	InventoryItems() inventory.ItemRepository
	Movements() inventory.MovementRepository
}

// TransactionScope runs a function within a single database transaction.
// If fn returns an error the transaction rolls back; otherwise it commits.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// NoOpTransactionScope passes through to fixed repositories without
// transaction semantics. Used in tests.
type NoOpTransactionScope struct {
	ItemRepo     inventory.ItemRepository
	MovementRepo inventory.MovementRepository
}

// NewNoOpTransactionScope creates a no-op scope over the given repositories
func NewNoOpTransactionScope(items inventory.ItemRepository, movements inventory.MovementRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{ItemRepo: items, MovementRepo: movements}
}

// Execute runs fn against the fixed repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// InventoryItems returns the inventory item repository
func (s *NoOpTransactionScope) InventoryItems() inventory.ItemRepository { return s.ItemRepo }

// Movements returns the movement repository
func (s *NoOpTransactionScope) Movements() inventory.MovementRepository { return s.MovementRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
