package sales

import (
	"context"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/sales"
)

// TransactionalRepositories exposes the repositories bound to one
// transaction. Everything a finalization touches (cart, journals,
// inventory rows, movements) goes through the same handle so the
// commit is all-or-nothing.
type TransactionalRepositories interface {
	Carts() sales.CartRepository
	Journals() accounting.JournalRepository
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
	CartRepo     sales.CartRepository
	JournalRepo  accounting.JournalRepository
	ItemRepo     inventory.ItemRepository
	MovementRepo inventory.MovementRepository
}

// NewNoOpTransactionScope creates a no-op scope over the given repositories
func NewNoOpTransactionScope(
	carts sales.CartRepository,
	journals accounting.JournalRepository,
	items inventory.ItemRepository,
	movements inventory.MovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		CartRepo:     carts,
		JournalRepo:  journals,
		ItemRepo:     items,
		MovementRepo: movements,
	}
}

// Execute runs fn against the fixed repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Carts returns the cart repository
func (s *NoOpTransactionScope) Carts() sales.CartRepository { return s.CartRepo }

// Journals returns the journal repository
func (s *NoOpTransactionScope) Journals() accounting.JournalRepository { return s.JournalRepo }

// InventoryItems returns the inventory item repository
func (s *NoOpTransactionScope) InventoryItems() inventory.ItemRepository { return s.ItemRepo }

// Movements returns the movement repository
func (s *NoOpTransactionScope) Movements() inventory.MovementRepository { return s.MovementRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
