package accounting

import (
	"context"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountClassRepository defines persistence for account classes
type AccountClassRepository interface {
	// FindByID finds an account class by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*AccountClass, error)

	// FindByCode finds an account class by its code within an enterprise
	FindByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (*AccountClass, error)

	// FindAllForEnterprise finds all account classes for an enterprise
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]AccountClass, error)

	// Save creates or updates an account class
	Save(ctx context.Context, class *AccountClass) error
}

// AccountRepository defines persistence for accounts
type AccountRepository interface {
	// FindByID finds an account by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByNumber finds an account by its number within an enterprise
	FindByNumber(ctx context.Context, enterpriseID uuid.UUID, number string) (*Account, error)

	// FindAllForEnterprise finds all accounts for an enterprise
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]Account, error)

	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error
}

// AccountingConfigRepository defines persistence for accounting configurations
type AccountingConfigRepository interface {
	// FindByPOS finds the configuration for a specific POS
	FindByPOS(ctx context.Context, enterpriseID, posID uuid.UUID) (*AccountingConfig, error)

	// FindEnterpriseDefault finds the enterprise-level fallback configuration
	// (the row with no POS reference)
	FindEnterpriseDefault(ctx context.Context, enterpriseID uuid.UUID) (*AccountingConfig, error)

	// Save creates or updates a configuration
	Save(ctx context.Context, config *AccountingConfig) error
}

// JournalRepository defines persistence for journals and their entries
type JournalRepository interface {
	// FindByID finds a journal with its entries by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Journal, error)

	// FindByTypeAndReference finds a journal by its idempotence key
	FindByTypeAndReference(ctx context.Context, enterpriseID uuid.UUID, journalType JournalType, reference string) (*Journal, error)

	// ExistsByTypeAndReference probes the idempotence key without loading entries
	ExistsByTypeAndReference(ctx context.Context, enterpriseID uuid.UUID, journalType JournalType, reference string) (bool, error)

	// FindAllForEnterprise finds journals for an enterprise, optionally
	// filtered by type and reference via the filter's Filters map
	FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]Journal, error)

	// Save persists a journal header and all its entries
	Save(ctx context.Context, journal *Journal) error
}
