package partner

import (
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/shared/valueobject"
)

// Enterprise represents a business entity operating one or more points of sale.
// All business records are scoped to exactly one enterprise.
type Enterprise struct {
	shared.BaseAggregateRoot
	Name     string               `gorm:"type:varchar(200);not null"`
	Currency valueobject.Currency `gorm:"type:varchar(3);not null;default:'USD'"`
}

// TableName returns the table name for GORM
func (Enterprise) TableName() string {
	return "enterprises"
}

// NewEnterprise creates a new enterprise
func NewEnterprise(name string, currency valueobject.Currency) (*Enterprise, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Enterprise name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Enterprise name cannot exceed 200 characters")
	}
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency must be a 3-letter code")
	}

	return &Enterprise{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Currency:          currency,
	}, nil
}

// Rename changes the enterprise name
func (e *Enterprise) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Enterprise name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Enterprise name cannot exceed 200 characters")
	}

	e.Name = name
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}
