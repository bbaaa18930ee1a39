package accounting

import (
	"strings"
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountNature classifies what an account class represents
type AccountNature string

const (
	NatureAsset     AccountNature = "asset"
	NatureLiability AccountNature = "liability"
	NatureMixed     AccountNature = "mixed"
	NatureCharge    AccountNature = "charge"
	NatureProduct   AccountNature = "product"
)

// AccountDocument is the financial statement an account class reports on
type AccountDocument string

const (
	DocumentBalance AccountDocument = "balance"
	DocumentIncome  AccountDocument = "income"
)

// AccountClass groups accounts by their top-level chart code.
// The code is unique per enterprise.
type AccountClass struct {
	shared.EnterpriseAggregateRoot
	Code     string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_account_class_enterprise_code,priority:2"`
	Name     string          `gorm:"type:varchar(200);not null"`
	Nature   AccountNature   `gorm:"type:varchar(20);not null"`
	Document AccountDocument `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (AccountClass) TableName() string {
	return "account_classes"
}

// NewAccountClass creates a new account class
func NewAccountClass(enterpriseID uuid.UUID, code, name string, nature AccountNature, document AccountDocument) (*AccountClass, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Account class code cannot be empty")
	}
	if len(code) > 10 {
		return nil, shared.NewDomainError("INVALID_CODE", "Account class code cannot exceed 10 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account class name cannot be empty")
	}
	if err := validateNature(nature); err != nil {
		return nil, err
	}
	if err := validateDocument(document); err != nil {
		return nil, err
	}

	return &AccountClass{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		Code:                    code,
		Name:                    name,
		Nature:                  nature,
		Document:                document,
	}, nil
}

func validateNature(n AccountNature) error {
	switch n {
	case NatureAsset, NatureLiability, NatureMixed, NatureCharge, NatureProduct:
		return nil
	default:
		return shared.NewDomainError("INVALID_NATURE", "Invalid account nature")
	}
}

func validateDocument(d AccountDocument) error {
	switch d {
	case DocumentBalance, DocumentIncome:
		return nil
	default:
		return shared.NewDomainError("INVALID_DOCUMENT", "Invalid account document")
	}
}

// Account is a postable account within the chart of accounts.
// Its number is unique per enterprise through the class link.
type Account struct {
	shared.EnterpriseAggregateRoot
	Number  string    `gorm:"type:varchar(20);not null;index"`
	Name    string    `gorm:"type:varchar(200);not null"`
	ClassID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a new account under the given class
func NewAccount(enterpriseID, classID uuid.UUID, number, name string) (*Account, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Account number cannot be empty")
	}
	if len(number) > 20 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Account number cannot exceed 20 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if classID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASS", "Account class reference cannot be empty")
	}

	return &Account{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		Number:                  number,
		Name:                    name,
		ClassID:                 classID,
	}, nil
}

// Rename changes the account name
func (a *Account) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}

	a.Name = name
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}
