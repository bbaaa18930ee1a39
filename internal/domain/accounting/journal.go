package accounting

import (
	"fmt"
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalType is the semantic type of economic event a journal records
type JournalType string

const (
	JournalTypeSale     JournalType = "sale"
	JournalTypeStock    JournalType = "stock"
	JournalTypePayment  JournalType = "payment"
	JournalTypePurchase JournalType = "purchase"
	JournalTypeExpense  JournalType = "expense"
)

// balanceTolerance is the maximum accepted difference between debit and
// credit totals. All arithmetic is decimal; the tolerance only absorbs
// rounding introduced upstream.
var balanceTolerance = decimal.New(1, -6)

// Journal is a balanced set of accounting entries representing one
// economic event. The (Type, Reference) pair is the idempotence key and
// is enforced by a unique index.
type Journal struct {
	shared.EnterpriseAggregateRoot
	Type      JournalType     `gorm:"type:varchar(20);not null;uniqueIndex:idx_journal_type_reference,priority:1"`
	Reference string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_journal_type_reference,priority:2"`
	Label     string          `gorm:"type:varchar(200)"`
	Date      time.Time       `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Informational header amount
	Entries   []JournalEntry  `gorm:"foreignKey:JournalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Journal) TableName() string {
	return "journals"
}

// JournalEntry is a single debit or credit posting within a journal.
// Exactly one of Debit and Credit must be positive.
type JournalEntry struct {
	shared.BaseEntity
	JournalID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Debit      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Credit     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	OrderIndex int             `gorm:"not null"` // 1-based position within the journal
	Label      string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// NewJournal creates a journal header with no entries
func NewJournal(
	enterpriseID uuid.UUID,
	journalType JournalType,
	reference, label string,
	date time.Time,
	amount decimal.Decimal,
) (*Journal, error) {
	if err := validateJournalType(journalType); err != nil {
		return nil, err
	}
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Journal reference cannot be empty")
	}
	if len(reference) > 100 {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Journal reference cannot exceed 100 characters")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Journal{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		Type:                    journalType,
		Reference:               reference,
		Label:                   label,
		Date:                    date,
		Amount:                  amount,
		Entries:                 make([]JournalEntry, 0),
	}, nil
}

// AddDebit appends a debit entry to the journal
func (j *Journal) AddDebit(accountID uuid.UUID, amount decimal.Decimal, label string) error {
	return j.addEntry(accountID, amount, decimal.Zero, label)
}

// AddCredit appends a credit entry to the journal
func (j *Journal) AddCredit(accountID uuid.UUID, amount decimal.Decimal, label string) error {
	return j.addEntry(accountID, decimal.Zero, amount, label)
}

// addEntry validates and appends an entry with the next 1-based order index
func (j *Journal) addEntry(accountID uuid.UUID, debit, credit decimal.Decimal, label string) error {
	if accountID == uuid.Nil {
		return shared.NewDomainError("INVALID_ACCOUNT", "Entry account reference cannot be empty")
	}
	if debit.IsNegative() || credit.IsNegative() {
		return shared.NewDomainError(shared.ErrCodeDegenerateEntry, "Entry amounts cannot be negative")
	}
	if debit.IsPositive() == credit.IsPositive() {
		return shared.NewDomainError(shared.ErrCodeDegenerateEntry,
			"Entry must carry exactly one of debit or credit")
	}

	j.Entries = append(j.Entries, JournalEntry{
		BaseEntity: shared.NewBaseEntity(),
		JournalID:  j.ID,
		AccountID:  accountID,
		Debit:      debit,
		Credit:     credit,
		OrderIndex: len(j.Entries) + 1,
		Label:      label,
	})

	return nil
}

// DebitTotal returns the sum of all debit entries
func (j *Journal) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range j.Entries {
		total = total.Add(e.Debit)
	}
	return total
}

// CreditTotal returns the sum of all credit entries
func (j *Journal) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range j.Entries {
		total = total.Add(e.Credit)
	}
	return total
}

// Validate checks the journal is non-empty and balanced.
// An unbalanced journal is a programming error and must never be persisted.
func (j *Journal) Validate() error {
	if len(j.Entries) == 0 {
		return shared.NewDomainError(shared.ErrCodeDegenerateEntry, "Journal has no entries")
	}

	debit := j.DebitTotal()
	credit := j.CreditTotal()
	if debit.Sub(credit).Abs().GreaterThan(balanceTolerance) {
		return shared.NewDomainError(shared.ErrCodeUnbalancedJournal,
			fmt.Sprintf("Journal %s/%s is unbalanced: debits %s, credits %s",
				j.Type, j.Reference, debit.String(), credit.String()))
	}

	return nil
}

func validateJournalType(t JournalType) error {
	switch t {
	case JournalTypeSale, JournalTypeStock, JournalTypePayment, JournalTypePurchase, JournalTypeExpense:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Invalid journal type")
	}
}
