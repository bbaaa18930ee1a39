package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

// EntryDraft is one debit or credit posting within a journal draft.
// Exactly one of Debit and Credit must be positive.
type EntryDraft struct {
	AccountID uuid.UUID
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Label     string
}

// JournalDraft is a journal waiting to be validated and persisted
type JournalDraft struct {
	EnterpriseID uuid.UUID
	Type         accounting.JournalType
	Reference    string
	Label        string
	Date         time.Time
	Amount       decimal.Decimal
	RecordedBy   *uuid.UUID
	Entries      []EntryDraft
}

// JournalWriter persists balanced journals. It is stateless and takes
// the repository per call so callers can hand it the transactional
// repository of an enclosing scope.
type JournalWriter struct{}

// NewJournalWriter creates a new JournalWriter
func NewJournalWriter() *JournalWriter {
	return &JournalWriter{}
}

// Write validates and persists a journal. The (type, reference) pair is
// probed first; an existing journal is refused as a duplicate. Balance
// and entry-shape violations abort before anything is written.
func (w *JournalWriter) Write(ctx context.Context, journals accounting.JournalRepository, draft JournalDraft) (*accounting.Journal, error) {
	exists, err := journals.ExistsByTypeAndReference(ctx, draft.EnterpriseID, draft.Type, draft.Reference)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.ErrCodeDuplicateJournal,
			fmt.Sprintf("Journal %s/%s already exists", draft.Type, draft.Reference))
	}

	journal, err := accounting.NewJournal(draft.EnterpriseID, draft.Type, draft.Reference,
		draft.Label, draft.Date, draft.Amount)
	if err != nil {
		return nil, err
	}
	if draft.RecordedBy != nil {
		journal.SetRecordedBy(*draft.RecordedBy)
	}

	for _, entry := range draft.Entries {
		if entry.Debit.IsNegative() || entry.Credit.IsNegative() {
			return nil, shared.NewDomainError(shared.ErrCodeDegenerateEntry, "Entry amounts cannot be negative")
		}
		if entry.Debit.IsPositive() == entry.Credit.IsPositive() {
			return nil, shared.NewDomainError(shared.ErrCodeDegenerateEntry,
				"Entry must carry exactly one of debit or credit")
		}
		if entry.Debit.IsPositive() {
			err = journal.AddDebit(entry.AccountID, entry.Debit, entry.Label)
		} else {
			err = journal.AddCredit(entry.AccountID, entry.Credit, entry.Label)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := journal.Validate(); err != nil {
		return nil, err
	}

	if err := journals.Save(ctx, journal); err != nil {
		return nil, err
	}

	return journal, nil
}

// Exists probes the idempotence key without loading the journal
func (w *JournalWriter) Exists(ctx context.Context, journals accounting.JournalRepository, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (bool, error) {
	return journals.ExistsByTypeAndReference(ctx, enterpriseID, journalType, reference)
}
