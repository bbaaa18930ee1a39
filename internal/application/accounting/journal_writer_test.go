package accounting

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

type memJournalRepo struct {
	journals []*accounting.Journal
}

func (r *memJournalRepo) FindByID(_ context.Context, id uuid.UUID) (*accounting.Journal, error) {
	for _, j := range r.journals {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memJournalRepo) FindByTypeAndReference(_ context.Context, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (*accounting.Journal, error) {
	for _, j := range r.journals {
		if j.EnterpriseID == enterpriseID && j.Type == journalType && j.Reference == reference {
			return j, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memJournalRepo) ExistsByTypeAndReference(ctx context.Context, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (bool, error) {
	_, err := r.FindByTypeAndReference(ctx, enterpriseID, journalType, reference)
	if err == shared.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *memJournalRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]accounting.Journal, error) {
	var out []accounting.Journal
	for _, j := range r.journals {
		if j.EnterpriseID == enterpriseID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *memJournalRepo) Save(_ context.Context, journal *accounting.Journal) error {
	r.journals = append(r.journals, journal)
	return nil
}

func balancedDraft(enterpriseID uuid.UUID, reference string) JournalDraft {
	debitAccount := uuid.New()
	creditAccount := uuid.New()
	return JournalDraft{
		EnterpriseID: enterpriseID,
		Type:         accounting.JournalTypeSale,
		Reference:    reference,
		Label:        "Sale " + reference,
		Amount:       decimal.NewFromInt(100),
		Entries: []EntryDraft{
			{AccountID: creditAccount, Credit: decimal.NewFromInt(100)},
			{AccountID: debitAccount, Debit: decimal.NewFromInt(100)},
		},
	}
}

func TestJournalWriterWrite(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()
	writer := NewJournalWriter()

	t.Run("persists a balanced journal with ordered entries", func(t *testing.T) {
		repo := &memJournalRepo{}
		journal, err := writer.Write(ctx, repo, balancedDraft(enterpriseID, "CART-1"))
		require.NoError(t, err)

		require.Len(t, repo.journals, 1)
		require.Len(t, journal.Entries, 2)
		assert.Equal(t, 1, journal.Entries[0].OrderIndex)
		assert.Equal(t, 2, journal.Entries[1].OrderIndex)
		assert.True(t, journal.DebitTotal().Equal(journal.CreditTotal()))
	})

	t.Run("refuses a duplicate reference", func(t *testing.T) {
		repo := &memJournalRepo{}
		_, err := writer.Write(ctx, repo, balancedDraft(enterpriseID, "CART-2"))
		require.NoError(t, err)

		_, err = writer.Write(ctx, repo, balancedDraft(enterpriseID, "CART-2"))
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDuplicateJournal))
		assert.Len(t, repo.journals, 1)
	})

	t.Run("same reference under another type is allowed", func(t *testing.T) {
		repo := &memJournalRepo{}
		_, err := writer.Write(ctx, repo, balancedDraft(enterpriseID, "CART-3"))
		require.NoError(t, err)

		draft := balancedDraft(enterpriseID, "CART-3")
		draft.Type = accounting.JournalTypeStock
		_, err = writer.Write(ctx, repo, draft)
		require.NoError(t, err)
		assert.Len(t, repo.journals, 2)
	})

	t.Run("rejects an unbalanced draft before saving", func(t *testing.T) {
		repo := &memJournalRepo{}
		draft := balancedDraft(enterpriseID, "CART-4")
		draft.Entries[1].Debit = decimal.NewFromInt(90)

		_, err := writer.Write(ctx, repo, draft)
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeUnbalancedJournal))
		assert.Empty(t, repo.journals)
	})

	t.Run("rejects an entry carrying both debit and credit", func(t *testing.T) {
		repo := &memJournalRepo{}
		draft := balancedDraft(enterpriseID, "CART-7")
		draft.Entries = []EntryDraft{
			{AccountID: uuid.New(), Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
			{AccountID: uuid.New(), Credit: decimal.NewFromInt(100)},
		}

		_, err := writer.Write(ctx, repo, draft)
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDegenerateEntry))
		assert.Empty(t, repo.journals)
	})

	t.Run("rejects a negative draft amount", func(t *testing.T) {
		repo := &memJournalRepo{}
		draft := balancedDraft(enterpriseID, "CART-8")
		draft.Entries[0].Credit = decimal.NewFromInt(-100)

		_, err := writer.Write(ctx, repo, draft)
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDegenerateEntry))
		assert.Empty(t, repo.journals)
	})

	t.Run("rejects a degenerate entry", func(t *testing.T) {
		repo := &memJournalRepo{}
		draft := balancedDraft(enterpriseID, "CART-5")
		draft.Entries[0] = EntryDraft{AccountID: uuid.New()}

		_, err := writer.Write(ctx, repo, draft)
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDegenerateEntry))
		assert.Empty(t, repo.journals)
	})

	t.Run("rejects an empty draft", func(t *testing.T) {
		repo := &memJournalRepo{}
		draft := balancedDraft(enterpriseID, "CART-6")
		draft.Entries = nil

		_, err := writer.Write(ctx, repo, draft)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDegenerateEntry))
	})
}

func TestJournalWriterExists(t *testing.T) {
	ctx := context.Background()
	enterpriseID := uuid.New()
	writer := NewJournalWriter()
	repo := &memJournalRepo{}

	exists, err := writer.Exists(ctx, repo, enterpriseID, accounting.JournalTypeSale, "CART-9")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = writer.Write(ctx, repo, balancedDraft(enterpriseID, "CART-9"))
	require.NoError(t, err)

	exists, err = writer.Exists(ctx, repo, enterpriseID, accounting.JournalTypeSale, "CART-9")
	require.NoError(t, err)
	assert.True(t, exists)
}
