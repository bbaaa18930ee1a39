package accounting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescom/backend/internal/domain/shared"
)

func TestNewJournal(t *testing.T) {
	enterpriseID := uuid.New()

	t.Run("creates journal with valid input", func(t *testing.T) {
		journal, err := NewJournal(enterpriseID, JournalTypeSale, "CART-42", "Sale of cart 42", time.Now(), decimal.NewFromInt(200))
		require.NoError(t, err)
		require.NotNil(t, journal)

		assert.Equal(t, JournalTypeSale, journal.Type)
		assert.Equal(t, "CART-42", journal.Reference)
		assert.Empty(t, journal.Entries)
	})

	t.Run("defaults zero date to now", func(t *testing.T) {
		journal, err := NewJournal(enterpriseID, JournalTypeStock, "CART-42", "", time.Time{}, decimal.Zero)
		require.NoError(t, err)
		assert.False(t, journal.Date.IsZero())
	})

	t.Run("fails with empty reference", func(t *testing.T) {
		_, err := NewJournal(enterpriseID, JournalTypeSale, "", "", time.Now(), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		_, err := NewJournal(enterpriseID, JournalType("transfer"), "REF-1", "", time.Now(), decimal.Zero)
		assert.Error(t, err)
	})
}

func TestJournalAddEntries(t *testing.T) {
	enterpriseID := uuid.New()
	accountA := uuid.New()
	accountB := uuid.New()

	newJournal := func(t *testing.T) *Journal {
		journal, err := NewJournal(enterpriseID, JournalTypeSale, "CART-1", "", time.Now(), decimal.NewFromInt(100))
		require.NoError(t, err)
		return journal
	}

	t.Run("assigns 1-based order indexes in insertion order", func(t *testing.T) {
		journal := newJournal(t)
		require.NoError(t, journal.AddCredit(accountA, decimal.NewFromInt(100), "revenue"))
		require.NoError(t, journal.AddDebit(accountB, decimal.NewFromInt(100), "client"))

		require.Len(t, journal.Entries, 2)
		assert.Equal(t, 1, journal.Entries[0].OrderIndex)
		assert.Equal(t, 2, journal.Entries[1].OrderIndex)
		assert.True(t, journal.Entries[0].Credit.Equal(decimal.NewFromInt(100)))
		assert.True(t, journal.Entries[1].Debit.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects zero-amount entry", func(t *testing.T) {
		journal := newJournal(t)
		err := journal.AddDebit(accountA, decimal.Zero, "")
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDegenerateEntry))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		journal := newJournal(t)
		err := journal.AddCredit(accountA, decimal.NewFromInt(-5), "")
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDegenerateEntry))
	})

	t.Run("rejects nil account", func(t *testing.T) {
		journal := newJournal(t)
		assert.Error(t, journal.AddDebit(uuid.Nil, decimal.NewFromInt(10), ""))
	})
}

func TestJournalValidate(t *testing.T) {
	enterpriseID := uuid.New()
	accountA := uuid.New()
	accountB := uuid.New()

	t.Run("balanced journal passes", func(t *testing.T) {
		journal, _ := NewJournal(enterpriseID, JournalTypeSale, "CART-1", "", time.Now(), decimal.NewFromInt(200))
		require.NoError(t, journal.AddCredit(accountA, decimal.NewFromInt(200), ""))
		require.NoError(t, journal.AddDebit(accountB, decimal.NewFromInt(200), ""))

		assert.NoError(t, journal.Validate())
		assert.True(t, journal.DebitTotal().Equal(journal.CreditTotal()))
	})

	t.Run("unbalanced journal fails", func(t *testing.T) {
		journal, _ := NewJournal(enterpriseID, JournalTypeSale, "CART-2", "", time.Now(), decimal.NewFromInt(200))
		require.NoError(t, journal.AddCredit(accountA, decimal.NewFromInt(200), ""))
		require.NoError(t, journal.AddDebit(accountB, decimal.NewFromInt(199), ""))

		err := journal.Validate()
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeUnbalancedJournal))
		assert.Contains(t, err.Error(), "debits 199")
	})

	t.Run("imbalance within tolerance passes", func(t *testing.T) {
		journal, _ := NewJournal(enterpriseID, JournalTypeSale, "CART-3", "", time.Now(), decimal.Zero)
		credit, _ := decimal.NewFromString("100.0000005")
		require.NoError(t, journal.AddCredit(accountA, credit, ""))
		require.NoError(t, journal.AddDebit(accountB, decimal.NewFromInt(100), ""))

		assert.NoError(t, journal.Validate())
	})

	t.Run("empty journal fails", func(t *testing.T) {
		journal, _ := NewJournal(enterpriseID, JournalTypeSale, "CART-4", "", time.Now(), decimal.Zero)
		err := journal.Validate()
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeDegenerateEntry))
	})
}

func TestAccountingConfigRoles(t *testing.T) {
	enterpriseID := uuid.New()

	t.Run("set and read roles", func(t *testing.T) {
		config := NewAccountingConfig(enterpriseID, nil)
		salesAccount := uuid.New()
		clientAccount := uuid.New()

		require.NoError(t, config.SetRole(RoleSalesRevenue, salesAccount))
		require.NoError(t, config.SetRole(RoleClientReceivable, clientAccount))

		assert.Equal(t, salesAccount, *config.AccountForRole(RoleSalesRevenue))
		assert.Equal(t, clientAccount, *config.AccountForRole(RoleClientReceivable))
		assert.Nil(t, config.AccountForRole(RoleCOGS))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		config := NewAccountingConfig(enterpriseID, nil)
		assert.Error(t, config.SetRole(ConfigRole("petty_cash"), uuid.New()))
		assert.Nil(t, config.AccountForRole(ConfigRole("petty_cash")))
	})

	t.Run("rejects nil account", func(t *testing.T) {
		config := NewAccountingConfig(enterpriseID, nil)
		assert.Error(t, config.SetRole(RoleCash, uuid.Nil))
	})

	t.Run("missing roles reports only unmapped", func(t *testing.T) {
		config := NewAccountingConfig(enterpriseID, nil)
		require.NoError(t, config.SetRole(RoleSalesRevenue, uuid.New()))

		missing := config.MissingRoles([]ConfigRole{RoleSalesRevenue, RoleClientReceivable, RoleCOGS})
		assert.ElementsMatch(t, []ConfigRole{RoleClientReceivable, RoleCOGS}, missing)
	})
}

func TestNewAccountClass(t *testing.T) {
	enterpriseID := uuid.New()

	t.Run("creates class", func(t *testing.T) {
		class, err := NewAccountClass(enterpriseID, "7", "Revenue", NatureProduct, DocumentIncome)
		require.NoError(t, err)
		assert.Equal(t, "7", class.Code)
		assert.Equal(t, NatureProduct, class.Nature)
	})

	t.Run("fails with invalid nature", func(t *testing.T) {
		_, err := NewAccountClass(enterpriseID, "7", "Revenue", AccountNature("equity"), DocumentIncome)
		assert.Error(t, err)
	})

	t.Run("fails with invalid document", func(t *testing.T) {
		_, err := NewAccountClass(enterpriseID, "7", "Revenue", NatureProduct, AccountDocument("cashflow"))
		assert.Error(t, err)
	})
}

func TestNewAccount(t *testing.T) {
	enterpriseID := uuid.New()
	classID := uuid.New()

	t.Run("creates account", func(t *testing.T) {
		account, err := NewAccount(enterpriseID, classID, "701", "Sales of goods")
		require.NoError(t, err)
		assert.Equal(t, "701", account.Number)
		assert.Equal(t, classID, account.ClassID)
	})

	t.Run("fails with empty number", func(t *testing.T) {
		_, err := NewAccount(enterpriseID, classID, "  ", "Sales")
		assert.Error(t, err)
	})

	t.Run("fails with nil class", func(t *testing.T) {
		_, err := NewAccount(enterpriseID, uuid.Nil, "701", "Sales")
		assert.Error(t, err)
	})
}
