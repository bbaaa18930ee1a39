package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescom/backend/internal/domain/accounting"
)

func TestGormJournalRepositoryExistsByTypeAndReference(t *testing.T) {
	t.Run("reports an existing idempotence key", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormJournalRepository(db)

		enterpriseID := uuid.New()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "journals" WHERE enterprise_id = \$1 AND type = \$2 AND reference = \$3`).
			WithArgs(enterpriseID, "sale", "CART-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByTypeAndReference(context.Background(), enterpriseID, accounting.JournalTypeSale, "CART-1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("reports an absent key", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormJournalRepository(db)

		enterpriseID := uuid.New()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "journals"`).
			WithArgs(enterpriseID, "payment", "CART-1-P2").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByTypeAndReference(context.Background(), enterpriseID, accounting.JournalTypePayment, "CART-1-P2")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
