package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormJournalRepository implements JournalRepository using GORM
type GormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GormJournalRepository
func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// FindByID finds a journal with its entries by ID
func (r *GormJournalRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Journal, error) {
	var journal accounting.Journal
	if err := r.db.WithContext(ctx).
		Preload("Entries", orderEntries).
		First(&journal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &journal, nil
}

// FindByTypeAndReference finds a journal by its idempotence key
func (r *GormJournalRepository) FindByTypeAndReference(ctx context.Context, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (*accounting.Journal, error) {
	var journal accounting.Journal
	if err := r.db.WithContext(ctx).
		Preload("Entries", orderEntries).
		Where("enterprise_id = ? AND type = ? AND reference = ?", enterpriseID, journalType, reference).
		First(&journal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &journal, nil
}

// ExistsByTypeAndReference probes the idempotence key without loading entries
func (r *GormJournalRepository) ExistsByTypeAndReference(ctx context.Context, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&accounting.Journal{}).
		Where("enterprise_id = ? AND type = ? AND reference = ?", enterpriseID, journalType, reference).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAllForEnterprise finds journals for an enterprise. The filter's
// Filters map supports "type" and "reference" keys.
func (r *GormJournalRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]accounting.Journal, error) {
	query := r.db.WithContext(ctx).
		Model(&accounting.Journal{}).
		Preload("Entries", orderEntries).
		Where("enterprise_id = ?", enterpriseID)

	if journalType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", journalType)
	}
	if reference, ok := filter.Filters["reference"]; ok {
		query = query.Where("reference = ?", reference)
	}

	query = applyFilter(query, filter,
		map[string]bool{"date": true, "reference": true, "created_at": true}, "created_at DESC")

	var journals []accounting.Journal
	if err := query.Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

// Save persists a journal header and all its entries. A violation of
// the (type, reference) unique index surfaces as DUPLICATE_JOURNAL so
// a raced duplicate fails the same way as a probed one.
func (r *GormJournalRepository) Save(ctx context.Context, journal *accounting.Journal) error {
	err := r.db.WithContext(ctx).Save(journal).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewDomainError(shared.ErrCodeDuplicateJournal,
			"Journal "+string(journal.Type)+"/"+journal.Reference+" already exists")
	}
	return err
}

func orderEntries(db *gorm.DB) *gorm.DB {
	return db.Order("journal_entries.order_index ASC")
}

// Ensure GormJournalRepository implements JournalRepository
var _ accounting.JournalRepository = (*GormJournalRepository)(nil)
