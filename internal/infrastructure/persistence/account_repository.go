package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Account, error) {
	var account accounting.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByNumber finds an account by its number within an enterprise
func (r *GormAccountRepository) FindByNumber(ctx context.Context, enterpriseID uuid.UUID, number string) (*accounting.Account, error) {
	var account accounting.Account
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND number = ?", enterpriseID, number).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindAllForEnterprise finds all accounts for an enterprise
func (r *GormAccountRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]accounting.Account, error) {
	var accounts []accounting.Account
	query := applyFilter(
		r.db.WithContext(ctx).Model(&accounting.Account{}).Where("enterprise_id = ?", enterpriseID),
		filter, map[string]bool{"number": true, "name": true, "created_at": true}, "number ASC",
	)

	if err := query.Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, account *accounting.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// Ensure GormAccountRepository implements AccountRepository
var _ accounting.AccountRepository = (*GormAccountRepository)(nil)
