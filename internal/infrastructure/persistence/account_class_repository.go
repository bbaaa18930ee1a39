package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormAccountClassRepository implements AccountClassRepository using GORM
type GormAccountClassRepository struct {
	db *gorm.DB
}

// NewGormAccountClassRepository creates a new GormAccountClassRepository
func NewGormAccountClassRepository(db *gorm.DB) *GormAccountClassRepository {
	return &GormAccountClassRepository{db: db}
}

// FindByID finds an account class by its ID
func (r *GormAccountClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.AccountClass, error) {
	var class accounting.AccountClass
	if err := r.db.WithContext(ctx).First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

// FindByCode finds an account class by its code within an enterprise
func (r *GormAccountClassRepository) FindByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (*accounting.AccountClass, error) {
	var class accounting.AccountClass
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND code = ?", enterpriseID, code).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

// FindAllForEnterprise finds all account classes for an enterprise
func (r *GormAccountClassRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]accounting.AccountClass, error) {
	var classes []accounting.AccountClass
	query := applyFilter(
		r.db.WithContext(ctx).Model(&accounting.AccountClass{}).Where("enterprise_id = ?", enterpriseID),
		filter, map[string]bool{"code": true, "name": true, "created_at": true}, "code ASC",
	)

	if err := query.Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// Save creates or updates an account class
func (r *GormAccountClassRepository) Save(ctx context.Context, class *accounting.AccountClass) error {
	return r.db.WithContext(ctx).Save(class).Error
}

// Ensure GormAccountClassRepository implements AccountClassRepository
var _ accounting.AccountClassRepository = (*GormAccountClassRepository)(nil)
