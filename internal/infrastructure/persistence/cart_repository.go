package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/sales"
	"github.com/gescom/backend/internal/domain/shared"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByID finds a cart with lines and payments by ID
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Cart, error) {
	var cart sales.Cart
	if err := r.preloaded(ctx).First(&cart, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindByIDForEnterprise finds a cart by ID within an enterprise
func (r *GormCartRepository) FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*sales.Cart, error) {
	var cart sales.Cart
	if err := r.preloaded(ctx).
		Where("enterprise_id = ? AND id = ?", enterpriseID, id).
		First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindAllForEnterprise finds carts for an enterprise. The filter's
// Filters map supports "status" and "pos_id" keys.
func (r *GormCartRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]sales.Cart, error) {
	query := r.preloaded(ctx).Where("enterprise_id = ?", enterpriseID)

	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if posID, ok := filter.Filters["pos_id"]; ok {
		query = query.Where("pos_id = ?", posID)
	}

	query = applyFilter(query, filter,
		map[string]bool{"status": true, "created_at": true, "updated_at": true}, "created_at DESC")

	var carts []sales.Cart
	if err := query.Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// Save persists the cart with its lines and payments. Lines removed
// from the aggregate are deleted from the store; payments are
// append-only and never deleted.
func (r *GormCartRepository) Save(ctx context.Context, cart *sales.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error; err != nil {
			return err
		}

		query := tx.Where("cart_id = ?", cart.ID)
		if len(cart.Lines) > 0 {
			keep := make([]uuid.UUID, 0, len(cart.Lines))
			for _, line := range cart.Lines {
				keep = append(keep, line.ID)
			}
			query = query.Where("id NOT IN ?", keep)
		}

		return query.Delete(&sales.CartLine{}).Error
	})
}

func (r *GormCartRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&sales.Cart{}).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_lines.line_number ASC")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payments.sequence ASC")
		})
}

// Ensure GormCartRepository implements CartRepository
var _ sales.CartRepository = (*GormCartRepository)(nil)
