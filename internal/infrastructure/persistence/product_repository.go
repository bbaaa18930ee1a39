package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/gescom/backend/internal/domain/shared"
)

var productOrderColumns = map[string]bool{
	"code":       true,
	"name":       true,
	"created_at": true,
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDForEnterprise finds a product by ID within an enterprise
func (r *GormProductRepository) FindByIDForEnterprise(ctx context.Context, enterpriseID, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND id = ?", enterpriseID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs finds multiple products by their IDs within an enterprise
func (r *GormProductRepository) FindByIDs(ctx context.Context, enterpriseID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND id IN ?", enterpriseID, ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCode finds a product by its code within an enterprise
func (r *GormProductRepository) FindByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("enterprise_id = ? AND code = ?", enterpriseID, strings.ToUpper(code)).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAllForEnterprise finds all products for an enterprise
func (r *GormProductRepository) FindAllForEnterprise(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Product{}).Where("enterprise_id = ?", enterpriseID),
		filter, productOrderColumns, "code ASC",
	)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExistsByCode checks if a product with the given code exists in the enterprise
func (r *GormProductRepository) ExistsByCode(ctx context.Context, enterpriseID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("enterprise_id = ? AND code = ?", enterpriseID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
