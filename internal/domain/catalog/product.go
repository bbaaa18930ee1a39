package catalog

import (
	"strings"
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product represents a sellable product in the catalog.
// CostPrice is the reference purchase cost; the moving-average cost per
// warehouse lives on the inventory row, not here.
type Product struct {
	shared.EnterpriseAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_enterprise_code,priority:2"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Reference purchase cost
	SalePrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(enterpriseID uuid.UUID, code, name string) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	product := &Product{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		Code:                    strings.ToUpper(code),
		Name:                    name,
		CostPrice:               decimal.Zero,
		SalePrice:               decimal.Zero,
		Status:                  ProductStatusActive,
	}

	return product, nil
}

// NewProductWithPrices creates a new product with prices
func NewProductWithPrices(
	enterpriseID uuid.UUID,
	code, name string,
	costPrice, salePrice valueobject.Money,
) (*Product, error) {
	product, err := NewProduct(enterpriseID, code, name)
	if err != nil {
		return nil, err
	}

	if err := product.SetPrices(costPrice, salePrice); err != nil {
		return nil, err
	}

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrices sets both cost and sale prices
func (p *Product) SetPrices(costPrice, salePrice valueobject.Money) error {
	if costPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	if salePrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	p.CostPrice = costPrice.Amount()
	p.SalePrice = salePrice.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Discontinue marks the product as discontinued
func (p *Product) Discontinue() error {
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("ALREADY_DISCONTINUED", "Product is already discontinued")
	}

	p.Status = ProductStatusDiscontinued
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
