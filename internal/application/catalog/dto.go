package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gescom/backend/internal/domain/catalog"
)

// CreateProductRequest is the payload for creating a product
type CreateProductRequest struct {
	Code        string          `json:"code" binding:"required,max=50"`
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// UpdatePricesRequest changes a product's reference prices
type UpdatePricesRequest struct {
	CostPrice decimal.Decimal `json:"cost_price" binding:"required"`
	SalePrice decimal.Decimal `json:"sale_price" binding:"required"`
}

// ProductResponse is the API view of a product
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToProductResponse converts a product to its API view
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Code:        product.Code,
		Name:        product.Name,
		Description: product.Description,
		CostPrice:   product.CostPrice,
		SalePrice:   product.SalePrice,
		Status:      string(product.Status),
		CreatedAt:   product.CreatedAt,
	}
}
