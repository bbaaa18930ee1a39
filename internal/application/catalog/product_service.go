package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/shared/valueobject"
)

// ProductService manages the product catalog
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// Create creates a product with its reference prices
func (s *ProductService) Create(ctx context.Context, enterpriseID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.products.ExistsByCode(ctx, enterpriseID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A product with this code already exists")
	}

	product, err := catalog.NewProductWithPrices(enterpriseID, req.Code, req.Name,
		valueobject.NewMoneyUSD(req.CostPrice),
		valueobject.NewMoneyUSD(req.SalePrice))
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("code", product.Code))

	response := ToProductResponse(product)
	return &response, nil
}

// Get returns a product by ID
func (s *ProductService) Get(ctx context.Context, enterpriseID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByIDForEnterprise(ctx, enterpriseID, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List returns products for an enterprise
func (s *ProductService) List(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.products.FindAllForEnterprise(ctx, enterpriseID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses, nil
}

// UpdatePrices changes a product's reference cost and sale price
func (s *ProductService) UpdatePrices(ctx context.Context, enterpriseID, productID uuid.UUID, req UpdatePricesRequest) (*ProductResponse, error) {
	product, err := s.products.FindByIDForEnterprise(ctx, enterpriseID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.SetPrices(
		valueobject.NewMoneyUSD(req.CostPrice),
		valueobject.NewMoneyUSD(req.SalePrice)); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Discontinue removes a product from sale without deleting its history
func (s *ProductService) Discontinue(ctx context.Context, enterpriseID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByIDForEnterprise(ctx, enterpriseID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Discontinue(); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}
