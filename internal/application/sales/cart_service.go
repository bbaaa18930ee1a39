package sales

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/gescom/backend/internal/domain/sales"
	"github.com/gescom/backend/internal/domain/shared"
)

// CartService handles the cart editing lifecycle before finalization
type CartService struct {
	carts    sales.CartRepository
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(carts sales.CartRepository, products catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// Create opens a new cart on a POS
func (s *CartService) Create(ctx context.Context, enterpriseID uuid.UUID, userID *uuid.UUID, req CreateCartRequest) (*CartResponse, error) {
	cart, err := sales.NewCart(enterpriseID, req.POSID, req.ClientID)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		cart.SetRecordedBy(*userID)
	}
	if req.Notes != "" {
		if err := cart.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("cart created",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("cart_id", cart.ID.String()),
		zap.String("pos_id", req.POSID.String()))

	response := ToCartResponse(cart)
	return &response, nil
}

// Get returns one cart with its lines and payments
func (s *CartService) Get(ctx context.Context, enterpriseID, cartID uuid.UUID) (*CartResponse, error) {
	cart, err := s.carts.FindByIDForEnterprise(ctx, enterpriseID, cartID)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(cart)
	return &response, nil
}

// List returns carts for an enterprise
func (s *CartService) List(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]CartResponse, error) {
	carts, err := s.carts.FindAllForEnterprise(ctx, enterpriseID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]CartResponse, 0, len(carts))
	for i := range carts {
		responses = append(responses, ToCartResponse(&carts[i]))
	}
	return responses, nil
}

// AddLine appends a product line to an open cart. When the request does
// not carry a unit price, the product's catalog sale price is used. The
// product must exist and be active.
func (s *CartService) AddLine(ctx context.Context, enterpriseID, cartID uuid.UUID, req AddLineRequest) (*CartResponse, error) {
	cart, err := s.carts.FindByIDForEnterprise(ctx, enterpriseID, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByIDForEnterprise(ctx, enterpriseID, req.ProductID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product does not exist")
		}
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is not active")
	}

	unitPrice := product.SalePrice
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	if _, err := cart.AddLine(req.ProductID, req.Quantity, unitPrice); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	response := ToCartResponse(cart)
	return &response, nil
}

// RemoveLine removes a line from an open cart
func (s *CartService) RemoveLine(ctx context.Context, enterpriseID, cartID, lineID uuid.UUID) (*CartResponse, error) {
	cart, err := s.carts.FindByIDForEnterprise(ctx, enterpriseID, cartID)
	if err != nil {
		return nil, err
	}

	if err := cart.RemoveLine(lineID); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	response := ToCartResponse(cart)
	return &response, nil
}

// SetDiscount sets the header-level discount on an open cart
func (s *CartService) SetDiscount(ctx context.Context, enterpriseID, cartID uuid.UUID, req SetDiscountRequest) (*CartResponse, error) {
	cart, err := s.carts.FindByIDForEnterprise(ctx, enterpriseID, cartID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetDiscount(req.Amount); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	response := ToCartResponse(cart)
	return &response, nil
}

// Cancel cancels an open cart, dropping its lines. A validated cart is
// refused; reversing a booked sale needs an explicit reversal workflow.
func (s *CartService) Cancel(ctx context.Context, enterpriseID, cartID uuid.UUID) (*FinalizeResult, error) {
	cart, err := s.carts.FindByIDForEnterprise(ctx, enterpriseID, cartID)
	if err != nil {
		return nil, err
	}

	if err := cart.MarkCancelled(); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("cart cancelled",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("cart_id", cart.ID.String()))

	response := ToCartResponse(cart)
	return &FinalizeResult{
		Status:  StatusCancelled,
		Message: "Cart cancelled",
		Cart:    &response,
	}, nil
}
