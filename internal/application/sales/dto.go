package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/sales"
)

// CreateCartRequest opens a new cart on a POS
type CreateCartRequest struct {
	POSID    uuid.UUID  `json:"pos_id" binding:"required"`
	ClientID *uuid.UUID `json:"client_id"`
	Notes    string     `json:"notes" binding:"max=2000"`
}

// AddLineRequest appends a product line to an open cart. UnitPrice may
// be omitted to use the product's catalog sale price.
type AddLineRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// SetDiscountRequest sets the header-level discount on an open cart
type SetDiscountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// FinalizeSaleRequest finalizes a cart into a validated sale.
// PaymentAmount zero finalizes on full credit.
type FinalizeSaleRequest struct {
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,oneof=cash bank"`
}

// AddPaymentRequest records a settlement against a validated cart
type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required,oneof=cash bank"`
}

// CartLineResponse is the API view of one cart line
type CartLineResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
	LineNumber int             `json:"line_number"`
}

// PaymentResponse is the API view of one payment
type PaymentResponse struct {
	ID       uuid.UUID       `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	Sequence int             `json:"sequence"`
	PaidAt   time.Time       `json:"paid_at"`
}

// CartResponse is the API view of a cart with lines and payments
type CartResponse struct {
	ID             uuid.UUID          `json:"id"`
	Reference      string             `json:"reference"`
	POSID          uuid.UUID          `json:"pos_id"`
	ClientID       *uuid.UUID         `json:"client_id,omitempty"`
	Status         string             `json:"status"`
	PaymentTag     string             `json:"payment_tag,omitempty"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalFinal     decimal.Decimal    `json:"total_final"`
	TotalPaid      decimal.Decimal    `json:"total_paid"`
	Outstanding    decimal.Decimal    `json:"outstanding"`
	Notes          string             `json:"notes,omitempty"`
	Lines          []CartLineResponse `json:"lines"`
	Payments       []PaymentResponse  `json:"payments"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// FinalizeStatus tags the outcome of a finalization or payment call
type FinalizeStatus string

const (
	StatusValidated        FinalizeStatus = "validated"
	StatusAlreadyFinalized FinalizeStatus = "already_finalized"
	StatusPaymentRecorded  FinalizeStatus = "payment_recorded"
	StatusCancelled        FinalizeStatus = "cancelled"
)

// FinalizeResult is the outcome of finalize, payment and cancel calls.
// Change is non-zero when an oversize payment was capped at the total.
type FinalizeResult struct {
	Status  FinalizeStatus  `json:"status"`
	Message string          `json:"message"`
	Change  decimal.Decimal `json:"change"`
	Cart    *CartResponse   `json:"cart,omitempty"`
}

// AvailabilityResponse is the availability preview for a cart
type AvailabilityResponse struct {
	Available bool                 `json:"available"`
	Shortages []inventory.Shortage `json:"shortages,omitempty"`
}

// ToCartResponse converts a Cart to its response DTO
func ToCartResponse(cart *sales.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineResponse{
			ID:         line.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			LineTotal:  line.LineTotal,
			LineNumber: line.LineNumber,
		})
	}

	payments := make([]PaymentResponse, 0, len(cart.Payments))
	for _, p := range cart.Payments {
		payments = append(payments, PaymentResponse{
			ID:       p.ID,
			Amount:   p.Amount,
			Method:   string(p.Method),
			Sequence: p.Sequence,
			PaidAt:   p.PaidAt,
		})
	}

	return CartResponse{
		ID:             cart.ID,
		Reference:      cart.Reference(),
		POSID:          cart.POSID,
		ClientID:       cart.ClientID,
		Status:         string(cart.Status),
		PaymentTag:     string(cart.PaymentTag),
		Subtotal:       cart.Subtotal,
		DiscountAmount: cart.DiscountAmount,
		TotalFinal:     cart.TotalFinal,
		TotalPaid:      cart.TotalPaid(),
		Outstanding:    cart.Outstanding(),
		Notes:          cart.Notes,
		Lines:          lines,
		Payments:       payments,
		CreatedAt:      cart.CreatedAt,
		UpdatedAt:      cart.UpdatedAt,
	}
}
