package sales

import (
	"fmt"
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartStatus represents the lifecycle state of a cart
type CartStatus string

const (
	CartStatusOpen      CartStatus = "open"
	CartStatusValidated CartStatus = "validated"
	CartStatusCancelled CartStatus = "cancelled"
)

// CanTransitionTo checks if the status can transition to the target status.
// validated and cancelled are terminal for the sale itself; payments may
// still append to a validated cart.
func (s CartStatus) CanTransitionTo(target CartStatus) bool {
	switch s {
	case CartStatusOpen:
		return target == CartStatusValidated || target == CartStatusCancelled
	case CartStatusValidated, CartStatusCancelled:
		return false
	}
	return false
}

// PaymentMethod is how a single payment was made
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodBank PaymentMethod = "bank"
)

// IsValid returns true if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodBank
}

// PaymentTag summarizes how a validated cart was settled
type PaymentTag string

const (
	PaymentTagCash   PaymentTag = "cash"   // Fully paid
	PaymentTagCredit PaymentTag = "credit" // Open receivable remains
	PaymentTagMixed  PaymentTag = "mixed"
)

// CartLine is one product line within a cart. Line order is semantic:
// journals and stock movements are written in line order.
type CartLine struct {
	shared.BaseEntity
	CartID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal  decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitPrice
	LineNumber int             `gorm:"not null"`                    // 1-based position
}

// TableName returns the table name for GORM
func (CartLine) TableName() string {
	return "cart_lines"
}

// Payment is one settlement recorded against a cart
type Payment struct {
	shared.BaseEntity
	CartID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Method     PaymentMethod   `gorm:"type:varchar(10);not null"`
	Sequence   int             `gorm:"not null"` // 1-based position in the cart's payment history
	RecordedBy *uuid.UUID      `gorm:"type:uuid"`
	PaidAt     time.Time       `gorm:"type:timestamptz;not null"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// Cart is an in-progress sale: a container of lines and payments until
// finalized. Lines and discount are mutable only while the cart is open.
type Cart struct {
	shared.EnterpriseAggregateRoot
	POSID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientID       *uuid.UUID      `gorm:"type:uuid;index"`
	Status         CartStatus      `gorm:"type:varchar(20);not null;default:'open'"`
	PaymentTag     PaymentTag      `gorm:"type:varchar(10)"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalFinal     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Subtotal - DiscountAmount
	Notes          string          `gorm:"type:text"`
	Lines          []CartLine      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Payments       []Payment       `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates a new open cart for a POS
func NewCart(enterpriseID, posID uuid.UUID, clientID *uuid.UUID) (*Cart, error) {
	if posID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_POS", "POS reference cannot be empty")
	}

	cart := &Cart{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		POSID:                   posID,
		ClientID:                clientID,
		Status:                  CartStatusOpen,
		Subtotal:                decimal.Zero,
		DiscountAmount:          decimal.Zero,
		TotalFinal:              decimal.Zero,
		Lines:                   make([]CartLine, 0),
		Payments:                make([]Payment, 0),
	}

	cart.AddDomainEvent(NewCartCreatedEvent(cart))

	return cart, nil
}

// Reference returns the idempotence reference for this cart's sale
func (c *Cart) Reference() string {
	return fmt.Sprintf("CART-%s", c.ID)
}

// PaymentReference returns the journal reference for the payment with the
// given sequence. The finalize-time payment keeps the cart reference; each
// later payment gets its own suffixed reference so the idempotence key
// stays unique per payment.
func (c *Cart) PaymentReference(sequence int) string {
	if sequence <= 1 {
		return c.Reference()
	}
	return fmt.Sprintf("%s-P%d", c.Reference(), sequence)
}

// AddLine appends a product line to an open cart. Duplicate products are
// kept as separate lines; merging would reorder journal entries.
func (c *Cart) AddLine(productID uuid.UUID, quantity, unitPrice decimal.Decimal) (*CartLine, error) {
	if c.Status != CartStatusOpen {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add lines to a non-open cart")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	line := CartLine{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     c.ID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		LineTotal:  quantity.Mul(unitPrice),
		LineNumber: len(c.Lines) + 1,
	}

	c.Lines = append(c.Lines, line)
	c.RecalculateTotals()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return &c.Lines[len(c.Lines)-1], nil
}

// RemoveLine removes a line from an open cart and renumbers the rest
func (c *Cart) RemoveLine(lineID uuid.UUID) error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove lines from a non-open cart")
	}

	index := -1
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			index = i
			break
		}
	}
	if index < 0 {
		return shared.NewDomainError("LINE_NOT_FOUND", "Cart line not found")
	}

	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	for i := range c.Lines {
		c.Lines[i].LineNumber = i + 1
	}

	c.RecalculateTotals()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetDiscount sets the header-level discount on an open cart.
// The discount never exceeds the subtotal.
func (c *Cart) SetDiscount(amount decimal.Decimal) error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot change discount on a non-open cart")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if amount.GreaterThan(c.lineTotalSum()) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed the cart subtotal")
	}

	c.DiscountAmount = amount
	c.RecalculateTotals()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetClient sets or clears the client reference on an open cart
func (c *Cart) SetClient(clientID *uuid.UUID) error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot change client on a non-open cart")
	}

	c.ClientID = clientID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets free-form notes on an open cart
func (c *Cart) SetNotes(notes string) error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot change notes on a non-open cart")
	}

	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// RecalculateTotals recomputes subtotal and total from lines and discount.
// Stored totals are never trusted at finalize time; this is authoritative.
func (c *Cart) RecalculateTotals() {
	c.Subtotal = c.lineTotalSum()
	c.TotalFinal = c.Subtotal.Sub(c.DiscountAmount)
}

func (c *Cart) lineTotalSum() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.LineTotal)
	}
	return total
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// IsOpen returns true if the cart is still editable
func (c *Cart) IsOpen() bool {
	return c.Status == CartStatusOpen
}

// TotalPaid returns the cumulative amount of all payments
func (c *Cart) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Outstanding returns the unpaid remainder of the final total
func (c *Cart) Outstanding() decimal.Decimal {
	remaining := c.TotalFinal.Sub(c.TotalPaid())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// NextPaymentSequence returns the 1-based sequence for the next payment
func (c *Cart) NextPaymentSequence() int {
	return len(c.Payments) + 1
}

// AppendPayment records a payment against the cart. Allowed while open
// (finalize-time payment) or validated (credit settlement).
func (c *Cart) AppendPayment(amount decimal.Decimal, method PaymentMethod, userID *uuid.UUID) (*Payment, error) {
	if c.Status == CartStatusCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot record payments on a cancelled cart")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Invalid payment method")
	}

	payment := Payment{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     c.ID,
		Amount:     amount,
		Method:     method,
		Sequence:   c.NextPaymentSequence(),
		RecordedBy: userID,
		PaidAt:     time.Now(),
	}

	c.Payments = append(c.Payments, payment)
	c.RefreshPaymentTag()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return &c.Payments[len(c.Payments)-1], nil
}

// RefreshPaymentTag sets the settlement tag from cumulative payments:
// cash once fully paid, credit while a receivable remains.
func (c *Cart) RefreshPaymentTag() {
	if c.TotalPaid().GreaterThanOrEqual(c.TotalFinal) {
		c.PaymentTag = PaymentTagCash
	} else {
		c.PaymentTag = PaymentTagCredit
	}
}

// MarkValidated transitions the cart from open to validated
func (c *Cart) MarkValidated() error {
	if !c.Status.CanTransitionTo(CartStatusValidated) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot validate a %s cart", c.Status))
	}

	c.Status = CartStatusValidated
	c.RefreshPaymentTag()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCartValidatedEvent(c))

	return nil
}

// MarkCancelled cancels an open cart, dropping its lines. A validated
// cart is refused; reversing a booked sale needs an explicit reversal
// workflow, not a cancellation.
func (c *Cart) MarkCancelled() error {
	if c.Status == CartStatusValidated {
		return shared.NewDomainError(shared.ErrCodeIrreversibleSale,
			"Cart is already validated; use a reversal workflow instead")
	}
	if !c.Status.CanTransitionTo(CartStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel a %s cart", c.Status))
	}

	c.Lines = nil
	c.Status = CartStatusCancelled
	c.RecalculateTotals()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCartCancelledEvent(c))

	return nil
}

// TotalFinalMoney returns the final total as a Money value object
func (c *Cart) TotalFinalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(c.TotalFinal)
}
