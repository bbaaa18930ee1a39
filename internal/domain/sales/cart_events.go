package sales

import (
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Cart
const AggregateTypeCart = "Cart"

// Event type constants for Cart
const (
	EventTypeCartCreated   = "CartCreated"
	EventTypeCartValidated = "CartValidated"
	EventTypeCartCancelled = "CartCancelled"
)

// CartCreatedEvent is published when a new cart is opened
type CartCreatedEvent struct {
	shared.BaseDomainEvent
	CartID uuid.UUID `json:"cart_id"`
	POSID  uuid.UUID `json:"pos_id"`
}

// NewCartCreatedEvent creates a new CartCreatedEvent
func NewCartCreatedEvent(cart *Cart) *CartCreatedEvent {
	return &CartCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCreated, AggregateTypeCart, cart.ID, cart.EnterpriseID),
		CartID:          cart.ID,
		POSID:           cart.POSID,
	}
}

// CartValidatedEvent is published when a cart is finalized into a sale
type CartValidatedEvent struct {
	shared.BaseDomainEvent
	CartID     uuid.UUID       `json:"cart_id"`
	TotalFinal decimal.Decimal `json:"total_final"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	PaymentTag PaymentTag      `json:"payment_tag"`
}

// NewCartValidatedEvent creates a new CartValidatedEvent
func NewCartValidatedEvent(cart *Cart) *CartValidatedEvent {
	return &CartValidatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartValidated, AggregateTypeCart, cart.ID, cart.EnterpriseID),
		CartID:          cart.ID,
		TotalFinal:      cart.TotalFinal,
		TotalPaid:       cart.TotalPaid(),
		PaymentTag:      cart.PaymentTag,
	}
}

// CartCancelledEvent is published when an open cart is cancelled
type CartCancelledEvent struct {
	shared.BaseDomainEvent
	CartID uuid.UUID `json:"cart_id"`
}

// NewCartCancelledEvent creates a new CartCancelledEvent
func NewCartCancelledEvent(cart *Cart) *CartCancelledEvent {
	return &CartCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCancelled, AggregateTypeCart, cart.ID, cart.EnterpriseID),
		CartID:          cart.ID,
	}
}
