package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface implemented by all domain events
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

// BaseDomainEvent provides common fields for domain events
type BaseDomainEvent struct {
	ID            uuid.UUID `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_type"`
	AggregateUUID uuid.UUID `json:"aggregate_id"`
	Enterprise    uuid.UUID `json:"enterprise_id"`
	OccurredOn    time.Time `json:"occurred_at"`
}

// NewBaseDomainEvent creates a new base domain event
func NewBaseDomainEvent(eventType, aggregateType string, aggregateID, enterpriseID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		ID:            uuid.New(),
		Type:          eventType,
		Aggregate:     aggregateType,
		AggregateUUID: aggregateID,
		Enterprise:    enterpriseID,
		OccurredOn:    time.Now(),
	}
}

// EventID returns the unique event ID
func (e BaseDomainEvent) EventID() uuid.UUID {
	return e.ID
}

// EventType returns the event type name
func (e BaseDomainEvent) EventType() string {
	return e.Type
}

// AggregateType returns the type of the aggregate that emitted the event
func (e BaseDomainEvent) AggregateType() string {
	return e.Aggregate
}

// AggregateID returns the ID of the aggregate that emitted the event
func (e BaseDomainEvent) AggregateID() uuid.UUID {
	return e.AggregateUUID
}

// OccurredAt returns when the event occurred
func (e BaseDomainEvent) OccurredAt() time.Time {
	return e.OccurredOn
}

// EnterpriseID returns the enterprise the event belongs to
func (e BaseDomainEvent) EnterpriseID() uuid.UUID {
	return e.Enterprise
}
