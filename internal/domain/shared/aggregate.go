package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}

// EnterpriseAggregateRoot extends BaseAggregateRoot with enterprise scoping.
// Every business record belongs to exactly one enterprise.
type EnterpriseAggregateRoot struct {
	BaseAggregateRoot
	EnterpriseID uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecordedBy   *uuid.UUID `gorm:"type:uuid;index"` // User who created this record
}

// NewEnterpriseAggregateRoot creates a new enterprise-scoped aggregate root
func NewEnterpriseAggregateRoot(enterpriseID uuid.UUID) EnterpriseAggregateRoot {
	return EnterpriseAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		EnterpriseID:      enterpriseID,
	}
}

// SetRecordedBy sets the creator user ID
func (e *EnterpriseAggregateRoot) SetRecordedBy(userID uuid.UUID) {
	e.RecordedBy = &userID
}
