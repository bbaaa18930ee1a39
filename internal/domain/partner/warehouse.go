package partner

import (
	"strings"
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WarehouseStatus represents the status of a warehouse
type WarehouseStatus string

const (
	WarehouseStatusActive   WarehouseStatus = "active"
	WarehouseStatusInactive WarehouseStatus = "inactive"
)

// WarehouseType represents the role of a warehouse
type WarehouseType string

const (
	WarehouseTypeMain    WarehouseType = "main"    // Main warehouse, receives purchases
	WarehouseTypePOS     WarehouseType = "pos"     // Point-of-sale warehouse, sales deduct from it
	WarehouseTypeTransit WarehouseType = "transit" // Goods in transit between locations
	WarehouseTypeDamaged WarehouseType = "damaged" // Damaged or quarantined goods
)

// Warehouse represents a stock location within an enterprise.
// It is the aggregate root for warehouse-related operations.
type Warehouse struct {
	shared.EnterpriseAggregateRoot
	Code      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_warehouse_enterprise_code,priority:2"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Type      WarehouseType   `gorm:"type:varchar(20);not null;default:'main'"`
	Status    WarehouseStatus `gorm:"type:varchar(20);not null;default:'active'"`
	IsDefault bool            `gorm:"not null;default:false"` // Default warehouse for operations
	Address   string          `gorm:"type:text"`
	Notes     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse with required fields
func NewWarehouse(enterpriseID uuid.UUID, code, name string, warehouseType WarehouseType) (*Warehouse, error) {
	if err := validateWarehouseCode(code); err != nil {
		return nil, err
	}
	if err := validateWarehouseName(name); err != nil {
		return nil, err
	}
	if err := validateWarehouseType(warehouseType); err != nil {
		return nil, err
	}

	warehouse := &Warehouse{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		Code:                    strings.ToUpper(code),
		Name:                    name,
		Type:                    warehouseType,
		Status:                  WarehouseStatusActive,
		IsDefault:               false,
	}

	warehouse.AddDomainEvent(NewWarehouseCreatedEvent(warehouse))

	return warehouse, nil
}

// NewMainWarehouse creates a new main warehouse
func NewMainWarehouse(enterpriseID uuid.UUID, code, name string) (*Warehouse, error) {
	return NewWarehouse(enterpriseID, code, name, WarehouseTypeMain)
}

// NewPOSWarehouse creates a new point-of-sale warehouse
func NewPOSWarehouse(enterpriseID uuid.UUID, code, name string) (*Warehouse, error) {
	return NewWarehouse(enterpriseID, code, name, WarehouseTypePOS)
}

// Update updates the warehouse's basic information
func (w *Warehouse) Update(name, address, notes string) error {
	if err := validateWarehouseName(name); err != nil {
		return err
	}

	w.Name = name
	w.Address = address
	w.Notes = notes
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// SetDefault marks this warehouse as the default warehouse
func (w *Warehouse) SetDefault(isDefault bool) {
	w.IsDefault = isDefault
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	if isDefault {
		w.AddDomainEvent(NewWarehouseSetAsDefaultEvent(w))
	}
}

// Enable enables the warehouse (makes it active)
func (w *Warehouse) Enable() error {
	if w.Status == WarehouseStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Warehouse is already active")
	}

	oldStatus := w.Status
	w.Status = WarehouseStatusActive
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	w.AddDomainEvent(NewWarehouseStatusChangedEvent(w, oldStatus, WarehouseStatusActive))

	return nil
}

// Disable disables the warehouse (makes it inactive)
func (w *Warehouse) Disable() error {
	if w.Status == WarehouseStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Warehouse is already inactive")
	}

	// Cannot disable a default warehouse
	if w.IsDefault {
		return shared.NewDomainError("CANNOT_DISABLE_DEFAULT", "Cannot disable the default warehouse")
	}

	oldStatus := w.Status
	w.Status = WarehouseStatusInactive
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	w.AddDomainEvent(NewWarehouseStatusChangedEvent(w, oldStatus, WarehouseStatusInactive))

	return nil
}

// IsActive returns true if the warehouse is active
func (w *Warehouse) IsActive() bool {
	return w.Status == WarehouseStatusActive
}

// IsMain returns true if this is a main warehouse
func (w *Warehouse) IsMain() bool {
	return w.Type == WarehouseTypeMain
}

// IsPOS returns true if this is a point-of-sale warehouse
func (w *Warehouse) IsPOS() bool {
	return w.Type == WarehouseTypePOS
}

// Validation functions

func validateWarehouseCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Warehouse code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Warehouse code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Warehouse code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateWarehouseName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot exceed 200 characters")
	}
	return nil
}

func validateWarehouseType(t WarehouseType) error {
	switch t {
	case WarehouseTypeMain, WarehouseTypePOS, WarehouseTypeTransit, WarehouseTypeDamaged:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Invalid warehouse type")
	}
}
