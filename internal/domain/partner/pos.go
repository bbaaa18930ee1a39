package partner

import (
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// POSModule identifies which business module a point of sale runs
type POSModule string

const (
	POSModuleBoutique   POSModule = "boutique"
	POSModuleRestaurant POSModule = "restaurant"
	POSModuleEvent      POSModule = "event"
	POSModulePharmacy   POSModule = "pharmacy"
)

// POS represents a point of sale within an enterprise.
// Sales originate from a POS; its configuration decides which warehouse
// stock is deducted from and which accounts journals post to.
type POS struct {
	shared.EnterpriseAggregateRoot
	Name   string    `gorm:"type:varchar(200);not null"`
	Module POSModule `gorm:"type:varchar(20);not null;default:'boutique'"`
}

// TableName returns the table name for GORM
func (POS) TableName() string {
	return "points_of_sale"
}

// NewPOS creates a new point of sale
func NewPOS(enterpriseID uuid.UUID, name string, module POSModule) (*POS, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "POS name cannot be empty")
	}
	if err := validatePOSModule(module); err != nil {
		return nil, err
	}

	return &POS{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		Name:                    name,
		Module:                  module,
	}, nil
}

// Rename changes the POS name
func (p *POS) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "POS name cannot be empty")
	}

	p.Name = name
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

func validatePOSModule(m POSModule) error {
	switch m {
	case POSModuleBoutique, POSModuleRestaurant, POSModuleEvent, POSModulePharmacy:
		return nil
	default:
		return shared.NewDomainError("INVALID_MODULE", "Invalid POS module")
	}
}

// POSWarehouseConfig maps a POS to its operational warehouse, the one
// sales deduct stock from.
type POSWarehouseConfig struct {
	shared.EnterpriseAggregateRoot
	POSID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pos_warehouse_pos"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (POSWarehouseConfig) TableName() string {
	return "pos_warehouse_configs"
}

// NewPOSWarehouseConfig creates a new POS to warehouse mapping
func NewPOSWarehouseConfig(enterpriseID, posID, warehouseID uuid.UUID) (*POSWarehouseConfig, error) {
	if posID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_POS", "POS reference cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse reference cannot be empty")
	}

	return &POSWarehouseConfig{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		POSID:                   posID,
		WarehouseID:             warehouseID,
	}, nil
}

// Reassign points the POS at a different operational warehouse
func (c *POSWarehouseConfig) Reassign(warehouseID uuid.UUID) error {
	if warehouseID == uuid.Nil {
		return shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse reference cannot be empty")
	}

	c.WarehouseID = warehouseID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
