package accounting

import (
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConfigRole is a semantic accounting role a POS configuration maps to an account
type ConfigRole string

const (
	RoleCash             ConfigRole = "cash"
	RoleBank             ConfigRole = "bank"
	RoleClientReceivable ConfigRole = "client_receivable"
	RoleSupplierPayable  ConfigRole = "supplier_payable"
	RoleSalesRevenue     ConfigRole = "sales_revenue"
	RolePurchases        ConfigRole = "purchases"
	RoleInventoryAsset   ConfigRole = "inventory_asset"
	RoleCOGS             ConfigRole = "cogs"
	RoleVATCollected     ConfigRole = "vat_collected"
	RoleDiscountGranted  ConfigRole = "discount_granted"
)

// AccountingConfig maps semantic roles to concrete accounts for one POS.
// A row with a nil POSID is the enterprise-level fallback used when the
// POS has no configuration of its own. Unique per (enterprise, POS).
type AccountingConfig struct {
	shared.EnterpriseAggregateRoot
	POSID              *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_accounting_config_enterprise_pos,priority:2"`
	CashAccountID      *uuid.UUID `gorm:"type:uuid"`
	BankAccountID      *uuid.UUID `gorm:"type:uuid"`
	ClientAccountID    *uuid.UUID `gorm:"type:uuid"`
	SupplierAccountID  *uuid.UUID `gorm:"type:uuid"`
	SalesAccountID     *uuid.UUID `gorm:"type:uuid"`
	PurchasesAccountID *uuid.UUID `gorm:"type:uuid"`
	InventoryAccountID *uuid.UUID `gorm:"type:uuid"`
	COGSAccountID      *uuid.UUID `gorm:"type:uuid"`
	VATAccountID       *uuid.UUID `gorm:"type:uuid"`
	DiscountAccountID  *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (AccountingConfig) TableName() string {
	return "accounting_configs"
}

// NewAccountingConfig creates an empty configuration for an enterprise.
// posID may be nil for the enterprise-level fallback row.
func NewAccountingConfig(enterpriseID uuid.UUID, posID *uuid.UUID) *AccountingConfig {
	return &AccountingConfig{
		EnterpriseAggregateRoot: shared.NewEnterpriseAggregateRoot(enterpriseID),
		POSID:                   posID,
	}
}

// SetRole assigns an account to a semantic role
func (c *AccountingConfig) SetRole(role ConfigRole, accountID uuid.UUID) error {
	if accountID == uuid.Nil {
		return shared.NewDomainError("INVALID_ACCOUNT", "Account reference cannot be empty")
	}

	slot := c.roleSlot(role)
	if slot == nil {
		return shared.NewDomainError("INVALID_ROLE", "Unknown accounting role: "+string(role))
	}

	id := accountID
	*slot = &id
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// AccountForRole returns the account mapped to the role, or nil
func (c *AccountingConfig) AccountForRole(role ConfigRole) *uuid.UUID {
	slot := c.roleSlot(role)
	if slot == nil {
		return nil
	}
	return *slot
}

// MissingRoles returns the subset of required roles that have no account mapped
func (c *AccountingConfig) MissingRoles(required []ConfigRole) []ConfigRole {
	var missing []ConfigRole
	for _, role := range required {
		if c.AccountForRole(role) == nil {
			missing = append(missing, role)
		}
	}
	return missing
}

// Roles returns the full role-to-account mapping, including unset roles
func (c *AccountingConfig) Roles() map[ConfigRole]*uuid.UUID {
	return map[ConfigRole]*uuid.UUID{
		RoleCash:             c.CashAccountID,
		RoleBank:             c.BankAccountID,
		RoleClientReceivable: c.ClientAccountID,
		RoleSupplierPayable:  c.SupplierAccountID,
		RoleSalesRevenue:     c.SalesAccountID,
		RolePurchases:        c.PurchasesAccountID,
		RoleInventoryAsset:   c.InventoryAccountID,
		RoleCOGS:             c.COGSAccountID,
		RoleVATCollected:     c.VATAccountID,
		RoleDiscountGranted:  c.DiscountAccountID,
	}
}

func (c *AccountingConfig) roleSlot(role ConfigRole) **uuid.UUID {
	switch role {
	case RoleCash:
		return &c.CashAccountID
	case RoleBank:
		return &c.BankAccountID
	case RoleClientReceivable:
		return &c.ClientAccountID
	case RoleSupplierPayable:
		return &c.SupplierAccountID
	case RoleSalesRevenue:
		return &c.SalesAccountID
	case RolePurchases:
		return &c.PurchasesAccountID
	case RoleInventoryAsset:
		return &c.InventoryAccountID
	case RoleCOGS:
		return &c.COGSAccountID
	case RoleVATCollected:
		return &c.VATAccountID
	case RoleDiscountGranted:
		return &c.DiscountAccountID
	default:
		return nil
	}
}
