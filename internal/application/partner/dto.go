package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/gescom/backend/internal/domain/partner"
)

// CreateEnterpriseRequest is the payload for registering an enterprise
type CreateEnterpriseRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

// RenameEnterpriseRequest changes an enterprise name
type RenameEnterpriseRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// EnterpriseResponse is the API view of an enterprise
type EnterpriseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// ToEnterpriseResponse converts an enterprise to its API view
func ToEnterpriseResponse(enterprise *partner.Enterprise) EnterpriseResponse {
	return EnterpriseResponse{
		ID:        enterprise.ID,
		Name:      enterprise.Name,
		Currency:  string(enterprise.Currency),
		CreatedAt: enterprise.CreatedAt,
	}
}

// CreateWarehouseRequest is the payload for creating a warehouse
type CreateWarehouseRequest struct {
	Code      string `json:"code" binding:"required,max=50"`
	Name      string `json:"name" binding:"required,max=200"`
	Type      string `json:"type" binding:"required,oneof=main pos transit damaged"`
	IsDefault bool   `json:"is_default"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// CreatePOSRequest is the payload for creating a point of sale
type CreatePOSRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Module string `json:"module" binding:"omitempty,oneof=boutique restaurant event pharmacy"`
}

// AssignWarehouseRequest maps a POS to its operational warehouse
type AssignWarehouseRequest struct {
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
}

// WarehouseResponse is the API view of a warehouse
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	IsDefault bool      `json:"is_default"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// POSResponse is the API view of a point of sale
type POSResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Module      string     `json:"module"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToWarehouseResponse converts a warehouse to its API view
func ToWarehouseResponse(warehouse *partner.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        warehouse.ID,
		Code:      warehouse.Code,
		Name:      warehouse.Name,
		Type:      string(warehouse.Type),
		Status:    string(warehouse.Status),
		IsDefault: warehouse.IsDefault,
		Address:   warehouse.Address,
		Notes:     warehouse.Notes,
		CreatedAt: warehouse.CreatedAt,
	}
}

// ToPOSResponse converts a POS to its API view
func ToPOSResponse(pos *partner.POS, warehouseID *uuid.UUID) POSResponse {
	return POSResponse{
		ID:          pos.ID,
		Name:        pos.Name,
		Module:      string(pos.Module),
		WarehouseID: warehouseID,
		CreatedAt:   pos.CreatedAt,
	}
}
