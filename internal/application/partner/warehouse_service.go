package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

// WarehouseService manages warehouses and their default flag
type WarehouseService struct {
	warehouses partner.WarehouseRepository
	logger     *zap.Logger
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouses partner.WarehouseRepository, logger *zap.Logger) *WarehouseService {
	return &WarehouseService{warehouses: warehouses, logger: logger}
}

// Create creates a warehouse; the first warehouse of an enterprise
// becomes the default automatically.
func (s *WarehouseService) Create(ctx context.Context, enterpriseID uuid.UUID, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	exists, err := s.warehouses.ExistsByCode(ctx, enterpriseID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A warehouse with this code already exists")
	}

	warehouse, err := partner.NewWarehouse(enterpriseID, req.Code, req.Name, partner.WarehouseType(req.Type))
	if err != nil {
		return nil, err
	}
	if req.Address != "" || req.Notes != "" {
		if err := warehouse.Update(req.Name, req.Address, req.Notes); err != nil {
			return nil, err
		}
	}

	makeDefault := req.IsDefault
	if !makeDefault {
		if _, err := s.warehouses.FindDefault(ctx, enterpriseID); errors.Is(err, shared.ErrNotFound) {
			makeDefault = true
		} else if err != nil {
			return nil, err
		}
	}

	if makeDefault {
		if err := s.warehouses.ClearDefault(ctx, enterpriseID); err != nil {
			return nil, err
		}
		warehouse.SetDefault(true)
	}

	if err := s.warehouses.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	s.logger.Info("warehouse created",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("code", warehouse.Code),
		zap.Bool("is_default", warehouse.IsDefault))

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// Get returns a warehouse by ID
func (s *WarehouseService) Get(ctx context.Context, enterpriseID, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouses.FindByIDForEnterprise(ctx, enterpriseID, warehouseID)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// List returns all warehouses for an enterprise
func (s *WarehouseService) List(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]WarehouseResponse, error) {
	warehouses, err := s.warehouses.FindAllForEnterprise(ctx, enterpriseID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]WarehouseResponse, 0, len(warehouses))
	for i := range warehouses {
		responses = append(responses, ToWarehouseResponse(&warehouses[i]))
	}
	return responses, nil
}

// SetDefault moves the default flag to the given warehouse
func (s *WarehouseService) SetDefault(ctx context.Context, enterpriseID, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouses.FindByIDForEnterprise(ctx, enterpriseID, warehouseID)
	if err != nil {
		return nil, err
	}
	if !warehouse.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "An inactive warehouse cannot be the default")
	}

	if err := s.warehouses.ClearDefault(ctx, enterpriseID); err != nil {
		return nil, err
	}
	warehouse.SetDefault(true)

	if err := s.warehouses.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// SetStatus enables or disables a warehouse
func (s *WarehouseService) SetStatus(ctx context.Context, enterpriseID, warehouseID uuid.UUID, active bool) (*WarehouseResponse, error) {
	warehouse, err := s.warehouses.FindByIDForEnterprise(ctx, enterpriseID, warehouseID)
	if err != nil {
		return nil, err
	}

	if active {
		err = warehouse.Enable()
	} else {
		err = warehouse.Disable()
	}
	if err != nil {
		return nil, err
	}

	if err := s.warehouses.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}
