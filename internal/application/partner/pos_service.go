package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
)

// POSService manages points of sale and their warehouse mapping
type POSService struct {
	points     partner.POSRepository
	configs    partner.POSWarehouseConfigRepository
	warehouses partner.WarehouseRepository
	logger     *zap.Logger
}

// NewPOSService creates a new POSService
func NewPOSService(
	points partner.POSRepository,
	configs partner.POSWarehouseConfigRepository,
	warehouses partner.WarehouseRepository,
	logger *zap.Logger,
) *POSService {
	return &POSService{points: points, configs: configs, warehouses: warehouses, logger: logger}
}

// Create creates a point of sale
func (s *POSService) Create(ctx context.Context, enterpriseID uuid.UUID, req CreatePOSRequest) (*POSResponse, error) {
	module := partner.POSModule(req.Module)
	if req.Module == "" {
		module = partner.POSModuleBoutique
	}

	pos, err := partner.NewPOS(enterpriseID, req.Name, module)
	if err != nil {
		return nil, err
	}
	if err := s.points.Save(ctx, pos); err != nil {
		return nil, err
	}

	s.logger.Info("pos created",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("pos_id", pos.ID.String()))

	response := ToPOSResponse(pos, nil)
	return &response, nil
}

// Get returns a POS with its warehouse mapping, if any
func (s *POSService) Get(ctx context.Context, enterpriseID, posID uuid.UUID) (*POSResponse, error) {
	pos, err := s.points.FindByIDForEnterprise(ctx, enterpriseID, posID)
	if err != nil {
		return nil, err
	}

	response := ToPOSResponse(pos, nil)
	if config, err := s.configs.FindByPOS(ctx, enterpriseID, posID); err == nil {
		response.WarehouseID = &config.WarehouseID
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	return &response, nil
}

// List returns all points of sale for an enterprise
func (s *POSService) List(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]POSResponse, error) {
	points, err := s.points.FindAllForEnterprise(ctx, enterpriseID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]POSResponse, 0, len(points))
	for i := range points {
		response := ToPOSResponse(&points[i], nil)
		if config, err := s.configs.FindByPOS(ctx, enterpriseID, points[i].ID); err == nil {
			response.WarehouseID = &config.WarehouseID
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// AssignWarehouse points the POS at an operational warehouse, creating
// or updating its mapping.
func (s *POSService) AssignWarehouse(ctx context.Context, enterpriseID, posID uuid.UUID, req AssignWarehouseRequest) (*POSResponse, error) {
	pos, err := s.points.FindByIDForEnterprise(ctx, enterpriseID, posID)
	if err != nil {
		return nil, err
	}

	warehouse, err := s.warehouses.FindByIDForEnterprise(ctx, enterpriseID, req.WarehouseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse does not exist in this enterprise")
		}
		return nil, err
	}
	if !warehouse.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot assign an inactive warehouse to a POS")
	}

	config, err := s.configs.FindByPOS(ctx, enterpriseID, posID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		config, err = partner.NewPOSWarehouseConfig(enterpriseID, posID, warehouse.ID)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := config.Reassign(warehouse.ID); err != nil {
			return nil, err
		}
	}

	if err := s.configs.Save(ctx, config); err != nil {
		return nil, err
	}

	response := ToPOSResponse(pos, &config.WarehouseID)
	return &response, nil
}
