package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/shared"
)

// StockService handles stock receipts, transfers and inventory queries.
// Writes run inside a transaction scope so a row change and its movement
// record commit together.
type StockService struct {
	scope     TransactionScope
	resolver  *WarehouseResolver
	items     inventory.ItemRepository
	movements inventory.MovementRepository
	logger    *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(
	scope TransactionScope,
	resolver *WarehouseResolver,
	items inventory.ItemRepository,
	movements inventory.MovementRepository,
	logger *zap.Logger,
) *StockService {
	return &StockService{
		scope:     scope,
		resolver:  resolver,
		items:     items,
		movements: movements,
		logger:    logger,
	}
}

// Receive books incoming quantity into a warehouse, updating the
// weighted-average cost. When no warehouse is given, the receipt targets
// the enterprise's main warehouse.
func (s *StockService) Receive(ctx context.Context, enterpriseID uuid.UUID, userID *uuid.UUID, req ReceiveStockRequest) (*MovementResponse, error) {
	warehouseID, err := s.targetWarehouse(ctx, enterpriseID, req.WarehouseID)
	if err != nil {
		return nil, err
	}

	var movement *inventory.Movement
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		ledger := inventory.NewLedger(repos.InventoryItems(), repos.Movements())
		movement, err = ledger.ApplyIn(ctx, enterpriseID, warehouseID, req.ProductID,
			req.Quantity, req.UnitCost, req.Reference, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock received",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("warehouse_id", warehouseID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("quantity", req.Quantity.String()),
		zap.String("reference", req.Reference))

	response := ToMovementResponse(movement)
	return &response, nil
}

// Transfer moves quantity between warehouses at the source's average cost
func (s *StockService) Transfer(ctx context.Context, enterpriseID uuid.UUID, userID *uuid.UUID, req TransferStockRequest) (*TransferResponse, error) {
	var out, in *inventory.Movement
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		ledger := inventory.NewLedger(repos.InventoryItems(), repos.Movements())
		var err error
		out, in, err = ledger.ApplyTransfer(ctx, enterpriseID,
			req.SourceWarehouseID, req.DestinationWarehouseID, req.ProductID,
			req.Quantity, req.Reference, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock transferred",
		zap.String("enterprise_id", enterpriseID.String()),
		zap.String("source_warehouse_id", req.SourceWarehouseID.String()),
		zap.String("destination_warehouse_id", req.DestinationWarehouseID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("reference", req.Reference))

	return &TransferResponse{
		Out: ToMovementResponse(out),
		In:  ToMovementResponse(in),
	}, nil
}

// SetMinQuantity sets the low-stock threshold on an inventory row,
// creating the row at zero quantity when it does not exist yet
func (s *StockService) SetMinQuantity(ctx context.Context, enterpriseID uuid.UUID, req SetMinQuantityRequest) (*InventoryItemResponse, error) {
	item, err := s.items.FindByWarehouseAndProduct(ctx, enterpriseID, req.WarehouseID, req.ProductID)
	if err != nil {
		if err != shared.ErrNotFound {
			return nil, err
		}
		item, err = inventory.NewInventoryItem(enterpriseID, req.WarehouseID, req.ProductID)
		if err != nil {
			return nil, err
		}
	}

	if err := item.SetMinQuantity(req.MinQuantity); err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// GetItem returns one inventory row
func (s *StockService) GetItem(ctx context.Context, enterpriseID, warehouseID, productID uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.items.FindByWarehouseAndProduct(ctx, enterpriseID, warehouseID, productID)
	if err != nil {
		return nil, err
	}
	response := ToInventoryItemResponse(item)
	return &response, nil
}

// ListByWarehouse returns the inventory rows of one warehouse
func (s *StockService) ListByWarehouse(ctx context.Context, enterpriseID, warehouseID uuid.UUID, filter shared.Filter) ([]InventoryItemResponse, error) {
	items, err := s.items.FindByWarehouse(ctx, enterpriseID, warehouseID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]InventoryItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToInventoryItemResponse(&items[i]))
	}
	return responses, nil
}

// ListLowStock returns the rows at or below their minimum threshold
func (s *StockService) ListLowStock(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]InventoryItemResponse, error) {
	items, err := s.items.FindAllForEnterprise(ctx, enterpriseID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]InventoryItemResponse, 0)
	for i := range items {
		if items[i].IsBelowMinimum() {
			responses = append(responses, ToInventoryItemResponse(&items[i]))
		}
	}
	return responses, nil
}

// ListMovements returns movements for an enterprise, most recent first
func (s *StockService) ListMovements(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]MovementResponse, error) {
	movements, err := s.movements.FindAllForEnterprise(ctx, enterpriseID, filter)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListMovementsByProduct returns the movement history of one product
func (s *StockService) ListMovementsByProduct(ctx context.Context, enterpriseID, productID uuid.UUID, filter shared.Filter) ([]MovementResponse, error) {
	movements, err := s.movements.FindByProduct(ctx, enterpriseID, productID, filter)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListMovementsByReference returns all movements sharing one reference,
// e.g. both legs of a transfer or every outbound line of a sale
func (s *StockService) ListMovementsByReference(ctx context.Context, enterpriseID uuid.UUID, reference string) ([]MovementResponse, error) {
	movements, err := s.movements.FindByReference(ctx, enterpriseID, reference)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

func toMovementResponses(movements []inventory.Movement) []MovementResponse {
	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, ToMovementResponse(&movements[i]))
	}
	return responses
}

func (s *StockService) targetWarehouse(ctx context.Context, enterpriseID uuid.UUID, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil {
		return *requested, nil
	}
	warehouse, err := s.resolver.ResolveMain(ctx, enterpriseID)
	if err != nil {
		return uuid.Nil, err
	}
	return warehouse.ID, nil
}
