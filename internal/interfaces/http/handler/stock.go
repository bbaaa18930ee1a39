package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/gescom/backend/internal/application/inventory"
	"github.com/gescom/backend/internal/interfaces/http/dto"
)

// StockHandler exposes stock receipts, transfers and inventory queries
type StockHandler struct {
	BaseHandler
	stock *appinventory.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stock *appinventory.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

// Receive handles POST /stock/receipts
func (h *StockHandler) Receive(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req appinventory.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	movement, err := h.stock.Receive(c.Request.Context(), enterpriseID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}

// Transfer handles POST /stock/transfers
func (h *StockHandler) Transfer(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req appinventory.TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	transfer, err := h.stock.Transfer(c.Request.Context(), enterpriseID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, transfer)
}

// SetMinQuantity handles PUT /stock/items/min-quantity
func (h *StockHandler) SetMinQuantity(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req appinventory.SetMinQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.stock.SetMinQuantity(c.Request.Context(), enterpriseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// GetItem handles GET /warehouses/:id/items/:productId
func (h *StockHandler) GetItem(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	warehouseID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	item, err := h.stock.GetItem(c.Request.Context(), enterpriseID, warehouseID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// ListByWarehouse handles GET /warehouses/:id/items
func (h *StockHandler) ListByWarehouse(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	warehouseID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	filter := req.ToFilter()

	items, err := h.stock.ListByWarehouse(c.Request.Context(), enterpriseID, warehouseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, filter, len(items))
}

// ListLowStock handles GET /stock/low
func (h *StockHandler) ListLowStock(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	filter := req.ToFilter()

	items, err := h.stock.ListLowStock(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, filter, len(items))
}

// ListMovements handles GET /stock/movements with optional product_id
// and reference query filters
func (h *StockHandler) ListMovements(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	if reference := c.Query("reference"); reference != "" {
		movements, err := h.stock.ListMovementsByReference(c.Request.Context(), enterpriseID, reference)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, movements)
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	filter := req.ToFilter()

	if raw := c.Query("product_id"); raw != "" {
		productID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid product ID")
			return
		}
		movements, err := h.stock.ListMovementsByProduct(c.Request.Context(), enterpriseID, productID, filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.List(c, movements, filter, len(movements))
		return
	}

	movements, err := h.stock.ListMovements(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, movements, filter, len(movements))
}
