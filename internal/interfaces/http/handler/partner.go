package handler

import (
	"github.com/gin-gonic/gin"

	apppartner "github.com/gescom/backend/internal/application/partner"
	"github.com/gescom/backend/internal/interfaces/http/dto"
)

// EnterpriseHandler exposes enterprise registration
type EnterpriseHandler struct {
	BaseHandler
	enterprises *apppartner.EnterpriseService
}

// NewEnterpriseHandler creates a new EnterpriseHandler
func NewEnterpriseHandler(enterprises *apppartner.EnterpriseService) *EnterpriseHandler {
	return &EnterpriseHandler{enterprises: enterprises}
}

// Create handles POST /enterprises
func (h *EnterpriseHandler) Create(c *gin.Context) {
	var req apppartner.CreateEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	enterprise, err := h.enterprises.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, enterprise)
}

// Get handles GET /enterprises/:id
func (h *EnterpriseHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	enterprise, err := h.enterprises.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, enterprise)
}

// Rename handles PUT /enterprises/:id
func (h *EnterpriseHandler) Rename(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req apppartner.RenameEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	enterprise, err := h.enterprises.Rename(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, enterprise)
}

// WarehouseHandler exposes warehouse management
type WarehouseHandler struct {
	BaseHandler
	warehouses *apppartner.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(warehouses *apppartner.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouses: warehouses}
}

// Create handles POST /warehouses
func (h *WarehouseHandler) Create(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req apppartner.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	warehouse, err := h.warehouses.Create(c.Request.Context(), enterpriseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, warehouse)
}

// Get handles GET /warehouses/:id
func (h *WarehouseHandler) Get(c *gin.Context) {
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

	warehouse, err := h.warehouses.Get(c.Request.Context(), enterpriseID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, warehouse)
}

// List handles GET /warehouses
func (h *WarehouseHandler) List(c *gin.Context) {
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

	warehouses, err := h.warehouses.List(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, warehouses, filter, len(warehouses))
}

// SetDefault handles PUT /warehouses/:id/default
func (h *WarehouseHandler) SetDefault(c *gin.Context) {
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

	warehouse, err := h.warehouses.SetDefault(c.Request.Context(), enterpriseID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, warehouse)
}

// Enable handles PUT /warehouses/:id/enable
func (h *WarehouseHandler) Enable(c *gin.Context) {
	h.setStatus(c, true)
}

// Disable handles PUT /warehouses/:id/disable
func (h *WarehouseHandler) Disable(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *WarehouseHandler) setStatus(c *gin.Context, active bool) {
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

	warehouse, err := h.warehouses.SetStatus(c.Request.Context(), enterpriseID, warehouseID, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, warehouse)
}

// POSHandler exposes point-of-sale management
type POSHandler struct {
	BaseHandler
	points *apppartner.POSService
}

// NewPOSHandler creates a new POSHandler
func NewPOSHandler(points *apppartner.POSService) *POSHandler {
	return &POSHandler{points: points}
}

// Create handles POST /pos
func (h *POSHandler) Create(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req apppartner.CreatePOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	pos, err := h.points.Create(c.Request.Context(), enterpriseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, pos)
}

// Get handles GET /pos/:id
func (h *POSHandler) Get(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	posID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid POS ID")
		return
	}

	pos, err := h.points.Get(c.Request.Context(), enterpriseID, posID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pos)
}

// List handles GET /pos
func (h *POSHandler) List(c *gin.Context) {
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

	points, err := h.points.List(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, points, filter, len(points))
}

// AssignWarehouse handles PUT /pos/:id/warehouse
func (h *POSHandler) AssignWarehouse(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	posID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid POS ID")
		return
	}

	var req apppartner.AssignWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	pos, err := h.points.AssignWarehouse(c.Request.Context(), enterpriseID, posID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pos)
}
