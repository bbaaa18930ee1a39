package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/gescom/backend/internal/application/sales"
	"github.com/gescom/backend/internal/interfaces/http/dto"
)

// CartHandler exposes the cart lifecycle and the finalization endpoints
type CartHandler struct {
	BaseHandler
	carts     *appsales.CartService
	finalizer *appsales.FinalizerService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts *appsales.CartService, finalizer *appsales.FinalizerService) *CartHandler {
	return &CartHandler{carts: carts, finalizer: finalizer}
}

// Create handles POST /carts
func (h *CartHandler) Create(c *gin.Context) {
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

	var req appsales.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.carts.Create(c.Request.Context(), enterpriseID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cart)
}

// Get handles GET /carts/:id
func (h *CartHandler) Get(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	cart, err := h.carts.Get(c.Request.Context(), enterpriseID, cartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// List handles GET /carts
func (h *CartHandler) List(c *gin.Context) {
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
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if posID := c.Query("pos_id"); posID != "" {
		filter.Filters["pos_id"] = posID
	}

	carts, err := h.carts.List(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, carts, filter, len(carts))
}

// AddLine handles POST /carts/:id/lines
func (h *CartHandler) AddLine(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	var req appsales.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.carts.AddLine(c.Request.Context(), enterpriseID, cartID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveLine handles DELETE /carts/:id/lines/:lineId
func (h *CartHandler) RemoveLine(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}
	lineID, err := parseIDParam(c, "lineId")
	if err != nil {
		h.BadRequest(c, "Invalid line ID")
		return
	}

	cart, err := h.carts.RemoveLine(c.Request.Context(), enterpriseID, cartID, lineID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// SetDiscount handles PUT /carts/:id/discount
func (h *CartHandler) SetDiscount(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	var req appsales.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.carts.SetDiscount(c.Request.Context(), enterpriseID, cartID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Cancel handles POST /carts/:id/cancel
func (h *CartHandler) Cancel(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	result, err := h.carts.Cancel(c.Request.Context(), enterpriseID, cartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Finalize handles POST /carts/:id/finalize
func (h *CartHandler) Finalize(c *gin.Context) {
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
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	var req appsales.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.finalizer.FinalizeSale(c.Request.Context(), enterpriseID, cartID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddPayment handles POST /carts/:id/payments
func (h *CartHandler) AddPayment(c *gin.Context) {
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
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	var req appsales.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.finalizer.AddPayment(c.Request.Context(), enterpriseID, cartID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CheckAvailability handles GET /carts/:id/availability
func (h *CartHandler) CheckAvailability(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	availability, err := h.finalizer.CheckAvailability(c.Request.Context(), enterpriseID, cartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, availability)
}
