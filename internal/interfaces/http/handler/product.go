package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/gescom/backend/internal/application/catalog"
	"github.com/gescom/backend/internal/interfaces/http/dto"
)

// ProductHandler exposes product catalog management
type ProductHandler struct {
	BaseHandler
	products *appcatalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), enterpriseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.products.Get(c.Request.Context(), enterpriseID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
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

	products, err := h.products.List(c.Request.Context(), enterpriseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, products, filter, len(products))
}

// UpdatePrices handles PUT /products/:id/prices
func (h *ProductHandler) UpdatePrices(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req appcatalog.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.products.UpdatePrices(c.Request.Context(), enterpriseID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Discontinue handles POST /products/:id/discontinue
func (h *ProductHandler) Discontinue(c *gin.Context) {
	enterpriseID, err := getEnterpriseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.products.Discontinue(c.Request.Context(), enterpriseID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}
