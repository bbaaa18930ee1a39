package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes registers cart and finalization routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/carts")
	{
		carts.POST("", h.Create)
		carts.GET("", h.List)
		carts.GET("/:id", h.Get)
		carts.POST("/:id/lines", h.AddLine)
		carts.DELETE("/:id/lines/:lineId", h.RemoveLine)
		carts.PUT("/:id/discount", h.SetDiscount)
		carts.POST("/:id/cancel", h.Cancel)
		carts.POST("/:id/finalize", h.Finalize)
		carts.POST("/:id/payments", h.AddPayment)
		carts.GET("/:id/availability", h.CheckAvailability)
	}
}

// RegisterRoutes registers stock operation routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.POST("/receipts", h.Receive)
		stock.POST("/transfers", h.Transfer)
		stock.PUT("/items/min-quantity", h.SetMinQuantity)
		stock.GET("/low", h.ListLowStock)
		stock.GET("/movements", h.ListMovements)
	}

	warehouses := rg.Group("/warehouses")
	{
		warehouses.GET("/:id/items", h.ListByWarehouse)
		warehouses.GET("/:id/items/:productId", h.GetItem)
	}
}

// RegisterRoutes registers chart of accounts and journal routes
func (h *AccountingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounting := rg.Group("/accounting")
	{
		accounting.POST("/classes", h.CreateAccountClass)
		accounting.GET("/classes", h.ListAccountClasses)
		accounting.POST("/accounts", h.CreateAccount)
		accounting.GET("/accounts", h.ListAccounts)
		accounting.PUT("/config", h.ConfigureRoles)
		accounting.GET("/config", h.GetConfig)
		accounting.GET("/journals", h.ListJournals)
		accounting.GET("/journals/:id", h.GetJournal)
	}
}

// RegisterRoutes registers enterprise routes
func (h *EnterpriseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	enterprises := rg.Group("/enterprises")
	{
		enterprises.POST("", h.Create)
		enterprises.GET("/:id", h.Get)
		enterprises.PUT("/:id", h.Rename)
	}
}

// RegisterRoutes registers warehouse management routes
func (h *WarehouseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", h.Create)
		warehouses.GET("", h.List)
		warehouses.GET("/:id", h.Get)
		warehouses.PUT("/:id/default", h.SetDefault)
		warehouses.PUT("/:id/enable", h.Enable)
		warehouses.PUT("/:id/disable", h.Disable)
	}
}

// RegisterRoutes registers point-of-sale routes
func (h *POSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	points := rg.Group("/pos")
	{
		points.POST("", h.Create)
		points.GET("", h.List)
		points.GET("/:id", h.Get)
		points.PUT("/:id/warehouse", h.AssignWarehouse)
	}
}

// RegisterRoutes registers product catalog routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.PUT("/:id/prices", h.UpdatePrices)
		products.POST("/:id/discontinue", h.Discontinue)
	}
}

// RegisterRoutes registers health probes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}
