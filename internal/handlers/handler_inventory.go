package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/dto"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests for the inventory ledger.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers routes for products and stock movements.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	products := rg.Group("/products")
	{
		products.POST("", h.registerProduct)
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.listLowStockProducts)
		products.GET("/report", h.inventoryReport)
		products.GET("/:id", h.getProduct)
		products.GET("/code/:code", h.getProductByCode)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deactivateProduct)
		products.POST("/:id/movements", h.registerMovement)
		products.GET("/:id/movements", h.listMovements)
	}
}

// registerProduct godoc
// @Summary Register a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param product body dto.RegisterProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 409 {object} map[string]string "Product code already registered"
// @Router /products [post]
func (h *inventoryHandler) registerProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.inventoryService.RegisterProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register product")
		return
	}

	logger.Info("Product registered", slog.String("product_id", product.ProductID), slog.String("code", product.Code))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Description Lists products ordered by code; filter with active or q
// @Tags inventory
// @Produce json
// @Param active query bool false "Only active products" default(true)
// @Param q query string false "Search by name"
// @Success 200 {array} dto.ProductResponse
// @Router /products [get]
func (h *inventoryHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if query := c.Query("q"); query != "" {
		products, err := h.inventoryService.SearchProducts(c.Request.Context(), query)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to search products")
			return
		}
		c.JSON(http.StatusOK, dto.ToProductResponses(products))
		return
	}

	activeOnly := c.DefaultQuery("active", "true") == "true"
	products, err := h.inventoryService.ListProducts(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// listLowStockProducts godoc
// @Summary List products at or below their minimum stock
// @Tags inventory
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Router /products/low-stock [get]
func (h *inventoryHandler) listLowStockProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.inventoryService.ListLowStockProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list low stock products")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// inventoryReport godoc
// @Summary Inventory valuation report
// @Description Values the full inventory at purchase price and flags low stock products
// @Tags inventory
// @Produce json
// @Success 200 {object} domain.InventoryReport
// @Router /products/report [get]
func (h *inventoryHandler) inventoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.inventoryService.InventoryReport(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate inventory report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [get]
func (h *inventoryHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	product, err := h.inventoryService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getProductByCode godoc
// @Summary Get a product by code
// @Tags inventory
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/code/{code} [get]
func (h *inventoryHandler) getProductByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	product, err := h.inventoryService.GetProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Updates catalog fields of a product; stock only changes through movements
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Param updatedBy query string false "User performing the update"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [put]
func (h *inventoryHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), c.Param("id"), req, c.Query("updatedBy"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update product")
		return
	}

	logger.Info("Product updated", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deactivateProduct godoc
// @Summary Deactivate a product
// @Description Marks a product inactive; its movement history remains
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID"
// @Param requestedBy query string true "User performing the deactivation"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [delete]
func (h *inventoryHandler) deactivateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	if err := h.inventoryService.DeactivateProduct(c.Request.Context(), productID, c.Query("requestedBy")); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate product")
		return
	}

	logger.Info("Product deactivated", slog.String("product_id", productID))
	c.Status(http.StatusNoContent)
}

// registerMovement godoc
// @Summary Record a stock movement
// @Description Records an entry or exit; exits that would drive stock negative are rejected and leave stock untouched
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param movement body dto.RegisterInventoryMovementRequest true "Movement details"
// @Success 201 {object} dto.InventoryMovementResponse
// @Failure 400 {object} map[string]string "Unknown movement type or insufficient stock"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id}/movements [post]
func (h *inventoryHandler) registerMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterInventoryMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterInventoryMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.inventoryService.RegisterMovement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register inventory movement")
		return
	}

	logger.Info("Inventory movement registered",
		slog.String("movement_id", movement.MovementID),
		slog.String("product_id", movement.ProductID),
		slog.Int64("resulting_stock", movement.ResultingStock))
	c.JSON(http.StatusCreated, dto.ToInventoryMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements of a product
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.InventoryMovementResponse
// @Router /products/{id}/movements [get]
func (h *inventoryHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, offset := paginationParams(c, defaultMovementPageSize, maxMovementPageSize)
	movements, err := h.inventoryService.ListMovements(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list inventory movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryMovementResponses(movements))
}
