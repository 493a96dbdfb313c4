package handlers

import (
	"errors"
	"net/http"

	"salonkit/database"
	"salonkit/models"
	"salonkit/services/inventory"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler exposes product inventory over HTTP.
type InventoryHandler struct {
	InventoryService inventory.InventoryService
}

func NewInventoryHandler(svc inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{InventoryService: svc}
}

// CreateProductHandler handles POST /api/products.
func (h *InventoryHandler) CreateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.InventoryService.CreateProduct(input)
	if err != nil {
		logger.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllProductsHandler handles GET /api/products. Optional "q" and
// "category" query parameters narrow the list.
func (h *InventoryHandler) GetAllProductsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var (
		products []models.Product
		err      error
	)
	switch {
	case c.Query("q") != "":
		products, err = h.InventoryService.SearchProducts(c.Query("q"))
	case c.Query("category") != "":
		products, err = h.InventoryService.GetProductsByCategory(c.Query("category"))
	default:
		products, err = h.InventoryService.GetAllProducts()
	}
	if err != nil {
		logger.Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetLowStockProductsHandler handles GET /api/products/low-stock.
func (h *InventoryHandler) GetLowStockProductsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	products, err := h.InventoryService.GetLowStockProducts()
	if err != nil {
		logger.Error("Failed to list low stock products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByIDHandler handles GET /api/products/:id.
func (h *InventoryHandler) GetProductByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	product, err := h.InventoryService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.Error("Failed to fetch product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProductHandler handles PATCH /api/products/:id.
func (h *InventoryHandler) UpdateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		logger.Error("Invalid product update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.InventoryService.UpdateProduct(id, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.Error("Failed to update product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdjustStockHandler handles PUT /api/products/:id/stock.
// It expects a JSON payload with a signed "delta".
func (h *InventoryHandler) AdjustStockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid stock adjustment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.InventoryService.AdjustStock(id, req.Delta)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.Error("Failed to adjust stock", zap.String("id", id), zap.Int("delta", req.Delta), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProductHandler handles DELETE /api/products/:id.
func (h *InventoryHandler) DeleteProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.InventoryService.DeleteProduct(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
