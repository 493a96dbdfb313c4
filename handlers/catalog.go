package handlers

import (
	"errors"
	"net/http"

	"salonkit/database"
	"salonkit/models"
	"salonkit/services/catalog"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the treatment catalog over HTTP.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc}
}

// CreateServiceHandler handles POST /api/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.CatalogService.CreateService(input)
	if err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllServicesHandler handles GET /api/services. Optional "active=true"
// and "category" query parameters narrow the list.
func (h *CatalogHandler) GetAllServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var (
		services []models.Service
		err      error
	)
	switch {
	case c.Query("active") == "true":
		services, err = h.CatalogService.GetActiveServices()
	case c.Query("category") != "":
		services, err = h.CatalogService.GetServicesByCategory(c.Query("category"))
	default:
		services, err = h.CatalogService.GetAllServices()
	}
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByIDHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	svc, err := h.CatalogService.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		logger.Error("Failed to fetch service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UpdateServiceHandler handles PATCH /api/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		logger.Error("Invalid service update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.CatalogService.UpdateService(id, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		logger.Error("Failed to update service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ToggleServiceActiveHandler handles PUT /api/services/:id/toggle.
func (h *CatalogHandler) ToggleServiceActiveHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	updated, err := h.CatalogService.ToggleServiceActive(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		logger.Error("Failed to toggle service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.CatalogService.DeleteService(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		logger.Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
