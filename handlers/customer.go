package handlers

import (
	"errors"
	"net/http"

	"salonkit/database"
	"salonkit/models"
	"salonkit/services/customer"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler exposes the customer book over HTTP.
type CustomerHandler struct {
	CustomerService customer.CustomerService
}

func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{CustomerService: svc}
}

// CreateCustomerHandler handles POST /api/customers.
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.CustomerService.CreateCustomer(input)
	if err != nil {
		logger.Error("Failed to create customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllCustomersHandler handles GET /api/customers. An optional "q" query
// parameter switches to search mode.
func (h *CustomerHandler) GetAllCustomersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	query := c.Query("q")
	views, err := h.CustomerService.SearchCustomers(query)
	if err != nil {
		logger.Error("Failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetCustomerByIDHandler handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomerByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	view, err := h.CustomerService.GetEnrichedCustomerByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		logger.Error("Failed to fetch customer", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetCustomerStatsHandler handles GET /api/customers/:id/stats.
func (h *CustomerHandler) GetCustomerStatsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	stats, err := h.CustomerService.CalculateVisitStats(id)
	if err != nil {
		logger.Error("Failed to compute visit stats", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateCustomerHandler handles PATCH /api/customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		logger.Error("Invalid customer update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.CustomerService.UpdateCustomer(id, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		logger.Error("Failed to update customer", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCustomerHandler handles DELETE /api/customers/:id.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.CustomerService.DeleteCustomer(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		logger.Error("Failed to delete customer", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
