package inventory

import (
	productRepo "salonkit/database/repository/product"
	"salonkit/models"
)

// InventoryService orchestrates product CRUD and stock adjustments.
type InventoryService interface {
	// CreateProduct inserts a new product.
	CreateProduct(input models.ProductInput) (*models.Product, error)
	// UpdateProduct merges partial fields into a product.
	UpdateProduct(id string, fields map[string]any) (*models.Product, error)
	// DeleteProduct removes a product record.
	DeleteProduct(id string) error
	// GetProductByID retrieves one product.
	GetProductByID(id string) (*models.Product, error)
	// GetAllProducts retrieves all products.
	GetAllProducts() ([]models.Product, error)
	// GetProductsByCategory retrieves products in a category.
	GetProductsByCategory(category string) ([]models.Product, error)
	// GetLowStockProducts retrieves products at or below their reorder
	// threshold.
	GetLowStockProducts() ([]models.Product, error)
	// SearchProducts filters products by a case-insensitive substring over
	// name and category. A blank query returns the full list.
	SearchProducts(query string) ([]models.Product, error)
	// AdjustStock applies a signed delta to a product's stock level.
	// Negative results are stored as-is, never clamped.
	AdjustStock(id string, delta int) (*models.Product, error)
}

// DefaultInventoryService is the production implementation.
type DefaultInventoryService struct {
	Repo productRepo.ProductRepository
}
