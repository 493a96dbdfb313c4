package productRepo

import "salonkit/models"

// ProductRepository defines methods for inventory data access.
type ProductRepository interface {
	// Create inserts a new product record.
	Create(product models.Product) (*models.Product, error)
	// GetByID retrieves a product by its unique ID.
	GetByID(id string) (*models.Product, error)
	// GetAll retrieves all products.
	GetAll() ([]models.Product, error)
	// Update merges partial fields into an existing product record.
	Update(id string, fields map[string]any) (*models.Product, error)
	// Delete removes a product record by its ID.
	Delete(id string) error
	// GetByCategory retrieves products in a category.
	GetByCategory(category string) ([]models.Product, error)
	// GetLowStock retrieves products at or below their reorder threshold.
	GetLowStock() ([]models.Product, error)
	// GetLowStockCount counts products at or below their reorder threshold.
	GetLowStockCount() (int, error)
	// Search retrieves products whose name or category contains the query,
	// case-insensitively.
	Search(query string) ([]models.Product, error)
}
