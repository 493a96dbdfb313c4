package catalogRepo

import "salonkit/models"

// ServiceRepository defines methods for treatment-catalog data access.
type ServiceRepository interface {
	// Create inserts a new catalog service.
	Create(service models.Service) (*models.Service, error)
	// GetByID retrieves a catalog service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all catalog services.
	GetAll() ([]models.Service, error)
	// Update merges partial fields into an existing catalog service.
	Update(id string, fields map[string]any) (*models.Service, error)
	// Delete removes a catalog service by its ID.
	Delete(id string) error
	// GetActive retrieves the services currently offered.
	GetActive() ([]models.Service, error)
	// GetByCategory retrieves services in a category.
	GetByCategory(category string) ([]models.Service, error)
}
