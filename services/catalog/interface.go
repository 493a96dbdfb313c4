package catalog

import (
	catalogRepo "salonkit/database/repository/catalog"
	"salonkit/models"
)

// CatalogService orchestrates the treatment catalog.
type CatalogService interface {
	// CreateService inserts a new catalog service; active unless the input
	// says otherwise.
	CreateService(input models.ServiceInput) (*models.Service, error)
	// UpdateService merges partial fields into a catalog service.
	UpdateService(id string, fields map[string]any) (*models.Service, error)
	// DeleteService removes a catalog service.
	DeleteService(id string) error
	// GetServiceByID retrieves one catalog service.
	GetServiceByID(id string) (*models.Service, error)
	// GetAllServices retrieves the whole catalog.
	GetAllServices() ([]models.Service, error)
	// GetActiveServices retrieves the services currently offered.
	GetActiveServices() ([]models.Service, error)
	// GetServicesByCategory retrieves services in a category.
	GetServicesByCategory(category string) ([]models.Service, error)
	// ToggleServiceActive flips a service's active flag.
	ToggleServiceActive(id string) (*models.Service, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}
