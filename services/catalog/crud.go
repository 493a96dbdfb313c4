package catalog

import (
	"fmt"
	"strings"

	"salonkit/models"
)

// CreateService inserts a new catalog service. An omitted IsActive flag
// defaults to active.
func (s *DefaultCatalogService) CreateService(input models.ServiceInput) (*models.Service, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("failed to create service: name is required")
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	created, err := s.Repo.Create(models.Service{
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		BasePrice:   input.BasePrice,
		Category:    input.Category,
		IsActive:    active,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return created, nil
}

// UpdateService merges partial fields into a catalog service.
func (s *DefaultCatalogService) UpdateService(id string, fields map[string]any) (*models.Service, error) {
	updated, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return updated, nil
}

// DeleteService removes a catalog service. Booking lines referencing it
// keep their stored price and duration; only the display annotation is
// lost.
func (s *DefaultCatalogService) DeleteService(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// GetServiceByID retrieves one catalog service.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

// GetAllServices retrieves the whole catalog.
func (s *DefaultCatalogService) GetAllServices() ([]models.Service, error) {
	services, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all services: %w", err)
	}
	return services, nil
}

// GetActiveServices retrieves the services currently offered.
func (s *DefaultCatalogService) GetActiveServices() ([]models.Service, error) {
	services, err := s.Repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active services: %w", err)
	}
	return services, nil
}

// GetServicesByCategory retrieves services in a category.
func (s *DefaultCatalogService) GetServicesByCategory(category string) ([]models.Service, error) {
	services, err := s.Repo.GetByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get services by category: %w", err)
	}
	return services, nil
}

// ToggleServiceActive flips a service's active flag.
func (s *DefaultCatalogService) ToggleServiceActive(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle service: %w", err)
	}
	updated, err := s.Repo.Update(id, map[string]any{"isActive": !svc.IsActive})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle service: %w", err)
	}
	return updated, nil
}
