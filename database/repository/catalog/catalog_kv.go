package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"salonkit/database"
	"salonkit/models"
)

const collectionName = "services"

// KVServiceRepo implements ServiceRepository on the key-value storage
// adapter.
type KVServiceRepo struct {
	coll *database.Collection
}

// NewKVServiceRepo creates a new instance of ServiceRepository over the
// given store.
func NewKVServiceRepo(store database.Store) ServiceRepository {
	return &KVServiceRepo{coll: database.NewCollection(store, collectionName)}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func rehydrate(record map[string]any) (models.Service, error) {
	var s models.Service
	if err := database.Decode(record, &s); err != nil {
		return s, fmt.Errorf("failed to decode service: %w", err)
	}
	return models.NewService(s), nil
}

func rehydrateAll(records []map[string]any) ([]models.Service, error) {
	services := make([]models.Service, 0, len(records))
	for _, record := range records {
		s, err := rehydrate(record)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, nil
}

// Create inserts a new catalog service.
func (r *KVServiceRepo) Create(service models.Service) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service = models.NewService(service)
	if err := r.coll.Append(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &service, nil
}

// GetByID retrieves a catalog service by its unique ID.
func (r *KVServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Find(ctx, func(rec map[string]any) bool {
		return rec["id"] == id
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	s, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves all catalog services.
func (r *KVServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	return rehydrateAll(records)
}

// Update merges partial fields into an existing catalog service.
func (r *KVServiceRepo) Update(id string, fields map[string]any) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	s, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a catalog service by its ID.
func (r *KVServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.coll.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	return nil
}

// GetActive retrieves the services currently offered.
func (r *KVServiceRepo) GetActive() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		active, _ := rec["isActive"].(bool)
		return active
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active services: %w", err)
	}
	return rehydrateAll(records)
}

// GetByCategory retrieves services in a category.
func (r *KVServiceRepo) GetByCategory(category string) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		return rec["category"] == category
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services by category: %w", err)
	}
	return rehydrateAll(records)
}
