package productRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salonkit/database"
	"salonkit/models"
)

const collectionName = "products"

// KVProductRepo implements ProductRepository on the key-value storage
// adapter.
type KVProductRepo struct {
	coll *database.Collection
}

// NewKVProductRepo creates a new instance of ProductRepository over the
// given store.
func NewKVProductRepo(store database.Store) ProductRepository {
	return &KVProductRepo{coll: database.NewCollection(store, collectionName)}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func rehydrate(record map[string]any) (models.Product, error) {
	var p models.Product
	if err := database.Decode(record, &p); err != nil {
		return p, fmt.Errorf("failed to decode product: %w", err)
	}
	return models.NewProduct(p), nil
}

func rehydrateAll(records []map[string]any) ([]models.Product, error) {
	products := make([]models.Product, 0, len(records))
	for _, record := range records {
		p, err := rehydrate(record)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Create inserts a new product record.
func (r *KVProductRepo) Create(product models.Product) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	product = models.NewProduct(product)
	if err := r.coll.Append(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// GetByID retrieves a product by its unique ID.
func (r *KVProductRepo) GetByID(id string) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Find(ctx, func(rec map[string]any) bool {
		return rec["id"] == id
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product with id %s: %w", id, err)
	}
	p, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves all products.
func (r *KVProductRepo) GetAll() ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return rehydrateAll(records)
}

// Update merges partial fields into an existing product record.
func (r *KVProductRepo) Update(id string, fields map[string]any) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with id %s: %w", id, err)
	}
	p, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a product record by its ID.
func (r *KVProductRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.coll.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	return nil
}

// GetByCategory retrieves products in a category.
func (r *KVProductRepo) GetByCategory(category string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		return rec["category"] == category
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products by category: %w", err)
	}
	return rehydrateAll(records)
}

// GetLowStock retrieves products at or below their reorder threshold. The
// filter rehydrates first so the entity derivation decides.
func (r *KVProductRepo) GetLowStock() ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		p, err := rehydrate(rec)
		if err != nil {
			return false
		}
		return p.IsLowStock()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve low-stock products: %w", err)
	}
	return rehydrateAll(records)
}

// GetLowStockCount counts products at or below their reorder threshold.
func (r *KVProductRepo) GetLowStockCount() (int, error) {
	products, err := r.GetLowStock()
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// Search retrieves products whose name or category contains the query,
// case-insensitively.
func (r *KVProductRepo) Search(query string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query = strings.ToLower(query)
	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		name, _ := rec["name"].(string)
		category, _ := rec["category"].(string)
		return strings.Contains(strings.ToLower(name), query) ||
			strings.Contains(strings.ToLower(category), query)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return rehydrateAll(records)
}
