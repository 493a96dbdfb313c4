package customerRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salonkit/database"
	"salonkit/models"
)

const collectionName = "customers"

// KVCustomerRepo implements CustomerRepository on the key-value storage
// adapter.
type KVCustomerRepo struct {
	coll *database.Collection
}

// NewKVCustomerRepo creates a new instance of CustomerRepository over the
// given store.
func NewKVCustomerRepo(store database.Store) CustomerRepository {
	return &KVCustomerRepo{coll: database.NewCollection(store, collectionName)}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func rehydrate(record map[string]any) (models.Customer, error) {
	var c models.Customer
	if err := database.Decode(record, &c); err != nil {
		return c, fmt.Errorf("failed to decode customer: %w", err)
	}
	return models.NewCustomer(c), nil
}

func rehydrateAll(records []map[string]any) ([]models.Customer, error) {
	customers := make([]models.Customer, 0, len(records))
	for _, record := range records {
		c, err := rehydrate(record)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// Create inserts a new customer record.
func (r *KVCustomerRepo) Create(customer models.Customer) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	customer = models.NewCustomer(customer)
	if err := r.coll.Append(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// GetByID retrieves a customer by its unique ID.
func (r *KVCustomerRepo) GetByID(id string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Find(ctx, func(rec map[string]any) bool {
		return rec["id"] == id
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	c, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves all customers.
func (r *KVCustomerRepo) GetAll() ([]models.Customer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return rehydrateAll(records)
}

// Update merges partial fields into an existing customer record.
func (r *KVCustomerRepo) Update(id string, fields map[string]any) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer with id %s: %w", id, err)
	}
	c, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a customer record by its ID.
func (r *KVCustomerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.coll.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer with id %s: %w", id, err)
	}
	return nil
}

// GetByName retrieves a customer by exact case-insensitive name match.
// A missing customer is not an error here: name resolution falls back to
// the denormalized snapshot when nothing matches.
func (r *KVCustomerRepo) GetByName(name string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Find(ctx, func(rec map[string]any) bool {
		stored, _ := rec["name"].(string)
		return strings.EqualFold(stored, name)
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer named %s: %w", name, err)
	}
	c, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Search retrieves customers whose searchable string contains the query,
// case-insensitively. Search is the one query that rehydrates before
// filtering, so the match runs on the entity's derivation.
func (r *KVCustomerRepo) Search(query string) ([]models.Customer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query = strings.ToLower(query)
	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		c, err := rehydrate(rec)
		if err != nil {
			return false
		}
		return strings.Contains(c.SearchableString(), query)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return rehydrateAll(records)
}

// GetTotalCount returns the number of customer records.
func (r *KVCustomerRepo) GetTotalCount() (int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Records(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return len(records), nil
}
