package inventory

import (
	"fmt"
	"strings"

	"salonkit/models"
	"salonkit/utils"

	"go.uber.org/zap"
)

// CreateProduct inserts a new product.
func (s *DefaultInventoryService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("failed to create product: name is required")
	}
	created, err := s.Repo.Create(models.Product{
		Name:         input.Name,
		Category:     input.Category,
		CurrentStock: input.CurrentStock,
		MinStock:     input.MinStock,
		SellingPrice: input.SellingPrice,
		CostPrice:    input.CostPrice,
		Unit:         input.Unit,
		Notes:        input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// UpdateProduct merges partial fields into a product.
func (s *DefaultInventoryService) UpdateProduct(id string, fields map[string]any) (*models.Product, error) {
	updated, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

// DeleteProduct removes a product record.
func (s *DefaultInventoryService) DeleteProduct(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// GetProductByID retrieves one product.
func (s *DefaultInventoryService) GetProductByID(id string) (*models.Product, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// GetAllProducts retrieves all products.
func (s *DefaultInventoryService) GetAllProducts() ([]models.Product, error) {
	products, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetProductsByCategory retrieves products in a category.
func (s *DefaultInventoryService) GetProductsByCategory(category string) ([]models.Product, error) {
	products, err := s.Repo.GetByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}
	return products, nil
}

// GetLowStockProducts retrieves products at or below their reorder
// threshold, per the entity derivation.
func (s *DefaultInventoryService) GetLowStockProducts() ([]models.Product, error) {
	products, err := s.Repo.GetLowStock()
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock products: %w", err)
	}
	return products, nil
}

// SearchProducts filters products by a case-insensitive substring over
// name and category. A blank query returns the full list.
func (s *DefaultInventoryService) SearchProducts(query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAllProducts()
	}
	products, err := s.Repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// AdjustStock applies a signed delta to a product's stock level. A delta
// that drives the level negative is accepted and stored as negative.
func (s *DefaultInventoryService) AdjustStock(id string, delta int) (*models.Product, error) {
	logger := utils.GetLogger()

	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	updated, err := s.Repo.Update(id, map[string]any{
		"currentStock": p.CurrentStock + delta,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	logger.Debug("AdjustStock",
		zap.String("productID", id),
		zap.Int("delta", delta),
		zap.Int("currentStock", updated.CurrentStock))
	return updated, nil
}
