package inventory

import (
	"testing"

	"salonkit/database"
	productRepoPkg "salonkit/database/repository/product"
	"salonkit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultInventoryService {
	return &DefaultInventoryService{
		Repo: productRepoPkg.NewKVProductRepo(database.NewMemoryStore()),
	}
}

func TestCreateProduct(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateProduct(models.ProductInput{Name: "Shampoo", CurrentStock: 10, MinStock: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pc", created.Unit)

	t.Run("name is required", func(t *testing.T) {
		_, err := svc.CreateProduct(models.ProductInput{})
		assert.Error(t, err)
	})
}

func TestAdjustStock(t *testing.T) {
	svc := newTestService()
	created, err := svc.CreateProduct(models.ProductInput{Name: "Color tube", CurrentStock: 3, MinStock: 2})
	require.NoError(t, err)

	updated, err := svc.AdjustStock(created.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentStock)
	assert.True(t, updated.IsLowStock(), "at the threshold counts as low")

	t.Run("stock can go negative", func(t *testing.T) {
		updated, err := svc.AdjustStock(created.ID, -5)
		require.NoError(t, err)
		assert.Equal(t, -3, updated.CurrentStock)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := svc.AdjustStock("missing", 1)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestGetLowStockProducts(t *testing.T) {
	svc := newTestService()

	mustCreate := func(input models.ProductInput) {
		_, err := svc.CreateProduct(input)
		require.NoError(t, err)
	}
	mustCreate(models.ProductInput{Name: "Shampoo", CurrentStock: 10, MinStock: 3})
	mustCreate(models.ProductInput{Name: "Treatment", CurrentStock: 2, MinStock: 2})
	mustCreate(models.ProductInput{Name: "Bleach", CurrentStock: 0, MinStock: 1})

	low, err := svc.GetLowStockProducts()
	require.NoError(t, err)
	require.Len(t, low, 2)

	names := []string{low[0].Name, low[1].Name}
	assert.ElementsMatch(t, []string{"Treatment", "Bleach"}, names)
}

func TestSearchProducts(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateProduct(models.ProductInput{Name: "Moisture Shampoo", Category: "hair care"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(models.ProductInput{Name: "Nail polish", Category: "nails"})
	require.NoError(t, err)

	t.Run("substring over name, case-insensitive", func(t *testing.T) {
		got, err := svc.SearchProducts("SHAMPOO")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Moisture Shampoo", got[0].Name)
	})

	t.Run("substring over category", func(t *testing.T) {
		got, err := svc.SearchProducts("hair")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("blank query returns everything", func(t *testing.T) {
		got, err := svc.SearchProducts("  ")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no match is an empty slice", func(t *testing.T) {
		got, err := svc.SearchProducts("wax")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGetProductsByCategory(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateProduct(models.ProductInput{Name: "Shampoo", Category: "hair care"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(models.ProductInput{Name: "Nail polish", Category: "nails"})
	require.NoError(t, err)

	got, err := svc.GetProductsByCategory("hair care")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Shampoo", got[0].Name)
}
