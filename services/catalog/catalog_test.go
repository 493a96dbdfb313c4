package catalog

import (
	"testing"

	"salonkit/database"
	catalogRepoPkg "salonkit/database/repository/catalog"
	"salonkit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo: catalogRepoPkg.NewKVServiceRepo(database.NewMemoryStore()),
	}
}

func TestCreateService(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateService(models.ServiceInput{Name: "Cut", Duration: 30, BasePrice: 3000})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive, "omitted flag defaults to active")

	t.Run("explicit inactive is honored", func(t *testing.T) {
		inactive := false
		created, err := svc.CreateService(models.ServiceInput{Name: "Retired perm", IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, created.IsActive)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := svc.CreateService(models.ServiceInput{})
		assert.Error(t, err)
	})
}

func TestToggleServiceActive(t *testing.T) {
	svc := newTestService()
	created, err := svc.CreateService(models.ServiceInput{Name: "Color"})
	require.NoError(t, err)

	toggled, err := svc.ToggleServiceActive(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleServiceActive(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	t.Run("missing service", func(t *testing.T) {
		_, err := svc.ToggleServiceActive("missing")
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestGetActiveServices(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateService(models.ServiceInput{Name: "Cut"})
	require.NoError(t, err)
	inactive := false
	_, err = svc.CreateService(models.ServiceInput{Name: "Old treatment", IsActive: &inactive})
	require.NoError(t, err)

	active, err := svc.GetActiveServices()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Cut", active[0].Name)

	all, err := svc.GetAllServices()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
