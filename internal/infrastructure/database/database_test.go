package database

import (
	"fmt"
	"strings"
	"testing"

	"remodeling_proposals/internal/adapter/persistence/models"
	"remodeling_proposals/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := ConnectCatalogDB("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestConnectCatalogDB_UnsupportedDriver(t *testing.T) {
	_, err := ConnectCatalogDB("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	for _, dim := range entities.PricingDimensions() {
		assert.True(t, db.Migrator().HasTable(dim.Table()), dim.Table())
	}
	assert.True(t, db.Migrator().HasTable("price_history"))
}

func TestSeedCatalog(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	var services, owned, standalone int64
	require.NoError(t, db.Model(&models.ServiceModel{}).Count(&services).Error)
	require.NoError(t, db.Model(&models.MaterialModel{}).Where("service_id <> ''").Count(&owned).Error)
	require.NoError(t, db.Model(&models.MaterialModel{}).Where("service_id = ''").Count(&standalone).Error)

	wantOwned := 0
	for _, svc := range DefaultServices() {
		wantOwned += len(svc.RequiredMaterials)
	}
	assert.EqualValues(t, 12, services)
	assert.EqualValues(t, 14, wantOwned)
	assert.EqualValues(t, wantOwned, owned)
	assert.EqualValues(t, len(DefaultMaterials()), standalone)
	assert.EqualValues(t, 4, standalone)

	counts := map[entities.PricingDimension]int64{
		entities.DimensionRegional:     4,
		entities.DimensionPropertyType: 3,
		entities.DimensionSeasonal:     4,
		entities.DimensionLabor:        0,
	}
	for dim, want := range counts {
		var n int64
		require.NoError(t, db.Table(dim.Table()).Count(&n).Error)
		assert.Equal(t, want, n, dim)
	}

	var kitchen models.ServiceModel
	require.NoError(t, db.Where("name = ?", "Kitchen Remodel").First(&kitchen).Error)
	assert.True(t, kitchen.RequiresPermit)
	assert.Equal(t, []string{"Residential"}, []string(kitchen.PropertyTypes))
	assert.Equal(t, "25000", kitchen.BasePrice.String())
}

func TestDefaultServices_PerPropertyType(t *testing.T) {
	perType := map[string]int{}
	for _, s := range DefaultServices() {
		for _, pt := range s.PropertyTypes {
			perType[pt]++
		}
		for _, m := range s.RequiredMaterials {
			assert.Equal(t, s.ID, m.ServiceID)
		}
	}
	assert.Equal(t, map[string]int{"Residential": 5, "Commercial": 4, "Industrial": 3}, perType)
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedis("redis://" + mr.Addr())
	require.NoError(t, err)
	defer rdb.Close()

	_, err = NewRedis("not-a-url")
	assert.Error(t, err)

	addr := mr.Addr()
	mr.Close()
	_, err = NewRedis("redis://" + addr)
	assert.Error(t, err)
}
