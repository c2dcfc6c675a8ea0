package repositories

import (
	"context"
	"testing"

	"github.com/dquispe/electromarket/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return value
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Vendor{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductPriceHistory{},
	)
	require.NoError(t, err)
	return db
}

func TestUniqueSlugCounter(t *testing.T) {
	db := openTestDB(t)

	first, err := UniqueSlug(db, "categories", "Línea Blanca")
	require.NoError(t, err)
	assert.Equal(t, "l-nea-blanca", first)

	require.NoError(t, db.Create(&models.Category{Name: "Línea Blanca", Slug: first}).Error)

	second, err := UniqueSlug(db, "categories", "Línea Blanca!")
	require.NoError(t, err)
	assert.Equal(t, "l-nea-blanca-1", second)
}

func TestUniqueSlugEmptyName(t *testing.T) {
	db := openTestDB(t)

	slug, err := UniqueSlug(db, "categories", "!!!")
	require.NoError(t, err)
	assert.Equal(t, "n-a", slug)
}

func TestGetOrCreateCategory(t *testing.T) {
	db := openTestDB(t)

	created, err := GetOrCreateCategory(db, "Televisores")
	require.NoError(t, err)
	assert.Equal(t, "televisores", created.Slug)
	assert.True(t, created.IsActive)

	again, err := GetOrCreateCategory(db, "Televisores")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateVendor(t *testing.T) {
	db := openTestDB(t)

	created, err := GetOrCreateVendor(db, "Electro Andina")
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	again, err := GetOrCreateVendor(db, "Electro Andina")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestProductUpdateAppendsPriceHistory(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := models.Product{Name: "Televisor LG", Price: mustDecimal(t, "1000.00")}
	require.NoError(t, repo.Create(ctx, &product))

	product.Price = mustDecimal(t, "1100.00")
	require.NoError(t, repo.Update(ctx, &product))

	var history []models.ProductPriceHistory
	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&history).Error)
	require.Len(t, history, 1)
	assert.True(t, history[0].Price.Equal(mustDecimal(t, "1100.00")))

	// Saving without a price change appends nothing.
	product.Description = "nueva descripción"
	require.NoError(t, repo.Update(ctx, &product))

	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&history).Error)
	assert.Len(t, history, 1)
}
