package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/utils/renderer"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newProductHandler(t *testing.T) (*ProductHandler, *gorm.DB) {
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
	)
	require.NoError(t, err)

	handler := NewProductHandler(renderer.New(), repositories.NewProductRepository(db))
	return handler, db
}

func serveDetail(t *testing.T, handler *ProductHandler, slug string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/products/{slug}", handler.Detail)

	req := httptest.NewRequest(http.MethodGet, "/products/"+slug, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProductDetailIncludesPromoDiscount(t *testing.T) {
	handler, db := newProductHandler(t)

	promo := decimal.RequireFromString("800.00")
	product := models.Product{
		Name:       "Televisor LG 55",
		Slug:       "televisor-lg-55",
		Price:      decimal.RequireFromString("1000.00"),
		PromoPrice: &promo,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&product).Error)

	rec := serveDetail(t, handler, "televisor-lg-55")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.EqualValues(t, 20, payload["discount_percent"])
	assert.EqualValues(t, 200, payload["savings"])

	detail, ok := payload["product"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Televisor LG 55", detail["name"])
}

func TestProductDetailWithoutPromoHasZeroDiscount(t *testing.T) {
	handler, db := newProductHandler(t)

	product := models.Product{
		Name:     "Lavadora Samsung",
		Slug:     "lavadora-samsung",
		Price:    decimal.RequireFromString("899.00"),
		IsActive: true,
	}
	require.NoError(t, db.Create(&product).Error)

	rec := serveDetail(t, handler, "lavadora-samsung")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.EqualValues(t, 0, payload["discount_percent"])
	assert.EqualValues(t, 0, payload["savings"])
}

func TestProductDetailInactiveIs404(t *testing.T) {
	handler, db := newProductHandler(t)

	product := models.Product{
		Name:     "Cocina Bosch",
		Slug:     "cocina-bosch",
		Price:    decimal.RequireFromString("1500.00"),
		IsActive: false,
	}
	require.NoError(t, db.Select("*").Create(&product).Error)

	rec := serveDetail(t, handler, "cocina-bosch")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
