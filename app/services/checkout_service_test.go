package services

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
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)
	return db
}

func TestCheckoutSnapshotsCartIntoOrder(t *testing.T) {
	db := openTestDB(t)
	svc := NewCheckoutService(db)
	ctx := context.Background()

	user := models.User{FirstName: "Diego", Email: "diego@mail.pe", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	product := models.Product{Name: "Televisor LG", Price: decimal.RequireFromString("1000.00")}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{UserID: &user.ID}
	require.NoError(t, db.Create(&cart).Error)
	item := models.CartItem{
		CartID:        cart.ID,
		ProductID:     product.ID,
		Qty:           2,
		PriceSnapshot: decimal.RequireFromString("899.90"),
	}
	require.NoError(t, db.Create(&item).Error)

	order, err := svc.Checkout(ctx, cart.ID, user.ID, models.PaymentMethodManual)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.NotEmpty(t, order.OrderCode)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("1799.80")))

	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, "Televisor LG", order.OrderItems[0].ProductName)
	// The cart snapshot price is charged, not the live catalog price.
	assert.True(t, order.OrderItems[0].Price.Equal(decimal.RequireFromString("899.90")))

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&remaining).Error)
	assert.EqualValues(t, 0, remaining)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := openTestDB(t)
	svc := NewCheckoutService(db)

	cart := models.Cart{}
	require.NoError(t, db.Create(&cart).Error)

	_, err := svc.Checkout(context.Background(), cart.ID, "user-1", models.PaymentMethodManual)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutMissingCart(t *testing.T) {
	db := openTestDB(t)
	svc := NewCheckoutService(db)

	_, err := svc.Checkout(context.Background(), "no-such-cart", "user-1", models.PaymentMethodManual)
	assert.ErrorIs(t, err, ErrEmptyCart)
}
