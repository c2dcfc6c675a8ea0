package migrations

import (
	"github.com/dquispe/electromarket/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StaffProfile{},
		&models.Address{},
		&models.Category{},
		&models.Vendor{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductPriceHistory{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Banner{},
		&models.ContentBlock{},
		&models.EventLog{},
	)
}
