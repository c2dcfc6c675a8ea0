package seeders

import (
	"log"

	"github.com/dquispe/electromarket/app/db/fakers"
	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var baseCategories = []string{
	"Televisores",
	"Refrigeradoras",
	"Lavadoras",
	"Cocinas",
	"Audio",
}

var baseVendors = []string{
	"Importaciones Lima SAC",
	"Electro Andina",
	"Distribuidora Norte",
}

// Run seeds the admin account, the base catalog taxonomy and a handful
// of fake products. Idempotent: existing rows are reused by name.
func Run(db *gorm.DB) error {
	admin := models.User{
		FirstName: "Admin",
		LastName:  "ElectroMarket",
		Email:     "admin@electromarket.pe",
		Password:  helpers.HashPassword("admin12345"),
		Role:      models.RoleAdmin,
	}
	if err := db.FirstOrCreate(&admin, models.User{Email: admin.Email}).Error; err != nil {
		return err
	}

	categories := make([]models.Category, 0, len(baseCategories))
	for _, name := range baseCategories {
		category := models.Category{Name: name, Slug: slug.Make(name), IsActive: true}
		if err := db.FirstOrCreate(&category, models.Category{Name: name}).Error; err != nil {
			return err
		}
		categories = append(categories, category)
	}

	vendors := make([]models.Vendor, 0, len(baseVendors))
	for _, name := range baseVendors {
		vendor := models.Vendor{Name: name, IsActive: true}
		if err := db.FirstOrCreate(&vendor, models.Vendor{Name: name}).Error; err != nil {
			return err
		}
		vendors = append(vendors, vendor)
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		log.Println("Seeder: products already present, skipping fakes")
		return nil
	}

	for i := 0; i < 15; i++ {
		category := categories[i%len(categories)]
		vendor := vendors[i%len(vendors)]
		product := fakers.ProductFaker(&category, &vendor, &admin)
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}
	return nil
}
