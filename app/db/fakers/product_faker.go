package fakers

import (
	"math/rand"

	"github.com/dquispe/electromarket/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var imagePaths = []string{
	"/images/products/placeholder.jpg",
	"/images/products/placeholder-2.jpg",
	"/images/products/placeholder-3.jpg",
}

// ProductFaker builds a random catalog product under the given category
// and vendor, with one to three placeholder images.
func ProductFaker(category *models.Category, vendor *models.Vendor, createdBy *models.User) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	numImages := rand.Intn(3) + 1
	images := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = models.ProductImage{
			ProductID: productID,
			Path:      imagePaths[rand.Intn(len(imagePaths))],
			IsMain:    i == 0,
		}
	}

	price := decimal.NewFromFloat(float64(rand.Intn(500000)+999) / 100)

	product := &models.Product{
		ID:            productID,
		Name:          name,
		Slug:          slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:   faker.Sentence(),
		Price:         price,
		CategoryID:    &category.ID,
		VendorID:      &vendor.ID,
		IsActive:      true,
		IsFeatured:    rand.Intn(4) == 0,
		ProductImages: images,
	}
	if createdBy != nil {
		product.CreatedByID = &createdBy.ID
	}
	return product
}
