package repositories

import (
	"fmt"

	"github.com/dquispe/electromarket/app/helpers"
	"gorm.io/gorm"
)

// UniqueSlug derives a slug from name and, on collision, appends an
// incrementing counter ("laptops", "laptops-1", "laptops-2", ...) until the
// slug is free in the given table. Runs on whatever *gorm.DB it is handed,
// so callers inside a transaction see their own uncommitted rows.
func UniqueSlug(db *gorm.DB, table, name string) (string, error) {
	base := helpers.GenerateSlug(name)
	if base == "" {
		base = "n-a"
	}

	slug := base
	counter := 1
	for {
		var count int64
		if err := db.Table(table).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
