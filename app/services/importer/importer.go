package importer

import (
	"context"
	"strings"

	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Import targets accepted by Run.
const (
	KindCategory = "category"
	KindVendor   = "vendor"
	KindProduct  = "product"
)

// Result summarizes one completed import run.
type Result struct {
	Kind    string
	Created int
	Updated int
	Message string
}

// Importer runs bulk imports against the catalog. Each run executes in
// a single transaction: either every row of the file lands or none do.
type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// Run imports the table rows into the target named by kind, using
// mapping (field -> column header) to locate the cells. actorID is
// recorded as the creator on new products.
func (i *Importer) Run(ctx context.Context, kind string, table *Table, mapping map[string]string, actorID string) (*Result, error) {
	switch kind {
	case KindCategory:
		return i.importCategories(ctx, table, mapping)
	case KindVendor:
		return i.importVendors(ctx, table, mapping)
	case KindProduct:
		return i.importProducts(ctx, table, mapping, actorID)
	default:
		return nil, ErrUnknownKind
	}
}

func (i *Importer) importCategories(ctx context.Context, table *Table, mapping map[string]string) (*Result, error) {
	wanted, ok := mapping["name"]
	if !ok || strings.TrimSpace(wanted) == "" {
		return nil, &MappingError{Field: "name"}
	}
	col, ok := ResolveStrict(table.Columns, wanted)
	if !ok {
		return nil, &ColumnNotFoundError{Column: wanted, Available: table.Columns}
	}

	result := &Result{Kind: KindCategory, Message: "Categorías importadas correctamente"}
	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range table.Rows {
			name, ok := row.Value(col)
			if !ok {
				continue
			}
			if _, err := repositories.GetOrCreateCategory(tx, name); err != nil {
				return err
			}
			// Counts every processed row, including ones that only
			// touched an existing category.
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"si":   true,
	"sí":   true,
	"yes":  true,
}

func (i *Importer) importVendors(ctx context.Context, table *Table, mapping map[string]string) (*Result, error) {
	wanted, ok := mapping["name"]
	if !ok || strings.TrimSpace(wanted) == "" {
		return nil, ErrVendorNameMapping
	}
	nameCol, ok := ResolveLoose(table.Columns, wanted)
	if !ok {
		return nil, ErrNameColumnNotFound
	}

	// Optional columns resolve once, before any row is touched. A mapped
	// column missing from the file is treated as if it were never mapped.
	optional := map[string]string{}
	for _, field := range []string{"contact_email", "phone", "is_active"} {
		wanted, mapped := mapping[field]
		if !mapped {
			continue
		}
		if col, found := ResolveLoose(table.Columns, wanted); found {
			optional[field] = col
		}
	}

	result := &Result{Kind: KindVendor, Message: "Proveedores importados correctamente"}
	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range table.Rows {
			name, ok := row.Value(nameCol)
			if !ok {
				continue
			}

			vendor := models.Vendor{Name: name, IsActive: true}
			if col, mapped := optional["contact_email"]; mapped {
				vendor.ContactEmail, _ = row.Value(col)
			}
			if col, mapped := optional["phone"]; mapped {
				vendor.Phone, _ = row.Value(col)
			}
			// A blank cell behaves like an absent column: the default
			// stays true.
			if col, mapped := optional["is_active"]; mapped {
				if value, ok := row.Value(col); ok {
					vendor.IsActive = truthy[strings.ToLower(value)]
				}
			}

			var existing models.Vendor
			err := tx.Where("name = ?", name).First(&existing).Error
			switch err {
			case nil:
				existing.ContactEmail = vendor.ContactEmail
				existing.Phone = vendor.Phone
				existing.IsActive = vendor.IsActive
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				result.Updated++
			case gorm.ErrRecordNotFound:
				// Select("*") forces the insert to carry an explicit
				// false, which the column default would otherwise eat.
				if err := tx.Select("*").Create(&vendor).Error; err != nil {
					return err
				}
				result.Created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// productFields are the mapping keys the product importer understands.
// Anything else in the mapping is ignored.
var productFields = map[string]bool{
	"name":            true,
	"description":     true,
	"technical_specs": true,
	"price":           true,
	"promo_price":     true,
	"category":        true,
	"vendor":          true,
}

func (i *Importer) importProducts(ctx context.Context, table *Table, mapping map[string]string, actorID string) (*Result, error) {
	known := make(map[string]string, len(mapping))
	for field, col := range mapping {
		if productFields[field] {
			known[field] = col
		}
	}
	// No mapping-stage requirement: an unmapped (or unresolvable) name
	// just means every row skips.
	resolver := NewFieldResolver(table, known)

	result := &Result{Kind: KindProduct, Message: "Importación completada"}
	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range table.Rows {
			name, ok := resolver.Value(row, "name")
			if !ok {
				continue
			}

			price := decimal.Zero
			if raw, ok := resolver.Value(row, "price"); ok {
				parsed, err := decimal.NewFromString(raw)
				if err != nil {
					col, _ := resolver.Column("price")
					return &InvalidDecimalError{Column: col, Value: raw}
				}
				price = parsed
			}

			var promoPrice *decimal.Decimal
			if raw, ok := resolver.Value(row, "promo_price"); ok {
				parsed, err := decimal.NewFromString(raw)
				if err != nil {
					col, _ := resolver.Column("promo_price")
					return &InvalidDecimalError{Column: col, Value: raw}
				}
				promoPrice = &parsed
			}

			var categoryID *string
			if categoryName, ok := resolver.Value(row, "category"); ok {
				category, err := repositories.GetOrCreateCategory(tx, categoryName)
				if err != nil {
					return err
				}
				categoryID = &category.ID
			}

			var vendorID *string
			if vendorName, ok := resolver.Value(row, "vendor"); ok {
				vendor, err := repositories.GetOrCreateVendor(tx, vendorName)
				if err != nil {
					return err
				}
				vendorID = &vendor.ID
			}

			description, _ := resolver.Value(row, "description")
			technicalSpecs, _ := resolver.Value(row, "technical_specs")

			var existing models.Product
			err := tx.Where("name = ?", name).First(&existing).Error
			switch err {
			case nil:
				existing.Description = description
				existing.TechnicalSpecs = technicalSpecs
				existing.Price = price
				existing.PromoPrice = promoPrice
				existing.CategoryID = categoryID
				existing.VendorID = vendorID
				existing.IsActive = true
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				result.Updated++
			case gorm.ErrRecordNotFound:
				slug, err := repositories.UniqueSlug(tx, "products", name)
				if err != nil {
					return err
				}
				product := models.Product{
					Name:           name,
					Slug:           slug,
					Description:    description,
					TechnicalSpecs: technicalSpecs,
					Price:          price,
					PromoPrice:     promoPrice,
					CategoryID:     categoryID,
					VendorID:       vendorID,
					IsActive:       true,
				}
				if actorID != "" {
					product.CreatedByID = &actorID
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				result.Created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
