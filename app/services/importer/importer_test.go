package importer

import (
	"context"
	"errors"
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

	// One in-memory database per test: keep the pool on a single
	// connection so every session sees the migrated schema.
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

func mustReadCSV(t *testing.T, csv string) *Table {
	t.Helper()
	table, err := ReadTable([]byte(csv), "datos.csv")
	require.NoError(t, err)
	return table
}

func TestImportCategories(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)

	table := mustReadCSV(t, "Categoría\nTelevisores\nLavadoras\n\nAudio\n")

	result, err := imp.Run(context.Background(), KindCategory, table, map[string]string{"name": "categoria"}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, "Categorías importadas correctamente", result.Message)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	var category models.Category
	require.NoError(t, db.First(&category, "name = ?", "Televisores").Error)
	assert.Equal(t, "televisores", category.Slug)
	assert.True(t, category.IsActive)
}

func TestImportCategoriesCountsExistingRows(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)

	table := mustReadCSV(t, "categoria\nTelevisores\nTelevisores\n")

	result, err := imp.Run(context.Background(), KindCategory, table, map[string]string{"name": "categoria"}, "")
	require.NoError(t, err)

	// Each processed row bumps the counter even when the category
	// already exists, so a file with duplicates over-reports.
	assert.Equal(t, 2, result.Created)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestImportCategoriesMissingNameMapping(t *testing.T) {
	imp := NewImporter(openTestDB(t))
	table := mustReadCSV(t, "categoria\nTelevisores\n")

	_, err := imp.Run(context.Background(), KindCategory, table, map[string]string{}, "")

	var mappingErr *MappingError
	require.True(t, errors.As(err, &mappingErr))
	assert.Equal(t, "Debe mapear un campo como 'name'", err.Error())
}

func TestImportCategoriesColumnNotFound(t *testing.T) {
	imp := NewImporter(openTestDB(t))
	table := mustReadCSV(t, "otra\nTelevisores\n")

	_, err := imp.Run(context.Background(), KindCategory, table, map[string]string{"name": "categoria"}, "")

	var colErr *ColumnNotFoundError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "categoria", colErr.Column)
	assert.Equal(t, "La columna 'categoria' no existe en el archivo. Columnas disponibles: [otra]", err.Error())
}

func TestImportVendorsUpsert(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{
		"name":          "nombre",
		"contact_email": "correo",
		"is_active":     "activo",
	}

	table := mustReadCSV(t, "Nombre,Correo,Activo\nElectro Andina,ventas@andina.pe,Sí\nDistribuidora Norte,norte@mail.pe,0\n")

	result, err := imp.Run(context.Background(), KindVendor, table, mapping, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)

	var andina models.Vendor
	require.NoError(t, db.First(&andina, "name = ?", "Electro Andina").Error)
	assert.Equal(t, "ventas@andina.pe", andina.ContactEmail)
	assert.True(t, andina.IsActive)

	var norte models.Vendor
	require.NoError(t, db.First(&norte, "name = ?", "Distribuidora Norte").Error)
	assert.False(t, norte.IsActive)

	// Second run over the same file only updates.
	result, err = imp.Run(context.Background(), KindVendor, table, mapping, "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 2, result.Updated)
}

func TestImportVendorsMissingNameMapping(t *testing.T) {
	imp := NewImporter(openTestDB(t))
	table := mustReadCSV(t, "nombre\nElectro Andina\n")

	_, err := imp.Run(context.Background(), KindVendor, table, map[string]string{}, "")
	assert.ErrorIs(t, err, ErrVendorNameMapping)
	assert.Equal(t, "Debe mapear el campo 'name'", err.Error())
}

func TestImportVendorsNameColumnNotFound(t *testing.T) {
	imp := NewImporter(openTestDB(t))
	table := mustReadCSV(t, "otra\nElectro Andina\n")

	_, err := imp.Run(context.Background(), KindVendor, table, map[string]string{"name": "nombre"}, "")
	assert.ErrorIs(t, err, ErrNameColumnNotFound)
	assert.Equal(t, "Columna name no encontrada", err.Error())
}

func TestImportVendorsIgnoresUnresolvableOptionalColumns(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{
		"name":          "nombre",
		"contact_email": "correo",
	}

	// The mapped email column is missing from the file: vendors import
	// anyway, just without that field.
	table := mustReadCSV(t, "nombre\nElectro Andina\n")

	result, err := imp.Run(context.Background(), KindVendor, table, mapping, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	var vendor models.Vendor
	require.NoError(t, db.First(&vendor, "name = ?", "Electro Andina").Error)
	assert.Empty(t, vendor.ContactEmail)
}

func TestImportVendorsCreatePersistsExplicitInactive(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{"name": "nombre", "is_active": "activo"}

	table := mustReadCSV(t, "nombre,activo\nDistribuidora Norte,0\n")

	_, err := imp.Run(context.Background(), KindVendor, table, mapping, "")
	require.NoError(t, err)

	// The falsy cell must survive the insert; the column default may
	// not win over an explicit false.
	var vendor models.Vendor
	require.NoError(t, db.First(&vendor, "name = ?", "Distribuidora Norte").Error)
	assert.False(t, vendor.IsActive)
}

func TestImportVendorsBlankActiveCellKeepsDefault(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{"name": "nombre", "is_active": "activo"}

	// A blank cell in a mapped is_active column behaves like an absent
	// column: the vendor stays active.
	table := mustReadCSV(t, "nombre,activo\nElectro Andina,\n")

	_, err := imp.Run(context.Background(), KindVendor, table, mapping, "")
	require.NoError(t, err)

	var vendor models.Vendor
	require.NoError(t, db.First(&vendor, "name = ?", "Electro Andina").Error)
	assert.True(t, vendor.IsActive)

	// Same on re-import: the blank cell must not deactivate it.
	_, err = imp.Run(context.Background(), KindVendor, table, mapping, "")
	require.NoError(t, err)

	require.NoError(t, db.First(&vendor, "name = ?", "Electro Andina").Error)
	assert.True(t, vendor.IsActive)
}

func TestImportVendorsActiveDefaultsTrueWithoutColumn(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)

	table := mustReadCSV(t, "nombre\nElectro Andina\n")

	_, err := imp.Run(context.Background(), KindVendor, table, map[string]string{"name": "nombre"}, "")
	require.NoError(t, err)

	var vendor models.Vendor
	require.NoError(t, db.First(&vendor, "name = ?", "Electro Andina").Error)
	assert.True(t, vendor.IsActive)
}

func TestImportVendorsSkipsBlankNames(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)

	table := mustReadCSV(t, "nombre\n   \nElectro Andina\n")

	result, err := imp.Run(context.Background(), KindVendor, table, map[string]string{"name": "nombre"}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestImportProducts(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)

	table := mustReadCSV(t, "Nombre,Precio,Categoria,Proveedor\nTelevisor LG 55,1299.90,Televisores,Electro Andina\nLavadora Samsung,899.00,Lavadoras,Electro Andina\n")
	mapping := map[string]string{
		"name":     "nombre",
		"price":    "precio",
		"category": "categoria",
		"vendor":   "proveedor",
		"ignored":  "whatever",
	}

	result, err := imp.Run(context.Background(), KindProduct, table, mapping, "staff-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, "Importación completada", result.Message)

	var product models.Product
	require.NoError(t, db.Preload("Category").Preload("Vendor").First(&product, "name = ?", "Televisor LG 55").Error)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("1299.90")))
	assert.Nil(t, product.PromoPrice)
	assert.True(t, product.IsActive)
	require.NotNil(t, product.CreatedByID)
	assert.Equal(t, "staff-1", *product.CreatedByID)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Televisores", product.Category.Name)
	require.NotNil(t, product.Vendor)
	assert.Equal(t, "Electro Andina", product.Vendor.Name)

	// The two rows share a vendor: get-or-create inside the
	// transaction must not duplicate it.
	var vendorCount int64
	require.NoError(t, db.Model(&models.Vendor{}).Count(&vendorCount).Error)
	assert.EqualValues(t, 1, vendorCount)
}

func TestImportProductsWithoutNameMappingSkipsEveryRow(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)

	table := mustReadCSV(t, "nombre,precio\nTelevisor LG,1000.00\n")

	// Products have no mapping-stage requirement: rows whose name cannot
	// be read are skipped silently.
	result, err := imp.Run(context.Background(), KindProduct, table, map[string]string{"price": "precio"}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Updated)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestImportProductsUpsertByName(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{"name": "nombre", "price": "precio"}

	first := mustReadCSV(t, "nombre,precio\nTelevisor LG,1000.00\n")
	_, err := imp.Run(context.Background(), KindProduct, first, mapping, "")
	require.NoError(t, err)

	second := mustReadCSV(t, "nombre,precio\nTelevisor LG,1100.00\n")
	result, err := imp.Run(context.Background(), KindProduct, second, mapping, "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var product models.Product
	require.NoError(t, db.First(&product, "name = ?", "Televisor LG").Error)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("1100.00")))
}

func TestImportProductsDuplicateNamesLastRowWins(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{"name": "nombre", "price": "precio"}

	table := mustReadCSV(t, "nombre,precio\nTelevisor LG,1000.00\nTelevisor LG,1200.00\n")
	result, err := imp.Run(context.Background(), KindProduct, table, mapping, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)

	var product models.Product
	require.NoError(t, db.First(&product, "name = ?", "Televisor LG").Error)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("1200.00")))
}

func TestImportProductsPriceDefaultsToZero(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)

	table := mustReadCSV(t, "nombre\nTelevisor LG\n")

	_, err := imp.Run(context.Background(), KindProduct, table, map[string]string{"name": "nombre"}, "")
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.First(&product, "name = ?", "Televisor LG").Error)
	assert.True(t, product.Price.IsZero())
	assert.Nil(t, product.PromoPrice)
}

func TestImportProductsInvalidPriceAbortsEverything(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{"name": "nombre", "price": "precio"}

	table := mustReadCSV(t, "nombre,precio\nTelevisor LG,1000.00\nLavadora,no-es-numero\n")

	_, err := imp.Run(context.Background(), KindProduct, table, mapping, "")
	var decimalErr *InvalidDecimalError
	require.True(t, errors.As(err, &decimalErr))
	assert.Equal(t, "no-es-numero", decimalErr.Value)

	// The transaction rolled back: not even the first valid row landed.
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestImportProductsPromoPrice(t *testing.T) {
	db := openTestDB(t)
	imp := NewImporter(db)
	mapping := map[string]string{"name": "nombre", "price": "precio", "promo_price": "oferta"}

	table := mustReadCSV(t, "nombre,precio,oferta\nTelevisor LG,1000.00,899.90\nLavadora,500.00,\n")

	_, err := imp.Run(context.Background(), KindProduct, table, mapping, "")
	require.NoError(t, err)

	var tv models.Product
	require.NoError(t, db.First(&tv, "name = ?", "Televisor LG").Error)
	require.NotNil(t, tv.PromoPrice)
	assert.True(t, tv.PromoPrice.Equal(decimal.RequireFromString("899.90")))

	var lavadora models.Product
	require.NoError(t, db.First(&lavadora, "name = ?", "Lavadora").Error)
	assert.Nil(t, lavadora.PromoPrice)
}

func TestImportUnknownKind(t *testing.T) {
	imp := NewImporter(openTestDB(t))
	table := mustReadCSV(t, "nombre\nx\n")

	_, err := imp.Run(context.Background(), "warehouse", table, map[string]string{"name": "nombre"}, "")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
