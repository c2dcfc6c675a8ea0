package admin

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/services/importer"
	"github.com/dquispe/electromarket/app/utils/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newImportHandler(t *testing.T) (*ImportHandler, *gorm.DB) {
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
		&models.EventLog{},
	)
	require.NoError(t, err)

	handler := NewImportHandler(
		renderer.New(),
		importer.NewImporter(db),
		repositories.NewEventLogRepository(db),
	)
	return handler, db
}

type importForm struct {
	filename string
	file     string
	model    string
	mapping  string
}

func buildImportRequest(t *testing.T, form importForm) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if form.filename != "" {
		part, err := writer.CreateFormFile("file", form.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(form.file))
		require.NoError(t, err)
	}
	if form.model != "" {
		require.NoError(t, writer.WriteField("model", form.model))
	}
	if form.mapping != "" {
		require.NoError(t, writer.WriteField("mapping", form.mapping))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestImportRequiresFile(t *testing.T) {
	handler, _ := newImportHandler(t)

	req := buildImportRequest(t, importForm{model: "category", mapping: `{"name":"categoria"}`})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Archivo requerido", decodeBody(t, rec)["detail"])
}

func TestImportRequiresModel(t *testing.T) {
	handler, _ := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "datos.csv",
		file:     "categoria\nTelevisores\n",
		mapping:  `{"name":"categoria"}`,
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Modelo requerido", decodeBody(t, rec)["detail"])
}

func TestImportRequiresValidMapping(t *testing.T) {
	handler, _ := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "datos.csv",
		file:     "categoria\nTelevisores\n",
		model:    "category",
		mapping:  "{not json",
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mapping inválido", decodeBody(t, rec)["detail"])
}

func TestImportRejectsUnknownModel(t *testing.T) {
	handler, _ := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "datos.csv",
		file:     "nombre\nAlgo\n",
		model:    "warehouse",
		mapping:  `{"name":"nombre"}`,
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Modelo no válido", decodeBody(t, rec)["detail"])
}

func TestImportRejectsUnsupportedFormat(t *testing.T) {
	handler, _ := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "datos.txt",
		file:     "categoria\nTelevisores\n",
		model:    "category",
		mapping:  `{"name":"categoria"}`,
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Formato no soportado. Use CSV o XLSX", decodeBody(t, rec)["detail"])
}

func TestImportVendorsRequireNameMapping(t *testing.T) {
	handler, _ := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "proveedores.csv",
		file:     "nombre\nElectro Andina\n",
		model:    "vendor",
		mapping:  `{"contact_email":"correo"}`,
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Debe mapear el campo 'name'", decodeBody(t, rec)["detail"])
}

func TestImportCategoriesHappyPath(t *testing.T) {
	handler, db := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "categorias.csv",
		file:     "Categoría\nTelevisores\nLavadoras\n",
		model:    "category",
		mapping:  `{"name":"categoria"}`,
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "Categorías importadas correctamente", payload["detail"])
	assert.EqualValues(t, 2, payload["created"])

	// The category report never mentions updates.
	_, hasUpdated := payload["updated"]
	assert.False(t, hasUpdated)

	var event models.EventLog
	require.NoError(t, db.First(&event, "event_type = ?", models.EventImportCompleted).Error)
	assert.Contains(t, event.Metadata, "categorias.csv")
}

func TestImportProductsHappyPath(t *testing.T) {
	handler, db := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "productos.csv",
		file:     "Nombre,Precio\nTelevisor LG,1299.90\n",
		model:    "product",
		mapping:  `{"name":"nombre","price":"precio"}`,
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "Importación completada", payload["detail"])
	assert.EqualValues(t, 1, payload["created"])
	assert.EqualValues(t, 0, payload["updated"])

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestImportInvalidDecimalReturns400(t *testing.T) {
	handler, db := newImportHandler(t)

	req := buildImportRequest(t, importForm{
		filename: "productos.csv",
		file:     "nombre,precio\nTelevisor,abc\n",
		model:    "product",
		mapping:  `{"name":"nombre","price":"precio"}`,
	})
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
