package admin

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/services/importer"
	"github.com/unrolled/render"
)

// 10 MB cap on uploaded spreadsheets.
const maxImportSize = 10 << 20

type ImportHandler struct {
	render   *render.Render
	importer *importer.Importer
	events   repositories.EventLogRepositoryImpl
}

func NewImportHandler(r *render.Render, imp *importer.Importer, events repositories.EventLogRepositoryImpl) *ImportHandler {
	return &ImportHandler{render: r, importer: imp, events: events}
}

// Import receives a multipart form with a spreadsheet, the target model
// and a JSON mapping of model fields to column headers, and runs the
// bulk import.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Archivo requerido"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Archivo requerido"})
		return
	}
	defer file.Close()

	kind := r.FormValue("model")
	if kind == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Modelo requerido"})
		return
	}

	rawMapping := r.FormValue("mapping")
	if rawMapping == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Mapping inválido"})
		return
	}
	var mapping map[string]string
	if err := json.Unmarshal([]byte(rawMapping), &mapping); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Mapping inválido"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		log.Printf("ImportHandler.Import: reading upload failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Error interno"})
		return
	}

	table, err := importer.ReadTable(data, header.Filename)
	if err != nil {
		h.importError(w, err)
		return
	}

	actorID := ""
	if user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User); ok {
		actorID = user.ID
	}

	result, err := h.importer.Run(r.Context(), kind, table, mapping, actorID)
	if err != nil {
		h.importError(w, err)
		return
	}

	var actor *string
	if actorID != "" {
		actor = &actorID
	}
	h.events.Record(r.Context(), actor, models.EventImportCompleted, map[string]interface{}{
		"model":   result.Kind,
		"file":    header.Filename,
		"created": result.Created,
		"updated": result.Updated,
	})

	response := map[string]interface{}{
		"detail":  result.Message,
		"created": result.Created,
	}
	// The category report has no update notion: every processed row
	// counts as created.
	if result.Kind != importer.KindCategory {
		response["updated"] = result.Updated
	}
	h.render.JSON(w, http.StatusOK, response)
}

// importError maps importer failures onto HTTP statuses: anything the
// uploader can fix is a 400 with a descriptive Spanish message.
func (h *ImportHandler) importError(w http.ResponseWriter, err error) {
	var (
		mappingErr *importer.MappingError
		columnErr  *importer.ColumnNotFoundError
		fileErr    *importer.MalformedFileError
		decimalErr *importer.InvalidDecimalError
	)
	switch {
	case errors.Is(err, importer.ErrUnsupportedFormat),
		errors.Is(err, importer.ErrUnknownKind),
		errors.Is(err, importer.ErrVendorNameMapping),
		errors.Is(err, importer.ErrNameColumnNotFound),
		errors.As(err, &mappingErr),
		errors.As(err, &columnErr),
		errors.As(err, &fileErr),
		errors.As(err, &decimalErr):
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
	default:
		log.Printf("ImportHandler.Import: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Error interno"})
	}
}
