package importer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("Formato no soportado. Use CSV o XLSX")

// ErrUnknownKind is returned when the requested import target does not exist.
var ErrUnknownKind = errors.New("Modelo no válido")

// ErrVendorNameMapping is returned when a vendor import mapping has no
// name entry.
var ErrVendorNameMapping = errors.New("Debe mapear el campo 'name'")

// ErrNameColumnNotFound is returned when the vendor name column cannot
// be located in the file header.
var ErrNameColumnNotFound = errors.New("Columna name no encontrada")

// MappingError reports a mapping that is missing a required field.
type MappingError struct {
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("Debe mapear un campo como '%s'", e.Field)
}

// ColumnNotFoundError reports a mapped column absent from the file header.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("La columna '%s' no existe en el archivo. Columnas disponibles: %v", e.Column, e.Available)
}

// MalformedFileError wraps a parse failure from the underlying reader.
type MalformedFileError struct {
	Err error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("Archivo ilegible: %v", e.Err)
}

func (e *MalformedFileError) Unwrap() error {
	return e.Err
}

// InvalidDecimalError reports a cell that could not be parsed as a price.
type InvalidDecimalError struct {
	Column string
	Value  string
}

func (e *InvalidDecimalError) Error() string {
	return fmt.Sprintf("Valor decimal inválido en la columna '%s': '%s'", e.Column, e.Value)
}
