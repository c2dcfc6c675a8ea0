package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ResolveLoose finds the first header matching want after trimming and
// case folding. It returns the header's original spelling.
func ResolveLoose(columns []string, want string) (string, bool) {
	target := strings.TrimSpace(want)
	for _, col := range columns {
		if strings.EqualFold(strings.TrimSpace(col), target) {
			return col, true
		}
	}
	return "", false
}

// ResolveStrict matches after stripping diacritics as well, so headers
// like "Categoría" resolve against "categoria".
func ResolveStrict(columns []string, want string) (string, bool) {
	target := normalizeHeader(want)
	for _, col := range columns {
		if normalizeHeader(col) == target {
			return col, true
		}
	}
	return "", false
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeHeader(s string) string {
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}

// FieldResolver resolves each mapped field to its actual header once,
// so per-row lookups use the precomputed column names.
type FieldResolver struct {
	columns map[string]string
}

// NewFieldResolver resolves every entry of mapping (field -> wanted
// column) against the table header with loose matching. A blank mapping
// value, or a mapped column that does not exist in the file, leaves the
// field unresolved, exactly like a field absent from the mapping: its
// cells read as missing.
func NewFieldResolver(table *Table, mapping map[string]string) *FieldResolver {
	resolved := make(map[string]string, len(mapping))
	for field, wanted := range mapping {
		if strings.TrimSpace(wanted) == "" {
			continue
		}
		if col, ok := ResolveLoose(table.Columns, wanted); ok {
			resolved[field] = col
		}
	}
	return &FieldResolver{columns: resolved}
}

// Column returns the resolved header for field, if the field was mapped.
func (f *FieldResolver) Column(field string) (string, bool) {
	col, ok := f.columns[field]
	return col, ok
}

// Value reads the cell for field from row. ok is false when the field
// was never mapped or the cell is blank.
func (f *FieldResolver) Value(row Row, field string) (string, bool) {
	col, ok := f.columns[field]
	if !ok {
		return "", false
	}
	return row.Value(col)
}
