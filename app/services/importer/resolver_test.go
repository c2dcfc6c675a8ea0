package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLoose(t *testing.T) {
	columns := []string{"Nombre ", "PRECIO", "descripción"}

	col, ok := ResolveLoose(columns, "nombre")
	assert.True(t, ok)
	assert.Equal(t, "Nombre ", col)

	col, ok = ResolveLoose(columns, "precio")
	assert.True(t, ok)
	assert.Equal(t, "PRECIO", col)

	_, ok = ResolveLoose(columns, "categoria")
	assert.False(t, ok)
}

func TestResolveStrictStripsDiacritics(t *testing.T) {
	columns := []string{"Categoría", "Año"}

	col, ok := ResolveStrict(columns, "categoria")
	assert.True(t, ok)
	assert.Equal(t, "Categoría", col)

	col, ok = ResolveStrict(columns, "ano")
	assert.True(t, ok)
	assert.Equal(t, "Año", col)
}

func TestResolveStrictNoMatch(t *testing.T) {
	_, ok := ResolveStrict([]string{"nombre"}, "precio")
	assert.False(t, ok)
}

func TestNewFieldResolver(t *testing.T) {
	table := &Table{Columns: []string{"Nombre", "Precio"}}

	resolver := NewFieldResolver(table, map[string]string{
		"name":  "nombre",
		"price": "precio",
	})

	row := Row{"Nombre": "Televisor", "Precio": "999.90"}
	name, ok := resolver.Value(row, "name")
	assert.True(t, ok)
	assert.Equal(t, "Televisor", name)

	_, ok = resolver.Value(row, "description")
	assert.False(t, ok)
}

func TestNewFieldResolverSkipsBlankMappingValues(t *testing.T) {
	// A trailing comma in the header row produces an empty-named
	// column; a blank mapping value must not resolve against it.
	table := &Table{Columns: []string{"Nombre", ""}}

	resolver := NewFieldResolver(table, map[string]string{
		"name":  "nombre",
		"price": "",
	})

	_, ok := resolver.Column("price")
	assert.False(t, ok)

	row := Row{"Nombre": "Televisor", "": "999.90"}
	_, ok = resolver.Value(row, "price")
	assert.False(t, ok)
}

func TestNewFieldResolverMissingColumnReadsAsMissing(t *testing.T) {
	table := &Table{Columns: []string{"Nombre"}}

	resolver := NewFieldResolver(table, map[string]string{
		"name":  "nombre",
		"price": "precio",
	})

	// A mapped column absent from the header behaves like an unmapped
	// field: no resolution, cells read as missing.
	_, ok := resolver.Column("price")
	assert.False(t, ok)

	row := Row{"Nombre": "Televisor"}
	_, ok = resolver.Value(row, "price")
	assert.False(t, ok)

	name, ok := resolver.Value(row, "name")
	require.True(t, ok)
	assert.Equal(t, "Televisor", name)
}
