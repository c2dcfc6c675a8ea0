package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTableCSV(t *testing.T) {
	data := []byte("Nombre,Precio\nTelevisor LG,1299.90\nLavadora Samsung,899.00\n")

	table, err := ReadTable(data, "productos.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Nombre", "Precio"}, table.Columns)
	require.Len(t, table.Rows, 2)

	name, ok := table.Rows[0].Value("Nombre")
	assert.True(t, ok)
	assert.Equal(t, "Televisor LG", name)
}

func TestReadTableCSVStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name\nfoo\n")...)

	table, err := ReadTable(data, "datos.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, table.Columns)
}

func TestReadTableCSVShortRow(t *testing.T) {
	data := []byte("name,price\nSolo nombre\n")

	table, err := ReadTable(data, "datos.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	_, ok := table.Rows[0].Value("price")
	assert.False(t, ok)
}

func TestReadTableCSVTrimsHeaderAndCells(t *testing.T) {
	data := []byte(" name , price \n  Televisor  , 100 \n")

	table, err := ReadTable(data, "datos.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price"}, table.Columns)

	name, ok := table.Rows[0].Value("name")
	assert.True(t, ok)
	assert.Equal(t, "Televisor", name)
}

func TestReadTableEmptyCSV(t *testing.T) {
	table, err := ReadTable(nil, "vacio.csv")
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	_, err := ReadTable([]byte("whatever"), "notas.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadTableMalformedXLSX(t *testing.T) {
	_, err := ReadTable([]byte("this is not a zip archive"), "datos.xlsx")

	var malformed *MalformedFileError
	assert.True(t, errors.As(err, &malformed))
}

func TestRowValueBlankCell(t *testing.T) {
	row := Row{"name": "   "}

	_, ok := row.Value("name")
	assert.False(t, ok)

	_, ok = row.Value("missing")
	assert.False(t, ok)
}
