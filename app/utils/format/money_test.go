package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSoles(t *testing.T) {
	assert.Equal(t, "S/ 1,234.50", Soles(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "S/ 0.00", Soles(decimal.Zero))
	assert.Equal(t, "S/ 899.90", Soles(decimal.RequireFromString("899.90")))
}
