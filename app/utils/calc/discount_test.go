package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPromoDiscountPercent(t *testing.T) {
	promo := d("75.00")
	assert.True(t, PromoDiscountPercent(d("100.00"), &promo).Equal(d("25")))

	assert.True(t, PromoDiscountPercent(d("100.00"), nil).IsZero())

	samePrice := d("100.00")
	assert.True(t, PromoDiscountPercent(d("100.00"), &samePrice).IsZero())

	zeroPrice := d("10.00")
	assert.True(t, PromoDiscountPercent(decimal.Zero, &zeroPrice).IsZero())
}

func TestPromoSavings(t *testing.T) {
	promo := d("899.90")
	assert.True(t, PromoSavings(d("1000.00"), &promo).Equal(d("100.10")))

	assert.True(t, PromoSavings(d("1000.00"), nil).IsZero())
}
