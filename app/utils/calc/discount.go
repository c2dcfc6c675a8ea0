package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PromoDiscountPercent returns the percentage a promo price shaves off the
// list price, rounded to 2 decimals. Zero when there is no real discount.
func PromoDiscountPercent(price decimal.Decimal, promo *decimal.Decimal) decimal.Decimal {
	if promo == nil || price.IsZero() || promo.GreaterThanOrEqual(price) {
		return decimal.Zero
	}
	return price.Sub(*promo).Div(price).Mul(hundred).Round(2)
}

// PromoSavings returns the absolute amount saved by the promo price.
func PromoSavings(price decimal.Decimal, promo *decimal.Decimal) decimal.Decimal {
	if promo == nil || promo.GreaterThanOrEqual(price) {
		return decimal.Zero
	}
	return price.Sub(*promo).Round(2)
}
