package ingredient

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

// ErrInvalidIngredient means the pack data cannot produce a unit cost
// (non-positive pack quantity or negative price). Callers treat it as a
// per-line failure, never a reason to abort a whole recipe.
var ErrInvalidIngredient = errors.New("ingredient has invalid pack data")

// CostPerBaseUnit derives the price of one base unit (gram, milliliter, or
// each) of the ingredient's pack domain.
//
// A 1000 g pack bought for 2.00 costs 0.002 per gram.
func CostPerBaseUnit(ing *Ingredient) (decimal.Decimal, error) {
	if !ing.PackQuantity.IsPositive() || ing.PackPrice.IsNegative() {
		return decimal.Decimal{}, ErrInvalidIngredient
	}

	baseQty := ing.PackQuantity.Mul(units.FactorToBase(ing.PackUnit))
	return ing.PackPrice.Div(baseQty), nil
}
