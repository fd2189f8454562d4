package recipe

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

var ErrInvalidYield = errors.New("recipe yield must be greater than zero")

// UsageCost prices one recipe line: the usage quantity is expressed in the
// base unit of the ingredient's pack domain (crossing mass/volume through
// the ingredient density when needed), then multiplied by the per-base-unit
// cost. Full precision throughout; rounding belongs to the display layer.
func UsageCost(u Usage, ing *ingredient.Ingredient) (decimal.Decimal, error) {
	perBase, err := ingredient.CostPerBaseUnit(ing)
	if err != nil {
		return decimal.Decimal{}, err
	}

	baseQty, err := units.ToBase(u.Quantity, u.Unit, ing.PackDomain(), ing.Density)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return baseQty.Mul(perBase), nil
}

// LineCost is one successfully costed line of a recipe breakdown.
type LineCost struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           units.Unit      `json:"unit"`
	Cost           decimal.Decimal `json:"cost"`
}

// LineError records a line excluded from the total, and why.
type LineError struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	Reason       string    `json:"reason"`
}

// CostBreakdown is the aggregated cost of one recipe. A non-empty LineErrors
// or a non-zero SkippedLines means the totals are partial, and callers must
// surface that rather than show the numbers alone.
type CostBreakdown struct {
	TotalCost         decimal.Decimal `json:"total_cost"`
	CostPerOutputUnit decimal.Decimal `json:"cost_per_output_unit"`
	Currency          string          `json:"currency"`
	Lines             []LineCost      `json:"lines"`
	LineErrors        []LineError     `json:"line_errors,omitempty"`
	SkippedLines      int             `json:"skipped_lines,omitempty"`
}

// AggregateCost walks every usage of the recipe in stored order and sums the
// line costs.
//
// Bad lines never abort the recipe: usages with a non-positive quantity or a
// nil ingredient reference are skipped and counted, and lines whose
// ingredient is missing from the lookup or whose costing fails are excluded
// and recorded as line errors.
func AggregateCost(r *Recipe, ingredients map[uuid.UUID]*ingredient.Ingredient) (*CostBreakdown, error) {
	if !r.YieldQuantity.IsPositive() {
		return nil, ErrInvalidYield
	}

	breakdown := &CostBreakdown{TotalCost: decimal.Zero}

	for _, u := range r.FlattenedItems() {
		if !u.Valid() {
			breakdown.SkippedLines++
			continue
		}

		ing, ok := ingredients[u.IngredientID]
		if !ok {
			breakdown.LineErrors = append(breakdown.LineErrors, LineError{
				IngredientID: u.IngredientID,
				Reason:       "ingredient not found",
			})
			continue
		}

		cost, err := UsageCost(u, ing)
		if err != nil {
			breakdown.LineErrors = append(breakdown.LineErrors, LineError{
				IngredientID: u.IngredientID,
				Reason:       err.Error(),
			})
			continue
		}

		breakdown.Lines = append(breakdown.Lines, LineCost{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Quantity:       u.Quantity,
			Unit:           u.Unit,
			Cost:           cost,
		})
		breakdown.TotalCost = breakdown.TotalCost.Add(cost)

		if breakdown.Currency == "" {
			breakdown.Currency = ing.Currency
		}
	}

	breakdown.CostPerOutputUnit = breakdown.TotalCost.Div(r.YieldQuantity)
	return breakdown, nil
}
