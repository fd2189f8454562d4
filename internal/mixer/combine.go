package mixer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
	"github.com/Matt-OFGC/plato-app-sub003/internal/recipe"
	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

// CombinedLine is the merged total for one ingredient across every selection.
// Quantity is expressed in the unit of the first usage seen for that
// ingredient; later usages in other units are converted into it before
// summing.
type CombinedLine struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           units.Unit      `json:"unit"`
	Cost           decimal.Decimal `json:"cost"`
	Notes          []string        `json:"notes,omitempty"`
}

// Warning flags a line that could not be fully merged. QuantityExcluded and
// CostExcluded say which totals the line is missing from; a line can still
// be costed when only its display-unit conversion failed.
type Warning struct {
	RecipeID         uuid.UUID `json:"recipe_id"`
	SectionKey       string    `json:"section_key,omitempty"`
	IngredientID     uuid.UUID `json:"ingredient_id,omitempty"`
	Reason           string    `json:"reason"`
	QuantityExcluded bool      `json:"quantity_excluded,omitempty"`
	CostExcluded     bool      `json:"cost_excluded,omitempty"`
}

// CombineResult is built fresh on every Combine call and never persisted
// here; saving it as a new recipe is the caller's business.
type CombineResult struct {
	Lines        []CombinedLine  `json:"lines"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Currency     string          `json:"currency"`
	Warnings     []Warning       `json:"warnings,omitempty"`
	SkippedLines int             `json:"skipped_lines,omitempty"`
}

// Combine walks every selection in insertion order and merges usages by
// ingredient identity.
//
// The quantity merge and the cost sum are independent: cost only needs a
// domain-correct conversion into the ingredient's pack base unit, so a line
// that cannot be displayed in the first-seen unit can still be costed, and
// vice versa. Warnings make every exclusion visible.
//
// The receiver is not mutated; for a fixed mix and catalog the output is
// identical on every call.
func Combine(m *Mix, recipes map[uuid.UUID]*recipe.Recipe, ingredients map[uuid.UUID]*ingredient.Ingredient) *CombineResult {
	result := &CombineResult{TotalCost: decimal.Zero}

	lineIndex := make(map[uuid.UUID]int)
	noteSeen := make(map[uuid.UUID]map[string]bool)

	for _, sel := range m.selections {
		rec, ok := recipes[sel.RecipeID]
		if !ok {
			result.Warnings = append(result.Warnings, Warning{
				RecipeID:   sel.RecipeID,
				SectionKey: sel.SectionKey,
				Reason:     "recipe not found",
			})
			continue
		}

		var items []recipe.Usage
		if sel.SectionKey == "" {
			items = rec.FlattenedItems()
		} else if items = rec.SectionItems(sel.SectionKey); items == nil {
			result.Warnings = append(result.Warnings, Warning{
				RecipeID:   sel.RecipeID,
				SectionKey: sel.SectionKey,
				Reason:     fmt.Sprintf("section %q not found", sel.SectionKey),
			})
			continue
		}

		mult := m.EffectiveMultiplier(sel)

		for _, u := range items {
			if !u.Valid() {
				result.SkippedLines++
				continue
			}

			ing, ok := ingredients[u.IngredientID]
			if !ok {
				result.Warnings = append(result.Warnings, Warning{
					RecipeID:         sel.RecipeID,
					SectionKey:       sel.SectionKey,
					IngredientID:     u.IngredientID,
					Reason:           "ingredient not found",
					QuantityExcluded: true,
					CostExcluded:     true,
				})
				continue
			}

			effQty := u.Quantity.Mul(mult)

			idx, exists := lineIndex[ing.ID]
			if !exists {
				lineIndex[ing.ID] = len(result.Lines)
				noteSeen[ing.ID] = make(map[string]bool)
				result.Lines = append(result.Lines, CombinedLine{
					IngredientID:   ing.ID,
					IngredientName: ing.Name,
					Quantity:       decimal.Zero,
					Unit:           u.Unit,
					Cost:           decimal.Zero,
				})
				idx = lineIndex[ing.ID]
			}
			line := &result.Lines[idx]

			// Quantity merge, in the unit the line was opened with.
			merged, err := units.Convert(effQty, u.Unit, line.Unit, ing.Density)
			if err != nil {
				result.Warnings = append(result.Warnings, Warning{
					RecipeID:         sel.RecipeID,
					SectionKey:       sel.SectionKey,
					IngredientID:     ing.ID,
					Reason:           fmt.Sprintf("cannot express %s in %s: %v", u.Unit, line.Unit, err),
					QuantityExcluded: true,
				})
			} else {
				line.Quantity = line.Quantity.Add(merged)
			}

			// Cost sum, independent of the display-unit merge.
			cost, err := recipe.UsageCost(u, ing)
			if err != nil {
				result.Warnings = append(result.Warnings, Warning{
					RecipeID:     sel.RecipeID,
					SectionKey:   sel.SectionKey,
					IngredientID: ing.ID,
					Reason:       err.Error(),
					CostExcluded: true,
				})
			} else {
				scaled := cost.Mul(mult)
				line.Cost = line.Cost.Add(scaled)
				result.TotalCost = result.TotalCost.Add(scaled)
				if result.Currency == "" {
					result.Currency = ing.Currency
				}
			}

			if u.Note != "" && !noteSeen[ing.ID][u.Note] {
				noteSeen[ing.ID][u.Note] = true
				line.Notes = append(line.Notes, u.Note)
			}
		}
	}

	return result
}
