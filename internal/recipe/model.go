package recipe

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

// Usage is one line of a recipe: how much of an ingredient, in what unit.
type Usage struct {
	ID           int64           `json:"id,omitempty"`
	IngredientID uuid.UUID       `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         units.Unit      `json:"unit"`
	Note         string          `json:"note,omitempty"`
}

// Valid reports whether the usage participates in cost math at all.
// Zero/negative quantities and missing ingredient references are skipped.
func (u Usage) Valid() bool {
	return u.IngredientID != uuid.Nil && u.Quantity.IsPositive()
}

// Section groups usages with method notes. Bake fields are metadata only
// and take no part in costing.
type Section struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Position int     `json:"position"`
	BakeTemp string  `json:"bake_temp,omitempty"`
	BakeTime string  `json:"bake_time,omitempty"`
	Method   string  `json:"method,omitempty"`
	Items    []Usage `json:"items"`
}

// Recipe holds either Sections or flat Items. When sections are present
// the flat item list is ignored for costing.
type Recipe struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       string          `json:"owner_id"`
	Name          string          `json:"name"`
	YieldQuantity decimal.Decimal `json:"yield_quantity"`
	YieldUnit     units.Unit      `json:"yield_unit"`
	Items         []Usage         `json:"items,omitempty"`
	Sections      []Section       `json:"sections,omitempty"`
}

// FlattenedItems returns every usage in stored order: sections in position
// order when present, otherwise the flat item list.
func (r *Recipe) FlattenedItems() []Usage {
	if len(r.Sections) == 0 {
		return r.Items
	}
	var out []Usage
	for _, s := range r.Sections {
		out = append(out, s.Items...)
	}
	return out
}

// SectionItems returns the usages of the named section key (its position
// rendered as a stable string id), or nil if no such section exists.
func (r *Recipe) SectionItems(key string) []Usage {
	for _, s := range r.Sections {
		if s.Key() == key {
			return s.Items
		}
	}
	return nil
}

// Key is the stable identifier a section is selected by in the mixer.
// Named sections use the name; unnamed ones fall back to their position.
func (s *Section) Key() string {
	if s.Name != "" {
		return s.Name
	}
	return "section-" + strconv.Itoa(s.Position)
}
