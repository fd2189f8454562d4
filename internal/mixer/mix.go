package mixer

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidMultiplier = errors.New("multiplier must be greater than zero")

// Selection is one entry in a mix: a whole recipe (SectionKey == "") or a
// single named section, with an optional override that beats the recipe-level
// multiplier for this selection only.
type Selection struct {
	RecipeID   uuid.UUID        `json:"recipe_id"`
	SectionKey string           `json:"section_key,omitempty"`
	Override   *decimal.Decimal `json:"override,omitempty"`
}

// Mix is the selection state for one editing session. It is plain data owned
// by a single caller; nothing here is safe for concurrent mutation.
//
// Selections keep insertion order, one entry per (recipe, section) key.
// Recipe-level multipliers live beside them so changing a multiplier touches
// every selection of that recipe at once.
type Mix struct {
	selections  []Selection
	multipliers map[uuid.UUID]decimal.Decimal
}

func NewMix() *Mix {
	return &Mix{multipliers: make(map[uuid.UUID]decimal.Decimal)}
}

// AddSelection appends a selection. Adding an already-present
// (recipe, sectionKey) pair is a no-op, not a duplicate.
func (m *Mix) AddSelection(recipeID uuid.UUID, sectionKey string, multiplier decimal.Decimal) error {
	if !multiplier.IsPositive() {
		return ErrInvalidMultiplier
	}

	if m.find(recipeID, sectionKey) >= 0 {
		return nil
	}

	if _, ok := m.multipliers[recipeID]; !ok {
		m.multipliers[recipeID] = multiplier
	}
	m.selections = append(m.selections, Selection{
		RecipeID:   recipeID,
		SectionKey: sectionKey,
	})
	return nil
}

// RemoveSelection drops a selection. Removing the last selection of a recipe
// forgets that recipe's multiplier too.
func (m *Mix) RemoveSelection(recipeID uuid.UUID, sectionKey string) {
	idx := m.find(recipeID, sectionKey)
	if idx < 0 {
		return
	}
	m.selections = append(m.selections[:idx], m.selections[idx+1:]...)

	for _, sel := range m.selections {
		if sel.RecipeID == recipeID {
			return
		}
	}
	delete(m.multipliers, recipeID)
}

// SetMultiplier changes the recipe-level multiplier for every selection of
// the recipe that has no override.
func (m *Mix) SetMultiplier(recipeID uuid.UUID, multiplier decimal.Decimal) error {
	if !multiplier.IsPositive() {
		return ErrInvalidMultiplier
	}
	if _, ok := m.multipliers[recipeID]; !ok {
		return errors.New("recipe not in mix")
	}
	m.multipliers[recipeID] = multiplier
	return nil
}

// SetSectionOverride pins a selection to its own multiplier. A nil override
// reverts the selection to the recipe-level multiplier.
func (m *Mix) SetSectionOverride(recipeID uuid.UUID, sectionKey string, override *decimal.Decimal) error {
	if override != nil && !override.IsPositive() {
		return ErrInvalidMultiplier
	}
	idx := m.find(recipeID, sectionKey)
	if idx < 0 {
		return errors.New("selection not in mix")
	}
	m.selections[idx].Override = override
	return nil
}

// Selections returns the entries in insertion order.
func (m *Mix) Selections() []Selection {
	return append([]Selection(nil), m.selections...)
}

// Multiplier returns the recipe-level multiplier, defaulting to 1.
func (m *Mix) Multiplier(recipeID uuid.UUID) decimal.Decimal {
	if mult, ok := m.multipliers[recipeID]; ok {
		return mult
	}
	return decimal.NewFromInt(1)
}

// EffectiveMultiplier resolves override-over-recipe precedence for one
// selection.
func (m *Mix) EffectiveMultiplier(sel Selection) decimal.Decimal {
	if sel.Override != nil {
		return *sel.Override
	}
	return m.Multiplier(sel.RecipeID)
}

// RecipeIDs returns every distinct recipe in first-seen order.
func (m *Mix) RecipeIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, sel := range m.selections {
		if !seen[sel.RecipeID] {
			seen[sel.RecipeID] = true
			ids = append(ids, sel.RecipeID)
		}
	}
	return ids
}

func (m *Mix) find(recipeID uuid.UUID, sectionKey string) int {
	for i, sel := range m.selections {
		if sel.RecipeID == recipeID && sel.SectionKey == sectionKey {
			return i
		}
	}
	return -1
}
