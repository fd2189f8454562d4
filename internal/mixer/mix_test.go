package mixer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestAddSelection_IdempotentByKey(t *testing.T) {
	mix := NewMix()
	recipeID := uuid.New()

	if err := mix.AddSelection(recipeID, "Sponge", dec("1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mix.AddSelection(recipeID, "Sponge", dec("1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(mix.Selections()); got != 1 {
		t.Fatalf("expected 1 selection, got %d", got)
	}
}

func TestAddSelection_RejectsBadMultiplier(t *testing.T) {
	mix := NewMix()

	if err := mix.AddSelection(uuid.New(), "", decimal.Zero); err != ErrInvalidMultiplier {
		t.Fatalf("expected ErrInvalidMultiplier, got %v", err)
	}
	if err := mix.AddSelection(uuid.New(), "", dec("-2")); err != ErrInvalidMultiplier {
		t.Fatalf("expected ErrInvalidMultiplier, got %v", err)
	}
}

func TestRemoveSelection_LastOneForgetsRecipe(t *testing.T) {
	mix := NewMix()
	recipeID := uuid.New()

	mix.AddSelection(recipeID, "A", dec("3"))
	mix.AddSelection(recipeID, "B", dec("3"))

	mix.RemoveSelection(recipeID, "A")
	if !mix.Multiplier(recipeID).Equal(dec("3")) {
		t.Fatal("multiplier should survive while a selection remains")
	}

	mix.RemoveSelection(recipeID, "B")
	if len(mix.Selections()) != 0 {
		t.Fatal("expected empty mix")
	}
	// Re-adding starts from a clean slate, not the stale multiplier.
	mix.AddSelection(recipeID, "A", dec("1"))
	if !mix.Multiplier(recipeID).Equal(dec("1")) {
		t.Fatalf("expected multiplier 1 after re-add, got %s", mix.Multiplier(recipeID))
	}
}

func TestOverridePrecedence_SurvivesMultiplierChanges(t *testing.T) {
	mix := NewMix()
	recipeID := uuid.New()

	mix.AddSelection(recipeID, "Base", dec("3"))
	mix.AddSelection(recipeID, "Topping", dec("3"))

	override := dec("1")
	if err := mix.SetSectionOverride(recipeID, "Topping", &override); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Changing the recipe-level multiplier afterwards must not touch the
	// overridden section.
	if err := mix.SetMultiplier(recipeID, dec("5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, sel := range mix.Selections() {
		eff := mix.EffectiveMultiplier(sel)
		switch sel.SectionKey {
		case "Base":
			if !eff.Equal(dec("5")) {
				t.Errorf("Base: expected 5, got %s", eff)
			}
		case "Topping":
			if !eff.Equal(dec("1")) {
				t.Errorf("Topping: expected override 1, got %s", eff)
			}
		}
	}
}

func TestSectionOverride_NilReverts(t *testing.T) {
	mix := NewMix()
	recipeID := uuid.New()

	mix.AddSelection(recipeID, "Base", dec("2"))
	override := dec("7")
	mix.SetSectionOverride(recipeID, "Base", &override)
	mix.SetSectionOverride(recipeID, "Base", nil)

	sel := mix.Selections()[0]
	if !mix.EffectiveMultiplier(sel).Equal(dec("2")) {
		t.Fatalf("expected revert to 2, got %s", mix.EffectiveMultiplier(sel))
	}
}

func TestSetMultiplier_UnknownRecipe(t *testing.T) {
	mix := NewMix()
	if err := mix.SetMultiplier(uuid.New(), dec("2")); err == nil {
		t.Fatal("expected error for recipe not in mix")
	}
}
