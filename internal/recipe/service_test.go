package recipe

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
)

func seedCatalog(t *testing.T) (*ingredient.InMemoryRepository, *ingredient.Ingredient, *ingredient.Ingredient) {
	t.Helper()

	repo := ingredient.NewInMemoryRepository()
	ingredientService := ingredient.NewService(repo)

	flour, err := ingredientService.Create(context.Background(), "owner-1", ingredient.CreateInput{
		Name:         "Flour",
		PackQuantity: "1000",
		PackUnit:     "g",
		PackPrice:    "2.00",
	})
	if err != nil {
		t.Fatalf("seed flour: %v", err)
	}

	milk, err := ingredientService.Create(context.Background(), "owner-1", ingredient.CreateInput{
		Name:         "Milk",
		PackQuantity: "1000",
		PackUnit:     "ml",
		PackPrice:    "1.00",
		Density:      "1.03",
	})
	if err != nil {
		t.Fatalf("seed milk: %v", err)
	}

	return repo, flour, milk
}

func TestCreateRecipe_FlatItems(t *testing.T) {
	ingredientRepo, flour, _ := seedCatalog(t)
	service := NewService(NewInMemoryRepository(), ingredientRepo)

	rec, err := service.Create(context.Background(), "owner-1", RecipeInput{
		Name:          "Shortbread",
		YieldQuantity: "10",
		YieldUnit:     "each",
		Items: []UsageInput{
			{IngredientID: flour.ID.String(), Quantity: "250", Unit: "g", Note: "sifted"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if len(rec.Items) != 1 || rec.Items[0].Note != "sifted" {
		t.Errorf("items not stored: %+v", rec.Items)
	}
}

func TestCreateRecipe_Validation(t *testing.T) {
	ingredientRepo, flour, _ := seedCatalog(t)
	service := NewService(NewInMemoryRepository(), ingredientRepo)

	usage := []UsageInput{{IngredientID: flour.ID.String(), Quantity: "1", Unit: "g"}}
	section := []SectionInput{{Name: "A", Items: usage}}

	cases := []struct {
		name string
		in   RecipeInput
	}{
		{"missing name", RecipeInput{YieldQuantity: "1", YieldUnit: "each"}},
		{"zero yield", RecipeInput{Name: "X", YieldQuantity: "0", YieldUnit: "each"}},
		{"bad yield unit", RecipeInput{Name: "X", YieldQuantity: "1", YieldUnit: "batch"}},
		{"items and sections", RecipeInput{Name: "X", YieldQuantity: "1", YieldUnit: "each", Items: usage, Sections: section}},
		{"negative quantity", RecipeInput{Name: "X", YieldQuantity: "1", YieldUnit: "each", Items: []UsageInput{
			{IngredientID: flour.ID.String(), Quantity: "-5", Unit: "g"},
		}}},
		{"bad ingredient id", RecipeInput{Name: "X", YieldQuantity: "1", YieldUnit: "each", Items: []UsageInput{
			{IngredientID: "nope", Quantity: "5", Unit: "g"},
		}}},
	}

	for _, tc := range cases {
		if _, err := service.Create(context.Background(), "owner-1", tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestRecipeCostThroughService(t *testing.T) {
	ingredientRepo, flour, milk := seedCatalog(t)
	service := NewService(NewInMemoryRepository(), ingredientRepo)

	rec, err := service.Create(context.Background(), "owner-1", RecipeInput{
		Name:          "Batter",
		YieldQuantity: "4",
		YieldUnit:     "each",
		Sections: []SectionInput{
			{
				Name:     "Mix",
				BakeTemp: "180C",
				BakeTime: "25m",
				Items: []UsageInput{
					{IngredientID: flour.ID.String(), Quantity: "250", Unit: "g"},
					{IngredientID: milk.ID.String(), Quantity: "200", Unit: "g"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown, err := service.Cost(context.Background(), rec.ID, "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if breakdown.TotalCost.Round(4).String() != "0.6942" {
		t.Errorf("expected ~0.6942, got %s", breakdown.TotalCost)
	}
	if breakdown.CostPerOutputUnit.Round(4).String() != "0.1735" {
		t.Errorf("expected ~0.1735, got %s", breakdown.CostPerOutputUnit)
	}
	if len(breakdown.LineErrors) != 0 {
		t.Errorf("unexpected line errors: %+v", breakdown.LineErrors)
	}
}

func TestRecipeOwnerScoping(t *testing.T) {
	ingredientRepo, flour, _ := seedCatalog(t)
	service := NewService(NewInMemoryRepository(), ingredientRepo)

	rec, err := service.Create(context.Background(), "owner-1", RecipeInput{
		Name:          "Secret",
		YieldQuantity: "1",
		YieldUnit:     "each",
		Items:         []UsageInput{{IngredientID: flour.ID.String(), Quantity: "1", Unit: "g"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Cost(context.Background(), rec.ID, "owner-2"); err == nil {
		t.Fatal("expected not-found for another owner")
	}
}
