package mixer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/core"
	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
	"github.com/Matt-OFGC/plato-app-sub003/internal/recipe"
)

// Uploader is where exported shopping lists go.
type Uploader interface {
	UploadBytes(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type Service struct {
	recipes     core.RecipeReader
	ingredients core.IngredientReader
	uploader    Uploader
}

func NewService(recipes core.RecipeReader, ingredients core.IngredientReader, uploader Uploader) *Service {
	return &Service{
		recipes:     recipes,
		ingredients: ingredients,
		uploader:    uploader,
	}
}

// SelectionInput is one selection as posted by the client, which owns the
// mix state between requests. Multiplier is the recipe-level value; Override
// pins this selection only.
type SelectionInput struct {
	RecipeID   string `json:"recipe_id"`
	SectionKey string `json:"section_key"`
	Multiplier string `json:"multiplier"`
	Override   string `json:"override"`
}

// --------------------------------------------------
// Combine
// --------------------------------------------------
func (s *Service) Combine(ctx context.Context, ownerID string, inputs []SelectionInput) (*CombineResult, error) {
	if len(inputs) == 0 {
		return nil, errors.New("no selections")
	}

	mix, err := buildMix(inputs)
	if err != nil {
		return nil, err
	}

	recipes, ingredients, err := s.loadCatalog(ctx, ownerID, mix)
	if err != nil {
		return nil, err
	}

	return Combine(mix, recipes, ingredients), nil
}

func buildMix(inputs []SelectionInput) (*Mix, error) {
	mix := NewMix()

	for _, in := range inputs {
		recipeID, err := uuid.Parse(in.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("invalid recipe_id %q", in.RecipeID)
		}

		multiplier := decimal.NewFromInt(1)
		if in.Multiplier != "" {
			if multiplier, err = decimal.NewFromString(in.Multiplier); err != nil {
				return nil, fmt.Errorf("invalid multiplier %q: %w", in.Multiplier, err)
			}
		}

		if err := mix.AddSelection(recipeID, in.SectionKey, multiplier); err != nil {
			return nil, err
		}
		// First multiplier for a recipe wins on Add; apply later ones
		// explicitly so the request order is respected.
		if in.Multiplier != "" {
			if err := mix.SetMultiplier(recipeID, multiplier); err != nil {
				return nil, err
			}
		}

		if in.Override != "" {
			override, err := decimal.NewFromString(in.Override)
			if err != nil {
				return nil, fmt.Errorf("invalid override %q: %w", in.Override, err)
			}
			if err := mix.SetSectionOverride(recipeID, in.SectionKey, &override); err != nil {
				return nil, err
			}
		}
	}

	return mix, nil
}

func (s *Service) loadCatalog(ctx context.Context, ownerID string, mix *Mix) (map[uuid.UUID]*recipe.Recipe, map[uuid.UUID]*ingredient.Ingredient, error) {
	recipes := make(map[uuid.UUID]*recipe.Recipe)

	var ingredientIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)

	for _, id := range mix.RecipeIDs() {
		rec, err := s.recipes.GetByID(ctx, id, ownerID)
		if err != nil {
			return nil, nil, fmt.Errorf("recipe %s: %w", id, err)
		}
		recipes[id] = rec

		for _, u := range rec.FlattenedItems() {
			if u.IngredientID != uuid.Nil && !seen[u.IngredientID] {
				seen[u.IngredientID] = true
				ingredientIDs = append(ingredientIDs, u.IngredientID)
			}
		}
	}

	ingredients, err := s.ingredients.GetMany(ctx, ingredientIDs, ownerID)
	if err != nil {
		return nil, nil, err
	}

	return recipes, ingredients, nil
}
