package core

import (
	"context"

	"github.com/google/uuid"

	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
	"github.com/Matt-OFGC/plato-app-sub003/internal/recipe"
)

// Read contracts over the catalog, for features that consume recipes and
// ingredients without owning them (the mixer). Keeps those features off the
// concrete repositories.

type IngredientReader interface {
	GetMany(ctx context.Context, ids []uuid.UUID, ownerID string) (map[uuid.UUID]*ingredient.Ingredient, error)
}

type RecipeReader interface {
	GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*recipe.Recipe, error)
}
