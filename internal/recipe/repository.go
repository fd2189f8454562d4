package recipe

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines all data-access for recipes, sections, and items.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, r *Recipe) error
	GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*Recipe, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error)

	// Update replaces the recipe wholesale, sections and items included.
	Update(ctx context.Context, r *Recipe) error
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
}
