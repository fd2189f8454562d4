package ingredient

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines all data-access for the ingredient catalog.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, ing *Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*Ingredient, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Ingredient, error)
	Update(ctx context.Context, ing *Ingredient) error
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error

	// GetMany resolves a batch of ids in one round trip. Missing ids are
	// simply absent from the result, not an error.
	GetMany(ctx context.Context, ids []uuid.UUID, ownerID string) (map[uuid.UUID]*Ingredient, error)
}
