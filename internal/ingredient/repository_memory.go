package ingredient

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Ingredient
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[uuid.UUID]*Ingredient)}
}

func (r *InMemoryRepository) Create(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ing.ID == uuid.Nil {
		ing.ID = uuid.New()
	}
	clone := *ing
	r.items[ing.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.items[id]
	if !ok || ing.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	clone := *ing
	return &clone, nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Ingredient
	for _, ing := range r.items {
		if ing.OwnerID == ownerID {
			clone := *ing
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[ing.ID]
	if !ok || existing.OwnerID != ing.OwnerID {
		return ErrNotFound
	}
	clone := *ing
	r.items[ing.ID] = &clone
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) GetMany(ctx context.Context, ids []uuid.UUID, ownerID string) (map[uuid.UUID]*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[uuid.UUID]*Ingredient, len(ids))
	for _, id := range ids {
		if ing, ok := r.items[id]; ok && ing.OwnerID == ownerID {
			clone := *ing
			out[id] = &clone
		}
	}
	return out, nil
}
