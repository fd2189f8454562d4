package recipe

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*Recipe
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{recipes: make(map[uuid.UUID]*Recipe)}
}

func (r *InMemoryRepository) Create(ctx context.Context, rec *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.recipes[rec.ID] = cloneRecipe(rec)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.recipes[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return cloneRecipe(rec), nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Recipe
	for _, rec := range r.recipes {
		if rec.OwnerID == ownerID {
			out = append(out, cloneRecipe(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, rec *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.recipes[rec.ID]
	if !ok || existing.OwnerID != rec.OwnerID {
		return ErrNotFound
	}
	r.recipes[rec.ID] = cloneRecipe(rec)
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.recipes[id]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

func cloneRecipe(rec *Recipe) *Recipe {
	clone := *rec
	clone.Items = append([]Usage(nil), rec.Items...)
	clone.Sections = make([]Section, len(rec.Sections))
	for i, s := range rec.Sections {
		clone.Sections[i] = s
		clone.Sections[i].Items = append([]Usage(nil), s.Items...)
	}
	return &clone
}
