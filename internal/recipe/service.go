package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

// IngredientLookup is the slice of the ingredient catalog the costing path
// needs. The ingredient repositories satisfy it.
type IngredientLookup interface {
	GetMany(ctx context.Context, ids []uuid.UUID, ownerID string) (map[uuid.UUID]*ingredient.Ingredient, error)
}

type Service struct {
	repo        Repository
	ingredients IngredientLookup
}

func NewService(repo Repository, ingredients IngredientLookup) *Service {
	return &Service{repo: repo, ingredients: ingredients}
}

// UsageInput / SectionInput / RecipeInput carry raw API values; quantities
// arrive as decimal strings so nothing passes through float64.
type UsageInput struct {
	IngredientID string `json:"ingredient_id"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	Note         string `json:"note"`
}

type SectionInput struct {
	Name     string       `json:"name"`
	BakeTemp string       `json:"bake_temp"`
	BakeTime string       `json:"bake_time"`
	Method   string       `json:"method"`
	Items    []UsageInput `json:"items"`
}

type RecipeInput struct {
	Name          string         `json:"name"`
	YieldQuantity string         `json:"yield_quantity"`
	YieldUnit     string         `json:"yield_unit"`
	Items         []UsageInput   `json:"items"`
	Sections      []SectionInput `json:"sections"`
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, ownerID string, in RecipeInput) (*Recipe, error) {
	rec, err := buildRecipe(ownerID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id uuid.UUID, ownerID string) (*Recipe, error) {
	return s.repo.GetByID(ctx, id, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*Recipe, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id uuid.UUID, ownerID string, in RecipeInput) (*Recipe, error) {
	rec, err := buildRecipe(ownerID, in)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}

// --------------------------------------------------
// Cost breakdown
// --------------------------------------------------
func (s *Service) Cost(ctx context.Context, id uuid.UUID, ownerID string) (*CostBreakdown, error) {
	rec, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	ids := ingredientIDs(rec)
	ingredients, err := s.ingredients.GetMany(ctx, ids, ownerID)
	if err != nil {
		return nil, err
	}

	return AggregateCost(rec, ingredients)
}

func ingredientIDs(rec *Recipe) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, u := range rec.FlattenedItems() {
		if u.IngredientID != uuid.Nil && !seen[u.IngredientID] {
			seen[u.IngredientID] = true
			ids = append(ids, u.IngredientID)
		}
	}
	return ids
}

// --------------------------------------------------
// Validation
// --------------------------------------------------
func buildRecipe(ownerID string, in RecipeInput) (*Recipe, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}
	if len(in.Items) > 0 && len(in.Sections) > 0 {
		return nil, errors.New("recipe cannot have both flat items and sections")
	}

	yieldQty, err := decimal.NewFromString(in.YieldQuantity)
	if err != nil {
		return nil, fmt.Errorf("invalid yield_quantity: %w", err)
	}
	if !yieldQty.IsPositive() {
		return nil, ErrInvalidYield
	}

	yieldUnit, err := units.Parse(in.YieldUnit)
	if err != nil {
		return nil, err
	}

	rec := &Recipe{
		OwnerID:       ownerID,
		Name:          in.Name,
		YieldQuantity: yieldQty,
		YieldUnit:     yieldUnit,
	}

	if rec.Items, err = buildUsages(in.Items); err != nil {
		return nil, err
	}

	for pos, sin := range in.Sections {
		section := Section{
			Name:     sin.Name,
			Position: pos,
			BakeTemp: sin.BakeTemp,
			BakeTime: sin.BakeTime,
			Method:   sin.Method,
		}
		if section.Items, err = buildUsages(sin.Items); err != nil {
			return nil, fmt.Errorf("section %q: %w", sin.Name, err)
		}
		rec.Sections = append(rec.Sections, section)
	}

	return rec, nil
}

func buildUsages(in []UsageInput) ([]Usage, error) {
	var out []Usage
	for _, item := range in {
		id, err := uuid.Parse(item.IngredientID)
		if err != nil {
			return nil, fmt.Errorf("invalid ingredient_id %q", item.IngredientID)
		}

		qty, err := decimal.NewFromString(item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q: %w", item.Quantity, err)
		}
		if qty.IsNegative() {
			return nil, fmt.Errorf("quantity cannot be negative")
		}

		unit, err := units.Parse(item.Unit)
		if err != nil {
			return nil, err
		}

		out = append(out, Usage{
			IngredientID: id,
			Quantity:     qty,
			Unit:         unit,
			Note:         item.Note,
		})
	}
	return out, nil
}
