package ingredient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries raw API values; quantities and prices arrive as
// decimal strings so nothing is parsed through float64.
type CreateInput struct {
	Name         string
	PackQuantity string
	PackUnit     string
	PackPrice    string
	Currency     string
	Density      string
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*Ingredient, error) {
	ing, err := buildIngredient(ownerID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id uuid.UUID, ownerID string) (*Ingredient, error) {
	return s.repo.GetByID(ctx, id, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*Ingredient, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id uuid.UUID, ownerID string, in CreateInput) (*Ingredient, error) {
	ing, err := buildIngredient(ownerID, in)
	if err != nil {
		return nil, err
	}
	ing.ID = id

	if err := s.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}

// --------------------------------------------------
// Unit cost (read-only costing view)
// --------------------------------------------------
func (s *Service) UnitCost(ctx context.Context, id uuid.UUID, ownerID string) (decimal.Decimal, units.Unit, error) {
	ing, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return decimal.Decimal{}, "", err
	}

	cost, err := CostPerBaseUnit(ing)
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	return cost, units.BaseOf(ing.PackDomain()), nil
}

// --------------------------------------------------
// Validation
// --------------------------------------------------
func buildIngredient(ownerID string, in CreateInput) (*Ingredient, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}

	packUnit, err := units.Parse(in.PackUnit)
	if err != nil {
		return nil, err
	}

	packQty, err := decimal.NewFromString(in.PackQuantity)
	if err != nil {
		return nil, fmt.Errorf("invalid pack_quantity: %w", err)
	}
	if !packQty.IsPositive() {
		return nil, errors.New("pack_quantity must be greater than zero")
	}

	packPrice, err := decimal.NewFromString(in.PackPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid pack_price: %w", err)
	}
	if packPrice.IsNegative() {
		return nil, errors.New("pack_price cannot be negative")
	}

	currency := in.Currency
	if currency == "" {
		currency = "GBP"
	}

	ing := &Ingredient{
		OwnerID:      ownerID,
		Name:         in.Name,
		PackQuantity: packQty,
		PackUnit:     packUnit,
		PackPrice:    packPrice,
		Currency:     currency,
	}

	if in.Density != "" {
		d, err := decimal.NewFromString(in.Density)
		if err != nil {
			return nil, fmt.Errorf("invalid density: %w", err)
		}
		if !d.IsPositive() {
			return nil, errors.New("density must be greater than zero")
		}
		ing.Density = &d
	}

	return ing, nil
}
