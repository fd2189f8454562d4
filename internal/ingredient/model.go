package ingredient

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

// Ingredient is one purchasable item in the catalog. Cost derives entirely
// from the pack: the price paid for PackQuantity of PackUnit.
// Density (g/ml) is only needed when recipes use the ingredient across the
// mass/volume boundary.
type Ingredient struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      string           `json:"owner_id"`
	Name         string           `json:"name"`
	PackQuantity decimal.Decimal  `json:"pack_quantity"`
	PackUnit     units.Unit       `json:"pack_unit"`
	PackPrice    decimal.Decimal  `json:"pack_price"`
	Currency     string           `json:"currency"`
	Density      *decimal.Decimal `json:"density,omitempty"`
}

// PackDomain is the measurement domain the ingredient is costed in.
func (i *Ingredient) PackDomain() units.Domain {
	return units.DomainOf(i.PackUnit)
}
