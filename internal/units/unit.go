package units

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Domain groups units that are inter-convertible without extra data.
type Domain string

const (
	Mass   Domain = "mass"
	Volume Domain = "volume"
	Count  Domain = "count"
)

// Unit is a closed set of measurement tokens. Quantities are only ever
// stored against one of these; free-form strings from the API go through
// Parse first.
type Unit string

const (
	Milligram  Unit = "mg"
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Ounce      Unit = "oz"
	Pound      Unit = "lb"
	Milliliter Unit = "ml"
	Liter      Unit = "l"
	Teaspoon   Unit = "tsp"
	Tablespoon Unit = "tbsp"
	Cup        Unit = "cup"
	FluidOunce Unit = "floz"
	Each       Unit = "each"
	Slice      Unit = "slice"
	Piece      Unit = "piece"
)

type unitDef struct {
	domain Domain
	toBase decimal.Decimal
}

// registry maps every unit to its domain and the factor converting one of it
// into the domain base unit (g for mass, ml for volume, each for count).
var registry = map[Unit]unitDef{
	Milligram:  {Mass, decimal.RequireFromString("0.001")},
	Gram:       {Mass, decimal.NewFromInt(1)},
	Kilogram:   {Mass, decimal.NewFromInt(1000)},
	Ounce:      {Mass, decimal.RequireFromString("28.349523125")},
	Pound:      {Mass, decimal.RequireFromString("453.59237")},
	Milliliter: {Volume, decimal.NewFromInt(1)},
	Liter:      {Volume, decimal.NewFromInt(1000)},
	Teaspoon:   {Volume, decimal.RequireFromString("4.92892159375")},
	Tablespoon: {Volume, decimal.RequireFromString("14.78676478125")},
	Cup:        {Volume, decimal.RequireFromString("236.5882365")},
	FluidOunce: {Volume, decimal.RequireFromString("29.5735295625")},
	Each:       {Count, decimal.NewFromInt(1)},
	Slice:      {Count, decimal.NewFromInt(1)},
	Piece:      {Count, decimal.NewFromInt(1)},
}

// aliases accepted by Parse on top of the canonical tokens.
var aliases = map[string]Unit{
	"gram":        Gram,
	"grams":       Gram,
	"kilogram":    Kilogram,
	"kilograms":   Kilogram,
	"milligram":   Milligram,
	"milligrams":  Milligram,
	"milliliter":  Milliliter,
	"milliliters": Milliliter,
	"millilitre":  Milliliter,
	"millilitres": Milliliter,
	"liter":       Liter,
	"litre":       Liter,
	"liters":      Liter,
	"litres":      Liter,
	"teaspoon":    Teaspoon,
	"teaspoons":   Teaspoon,
	"tablespoon":  Tablespoon,
	"tablespoons": Tablespoon,
	"cups":        Cup,
	"fl-oz":       FluidOunce,
	"fl oz":       FluidOunce,
	"lbs":         Pound,
	"ea":          Each,
	"slices":      Slice,
	"pieces":      Piece,
	"pcs":         Piece,
	"pc":          Piece,
}

// DomainOf returns the measurement domain of u.
// Unknown units are a code/schema mismatch, not bad user input, so it panics.
func DomainOf(u Unit) Domain {
	def, ok := registry[u]
	if !ok {
		panic(fmt.Sprintf("units: unknown unit %q", u))
	}
	return def.domain
}

// FactorToBase returns the multiplicative factor converting one u into the
// base unit of its domain. Panics on an unknown unit, same as DomainOf.
func FactorToBase(u Unit) decimal.Decimal {
	def, ok := registry[u]
	if !ok {
		panic(fmt.Sprintf("units: unknown unit %q", u))
	}
	return def.toBase
}

// BaseOf returns the base unit of a domain.
func BaseOf(d Domain) Unit {
	switch d {
	case Mass:
		return Gram
	case Volume:
		return Milliliter
	default:
		return Each
	}
}

// Parse is the boundary for external unit tokens. It never panics.
func Parse(s string) (Unit, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if _, ok := registry[Unit(token)]; ok {
		return Unit(token), nil
	}
	if u, ok := aliases[token]; ok {
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// All returns every known unit, mass then volume then count.
// Used by the API to advertise the valid tokens.
func All() []Unit {
	return []Unit{
		Milligram, Gram, Kilogram, Ounce, Pound,
		Milliliter, Liter, Teaspoon, Tablespoon, Cup, FluidOunce,
		Each, Slice, Piece,
	}
}
