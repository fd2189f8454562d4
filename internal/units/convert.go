package units

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrDensityRequired means a mass/volume crossing was attempted without
	// a usable density (missing, zero, or negative).
	ErrDensityRequired = errors.New("density required to convert between mass and volume")

	// ErrCountConversion means a count unit was asked to convert into mass
	// or volume. A "piece" has no weight without data this engine does not
	// hold, so the conversion is undefined.
	ErrCountConversion = errors.New("count units cannot be converted to mass or volume")
)

// Convert expresses qty of unit from in unit to.
//
// Same-domain conversions go through the registry factors. Mass and volume
// cross through density (grams per milliliter): mass→volume divides,
// volume→mass multiplies. Any crossing that involves a count unit fails.
//
// The function is pure: it never clamps, truncates, or substitutes a
// fallback quantity on failure.
func Convert(qty decimal.Decimal, from, to Unit, density *decimal.Decimal) (decimal.Decimal, error) {
	fromDomain := DomainOf(from)
	toDomain := DomainOf(to)

	if fromDomain == toDomain {
		return qty.Mul(FactorToBase(from)).Div(FactorToBase(to)), nil
	}

	if fromDomain == Count || toDomain == Count {
		return decimal.Decimal{}, ErrCountConversion
	}

	if density == nil || !density.IsPositive() {
		return decimal.Decimal{}, ErrDensityRequired
	}

	// Into the source domain's base unit, across the density bridge,
	// then out of the target domain's base unit.
	inBase := qty.Mul(FactorToBase(from))

	var bridged decimal.Decimal
	if fromDomain == Mass {
		bridged = inBase.Div(*density) // g → ml
	} else {
		bridged = inBase.Mul(*density) // ml → g
	}

	return bridged.Div(FactorToBase(to)), nil
}

// ToBase expresses qty of unit from in the base unit of the target domain.
// Shorthand used by the costing layers, which always normalize into the
// pack unit's domain.
func ToBase(qty decimal.Decimal, from Unit, target Domain, density *decimal.Decimal) (decimal.Decimal, error) {
	return Convert(qty, from, BaseOf(target), density)
}
