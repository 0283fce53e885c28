// Package converter implements the unit conversion engine: a pure function
// of the unit registry and a conversion request.
package converter

import (
	"math"

	"unitconv/pkg/domain"
	"unitconv/pkg/serrors"
	"unitconv/pkg/units"
)

// converter is the registry-backed implementation of Converter.
type converter struct {
	registry *units.Registry
}

// New creates a Converter over the given registry. A nil registry selects
// the built-in catalog.
func New(registry *units.Registry) Converter {
	if registry == nil {
		registry = units.Default()
	}

	return &converter{registry: registry}
}

// Categories lists all categories in catalog order.
func (c converter) Categories() []domain.Category {
	return c.registry.Categories()
}

// UnitsOf returns the grouped units of a category, or an UnsupportedCategory
// error when the category is unknown.
func (c converter) UnitsOf(categoryID string) ([]domain.UnitGroup, error) {
	groups, ok := c.registry.UnitsOf(categoryID)
	if !ok {
		return nil, serrors.With(serrors.ErrUnsupportedCategory, "unknown category %q", categoryID)
	}

	return groups, nil
}

// Convert parses the raw input, resolves both units within the category and
// applies the category's strategy. The result is formatted as a normalized
// decimal string.
func (c converter) Convert(req domain.ConversionRequest) (*domain.ConversionResult, error) {
	entry, ok := c.registry.Lookup(req.Category)
	if !ok {
		return nil, serrors.With(serrors.ErrUnsupportedCategory, "unknown category %q", req.Category)
	}

	value, err := ParseInput(req.Input)
	if err != nil {
		return nil, err
	}

	from, ok := entry.Unit(req.From)
	if !ok {
		return nil, serrors.With(serrors.ErrUnsupportedConversion,
			"unit %q is not part of %s", req.From, entry.Category.Name)
	}
	to, ok := entry.Unit(req.To)
	if !ok {
		return nil, serrors.With(serrors.ErrUnsupportedConversion,
			"unit %q is not part of %s", req.To, entry.Category.Name)
	}

	out, err := apply(entry, from.Symbol, to.Symbol, value)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return nil, serrors.With(serrors.ErrInvalidInput, "value out of range")
	}

	return &domain.ConversionResult{
		Category:  entry.Category,
		From:      from,
		To:        to,
		Input:     value,
		Value:     out,
		Formatted: FormatValue(out),
	}, nil
}
