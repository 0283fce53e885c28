package converter

import "unitconv/pkg/domain"

// Converter is the unit conversion engine. Implementations are stateless
// and safe for concurrent use.
type Converter interface {
	// Categories lists all categories in catalog order.
	Categories() []domain.Category
	// UnitsOf returns the units of a category grouped by measurement system,
	// groups sorted by system label.
	UnitsOf(categoryID string) ([]domain.UnitGroup, error)
	// Convert converts the raw input of req from one unit to another.
	Convert(req domain.ConversionRequest) (*domain.ConversionResult, error)
}
