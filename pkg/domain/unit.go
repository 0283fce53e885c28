package domain

// CategoryID is the stable key of a conversion category, e.g. "length".
type CategoryID string

// MeasurementSystem groups units for display. Apart from the UK volume
// units it has no influence on conversion math.
type MeasurementSystem string

const (
	// SystemMetric covers SI and SI-derived units.
	SystemMetric MeasurementSystem = "metric"
	// SystemUSImperial covers US customary units.
	SystemUSImperial MeasurementSystem = "us-imperial"
	// SystemUKImperial covers British imperial units that differ from their US namesakes.
	SystemUKImperial MeasurementSystem = "uk-imperial"
)

// Label returns the human readable name of the system. Unit groups are
// sorted by this label.
func (s MeasurementSystem) Label() string {
	switch s {
	case SystemMetric:
		return "Metric"
	case SystemUSImperial:
		return "Imperial/US"
	case SystemUKImperial:
		return "UK/Imperial"
	default:
		return string(s)
	}
}

// Unit is an immutable measure within a category. Symbol is unique within
// its category and is used as the lookup key.
type Unit struct {
	Name   string            `json:"name"`
	Symbol string            `json:"symbol"`
	System MeasurementSystem `json:"system"`
}

// DisplayName combines name and symbol, e.g. "Meter (m)".
func (u Unit) DisplayName() string {
	return u.Name + " (" + u.Symbol + ")"
}

// Category is a domain of convertible quantities with an ordered unit list.
type Category struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`
	// Icon names the symbol presentation layers show next to the category.
	Icon  string `json:"icon"`
	Units []Unit `json:"units"`
	// DefaultInput and DefaultOutput are unit symbols preselected for a new conversion.
	DefaultInput  string `json:"defaultInput"`
	DefaultOutput string `json:"defaultOutput"`
}

// Unit returns the unit with the given symbol.
func (c Category) Unit(symbol string) (Unit, bool) {
	for _, u := range c.Units {
		if u.Symbol == symbol {
			return u, true
		}
	}

	return Unit{}, false
}

// UnitGroup is a set of units sharing a measurement system.
type UnitGroup struct {
	System MeasurementSystem `json:"system"`
	Label  string            `json:"label"`
	Units  []Unit            `json:"units"`
}
