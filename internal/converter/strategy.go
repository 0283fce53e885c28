package converter

import (
	"unitconv/pkg/serrors"
	"unitconv/pkg/units"
)

// apply dispatches to the conversion strategy of the category. Reaching an
// UnsupportedConversion error for a catalog unit means the registry tables
// are incomplete.
func apply(entry units.Entry, from, to string, v float64) (float64, error) {
	switch entry.Strategy {
	case units.StrategyLinear, units.StrategyVolume:
		return scale(entry, from, to, v)
	case units.StrategyTemperature:
		return temperature(entry, from, to, v)
	default:
		return 0, serrors.With(serrors.ErrUnsupportedConversion,
			"%s has no conversion strategy", entry.Category.Name)
	}
}

// scale converts through the category's base unit (millilitres for volume):
// v * factor(from) / factor(to).
func scale(entry units.Entry, from, to string, v float64) (float64, error) {
	fromFactor, ok := entry.Factors[from]
	if !ok {
		return 0, noRule(entry, from, to)
	}
	toFactor, ok := entry.Factors[to]
	if !ok {
		return 0, noRule(entry, from, to)
	}
	if from == to {
		return v, nil
	}

	return v * fromFactor / toFactor, nil
}

// temperature applies the explicit formula of the unit pair; equal symbols
// are an identity.
func temperature(entry units.Entry, from, to string, v float64) (float64, error) {
	if from == to {
		return v, nil
	}

	formula, ok := entry.Formulas[units.Pair{From: from, To: to}]
	if !ok {
		return 0, noRule(entry, from, to)
	}

	return formula(v), nil
}

func noRule(entry units.Entry, from, to string) error {
	return serrors.With(serrors.ErrUnsupportedConversion,
		"no %s rule for %s -> %s", entry.Category.Name, from, to)
}
