package units_test

import (
	"testing"

	"unitconv/pkg/domain"
	"unitconv/pkg/units"

	"github.com/stretchr/testify/require"
)

func symbols(us []domain.Unit) []string {
	out := make([]string, 0, len(us))
	for _, u := range us {
		out = append(out, u.Symbol)
	}

	return out
}

func TestDefault_CategoriesInCatalogOrder(t *testing.T) {
	cats := units.Default().Categories()

	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"Length", "Weight", "Volume", "Temperature", "Area", "Speed"}, names)
}

func TestDefault_Catalog(t *testing.T) {
	tests := []struct {
		id      domain.CategoryID
		symbols []string
	}{
		{units.Length, []string{"mm", "cm", "m", "km", "in", "ft", "yd", "mi"}},
		{units.Weight, []string{"mg", "g", "kg", "t", "oz", "lb", "st", "ton"}},
		{units.Volume, []string{
			"ml", "cl", "dl", "l", "m³",
			"tsp", "tbsp", "fl oz", "cup", "pt", "qt", "gal",
			"cup (UK)", "pt (UK)", "qt (UK)", "gal (UK)",
		}},
		{units.Temperature, []string{"°C", "°F", "K"}},
		{units.Area, []string{"m²", "ha", "km²", "ft²", "yd²", "ac", "mi²"}},
		{units.Speed, []string{"km/h", "m/s", "mph", "kn"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			e, ok := units.Default().Lookup(string(tt.id))
			require.True(t, ok)
			require.Equal(t, tt.symbols, symbols(e.Category.Units))
			require.Equal(t, tt.symbols[0], e.Category.DefaultInput)
			require.Equal(t, tt.symbols[1], e.Category.DefaultOutput)
		})
	}
}

// Every catalog unit must have a conversion rule, otherwise the engine would
// report UnsupportedConversion for an in-catalog unit.
func TestDefault_EveryUnitHasARule(t *testing.T) {
	for _, c := range units.Default().Categories() {
		e, ok := units.Default().Lookup(string(c.ID))
		require.True(t, ok)

		switch e.Strategy {
		case units.StrategyLinear, units.StrategyVolume:
			require.Len(t, e.Factors, len(c.Units), "%s: factor table size", c.ID)
			for _, u := range c.Units {
				f, ok := e.Factors[u.Symbol]
				require.True(t, ok, "%s: no factor for %q", c.ID, u.Symbol)
				require.Greater(t, f, 0.0)
			}
		case units.StrategyTemperature:
			for _, from := range c.Units {
				for _, to := range c.Units {
					if from.Symbol == to.Symbol {
						continue
					}
					_, ok := e.Formulas[units.Pair{From: from.Symbol, To: to.Symbol}]
					require.True(t, ok, "no formula for %s -> %s", from.Symbol, to.Symbol)
				}
			}
		default:
			t.Fatalf("%s: unexpected strategy %v", c.ID, e.Strategy)
		}
	}
}

func TestDefault_SystemsMatchCatalog(t *testing.T) {
	e, ok := units.Default().Lookup("volume")
	require.True(t, ok)

	for _, u := range e.Category.Units {
		switch u.Symbol {
		case "cup (UK)", "pt (UK)", "qt (UK)", "gal (UK)":
			require.Equal(t, domain.SystemUKImperial, u.System, u.Symbol)
		case "ml", "cl", "dl", "l", "m³":
			require.Equal(t, domain.SystemMetric, u.System, u.Symbol)
		default:
			require.Equal(t, domain.SystemUSImperial, u.System, u.Symbol)
		}
	}

	e, ok = units.Default().Lookup("temperature")
	require.True(t, ok)
	f, _ := e.Unit("°F")
	require.Equal(t, domain.SystemUSImperial, f.System)
	k, _ := e.Unit("K")
	require.Equal(t, domain.SystemMetric, k.System)
}

func TestLookup(t *testing.T) {
	r := units.Default()

	for _, key := range []string{"length", "Length", " LENGTH "} {
		e, ok := r.Lookup(key)
		require.True(t, ok, key)
		require.Equal(t, units.Length, e.Category.ID)
	}

	_, ok := r.Lookup("currency")
	require.False(t, ok)
}

func TestUnitsOf_GroupedAndSortedByLabel(t *testing.T) {
	groups, ok := units.Default().UnitsOf("volume")
	require.True(t, ok)
	require.Len(t, groups, 3)

	require.Equal(t, "Imperial/US", groups[0].Label)
	require.Equal(t, domain.SystemUSImperial, groups[0].System)
	require.Equal(t, []string{"tsp", "tbsp", "fl oz", "cup", "pt", "qt", "gal"}, symbols(groups[0].Units))

	require.Equal(t, "Metric", groups[1].Label)
	require.Equal(t, []string{"ml", "cl", "dl", "l", "m³"}, symbols(groups[1].Units))

	require.Equal(t, "UK/Imperial", groups[2].Label)
	require.Equal(t, []string{"cup (UK)", "pt (UK)", "qt (UK)", "gal (UK)"}, symbols(groups[2].Units))

	groups, ok = units.Default().UnitsOf("temperature")
	require.True(t, ok)
	require.Len(t, groups, 2)
	require.Equal(t, []string{"°F"}, symbols(groups[0].Units))
	require.Equal(t, []string{"°C", "K"}, symbols(groups[1].Units))

	_, ok = units.Default().UnitsOf("nope")
	require.False(t, ok)
}

func TestCategories_ReturnsCopies(t *testing.T) {
	cats := units.Default().Categories()
	cats[0].Units[0].Symbol = "changed"
	cats[0].Name = "changed"

	again := units.Default().Categories()
	require.Equal(t, "mm", again[0].Units[0].Symbol)
	require.Equal(t, "Length", again[0].Name)
}

func TestNewRegistry_Validation(t *testing.T) {
	unit := domain.Unit{Name: "Meter", Symbol: "m", System: domain.SystemMetric}

	tests := []struct {
		name    string
		entries []units.Entry
		err     error
	}{
		{
			name:    "no units",
			entries: []units.Entry{{Category: domain.Category{ID: "x", Name: "X"}, Strategy: units.StrategyLinear}},
			err:     units.ErrNoUnits,
		},
		{
			name: "no strategy",
			entries: []units.Entry{{
				Category: domain.Category{ID: "x", Name: "X", Units: []domain.Unit{unit}},
			}},
			err: units.ErrNoStrategy,
		},
		{
			name: "duplicate symbol",
			entries: []units.Entry{{
				Category: domain.Category{ID: "x", Name: "X", Units: []domain.Unit{unit, unit}},
				Strategy: units.StrategyLinear,
			}},
			err: units.ErrDuplicateSymbol,
		},
		{
			name: "unknown default",
			entries: []units.Entry{{
				Category: domain.Category{ID: "x", Name: "X", Units: []domain.Unit{unit}, DefaultOutput: "km"},
				Strategy: units.StrategyLinear,
			}},
			err: units.ErrUnknownDefault,
		},
		{
			name: "duplicate category",
			entries: []units.Entry{
				{Category: domain.Category{ID: "x", Name: "X", Units: []domain.Unit{unit}}, Strategy: units.StrategyLinear},
				{Category: domain.Category{ID: "y", Name: "x", Units: []domain.Unit{unit}}, Strategy: units.StrategyLinear},
			},
			err: units.ErrDuplicateCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := units.NewRegistry(tt.entries...)
			require.ErrorIs(t, err, tt.err)
			require.Panics(t, func() { units.MustNewRegistry(tt.entries...) })
		})
	}
}

func TestNewRegistry_SingleUnitDefaults(t *testing.T) {
	r, err := units.NewRegistry(units.Entry{
		Category: domain.Category{ID: "x", Name: "X", Units: []domain.Unit{{Name: "Meter", Symbol: "m"}}},
		Strategy: units.StrategyLinear,
		Factors:  map[string]float64{"m": 1},
	})
	require.NoError(t, err)

	e, ok := r.Lookup("x")
	require.True(t, ok)
	require.Equal(t, "m", e.Category.DefaultInput)
	require.Equal(t, "m", e.Category.DefaultOutput)
}
