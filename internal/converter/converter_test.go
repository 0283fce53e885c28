package converter_test

import (
	"math"
	"strconv"
	"testing"

	"unitconv/internal/converter"
	"unitconv/pkg/domain"
	"unitconv/pkg/serrors"
	"unitconv/pkg/units"

	"github.com/stretchr/testify/require"
)

var linearCategories = []domain.CategoryID{units.Length, units.Weight, units.Volume, units.Area, units.Speed}

func convert(t *testing.T, c converter.Converter, category domain.CategoryID, from, to, input string) *domain.ConversionResult {
	t.Helper()

	res, err := c.Convert(domain.ConversionRequest{Category: string(category), From: from, To: to, Input: input})
	require.NoError(t, err, "%s: %s -> %s (%s)", category, from, to, input)

	return res
}

func unitsOf(t *testing.T, category domain.CategoryID) []domain.Unit {
	t.Helper()

	e, ok := units.Default().Lookup(string(category))
	require.True(t, ok)

	return e.Category.Units
}

func TestConvert_Identity(t *testing.T) {
	c := converter.New(nil)

	for _, category := range append(linearCategories, units.Temperature) {
		for _, u := range unitsOf(t, category) {
			for _, x := range []float64{0, 1, 12.5, -3.75, 1234.5678} {
				res := convert(t, c, category, u.Symbol, u.Symbol, strconv.FormatFloat(x, 'f', -1, 64))
				require.InDelta(t, x, res.Value, 1e-9, "%s %s", category, u.Symbol)
			}
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	c := converter.New(nil)
	inputs := []float64{1, 0.5, 42, 1e3, 987654.321}

	for _, category := range linearCategories {
		for _, a := range unitsOf(t, category) {
			for _, b := range unitsOf(t, category) {
				for _, x := range inputs {
					there := convert(t, c, category, a.Symbol, b.Symbol, strconv.FormatFloat(x, 'g', -1, 64))
					back := convert(t, c, category, b.Symbol, a.Symbol, strconv.FormatFloat(there.Value, 'g', -1, 64))
					require.InEpsilon(t, x, back.Value, 1e-6, "%s: %s <-> %s", category, a.Symbol, b.Symbol)
				}
			}
		}
	}
}

func TestConvert_KnownValues(t *testing.T) {
	c := converter.New(nil)

	tests := []struct {
		category domain.CategoryID
		from, to string
		input    string
		want     string
	}{
		{units.Length, "m", "cm", "1,5", "150"},
		{units.Length, "m", "cm", "1.5", "150"},
		{units.Length, "km", "m", "2", "2000"},
		{units.Length, "in", "cm", "1", "2.54"},
		{units.Length, "mi", "km", "1", "1.609344"},
		{units.Length, "ft", "in", "3", "36"},
		{units.Weight, "kg", "lb", "1", "2.20462262"},
		{units.Weight, "st", "lb", "1", "14"},
		{units.Weight, "t", "kg", "1", "1000"},
		{units.Volume, "l", "ml", "1", "1000"},
		{units.Volume, "cl", "ml", "1", "10"},
		{units.Volume, "dl", "l", "5", "0.5"},
		{units.Volume, "m³", "l", "1", "1000"},
		{units.Volume, "gal (UK)", "l", "1", "4.54609"},
		{units.Volume, "pt (UK)", "ml", "2", "1136.522"},
		{units.Area, "ha", "m²", "1", "10000"},
		{units.Area, "km²", "ha", "1", "100"},
		{units.Speed, "km/h", "m/s", "36", "10"},
		{units.Speed, "mph", "km/h", "1", "1.609344"},
		{units.Speed, "kn", "km/h", "1", "1.852"},
		{units.Temperature, "°C", "°F", "0", "32"},
		{units.Temperature, "°C", "K", "0", "273.15"},
		{units.Temperature, "°F", "°C", "32", "0"},
		{units.Temperature, "°F", "°C", "212", "100"},
		{units.Temperature, "°F", "K", "32", "273.15"},
		{units.Temperature, "K", "°C", "0", "-273.15"},
		{units.Temperature, "K", "°F", "273.15", "32"},
		{units.Temperature, "°C", "°F", "-40", "-40"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+" "+tt.from+"->"+tt.to, func(t *testing.T) {
			res := convert(t, c, tt.category, tt.from, tt.to, tt.input)
			require.Equal(t, tt.want, res.Formatted)
			require.Equal(t, tt.from, res.From.Symbol)
			require.Equal(t, tt.to, res.To.Symbol)
			require.Equal(t, tt.category, res.Category.ID)
		})
	}
}

func TestConvert_VolumeCrossSystem(t *testing.T) {
	res := convert(t, converter.New(nil), units.Volume, "gal", "gal (UK)", "1")
	require.InDelta(t, 3785.41/4546.09, res.Value, 1e-4)
	require.InDelta(t, 0.83267, res.Value, 1e-4)
}

func TestConvert_CategoryByName(t *testing.T) {
	c := converter.New(nil)

	res := convert(t, c, "Temperature", "°C", "°F", "100")
	require.Equal(t, "212", res.Formatted)
	require.Equal(t, "212 °F", res.String())
}

func TestConvert_Failures(t *testing.T) {
	c := converter.New(nil)

	tests := []struct {
		name string
		req  domain.ConversionRequest
		kind serrors.Kind
	}{
		{"not a number", domain.ConversionRequest{Category: "length", From: "m", To: "ft", Input: "abc"}, serrors.ErrInvalidInput},
		{"empty", domain.ConversionRequest{Category: "length", From: "m", To: "ft", Input: ""}, serrors.ErrInvalidInput},
		{"two separators", domain.ConversionRequest{Category: "length", From: "m", To: "ft", Input: "1,000.5"}, serrors.ErrInvalidInput},
		{"infinity", domain.ConversionRequest{Category: "length", From: "m", To: "ft", Input: "Inf"}, serrors.ErrInvalidInput},
		{"nan", domain.ConversionRequest{Category: "length", From: "m", To: "ft", Input: "NaN"}, serrors.ErrInvalidInput},
		{"overflow", domain.ConversionRequest{Category: "area", From: "mi²", To: "m²", Input: "1e307"}, serrors.ErrInvalidInput},
		{"unknown category", domain.ConversionRequest{Category: "currency", From: "m", To: "ft", Input: "1"}, serrors.ErrUnsupportedCategory},
		{"unknown from unit", domain.ConversionRequest{Category: "length", From: "kg", To: "ft", Input: "1"}, serrors.ErrUnsupportedConversion},
		{"unknown to unit", domain.ConversionRequest{Category: "temperature", From: "°C", To: "°R", Input: "1"}, serrors.ErrUnsupportedConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Convert(tt.req)
			require.Nil(t, res)
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.kind, serrors.KindOf(err))
		})
	}
}

func TestConvert_InvalidInputMessage(t *testing.T) {
	_, err := converter.New(nil).Convert(domain.ConversionRequest{Category: "length", From: "m", To: "ft", Input: ""})
	require.Error(t, err)
	require.Equal(t, "Please enter a valid number", err.Error())
}

// A registry whose tables miss a rule for a catalog unit is a contract
// violation; the engine must report it as UnsupportedConversion instead of
// producing a value.
func TestConvert_MissingRuleIsUnsupportedConversion(t *testing.T) {
	celsius := domain.Unit{Name: "Celsius", Symbol: units.Celsius, System: domain.SystemMetric}
	rankine := domain.Unit{Name: "Rankine", Symbol: "°R", System: domain.SystemUSImperial}
	ml := domain.Unit{Name: "Milliliter", Symbol: "ml", System: domain.SystemMetric}
	barrel := domain.Unit{Name: "Barrel", Symbol: "bbl", System: domain.SystemUSImperial}

	registry := units.MustNewRegistry(
		units.Entry{
			Category: domain.Category{ID: "temperature", Name: "Temperature", Units: []domain.Unit{celsius, rankine}},
			Strategy: units.StrategyTemperature,
			Formulas: map[units.Pair]units.Formula{},
		},
		units.Entry{
			Category: domain.Category{ID: "volume", Name: "Volume", Units: []domain.Unit{ml, barrel}},
			Strategy: units.StrategyVolume,
			Factors:  map[string]float64{"ml": 1},
		},
	)
	c := converter.New(registry)

	tests := []domain.ConversionRequest{
		{Category: "temperature", From: units.Celsius, To: "°R", Input: "1"},
		{Category: "volume", From: "ml", To: "bbl", Input: "1"},
		{Category: "volume", From: "bbl", To: "ml", Input: "1"},
	}
	for _, req := range tests {
		_, err := c.Convert(req)
		require.ErrorIs(t, err, serrors.ErrUnsupportedConversion, "%s -> %s", req.From, req.To)
	}

	// identities still work without a rule for temperature
	res, err := c.Convert(domain.ConversionRequest{Category: "temperature", From: "°R", To: "°R", Input: "5"})
	require.NoError(t, err)
	require.Equal(t, "5", res.Formatted)
}

func TestCategoriesAndUnitsOf(t *testing.T) {
	c := converter.New(nil)

	require.Len(t, c.Categories(), 6)

	groups, err := c.UnitsOf("speed")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "Imperial/US", groups[0].Label)
	require.Equal(t, "Metric", groups[1].Label)

	_, err = c.UnitsOf("time")
	require.ErrorIs(t, err, serrors.ErrUnsupportedCategory)
}

func TestConvert_ResultsAreFinite(t *testing.T) {
	c := converter.New(nil)

	for _, category := range append(linearCategories, units.Temperature) {
		for _, a := range unitsOf(t, category) {
			for _, b := range unitsOf(t, category) {
				res := convert(t, c, category, a.Symbol, b.Symbol, "1")
				require.False(t, math.IsNaN(res.Value) || math.IsInf(res.Value, 0))
				require.NotEmpty(t, res.Formatted)
			}
		}
	}
}
