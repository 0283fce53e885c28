package units

import "unitconv/pkg/domain"

// Category identifiers of the built-in catalog.
const (
	Length      domain.CategoryID = "length"
	Weight      domain.CategoryID = "weight"
	Volume      domain.CategoryID = "volume"
	Temperature domain.CategoryID = "temperature"
	Area        domain.CategoryID = "area"
	Speed       domain.CategoryID = "speed"
)

// Temperature unit symbols.
const (
	Celsius    = "°C"
	Fahrenheit = "°F"
	Kelvin     = "K"
)

const absoluteZeroCelsius = 273.15

var defaultRegistry = MustNewRegistry(Catalog()...) //nolint: gochecknoglobals

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

func metric(name, symbol string) domain.Unit {
	return domain.Unit{Name: name, Symbol: symbol, System: domain.SystemMetric}
}

func us(name, symbol string) domain.Unit {
	return domain.Unit{Name: name, Symbol: symbol, System: domain.SystemUSImperial}
}

func uk(name, symbol string) domain.Unit {
	return domain.Unit{Name: name, Symbol: symbol, System: domain.SystemUKImperial}
}

// Catalog returns fresh copies of the built-in category entries, in display order.
func Catalog() []Entry {
	return []Entry{
		{
			Category: domain.Category{
				ID: Length, Name: "Length", Icon: "ruler",
				Units: []domain.Unit{
					metric("Millimeter", "mm"),
					metric("Centimeter", "cm"),
					metric("Meter", "m"),
					metric("Kilometer", "km"),
					us("Inch", "in"),
					us("Foot", "ft"),
					us("Yard", "yd"),
					us("Mile", "mi"),
				},
			},
			Strategy: StrategyLinear,
			// meters
			Factors: map[string]float64{
				"mm": 0.001,
				"cm": 0.01,
				"m":  1,
				"km": 1000,
				"in": 0.0254,
				"ft": 0.3048,
				"yd": 0.9144,
				"mi": 1609.344,
			},
		},
		{
			Category: domain.Category{
				ID: Weight, Name: "Weight", Icon: "scalemass",
				Units: []domain.Unit{
					metric("Milligram", "mg"),
					metric("Gram", "g"),
					metric("Kilogram", "kg"),
					metric("Metric Ton", "t"),
					us("Ounce", "oz"),
					us("Pound", "lb"),
					us("Stone", "st"),
					us("US Ton", "ton"),
				},
			},
			Strategy: StrategyLinear,
			// kilograms
			Factors: map[string]float64{
				"mg":  1e-6,
				"g":   0.001,
				"kg":  1,
				"t":   1000,
				"oz":  0.028349523125,
				"lb":  0.45359237,
				"st":  6.35029318,
				"ton": 907.18474,
			},
		},
		{
			Category: domain.Category{
				ID: Volume, Name: "Volume", Icon: "beaker",
				Units: []domain.Unit{
					metric("Milliliter", "ml"),
					metric("Centiliter", "cl"),
					metric("Deciliter", "dl"),
					metric("Liter", "l"),
					metric("Cubic Meter", "m³"),
					us("Teaspoon", "tsp"),
					us("Tablespoon", "tbsp"),
					us("Fluid Ounce", "fl oz"),
					us("Cup", "cup"),
					us("Pint", "pt"),
					us("Quart", "qt"),
					us("Gallon", "gal"),
					uk("Imperial Cup", "cup (UK)"),
					uk("Imperial Pint", "pt (UK)"),
					uk("Imperial Quart", "qt (UK)"),
					uk("Imperial Gallon", "gal (UK)"),
				},
			},
			Strategy: StrategyVolume,
			// millilitres
			Factors: map[string]float64{
				"ml":       1,
				"cl":       10,
				"dl":       100,
				"l":        1000,
				"m³":       1_000_000,
				"tsp":      4.92892,
				"tbsp":     14.7868,
				"fl oz":    29.5735,
				"cup":      236.588,
				"pt":       473.176,
				"qt":       946.353,
				"gal":      3785.41,
				"cup (UK)": 284.131,
				"pt (UK)":  568.261,
				"qt (UK)":  1136.52,
				"gal (UK)": 4546.09,
			},
		},
		{
			Category: domain.Category{
				ID: Temperature, Name: "Temperature", Icon: "thermometer",
				Units: []domain.Unit{
					metric("Celsius", Celsius),
					us("Fahrenheit", Fahrenheit),
					metric("Kelvin", Kelvin),
				},
			},
			Strategy: StrategyTemperature,
			Formulas: map[Pair]Formula{
				{Celsius, Fahrenheit}: func(v float64) float64 { return v*9/5 + 32 },
				{Celsius, Kelvin}:     func(v float64) float64 { return v + absoluteZeroCelsius },
				{Fahrenheit, Celsius}: func(v float64) float64 { return (v - 32) * 5 / 9 },
				{Fahrenheit, Kelvin}:  func(v float64) float64 { return (v-32)*5/9 + absoluteZeroCelsius },
				{Kelvin, Celsius}:     func(v float64) float64 { return v - absoluteZeroCelsius },
				{Kelvin, Fahrenheit}:  func(v float64) float64 { return (v-absoluteZeroCelsius)*9/5 + 32 },
			},
		},
		{
			Category: domain.Category{
				ID: Area, Name: "Area", Icon: "square",
				Units: []domain.Unit{
					metric("Square Meter", "m²"),
					metric("Hectare", "ha"),
					metric("Square Kilometer", "km²"),
					us("Square Foot", "ft²"),
					us("Square Yard", "yd²"),
					us("Acre", "ac"),
					us("Square Mile", "mi²"),
				},
			},
			Strategy: StrategyLinear,
			// square meters
			Factors: map[string]float64{
				"m²":  1,
				"ha":  10_000,
				"km²": 1_000_000,
				"ft²": 0.09290304,
				"yd²": 0.83612736,
				"ac":  4046.8564224,
				"mi²": 2_589_988.110336,
			},
		},
		{
			Category: domain.Category{
				ID: Speed, Name: "Speed", Icon: "speedometer",
				Units: []domain.Unit{
					metric("Kilometers per Hour", "km/h"),
					metric("Meters per Second", "m/s"),
					us("Miles per Hour", "mph"),
					us("Knots", "kn"),
				},
			},
			Strategy: StrategyLinear,
			// meters per second
			Factors: map[string]float64{
				"km/h": 1000.0 / 3600,
				"m/s":  1,
				"mph":  0.44704,
				"kn":   1852.0 / 3600,
			},
		},
	}
}
