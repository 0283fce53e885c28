// Package units holds the catalog of conversion categories and units together
// with the data tables their conversions are computed from. The catalog is
// compiled into the binary and immutable after initialization.
package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"unitconv/pkg/domain"
)

// Strategy selects how a category converts values.
type Strategy int

const (
	// StrategyLinear scales through a single base unit using Factors.
	StrategyLinear Strategy = iota + 1
	// StrategyTemperature applies explicit pairwise Formulas.
	StrategyTemperature
	// StrategyVolume converts through millilitres using Factors.
	StrategyVolume
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyTemperature:
		return "temperature"
	case StrategyVolume:
		return "volume"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Pair is an ordered (from, to) unit symbol pair.
type Pair struct {
	From string
	To   string
}

// Formula converts a value for one unit pair.
type Formula func(v float64) float64

// Entry is a category together with its conversion data.
type Entry struct {
	Category domain.Category
	Strategy Strategy
	// Factors maps a unit symbol to its size in the category's base unit.
	// Used by StrategyLinear and StrategyVolume.
	Factors map[string]float64
	// Formulas maps a unit pair to its conversion. Used by StrategyTemperature.
	Formulas map[Pair]Formula
}

// Unit returns the unit with the given symbol.
func (e Entry) Unit(symbol string) (domain.Unit, bool) {
	return e.Category.Unit(symbol)
}

// Registry is an immutable, ordered set of category entries. It is safe for
// concurrent use.
type Registry struct {
	entries []Entry
	byKey   map[string]int
}

var (
	// ErrNoUnits is returned for a category without units.
	ErrNoUnits = errors.New("category has no units")
	// ErrDuplicateSymbol is returned when a symbol appears twice in a category.
	ErrDuplicateSymbol = errors.New("duplicate unit symbol")
	// ErrUnknownDefault is returned when a default unit is not part of the category.
	ErrUnknownDefault = errors.New("default unit is not part of the category")
	// ErrDuplicateCategory is returned when two categories share an ID or name.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrNoStrategy is returned for a category without a conversion strategy.
	ErrNoStrategy = errors.New("category has no conversion strategy")
)

// NewRegistry validates the given entries and builds a registry keeping their
// order. Missing defaults are filled in: the first unit becomes the default
// input and the second (or first) unit the default output.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)*2),
	}

	for _, e := range entries {
		c := e.Category
		if len(c.Units) == 0 {
			return nil, fmt.Errorf("%s: %w", c.ID, ErrNoUnits)
		}
		if e.Strategy == 0 {
			return nil, fmt.Errorf("%s: %w", c.ID, ErrNoStrategy)
		}

		seen := make(map[string]struct{}, len(c.Units))
		for _, u := range c.Units {
			if _, ok := seen[u.Symbol]; ok {
				return nil, fmt.Errorf("%s: %q: %w", c.ID, u.Symbol, ErrDuplicateSymbol)
			}
			seen[u.Symbol] = struct{}{}
		}

		if c.DefaultInput == "" {
			c.DefaultInput = c.Units[0].Symbol
		}
		if c.DefaultOutput == "" {
			c.DefaultOutput = c.Units[min(1, len(c.Units)-1)].Symbol
		}
		for _, symbol := range []string{c.DefaultInput, c.DefaultOutput} {
			if _, ok := seen[symbol]; !ok {
				return nil, fmt.Errorf("%s: %q: %w", c.ID, symbol, ErrUnknownDefault)
			}
		}

		// units are copied so callers cannot mutate the registry through the input slice
		c.Units = append([]domain.Unit(nil), c.Units...)
		e.Category = c

		idx := len(r.entries)
		for _, k := range []string{normalizeKey(string(c.ID)), normalizeKey(c.Name)} {
			if prev, ok := r.byKey[k]; ok && prev != idx {
				return nil, fmt.Errorf("%s: %w", c.ID, ErrDuplicateCategory)
			}
			r.byKey[k] = idx
		}
		r.entries = append(r.entries, e)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid entries.
func MustNewRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(fmt.Sprintf("invalid unit registry: %v", err))
	}

	return r
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Categories returns the categories in catalog order.
func (r *Registry) Categories() []domain.Category {
	out := make([]domain.Category, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Category
		out[i].Units = append([]domain.Unit(nil), e.Category.Units...)
	}

	return out
}

// Lookup finds a category entry by ID or display name, ignoring case.
func (r *Registry) Lookup(id string) (Entry, bool) {
	idx, ok := r.byKey[normalizeKey(id)]
	if !ok {
		return Entry{}, false
	}

	return r.entries[idx], true
}

// UnitsOf returns the units of a category grouped by measurement system.
// Groups are sorted by system label, units keep catalog order.
func (r *Registry) UnitsOf(id string) ([]domain.UnitGroup, bool) {
	e, ok := r.Lookup(id)
	if !ok {
		return nil, false
	}

	return GroupBySystem(e.Category.Units), true
}

// GroupBySystem groups units by measurement system, sorted by system label.
func GroupBySystem(us []domain.Unit) []domain.UnitGroup {
	var groups []domain.UnitGroup
	index := make(map[domain.MeasurementSystem]int)
	for _, u := range us {
		i, ok := index[u.System]
		if !ok {
			i = len(groups)
			index[u.System] = i
			groups = append(groups, domain.UnitGroup{System: u.System, Label: u.System.Label()})
		}
		groups[i].Units = append(groups[i].Units, u)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Label < groups[j].Label
	})

	return groups
}
