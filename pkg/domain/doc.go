// Package domain contains the core domain entities of the unit converter:
// conversion categories, units and measurement systems, conversion requests
// and results, and conversion history entries. These types are free of
// infrastructure concerns so they can be shared across packages.
package domain
