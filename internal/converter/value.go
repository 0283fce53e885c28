package converter

import (
	"math"
	"strconv"
	"strings"

	"unitconv/pkg/serrors"
)

const (
	// scientificThreshold is the magnitude below which non-zero values are
	// rendered in scientific notation.
	scientificThreshold = 1e-6
	// maxFractionDigits bounds the fractional digits of rendered values.
	maxFractionDigits = 8
)

// ParseInput parses user text as a finite real number. Both '.' and ',' are
// accepted as decimal separator; surrounding whitespace is ignored.
func ParseInput(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return 0, serrors.KindOnly(serrors.ErrInvalidInput)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInvalidInput, err, "%q is not a number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, serrors.With(serrors.ErrInvalidInput, "%q is not a finite number", raw)
	}

	return v, nil
}

// FormatValue renders v as a locale independent decimal string. Non-zero
// magnitudes below 1e-6 use scientific notation with 8 fractional digits;
// everything else uses at most 8 fractional digits without trailing zeros.
func FormatValue(v float64) string {
	if v != 0 && math.Abs(v) < scientificThreshold {
		return strconv.FormatFloat(v, 'e', maxFractionDigits, 64)
	}

	s := strconv.FormatFloat(v, 'f', maxFractionDigits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}
