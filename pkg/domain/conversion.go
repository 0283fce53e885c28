package domain

// ConversionRequest is a single conversion asked for by a caller. Input is
// raw user text and may use either '.' or ',' as decimal separator.
type ConversionRequest struct {
	Category string `json:"category"`
	From     string `json:"from"`
	To       string `json:"to"`
	Input    string `json:"input"`
}

// ConversionResult is the outcome of a successful conversion. Failures are
// reported as errors, never as partially filled results.
type ConversionResult struct {
	Category Category `json:"-"`
	From     Unit     `json:"from"`
	To       Unit     `json:"to"`
	// Input is the parsed input value.
	Input float64 `json:"input"`
	// Value is the converted value.
	Value float64 `json:"value"`
	// Formatted is Value rendered as a normalized decimal string.
	Formatted string `json:"formatted"`
}

// String renders the result together with the output unit symbol, e.g. "150 cm".
func (r ConversionResult) String() string {
	return r.Formatted + " " + r.To.Symbol
}
