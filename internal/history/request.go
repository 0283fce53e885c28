package history

import (
	"strings"

	"unitconv/pkg/domain"
	"unitconv/pkg/serrors"
)

// RecordRequest is a successful conversion as it is written to the log.
type RecordRequest struct {
	Category    string `json:"category"`
	InputValue  string `json:"inputValue"`
	InputUnit   string `json:"inputUnit"`
	OutputValue string `json:"outputValue"`
	OutputUnit  string `json:"outputUnit"`
}

// FromConversion builds the log record for a successful conversion. The input
// is kept as the user typed it.
func FromConversion(req domain.ConversionRequest, res *domain.ConversionResult) RecordRequest {
	return RecordRequest{
		Category:    res.Category.Name,
		InputValue:  strings.TrimSpace(req.Input),
		InputUnit:   res.From.Symbol,
		OutputValue: res.Formatted,
		OutputUnit:  res.To.Symbol,
	}
}

// Validate reports a BadRequest error when a required field is empty.
func (r RecordRequest) Validate() error {
	switch {
	case r.Category == "":
		return serrors.With(serrors.ErrBadRequest, "category is required")
	case r.InputValue == "" || r.InputUnit == "":
		return serrors.With(serrors.ErrBadRequest, "input value and unit are required")
	case r.OutputValue == "" || r.OutputUnit == "":
		return serrors.With(serrors.ErrBadRequest, "output value and unit are required")
	}

	return nil
}

func (r RecordRequest) entry(id domain.HistoryEntryID) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:          id,
		Category:    r.Category,
		InputValue:  r.InputValue,
		InputUnit:   r.InputUnit,
		OutputValue: r.OutputValue,
		OutputUnit:  r.OutputUnit,
	}
}
