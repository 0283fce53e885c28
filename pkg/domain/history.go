package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntryID uniquely identifies a recorded conversion.
type HistoryEntryID uuid.UUID

// String returns the canonical uuid representation.
func (id HistoryEntryID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the id in its canonical uuid form.
func (id HistoryEntryID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText decodes a uuid string into the id.
func (id *HistoryEntryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// HistoryEntry is a past conversion kept in the history log. Values and
// units are stored exactly as they were displayed.
type HistoryEntry struct {
	ID        HistoryEntryID `json:"id"`
	Timestamp time.Time      `json:"timestamp"`

	// Category is the display name of the category, e.g. "Length".
	Category    string `json:"category"`
	InputValue  string `json:"inputValue"`
	InputUnit   string `json:"inputUnit"`
	OutputValue string `json:"outputValue"`
	OutputUnit  string `json:"outputUnit"`
}
