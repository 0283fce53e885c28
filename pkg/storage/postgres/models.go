package postgres

import (
	"time"

	"unitconv/pkg/domain"

	"github.com/google/uuid"
)

// PgHistoryEntry is the row shape of the conversion_history table.
type PgHistoryEntry struct {
	ID  uuid.UUID `db:"id"`
	Seq int64     `db:"seq" goqu:"skipinsert"`

	Category    string `db:"category"`
	InputValue  string `db:"input_value"`
	InputUnit   string `db:"input_unit"`
	OutputValue string `db:"output_value"`
	OutputUnit  string `db:"output_unit"`

	CreatedAt time.Time `db:"created_at"`
}

func (p *PgHistoryEntry) ToDomain() domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:          domain.HistoryEntryID(p.ID),
		Timestamp:   p.CreatedAt.UTC(),
		Category:    p.Category,
		InputValue:  p.InputValue,
		InputUnit:   p.InputUnit,
		OutputValue: p.OutputValue,
		OutputUnit:  p.OutputUnit,
	}
}

func (p *PgHistoryEntry) FromDomain(entry domain.HistoryEntry) {
	*p = PgHistoryEntry{
		ID:          uuid.UUID(entry.ID),
		Category:    entry.Category,
		InputValue:  entry.InputValue,
		InputUnit:   entry.InputUnit,
		OutputValue: entry.OutputValue,
		OutputUnit:  entry.OutputUnit,
		CreatedAt:   entry.Timestamp,
	}
}

func pgHistoryToDomain(rows []PgHistoryEntry) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
