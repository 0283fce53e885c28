package postgres

import (
	"context"
	"fmt"

	"unitconv/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	historyTable = "conversion_history"
)

// newestFirst orders history rows by insertion sequence, newest first.
func newestFirst() []exp.OrderedExpression {
	return []exp.OrderedExpression{goqu.I("seq").Desc()}
}

// StoreHistoryEntry inserts a single history entry and returns the stored row.
func (p *PgSQL) StoreHistoryEntry(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	var row PgHistoryEntry
	row.FromDomain(entry)

	var stored PgHistoryEntry
	if _, err := p.Builder.Insert(historyTable).
		Rows(row).
		Returning(&PgHistoryEntry{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store history entry into pg: %w", err)
	}

	out := stored.ToDomain()

	return &out, nil
}

// HistoryEntries returns up to limit entries, newest first. A zero limit
// returns every entry.
func (p *PgSQL) HistoryEntries(ctx context.Context, limit uint) ([]domain.HistoryEntry, error) {
	ds := p.Builder.From(historyTable).Order(newestFirst()...)
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgHistoryEntry
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch history entries from pg: %w", err)
	}

	return pgHistoryToDomain(rows), nil
}

// TrimHistory deletes all but the keep most recent entries.
func (p *PgSQL) TrimHistory(ctx context.Context, keep uint) (int64, error) {
	ds := p.Builder.Delete(historyTable)
	if keep > 0 {
		newest := p.Builder.From(historyTable).
			Select(goqu.I("id")).
			Order(newestFirst()...).
			Limit(keep)
		ds = ds.Where(goqu.I("id").NotIn(newest))
	}

	res, err := ds.Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not trim history in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count trimmed history entries: %w", err)
	}

	return n, nil
}

// ClearHistory deletes every history entry.
func (p *PgSQL) ClearHistory(ctx context.Context) (int64, error) {
	res, err := p.Builder.Delete(historyTable).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not clear history in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count cleared history entries: %w", err)
	}

	return n, nil
}
