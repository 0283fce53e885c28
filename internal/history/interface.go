package history

import (
	"context"

	"unitconv/pkg/domain"
)

//go:generate mockgen -package mockhistory -source=interface.go -destination=mock/mockhistory.go *

// Recorder appends conversions to the history log.
type Recorder interface {
	Record(ctx context.Context, req RecordRequest) (*domain.HistoryEntry, error)
}

// History is the capped, newest-first conversion log.
type History interface {
	Recorder

	List(ctx context.Context, limit uint) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}
