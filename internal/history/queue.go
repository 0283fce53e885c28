package history

import (
	"context"
	"fmt"

	"unitconv/pkg/domain"
	"unitconv/pkg/storage"
)

// QueueRecorder records conversions by enqueueing a River job. The entry is
// written later by the history worker, so Record returns a nil entry.
type QueueRecorder struct {
	jobs storage.JobStorage
}

var _ Recorder = (*QueueRecorder)(nil)

// NewQueueRecorder returns a Recorder that enqueues through jobs.
func NewQueueRecorder(jobs storage.JobStorage) *QueueRecorder {
	return &QueueRecorder{jobs: jobs}
}

func (q *QueueRecorder) Record(ctx context.Context, req RecordRequest) (*domain.HistoryEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := q.jobs.AddJob(ctx, RecordJobArgs{RecordRequest: req}, nil); err != nil {
		return nil, fmt.Errorf("could not enqueue history record: %w", err)
	}

	return nil, nil //nolint: nilnil
}
