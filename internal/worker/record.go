package worker

import (
	"context"
	"errors"
	"fmt"

	"unitconv/internal/history"
	"unitconv/pkg/logger"
	"unitconv/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RecordWorker appends queued conversions to the history log.
type RecordWorker struct {
	river.WorkerDefaults[history.RecordJobArgs]

	history history.History
}

func NewRecordWorker(h history.History) *RecordWorker {
	return &RecordWorker{history: h}
}

// Work records the job's conversion. Payloads the log rejects are cancelled;
// any other failure is returned so River retries the job.
func (w *RecordWorker) Work(ctx context.Context, job *river.Job[history.RecordJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("category", job.Args.Category))

	entry, err := w.history.Record(ctx, job.Args.RecordRequest)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "dropping invalid history record", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error recording history entry", zap.Error(err))

		return fmt.Errorf("could not record history entry: %w", err)
	}

	logger.Debug(ctx, "history entry recorded", zap.Stringer("entryID", entry.ID))

	return nil
}
