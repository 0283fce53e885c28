package history

import (
	"github.com/riverqueue/river"
)

const (
	// Queue is the River queue history jobs run on. It is served by a single
	// worker so that one writer owns the log.
	Queue = "history"

	recordJobMaxAttempts = 5
)

// RecordJobArgs carries a conversion to be appended to the log by the worker.
type RecordJobArgs struct {
	RecordRequest
}

// Kind returns the River job kind used to register and dispatch the history worker.
func (RecordJobArgs) Kind() string { return "RecordHistoryJob" }

// InsertOpts routes the job to the history queue.
func (RecordJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       Queue,
		MaxAttempts: recordJobMaxAttempts,
	}
}
