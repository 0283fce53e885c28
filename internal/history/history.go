package history

import (
	"context"
	"fmt"
	"sync"

	"unitconv/internal/config"
	"unitconv/pkg/domain"
	"unitconv/pkg/logger"
	"unitconv/pkg/metrics"
	"unitconv/pkg/storage"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultMaxEntries is the log capacity when none is configured.
	DefaultMaxEntries = 100

	tracerName = "unitconv/internal/history"
)

// Options configure the history log.
type Options struct {
	// MaxEntries caps the log; the oldest entries are evicted past it.
	MaxEntries uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxEntries: uint(cfg.History.MaxEntries), //nolint: gosec
	}
}

// history is the concrete implementation of the History interface.
type history struct {
	options Options
	storage storage.Storage
	tracer  trace.Tracer

	// mu serializes writers so that insert and trim never interleave.
	mu sync.Mutex
}

var _ History = (*history)(nil)

// New creates a History backed by the provided storage.
func New(storage storage.Storage, options Options) History {
	if options.MaxEntries == 0 {
		options.MaxEntries = DefaultMaxEntries
	}

	return &history{
		options: options,
		storage: storage,
		tracer:  otel.Tracer(tracerName),
	}
}

// Record stamps req with a new ID and the current time, stores it at the
// front of the log and trims the log to MaxEntries in the same transaction.
func (h *history) Record(ctx context.Context, req RecordRequest) (*domain.HistoryEntry, error) {
	ctx, span := h.tracer.Start(ctx, "history.Record", trace.WithAttributes(
		attribute.String("category", req.Category),
	))
	defer span.End()

	if err := req.Validate(); err != nil {
		fail(span, err)

		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry := req.entry(domain.HistoryEntryID(uuid.New()))
	entry.Timestamp = storage.Timestamp()

	var stored *domain.HistoryEntry
	var evicted int64
	if err := h.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreHistoryEntry(ctx, entry)
		if err != nil {
			return fmt.Errorf("could not store history entry: %w", err)
		}

		evicted, err = tx.TrimHistory(ctx, h.options.MaxEntries)
		if err != nil {
			return fmt.Errorf("could not trim history: %w", err)
		}

		return nil
	}); err != nil {
		fail(span, err)

		return nil, fmt.Errorf("could not record conversion: %w", err)
	}

	metrics.HistoryEntriesRecorded.Inc()
	span.SetAttributes(attribute.Int64("evicted", evicted))
	if evicted > 0 {
		logger.Get(ctx).Debug("evicted old history entries", zap.Int64("count", evicted))
	}

	return stored, nil
}

// List returns up to limit entries, newest first. A zero limit returns the
// whole log.
func (h *history) List(ctx context.Context, limit uint) ([]domain.HistoryEntry, error) {
	ctx, span := h.tracer.Start(ctx, "history.List", trace.WithAttributes(
		attribute.Int("limit", int(limit)), //nolint: gosec
	))
	defer span.End()

	if limit == 0 || limit > h.options.MaxEntries {
		limit = h.options.MaxEntries
	}

	entries, err := h.storage.HistoryEntries(ctx, limit)
	if err != nil {
		fail(span, err)

		return nil, fmt.Errorf("could not list history: %w", err)
	}

	return entries, nil
}

// Clear empties the log.
func (h *history) Clear(ctx context.Context) error {
	ctx, span := h.tracer.Start(ctx, "history.Clear")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	deleted, err := h.storage.ClearHistory(ctx)
	if err != nil {
		fail(span, err)

		return fmt.Errorf("could not clear history: %w", err)
	}

	logger.Get(ctx).Info("history cleared", zap.Int64("deleted", deleted))

	return nil
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
