package v1handler

import (
	"net/http"
	"strconv"

	"unitconv/pkg/logger"
	"unitconv/pkg/serrors"

	"go.uber.org/zap"
)

// timestampLayout renders history timestamps.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// ListHistory returns the history log, newest first. The optional limit
// query parameter bounds the number of entries.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "limit must be a non-negative integer"))

			return
		}
	}

	entries, err := h.deps.History.List(r.Context(), uint(limit))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeItems(entries, encodeHistoryEntry))
}

// ClearHistory empties the history log.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.deps.History.Clear(ctx); err != nil {
		writeError(w, r, err)

		return
	}

	logger.Info(ctx, "history cleared by client", zap.String("subject", SubjectFromContext(ctx)))
	w.WriteHeader(http.StatusNoContent)
}
