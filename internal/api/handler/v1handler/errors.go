package v1handler

import (
	"context"
	"net/http"

	"unitconv/pkg/logger"
	"unitconv/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// ErrorBody is the JSON error payload.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse is an error mapped to its HTTP representation.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// statuses maps semantic kinds to HTTP status codes. Anything else is a 500.
var statuses = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrInvalidInput:          http.StatusBadRequest,
	serrors.ErrUnsupportedConversion: http.StatusBadRequest,
	serrors.ErrBadRequest:            http.StatusBadRequest,
	serrors.ErrUnsupportedCategory:   http.StatusNotFound,
	serrors.ErrNotFound:              http.StatusNotFound,
	serrors.ErrUnauthorized:          http.StatusUnauthorized,
}

var fallbackMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
}

// NewError maps err to a status code and a client safe message. Internal
// errors are logged and never leak their cause.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	status, ok := statuses[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.UserMessage(err)
	if msg == kind.Error() {
		if fallback, ok := fallbackMessages[kind]; ok {
			msg = fallback
		}
	}
	logger.Debug(ctx, "request failed", zap.String("code", kind.Error()), zap.Error(err))

	return &ErrorResponse{
		StatusCode: status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

// Encode writes the error body.
func (b ErrorBody) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(b.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(b.Message) })
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response.Encode)
}
