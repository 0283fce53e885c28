package v1handler

import (
	"net/http"

	"unitconv/internal/history"
	"unitconv/pkg/domain"
	"unitconv/pkg/logger"
	"unitconv/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// ConvertRequest is the body of POST /v1/conversions.
type ConvertRequest struct {
	domain.ConversionRequest

	// Record appends a successful conversion to the history log.
	Record bool
}

// Decode reads the request from d. The value may be sent as a JSON string,
// which keeps decimal commas intact, or as a number.
func (c *ConvertRequest) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "category":
			c.Category, err = d.Str()
		case "from":
			c.From, err = d.Str()
		case "to":
			c.To, err = d.Str()
		case "value":
			c.Input, err = decodeValue(d)
		case "record":
			c.Record, err = d.Bool()
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}

		return nil
	})
}

func decodeValue(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str() //nolint: wrapcheck
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return n.String(), nil
	default:
		return "", errors.New("value must be a string or a number")
	}
}

// Validate checks that every field needed for a conversion is present.
func (c *ConvertRequest) Validate() error {
	switch {
	case c.Category == "":
		return serrors.With(serrors.ErrBadRequest, "category is required")
	case c.From == "" || c.To == "":
		return serrors.With(serrors.ErrBadRequest, "from and to units are required")
	}

	return nil
}

func encodeConversion(res *domain.ConversionResult, recorded bool) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("category", func(e *jx.Encoder) { e.Str(string(res.Category.ID)) })
			e.Field("from", func(e *jx.Encoder) { encodeUnit(e, res.From) })
			e.Field("to", func(e *jx.Encoder) { encodeUnit(e, res.To) })
			e.Field("input", func(e *jx.Encoder) { e.Float64(res.Input) })
			e.Field("value", func(e *jx.Encoder) { e.Float64(res.Value) })
			e.Field("formatted", func(e *jx.Encoder) { e.Str(res.Formatted) })
			e.Field("text", func(e *jx.Encoder) { e.Str(res.String()) })
			e.Field("recorded", func(e *jx.Encoder) { e.Bool(recorded) })
		})
	}
}

// Convert runs a single conversion. Failed conversions are never recorded.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req ConvertRequest
	if err := req.Decode(jx.DecodeBytes(body)); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Converter.Convert(req.ConversionRequest)
	if err != nil {
		writeError(w, r, err)

		return
	}

	recorded := false
	if req.Record {
		if _, err := h.deps.Recorder.Record(ctx, history.FromConversion(req.ConversionRequest, res)); err != nil {
			// the conversion itself succeeded; report it without the history write
			logger.Error(ctx, "could not record conversion", zap.Error(err))
		} else {
			recorded = true
		}
	}

	writeJSON(w, http.StatusOK, encodeConversion(res, recorded))
}
