package v1handler

import (
	"io"
	"net/http"
	"strconv"

	"unitconv/pkg/domain"
	"unitconv/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(e.Bytes())))
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "read body"), "could not read request body")
	}

	return body, nil
}

func encodeItems[T any](items []T, encode func(e *jx.Encoder, item T)) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, item := range items {
						encode(e, item)
					}
				})
			})
		})
	}
}

func encodeUnit(e *jx.Encoder, u domain.Unit) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(u.Name) })
		e.Field("symbol", func(e *jx.Encoder) { e.Str(u.Symbol) })
		e.Field("system", func(e *jx.Encoder) { e.Str(string(u.System)) })
		e.Field("displayName", func(e *jx.Encoder) { e.Str(u.DisplayName()) })
	})
}

func encodeUnits(e *jx.Encoder, units []domain.Unit) {
	e.Arr(func(e *jx.Encoder) {
		for _, u := range units {
			encodeUnit(e, u)
		}
	})
}

func encodeCategory(e *jx.Encoder, c domain.Category) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(string(c.ID)) })
		e.Field("name", func(e *jx.Encoder) { e.Str(c.Name) })
		e.Field("icon", func(e *jx.Encoder) { e.Str(c.Icon) })
		e.Field("defaultInput", func(e *jx.Encoder) { e.Str(c.DefaultInput) })
		e.Field("defaultOutput", func(e *jx.Encoder) { e.Str(c.DefaultOutput) })
		e.Field("units", func(e *jx.Encoder) { encodeUnits(e, c.Units) })
	})
}

func encodeUnitGroup(e *jx.Encoder, g domain.UnitGroup) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("system", func(e *jx.Encoder) { e.Str(string(g.System)) })
		e.Field("label", func(e *jx.Encoder) { e.Str(g.Label) })
		e.Field("units", func(e *jx.Encoder) { encodeUnits(e, g.Units) })
	})
}

func encodeHistoryEntry(e *jx.Encoder, h domain.HistoryEntry) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(h.ID.String()) })
		e.Field("timestamp", func(e *jx.Encoder) { e.Str(h.Timestamp.UTC().Format(timestampLayout)) })
		e.Field("category", func(e *jx.Encoder) { e.Str(h.Category) })
		e.Field("inputValue", func(e *jx.Encoder) { e.Str(h.InputValue) })
		e.Field("inputUnit", func(e *jx.Encoder) { e.Str(h.InputUnit) })
		e.Field("outputValue", func(e *jx.Encoder) { e.Str(h.OutputValue) })
		e.Field("outputUnit", func(e *jx.Encoder) { e.Str(h.OutputUnit) })
	})
}
