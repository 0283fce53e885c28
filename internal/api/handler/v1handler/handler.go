package v1handler

import (
	"net/http"

	"unitconv/internal/converter"
	"unitconv/internal/history"
)

// Prefix is the path prefix of every v1 route.
const Prefix = "/v1"

// Deps are the services the v1 handlers call into.
type Deps struct {
	// Converter runs conversions and serves the catalog.
	Converter converter.Converter
	// History lists and clears the conversion log.
	History history.History
	// Recorder appends successful conversions to the log. It is either
	// History itself or a queue-backed recorder.
	Recorder history.Recorder
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Recorder == nil {
		deps.Recorder = deps.History
	}

	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux. History routes require a bearer token
// when sec has a public key configured.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("GET "+Prefix+"/categories", h.ListCategories)
	mux.HandleFunc("GET "+Prefix+"/categories/{id}/units", h.ListUnits)
	mux.HandleFunc("POST "+Prefix+"/conversions", h.Convert)
	mux.Handle("GET "+Prefix+"/history", sec.Middleware(http.HandlerFunc(h.ListHistory)))
	mux.Handle("DELETE "+Prefix+"/history", sec.Middleware(http.HandlerFunc(h.ClearHistory)))
}
