package v1handler

import (
	"net/http"
)

// ListCategories returns the catalog in catalog order.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, encodeItems(h.deps.Converter.Categories(), encodeCategory))
}

// ListUnits returns the units of a category grouped by measurement system.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	groups, err := h.deps.Converter.UnitsOf(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeItems(groups, encodeUnitGroup))
}
