package http

import (
	"net/http"

	"github.com/skillstream/lms-backend/internal/application"
)

func (h *Handler) createLayout(w http.ResponseWriter, r *http.Request) {
	var req application.LayoutInput
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_layout", err)
		return
	}

	layout, err := h.service.CreateLayout(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_layout", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"layout": layout})
}

func (h *Handler) editLayout(w http.ResponseWriter, r *http.Request) {
	var req application.LayoutInput
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "edit_layout", err)
		return
	}

	layout, err := h.service.EditLayout(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "edit_layout", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"layout": layout})
}

func (h *Handler) getLayout(w http.ResponseWriter, r *http.Request) {
	layout, err := h.service.GetLayout(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeMappedError(r.Context(), w, "get_layout", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"layout": layout})
}
