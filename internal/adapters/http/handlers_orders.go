package http

import (
	"net/http"

	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/domain"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "create_order", domain.ErrNotAuthenticated)
		return
	}
	var req application.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_order", err)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), user, req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_order", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"order": order})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_orders", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"orders": orders})
}
