package api

import (
	"net/http"

	"pharmacy/m/domain"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Orders.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "unable to list orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.svc.Orders.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "unable to load order")
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var o domain.Order
	if err := decodeBody(r, &o); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Orders.Create(r.Context(), &o); err != nil {
		h.fail(w, r, err, "unable to create order")
		return
	}
	respondCreated(w, path("orders", itoa(o.OrderID)), o)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var o domain.Order
	if err := decodeBody(r, &o); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if o.OrderID != id {
		respondError(w, http.StatusBadRequest, errKeyMismatch.Error())
		return
	}
	if err := h.svc.Orders.Update(r.Context(), &o); err != nil {
		h.fail(w, r, err, "unable to update order")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Orders.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, "unable to delete order")
		return
	}
	respondNoContent(w)
}
