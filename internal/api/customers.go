package api

import (
	"net/http"

	"pharmacy/m/domain"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.Customers.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "unable to list customers")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Customers.GetBySSN(r.Context(), pathParam(r, "ssn"))
	if err != nil {
		h.fail(w, r, err, "unable to load customer")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeBody(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Customers.Create(r.Context(), &c); err != nil {
		h.fail(w, r, err, "unable to create customer")
		return
	}
	respondCreated(w, path("customers", c.SSN), c)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeBody(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if c.SSN != pathParam(r, "ssn") {
		respondError(w, http.StatusBadRequest, errKeyMismatch.Error())
		return
	}
	if err := h.svc.Customers.Update(r.Context(), &c); err != nil {
		h.fail(w, r, err, "unable to update customer")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Customers.Delete(r.Context(), pathParam(r, "ssn")); err != nil {
		h.fail(w, r, err, "unable to delete customer")
		return
	}
	respondNoContent(w)
}
