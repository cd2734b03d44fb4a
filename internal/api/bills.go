package api

import (
	"errors"
	"fmt"
	"net/http"

	"pharmacy/m/domain"
	"pharmacy/m/internal/invoice"
	"pharmacy/m/internal/store"
)

func (h *Handler) listBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.svc.Bills.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "unable to list bills")
		return
	}
	respondJSON(w, http.StatusOK, bills)
}

func (h *Handler) getBill(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, err := h.svc.Bills.Get(r.Context(), orderID)
	if err != nil {
		h.fail(w, r, err, "unable to load bill")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// getCustomerBill matches on both the order and the customer SSN.
func (h *Handler) getCustomerBill(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, err := h.svc.Bills.GetForCustomer(r.Context(), orderID, pathParam(r, "customerSSN"))
	if err != nil {
		h.fail(w, r, err, "unable to load bill")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

func (h *Handler) createBill(w http.ResponseWriter, r *http.Request) {
	var b domain.Bill
	if err := decodeBody(r, &b); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Bills.Create(r.Context(), &b); err != nil {
		h.fail(w, r, err, "unable to create bill")
		return
	}
	respondCreated(w, path("bills", itoa(b.OrderID), b.CustomerSSN), b)
}

func (h *Handler) updateBill(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.saveBill(w, r, func(b *domain.Bill) bool { return b.OrderID == orderID })
}

func (h *Handler) updateCustomerBill(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	ssn := pathParam(r, "customerSSN")
	h.saveBill(w, r, func(b *domain.Bill) bool { return b.OrderID == orderID && b.CustomerSSN == ssn })
}

func (h *Handler) saveBill(w http.ResponseWriter, r *http.Request, matches func(*domain.Bill) bool) {
	var b domain.Bill
	if err := decodeBody(r, &b); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !matches(&b) {
		respondError(w, http.StatusBadRequest, errKeyMismatch.Error())
		return
	}
	if err := h.svc.Bills.Update(r.Context(), &b); err != nil {
		h.fail(w, r, err, "unable to update bill")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deleteBill(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Bills.Delete(r.Context(), orderID); err != nil {
		h.fail(w, r, err, "unable to delete bill")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deleteCustomerBill(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Bills.DeleteForCustomer(r.Context(), orderID, pathParam(r, "customerSSN")); err != nil {
		h.fail(w, r, err, "unable to delete bill")
		return
	}
	respondNoContent(w)
}

// billInvoice renders the bill as a PDF. The order and customer are printed
// when they still exist.
func (h *Handler) billInvoice(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx := r.Context()
	b, err := h.svc.Bills.Get(ctx, orderID)
	if err != nil {
		h.fail(w, r, err, "unable to load bill")
		return
	}

	data := invoice.Data{Bill: *b}
	if data.Order, err = h.svc.Orders.Get(ctx, orderID); err != nil && !errors.Is(err, store.ErrNotFound) {
		h.fail(w, r, err, "unable to load order")
		return
	}
	if data.Customer, err = h.svc.Customers.GetBySSN(ctx, b.CustomerSSN); err != nil && !errors.Is(err, store.ErrNotFound) {
		h.fail(w, r, err, "unable to load customer")
		return
	}
	if data.Drugs, err = h.svc.OrderedDrugs.ListByOrder(ctx, orderID); err != nil {
		h.fail(w, r, err, "unable to list ordered drugs")
		return
	}

	pdf, err := invoice.Render(data)
	if err != nil {
		h.fail(w, r, err, "unable to render invoice")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="invoice-%d.pdf"`, orderID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
