package api

import (
	"net/http"

	"pharmacy/m/domain"
)

func (h *Handler) listOrderedDrugs(w http.ResponseWriter, r *http.Request) {
	drugs, err := h.svc.OrderedDrugs.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "unable to list ordered drugs")
		return
	}
	respondJSON(w, http.StatusOK, drugs)
}

func (h *Handler) listOrderedDrugsByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	drugs, err := h.svc.OrderedDrugs.ListByOrder(r.Context(), orderID)
	if err != nil {
		h.fail(w, r, err, "unable to list ordered drugs")
		return
	}
	respondJSON(w, http.StatusOK, drugs)
}

func (h *Handler) getOrderedDrug(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	d, err := h.svc.OrderedDrugs.Get(r.Context(), orderID, pathParam(r, "drugName"), pathParam(r, "batchNumber"))
	if err != nil {
		h.fail(w, r, err, "unable to load ordered drug")
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *Handler) createOrderedDrug(w http.ResponseWriter, r *http.Request) {
	var d domain.OrderedDrug
	if err := decodeBody(r, &d); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.OrderedDrugs.Create(r.Context(), &d); err != nil {
		h.fail(w, r, err, "unable to create ordered drug")
		return
	}
	respondCreated(w, path("ordereddrugs", itoa(d.OrderID), d.DrugName, d.BatchNumber), d)
}

func (h *Handler) updateOrderedDrug(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var d domain.OrderedDrug
	if err := decodeBody(r, &d); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if d.OrderID != orderID || d.DrugName != pathParam(r, "drugName") || d.BatchNumber != pathParam(r, "batchNumber") {
		respondError(w, http.StatusBadRequest, errKeyMismatch.Error())
		return
	}
	if err := h.svc.OrderedDrugs.Update(r.Context(), &d); err != nil {
		h.fail(w, r, err, "unable to update ordered drug")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deleteOrderedDrug(w http.ResponseWriter, r *http.Request) {
	orderID, err := int64Param(r, "orderID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.OrderedDrugs.Delete(r.Context(), orderID, pathParam(r, "drugName"), pathParam(r, "batchNumber")); err != nil {
		h.fail(w, r, err, "unable to delete ordered drug")
		return
	}
	respondNoContent(w)
}
