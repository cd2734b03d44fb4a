package api

import (
	"net/http"

	"pharmacy/m/domain"
)

func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.svc.Medicines.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "unable to list medicines")
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}

func (h *Handler) getMedicine(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Medicines.Get(r.Context(), pathParam(r, "drugName"), pathParam(r, "batchNumber"))
	if err != nil {
		h.fail(w, r, err, "unable to load medicine")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *Handler) createMedicine(w http.ResponseWriter, r *http.Request) {
	var m domain.Medicine
	if err := decodeBody(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Medicines.Create(r.Context(), &m); err != nil {
		h.fail(w, r, err, "unable to create medicine")
		return
	}
	respondCreated(w, path("medicines", m.DrugName, m.BatchNumber), m)
}

func (h *Handler) updateMedicine(w http.ResponseWriter, r *http.Request) {
	var m domain.Medicine
	if err := decodeBody(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.DrugName != pathParam(r, "drugName") || m.BatchNumber != pathParam(r, "batchNumber") {
		respondError(w, http.StatusBadRequest, errKeyMismatch.Error())
		return
	}
	if err := h.svc.Medicines.Update(r.Context(), &m); err != nil {
		h.fail(w, r, err, "unable to update medicine")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Medicines.Delete(r.Context(), pathParam(r, "drugName"), pathParam(r, "batchNumber")); err != nil {
		h.fail(w, r, err, "unable to delete medicine")
		return
	}
	respondNoContent(w)
}
