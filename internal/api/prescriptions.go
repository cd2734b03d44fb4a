package api

import (
	"net/http"

	"pharmacy/m/domain"
)

// listPrescriptions returns every prescription, or only those of one
// customer when ?ssn= is given.
func (h *Handler) listPrescriptions(w http.ResponseWriter, r *http.Request) {
	var (
		prescriptions []domain.Prescription
		err           error
	)
	if ssn := r.URL.Query().Get("ssn"); ssn != "" {
		prescriptions, err = h.svc.Prescriptions.ListByCustomer(r.Context(), ssn)
	} else {
		prescriptions, err = h.svc.Prescriptions.List(r.Context())
	}
	if err != nil {
		h.fail(w, r, err, "unable to list prescriptions")
		return
	}
	respondJSON(w, http.StatusOK, prescriptions)
}

func (h *Handler) getPrescription(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "prescriptionID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.svc.Prescriptions.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "unable to load prescription")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *Handler) createPrescription(w http.ResponseWriter, r *http.Request) {
	var p domain.Prescription
	if err := decodeBody(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Prescriptions.Create(r.Context(), &p); err != nil {
		h.fail(w, r, err, "unable to create prescription")
		return
	}
	respondCreated(w, path("prescriptions", itoa(p.PrescriptionID)), p)
}

func (h *Handler) updatePrescription(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "prescriptionID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var p domain.Prescription
	if err := decodeBody(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if p.PrescriptionID != id {
		respondError(w, http.StatusBadRequest, errKeyMismatch.Error())
		return
	}
	if err := h.svc.Prescriptions.Update(r.Context(), &p); err != nil {
		h.fail(w, r, err, "unable to update prescription")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deletePrescription(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "prescriptionID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Prescriptions.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, "unable to delete prescription")
		return
	}
	respondNoContent(w)
}
