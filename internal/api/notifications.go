package api

import (
	"net/http"

	"pharmacy/m/domain"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.Notifications.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "unable to list notifications")
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (h *Handler) getNotification(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.Notifications.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "unable to load notification")
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	var n domain.Notification
	if err := decodeBody(r, &n); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Notifications.Create(r.Context(), &n); err != nil {
		h.fail(w, r, err, "unable to create notification")
		return
	}
	respondCreated(w, path("notifications", itoa(n.ID)), n)
}

func (h *Handler) updateNotification(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var n domain.Notification
	if err := decodeBody(r, &n); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if n.ID != id {
		respondError(w, http.StatusBadRequest, errKeyMismatch.Error())
		return
	}
	if err := h.svc.Notifications.Update(r.Context(), &n); err != nil {
		h.fail(w, r, err, "unable to update notification")
		return
	}
	respondNoContent(w)
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Notifications.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, "unable to delete notification")
		return
	}
	respondNoContent(w)
}
