package api

import (
	"errors"
	"net/http"

	"pharmacy/m/domain"
	"pharmacy/m/internal/service"
	"pharmacy/m/internal/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token    string          `json:"token"`
	Employee domain.Employee `json:"employee"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := h.svc.Employees.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, service.ErrInvalidRegistration), errors.Is(err, service.ErrInvalidRole):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, store.ErrDuplicate):
		respondError(w, http.StatusConflict, "email already exists")
		return
	case err != nil:
		h.fail(w, r, err, "unable to register employee")
		return
	}

	token, err := h.tokens.Issue(e.ID, e.Role)
	if err != nil {
		h.fail(w, r, err, "unable to generate token")
		return
	}
	respondJSON(w, http.StatusCreated, authResponse{Token: token, Employee: *e})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := h.svc.Employees.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.fail(w, r, err, "unable to log in")
		return
	}

	token, err := h.tokens.Issue(e.ID, e.Role)
	if err != nil {
		h.fail(w, r, err, "unable to generate token")
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, Employee: *e})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		NewPassword string `json:"new_password"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "new_password is required")
		return
	}
	id, _ := r.Context().Value(ctxEmployeeID).(int64)
	if err := h.svc.Employees.ResetPassword(r.Context(), id, payload.NewPassword); err != nil {
		h.fail(w, r, err, "unable to update password")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
