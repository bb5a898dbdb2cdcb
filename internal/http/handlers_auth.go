package httpx

import (
	"net/http"

	"github.com/srec-coin/coin-backend/internal/domain/model"
	"github.com/srec-coin/coin-backend/internal/service"
)

// AuthHandlers serves login, registration, and profile endpoints.
type AuthHandlers struct {
	Svc *service.AuthService
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.LoginAdmin(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// StudentLogin handles POST /api/student/login.
func (h *AuthHandlers) StudentLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.LoginStudent(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// StudentRegister handles POST /api/student/register.
func (h *AuthHandlers) StudentRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterStudentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.RegisterStudent(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, resp)
}

// StudentProfile handles GET /api/student/profile. The subject comes from the
// verified token, never from the URL.
func (h *AuthHandlers) StudentProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	profile, err := h.Svc.StudentProfile(r.Context(), claims.Subject)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// UpdateStudentProfile handles PUT /api/student/profile.
func (h *AuthHandlers) UpdateStudentProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	var req model.UpdateStudentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	profile, err := h.Svc.UpdateStudentProfile(r.Context(), claims.Subject, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}
