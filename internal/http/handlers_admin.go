package httpx

import (
	"net/http"

	"github.com/srec-coin/coin-backend/internal/domain/model"
	"github.com/srec-coin/coin-backend/internal/service"
)

// AdminHandlers serves the admin console: hackathon management, submission
// review, blog management, and dashboard metrics.
type AdminHandlers struct {
	Hackathons  *service.HackathonService
	Blog        *service.BlogService
	Submissions *service.SubmissionService
	Metrics     *service.MetricsService
}

// CreateHackathon handles POST /api/admin/hackathons.
func (h *AdminHandlers) CreateHackathon(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	var req model.CreateHackathonRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Hackathons.Create(r.Context(), &req, claims.Subject)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, out)
}

// ListHackathons handles GET /api/admin/hackathons.
func (h *AdminHandlers) ListHackathons(w http.ResponseWriter, r *http.Request) {
	out, err := h.Hackathons.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if out == nil {
		out = []model.Hackathon{}
	}
	WriteJSON(w, http.StatusOK, out)
}

// UpdateHackathon handles PUT /api/admin/hackathons/{id}.
func (h *AdminHandlers) UpdateHackathon(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateHackathonRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Hackathons.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// UpdateHackathonStatus handles PATCH /api/admin/hackathons/{id}/status.
func (h *AdminHandlers) UpdateHackathonStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Hackathons.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// DeleteHackathon handles DELETE /api/admin/hackathons/{id}.
func (h *AdminHandlers) DeleteHackathon(w http.ResponseWriter, r *http.Request) {
	if err := h.Hackathons.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSubmissions handles GET /api/admin/submissions with optional
// hackathon_id and status query filters.
func (h *AdminHandlers) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.Submissions.List(r.Context(), q.Get("hackathon_id"), q.Get("status"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if out == nil {
		out = []model.Submission{}
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetSubmission handles GET /api/admin/submissions/{id}.
func (h *AdminHandlers) GetSubmission(w http.ResponseWriter, r *http.Request) {
	out, err := h.Submissions.GetDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// UpdateSubmissionStatus handles PATCH /api/admin/submissions/{id}/status.
func (h *AdminHandlers) UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Submissions.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// DeleteSubmission handles DELETE /api/admin/submissions/{id}.
func (h *AdminHandlers) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := h.Submissions.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateBlogPost handles POST /api/admin/blog.
func (h *AdminHandlers) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBlogPostRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Blog.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, out)
}

// ListAllBlogPosts handles GET /api/admin/blog, including drafts.
func (h *AdminHandlers) ListAllBlogPosts(w http.ResponseWriter, r *http.Request) {
	out, err := h.Blog.ListAll(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if out == nil {
		out = []model.BlogPost{}
	}
	WriteJSON(w, http.StatusOK, out)
}

// UpdateBlogPost handles PUT /api/admin/blog/{id}.
func (h *AdminHandlers) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBlogPostRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Blog.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// DeleteBlogPost handles DELETE /api/admin/blog/{id}.
func (h *AdminHandlers) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	if err := h.Blog.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DashboardMetrics handles GET /api/admin/metrics with an optional semester
// query filter.
func (h *AdminHandlers) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	out, err := h.Metrics.Dashboard(r.Context(), r.URL.Query().Get("semester"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}
