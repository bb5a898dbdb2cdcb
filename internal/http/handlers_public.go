package httpx

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/srec-coin/coin-backend/internal/domain/model"
	"github.com/srec-coin/coin-backend/internal/service"
)

// PublicHandlers serves the unauthenticated portal surface: health, hackathon
// listings, the published blog, and team participation submissions.
type PublicHandlers struct {
	Hackathons  *service.HackathonService
	Blog        *service.BlogService
	Submissions *service.SubmissionService
}

// Health handles GET /api/health.
func (h *PublicHandlers) Health(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pageQuery reads ?page= and ?limit= from a listing request. Unparseable or
// absent values fall back to the defaults in PageQuery.Normalize.
func pageQuery(values url.Values) model.PageQuery {
	page, _ := strconv.Atoi(values.Get("page"))
	limit, _ := strconv.Atoi(values.Get("limit"))
	return model.PageQuery{Page: page, Limit: limit}
}

// ListHackathons handles GET /api/hackathons with ?page= and ?limit=.
func (h *PublicHandlers) ListHackathons(w http.ResponseWriter, r *http.Request) {
	out, err := h.Hackathons.ListPublic(r.Context(), pageQuery(r.URL.Query()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetHackathon handles GET /api/hackathons/{id}.
func (h *PublicHandlers) GetHackathon(w http.ResponseWriter, r *http.Request) {
	out, err := h.Hackathons.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListBlogPosts handles GET /api/blog with ?page= and ?limit=. Only
// published posts appear here.
func (h *PublicHandlers) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	out, err := h.Blog.ListPublished(r.Context(), pageQuery(r.URL.Query()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetBlogPost handles GET /api/blog/{slug}.
func (h *PublicHandlers) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	out, err := h.Blog.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// SubmitParticipation handles POST /api/submit. Open to the public so
// teams can report participation without a portal account.
func (h *PublicHandlers) SubmitParticipation(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitParticipationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Submissions.Submit(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, out)
}
