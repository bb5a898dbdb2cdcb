package httpx

import (
	"net/http"

	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
	"github.com/srec-coin/coin-backend/internal/ports"
	"github.com/srec-coin/coin-backend/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        *service.AuthService
	Hackathons  *service.HackathonService
	Blog        *service.BlogService
	Submissions *service.SubmissionService
	Metrics     *service.MetricsService
	Tokens      ports.TokenCodec
}

// access is the authorization class of a route.
type access int

const (
	// accessPublic routes skip the authentication gate entirely.
	accessPublic access = iota
	// accessStudent routes require a verified token with the student role.
	accessStudent
	// accessAdmin routes require a verified token with the admin role.
	accessAdmin
)

// route binds one mux pattern to a handler and its authorization class.
type route struct {
	pattern string
	access  access
	handler http.HandlerFunc
}

// NewRouter builds the portal router. Every route is declared in one static
// table so the authorization class of each endpoint is auditable at a glance;
// handlers never inspect paths to decide whether auth applies.
func NewRouter(services RouterServices) http.Handler {
	authHandlers := &AuthHandlers{Svc: services.Auth}
	publicHandlers := &PublicHandlers{
		Hackathons:  services.Hackathons,
		Blog:        services.Blog,
		Submissions: services.Submissions,
	}
	adminHandlers := &AdminHandlers{
		Hackathons:  services.Hackathons,
		Blog:        services.Blog,
		Submissions: services.Submissions,
		Metrics:     services.Metrics,
	}

	routes := []route{
		{"GET /api/health", accessPublic, publicHandlers.Health},

		{"POST /api/admin/login", accessPublic, authHandlers.AdminLogin},
		{"POST /api/student/register", accessPublic, authHandlers.StudentRegister},
		{"POST /api/student/login", accessPublic, authHandlers.StudentLogin},

		{"GET /api/hackathons", accessPublic, publicHandlers.ListHackathons},
		{"GET /api/hackathons/{id}", accessPublic, publicHandlers.GetHackathon},
		{"GET /api/blog", accessPublic, publicHandlers.ListBlogPosts},
		{"GET /api/blog/{slug}", accessPublic, publicHandlers.GetBlogPost},
		{"POST /api/submit", accessPublic, publicHandlers.SubmitParticipation},

		{"GET /api/student/profile", accessStudent, authHandlers.StudentProfile},
		{"PUT /api/student/profile", accessStudent, authHandlers.UpdateStudentProfile},

		{"POST /api/admin/hackathons", accessAdmin, adminHandlers.CreateHackathon},
		{"GET /api/admin/hackathons", accessAdmin, adminHandlers.ListHackathons},
		{"PUT /api/admin/hackathons/{id}", accessAdmin, adminHandlers.UpdateHackathon},
		{"PATCH /api/admin/hackathons/{id}/status", accessAdmin, adminHandlers.UpdateHackathonStatus},
		{"DELETE /api/admin/hackathons/{id}", accessAdmin, adminHandlers.DeleteHackathon},

		{"GET /api/admin/submissions", accessAdmin, adminHandlers.ListSubmissions},
		{"GET /api/admin/submissions/{id}", accessAdmin, adminHandlers.GetSubmission},
		{"PATCH /api/admin/submissions/{id}/status", accessAdmin, adminHandlers.UpdateSubmissionStatus},
		{"DELETE /api/admin/submissions/{id}", accessAdmin, adminHandlers.DeleteSubmission},

		{"POST /api/admin/blog", accessAdmin, adminHandlers.CreateBlogPost},
		{"GET /api/admin/blog", accessAdmin, adminHandlers.ListAllBlogPosts},
		{"PUT /api/admin/blog/{id}", accessAdmin, adminHandlers.UpdateBlogPost},
		{"DELETE /api/admin/blog/{id}", accessAdmin, adminHandlers.DeleteBlogPost},

		{"GET /api/admin/metrics", accessAdmin, adminHandlers.DashboardMetrics},
	}

	gate := RequireAuth(services.Tokens)
	studentGuard := RequireRole(domainauth.RoleStudent)
	adminGuard := RequireRole(domainauth.RoleAdmin)

	mux := http.NewServeMux()
	for _, rt := range routes {
		var h http.Handler = rt.handler
		switch rt.access {
		case accessStudent:
			h = gate(studentGuard(h))
		case accessAdmin:
			h = gate(adminGuard(h))
		case accessPublic:
		}
		mux.Handle(rt.pattern, h)
	}

	return mux
}
