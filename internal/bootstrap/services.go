package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/srec-coin/coin-backend/config"
	"github.com/srec-coin/coin-backend/internal/adapters/argon2id"
	"github.com/srec-coin/coin-backend/internal/adapters/jwtcodec"
	"github.com/srec-coin/coin-backend/internal/data"
	"github.com/srec-coin/coin-backend/internal/ports"
	"github.com/srec-coin/coin-backend/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth        *service.AuthService
	Hackathons  *service.HackathonService
	Blog        *service.BlogService
	Submissions *service.SubmissionService
	Metrics     *service.MetricsService
	Tokens      ports.TokenCodec
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	AdminRepo      *data.AdminRepo
	StudentRepo    *data.StudentRepo
	HackathonRepo  *data.HackathonRepo
	BlogRepo       *data.BlogRepo
	SubmissionRepo *data.SubmissionRepo
	MetricsRepo    *data.MetricsRepo
	CacheRepo      *data.RedisCacheRepo
}

func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		AdminRepo:      data.NewAdminRepo(db),
		StudentRepo:    data.NewStudentRepo(db),
		HackathonRepo:  data.NewHackathonRepo(db),
		BlogRepo:       data.NewBlogRepo(db),
		SubmissionRepo: data.NewSubmissionRepo(db),
		MetricsRepo:    data.NewMetricsRepo(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// NewServices wires adapters, repositories, and services.
func NewServices(deps *ServiceDeps) *ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)
	hasher := argon2id.New()
	codec := jwtcodec.New([]byte(deps.Config.Auth.JWTSecret))

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Admins:   repos.AdminRepo,
		Students: repos.StudentRepo,
		Hasher:   hasher,
		Tokens:   codec,
		Logger:   logger,
	})

	var cache service.MetricsCache
	if repos.CacheRepo != nil {
		cache = repos.CacheRepo
	}

	return &ServiceContainer{
		Auth: authSvc,
		Hackathons: service.NewHackathonService(service.HackathonServiceOptions{
			Repo:   repos.HackathonRepo,
			Logger: logger,
		}),
		Blog: service.NewBlogService(service.BlogServiceOptions{
			Repo:   repos.BlogRepo,
			Logger: logger,
		}),
		Submissions: service.NewSubmissionService(service.SubmissionServiceOptions{
			Repo:   repos.SubmissionRepo,
			Logger: logger,
		}),
		Metrics: service.NewMetricsService(service.MetricsServiceOptions{
			Repo:     repos.MetricsRepo,
			Cache:    cache,
			CacheTTL: deps.Config.Cache.MetricsTTL,
			Logger:   logger,
		}),
		Tokens: codec,
	}
}

// EnsureBootstrapAdmin creates the initial admin account when no admin exists
// for the configured email, so a fresh deployment is never locked out.
func EnsureBootstrapAdmin(ctx context.Context, deps *ServiceDeps, admins ports.AdminStore, hasher ports.PasswordHasher) error {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	authCfg := deps.Config.Auth

	_, err := admins.FindByEmail(ctx, authCfg.BootstrapAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, data.ErrAdminNotFound) {
		return fmt.Errorf("bootstrap admin lookup: %w", err)
	}

	hash, err := hasher.Hash(authCfg.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin password hash: %w", err)
	}

	admin, err := admins.Create(ctx, authCfg.BootstrapAdminName, authCfg.BootstrapAdminEmail, hash)
	if err != nil {
		// A concurrent instance may have won the race; that is fine.
		if errors.Is(err, data.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("bootstrap admin create: %w", err)
	}

	logger.InfoContext(ctx, "bootstrap admin created",
		"admin_id", admin.ID,
		"email", authCfg.BootstrapAdminEmail)
	return nil
}
