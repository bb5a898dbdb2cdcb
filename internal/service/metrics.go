package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/srec-coin/coin-backend/internal/domain/model"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

// MetricsCache is the subset of cache behavior the metrics service needs.
// Satisfied by data.RedisCacheRepo; nil means caching is disabled.
type MetricsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// MetricsSource computes aggregates. Satisfied by data.MetricsRepo.
type MetricsSource interface {
	Aggregate(ctx context.Context, semester string) (*model.Metrics, error)
}

// MetricsServiceOptions groups dependencies for MetricsService.
type MetricsServiceOptions struct {
	Repo     MetricsSource
	Cache    MetricsCache
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// MetricsService computes dashboard aggregates with an optional cache in
// front of the database. Cache failures degrade to a direct query.
type MetricsService struct {
	repo     MetricsSource
	cache    MetricsCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewMetricsService constructs a new MetricsService.
func NewMetricsService(opts MetricsServiceOptions) *MetricsService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MetricsService{
		repo:     opts.Repo,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// Dashboard returns portal-wide aggregates, scoped to a semester when one is
// given.
func (s *MetricsService) Dashboard(ctx context.Context, semester string) (*model.Metrics, error) {
	key := cacheKey(semester)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("metrics cache read failed", "error", err)
		} else if cached != nil {
			var m model.Metrics
			if err := json.Unmarshal(cached, &m); err == nil {
				return &m, nil
			}
			s.logger.Warn("metrics cache entry is corrupt, recomputing", "key", key)
		}
	}

	m, err := s.repo.Aggregate(ctx, semester)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "metrics aggregation failed")
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(m); err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.cacheTTL); err != nil {
				s.logger.Warn("metrics cache write failed", "error", err)
			}
		}
	}
	return m, nil
}

func cacheKey(semester string) string {
	if semester == "" {
		return "metrics:all"
	}
	return "metrics:" + semester
}
