package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srec-coin/coin-backend/internal/domain/model"
)

type stubMetricsSource struct {
	metrics model.Metrics
	err     error
	calls   int
}

func (s *stubMetricsSource) Aggregate(_ context.Context, _ string) (*model.Metrics, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	m := s.metrics
	return &m, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func TestMetricsDashboard_CachesAggregates(t *testing.T) {
	source := &stubMetricsSource{metrics: model.Metrics{
		TotalHackathons:  4,
		TotalSubmissions: 12,
		TotalStudents:    40,
		TotalMentors:     6,
	}}
	cache := newMemoryCache()
	svc := NewMetricsService(MetricsServiceOptions{Repo: source, Cache: cache})

	first, err := svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), first.TotalHackathons)

	second, err := svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls, "second read should come from cache")
}

func TestMetricsDashboard_SemesterKeysAreIndependent(t *testing.T) {
	source := &stubMetricsSource{metrics: model.Metrics{TotalHackathons: 1}}
	cache := newMemoryCache()
	svc := NewMetricsService(MetricsServiceOptions{Repo: source, Cache: cache})

	_, err := svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	_, err = svc.Dashboard(context.Background(), "2026-even")
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Contains(t, cache.entries, "metrics:all")
	assert.Contains(t, cache.entries, "metrics:2026-even")
}

func TestMetricsDashboard_DegradesWhenCacheFails(t *testing.T) {
	source := &stubMetricsSource{metrics: model.Metrics{TotalStudents: 7}}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	svc := NewMetricsService(MetricsServiceOptions{Repo: source, Cache: cache})

	m, err := svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.TotalStudents)
}

func TestMetricsDashboard_CorruptCacheEntryRecomputes(t *testing.T) {
	source := &stubMetricsSource{metrics: model.Metrics{TotalMentors: 3}}
	cache := newMemoryCache()
	cache.entries["metrics:all"] = []byte("{not json")
	svc := NewMetricsService(MetricsServiceOptions{Repo: source, Cache: cache})

	m, err := svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), m.TotalMentors)
	assert.Equal(t, 1, source.calls)

	// The bad entry is replaced with a decodable one.
	var repaired model.Metrics
	require.NoError(t, json.Unmarshal(cache.entries["metrics:all"], &repaired))
	assert.Equal(t, int64(3), repaired.TotalMentors)
}

func TestMetricsDashboard_NoCacheConfigured(t *testing.T) {
	source := &stubMetricsSource{metrics: model.Metrics{TotalSubmissions: 2}}
	svc := NewMetricsService(MetricsServiceOptions{Repo: source})

	m, err := svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.TotalSubmissions)

	_, err = svc.Dashboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}
