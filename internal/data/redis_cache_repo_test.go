package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srec-coin/coin-backend/internal/testutil"
)

func TestRedisCacheRepo_RoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "metrics:all", []byte(`{"total_hackathons":3}`), time.Minute))

	got, err := repo.Get(ctx, "metrics:all")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_hackathons":3}`, string(got))
}

func TestRedisCacheRepo_MissingKeyIsNil(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)

	got, err := repo.Get(context.Background(), "metrics:absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "metrics:2026-even", []byte("{}"), time.Minute))

	removed, err := repo.Delete(ctx, "metrics:2026-even")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, "metrics:2026-even")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRedisCacheRepo_EmptyKeyRejected(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	assert.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))

	_, err := repo.Get(ctx, "")
	assert.Error(t, err)
}
