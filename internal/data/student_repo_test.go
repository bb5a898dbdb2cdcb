package data

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srec-coin/coin-backend/internal/domain/model"
	"github.com/srec-coin/coin-backend/internal/testutil"
)

func registerReq(email string) *model.RegisterStudentRequest {
	return &model.RegisterStudentRequest{
		Name:     "Priya",
		Email:    email,
		Password: "ignored-here",
		Year:     2,
		Branch:   "CSE",
	}
}

func TestStudentRepo_CreateAndFind(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewStudentRepo(db)
		ctx := context.Background()

		created, err := repo.Create(ctx, registerReq("priya@srec.ac.in"), "digest-1")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "digest-1", created.PasswordHash)

		byEmail, err := repo.FindByEmail(ctx, "priya@srec.ac.in")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)

		byID, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "priya@srec.ac.in", byID.Email)
	})
}

func TestStudentRepo_DuplicateEmail(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewStudentRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, registerReq("dup@srec.ac.in"), "digest-1")
		require.NoError(t, err)

		_, err = repo.Create(ctx, registerReq("dup@srec.ac.in"), "digest-2")
		assert.True(t, errors.Is(err, ErrEmailTaken), "expected ErrEmailTaken, got %v", err)
	})
}

func TestStudentRepo_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewStudentRepo(db)
		ctx := context.Background()

		_, err := repo.FindByEmail(ctx, "ghost@srec.ac.in")
		assert.True(t, errors.Is(err, ErrStudentNotFound))

		_, err = repo.FindByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.True(t, errors.Is(err, ErrStudentNotFound))
	})
}

func TestStudentRepo_SkillsRoundTrip(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewStudentRepo(db)
		ctx := context.Background()

		created, err := repo.Create(ctx, registerReq("skills@srec.ac.in"), "digest-1")
		require.NoError(t, err)
		assert.Equal(t, []string{}, created.Skills)

		updated, err := repo.Update(ctx, created.ID, &model.UpdateStudentRequest{
			Skills: &[]string{"rust", "go"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"rust", "go"}, updated.Skills)

		// Reads return skills sorted.
		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "rust"}, found.Skills)

		// An update without skills leaves the stored set alone.
		kept, err := repo.Update(ctx, created.ID, &model.UpdateStudentRequest{
			Bio: testutil.StringPtr("Builds compilers"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "rust"}, kept.Skills)

		// An empty list clears it.
		cleared, err := repo.Update(ctx, created.ID, &model.UpdateStudentRequest{
			Skills: &[]string{},
		})
		require.NoError(t, err)
		assert.Empty(t, cleared.Skills)
	})
}

func TestStudentRepo_PartialUpdate(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewStudentRepo(db)
		ctx := context.Background()

		created, err := repo.Create(ctx, registerReq("arun@srec.ac.in"), "digest-1")
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, &model.UpdateStudentRequest{
			Bio: testutil.StringPtr("Builds robots"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Bio)
		assert.Equal(t, "Builds robots", *updated.Bio)
		// Fields absent from the request keep their stored values.
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Year, updated.Year)
		assert.Equal(t, created.Branch, updated.Branch)
	})
}
