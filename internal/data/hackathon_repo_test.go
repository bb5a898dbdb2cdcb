package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srec-coin/coin-backend/internal/domain/model"
	"github.com/srec-coin/coin-backend/internal/testutil"
)

func TestHackathonRepo_ListPage(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		for i := 0; i < 3; i++ {
			createTestHackathon(t, db, fmt.Sprintf("Fest %d", i), model.HackathonStatusUpcoming)
		}
		repo := NewHackathonRepo(db)

		pageOne, total, err := repo.ListPage(ctx, model.PageQuery{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, pageOne, 2)

		pageTwo, total, err := repo.ListPage(ctx, model.PageQuery{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, pageTwo, 1)

		// The window never overlaps.
		for _, h := range pageOne {
			assert.NotEqual(t, pageTwo[0].ID, h.ID)
		}

		beyond, total, err := repo.ListPage(ctx, model.PageQuery{Page: 5, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Empty(t, beyond)
	})
}
