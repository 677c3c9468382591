package vocabulary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlexi/hanlexi/internal/testutil"
)

func newTestRepository(t *testing.T) *DBRepository {
	t.Helper()
	return NewDBRepository(testutil.OpenTestDatabase(t))
}

func TestDBRepository_MarkAndCheck(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	known, err := repo.IsKnown(ctx, "hello")
	require.NoError(t, err)
	assert.False(t, known)

	require.NoError(t, repo.MarkKnown(ctx, "hello"))

	known, err = repo.IsKnown(ctx, "hello")
	require.NoError(t, err)
	assert.True(t, known)
}

func TestDBRepository_MarkIsCaseInsensitive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkKnown(ctx, "Hello"))

	known, err := repo.IsKnown(ctx, "hello")
	require.NoError(t, err)
	assert.True(t, known)
}

func TestDBRepository_MarkTwiceIsNoop(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkKnown(ctx, "hello"))
	require.NoError(t, repo.MarkKnown(ctx, "hello"))

	words, err := repo.ListKnown(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, words)
}

func TestDBRepository_MarkUnknown(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkKnown(ctx, "hello"))
	require.NoError(t, repo.MarkKnown(ctx, "world"))
	require.NoError(t, repo.MarkUnknown(ctx, "hello"))

	words, err := repo.ListKnown(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"world"}, words)
}
