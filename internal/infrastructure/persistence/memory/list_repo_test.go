package memory_test

import (
	"context"
	"testing"

	"github.com/bnema/sinkhole/internal/domain/lists"
	"github.com/bnema/sinkhole/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryListRepository_Contract(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewListRepository()

	require.NoError(t, repo.Add(ctx, lists.ListAllow, "test.com"))
	require.NoError(t, repo.Add(ctx, lists.ListAllow, "test.com"))

	domains, err := repo.GetAll(ctx, lists.ListAllow)
	require.NoError(t, err)
	assert.Equal(t, []string{"test.com"}, domains)

	found, err := repo.Contains(ctx, lists.ListAllow, "test.com")
	require.NoError(t, err)
	assert.True(t, found)

	// Other lists stay untouched.
	for _, list := range []lists.List{lists.ListDeny, lists.ListRegex} {
		found, err = repo.Contains(ctx, list, "test.com")
		require.NoError(t, err)
		assert.False(t, found)
	}

	require.NoError(t, repo.Remove(ctx, lists.ListAllow, "test.com"))
	require.NoError(t, repo.Remove(ctx, lists.ListAllow, "test.com"))

	found, err = repo.Contains(ctx, lists.ListAllow, "test.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryListRepository_DeterministicOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewListRepository()

	seeded := []string{"c.example", "a.example", "b.example"}
	for _, domain := range seeded {
		require.NoError(t, repo.Add(ctx, lists.ListDeny, domain))
	}

	domains, err := repo.GetAll(ctx, lists.ListDeny)
	require.NoError(t, err)
	assert.Equal(t, seeded, domains, "insertion order must be preserved")
}

func TestMemoryListRepository_UnknownList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewListRepository()

	_, err := repo.GetAll(ctx, lists.List("bogus"))
	require.ErrorIs(t, err, lists.ErrUnknownList)
}
