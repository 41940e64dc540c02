package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryPageRepo(t *testing.T) {
	runPageRepoContract(t, func(*testing.T) PageRepo { return NewMemoryPageRepo() })
}

func TestMemoryStatusRepo(t *testing.T) {
	runStatusRepoContract(t, NewMemoryStatusRepo())
}

func TestMemoryPageRepo_IsolatesCallers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPageRepo()

	p := newPage("p1")
	p.Components = append(p.Components, textComponent("c1", "original"))
	require.NoError(t, repo.Create(ctx, p))

	p.Components[0].Content["text"] = "mutated after create"
	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "original", got.Components[0].Content["text"])

	got.Title = "mutated after read"
	again, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Launch", again.Title)
}

func TestMemoryPageRepo_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPageRepo()

	require.NoError(t, repo.Create(ctx, newPage("p1")))
	require.True(t, errors.Is(repo.Create(ctx, newPage("p1")), ErrDuplicatePage))
}

func TestMemoryPageRepo_FailedMutationLeavesPage(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPageRepo()
	require.NoError(t, repo.Create(ctx, newPage("p1")))

	_, err := repo.RemoveComponent(ctx, "p1", "missing", t0.AddDate(1, 0, 0))
	require.Error(t, err)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.True(t, got.UpdatedAt.Equal(t0))
}
