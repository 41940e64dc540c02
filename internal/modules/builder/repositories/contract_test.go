package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newPage(id string) *models.Page {
	return &models.Page{
		ID:              id,
		Title:           "Launch",
		BackgroundColor: models.DefaultBackgroundColor,
		Theme:           models.DefaultTheme,
		Components:      []models.Component{},
		Settings:        map[string]any{},
		CreatedAt:       t0,
		UpdatedAt:       t0,
	}
}

func textComponent(id, text string) models.Component {
	return models.Component{
		ID:       id,
		Type:     models.ComponentText,
		Content:  map[string]any{"text": text},
		Position: models.Position{X: 10, Y: 20.5},
		Style:    map[string]any{"color": "#fff"},
	}
}

// runPageRepoContract exercises the behaviour every PageRepo driver shares
func runPageRepoContract(t *testing.T, newRepo func(t *testing.T) PageRepo) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newPage("p1")))

		got, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, "Launch", got.Title)
		require.Equal(t, models.ThemeDark, got.Theme)
		require.NotNil(t, got.Components)
		require.Empty(t, got.Components)
		require.True(t, got.CreatedAt.Equal(t0))

		_, err = repo.GetByID(ctx, "nope")
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		repo := newRepo(t)
		for _, id := range []string{"a", "b", "c"} {
			p := newPage(id)
			require.NoError(t, repo.Create(ctx, p))
		}
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "a", list[0].ID)
		require.Equal(t, "c", list[2].ID)
	})

	t.Run("update merges and never moves updated_at back", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newPage("p1")))

		title := "Renamed"
		theme := models.ThemeLight
		got, err := repo.Update(ctx, "p1", models.PageChanges{Title: &title, Theme: &theme, UpdatedAt: t0.Add(time.Minute)})
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Title)
		require.Equal(t, models.ThemeLight, got.Theme)
		require.Equal(t, models.DefaultBackgroundColor, got.BackgroundColor)
		require.True(t, got.UpdatedAt.Equal(t0.Add(time.Minute)))

		got, err = repo.Update(ctx, "p1", models.PageChanges{UpdatedAt: t0})
		require.NoError(t, err)
		require.True(t, got.UpdatedAt.Equal(t0.Add(time.Minute)))
		require.True(t, got.CreatedAt.Equal(t0))

		_, err = repo.Update(ctx, "nope", models.PageChanges{Title: &title, UpdatedAt: t0})
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("update replaces components and settings", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newPage("p1")))

		comps := []models.Component{textComponent("c1", "hi")}
		got, err := repo.Update(ctx, "p1", models.PageChanges{
			Components: &comps,
			Settings:   map[string]any{"seo": map[string]any{"index": true}},
			UpdatedAt:  t0,
		})
		require.NoError(t, err)
		require.Len(t, got.Components, 1)
		require.Equal(t, "hi", got.Components[0].Content["text"])
		require.Equal(t, map[string]any{"index": true}, got.Settings["seo"])
	})

	t.Run("component add remove round trip", func(t *testing.T) {
		repo := newRepo(t)
		p := newPage("p1")
		p.Components = []models.Component{textComponent("c0", "keep")}
		require.NoError(t, repo.Create(ctx, p))

		before, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)

		added, err := repo.AddComponent(ctx, "p1", textComponent("c1", "hello"), t0.Add(time.Second))
		require.NoError(t, err)
		require.Len(t, added.Components, 2)
		require.Equal(t, "c1", added.Components[1].ID)
		require.Equal(t, 20.5, added.Components[1].Position.Y)

		_, err = repo.AddComponent(ctx, "p1", textComponent("c1", "again"), t0)
		require.True(t, errors.Is(err, ErrDuplicateComponent))

		removed, err := repo.RemoveComponent(ctx, "p1", "c1", t0.Add(2*time.Second))
		require.NoError(t, err)
		require.Equal(t, before.Components, removed.Components)
		require.True(t, removed.UpdatedAt.Equal(t0.Add(2*time.Second)))

		_, err = repo.RemoveComponent(ctx, "p1", "c1", t0)
		require.True(t, errors.Is(err, ErrComponentNotFound))
	})

	t.Run("replace component", func(t *testing.T) {
		repo := newRepo(t)
		p := newPage("p1")
		p.Components = []models.Component{textComponent("c1", "old"), textComponent("c2", "other")}
		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.ReplaceComponent(ctx, "p1", textComponent("c1", "new"), t0.Add(time.Second))
		require.NoError(t, err)
		require.Equal(t, "new", got.Components[0].Content["text"])
		require.Equal(t, "other", got.Components[1].Content["text"])

		_, err = repo.ReplaceComponent(ctx, "p1", textComponent("zz", "x"), t0)
		require.True(t, errors.Is(err, ErrComponentNotFound))
	})

	t.Run("component ops on missing page", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.AddComponent(ctx, "nope", textComponent("c1", "x"), t0)
		require.True(t, errors.Is(err, ErrNotFound))
		_, err = repo.ReplaceComponent(ctx, "nope", textComponent("c1", "x"), t0)
		require.True(t, errors.Is(err, ErrNotFound))
		_, err = repo.RemoveComponent(ctx, "nope", "c1", t0)
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newPage("p1")))
		require.NoError(t, repo.Delete(ctx, "p1"))
		require.True(t, errors.Is(repo.Delete(ctx, "p1"), ErrNotFound))
		_, err := repo.GetByID(ctx, "p1")
		require.True(t, errors.Is(err, ErrNotFound))
	})
}

func runStatusRepoContract(t *testing.T, repo StatusRepo) {
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.StatusCheck{ID: "s1", ClientName: "probe", Timestamp: t0}))
	require.NoError(t, repo.Create(ctx, &models.StatusCheck{ID: "s2", ClientName: "probe-2", Timestamp: t0.Add(time.Second)}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "probe", list[0].ClientName)
	require.True(t, list[1].Timestamp.Equal(t0.Add(time.Second)))
}
