package upload

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalProvider_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := NewLocalProvider(t.TempDir())
	require.NoError(t, err)

	size, err := p.Save(ctx, "clip.png", strings.NewReader("abcd"), "image/png")
	require.NoError(t, err)
	require.EqualValues(t, 4, size)

	// names are never reused
	_, err = p.Save(ctx, "clip.png", strings.NewReader("x"), "image/png")
	require.Error(t, err)

	f, err := p.Open(ctx, "clip.png")
	require.NoError(t, err)
	require.Equal(t, "image/png", f.ContentType)
	require.EqualValues(t, 4, f.Size)
	require.NoError(t, f.Body.Close())

	require.NoError(t, p.Delete(ctx, "clip.png"))
	require.True(t, errors.Is(p.Delete(ctx, "clip.png"), ErrNotFound))

	_, err = p.Open(ctx, "clip.png")
	require.True(t, errors.Is(err, ErrNotFound))
}
