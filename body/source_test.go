package body

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/indigo-web/solo/http/status"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	src := Map{"hello": []byte("<h1>Hi</h1>")}

	t.Run("present key", func(t *testing.T) {
		content, err := src.Get("hello")
		require.NoError(t, err)
		require.Equal(t, []byte("<h1>Hi</h1>"), content)
	})

	t.Run("absent key", func(t *testing.T) {
		_, err := src.Get("missing")
		require.ErrorIs(t, err, status.ErrNotFound)
	})
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.html"), []byte("<h1>Hi</h1>"), 0o644))

	src := NewDir(root)

	t.Run("present file", func(t *testing.T) {
		content, err := src.Get("hello.html")
		require.NoError(t, err)
		require.Equal(t, []byte("<h1>Hi</h1>"), content)
	})

	t.Run("absent file", func(t *testing.T) {
		_, err := src.Get("nope.html")
		require.ErrorIs(t, err, status.ErrNotFound)
	})

	t.Run("keys cannot escape the root", func(t *testing.T) {
		outside := filepath.Join(root, "..", "secret")
		require.NoError(t, os.WriteFile(outside, []byte("top secret"), 0o644))
		defer os.Remove(outside)

		_, err := src.Get("../secret")
		require.Error(t, err)
	})
}
