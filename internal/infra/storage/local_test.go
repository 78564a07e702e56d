//go:build unit

package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ranch-booking/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save keeps the lowercased extension and returns a public path", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "uploads")
		store, err := storage.NewLocalStore(dir, "/uploads/")
		require.NoError(t, err)

		src, err := store.Save(ctx, "Sunset.JPG", strings.NewReader("jpeg bytes"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(src, "/uploads/"))
		assert.True(t, strings.HasSuffix(src, ".jpg"))
		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(src)))
		require.NoError(t, err)
		assert.Equal(t, "jpeg bytes", string(data))
	})

	t.Run("two saves of the same name do not collide", func(t *testing.T) {
		store, err := storage.NewLocalStore(t.TempDir(), "/uploads")
		require.NoError(t, err)

		a, err := store.Save(ctx, "a.png", strings.NewReader("1"))
		require.NoError(t, err)
		b, err := store.Save(ctx, "a.png", strings.NewReader("2"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("failed write leaves no file behind", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewLocalStore(dir, "/uploads")
		require.NoError(t, err)

		_, err = store.Save(ctx, "a.png", failingReader{})
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("remove deletes the file and tolerates missing ones", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewLocalStore(dir, "/uploads")
		require.NoError(t, err)

		src, err := store.Save(ctx, "a.webp", strings.NewReader("x"))
		require.NoError(t, err)

		require.NoError(t, store.Remove(ctx, src))
		_, err = os.Stat(filepath.Join(dir, filepath.Base(src)))
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, store.Remove(ctx, src))
	})

	t.Run("remove never escapes the upload directory", func(t *testing.T) {
		root := t.TempDir()
		dir := filepath.Join(root, "uploads")
		store, err := storage.NewLocalStore(dir, "/uploads")
		require.NoError(t, err)

		outside := filepath.Join(root, "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o600))

		require.NoError(t, store.Remove(ctx, "/uploads/../secret.txt"))
		_, err = os.Stat(outside)
		assert.NoError(t, err)

		assert.ErrorIs(t, store.Remove(ctx, "/uploads/.."), storage.ErrOutsideRoot)
	})
}
