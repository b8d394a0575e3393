package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// testStore exercises the Store contract against any implementation.
func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("open missing", func(t *testing.T) {
		_, err := store.Open(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put open read", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a", []byte("hello world")))

		blob, err := store.Open(ctx, "a")
		require.NoError(t, err)
		defer blob.Close()

		require.Equal(t, int64(11), blob.Size())

		buf := make([]byte, 5)
		n, err := blob.ReadAt(buf, 6)
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, "world", string(buf))
	})

	t.Run("create streams and publishes on close", func(t *testing.T) {
		w, err := store.Create(ctx, "b")
		require.NoError(t, err)

		_, err = w.Write([]byte("part1"))
		require.NoError(t, err)
		_, err = w.Write([]byte("part2"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		blob, err := store.Open(ctx, "b")
		require.NoError(t, err)
		defer blob.Close()

		data := make([]byte, blob.Size())
		_, err = blob.ReadAt(data, 0)
		require.NoError(t, err)
		require.Equal(t, "part1part2", string(data))
	})

	t.Run("read past end", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "c", []byte("xy")))

		blob, err := store.Open(ctx, "c")
		require.NoError(t, err)
		defer blob.Close()

		buf := make([]byte, 4)
		n, err := blob.ReadAt(buf, 0)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 2, n)
	})

	t.Run("list with prefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snap-1", []byte("1")))
		require.NoError(t, store.Put(ctx, "snap-2", []byte("2")))

		names, err := store.List(ctx, "snap-")
		require.NoError(t, err)
		require.Equal(t, []string{"snap-1", "snap-2"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "d", []byte("1")))
		require.NoError(t, store.Delete(ctx, "d"))
		require.NoError(t, store.Delete(ctx, "d")) // absent, no error

		_, err := store.Open(ctx, "d")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	testStore(t, store)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}
