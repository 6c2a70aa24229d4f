package filedrive

import (
	"context"
	"io"
	iofs "io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The taxonomy is the shared contract: every Drive implementation
// must expose the same observable behavior for the semantics both
// backends can express.
func TestDriveContract(t *testing.T) {
	drives := map[string]func(t *testing.T) Drive{
		"local": func(t *testing.T) Drive {
			return NewLocalDrive(t.TempDir())
		},
		"memory": func(t *testing.T) Drive {
			return NewMemoryDrive()
		},
	}

	for name, newDrive := range drives {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("round trip", func(t *testing.T) {
				drive := newDrive(t)
				content := []byte("payload")

				require.NoError(t, drive.Put(ctx, "file.txt", content))

				got, err := drive.Get(ctx, "file.txt")
				require.NoError(t, err)
				assert.Equal(t, content, got)

				ok, err := drive.Exists(ctx, "file.txt")
				require.NoError(t, err)
				assert.True(t, ok)
			})

			t.Run("exists never errors on absence", func(t *testing.T) {
				drive := newDrive(t)

				ok, err := drive.Exists(ctx, "nope.txt")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("get normalizes absence", func(t *testing.T) {
				drive := newDrive(t)

				_, err := drive.Get(ctx, "ghost.txt")
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotFound)

				var nfe *NotFoundError
				require.ErrorAs(t, err, &nfe)
				assert.Equal(t, "ghost.txt", nfe.Path)
			})

			t.Run("get stream", func(t *testing.T) {
				drive := newDrive(t)
				require.NoError(t, drive.Put(ctx, "s.txt", []byte("streamed")))

				r, err := drive.GetStream(ctx, "s.txt")
				require.NoError(t, err)
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				require.NoError(t, r.Close())
				assert.Equal(t, "streamed", string(data))
			})

			t.Run("prepend then append", func(t *testing.T) {
				drive := newDrive(t)

				require.NoError(t, drive.Put(ctx, "log.txt", []byte("body")))
				require.NoError(t, drive.Prepend(ctx, "log.txt", []byte("head ")))
				require.NoError(t, drive.Append(ctx, "log.txt", []byte(" tail")))

				got, err := drive.Get(ctx, "log.txt")
				require.NoError(t, err)
				assert.Equal(t, "head body tail", string(got))
			})

			t.Run("prepend to absent file behaves like put", func(t *testing.T) {
				drive := newDrive(t)

				require.NoError(t, drive.Prepend(ctx, "fresh.txt", []byte("only")))

				got, err := drive.Get(ctx, "fresh.txt")
				require.NoError(t, err)
				assert.Equal(t, "only", string(got))
			})

			t.Run("delete does not normalize absence", func(t *testing.T) {
				drive := newDrive(t)

				err := drive.Delete(ctx, "ghost.txt")
				require.Error(t, err)
				assert.ErrorIs(t, err, iofs.ErrNotExist)
				assert.NotErrorIs(t, err, ErrNotFound)
			})

			t.Run("move", func(t *testing.T) {
				drive := newDrive(t)
				content := []byte("movable")

				require.NoError(t, drive.Put(ctx, "old.txt", content))
				require.NoError(t, drive.Move(ctx, "old.txt", "new.txt"))

				ok, err := drive.Exists(ctx, "old.txt")
				require.NoError(t, err)
				assert.False(t, ok)

				got, err := drive.Get(ctx, "new.txt")
				require.NoError(t, err)
				assert.Equal(t, content, got)
			})

			t.Run("copy is complete on return", func(t *testing.T) {
				drive := newDrive(t)
				content := []byte("copied bytes")

				require.NoError(t, drive.Put(ctx, "src.bin", content))
				require.NoError(t, drive.Copy(ctx, "src.bin", "dst.bin"))

				got, err := drive.Get(ctx, "dst.bin")
				require.NoError(t, err)
				assert.Equal(t, content, got)

				got, err = drive.Get(ctx, "src.bin")
				require.NoError(t, err)
				assert.Equal(t, content, got)
			})

			t.Run("stat normalizes absence", func(t *testing.T) {
				drive := newDrive(t)

				require.NoError(t, drive.Put(ctx, "info.txt", []byte("12345")))

				info, err := drive.Stat(ctx, "info.txt")
				require.NoError(t, err)
				assert.Equal(t, "info.txt", info.Path)
				assert.Equal(t, int64(5), info.Size)

				_, err = drive.Stat(ctx, "ghost.txt")
				assert.ErrorIs(t, err, ErrNotFound)
			})

			t.Run("escaping paths are rejected", func(t *testing.T) {
				drive := newDrive(t)

				err := drive.Put(ctx, "../escape.txt", []byte("x"))
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPath)
			})
		})
	}
}
