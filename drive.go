package filedrive

import (
	"context"
	"io"
	"time"
)

// FileInfo describes a stored file. Path is the caller-supplied
// relative path, not the backend-resolved one.
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Drive is the storage backend contract. All implementations honor
// the same error taxonomy so callers can switch backends without
// changing their failure handling (see the package documentation).
//
// Implementations must be safe for concurrent use; none of the
// built-in drives holds mutable state across operations beyond what
// the backend itself stores.
type Drive interface {
	// Exists reports whether an entry is reachable at path. Absence is
	// a false result, never an error; any other failure is returned
	// unchanged.
	Exists(ctx context.Context, path string) (bool, error)

	// Get returns the full content of the file at path. Absence fails
	// with a NotFoundError carrying path.
	Get(ctx context.Context, path string) ([]byte, error)

	// GetStream opens the file at path for reading. The caller owns
	// the returned reader and must close it. Absence normalizes like
	// Get.
	GetStream(ctx context.Context, path string) (io.ReadCloser, error)

	// Put writes content to path, creating or truncating as needed.
	Put(ctx context.Context, path string, content []byte) error

	// Prepend writes content ahead of the existing content at path,
	// or behaves exactly like Put when nothing exists there yet.
	Prepend(ctx context.Context, path string, content []byte) error

	// Append appends content to the file at path, creating it if
	// absent.
	Append(ctx context.Context, path string, content []byte) error

	// Delete removes the file at path. Failures, including absence,
	// propagate unchanged.
	Delete(ctx context.Context, path string) error

	// Move renames the file at oldPath to newPath.
	Move(ctx context.Context, oldPath, newPath string) error

	// Copy copies the file at srcPath to dstPath and returns only
	// after the transfer has fully completed.
	Copy(ctx context.Context, srcPath, dstPath string) error

	// Stat describes the entry at path. Absence normalizes like Get.
	Stat(ctx context.Context, path string) (FileInfo, error)

	// List returns the names of the entries directly under dir.
	List(ctx context.Context, dir string) ([]string, error)
}
