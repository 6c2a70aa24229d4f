package filedrive

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/filedrive/internal/fs"
)

// LocalDrive is a Drive backed by a rooted directory on the local
// filesystem. Every operation resolves its relative path against the
// root, which is fixed at construction. The drive holds no other
// state, so a single instance is safe for concurrent use; concurrent
// writers to the same path race with whatever atomicity the
// filesystem provides, the drive adds no ordering of its own.
type LocalDrive struct {
	root     string
	fs       fs.FileSystem
	logger   *Logger
	filePerm os.FileMode
	dirPerm  os.FileMode
}

var _ Drive = (*LocalDrive)(nil)

// NewLocalDrive creates a LocalDrive rooted at the given directory.
// The root itself must exist; files and single missing parent
// directories are created on demand by Put and Move.
func NewLocalDrive(root string, optFns ...Option) *LocalDrive {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &LocalDrive{
		root:     filepath.Clean(root),
		fs:       o.fs,
		logger:   o.logger,
		filePerm: o.filePerm,
		dirPerm:  o.dirPerm,
	}
}

// Root returns the directory all relative paths resolve against.
func (d *LocalDrive) Root() string { return d.root }

// resolve joins rel onto the root and rejects results that escape it.
// No symlink resolution and no existence check happen here.
func (d *LocalDrive) resolve(rel string) (string, error) {
	p := filepath.Join(d.root, rel)
	if p != d.root && !strings.HasPrefix(p, d.root+string(filepath.Separator)) {
		return "", &PathError{Path: rel, Reason: "escapes drive root"}
	}
	return p, nil
}

// Exists reports whether a filesystem entry is reachable at path.
// Absence is a false result, not an error; any other failure
// (permission denied, I/O fault) is returned unchanged, never coerced
// to false.
func (d *LocalDrive) Exists(_ context.Context, path string) (bool, error) {
	p, err := d.resolve(path)
	if err != nil {
		return false, err
	}

	if _, err := d.fs.Stat(p); err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Get returns the full content of the file at path. Absence fails
// with a NotFoundError carrying the relative path; any other failure
// propagates unchanged. No partial reads are exposed.
func (d *LocalDrive) Get(_ context.Context, path string) ([]byte, error) {
	p, err := d.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := d.fs.OpenFile(p, os.O_RDONLY, 0)
	if err != nil {
		if notFound(err) {
			return nil, &NotFoundError{Path: path, cause: err}
		}
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// GetStream opens the file at path for reading. The caller owns the
// returned reader and must close it. Absence normalizes like Get.
func (d *LocalDrive) GetStream(_ context.Context, path string) (io.ReadCloser, error) {
	p, err := d.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := d.fs.OpenFile(p, os.O_RDONLY, 0)
	if err != nil {
		if notFound(err) {
			return nil, &NotFoundError{Path: path, cause: err}
		}
		return nil, err
	}
	return f, nil
}

// Put writes content to path, creating or truncating the file. A
// write that fails because the parent directory is missing creates
// that directory (one mkdir, not mkdir -p) and re-attempts exactly
// once; the re-attempt's own result is what the caller sees, so a Put
// that needed the mkdir still reports success. A chain of missing
// directories fails with the mkdir's error.
func (d *LocalDrive) Put(ctx context.Context, path string, content []byte) error {
	p, err := d.resolve(path)
	if err != nil {
		return err
	}

	err = d.write(p, content)
	if err == nil || !notFound(err) {
		return err
	}
	if err := d.mkparent(ctx, "put", p); err != nil {
		return err
	}
	return d.write(p, content)
}

// Prepend writes content ahead of the existing content at path, or
// behaves exactly like Put when nothing exists there yet. Failure
// modes are inherited from Exists, Get and Put.
func (d *LocalDrive) Prepend(ctx context.Context, path string, content []byte) error {
	ok, err := d.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !ok {
		return d.Put(ctx, path, content)
	}

	existing, err := d.Get(ctx, path)
	if err != nil {
		return err
	}

	merged := make([]byte, 0, len(content)+len(existing))
	merged = append(merged, content...)
	merged = append(merged, existing...)
	return d.Put(ctx, path, merged)
}

// Append appends content to the file at path, creating it if absent.
// Unlike Put and Move there is no directory recovery: a missing
// parent directory fails unchanged.
func (d *LocalDrive) Append(_ context.Context, path string, content []byte) error {
	p, err := d.resolve(path)
	if err != nil {
		return err
	}

	f, err := d.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, d.filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Delete removes the file at path. Every failure, including a missing
// file, propagates unchanged; absence is not normalized the way Get
// normalizes it.
func (d *LocalDrive) Delete(_ context.Context, path string) error {
	p, err := d.resolve(path)
	if err != nil {
		return err
	}
	return d.fs.Remove(p)
}

// Move renames the file at oldPath to newPath with the same recovery
// policy as Put: on a not-found failure the target's parent directory
// is created once and the rename re-attempted once, returning the
// re-attempt's own result. Rename reports not-found for a missing
// source and a missing target parent alike; recovery targets the
// parent, so a missing source still fails on the re-attempt.
func (d *LocalDrive) Move(ctx context.Context, oldPath, newPath string) error {
	from, err := d.resolve(oldPath)
	if err != nil {
		return err
	}
	to, err := d.resolve(newPath)
	if err != nil {
		return err
	}

	err = d.fs.Rename(from, to)
	if err == nil || !notFound(err) {
		return err
	}
	if err := d.mkparent(ctx, "move", to); err != nil {
		return err
	}
	return d.fs.Rename(from, to)
}

// Copy copies the file at srcPath to dstPath and returns only after
// the transfer has fully completed and the destination is synced; a
// nil result means the copy is observable and durable. Mid-stream
// failures surface as the operation's error. No directory recovery
// and no not-found normalization apply.
func (d *LocalDrive) Copy(_ context.Context, srcPath, dstPath string) error {
	from, err := d.resolve(srcPath)
	if err != nil {
		return err
	}
	to, err := d.resolve(dstPath)
	if err != nil {
		return err
	}

	src, err := d.fs.OpenFile(from, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := d.fs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, d.filePerm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Sync(); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// Stat describes the entry at path. Absence normalizes like Get.
func (d *LocalDrive) Stat(_ context.Context, path string) (FileInfo, error) {
	p, err := d.resolve(path)
	if err != nil {
		return FileInfo{}, err
	}

	st, err := d.fs.Stat(p)
	if err != nil {
		if notFound(err) {
			return FileInfo{}, &NotFoundError{Path: path, cause: err}
		}
		return FileInfo{}, err
	}

	return FileInfo{
		Path:    path,
		Size:    st.Size(),
		ModTime: st.ModTime(),
		IsDir:   st.IsDir(),
	}, nil
}

// List returns the names of the entries directly under dir. Errors,
// including a missing directory, propagate unchanged.
func (d *LocalDrive) List(_ context.Context, dir string) ([]string, error) {
	p, err := d.resolve(dir)
	if err != nil {
		return nil, err
	}

	entries, err := d.fs.ReadDir(p)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (d *LocalDrive) write(p string, content []byte) error {
	f, err := d.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, d.filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// mkparent creates the immediate parent of p. Single level: the
// recovery contract is one mkdir, never mkdir -p. A parent that
// already exists is not an error here (a concurrent recovery or a
// missing-source rename may land in this branch); the re-attempt
// decides the operation's fate.
func (d *LocalDrive) mkparent(ctx context.Context, op, p string) error {
	dir := filepath.Dir(p)
	if err := d.fs.Mkdir(dir, d.dirPerm); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return err
	}
	d.logger.LogRecovery(ctx, op, dir)
	return nil
}
