package filedrive

import (
	"bytes"
	"context"
	"io"
	iofs "io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryDrive is an in-memory Drive implementation. It keeps the
// whole contract — including the error taxonomy — without touching a
// filesystem, which makes it a drop-in test double and a reference
// for what backend transparency asks of a remote peer.
//
// The keyspace is flat: paths are plain map keys, so there are no
// parent directories to create and Put never needs recovery. List
// derives "directory" membership from key prefixes.
//
// Thread-safe for concurrent use.
type MemoryDrive struct {
	mu    sync.RWMutex
	files map[string]memoryFile
}

type memoryFile struct {
	data    []byte
	modTime time.Time
}

var _ Drive = (*MemoryDrive)(nil)

// NewMemoryDrive creates an empty in-memory drive.
func NewMemoryDrive() *MemoryDrive {
	return &MemoryDrive{
		files: make(map[string]memoryFile),
	}
}

// key normalizes a relative path to its map key and rejects paths
// that would escape a root, keeping resolution symmetric with
// LocalDrive.
func (d *MemoryDrive) key(rel string) (string, error) {
	k := path.Clean(strings.ReplaceAll(rel, "\\", "/"))
	if k == ".." || strings.HasPrefix(k, "../") {
		return "", &PathError{Path: rel, Reason: "escapes drive root"}
	}
	return strings.TrimPrefix(k, "./"), nil
}

// Exists reports whether a file is stored at path.
func (d *MemoryDrive) Exists(_ context.Context, path string) (bool, error) {
	k, err := d.key(path)
	if err != nil {
		return false, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.files[k]
	return ok, nil
}

// Get returns a copy of the content stored at path.
func (d *MemoryDrive) Get(_ context.Context, path string) ([]byte, error) {
	k, err := d.key(path)
	if err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	f, ok := d.files[k]
	if !ok {
		return nil, &NotFoundError{Path: path, cause: iofs.ErrNotExist}
	}

	// Copy to prevent external mutation.
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

// GetStream opens the content stored at path for reading.
func (d *MemoryDrive) GetStream(ctx context.Context, path string) (io.ReadCloser, error) {
	data, err := d.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Put stores a copy of content at path.
func (d *MemoryDrive) Put(_ context.Context, path string, content []byte) error {
	k, err := d.key(path)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.store(k, content)
	return nil
}

// Prepend writes content ahead of the existing content at path, or
// behaves exactly like Put when nothing exists there yet.
func (d *MemoryDrive) Prepend(_ context.Context, path string, content []byte) error {
	k, err := d.key(path)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	existing := d.files[k].data
	merged := make([]byte, 0, len(content)+len(existing))
	merged = append(merged, content...)
	merged = append(merged, existing...)
	d.store(k, merged)
	return nil
}

// Append appends content to the file at path, creating it if absent.
func (d *MemoryDrive) Append(_ context.Context, path string, content []byte) error {
	k, err := d.key(path)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	existing := d.files[k].data
	merged := make([]byte, 0, len(existing)+len(content))
	merged = append(merged, existing...)
	merged = append(merged, content...)
	d.store(k, merged)
	return nil
}

// Delete removes the file at path. A missing file fails with the raw
// not-exist condition, not the domain NotFoundError, matching the
// contract's deliberate asymmetry.
func (d *MemoryDrive) Delete(_ context.Context, path string) error {
	k, err := d.key(path)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.files[k]; !ok {
		return &iofs.PathError{Op: "remove", Path: path, Err: iofs.ErrNotExist}
	}
	delete(d.files, k)
	return nil
}

// Move renames the file at oldPath to newPath. A missing source fails
// with the raw not-exist condition.
func (d *MemoryDrive) Move(_ context.Context, oldPath, newPath string) error {
	from, err := d.key(oldPath)
	if err != nil {
		return err
	}
	to, err := d.key(newPath)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.files[from]
	if !ok {
		return &iofs.PathError{Op: "rename", Path: oldPath, Err: iofs.ErrNotExist}
	}
	delete(d.files, from)
	d.files[to] = memoryFile{data: f.data, modTime: time.Now()}
	return nil
}

// Copy copies the file at srcPath to dstPath; the copy is complete
// when the call returns. A missing source fails with the raw
// not-exist condition.
func (d *MemoryDrive) Copy(_ context.Context, srcPath, dstPath string) error {
	from, err := d.key(srcPath)
	if err != nil {
		return err
	}
	to, err := d.key(dstPath)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.files[from]
	if !ok {
		return &iofs.PathError{Op: "open", Path: srcPath, Err: iofs.ErrNotExist}
	}
	d.store(to, f.data)
	return nil
}

// Stat describes the file at path.
func (d *MemoryDrive) Stat(_ context.Context, path string) (FileInfo, error) {
	k, err := d.key(path)
	if err != nil {
		return FileInfo{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	f, ok := d.files[k]
	if !ok {
		return FileInfo{}, &NotFoundError{Path: path, cause: iofs.ErrNotExist}
	}
	return FileInfo{
		Path:    path,
		Size:    int64(len(f.data)),
		ModTime: f.modTime,
	}, nil
}

// List returns the names of the entries directly under dir, derived
// from key prefixes: files as their base name, sub-"directories" as a
// single name each. Results are sorted.
func (d *MemoryDrive) List(_ context.Context, dir string) ([]string, error) {
	k, err := d.key(dir)
	if err != nil {
		return nil, err
	}

	prefix := ""
	if k != "" && k != "." {
		prefix = k + "/"
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]struct{})
	for name := range d.files {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rest := strings.TrimPrefix(name, prefix)
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[:i]
		}
		seen[rest] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// store must be called with the write lock held.
func (d *MemoryDrive) store(k string, content []byte) {
	data := make([]byte, len(content))
	copy(data, content)
	d.files[k] = memoryFile{data: data, modTime: time.Now()}
}
