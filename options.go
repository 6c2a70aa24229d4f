package filedrive

import (
	"os"

	"github.com/hupe1980/filedrive/internal/fs"
)

type options struct {
	fs       fs.FileSystem
	logger   *Logger
	filePerm os.FileMode
	dirPerm  os.FileMode
}

func defaultOptions() options {
	return options{
		fs:       fs.Default,
		logger:   NewLogger(nil),
		filePerm: 0o644,
		dirPerm:  0o755,
	}
}

// Option configures drive construction.
type Option func(*options)

// WithLogger configures structured logging. The default logger
// discards everything; with a handler installed, directory-creation
// recoveries are reported at debug level.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NewLogger(nil)
		}
		o.logger = logger
	}
}

// WithFilePerm sets the mode for files created by Put, Append and
// Copy. Defaults to 0644.
func WithFilePerm(perm os.FileMode) Option {
	return func(o *options) {
		o.filePerm = perm
	}
}

// WithDirPerm sets the mode for parent directories created by the
// Put/Move recovery. Defaults to 0755.
func WithDirPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.dirPerm = perm
	}
}

// withFileSystem injects the filesystem seam. Tests use it to wire in
// fs.Faulty; there is no supported reason to swap it in production,
// which is why it stays unexported.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fs = fsys
	}
}
