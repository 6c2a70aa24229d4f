// Package fs provides the filesystem seam the drive implementations
// are built on.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with read/write/sync capabilities
//   - [FileSystem]: the filesystem operations a drive needs
//
// # Implementations
//
//   - [Local]: production implementation using the standard os package
//   - [Faulty]: test utility for fault injection (make a chosen
//     operation on a chosen path fail with a chosen error)
//
// Production code uses fs.Default (which is [Local]); tests inject a
// [Faulty] to exercise the error-propagation policy.
//
// # Design Notes
//
// This package intentionally does NOT include context.Context
// parameters. Local filesystem operations are fast and
// non-interruptible at the syscall level; cancellation is the
// contract layer's concern, and the contract defines none.
//
// Mkdir is single-level on purpose: the directory-creation recovery
// in the drives is one mkdir, never mkdir -p, so the recursive
// variant is deliberately absent from the interface.
package fs
