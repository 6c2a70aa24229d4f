// Package filedrive provides a pluggable file storage contract with a
// rooted local-filesystem driver.
//
// A Drive exposes a uniform operation set (Exists, Get, Put, Prepend,
// Append, Delete, Move, Copy, Stat, List) so callers can switch
// backends transparently. The contract's substance is the shared
// error taxonomy: absence is a domain condition (ErrNotFound) only
// where an operation declares it reportable, and every other failure
// reaches the caller unchanged.
//
// # Quick Start
//
//	ctx := context.Background()
//	drive := filedrive.NewLocalDrive("/var/lib/app/files")
//
//	if err := drive.Put(ctx, "reports/q3.csv", data); err != nil {
//	    log.Fatal(err)
//	}
//
//	content, err := drive.Get(ctx, "reports/q3.csv")
//	if errors.Is(err, filedrive.ErrNotFound) {
//	    // absent, backend-agnostic
//	}
//
// Named disks can be configured in YAML and resolved through a
// Manager:
//
//	cfg, _ := filedrive.LoadConfig("disks.yaml")
//	mgr, _ := filedrive.NewManager(cfg)
//	drive, _ := mgr.Disk("local")
//
// # Error Policy
//
// Every operation either fully succeeds or reports exactly one error;
// nothing is logged-and-swallowed. Which failures are normalized is
// deliberate and uneven across operations:
//
//   - Exists coerces absence to false and returns everything else.
//   - Get, GetStream and Stat normalize absence to a NotFoundError
//     carrying the caller-supplied relative path.
//   - Put and Move recover from a missing parent directory with a
//     single mkdir and one re-attempt; the re-attempt's own result is
//     what the caller sees.
//   - Append, Delete, Copy and List never recover or normalize.
//
// # Recovery Semantics
//
// The only recovered condition is a missing parent directory during
// Put or Move, and the recovery is exactly one non-recursive mkdir
// followed by exactly one re-attempt. There is no backoff, no retry
// for transient errors, and no cancellation once an operation has
// been issued.
//
// # Copy Semantics
//
// Copy returns only after the transfer has fully completed and the
// destination has been synced. A nil result means the copy is
// observable and durable; it is never a promise about a transfer
// still in flight.
package filedrive
