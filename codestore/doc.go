// Package codestore persists discovered perfect codes in a Badger database
// keyed by cube parameters (n, s).
//
// What this package provides:
//
//   - Open / Close        - lifecycle of the on-disk (or in-memory) catalog;
//   - Put / Get / Has     - catalog access keyed by (n, s);
//   - Keys                - enumeration of the stored parameter pairs.
//
// Values are stored in the newline-delimited bit-string form shared with
// the code package, so a catalog written here can be inspected with any
// text tool and re-read by code.Load.
//
// Concurrency: a Store is safe for concurrent use; Badger transactions
// provide the isolation.
package codestore
