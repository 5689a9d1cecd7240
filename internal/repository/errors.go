// Package repository wraps all MySQL access.  It is the remote side of the
// local/remote synchronization pattern: the sync layer in internal/store
// calls these repositories first for authenticated users and falls back to
// the local mirror when they fail.  Sentinel errors let higher layers
// distinguish failure scenarios without string matching.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when inserting a record that would violate a
// uniqueness constraint, such as favoriting the same accommodation twice.
var ErrDuplicate = errors.New("duplicate")
