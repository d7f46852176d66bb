package errors

import "errors"

// ErrConflict is returned when a write loses against a concurrent update
// of the same row.
var ErrConflict = errors.New("record was modified by another operation, retry")
