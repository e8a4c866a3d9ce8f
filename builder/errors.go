// CLAUDE:SUMMARY Sentinel errors for the builder service: not found, invalid input, quota exceeded.
package builder

import "errors"

// ErrNotFound is returned when a project, page or element does not exist.
var ErrNotFound = errors.New("builder: not found")

// ErrInvalidInput is returned when request input fails validation.
var ErrInvalidInput = errors.New("builder: invalid input")

// ErrQuotaExceeded is returned when a resource limit is reached.
var ErrQuotaExceeded = errors.New("builder: quota exceeded")
