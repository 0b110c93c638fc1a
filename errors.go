package investrak

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the target of an update does not exist in
// storage. Reads and deletes signal absence with a boolean instead.
var ErrNotFound = errors.New("not found")

// ErrPortfolioNotFound reports a broken reference: a holding or goal points
// at a portfolio that does not exist at save time.
var ErrPortfolioNotFound = errors.New("portfolio not found")

// StorageError reports that the storage medium could not be read or
// written, or that its content is malformed. The underlying cause is
// available through Unwrap.
type StorageError struct {
	Op   string // "read", "decode" or "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error on %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
