package name

import (
	"errors"

	"github.com/hpcmod/hpcmod/pkg/errdefs"
)

var (
	// ErrInvalidIdentifier is an error for when an identifier does not match
	// the recognized reference grammar.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

func newErrInvalidIdentifier(format string, args ...any) error {
	return errdefs.Newf(ErrInvalidIdentifier, format, args...)
}
