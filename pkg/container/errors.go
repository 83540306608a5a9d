package container

import "errors"

var (
	// ErrNoTagsInstalled signals that a module has no installed tags to
	// resolve against.
	ErrNoTagsInstalled = errors.New("no tags installed")

	// ErrAmbiguousTag signals that a module has multiple installed tags and
	// the caller did not allow a soft outcome.
	ErrAmbiguousTag = errors.New("ambiguous tag")
)
