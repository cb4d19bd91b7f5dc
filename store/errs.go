package store

import "errors"

var (
	// ErrKeyFormat reports an empty or all-whitespace path on a get or
	// set call. Delete never raises it.
	ErrKeyFormat = errors.New("key format")

	// ErrKeyNotFound reports that get hit an absent intermediate
	// container before the final segment. An absent final value is not
	// an error.
	ErrKeyNotFound = errors.New("key not found")

	// ErrRawValue reports that set would have to descend through a
	// scalar. The tree is left unmodified when it is raised.
	ErrRawValue = errors.New("raw value detected")
)
