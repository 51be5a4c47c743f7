package models

import "errors"

var (
	// ErrNotFound signals a lookup that matched nothing; callers map it
	// to a 404 or a boolean failure depending on the operation.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a uniqueness violation, e.g. registering an
	// email that already exists.
	ErrConflict = errors.New("already exists")
)
