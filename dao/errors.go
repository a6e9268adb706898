package dao

import "errors"

var (
	// ErrNotFound reports that no document matched the given id.
	ErrNotFound = errors.New("dao: document not found")
	// ErrVersionConflict reports that a versioned replace matched no
	// document because a concurrent writer bumped the version first.
	ErrVersionConflict = errors.New("dao: stale document version")
)
