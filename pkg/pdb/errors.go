package pdb

import "errors"

// Sentinel errors for the pdb package.
var (
	// ErrDatabaseMismatch means a persisted table's header disagrees with
	// the running domain or encoding version. Callers must rebuild rather
	// than trust the file.
	ErrDatabaseMismatch = errors.New("pdb: persisted database does not match domain")

	// ErrUnreachableIndex means a lookup hit an index the backward search
	// never reached. The corner domain is closed under moves, so this
	// signals a construction bug, not a user error.
	ErrUnreachableIndex = errors.New("pdb: index was never reached during construction")
)
