package repository

import "errors"

// ErrNotFound is returned by lookups that match no row. Services translate
// it into the domain error appropriate for their caller.
var ErrNotFound = errors.New("record not found")
