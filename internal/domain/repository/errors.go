package repository

import "github.com/pkg/errors"

// ErrNotFound is returned by singleton lookups when no row exists yet.
var ErrNotFound = errors.New("record not found")
