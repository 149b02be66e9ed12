// Package repository defines the store interfaces consumed by the HTTP
// handlers together with the sentinel errors shared by their
// implementations.  Handlers match on these sentinels with errors.Is to
// pick a status code; everything else is treated as an internal failure.
package repository

import "errors"

// ErrNotFound is returned when a document lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering an email that is already
// taken.  Handlers translate this into the fixed conflict message.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidID is returned when a path identifier is not a valid ObjectID
// hex string.  Callers treat it the same as a missing document.
var ErrInvalidID = errors.New("invalid id")
