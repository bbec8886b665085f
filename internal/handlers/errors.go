package handlers

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure so the transport layer can pick a response
// without inspecting concrete error types.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingField
	KindSameSourceAndTarget
	KindStationsNotOnAnyPath
	KindPathNotConnected
	KindNotExistFavorite
	KindUnauthenticated
)

var kindNames = map[Kind]string{
	KindUnknown:              "Unknown",
	KindMissingField:         "MissingField",
	KindSameSourceAndTarget:  "SameSourceAndTarget",
	KindStationsNotOnAnyPath: "StationsNotOnAnyPath",
	KindPathNotConnected:     "PathNotConnected",
	KindNotExistFavorite:     "NotExistFavorite",
	KindUnauthenticated:      "Unauthenticated",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type returned by the favorites operations for every
// expected failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind carried by err, or KindUnknown for unexpected errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
