package content

import (
	"errors"
	"fmt"
)

// Kind classifies content API failures.
type Kind string

const (
	// KindTransport covers unreachable hosts, aborted requests and non-2xx responses.
	KindTransport Kind = "transport"
	// KindDecode covers bodies that are not the JSON shape we expect.
	KindDecode Kind = "decode"
)

// Error is a typed content API failure.
type Error struct {
	Kind   Kind
	Path   string
	Status int // HTTP status when the server answered, 0 otherwise
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("content %s %s: status %d", e.Kind, e.Path, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("content %s %s: %v", e.Kind, e.Path, e.Err)
	default:
		return fmt.Sprintf("content %s %s", e.Kind, e.Path)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or "" when err is not a content error.
func KindOf(err error) Kind {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return ""
	}
	return cerr.Kind
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// IsDecode reports whether err is a decode failure.
func IsDecode(err error) bool {
	return KindOf(err) == KindDecode
}
