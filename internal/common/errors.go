package common

import (
	"fmt"

	"github.com/go-errors/errors"
)

// ErrorKind classifies the errors returned by this module. Returned errors wrap
// one of the kinds below with a prefix describing the failing call, so callers
// match them with errors.Is.
type ErrorKind string

func (k ErrorKind) Error() string { return string(k) }

const (
	ErrInvalidParameter  = ErrorKind("invalid parameter")
	ErrProtocolState     = ErrorKind("operation invoked in wrong protocol state")
	ErrRandomnessFailure = ErrorKind("randomness source failed")
	ErrUnknownDomain     = ErrorKind("unknown domain parameters")
)

// Wrap attaches a formatted description and a stack trace to an error kind.
func Wrap(kind ErrorKind, format string, args ...interface{}) error {
	return errors.WrapPrefix(kind, fmt.Sprintf(format, args...), 1)
}

// InvalidParameter is shorthand for Wrap(ErrInvalidParameter, ...).
func InvalidParameter(format string, args ...interface{}) error {
	return errors.WrapPrefix(ErrInvalidParameter, fmt.Sprintf(format, args...), 1)
}
