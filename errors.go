package actlayer

import (
	"github.com/pkg/errors"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and are usually returned wrapped with
// more context. The original can be recovered with errors.Cause:
//
//	if errors.Cause(err) == actlayer.ErrInvalidArgument {
//		// ...
//	}
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrInvalidArgument   = Error{"invalid argument"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrRegisterDuplicate = Error{"Type is already registered"}
)

// invalidArg returns ErrInvalidArgument, annotated with the given message
func invalidArg(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
