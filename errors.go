package inject

import (
	"fmt"
	"reflect"
)

// InjectionError is the single failure kind raised when resolution cannot
// complete. It identifies the type being resolved and carries the underlying
// cause, which may itself be another *InjectionError from a nested resolution.
//
// Use errors.As to pick it out of a chain and errors.Is / errors.Unwrap to
// walk down to the root cause:
//
//	_, err := c.Make((*OrderService)(nil))
//	var ie *inject.InjectionError
//	for errors.As(err, &ie) {
//	    fmt.Println("while injecting", ie.Type)
//	    err = ie.Unwrap()
//	}
type InjectionError struct {
	// Type is the TypeKey whose resolution failed.
	Type reflect.Type

	// Reason describes failures with no underlying cause,
	// e.g. "unable to find a valid constructor".
	Reason string

	// Cause is the propagated lower-level failure, if any.
	Cause error
}

func (e *InjectionError) Error() string {
	typeStr := "<nil>"
	if e.Type != nil {
		typeStr = e.Type.String()
	}
	switch {
	case e.Reason != "" && e.Cause != nil:
		return fmt.Sprintf("inject: %s on %s: %v", e.Reason, typeStr, e.Cause)
	case e.Reason != "":
		return fmt.Sprintf("inject: %s on %s", e.Reason, typeStr)
	case e.Cause != nil:
		return fmt.Sprintf("inject: error while trying to inject %s: %v", typeStr, e.Cause)
	default:
		return fmt.Sprintf("inject: error while trying to inject %s", typeStr)
	}
}

// Unwrap returns the underlying cause so errors.Is and errors.As can
// traverse the full chain.
func (e *InjectionError) Unwrap() error { return e.Cause }
