package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks a contract input outside its allowed domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrParameterType marks an input that could not be read as the expected type.
	ErrParameterType = errors.New("parameter type error")
)

// ParameterError reports which contract input was rejected and why.
// It unwraps to ErrInvalidParameter or ErrParameterType.
type ParameterError struct {
	Name   string
	Value  any
	Reason string
	Err    error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s=%v %s", e.Err, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return e.Err }

func invalid(name string, value any, reason string) error {
	return &ParameterError{Name: name, Value: value, Reason: reason, Err: ErrInvalidParameter}
}

func badType(name string, value any, reason string) error {
	return &ParameterError{Name: name, Value: value, Reason: reason, Err: ErrParameterType}
}
