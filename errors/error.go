package errors

import (
	"errors"
	"fmt"
)

// RuleInvalidArgument marks errors raised for misuse of the directive API.
const RuleInvalidArgument = "InvalidArgument"

// ErrInvalidArgument matches every InvalidArgument error through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

type GraphQLError struct {
	Message       string                 `json:"message"`
	Locations     []Location             `json:"locations,omitempty"`
	Path          []interface{}          `json:"path,omitempty"`
	Rule          string                 `json:"-"`
	ResolverError error                  `json:"-"`
	Extensions    map[string]interface{} `json:"extensions,omitempty"`
}

func (err *GraphQLError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	if err.ResolverError != nil {
		str += " " + err.ResolverError.Error()
	}
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (%d:%d)", loc.Line, loc.Column)
	}
	if err.Path != nil {
		str += fmt.Sprintf(" path: %v", err.Path)
	}
	return str
}

func (err *GraphQLError) Unwrap() error {
	return err.ResolverError
}

// Is reports InvalidArgument errors as ErrInvalidArgument.
func (err *GraphQLError) Is(target error) bool {
	return target == ErrInvalidArgument && err.Rule == RuleInvalidArgument
}

type MultiError []*GraphQLError

func (m MultiError) Error() string {
	var res string
	for _, err := range m {
		res += err.Error() + "\n"
	}
	return res
}

// Err returns nil for an empty MultiError.
func (m MultiError) Err() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

var _ error = (*GraphQLError)(nil)
var _ error = MultiError(nil)

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func New(format string, arg ...interface{}) *GraphQLError {
	return &GraphQLError{
		Message: fmt.Sprintf(format, arg...),
	}
}

// InvalidArgument reports a directive name, argument or configuration that
// cannot be attached.
func InvalidArgument(format string, arg ...interface{}) *GraphQLError {
	return &GraphQLError{
		Message: fmt.Sprintf(format, arg...),
		Rule:    RuleInvalidArgument,
	}
}

// Wrap attaches cause to a new error so errors.Is and errors.As still see it.
func Wrap(cause error, format string, arg ...interface{}) *GraphQLError {
	err := New(format, arg...)
	err.ResolverError = cause
	if cause != nil {
		var gqlErr *GraphQLError
		if errors.As(cause, &gqlErr) {
			err.Rule = gqlErr.Rule
		}
	}
	return err
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
