// Package directive attaches schema directive usages to schema members.
//
// A usage is a directive name plus an ordered list of literal arguments, for
// example @first(arg: "yes"). Members collect usages in a List, in the order
// they were added, and the printer renders them after the member's own
// definition.
//
// Lists are not safe for concurrent use. No directive may be attached to a
// schema while that schema is being printed.
package directive

import (
	"regexp"

	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
)

// NameRegExp matches valid GraphQL names.
var NameRegExp = regexp.MustCompile("^[_a-zA-Z][_a-zA-Z0-9]*$")

// Argument is one named literal passed to a directive usage.
type Argument struct {
	Name  string
	Value *ast.Value

	err error
}

// Arg converts value into a GraphQL literal. A value that cannot be
// converted makes the AddDirective call that receives the argument fail.
func Arg(name string, value interface{}) Argument {
	v, err := Value(value)
	return Argument{Name: name, Value: v, err: err}
}

// Usage is a single directive applied to a schema member.
type Usage struct {
	Name      string
	Arguments []Argument
}

// NewUsage validates name and args and returns the usage they describe.
func NewUsage(name string, args ...Argument) (Usage, error) {
	if !NameRegExp.MatchString(name) {
		return Usage{}, errors.InvalidArgument(`directive name must match %s but %q does not`, NameRegExp, name)
	}
	var arguments []Argument
	for _, arg := range args {
		if arg.err != nil {
			return Usage{}, errors.Wrap(arg.err, "directive @%s argument %q", name, arg.Name)
		}
		if !NameRegExp.MatchString(arg.Name) {
			return Usage{}, errors.InvalidArgument(`directive @%s argument name must match %s but %q does not`, name, NameRegExp, arg.Name)
		}
		value := copyValue(arg.Value)
		if value == nil {
			value = nullValue()
		}
		arguments = append(arguments, Argument{Name: arg.Name, Value: value})
	}
	return Usage{Name: name, Arguments: arguments}, nil
}

func (u Usage) clone() Usage {
	if u.Arguments != nil {
		arguments := make([]Argument, len(u.Arguments))
		for i, arg := range u.Arguments {
			arguments[i] = Argument{Name: arg.Name, Value: copyValue(arg.Value), err: arg.err}
		}
		u.Arguments = arguments
	}
	return u
}

// Holder is implemented by every schema member that can carry directives.
type Holder interface {
	// AddDirective appends a usage of the named directive.
	AddDirective(name string, args ...Argument) error
	// Directives returns a copy of the attached usages in insertion order.
	Directives() []Usage
}

// List is the shared Holder implementation embedded by schema members. The
// zero value is an empty list.
type List struct {
	usages []Usage
}

var _ Holder = (*List)(nil)

// AddDirective validates the usage and appends it. Nothing is appended when
// validation fails.
func (l *List) AddDirective(name string, args ...Argument) error {
	usage, err := NewUsage(name, args...)
	if err != nil {
		return err
	}
	l.usages = append(l.usages, usage)
	return nil
}

func (l *List) Directives() []Usage {
	if len(l.usages) == 0 {
		return nil
	}
	usages := make([]Usage, len(l.usages))
	for i, u := range l.usages {
		usages[i] = u.clone()
	}
	return usages
}

// Len returns the number of attached usages.
func (l *List) Len() int {
	return len(l.usages)
}
