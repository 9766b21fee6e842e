package schemabuilder

import (
	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultDeprecationReason Constant string used for default reason for a deprecation.
const DefaultDeprecationReason = "No longer supported"

type Option func(*options)

type options struct {
	description   *string
	deprecated    bool
	reason        string
	defaultValue  interface{}
	hasDefault    bool
	interfaces    []Type
	possibleTypes []Type
	repeatable    bool
	directives    []func() ([]directive.Usage, error)
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func Description(description string) Option {
	return func(o *options) {
		o.description = &description
	}
}

// Deprecated marks a field, argument or enum value as deprecated. An empty
// reason means DefaultDeprecationReason.
func Deprecated(reason string) Option {
	return func(o *options) {
		if reason == "" {
			reason = DefaultDeprecationReason
		}
		o.deprecated = true
		o.reason = reason
	}
}

// DefaultValue sets the default of an argument or input field. The value is
// converted the same way directive arguments are.
func DefaultValue(defaultValue interface{}) Option {
	return func(o *options) {
		o.defaultValue = defaultValue
		o.hasDefault = true
	}
}

// Implements adds interfaces to an object or interface type.
func Implements(interfaces ...Type) Option {
	return func(o *options) {
		o.interfaces = append(o.interfaces, interfaces...)
	}
}

// PossibleTypes adds member types to a union.
func PossibleTypes(types ...Type) Option {
	return func(o *options) {
		o.possibleTypes = append(o.possibleTypes, types...)
	}
}

// Repeatable marks a directive definition as repeatable.
func Repeatable() Option {
	return func(o *options) {
		o.repeatable = true
	}
}

// Directives attaches directives declared as a mapping from directive name to
// its arguments, e.g.
//
//	schemabuilder.Directives(yaml.MapSlice{
//		{Key: "first", Value: yaml.MapSlice{{Key: "arg", Value: "yes"}}},
//		{Key: "second"},
//	})
//
// The arguments of each directive are a mapping or nil. Anything else makes
// the constructor fail with an InvalidArgument error.
func Directives(cfg interface{}) Option {
	return func(o *options) {
		o.directives = append(o.directives, func() ([]directive.Usage, error) {
			return directive.Parse(cfg)
		})
	}
}

// Directive attaches a single directive with ordered arguments.
func Directive(name string, args ...directive.Argument) Option {
	return func(o *options) {
		o.directives = append(o.directives, func() ([]directive.Usage, error) {
			usage, err := directive.NewUsage(name, args...)
			if err != nil {
				return nil, err
			}
			return []directive.Usage{usage}, nil
		})
	}
}

// attach validates every directive option and then adds them to h in
// declaration order. Nothing is attached when one of them is invalid.
func (o *options) attach(h directive.Holder) error {
	var usages []directive.Usage
	for _, fn := range o.directives {
		u, err := fn()
		if err != nil {
			return err
		}
		usages = append(usages, u...)
	}
	for _, usage := range usages {
		if err := h.AddDirective(usage.Name, usage.Arguments...); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) defaultLiteral() (*ast.Value, error) {
	if !o.hasDefault {
		return nil, nil
	}
	value, err := directive.Value(o.defaultValue)
	if err != nil {
		return nil, errors.Wrap(err, "default value")
	}
	return value, nil
}
