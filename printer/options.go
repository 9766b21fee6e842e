package printer

import (
	"github.com/shyptr/schemadirectives/schemabuilder"
	"go.uber.org/zap"
)

// DefaultIndent is the indentation used unless WithIndent is given.
const DefaultIndent = "  "

type Option func(*options)

type options struct {
	visible    func(schemabuilder.Member) bool
	indent     string
	logger     *zap.Logger
	decorators []Decorator

	schemaDirectives bool
}

func newOptions(opts []Option) *options {
	o := &options{indent: DefaultIndent}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.visible == nil {
		o.visible = func(schemabuilder.Member) bool { return true }
	}
	return o
}

// WithVisibility hides every member for which visible returns false.
func WithVisibility(visible func(schemabuilder.Member) bool) Option {
	return func(o *options) {
		o.visible = visible
	}
}

func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDecorator adds decorators inside the ones the printer installs itself.
func WithDecorator(decorators ...Decorator) Option {
	return func(o *options) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// withSchemaDirectives prints the directives of the schema definition.
func withSchemaDirectives() Option {
	return func(o *options) {
		o.schemaDirectives = true
	}
}
