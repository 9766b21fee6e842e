package schemabuilder

import (
	"fmt"

	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
)

// Member is a schema member that can carry directives.
type Member interface {
	directive.Holder
	// Coordinate returns the schema coordinate of the member, e.g. Type.field(arg:).
	Coordinate() string
}

// NamedType is a type registered in a Schema.
type NamedType interface {
	Member
	Type
	TypeName() string
	Description() string
}

var _ NamedType = (*Object)(nil)
var _ NamedType = (*Interface)(nil)
var _ NamedType = (*InputObject)(nil)
var _ NamedType = (*Union)(nil)
var _ NamedType = (*Enum)(nil)
var _ NamedType = (*Scalar)(nil)
var _ Member = (*Field)(nil)
var _ Member = (*Argument)(nil)
var _ Member = (*EnumValue)(nil)

// Object is a representation of graphql object type
type Object struct {
	directive.List
	Name       string
	Desc       string
	Interfaces []Type

	fields []*Field
}

// Interface is a representation of graphql interface
type Interface struct {
	directive.List
	Name       string
	Desc       string
	Interfaces []Type

	fields []*Field
}

// InputObject represents the input objects passed in queries, mutations and subscriptions
type InputObject struct {
	directive.List
	Name string
	Desc string

	fields []*Argument
}

// Union is a representation of graphql union
type Union struct {
	directive.List
	Name  string
	Desc  string
	Types []Type
}

// Enum is a representation of graphql enum
type Enum struct {
	directive.List
	Name string
	Desc string

	values []*EnumValue
}

// Scalar is a representation of a custom graphql scalar
type Scalar struct {
	directive.List
	Name string
	Desc string
}

// Field is an output field of an object or interface.
type Field struct {
	directive.List
	Name              string
	Desc              string
	Type              Type
	Deprecated        bool
	DeprecationReason string

	parent string
	args   []*Argument
}

// Argument is a field argument, an input object field or a directive
// definition argument.
type Argument struct {
	directive.List
	Name              string
	Desc              string
	Type              Type
	DefaultValue      *ast.Value
	Deprecated        bool
	DeprecationReason string

	parent     string
	inputField bool
}

// EnumValue is a single value of an enum.
type EnumValue struct {
	directive.List
	Name              string
	Desc              string
	Deprecated        bool
	DeprecationReason string

	parent string
}

// DirectiveDefinition declares a directive that schema members may use.
type DirectiveDefinition struct {
	Name       string
	Desc       string
	Locations  []ast.DirectiveLocation
	Repeatable bool

	args []*Argument
}

func (t *Object) String() string      { return t.Name }
func (t *Interface) String() string   { return t.Name }
func (t *InputObject) String() string { return t.Name }
func (t *Union) String() string       { return t.Name }
func (t *Enum) String() string        { return t.Name }
func (t *Scalar) String() string      { return t.Name }

func (t *Object) IsType()      {}
func (t *Interface) IsType()   {}
func (t *InputObject) IsType() {}
func (t *Union) IsType()       {}
func (t *Enum) IsType()        {}
func (t *Scalar) IsType()      {}

func (t *Object) TypeName() string      { return t.Name }
func (t *Interface) TypeName() string   { return t.Name }
func (t *InputObject) TypeName() string { return t.Name }
func (t *Union) TypeName() string       { return t.Name }
func (t *Enum) TypeName() string        { return t.Name }
func (t *Scalar) TypeName() string      { return t.Name }

func (t *Object) Description() string      { return t.Desc }
func (t *Interface) Description() string   { return t.Desc }
func (t *InputObject) Description() string { return t.Desc }
func (t *Union) Description() string       { return t.Desc }
func (t *Enum) Description() string        { return t.Desc }
func (t *Scalar) Description() string      { return t.Desc }

func (t *Object) Coordinate() string      { return t.Name }
func (t *Interface) Coordinate() string   { return t.Name }
func (t *InputObject) Coordinate() string { return t.Name }
func (t *Union) Coordinate() string       { return t.Name }
func (t *Enum) Coordinate() string        { return t.Name }
func (t *Scalar) Coordinate() string      { return t.Name }

func (f *Field) Coordinate() string { return f.parent + "." + f.Name }

func (a *Argument) Coordinate() string {
	if a.inputField {
		return a.parent + "." + a.Name
	}
	return fmt.Sprintf("%s(%s:)", a.parent, a.Name)
}

func (v *EnumValue) Coordinate() string { return v.parent + "." + v.Name }

// Field adds an output field to the object. Fields print in the order they
// were added.
func (t *Object) Field(name string, typ Type, opts ...Option) (*Field, error) {
	f, err := addField(t.Name, t.fields, name, typ, opts)
	if err != nil {
		return nil, err
	}
	t.fields = append(t.fields, f)
	return f, nil
}

// Fields returns the fields of the object in declaration order.
func (t *Object) Fields() []*Field { return append([]*Field(nil), t.fields...) }

// GetField returns the named field or nil.
func (t *Object) GetField(name string) *Field { return findField(t.fields, name) }

// Field adds an output field to the interface.
func (t *Interface) Field(name string, typ Type, opts ...Option) (*Field, error) {
	f, err := addField(t.Name, t.fields, name, typ, opts)
	if err != nil {
		return nil, err
	}
	t.fields = append(t.fields, f)
	return f, nil
}

func (t *Interface) Fields() []*Field { return append([]*Field(nil), t.fields...) }

func (t *Interface) GetField(name string) *Field { return findField(t.fields, name) }

// Argument adds an input field to the input object.
func (t *InputObject) Argument(name string, typ Type, opts ...Option) (*Argument, error) {
	if findArgument(t.fields, name) != nil {
		return nil, errors.New("duplicate input field %s.%s", t.Name, name)
	}
	arg, err := newArgument(t.Name, true, name, typ, opts)
	if err != nil {
		return nil, err
	}
	t.fields = append(t.fields, arg)
	return arg, nil
}

// Fields returns the input fields in declaration order.
func (t *InputObject) Fields() []*Argument { return append([]*Argument(nil), t.fields...) }

func (t *InputObject) GetField(name string) *Argument { return findArgument(t.fields, name) }

// Value adds a value to the enum.
func (t *Enum) Value(name string, opts ...Option) (*EnumValue, error) {
	if err := checkName("enum value", name); err != nil {
		return nil, err
	}
	if name == "true" || name == "false" || name == "null" {
		return nil, errors.New("enum %s cannot have value %s", t.Name, name)
	}
	if t.GetValue(name) != nil {
		return nil, errors.New("duplicate enum value %s.%s", t.Name, name)
	}
	o := newOptions(opts)
	v := &EnumValue{Name: name, parent: t.Name}
	if err := o.attach(v); err != nil {
		return nil, err
	}
	if o.description != nil {
		v.Desc = *o.description
	}
	v.Deprecated, v.DeprecationReason = o.deprecated, o.reason
	t.values = append(t.values, v)
	return v, nil
}

// Values returns the enum values in declaration order.
func (t *Enum) Values() []*EnumValue { return append([]*EnumValue(nil), t.values...) }

func (t *Enum) GetValue(name string) *EnumValue {
	for _, v := range t.values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// Argument adds an argument to the field.
func (f *Field) Argument(name string, typ Type, opts ...Option) (*Argument, error) {
	if findArgument(f.args, name) != nil {
		return nil, errors.New("duplicate argument %s(%s:)", f.Coordinate(), name)
	}
	arg, err := newArgument(f.Coordinate(), false, name, typ, opts)
	if err != nil {
		return nil, err
	}
	f.args = append(f.args, arg)
	return arg, nil
}

// Arguments returns the field arguments in declaration order.
func (f *Field) Arguments() []*Argument { return append([]*Argument(nil), f.args...) }

func (f *Field) GetArgument(name string) *Argument { return findArgument(f.args, name) }

// Argument adds an argument to the directive definition.
func (d *DirectiveDefinition) Argument(name string, typ Type, opts ...Option) (*Argument, error) {
	if findArgument(d.args, name) != nil {
		return nil, errors.New("duplicate argument @%s(%s:)", d.Name, name)
	}
	arg, err := newArgument("@"+d.Name, false, name, typ, opts)
	if err != nil {
		return nil, err
	}
	d.args = append(d.args, arg)
	return arg, nil
}

func (d *DirectiveDefinition) Arguments() []*Argument { return append([]*Argument(nil), d.args...) }

func (d *DirectiveDefinition) GetArgument(name string) *Argument { return findArgument(d.args, name) }

func addField(parent string, fields []*Field, name string, typ Type, opts []Option) (*Field, error) {
	if err := checkName("field", name); err != nil {
		return nil, err
	}
	if findField(fields, name) != nil {
		return nil, errors.New("duplicate field %s.%s", parent, name)
	}
	if err := checkType(typ); err != nil {
		return nil, errors.Wrap(err, "field %s.%s", parent, name)
	}
	o := newOptions(opts)
	f := &Field{Name: name, Type: typ, parent: parent}
	if err := o.attach(f); err != nil {
		return nil, err
	}
	if o.description != nil {
		f.Desc = *o.description
	}
	f.Deprecated, f.DeprecationReason = o.deprecated, o.reason
	return f, nil
}

func newArgument(parent string, inputField bool, name string, typ Type, opts []Option) (*Argument, error) {
	if err := checkName("argument", name); err != nil {
		return nil, err
	}
	arg := &Argument{Name: name, Type: typ, parent: parent, inputField: inputField}
	if err := checkType(typ); err != nil {
		return nil, errors.Wrap(err, "argument %s", arg.Coordinate())
	}
	o := newOptions(opts)
	if err := o.attach(arg); err != nil {
		return nil, err
	}
	defaultValue, err := o.defaultLiteral()
	if err != nil {
		return nil, errors.Wrap(err, "argument %s", arg.Coordinate())
	}
	arg.DefaultValue = defaultValue
	if o.description != nil {
		arg.Desc = *o.description
	}
	arg.Deprecated, arg.DeprecationReason = o.deprecated, o.reason
	return arg, nil
}

func findField(fields []*Field, name string) *Field {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func findArgument(args []*Argument, name string) *Argument {
	for _, a := range args {
		if a.Name == name {
			return a
		}
	}
	return nil
}
