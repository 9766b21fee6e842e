package schemabuilder

import (
	"fmt"

	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
)

// Type corresponds to GraphQLType
type Type interface {
	String() string
	// IsType() is used to identify the interface that implements IsType,
	// preventing any interface from implementing IsType
	IsType()
}

var _ Type = (*Scalar)(nil)
var _ Type = (*Object)(nil)
var _ Type = (*Interface)(nil)
var _ Type = (*List)(nil)
var _ Type = (*InputObject)(nil)
var _ Type = (*NonNull)(nil)
var _ Type = (*Enum)(nil)
var _ Type = (*Union)(nil)
var _ Type = Named("")

// Named refers to a type by name. It is how fields point at built-in scalars
// and at types that are registered later.
type Named string

func (n Named) String() string { return string(n) }
func (n Named) IsType()        {}

// Built-in scalars. They belong to every schema and are never printed.
var (
	Int     Type = Named("Int")
	Float   Type = Named("Float")
	String  Type = Named("String")
	Boolean Type = Named("Boolean")
	ID      Type = Named("ID")
)

// A list is a kind of type marker, a wrapping type which points to another type.
// Lists are often created within the context of defining the fields of an object type.
type List struct {
	Type Type
}

// A non-null is a kind of type marker, a wrapping type which points to another type.
// Non-null types enforce that their values are never null and
// can ensure an error is raised if this ever occurs during a request.
type NonNull struct {
	Type Type
}

func (t *List) String() string    { return fmt.Sprintf("[%s]", t.Type.String()) }
func (t *NonNull) String() string { return fmt.Sprintf("%s!", t.Type.String()) }

func (t *List) IsType()    {}
func (t *NonNull) IsType() {}

// ListOf wraps typ in a list.
func ListOf(typ Type) *List { return &List{Type: typ} }

// NonNullOf wraps typ in a non-null marker.
func NonNullOf(typ Type) *NonNull { return &NonNull{Type: typ} }

func checkType(typ Type) error {
	switch t := typ.(type) {
	case nil:
		return errors.New("missing type")
	case *List:
		if t == nil {
			return errors.New("missing type")
		}
		return checkType(t.Type)
	case *NonNull:
		if t == nil {
			return errors.New("missing type")
		}
		if _, ok := t.Type.(*NonNull); ok {
			return errors.New("non-null of non-null type %s", t)
		}
		return checkType(t.Type)
	}
	if typ.String() == "" {
		return errors.New("missing type name")
	}
	return nil
}

// ASTType converts typ to the type reference used in gqlparser documents.
func ASTType(typ Type) *ast.Type {
	switch t := typ.(type) {
	case *NonNull:
		inner := ASTType(t.Type)
		inner.NonNull = true
		return inner
	case *List:
		return ast.ListType(ASTType(t.Type), nil)
	}
	return ast.NamedType(typ.String(), nil)
}

// FromASTType converts a gqlparser type reference into a Type. Named types
// become Named references.
func FromASTType(t *ast.Type) Type {
	var typ Type
	if t.Elem != nil {
		typ = ListOf(FromASTType(t.Elem))
	} else {
		typ = Named(t.NamedType)
	}
	if t.NonNull {
		return NonNullOf(typ)
	}
	return typ
}
