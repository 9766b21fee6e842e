// Package printer turns a schemabuilder.Schema into an SDL document.
//
// Every node kind has its own build step on Builder. The base builder emits
// the plain definition; Decorators wrap it to add to the node, and nested
// members are always built through the outermost builder so a decorator sees
// every node at every depth.
package printer

import (
	"github.com/shyptr/schemadirectives/schemabuilder"
	"github.com/vektah/gqlparser/v2/ast"
)

// Builder builds one AST node per schema member.
type Builder interface {
	BuildObjectTypeNode(*schemabuilder.Object) (*ast.Definition, error)
	BuildInterfaceTypeNode(*schemabuilder.Interface) (*ast.Definition, error)
	BuildFieldNode(*schemabuilder.Field) (*ast.FieldDefinition, error)
	BuildInputObjectNode(*schemabuilder.InputObject) (*ast.Definition, error)
	BuildArgumentNode(*schemabuilder.Argument) (*ast.ArgumentDefinition, error)
	BuildUnionTypeNode(*schemabuilder.Union) (*ast.Definition, error)
	BuildEnumTypeNode(*schemabuilder.Enum) (*ast.Definition, error)
	BuildEnumValueNode(*schemabuilder.EnumValue) (*ast.EnumValueDefinition, error)
	BuildScalarTypeNode(*schemabuilder.Scalar) (*ast.Definition, error)
}

// Decorator wraps a Builder.
type Decorator func(next Builder) Builder

// NewBuilder returns the base builder wrapped in decorators. The first
// decorator is the outermost one.
func NewBuilder(visible func(schemabuilder.Member) bool, decorators ...Decorator) Builder {
	if visible == nil {
		visible = func(schemabuilder.Member) bool { return true }
	}
	b := &base{visible: visible}
	var root Builder = b
	for i := len(decorators) - 1; i >= 0; i-- {
		root = decorators[i](root)
	}
	b.root = root
	return root
}

var source = &ast.Source{Name: "schemadirectives"}

func position() *ast.Position {
	return &ast.Position{Src: source}
}

type base struct {
	root    Builder
	visible func(schemabuilder.Member) bool
}

func (b *base) BuildObjectTypeNode(t *schemabuilder.Object) (*ast.Definition, error) {
	fields, err := b.fields(t.Fields())
	if err != nil {
		return nil, err
	}
	return &ast.Definition{
		Kind:        ast.Object,
		Description: t.Desc,
		Name:        t.Name,
		Interfaces:  typeNames(t.Interfaces),
		Fields:      fields,
		Position:    position(),
	}, nil
}

func (b *base) BuildInterfaceTypeNode(t *schemabuilder.Interface) (*ast.Definition, error) {
	fields, err := b.fields(t.Fields())
	if err != nil {
		return nil, err
	}
	return &ast.Definition{
		Kind:        ast.Interface,
		Description: t.Desc,
		Name:        t.Name,
		Interfaces:  typeNames(t.Interfaces),
		Fields:      fields,
		Position:    position(),
	}, nil
}

func (b *base) BuildFieldNode(f *schemabuilder.Field) (*ast.FieldDefinition, error) {
	var args ast.ArgumentDefinitionList
	for _, arg := range f.Arguments() {
		if !b.visible(arg) {
			continue
		}
		node, err := b.root.BuildArgumentNode(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, node)
	}
	return &ast.FieldDefinition{
		Description: f.Desc,
		Name:        f.Name,
		Arguments:   args,
		Type:        schemabuilder.ASTType(f.Type),
		Directives:  deprecation(f.Deprecated, f.DeprecationReason),
		Position:    position(),
	}, nil
}

func (b *base) BuildInputObjectNode(t *schemabuilder.InputObject) (*ast.Definition, error) {
	var fields ast.FieldList
	for _, f := range t.Fields() {
		if !b.visible(f) {
			continue
		}
		node, err := b.root.BuildArgumentNode(f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.FieldDefinition{
			Description:  node.Description,
			Name:         node.Name,
			DefaultValue: node.DefaultValue,
			Type:         node.Type,
			Directives:   node.Directives,
			Position:     node.Position,
		})
	}
	return &ast.Definition{
		Kind:        ast.InputObject,
		Description: t.Desc,
		Name:        t.Name,
		Fields:      fields,
		Position:    position(),
	}, nil
}

func (b *base) BuildArgumentNode(a *schemabuilder.Argument) (*ast.ArgumentDefinition, error) {
	return &ast.ArgumentDefinition{
		Description:  a.Desc,
		Name:         a.Name,
		DefaultValue: a.DefaultValue,
		Type:         schemabuilder.ASTType(a.Type),
		Directives:   deprecation(a.Deprecated, a.DeprecationReason),
		Position:     position(),
	}, nil
}

func (b *base) BuildUnionTypeNode(t *schemabuilder.Union) (*ast.Definition, error) {
	return &ast.Definition{
		Kind:        ast.Union,
		Description: t.Desc,
		Name:        t.Name,
		Types:       typeNames(t.Types),
		Position:    position(),
	}, nil
}

func (b *base) BuildEnumTypeNode(t *schemabuilder.Enum) (*ast.Definition, error) {
	var values ast.EnumValueList
	for _, v := range t.Values() {
		if !b.visible(v) {
			continue
		}
		node, err := b.root.BuildEnumValueNode(v)
		if err != nil {
			return nil, err
		}
		values = append(values, node)
	}
	return &ast.Definition{
		Kind:        ast.Enum,
		Description: t.Desc,
		Name:        t.Name,
		EnumValues:  values,
		Position:    position(),
	}, nil
}

func (b *base) BuildEnumValueNode(v *schemabuilder.EnumValue) (*ast.EnumValueDefinition, error) {
	return &ast.EnumValueDefinition{
		Description: v.Desc,
		Name:        v.Name,
		Directives:  deprecation(v.Deprecated, v.DeprecationReason),
		Position:    position(),
	}, nil
}

func (b *base) BuildScalarTypeNode(t *schemabuilder.Scalar) (*ast.Definition, error) {
	return &ast.Definition{
		Kind:        ast.Scalar,
		Description: t.Desc,
		Name:        t.Name,
		Position:    position(),
	}, nil
}

func (b *base) fields(fields []*schemabuilder.Field) (ast.FieldList, error) {
	var list ast.FieldList
	for _, f := range fields {
		if !b.visible(f) {
			continue
		}
		node, err := b.root.BuildFieldNode(f)
		if err != nil {
			return nil, err
		}
		list = append(list, node)
	}
	return list, nil
}

// deprecation returns the @deprecated usage of a deprecated member. The
// default reason prints as a bare @deprecated.
func deprecation(deprecated bool, reason string) ast.DirectiveList {
	if !deprecated {
		return nil
	}
	d := &ast.Directive{Name: "deprecated", Position: position()}
	if reason != "" && reason != schemabuilder.DefaultDeprecationReason {
		d.Arguments = ast.ArgumentList{{
			Name:     "reason",
			Value:    &ast.Value{Kind: ast.StringValue, Raw: reason},
			Position: position(),
		}}
	}
	return ast.DirectiveList{d}
}

func typeNames(types []schemabuilder.Type) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
