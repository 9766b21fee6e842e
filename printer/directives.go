package printer

import (
	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/schemabuilder"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// MergeDirectives returns a Decorator that appends the directives attached to
// each member to the node built for it: first the member's own usages, then
// the usages stored under its coordinate in table. table may be nil.
func MergeDirectives(table *directive.Table, logger *zap.Logger) Decorator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next Builder) Builder {
		return &merger{next: next, table: table, logger: logger}
	}
}

type merger struct {
	next   Builder
	table  *directive.Table
	logger *zap.Logger
}

func (m *merger) BuildObjectTypeNode(t *schemabuilder.Object) (*ast.Definition, error) {
	node, err := m.next.BuildObjectTypeNode(t)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(t, node.Directives)
	return node, nil
}

func (m *merger) BuildInterfaceTypeNode(t *schemabuilder.Interface) (*ast.Definition, error) {
	node, err := m.next.BuildInterfaceTypeNode(t)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(t, node.Directives)
	return node, nil
}

func (m *merger) BuildFieldNode(f *schemabuilder.Field) (*ast.FieldDefinition, error) {
	node, err := m.next.BuildFieldNode(f)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(f, node.Directives)
	return node, nil
}

func (m *merger) BuildInputObjectNode(t *schemabuilder.InputObject) (*ast.Definition, error) {
	node, err := m.next.BuildInputObjectNode(t)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(t, node.Directives)
	return node, nil
}

func (m *merger) BuildArgumentNode(a *schemabuilder.Argument) (*ast.ArgumentDefinition, error) {
	node, err := m.next.BuildArgumentNode(a)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(a, node.Directives)
	return node, nil
}

func (m *merger) BuildUnionTypeNode(t *schemabuilder.Union) (*ast.Definition, error) {
	node, err := m.next.BuildUnionTypeNode(t)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(t, node.Directives)
	return node, nil
}

func (m *merger) BuildEnumTypeNode(t *schemabuilder.Enum) (*ast.Definition, error) {
	node, err := m.next.BuildEnumTypeNode(t)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(t, node.Directives)
	return node, nil
}

func (m *merger) BuildEnumValueNode(v *schemabuilder.EnumValue) (*ast.EnumValueDefinition, error) {
	node, err := m.next.BuildEnumValueNode(v)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(v, node.Directives)
	return node, nil
}

func (m *merger) BuildScalarTypeNode(t *schemabuilder.Scalar) (*ast.Definition, error) {
	node, err := m.next.BuildScalarTypeNode(t)
	if err != nil {
		return nil, err
	}
	node.Directives = m.merge(t, node.Directives)
	return node, nil
}

func (m *merger) merge(member schemabuilder.Member, list ast.DirectiveList) ast.DirectiveList {
	usages := member.Directives()
	if m.table != nil {
		usages = append(usages, m.table.Directives(member.Coordinate())...)
	}
	if len(usages) == 0 {
		return list
	}
	m.logger.Debug("merging directives",
		zap.String("coordinate", member.Coordinate()),
		zap.Int("count", len(usages)),
	)
	for _, usage := range usages {
		list = append(list, directiveNode(usage))
	}
	return list
}

func directiveNode(usage directive.Usage) *ast.Directive {
	d := &ast.Directive{Name: usage.Name, Position: position()}
	for _, arg := range usage.Arguments {
		d.Arguments = append(d.Arguments, &ast.Argument{
			Name:     arg.Name,
			Value:    arg.Value,
			Position: position(),
		})
	}
	return d
}
