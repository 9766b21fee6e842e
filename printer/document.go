package printer

import (
	"bytes"

	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/shyptr/schemadirectives/schemabuilder"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.uber.org/zap"
)

var defaultRoots = []struct {
	op   ast.Operation
	name string
}{
	{ast.Query, "Query"},
	{ast.Mutation, "Mutation"},
	{ast.Subscription, "Subscription"},
}

// Document walks s and builds its SDL document with b. Directive definitions
// come first, then every type in name order. A schema block is added only
// when a root type does not use its default name, or when the schema
// definition carries directives and those are being printed.
func Document(s *schemabuilder.Schema, b Builder, opts ...Option) (*ast.SchemaDocument, error) {
	o := newOptions(opts)
	doc := &ast.SchemaDocument{}

	var usages []directive.Usage
	if o.schemaDirectives {
		usages = s.SchemaDirectives().Directives()
	}
	if schema := schemaDefinition(s, usages); schema != nil {
		doc.Schema = ast.SchemaDefinitionList{schema}
	}

	for _, d := range s.DirectiveDefinitions() {
		def := &ast.DirectiveDefinition{
			Description:  d.Desc,
			Name:         d.Name,
			Locations:    d.Locations,
			IsRepeatable: d.Repeatable,
			Position:     position(),
		}
		for _, arg := range d.Arguments() {
			if !o.visible(arg) {
				continue
			}
			node, err := b.BuildArgumentNode(arg)
			if err != nil {
				return nil, err
			}
			def.Arguments = append(def.Arguments, node)
		}
		doc.Directives = append(doc.Directives, def)
	}

	for _, t := range s.Types() {
		if !o.visible(t) {
			continue
		}
		var def *ast.Definition
		var err error
		switch t := t.(type) {
		case *schemabuilder.Object:
			def, err = b.BuildObjectTypeNode(t)
		case *schemabuilder.Interface:
			def, err = b.BuildInterfaceTypeNode(t)
		case *schemabuilder.InputObject:
			def, err = b.BuildInputObjectNode(t)
		case *schemabuilder.Union:
			def, err = b.BuildUnionTypeNode(t)
		case *schemabuilder.Enum:
			def, err = b.BuildEnumTypeNode(t)
		case *schemabuilder.Scalar:
			def, err = b.BuildScalarTypeNode(t)
		default:
			err = errors.New("unknown type %T", t)
		}
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}
	o.logger.Debug("built schema document",
		zap.Int("types", len(doc.Definitions)),
		zap.Int("directives", len(doc.Directives)),
	)
	return doc, nil
}

func schemaDefinition(s *schemabuilder.Schema, usages []directive.Usage) *ast.SchemaDefinition {
	custom := false
	schema := &ast.SchemaDefinition{Position: position()}
	for _, root := range defaultRoots {
		object := s.Root(root.op)
		if object == nil {
			continue
		}
		if object.Name != root.name {
			custom = true
		}
		schema.OperationTypes = append(schema.OperationTypes, &ast.OperationTypeDefinition{
			Operation: root.op,
			Type:      object.Name,
			Position:  position(),
		})
	}
	if len(schema.OperationTypes) == 0 || (!custom && len(usages) == 0) {
		return nil
	}
	for _, usage := range usages {
		schema.Directives = append(schema.Directives, directiveNode(usage))
	}
	return schema
}

// Print renders s without attached directives.
func Print(s *schemabuilder.Schema, opts ...Option) (string, error) {
	o := newOptions(opts)
	return render(s, NewBuilder(o.visible, o.decorators...), opts)
}

// PrintWithDirectives renders s with every attached directive merged into
// the printed definitions.
func PrintWithDirectives(s *schemabuilder.Schema, opts ...Option) (string, error) {
	o := newOptions(opts)
	decorators := append([]Decorator{MergeDirectives(s.DirectiveTable(), o.logger)}, o.decorators...)
	return render(s, NewBuilder(o.visible, decorators...), append([]Option{withSchemaDirectives()}, opts...))
}

func render(s *schemabuilder.Schema, b Builder, opts []Option) (string, error) {
	doc, err := Document(s, b, opts...)
	if err != nil {
		return "", err
	}
	return Format(doc, newOptions(opts).indent), nil
}

// Format serializes doc.
func Format(doc *ast.SchemaDocument, indent string) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf, formatter.WithIndent(indent)).FormatSchemaDocument(doc)
	return buf.String()
}
