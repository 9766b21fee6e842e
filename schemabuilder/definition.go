package schemabuilder

import (
	"sort"
	"strings"

	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
)

// FromAST builds a Schema from a loaded gqlparser schema. Directives applied
// in the source become attached directives; @deprecated becomes the
// Deprecated option. Directives on the schema definition are kept in
// SchemaDirectives. Built-in types and directives are skipped.
func FromAST(doc *ast.Schema) (*Schema, error) {
	if doc == nil {
		return nil, errors.New("nil schema")
	}
	s := NewSchema()

	names := make([]string, 0, len(doc.Types))
	for name, def := range doc.Types {
		if def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	// register every type first so that later steps can resolve any name
	for _, name := range names {
		if err := s.definition(doc.Types[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range names {
		if err := s.members(doc.Types[name]); err != nil {
			return nil, err
		}
	}

	directiveNames := make([]string, 0, len(doc.Directives))
	for name, d := range doc.Directives {
		if isBuiltIn(d.Position) {
			continue
		}
		directiveNames = append(directiveNames, name)
	}
	sort.Strings(directiveNames)
	for _, name := range directiveNames {
		if err := s.directiveDefinition(doc.Directives[name]); err != nil {
			return nil, err
		}
	}

	for op, def := range map[ast.Operation]*ast.Definition{
		ast.Query:        doc.Query,
		ast.Mutation:     doc.Mutation,
		ast.Subscription: doc.Subscription,
	} {
		if def == nil {
			continue
		}
		if err := s.SetRoot(op, s.GetObject(def.Name)); err != nil {
			return nil, err
		}
	}
	if err := newOptions(directiveOptions(doc.SchemaDirectives)).attach(s.SchemaDirectives()); err != nil {
		return nil, errors.Wrap(err, "schema definition")
	}
	return s, nil
}

func isBuiltIn(pos *ast.Position) bool {
	return pos != nil && pos.Src != nil && pos.Src.BuiltIn
}

func (s *Schema) definition(def *ast.Definition) error {
	opts := []Option{Description(def.Description)}
	opts = append(opts, directiveOptions(def.Directives)...)

	var err error
	switch def.Kind {
	case ast.Object:
		_, err = s.Object(def.Name, append(opts, Implements(named(def.Interfaces)...))...)
	case ast.Interface:
		_, err = s.Interface(def.Name, append(opts, Implements(named(def.Interfaces)...))...)
	case ast.Union:
		_, err = s.Union(def.Name, append(opts, PossibleTypes(named(def.Types)...))...)
	case ast.Enum:
		_, err = s.Enum(def.Name, opts...)
	case ast.InputObject:
		_, err = s.InputObject(def.Name, opts...)
	case ast.Scalar:
		_, err = s.Scalar(def.Name, opts...)
	default:
		err = errors.New("unknown definition kind %s for %s", def.Kind, def.Name)
	}
	return err
}

func (s *Schema) members(def *ast.Definition) error {
	switch def.Kind {
	case ast.Object, ast.Interface:
		for _, fd := range def.Fields {
			if strings.HasPrefix(fd.Name, "__") {
				continue
			}
			opts := append([]Option{Description(fd.Description)}, directiveOptions(fd.Directives)...)
			var field *Field
			var err error
			if def.Kind == ast.Object {
				field, err = s.GetObject(def.Name).Field(fd.Name, FromASTType(fd.Type), opts...)
			} else {
				field, err = s.GetInterface(def.Name).Field(fd.Name, FromASTType(fd.Type), opts...)
			}
			if err != nil {
				return err
			}
			for _, ad := range fd.Arguments {
				if _, err := field.Argument(ad.Name, FromASTType(ad.Type), argumentOptions(ad.Description, ad.DefaultValue, ad.Directives)...); err != nil {
					return err
				}
			}
		}
	case ast.InputObject:
		input := s.GetInputObject(def.Name)
		for _, fd := range def.Fields {
			if _, err := input.Argument(fd.Name, FromASTType(fd.Type), argumentOptions(fd.Description, fd.DefaultValue, fd.Directives)...); err != nil {
				return err
			}
		}
	case ast.Enum:
		enum := s.GetEnum(def.Name)
		for _, vd := range def.EnumValues {
			opts := append([]Option{Description(vd.Description)}, directiveOptions(vd.Directives)...)
			if _, err := enum.Value(vd.Name, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Schema) directiveDefinition(dd *ast.DirectiveDefinition) error {
	opts := []Option{Description(dd.Description)}
	if dd.IsRepeatable {
		opts = append(opts, Repeatable())
	}
	d, err := s.Directive(dd.Name, dd.Locations, opts...)
	if err != nil {
		return err
	}
	for _, ad := range dd.Arguments {
		if _, err := d.Argument(ad.Name, FromASTType(ad.Type), argumentOptions(ad.Description, ad.DefaultValue, ad.Directives)...); err != nil {
			return err
		}
	}
	return nil
}

func argumentOptions(desc string, defaultValue *ast.Value, directives ast.DirectiveList) []Option {
	opts := []Option{Description(desc)}
	if defaultValue != nil {
		opts = append(opts, DefaultValue(defaultValue))
	}
	return append(opts, directiveOptions(directives)...)
}

// directiveOptions turns applied directives into construction options. The
// literal values are kept as parsed.
func directiveOptions(list ast.DirectiveList) []Option {
	var opts []Option
	for _, d := range list {
		if d.Name == "deprecated" {
			reason := DefaultDeprecationReason
			if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
				reason = arg.Value.Raw
			}
			opts = append(opts, Deprecated(reason))
			continue
		}
		args := make([]directive.Argument, 0, len(d.Arguments))
		for _, a := range d.Arguments {
			args = append(args, directive.Arg(a.Name, a.Value))
		}
		opts = append(opts, Directive(d.Name, args...))
	}
	return opts
}

func named(names []string) []Type {
	types := make([]Type, 0, len(names))
	for _, name := range names {
		types = append(types, Named(name))
	}
	return types
}
