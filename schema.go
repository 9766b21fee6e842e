// Package schemadirectives prints GraphQL schemas together with the schema
// directives attached to their members.
//
// Directives are attached while a schema is built, either with the
// schemabuilder.Directives and schemabuilder.Directive options or by calling
// AddDirective on a member, and are rendered by PrintSchemaWithDirectives:
//
//	s := schemadirectives.New(nil)
//	widget, _ := s.Object("Widget", schemabuilder.Directive("first", directive.Arg("arg", "yes")))
//	widget.AddDirective("second")
//	sdl, _ := s.PrintSchemaWithDirectives()
//	// type Widget @first(arg: "yes") @second { ... }
package schemadirectives

import (
	"github.com/shyptr/schemadirectives/printer"
	"github.com/shyptr/schemadirectives/schemabuilder"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Schema is a schemabuilder.Schema that can print its attached directives.
type Schema struct {
	*schemabuilder.Schema
}

// New wraps s. A nil s starts an empty schema.
func New(s *schemabuilder.Schema) *Schema {
	if s == nil {
		s = schemabuilder.NewSchema()
	}
	return &Schema{Schema: s}
}

// FromDefinition loads a schema from SDL. Directives applied in the text are
// attached to the members they annotate, so printing reproduces them.
func FromDefinition(sdl string) (*Schema, error) {
	return FromSources(&ast.Source{Name: "schema.graphql", Input: sdl})
}

// FromSources loads a schema spread over several SDL sources.
func FromSources(sources ...*ast.Source) (*Schema, error) {
	doc, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, err
	}
	s, err := schemabuilder.FromAST(doc)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// PrintSchemaWithDirectives renders the schema as SDL with every attached
// directive after the definition it belongs to, in attachment order.
func (s *Schema) PrintSchemaWithDirectives(opts ...printer.Option) (string, error) {
	return printer.PrintWithDirectives(s.Schema, opts...)
}

// PrintSchema renders the schema without attached directives.
func (s *Schema) PrintSchema(opts ...printer.Option) (string, error) {
	return printer.Print(s.Schema, opts...)
}

// Validate prints the schema with its directives and loads the result back,
// returning the errors the parser reports.
func (s *Schema) Validate(opts ...printer.Option) error {
	sdl, err := s.PrintSchemaWithDirectives(opts...)
	if err != nil {
		return err
	}
	_, err = gqlparser.LoadSchema(&ast.Source{Name: "printed.graphql", Input: sdl})
	return err
}
