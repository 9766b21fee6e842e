package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shyptr/schemadirectives"
	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/schemabuilder"
	"github.com/vektah/gqlparser/v2/ast"
	"gopkg.in/yaml.v2"
)

func RegisterDirectives(schema *schemadirectives.Schema) {
	first, err := schema.Directive("first", []ast.DirectiveLocation{
		ast.LocationObject, ast.LocationFieldDefinition, ast.LocationUnion,
		ast.LocationEnumValue, ast.LocationArgumentDefinition, ast.LocationInputFieldDefinition,
	}, schemabuilder.Description("first directive"))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := first.Argument("arg", schemabuilder.NonNullOf(schemabuilder.String)); err != nil {
		log.Fatal(err)
	}
	if _, err := schema.Directive("second", []ast.DirectiveLocation{ast.LocationObject, ast.LocationUnion}); err != nil {
		log.Fatal(err)
	}
}

func RegisterWidget(schema *schemadirectives.Schema) {
	widget, err := schema.Object("Widget",
		schemabuilder.Description("a widget with schema directives"),
		schemabuilder.Directives(yaml.MapSlice{
			{Key: "first", Value: yaml.MapSlice{{Key: "arg", Value: "yes"}}},
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := widget.AddDirective("second"); err != nil {
		log.Fatal(err)
	}
	if _, err := widget.Field("name", schemabuilder.String,
		schemabuilder.Directive("first", directive.Arg("arg", "no")),
	); err != nil {
		log.Fatal(err)
	}
}

func RegisterEnum(schema *schemadirectives.Schema) {
	status, err := schema.Enum("Status", schemabuilder.Description("widget status"))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := status.Value("OKAY", schemabuilder.Directive("first", directive.Arg("arg", "ok"))); err != nil {
		log.Fatal(err)
	}
	if _, err := status.Value("BROKEN", schemabuilder.Deprecated("")); err != nil {
		log.Fatal(err)
	}
}

func RegisterOperations(schema *schemadirectives.Schema) {
	query := schema.Query()
	widget, err := query.Field("widget", schema.GetObject("Widget"))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := widget.Argument("status", schema.GetEnum("Status"),
		schemabuilder.DefaultValue(directive.Enum("OKAY")),
		schemabuilder.Directive("first", directive.Arg("arg", "filter")),
	); err != nil {
		log.Fatal(err)
	}
}

func main() {
	schema := schemadirectives.New(nil)
	RegisterDirectives(schema)
	RegisterWidget(schema)
	RegisterEnum(schema)
	RegisterOperations(schema)
	if err := schema.Validate(); err != nil {
		log.Fatal(err)
	}

	sdl, err := schema.PrintSchemaWithDirectives()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sdl)

	http.Handle("/schema", schemadirectives.HTTPHandler(schema))
	log.Fatal(http.ListenAndServe(":8080", nil))
}
