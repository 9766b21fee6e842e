package schemabuilder_test

import (
	"testing"

	"github.com/shyptr/schemadirectives/schemabuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const definitionSDL = `
directive @first(arg: String!) on OBJECT | FIELD_DEFINITION | ARGUMENT_DEFINITION | INTERFACE | UNION | ENUM | ENUM_VALUE | INPUT_OBJECT | INPUT_FIELD_DEFINITION | SCALAR
directive @second on OBJECT | UNION

interface Thing @first(arg: "iface") {
  id: ID!
}

type Widget implements Thing @first(arg: "yes") @second {
  id: ID!
  name(locale: String = "en" @first(arg: "locale")): String @first(arg: "field")
  old: String @deprecated
  older: String @deprecated(reason: "use name")
}

union Gizmo @first(arg: "yes") @second = Widget

enum Status @first(arg: "enum") {
  OKAY @first(arg: "value")
  BROKEN
}

input WidgetInput @first(arg: "input") {
  name: String = "x" @first(arg: "inputField")
}

scalar Date @first(arg: "scalar")

type Query {
  widget(input: WidgetInput): Widget
}
`

func load(t *testing.T, sdl string) *schemabuilder.Schema {
	doc, err := gqlparser.LoadSchema(&ast.Source{Name: "test.graphql", Input: sdl})
	require.NoError(t, err)
	s, err := schemabuilder.FromAST(doc)
	require.NoError(t, err)
	return s
}

func firstArg(t *testing.T, m schemabuilder.Member) string {
	usages := m.Directives()
	require.NotEmpty(t, usages, m.Coordinate())
	require.Equal(t, "first", usages[0].Name, m.Coordinate())
	return usages[0].Arguments[0].Value.Raw
}

func TestFromAST(t *testing.T) {
	s := load(t, definitionSDL)

	t.Run("built-ins are skipped", func(t *testing.T) {
		var got []string
		for _, typ := range s.Types() {
			got = append(got, typ.TypeName())
		}
		assert.Equal(t, []string{"Date", "Gizmo", "Query", "Status", "Thing", "Widget", "WidgetInput"}, got)

		var directives []string
		for _, d := range s.DirectiveDefinitions() {
			directives = append(directives, d.Name)
		}
		assert.Equal(t, []string{"first", "second"}, directives)
	})

	t.Run("introspection fields are skipped", func(t *testing.T) {
		query := s.Root(ast.Query)
		require.NotNil(t, query)
		require.Len(t, query.Fields(), 1)
		assert.Equal(t, "widget", query.Fields()[0].Name)
	})

	t.Run("directives become attachments", func(t *testing.T) {
		widget := s.GetObject("Widget")
		assert.Equal(t, []string{"first", "second"}, usageNames(widget))
		assert.Equal(t, "yes", firstArg(t, widget))
		assert.Equal(t, "iface", firstArg(t, s.GetInterface("Thing")))
		assert.Equal(t, "field", firstArg(t, widget.GetField("name")))
		assert.Equal(t, "locale", firstArg(t, widget.GetField("name").GetArgument("locale")))
		assert.Equal(t, []string{"first", "second"}, usageNames(s.GetUnion("Gizmo")))
		assert.Equal(t, "enum", firstArg(t, s.GetEnum("Status")))
		assert.Equal(t, "value", firstArg(t, s.GetEnum("Status").GetValue("OKAY")))
		assert.Nil(t, s.GetEnum("Status").GetValue("BROKEN").Directives())
		assert.Equal(t, "input", firstArg(t, s.GetInputObject("WidgetInput")))
		assert.Equal(t, "inputField", firstArg(t, s.GetInputObject("WidgetInput").GetField("name")))
		assert.Equal(t, "scalar", firstArg(t, s.GetScalar("Date")))
	})

	t.Run("deprecation is not an attachment", func(t *testing.T) {
		widget := s.GetObject("Widget")
		old := widget.GetField("old")
		assert.True(t, old.Deprecated)
		assert.Equal(t, schemabuilder.DefaultDeprecationReason, old.DeprecationReason)
		assert.Nil(t, old.Directives())

		older := widget.GetField("older")
		assert.True(t, older.Deprecated)
		assert.Equal(t, "use name", older.DeprecationReason)
	})

	t.Run("shapes are kept", func(t *testing.T) {
		widget := s.GetObject("Widget")
		assert.Equal(t, []string{"Thing"}, typeStrings(widget.Interfaces))
		assert.Equal(t, "ID!", widget.GetField("id").Type.String())
		assert.Equal(t, "en", widget.GetField("name").GetArgument("locale").DefaultValue.Raw)
		assert.Equal(t, []string{"Widget"}, typeStrings(s.GetUnion("Gizmo").Types))

		var values []string
		for _, v := range s.GetEnum("Status").Values() {
			values = append(values, v.Name)
		}
		assert.Equal(t, []string{"OKAY", "BROKEN"}, values)

		first := s.GetDirective("first")
		require.NotNil(t, first)
		assert.Len(t, first.Locations, 10)
		assert.Equal(t, "String!", first.GetArgument("arg").Type.String())
	})

	t.Run("custom roots", func(t *testing.T) {
		s := load(t, `
schema { query: RootQuery }
type RootQuery { ok: Boolean }
`)
		root := s.Root(ast.Query)
		require.NotNil(t, root)
		assert.Equal(t, "RootQuery", root.Name)
		assert.Nil(t, s.GetObject("Query"))
	})

	t.Run("schema definition directives", func(t *testing.T) {
		s := load(t, `
directive @meta(owner: String) on SCHEMA
schema @meta(owner: "widgets") { query: RootQuery }
type RootQuery { ok: Boolean }
`)
		usages := s.SchemaDirectives().Directives()
		require.Len(t, usages, 1)
		assert.Equal(t, "meta", usages[0].Name)
		assert.Equal(t, "widgets", usages[0].Arguments[0].Value.Raw)

		assert.Empty(t, load(t, definitionSDL).SchemaDirectives().Directives())
	})
}

func typeStrings(types []schemabuilder.Type) []string {
	var out []string
	for _, t := range types {
		out = append(out, t.String())
	}
	return out
}
