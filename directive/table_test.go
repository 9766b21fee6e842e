package directive_test

import (
	"testing"

	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Run("keys are independent", func(t *testing.T) {
		table := directive.NewTable()
		require.NoError(t, table.AddDirective("Widget", "first", directive.Arg("arg", "yes")))
		require.NoError(t, table.AddDirective("Widget.name", "second"))
		require.NoError(t, table.AddDirective("Widget", "second"))

		assert.Equal(t, []string{"first", "second"}, names(table.Directives("Widget")))
		assert.Equal(t, []string{"second"}, names(table.Directives("Widget.name")))
		assert.Nil(t, table.Directives("Gizmo"))
		assert.Equal(t, []string{"Widget", "Widget.name"}, table.Keys())
	})

	t.Run("invalid usage is not stored", func(t *testing.T) {
		table := directive.NewTable()
		err := table.AddDirective("Widget", "bad name")
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
		assert.Empty(t, table.Keys())
	})

	t.Run("attach copies usages", func(t *testing.T) {
		table := directive.NewTable()
		usage, err := directive.NewUsage("first", directive.Arg("arg", "yes"))
		require.NoError(t, err)
		table.Attach("Widget", usage)
		usage.Arguments[0] = directive.Arg("other", 1)

		stored := table.Directives("Widget")
		require.Len(t, stored, 1)
		assert.Equal(t, "arg", stored[0].Arguments[0].Name)
	})

	t.Run("attached values are not shared", func(t *testing.T) {
		table := directive.NewTable()
		usage, err := directive.NewUsage("first", directive.Arg("arg", "yes"))
		require.NoError(t, err)
		table.Attach("Widget", usage)
		usage.Arguments[0].Value.Raw = "mutated"
		table.Directives("Widget")[0].Arguments[0].Value.Raw = "mutated"

		assert.Equal(t, "yes", table.Directives("Widget")[0].Arguments[0].Value.Raw)
	})

	t.Run("holder view", func(t *testing.T) {
		table := directive.NewTable()
		h := table.Holder("Enum.VALUE")
		require.NoError(t, h.AddDirective("first"))
		assert.Equal(t, []string{"first"}, names(table.Directives("Enum.VALUE")))
		assert.Equal(t, []string{"first"}, names(h.Directives()))
	})

	t.Run("nil table is empty", func(t *testing.T) {
		var table *directive.Table
		assert.Nil(t, table.Directives("Widget"))
		assert.Nil(t, table.Keys())
	})
}
