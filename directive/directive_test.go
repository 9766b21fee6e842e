package directive_test

import (
	"testing"

	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestList(t *testing.T) {
	t.Run("empty list has no directives", func(t *testing.T) {
		var list directive.List
		assert.Nil(t, list.Directives())
		assert.Equal(t, 0, list.Len())
	})

	t.Run("added usage is returned last", func(t *testing.T) {
		var list directive.List
		require.NoError(t, list.AddDirective("first", directive.Arg("arg", "yes")))
		require.NoError(t, list.AddDirective("second"))

		usages := list.Directives()
		require.Len(t, usages, 2)
		assert.Equal(t, "first", usages[0].Name)
		require.Len(t, usages[0].Arguments, 1)
		assert.Equal(t, "arg", usages[0].Arguments[0].Name)
		assert.Equal(t, ast.StringValue, usages[0].Arguments[0].Value.Kind)
		assert.Equal(t, "yes", usages[0].Arguments[0].Value.Raw)
		assert.Equal(t, "second", usages[1].Name)
		assert.Nil(t, usages[1].Arguments)
	})

	t.Run("repeated usages are kept", func(t *testing.T) {
		var list directive.List
		require.NoError(t, list.AddDirective("tag", directive.Arg("name", "a")))
		require.NoError(t, list.AddDirective("tag", directive.Arg("name", "a")))
		assert.Equal(t, 2, list.Len())
	})

	t.Run("arguments keep their order", func(t *testing.T) {
		var list directive.List
		require.NoError(t, list.AddDirective("key",
			directive.Arg("z", 1),
			directive.Arg("a", 2),
			directive.Arg("m", 3),
		))
		args := list.Directives()[0].Arguments
		require.Len(t, args, 3)
		assert.Equal(t, []string{"z", "a", "m"}, []string{args[0].Name, args[1].Name, args[2].Name})
	})

	t.Run("invalid input leaves the list unchanged", func(t *testing.T) {
		var list directive.List
		require.NoError(t, list.AddDirective("first"))

		for name, add := range map[string]func() error{
			"empty name":         func() error { return list.AddDirective("") },
			"invalid name":       func() error { return list.AddDirective("not-a-name") },
			"leading digit":      func() error { return list.AddDirective("1st") },
			"invalid arg name":   func() error { return list.AddDirective("first", directive.Arg("bad name", 1)) },
			"unconvertible arg":  func() error { return list.AddDirective("first", directive.Arg("arg", make(chan int))) },
			"second arg invalid": func() error { return list.AddDirective("first", directive.Arg("a", 1), directive.Arg("b", struct{}{})) },
		} {
			err := add()
			assert.Error(t, err, name)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument), name)
		}
		assert.Equal(t, 1, list.Len())
	})

	t.Run("directives returns a copy", func(t *testing.T) {
		var list directive.List
		require.NoError(t, list.AddDirective("first", directive.Arg("arg", "yes")))

		usages := list.Directives()
		usages[0].Name = "changed"
		usages[0].Arguments[0] = directive.Arg("other", 1)
		usages = append(usages, directive.Usage{Name: "extra"})

		again := list.Directives()
		require.Len(t, again, 1)
		assert.Equal(t, "first", again[0].Name)
		assert.Equal(t, "arg", again[0].Arguments[0].Name)
	})

	t.Run("directive values cannot be changed through a copy", func(t *testing.T) {
		var list directive.List
		require.NoError(t, list.AddDirective("first",
			directive.Arg("arg", "yes"),
			directive.Arg("tags", []string{"a", "b"}),
		))

		usages := list.Directives()
		usages[0].Arguments[0].Value.Raw = "mutated"
		usages[0].Arguments[0].Value.Kind = ast.EnumValue
		usages[0].Arguments[1].Value.Children[0].Value.Raw = "z"
		usages[0].Arguments[1].Value.Children = usages[0].Arguments[1].Value.Children[:1]

		again := list.Directives()
		assert.Equal(t, ast.StringValue, again[0].Arguments[0].Value.Kind)
		assert.Equal(t, "yes", again[0].Arguments[0].Value.Raw)
		require.Len(t, again[0].Arguments[1].Value.Children, 2)
		assert.Equal(t, "a", again[0].Arguments[1].Value.Children[0].Value.Raw)
	})

	t.Run("caller values are copied on add", func(t *testing.T) {
		var list directive.List
		in := &ast.Value{Kind: ast.StringValue, Raw: "yes"}
		require.NoError(t, list.AddDirective("first", directive.Argument{Name: "arg", Value: in}))
		in.Raw = "mutated"
		assert.Equal(t, "yes", list.Directives()[0].Arguments[0].Value.Raw)
	})

	t.Run("nil value becomes null", func(t *testing.T) {
		var list directive.List
		require.NoError(t, list.AddDirective("first", directive.Argument{Name: "arg"}))
		assert.Equal(t, ast.NullValue, list.Directives()[0].Arguments[0].Value.Kind)
	})
}

func TestNewUsage(t *testing.T) {
	usage, err := directive.NewUsage("first", directive.Arg("arg", "yes"))
	require.NoError(t, err)
	assert.Equal(t, "first", usage.Name)

	_, err = directive.NewUsage("@first")
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}
