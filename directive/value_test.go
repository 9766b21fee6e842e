package directive_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"gopkg.in/yaml.v2"
)

func TestValue(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		for _, c := range []struct {
			in   interface{}
			kind ast.ValueKind
			raw  string
		}{
			{nil, ast.NullValue, "null"},
			{"yes", ast.StringValue, "yes"},
			{true, ast.BooleanValue, "true"},
			{false, ast.BooleanValue, "false"},
			{42, ast.IntValue, "42"},
			{int8(-3), ast.IntValue, "-3"},
			{uint(7), ast.IntValue, "7"},
			{1.5, ast.FloatValue, "1.5"},
			{float32(2), ast.FloatValue, "2.0"},
			{1e21, ast.FloatValue, "1e+21"},
			{json.Number("12"), ast.IntValue, "12"},
			{json.Number("1.25"), ast.FloatValue, "1.25"},
			{directive.Enum("OKAY"), ast.EnumValue, "OKAY"},
		} {
			v, err := directive.Value(c.in)
			require.NoError(t, err, "%#v", c.in)
			assert.Equal(t, c.kind, v.Kind, "%#v", c.in)
			assert.Equal(t, c.raw, v.Raw, "%#v", c.in)
		}
	})

	t.Run("pointers are followed", func(t *testing.T) {
		s := "yes"
		v, err := directive.Value(&s)
		require.NoError(t, err)
		assert.Equal(t, ast.StringValue, v.Kind)

		var nilPtr *string
		v, err = directive.Value(nilPtr)
		require.NoError(t, err)
		assert.Equal(t, ast.NullValue, v.Kind)
	})

	t.Run("ast values pass through as copies", func(t *testing.T) {
		in := &ast.Value{Kind: ast.BlockValue, Raw: "multi\nline"}
		v, err := directive.Value(in)
		require.NoError(t, err)
		assert.NotSame(t, in, v)
		assert.Equal(t, ast.BlockValue, v.Kind)
		assert.Equal(t, "multi\nline", v.Raw)

		list := &ast.Value{Kind: ast.ListValue, Children: ast.ChildValueList{
			{Value: &ast.Value{Kind: ast.IntValue, Raw: "1"}},
		}}
		v, err = directive.Value(list)
		require.NoError(t, err)
		list.Children[0].Value.Raw = "2"
		list.Children = append(list.Children, &ast.ChildValue{Value: &ast.Value{Kind: ast.NullValue, Raw: "null"}})
		require.Len(t, v.Children, 1)
		assert.Equal(t, "1", v.Children[0].Value.Raw)
	})

	t.Run("lists", func(t *testing.T) {
		v, err := directive.Value([]string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, ast.ListValue, v.Kind)
		require.Len(t, v.Children, 2)
		assert.Equal(t, "a", v.Children[0].Value.Raw)
		assert.Equal(t, "b", v.Children[1].Value.Raw)

		v, err = directive.Value([]interface{}{1, "x", nil})
		require.NoError(t, err)
		require.Len(t, v.Children, 3)
		assert.Equal(t, ast.NullValue, v.Children[2].Value.Kind)
	})

	t.Run("go maps print in sorted key order", func(t *testing.T) {
		v, err := directive.Value(map[string]interface{}{"b": 2, "a": 1, "c": 3})
		require.NoError(t, err)
		assert.Equal(t, ast.ObjectValue, v.Kind)
		require.Len(t, v.Children, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{v.Children[0].Name, v.Children[1].Name, v.Children[2].Name})

		v, err = directive.Value(map[string]int{"y": 1, "x": 2})
		require.NoError(t, err)
		assert.Equal(t, "x", v.Children[0].Name)
	})

	t.Run("map slices keep their order", func(t *testing.T) {
		v, err := directive.Value(yaml.MapSlice{{Key: "b", Value: 2}, {Key: "a", Value: yaml.MapSlice{{Key: "z", Value: true}}}})
		require.NoError(t, err)
		require.Len(t, v.Children, 2)
		assert.Equal(t, "b", v.Children[0].Name)
		assert.Equal(t, "a", v.Children[1].Name)
		assert.Equal(t, ast.ObjectValue, v.Children[1].Value.Kind)
		assert.Equal(t, "z", v.Children[1].Value.Children[0].Name)
	})

	t.Run("unsupported values", func(t *testing.T) {
		for _, in := range []interface{}{
			make(chan int),
			func() {},
			struct{}{},
			math.NaN(),
			math.Inf(1),
			map[int]string{1: "a"},
			map[interface{}]interface{}{1: "a"},
			map[string]interface{}{"not valid": 1},
			yaml.MapSlice{{Key: 1, Value: "a"}},
			directive.Enum("true"),
			directive.Enum("bad-enum"),
			[]interface{}{1, make(chan int)},
		} {
			_, err := directive.Value(in)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument), "%T", in)
		}
	})
}
