package directive

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"gopkg.in/yaml.v2"
)

// Enum is an enum literal, printed without quotes.
type Enum string

// Value converts a Go value into the GraphQL literal it prints as.
//
//	nil                  null
//	string               "quoted"
//	bool                 true / false
//	ints, uints          123
//	floats               1.5
//	Enum                 VALUE
//	slices, arrays       [..]
//	maps, yaml.MapSlice  {..}
//
// Values that are already *ast.Value or ast.Value are copied verbatim.
// Go maps are printed in sorted key order; yaml.MapSlice keeps its own.
func Value(v interface{}) (*ast.Value, error) {
	switch v := v.(type) {
	case nil:
		return nullValue(), nil
	case *ast.Value:
		if v == nil {
			return nullValue(), nil
		}
		return copyValue(v), nil
	case ast.Value:
		return copyValue(&v), nil
	case Enum:
		if !NameRegExp.MatchString(string(v)) || v == "true" || v == "false" || v == "null" {
			return nil, errors.InvalidArgument("%q is not a valid enum value", string(v))
		}
		return &ast.Value{Kind: ast.EnumValue, Raw: string(v)}, nil
	case string:
		return &ast.Value{Kind: ast.StringValue, Raw: v}, nil
	case bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(v)}, nil
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return &ast.Value{Kind: ast.IntValue, Raw: v.String()}, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, errors.InvalidArgument("%q is not a number", v.String())
		}
		return floatValue(f)
	case yaml.MapSlice:
		return mapSliceValue(v)
	case []interface{}:
		return listValue(len(v), func(i int) interface{} { return v[i] })
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return objectValue(keys, func(key string) interface{} { return v[key] })
	case map[interface{}]interface{}:
		keys := make([]string, 0, len(v))
		values := make(map[string]interface{}, len(v))
		for key, value := range v {
			name, ok := key.(string)
			if !ok {
				return nil, errors.InvalidArgument("object field name must be a string, got %T", key)
			}
			keys = append(keys, name)
			values[name] = value
		}
		sort.Strings(keys)
		return objectValue(keys, func(key string) interface{} { return values[key] })
	}
	return reflectValue(reflect.ValueOf(v))
}

func reflectValue(rv reflect.Value) (*ast.Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(rv.Int(), 10)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatUint(rv.Uint(), 10)}, nil
	case reflect.Float32, reflect.Float64:
		return floatValue(rv.Float())
	case reflect.String:
		return &ast.Value{Kind: ast.StringValue, Raw: rv.String()}, nil
	case reflect.Bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(rv.Bool())}, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nullValue(), nil
		}
		return Value(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nullValue(), nil
		}
		return listValue(rv.Len(), func(i int) interface{} { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, errors.InvalidArgument("object field name must be a string, got %s", rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return objectValue(keys, func(key string) interface{} {
			return rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface()
		})
	case reflect.Invalid:
		return nullValue(), nil
	}
	return nil, errors.InvalidArgument("unsupported literal type %s", rv.Type())
}

// copyValue copies v and its children so the caller keeps no alias into it.
func copyValue(v *ast.Value) *ast.Value {
	if v == nil {
		return nil
	}
	c := *v
	if v.Children != nil {
		c.Children = make(ast.ChildValueList, len(v.Children))
		for i, child := range v.Children {
			if child == nil {
				continue
			}
			cc := *child
			cc.Value = copyValue(child.Value)
			c.Children[i] = &cc
		}
	}
	return &c
}

func nullValue() *ast.Value {
	return &ast.Value{Kind: ast.NullValue, Raw: "null"}
}

func floatValue(f float64) (*ast.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.InvalidArgument("%v is not a valid float literal", f)
	}
	raw := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(raw, ".eE") {
		raw += ".0"
	}
	return &ast.Value{Kind: ast.FloatValue, Raw: raw}, nil
}

func listValue(n int, elem func(int) interface{}) (*ast.Value, error) {
	list := &ast.Value{Kind: ast.ListValue}
	for i := 0; i < n; i++ {
		child, err := Value(elem(i))
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, &ast.ChildValue{Value: child})
	}
	return list, nil
}

func objectValue(keys []string, field func(string) interface{}) (*ast.Value, error) {
	object := &ast.Value{Kind: ast.ObjectValue}
	for _, key := range keys {
		if !NameRegExp.MatchString(key) {
			return nil, errors.InvalidArgument("object field name must match %s but %q does not", NameRegExp, key)
		}
		child, err := Value(field(key))
		if err != nil {
			return nil, err
		}
		object.Children = append(object.Children, &ast.ChildValue{Name: key, Value: child})
	}
	return object, nil
}

func mapSliceValue(items yaml.MapSlice) (*ast.Value, error) {
	keys := make([]string, 0, len(items))
	values := make(map[string]interface{}, len(items))
	for _, item := range items {
		key, ok := item.Key.(string)
		if !ok {
			return nil, errors.InvalidArgument("object field name must be a string, got %T", item.Key)
		}
		keys = append(keys, key)
		values[key] = item.Value
	}
	return objectValue(keys, func(key string) interface{} { return values[key] })
}
