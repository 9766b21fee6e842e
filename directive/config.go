package directive

import (
	"sort"

	"github.com/shyptr/schemadirectives/errors"
	"gopkg.in/yaml.v2"
)

// Parse reads a directives configuration: a mapping from directive name to
// that directive's arguments, where the arguments are themselves a mapping or
// nil. A nil configuration yields no usages.
//
// Accepted mappings are yaml.MapSlice, map[string]interface{},
// map[interface{}]interface{} and []Usage. yaml.MapSlice and []Usage keep
// their order; Go maps are read in sorted key order.
func Parse(cfg interface{}) ([]Usage, error) {
	var usages []Usage
	err := eachEntry(cfg, "schema directives", func(name, arguments interface{}) error {
		usage, err := parseEntry(name, arguments)
		if err != nil {
			return err
		}
		usages = append(usages, usage)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return usages, nil
}

// Apply parses cfg and attaches every usage to h. Either all usages are
// attached or, on error, none are.
func Apply(h Holder, cfg interface{}) error {
	usages, err := Parse(cfg)
	if err != nil {
		return err
	}
	for _, usage := range usages {
		if err := h.AddDirective(usage.Name, usage.Arguments...); err != nil {
			return err
		}
	}
	return nil
}

// AddConfig attaches one directive described by loosely typed input, such as
// decoded YAML or JSON. name must be a string and arguments nil or a mapping.
func AddConfig(h Holder, name, arguments interface{}) error {
	usage, err := parseEntry(name, arguments)
	if err != nil {
		return err
	}
	return h.AddDirective(usage.Name, usage.Arguments...)
}

func parseEntry(name, arguments interface{}) (Usage, error) {
	directiveName, ok := name.(string)
	if !ok {
		return Usage{}, errors.InvalidArgument("directive name must be a string, got %T", name)
	}
	var args []Argument
	err := eachEntry(arguments, "directive arguments", func(key, value interface{}) error {
		argName, ok := key.(string)
		if !ok {
			return errors.InvalidArgument("directive @%s argument name must be a string, got %T", directiveName, key)
		}
		args = append(args, Arg(argName, value))
		return nil
	})
	if err != nil {
		return Usage{}, err
	}
	return NewUsage(directiveName, args...)
}

// eachEntry walks the entries of a mapping in order. nil is an empty mapping.
func eachEntry(m interface{}, what string, fn func(key, value interface{}) error) error {
	switch m := m.(type) {
	case nil:
		return nil
	case []Usage:
		for _, u := range m {
			var args yaml.MapSlice
			for _, arg := range u.Arguments {
				args = append(args, yaml.MapItem{Key: arg.Name, Value: arg.Value})
			}
			if err := fn(u.Name, args); err != nil {
				return err
			}
		}
	case yaml.MapSlice:
		for _, item := range m {
			if err := fn(item.Key, item.Value); err != nil {
				return err
			}
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := fn(key, m[key]); err != nil {
				return err
			}
		}
	case map[interface{}]interface{}:
		keys := make([]interface{}, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			return sortKey(keys[i]) < sortKey(keys[j])
		})
		for _, key := range keys {
			if err := fn(key, m[key]); err != nil {
				return err
			}
		}
	default:
		return errors.InvalidArgument("%s must be a mapping, got %T", what, m)
	}
	return nil
}

func sortKey(key interface{}) string {
	if s, ok := key.(string); ok {
		return s
	}
	return ""
}
