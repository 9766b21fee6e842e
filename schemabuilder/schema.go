package schemabuilder

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shyptr/schemadirectives/directive"
	"github.com/shyptr/schemadirectives/errors"
	"github.com/vektah/gqlparser/v2/ast"
)

// Schema is a registry of schema members. Members carry their own directive
// lists; the side table holds directives attached by coordinate.
type Schema struct {
	objects      map[string]*Object
	enums        map[string]*Enum
	inputObjects map[string]*InputObject
	interfaces   map[string]*Interface
	unions       map[string]*Union
	scalars      map[string]*Scalar
	directives   map[string]*DirectiveDefinition
	roots        map[ast.Operation]string
	table        *directive.Table

	schemaDirectives directive.List
}

// NewSchema creates a new schema.
func NewSchema() *Schema {
	return &Schema{
		objects:      map[string]*Object{},
		enums:        map[string]*Enum{},
		inputObjects: map[string]*InputObject{},
		interfaces:   map[string]*Interface{},
		unions:       map[string]*Union{},
		scalars:      map[string]*Scalar{},
		directives:   map[string]*DirectiveDefinition{},
		roots:        map[ast.Operation]string{},
		table:        directive.NewTable(),
	}
}

// SchemaDirectives holds the directives of the schema definition itself, as
// in `schema @meta { query: Query }`.
func (s *Schema) SchemaDirectives() *directive.List {
	return &s.schemaDirectives
}

var NameRegExp = directive.NameRegExp

var builtinScalars = map[string]bool{"Int": true, "Float": true, "String": true, "Boolean": true, "ID": true}

func checkName(kind, name string) error {
	if name == "" {
		return errors.New("%s must be named", kind)
	}
	if !NameRegExp.MatchString(name) {
		return errors.New(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "%s" does not.`, name)
	}
	if strings.HasPrefix(name, "__") {
		return errors.New(`Name "%s" must not begin with "__", which is reserved by GraphQL introspection.`, name)
	}
	return nil
}

// register checks that name is free for a type of the given kind. It returns
// true when a type of the same kind already owns the name.
func (s *Schema) register(kind, name string) (bool, error) {
	if err := checkName(kind, name); err != nil {
		return false, err
	}
	if builtinScalars[name] {
		return false, errors.New("%s is a built-in scalar", name)
	}
	if t := s.Type(name); t != nil {
		if kindOf(t) != kind {
			return false, errors.New("%s is already registered as %s", name, kindOf(t))
		}
		return true, nil
	}
	return false, nil
}

func kindOf(t NamedType) string {
	switch t.(type) {
	case *Object:
		return "object"
	case *Interface:
		return "interface"
	case *InputObject:
		return "input object"
	case *Union:
		return "union"
	case *Enum:
		return "enum"
	default:
		return "scalar"
	}
}

func (o *options) describe(desc *string) {
	if o.description != nil {
		*desc = *o.description
	}
}

// Object registers an object type. Registering an existing object returns it
// after applying opts to it, so types can be declared in several steps.
func (s *Schema) Object(name string, opts ...Option) (*Object, error) {
	exists, err := s.register("object", name)
	if err != nil {
		return nil, err
	}
	object := s.objects[name]
	if !exists {
		object = &Object{Name: name}
	}
	o := newOptions(opts)
	if err := checkTypes(o.interfaces); err != nil {
		return nil, errors.Wrap(err, "object %s", name)
	}
	if err := o.attach(object); err != nil {
		return nil, err
	}
	o.describe(&object.Desc)
	object.Interfaces = appendTypes(object.Interfaces, o.interfaces)
	s.objects[name] = object
	return object, nil
}

// Interface registers an interface type.
func (s *Schema) Interface(name string, opts ...Option) (*Interface, error) {
	exists, err := s.register("interface", name)
	if err != nil {
		return nil, err
	}
	iface := s.interfaces[name]
	if !exists {
		iface = &Interface{Name: name}
	}
	o := newOptions(opts)
	if err := checkTypes(o.interfaces); err != nil {
		return nil, errors.Wrap(err, "interface %s", name)
	}
	if err := o.attach(iface); err != nil {
		return nil, err
	}
	o.describe(&iface.Desc)
	iface.Interfaces = appendTypes(iface.Interfaces, o.interfaces)
	s.interfaces[name] = iface
	return iface, nil
}

// InputObject registers an input object type which can be passed as an argument.
func (s *Schema) InputObject(name string, opts ...Option) (*InputObject, error) {
	exists, err := s.register("input object", name)
	if err != nil {
		return nil, err
	}
	input := s.inputObjects[name]
	if !exists {
		input = &InputObject{Name: name}
	}
	o := newOptions(opts)
	if err := o.attach(input); err != nil {
		return nil, err
	}
	o.describe(&input.Desc)
	s.inputObjects[name] = input
	return input, nil
}

// Union registers a union. Member types are given with PossibleTypes.
func (s *Schema) Union(name string, opts ...Option) (*Union, error) {
	exists, err := s.register("union", name)
	if err != nil {
		return nil, err
	}
	union := s.unions[name]
	if !exists {
		union = &Union{Name: name}
	}
	o := newOptions(opts)
	if err := checkTypes(o.possibleTypes); err != nil {
		return nil, errors.Wrap(err, "union %s", name)
	}
	if err := o.attach(union); err != nil {
		return nil, err
	}
	o.describe(&union.Desc)
	union.Types = appendTypes(union.Types, o.possibleTypes)
	s.unions[name] = union
	return union, nil
}

// Enum registers an enum. Values are added with Enum.Value.
func (s *Schema) Enum(name string, opts ...Option) (*Enum, error) {
	exists, err := s.register("enum", name)
	if err != nil {
		return nil, err
	}
	enum := s.enums[name]
	if !exists {
		enum = &Enum{Name: name}
	}
	o := newOptions(opts)
	if err := o.attach(enum); err != nil {
		return nil, err
	}
	o.describe(&enum.Desc)
	s.enums[name] = enum
	return enum, nil
}

// Scalar is used to register custom scalars.
func (s *Schema) Scalar(name string, opts ...Option) (*Scalar, error) {
	exists, err := s.register("scalar", name)
	if err != nil {
		return nil, err
	}
	scalar := s.scalars[name]
	if !exists {
		scalar = &Scalar{Name: name}
	}
	o := newOptions(opts)
	if err := o.attach(scalar); err != nil {
		return nil, err
	}
	o.describe(&scalar.Desc)
	s.scalars[name] = scalar
	return scalar, nil
}

// Directive defines a directive for the schema.
//
// use as :
//
//	d, err := s.Directive("first", []ast.DirectiveLocation{ast.LocationObject}, schemabuilder.Description("first"))
//	d.Argument("arg", schemabuilder.NonNullOf(schemabuilder.String))
func (s *Schema) Directive(name string, locs []ast.DirectiveLocation, opts ...Option) (*DirectiveDefinition, error) {
	if name == "" {
		return nil, errors.New("Directive must be named.")
	}
	if !NameRegExp.MatchString(name) {
		return nil, errors.New(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "%s" does not.`, name)
	}
	if len(locs) == 0 {
		return nil, errors.New("Must provide locations for directive.")
	}
	for _, loc := range locs {
		if !validLocations[loc] {
			return nil, errors.New("directive @%s has invalid location %s", name, loc)
		}
	}
	if _, ok := s.directives[name]; ok {
		return nil, errors.New("duplicate directive @%s", name)
	}
	o := newOptions(opts)
	if len(o.directives) > 0 {
		return nil, errors.New("directive definition @%s cannot carry directives", name)
	}
	d := &DirectiveDefinition{
		Name:       name,
		Locations:  append([]ast.DirectiveLocation(nil), locs...),
		Repeatable: o.repeatable,
	}
	o.describe(&d.Desc)
	s.directives[name] = d
	return d, nil
}

var validLocations = map[ast.DirectiveLocation]bool{
	ast.LocationQuery:                true,
	ast.LocationMutation:             true,
	ast.LocationSubscription:         true,
	ast.LocationField:                true,
	ast.LocationFragmentDefinition:   true,
	ast.LocationFragmentSpread:       true,
	ast.LocationInlineFragment:       true,
	ast.LocationVariableDefinition:   true,
	ast.LocationSchema:               true,
	ast.LocationScalar:               true,
	ast.LocationObject:               true,
	ast.LocationFieldDefinition:      true,
	ast.LocationArgumentDefinition:   true,
	ast.LocationInterface:            true,
	ast.LocationUnion:                true,
	ast.LocationEnum:                 true,
	ast.LocationEnumValue:            true,
	ast.LocationInputObject:          true,
	ast.LocationInputFieldDefinition: true,
}

func checkTypes(types []Type) error {
	for _, t := range types {
		if err := checkType(t); err != nil {
			return err
		}
	}
	return nil
}

// appendTypes adds the types of add not already named in types.
func appendTypes(types, add []Type) []Type {
	for _, t := range add {
		seen := false
		for _, existing := range types {
			if existing.String() == t.String() {
				seen = true
				break
			}
		}
		if !seen {
			types = append(types, t)
		}
	}
	return types
}

// Query returns the query root, registering an object named Query if no
// root was set. It panics if Query is already registered as another kind.
func (s *Schema) Query() *Object {
	return s.mustRoot(ast.Query, "Query")
}

// Mutation returns the mutation root object.
func (s *Schema) Mutation() *Object {
	return s.mustRoot(ast.Mutation, "Mutation")
}

// Subscription returns the subscription root object.
func (s *Schema) Subscription() *Object {
	return s.mustRoot(ast.Subscription, "Subscription")
}

func (s *Schema) mustRoot(op ast.Operation, name string) *Object {
	if root := s.Root(op); root != nil {
		return root
	}
	object, err := s.Object(name)
	if err != nil {
		panic(err)
	}
	s.roots[op] = name
	return object
}

// SetRoot makes object the root type of op. The object is registered if
// needed.
func (s *Schema) SetRoot(op ast.Operation, object *Object) error {
	if object == nil {
		delete(s.roots, op)
		return nil
	}
	if current, ok := s.objects[object.Name]; !ok {
		if _, err := s.register("object", object.Name); err != nil {
			return err
		}
		s.objects[object.Name] = object
	} else if current != object {
		return errors.New("another object named %s is already registered", object.Name)
	}
	s.roots[op] = object.Name
	return nil
}

// Root returns the root object of op, or nil when op has no root.
func (s *Schema) Root(op ast.Operation) *Object {
	name, ok := s.roots[op]
	if !ok {
		return nil
	}
	return s.objects[name]
}

// DirectiveTable returns the side table of directives attached by coordinate.
func (s *Schema) DirectiveTable() *directive.Table {
	return s.table
}

// AddDirective attaches a directive to the member at coordinate through the
// side table. The coordinate must resolve.
func (s *Schema) AddDirective(coordinate, name string, args ...directive.Argument) error {
	if _, err := s.Member(coordinate); err != nil {
		return err
	}
	return s.table.AddDirective(coordinate, name, args...)
}

// Type returns the named type or nil.
func (s *Schema) Type(name string) NamedType {
	if t, ok := s.objects[name]; ok {
		return t
	}
	if t, ok := s.interfaces[name]; ok {
		return t
	}
	if t, ok := s.inputObjects[name]; ok {
		return t
	}
	if t, ok := s.unions[name]; ok {
		return t
	}
	if t, ok := s.enums[name]; ok {
		return t
	}
	if t, ok := s.scalars[name]; ok {
		return t
	}
	return nil
}

// Types returns every registered type sorted by name.
func (s *Schema) Types() []NamedType {
	var types []NamedType
	for _, t := range s.objects {
		types = append(types, t)
	}
	for _, t := range s.interfaces {
		types = append(types, t)
	}
	for _, t := range s.inputObjects {
		types = append(types, t)
	}
	for _, t := range s.unions {
		types = append(types, t)
	}
	for _, t := range s.enums {
		types = append(types, t)
	}
	for _, t := range s.scalars {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].TypeName() < types[j].TypeName()
	})
	return types
}

// DirectiveDefinitions returns the declared directives sorted by name.
func (s *Schema) DirectiveDefinitions() []*DirectiveDefinition {
	defs := make([]*DirectiveDefinition, 0, len(s.directives))
	for _, d := range s.directives {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

func (s *Schema) GetObject(name string) *Object                 { return s.objects[name] }
func (s *Schema) GetInterface(name string) *Interface           { return s.interfaces[name] }
func (s *Schema) GetInputObject(name string) *InputObject       { return s.inputObjects[name] }
func (s *Schema) GetUnion(name string) *Union                   { return s.unions[name] }
func (s *Schema) GetEnum(name string) *Enum                     { return s.enums[name] }
func (s *Schema) GetScalar(name string) *Scalar                 { return s.scalars[name] }
func (s *Schema) GetDirective(name string) *DirectiveDefinition { return s.directives[name] }

var coordinateRegExp = regexp.MustCompile(`^(@?)([_a-zA-Z][_a-zA-Z0-9]*)(?:\.([_a-zA-Z][_a-zA-Z0-9]*))?(?:\(([_a-zA-Z][_a-zA-Z0-9]*):\))?$`)

// Member resolves a schema coordinate:
//
//	Type            a named type
//	Type.field      a field, input field or enum value
//	Type.field(a:)  a field argument
//	@dir(a:)        a directive definition argument
func (s *Schema) Member(coordinate string) (Member, error) {
	m := coordinateRegExp.FindStringSubmatch(coordinate)
	if m == nil {
		return nil, errors.InvalidArgument("invalid schema coordinate %q", coordinate)
	}
	isDirective, typeName, memberName, argName := m[1] != "", m[2], m[3], m[4]
	notFound := func() (Member, error) {
		return nil, errors.InvalidArgument("schema coordinate %q does not resolve", coordinate)
	}

	if isDirective {
		d := s.directives[typeName]
		if d == nil || memberName != "" || argName == "" {
			return notFound()
		}
		if arg := d.GetArgument(argName); arg != nil {
			return arg, nil
		}
		return notFound()
	}

	t := s.Type(typeName)
	if t == nil {
		return notFound()
	}
	if memberName == "" {
		if argName != "" {
			return notFound()
		}
		return t, nil
	}

	var field *Field
	switch t := t.(type) {
	case *Object:
		field = t.GetField(memberName)
	case *Interface:
		field = t.GetField(memberName)
	case *InputObject:
		if f := t.GetField(memberName); f != nil && argName == "" {
			return f, nil
		}
		return notFound()
	case *Enum:
		if v := t.GetValue(memberName); v != nil && argName == "" {
			return v, nil
		}
		return notFound()
	}
	if field == nil {
		return notFound()
	}
	if argName == "" {
		return field, nil
	}
	if arg := field.GetArgument(argName); arg != nil {
		return arg, nil
	}
	return notFound()
}
