package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gqlc/graphql-markdown/introspection"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// defaultDeprecationReason is the reason @deprecated carries when none is given.
const defaultDeprecationReason = "No longer supported"

// fromSDL builds the introspection schema of a GraphQL SDL document.
func fromSDL(name, src string) (*introspection.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{
		Name:  name,
		Input: src,
	})
	if err != nil {
		return nil, fmt.Errorf("graphql-markdown: invalid schema %s: %w", name, err)
	}

	return newConverter(schema).convert(), nil
}

// converter produces the introspection result a server would
// return for an *ast.Schema.
type converter struct {
	schema *ast.Schema
}

func newConverter(schema *ast.Schema) *converter { return &converter{schema: schema} }

func (c *converter) convert() *introspection.Schema {
	s := &introspection.Schema{
		QueryType:        typeName(c.schema.Query),
		MutationType:     typeName(c.schema.Mutation),
		SubscriptionType: typeName(c.schema.Subscription),
		Types:            make([]*introspection.Type, 0, len(c.schema.Types)),
	}

	names := make([]string, 0, len(c.schema.Types))
	for name := range c.schema.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s.Types = append(s.Types, c.fullType(c.schema.Types[name]))
	}
	return s
}

func typeName(def *ast.Definition) *introspection.TypeName {
	if def == nil {
		return nil
	}
	return &introspection.TypeName{Name: def.Name}
}

func (c *converter) fullType(def *ast.Definition) *introspection.Type {
	t := &introspection.Type{
		Kind:        introspection.ParseKind(string(def.Kind)),
		Name:        def.Name,
		Description: def.Description,
	}

	switch def.Kind {
	case ast.Object, ast.Interface:
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			t.Fields = append(t.Fields, c.field(f))
		}
		for _, name := range def.Interfaces {
			t.Interfaces = append(t.Interfaces, c.named(name))
		}
		if def.Kind == ast.Interface {
			t.PossibleTypes = c.implementations(def)
		}
	case ast.InputObject:
		for _, f := range def.Fields {
			t.InputFields = append(t.InputFields, c.inputValue(f.Name, f.Description, f.Type, f.DefaultValue))
		}
	case ast.Union:
		for _, name := range def.Types {
			t.PossibleTypes = append(t.PossibleTypes, c.named(name))
		}
	case ast.Enum:
		for _, v := range def.EnumValues {
			reason, deprecated := deprecation(v.Directives)
			t.EnumValues = append(t.EnumValues, &introspection.EnumValue{
				Name:              v.Name,
				Description:       v.Description,
				IsDeprecated:      deprecated,
				DeprecationReason: reason,
			})
		}
	}
	return t
}

func (c *converter) implementations(def *ast.Definition) []*introspection.Type {
	impls := c.schema.GetPossibleTypes(def)
	names := make([]string, 0, len(impls))
	for _, impl := range impls {
		names = append(names, impl.Name)
	}
	sort.Strings(names)

	types := make([]*introspection.Type, 0, len(names))
	for _, name := range names {
		types = append(types, c.named(name))
	}
	return types
}

func (c *converter) field(f *ast.FieldDefinition) *introspection.Field {
	reason, deprecated := deprecation(f.Directives)
	field := &introspection.Field{
		Name:              f.Name,
		Description:       f.Description,
		Type:              c.typeRef(f.Type),
		IsDeprecated:      deprecated,
		DeprecationReason: reason,
	}
	for _, a := range f.Arguments {
		field.Args = append(field.Args, c.inputValue(a.Name, a.Description, a.Type, a.DefaultValue))
	}
	return field
}

func (c *converter) inputValue(name, descr string, typ *ast.Type, def *ast.Value) *introspection.InputValue {
	v := &introspection.InputValue{
		Name:        name,
		Description: descr,
		Type:        c.typeRef(typ),
	}
	if def != nil {
		s := def.String()
		v.DefaultValue = &s
	}
	return v
}

// typeRef unwinds an AST type into its wrapper chain, outermost first.
func (c *converter) typeRef(t *ast.Type) *introspection.Type {
	if t == nil {
		return nil
	}

	var ref *introspection.Type
	if t.Elem != nil {
		ref = introspection.ListOf(c.typeRef(t.Elem))
	} else {
		ref = c.named(t.NamedType)
	}

	if t.NonNull {
		return introspection.NonNullOf(ref)
	}
	return ref
}

func (c *converter) named(name string) *introspection.Type {
	kind := introspection.KindUnknown
	if def, ok := c.schema.Types[name]; ok {
		kind = introspection.ParseKind(string(def.Kind))
	}
	return introspection.NamedType(kind, name)
}

// deprecation reports whether the directives deprecate their
// element, and why.
func deprecation(directives ast.DirectiveList) (string, bool) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", false
	}

	arg := d.Arguments.ForName("reason")
	if arg == nil || arg.Value == nil {
		return defaultDeprecationReason, true
	}
	return arg.Value.Raw, true
}
