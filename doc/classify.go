package doc

import (
	"sort"
	"strings"

	"github.com/gqlc/graphql-markdown/introspection"
)

// introspectionPrefix marks the schema's own meta types, e.g. __Type.
const introspectionPrefix = "__"

// Categories partitions the documented types of a schema.
//
// Every list is sorted by name. The query and mutation roots are never
// part of Objects, even though they are OBJECT types.
type Categories struct {
	Query    *introspection.Type
	Mutation *introspection.Type

	Objects    []*introspection.Type
	Inputs     []*introspection.Type
	Enums      []*introspection.Type
	Scalars    []*introspection.Type
	Interfaces []*introspection.Type
	Unions     []*introspection.Type
}

// Classify sorts the named types of s into documentation categories.
// Meta types and types of an unrecognized kind are left out.
func Classify(s *introspection.Schema) *Categories {
	c := new(Categories)

	types := make([]*introspection.Type, 0, len(s.Types))
	for _, t := range s.Types {
		if t == nil || strings.HasPrefix(t.Name, introspectionPrefix) {
			continue
		}
		types = append(types, t)
	}

	c.Query = findRoot(types, s.QueryType)
	c.Mutation = findRoot(types, s.MutationType)

	for _, t := range types {
		switch t.Kind {
		case introspection.Object:
			if t == c.Query || t == c.Mutation {
				continue
			}
			c.Objects = append(c.Objects, t)
		case introspection.InputObject:
			c.Inputs = append(c.Inputs, t)
		case introspection.Enum:
			c.Enums = append(c.Enums, t)
		case introspection.Scalar:
			c.Scalars = append(c.Scalars, t)
		case introspection.Interface:
			c.Interfaces = append(c.Interfaces, t)
		case introspection.Union:
			c.Unions = append(c.Unions, t)
		case introspection.List, introspection.NonNull, introspection.KindUnknown:
		}
	}

	for _, l := range []typeSlice{c.Objects, c.Inputs, c.Enums, c.Scalars, c.Interfaces, c.Unions} {
		sort.Stable(l)
	}
	return c
}

func findRoot(types []*introspection.Type, root *introspection.TypeName) *introspection.Type {
	if root == nil {
		return nil
	}
	for _, t := range types {
		if t.Name == root.Name {
			return t
		}
	}
	return nil
}

// Len returns the number of documented types.
func (c *Categories) Len() (n int) {
	if c.Query != nil {
		n++
	}
	if c.Mutation != nil {
		n++
	}
	return n + len(c.Objects) + len(c.Inputs) + len(c.Enums) + len(c.Scalars) + len(c.Interfaces) + len(c.Unions)
}

// typeSlice orders types by name, comparing bytes so the order never
// depends on locale.
type typeSlice []*introspection.Type

func (s typeSlice) Len() int           { return len(s) }
func (s typeSlice) Less(i, j int) bool { return s[i].Name < s[j].Name }
func (s typeSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
