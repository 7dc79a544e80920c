package doc

import (
	"strings"

	"github.com/gqlc/graphql-markdown/introspection"
)

// UnknownTypeFunc resolves the link for a type that is referenced by the
// schema but not documented by it. Returning false renders the plain name.
type UnknownTypeFunc func(t *introspection.Type) (string, bool)

// linker resolves the href of a named type.
type linker struct {
	// pages maps a documented type name to the document describing it.
	pages map[string]string
	roots map[string]bool

	unknownFunc UnknownTypeFunc
	unknownURL  string
}

func newLinker(c *Categories, opts *Options) *linker {
	l := &linker{
		pages:       make(map[string]string, c.Len()),
		roots:       make(map[string]bool, 2),
		unknownFunc: opts.UnknownTypeFunc,
		unknownURL:  opts.UnknownTypeURL,
	}

	if c.Query != nil {
		l.pages[c.Query.Name] = QueryDoc
		l.roots[c.Query.Name] = true
	}
	if c.Mutation != nil {
		l.pages[c.Mutation.Name] = MutationDoc
		l.roots[c.Mutation.Name] = true
	}

	add := func(page string, types []*introspection.Type) {
		for _, t := range types {
			l.pages[t.Name] = page
		}
	}
	add(ObjectsDoc, c.Objects)
	add(InputsDoc, c.Inputs)
	add(EnumsDoc, c.Enums)
	add(ScalarsDoc, c.Scalars)
	add(InterfacesDoc, c.Interfaces)
	add(UnionsDoc, c.Unions)

	return l
}

// anchor returns the in-document anchor of a type name.
func anchor(name string) string { return "#" + strings.ToLower(name) }

// link returns the href for the named type t.
//
// Documented types link to their category document. The query and mutation
// roots have a document of their own, so they link to it without an anchor.
// Any other type is resolved by the UnknownTypeFunc if one is configured,
// else by appending its anchor to the UnknownTypeURL, else not at all.
func (l *linker) link(t *introspection.Type) (string, bool) {
	if page, ok := l.pages[t.Name]; ok {
		if l.roots[t.Name] {
			return page, true
		}
		return page + anchor(t.Name), true
	}

	switch {
	case l.unknownFunc != nil:
		return l.unknownFunc(t)
	case l.unknownURL != "":
		return l.unknownURL + anchor(t.Name), true
	}
	return "", false
}
