// Package doc contains a Markdown documentation generator for introspected GraphQL schemas.
//
// Render turns a schema into one document per category of type, plus a
// table of contents linking them together. It is a pure function of the
// schema and options. Generator persists the documents through a
// gen.GeneratorContext.
package doc

import (
	"strings"

	"github.com/gqlc/graphql-markdown/introspection"
)

// Names of the documents Render produces.
const (
	TableOfContentsDoc = "toc"
	QueryDoc           = "query"
	MutationDoc        = "mutation"
	ObjectsDoc         = "objects"
	InputsDoc          = "inputs"
	EnumsDoc           = "enums"
	ScalarsDoc         = "scalars"
	InterfacesDoc      = "interfaces"
	UnionsDoc          = "unions"
)

// DocumentOrder is the order in which documents read as one output.
var DocumentOrder = []string{
	TableOfContentsDoc,
	QueryDoc,
	MutationDoc,
	ObjectsDoc,
	InputsDoc,
	EnumsDoc,
	ScalarsDoc,
	InterfacesDoc,
	UnionsDoc,
}

// Documents maps a document name to its Markdown source. Only
// non-empty categories have a document.
type Documents map[string]string

// Names returns the names of the documents present, in DocumentOrder.
func (d Documents) Names() []string {
	names := make([]string, 0, len(d))
	for _, name := range DocumentOrder {
		if _, ok := d[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Render renders the documentation for s. A nil opts uses the defaults.
//
// The schema is validated first; a malformed schema yields an error
// matching introspection.ErrMalformed and no documents.
func Render(s *introspection.Schema, opts *Options) (Documents, error) {
	if opts == nil {
		opts = new(Options)
	}
	if err := introspection.Validate(s); err != nil {
		return nil, err
	}

	c := Classify(s)
	r := &renderer{
		c:     c,
		l:     newLinker(c, opts),
		index: make(map[string]*introspection.Type, len(s.Types)),
		level: opts.headingLevel(),
	}
	for _, t := range s.Types {
		r.index[t.Name] = t
	}

	docs := make(Documents, len(DocumentOrder))
	if !opts.SkipTableOfContents && c.Len() > 0 {
		docs[TableOfContentsDoc] = r.toc()
	}

	sections := []struct {
		name   string
		render func() (string, error)
	}{
		{QueryDoc, r.query},
		{MutationDoc, r.mutation},
		{ObjectsDoc, r.objects},
		{InputsDoc, r.inputs},
		{EnumsDoc, r.enums},
		{ScalarsDoc, r.scalars},
		{InterfacesDoc, r.interfaces},
		{UnionsDoc, r.unions},
	}
	for _, sec := range sections {
		out, err := sec.render()
		if err != nil {
			return nil, err
		}
		if out != "" {
			docs[sec.name] = out
		}
	}

	r.frame(docs, opts)
	return docs, nil
}

// frame opens the output with the title and prologue, and closes it
// with the epilogue.
func (r *renderer) frame(docs Documents, opts *Options) {
	names := docs.Names()

	var head strings.Builder
	if title, ok := opts.title(); ok {
		p := new(printer)
		p.heading(r.level, title)
		p.P()
		head.WriteString(p.String())
	}
	if opts.Prologue != "" {
		head.WriteString(opts.Prologue)
		head.WriteString("\n\n")
	}

	if len(names) == 0 {
		if head.Len() == 0 && opts.Epilogue == "" {
			return
		}
		// Nothing is documented; the frame alone forms the table of contents.
		names = []string{TableOfContentsDoc}
	}

	first, last := names[0], names[len(names)-1]
	docs[first] = head.String() + docs[first]
	if opts.Epilogue != "" {
		docs[last] += "\n" + opts.Epilogue + "\n"
	}
}

type renderer struct {
	c     *Categories
	l     *linker
	index map[string]*introspection.Type
	level int
}

func (r *renderer) newPrinter() *printer { return &printer{l: r.l} }

func (r *renderer) query() (string, error) {
	return r.root(r.c.Query, "Query", queryLabel)
}

func (r *renderer) mutation() (string, error) {
	return r.root(r.c.Mutation, "Mutation", mutationLabel)
}

func (r *renderer) root(t *introspection.Type, title, label string) (string, error) {
	if t == nil {
		return "", nil
	}

	p := r.newPrinter()
	if t.Name != title {
		title += " (" + t.Name + ")"
	}
	p.heading(r.level, title)
	p.P()
	p.description(t.Description)

	for _, f := range t.Fields {
		if err := p.printField(f, label, r.level+1); err != nil {
			return "", err
		}
	}
	return p.String(), nil
}

func (r *renderer) objects() (string, error) {
	return r.fielded(r.c.Objects, "Objects", objectLabel)
}

func (r *renderer) interfaces() (string, error) {
	return r.fielded(r.c.Interfaces, "Interfaces", interfaceLabel)
}

func (r *renderer) inputs() (string, error) {
	return r.fielded(r.c.Inputs, "Inputs", inputLabel)
}

// fielded renders a category whose types are made of fields.
func (r *renderer) fielded(types []*introspection.Type, title, label string) (string, error) {
	if len(types) == 0 {
		return "", nil
	}

	p := r.newPrinter()
	r.sectionHeader(p, title)
	for _, t := range types {
		p.P("<span>")
		p.P()
		r.typeHeader(p, t)

		var err error
		if t.Kind == introspection.InputObject {
			for _, f := range t.InputFields {
				if err = p.printInputField(f, r.level+2); err != nil {
					break
				}
			}
		} else {
			for _, f := range t.Fields {
				if err = p.printField(f, label, r.level+2); err != nil {
					break
				}
			}
		}
		if err != nil {
			return "", err
		}

		p.P("</span>")
		r.typeFooter(p)
	}
	return p.String(), nil
}

func (r *renderer) enums() (string, error) {
	if len(r.c.Enums) == 0 {
		return "", nil
	}

	p := r.newPrinter()
	r.sectionHeader(p, "Enums")
	for _, t := range r.c.Enums {
		r.typeHeader(p, t)

		p.P("<table>")
		p.P("<thead>")
		p.P("<th>Value</th>")
		p.P("<th>Description</th>")
		p.P("</thead>")
		p.P("<tbody>")
		for _, v := range t.EnumValues {
			p.P("<tr>")
			if v.IsDeprecated {
				p.P("<td><strong>", v.Name, "</strong> ⚠️</td>")
			} else {
				p.P("<td><strong>", v.Name, "</strong></td>")
			}

			if v.Description == "" && !v.IsDeprecated {
				p.P("<td></td>")
				p.P("</tr>")
				continue
			}
			p.P("<td>")
			p.description(v.Description)
			if v.IsDeprecated {
				p.P()
				p.deprecation(v.DeprecationReason)
			}
			p.P("</td>")
			p.P("</tr>")
		}
		p.P("</tbody>")
		p.P("</table>")
		r.typeFooter(p)
	}
	return p.String(), nil
}

func (r *renderer) scalars() (string, error) {
	if len(r.c.Scalars) == 0 {
		return "", nil
	}

	p := r.newPrinter()
	r.sectionHeader(p, "Scalars")
	for _, t := range r.c.Scalars {
		p.P("<div>")
		p.P()
		p.heading(r.level+1, t.Name)
		p.P()
		p.P("<label>scalar</label>")
		p.P()
		p.P("</div>")
		p.description(t.Description)
		r.typeFooter(p)
	}
	return p.String(), nil
}

func (r *renderer) unions() (string, error) {
	if len(r.c.Unions) == 0 {
		return "", nil
	}

	p := r.newPrinter()
	r.sectionHeader(p, "Unions")
	for _, t := range r.c.Unions {
		r.typeHeader(p, t)

		p.P("<table>")
		p.P("<thead>")
		p.P("<th>Type</th>")
		p.P("<th>Description</th>")
		p.P("</thead>")
		p.P("<tbody>")
		for _, m := range t.PossibleTypes {
			descr := m.Description
			if descr == "" {
				if member, ok := r.index[m.Name]; ok {
					descr = member.Description
				}
			}

			p.P("<tr>")
			p.WriteString("<td><strong>")
			if err := p.printType(m); err != nil {
				return "", err
			}
			p.P("</strong></td>")
			p.P("<td>", descr, "</td>")
			p.P("</tr>")
		}
		p.P("</tbody>")
		p.P("</table>")
		r.typeFooter(p)
	}
	return p.String(), nil
}

func (r *renderer) sectionHeader(p *printer, title string) {
	p.heading(r.level, title)
	p.P()
	p.P("---")
}

// typeHeader writes the heading of a single type, anchored by its
// lowercased name, followed by its description.
func (r *renderer) typeHeader(p *printer, t *introspection.Type) {
	p.P()
	p.heading(r.level+1, t.Name)
	p.P()
	if t.Description != "" {
		p.P(t.Description)
		p.P()
	}
}

func (r *renderer) typeFooter(p *printer) {
	p.P()
	p.P("---")
}
