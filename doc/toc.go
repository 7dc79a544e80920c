package doc

import "github.com/gqlc/graphql-markdown/introspection"

// toc renders the table of contents. The query and mutation entries link
// to their documents; every other category lists its types beneath it.
func (r *renderer) toc() string {
	p := r.newPrinter()
	p.P("<div>")
	p.P("<nav>")
	p.P("<ul>")
	p.P("<strong>Table of Contents</strong>")

	if r.c.Query != nil {
		p.P(`<li><a href="`, QueryDoc, `">Query</a></li>`)
	}
	if r.c.Mutation != nil {
		p.P(`<li><a href="`, MutationDoc, `">Mutation</a></li>`)
	}

	categories := []struct {
		doc, title string
		types      []*introspection.Type
	}{
		{ObjectsDoc, "Objects", r.c.Objects},
		{InputsDoc, "Inputs", r.c.Inputs},
		{EnumsDoc, "Enums", r.c.Enums},
		{ScalarsDoc, "Scalars", r.c.Scalars},
		{InterfacesDoc, "Interfaces", r.c.Interfaces},
		{UnionsDoc, "Unions", r.c.Unions},
	}
	for _, cat := range categories {
		if len(cat.types) == 0 {
			continue
		}

		p.P(`<li><a href="`, cat.doc, `">`, cat.title, `</a></li>`)
		p.P()
		p.P("<ul>")
		for _, t := range cat.types {
			p.P(`<li><a href="`, cat.doc, anchor(t.Name), `">`, t.Name, `</a></li>`)
		}
		p.P("</ul>")
	}

	p.P("</ul>")
	p.P("</nav>")
	p.P("</div>")
	return p.String()
}
