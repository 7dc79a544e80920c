package doc

import (
	"bytes"
	"fmt"
	"html"

	"github.com/gqlc/graphql-markdown/introspection"
)

// printer accumulates a single Markdown document.
type printer struct {
	bytes.Buffer

	l *linker
}

// P prints the arguments to the document, followed by a newline.
func (p *printer) P(str ...interface{}) {
	for _, s := range str {
		switch v := s.(type) {
		case string:
			p.WriteString(v)
		case int:
			fmt.Fprint(p, v)
		}
	}
	p.WriteByte('\n')
}

// heading writes a Markdown heading. Levels are clamped to 1 through 6.
func (p *printer) heading(level int, text string) {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	for i := 0; i < level; i++ {
		p.WriteByte('#')
	}
	p.WriteByte(' ')
	p.WriteString(text)
	p.WriteByte('\n')
}

// printType writes a type reference: NON_NULL appends "!", LIST wraps in
// brackets, and a named type is linked when the linker finds it a target.
func (p *printer) printType(t *introspection.Type) error { return p.printTypeDepth(t, 0) }

func (p *printer) printTypeDepth(t *introspection.Type, depth int) error {
	if t == nil {
		return &introspection.SchemaError{Msg: "type reference is missing"}
	}
	if depth > introspection.MaxWrapperDepth {
		return &introspection.SchemaError{Msg: fmt.Sprintf("wrapper chain exceeds %d levels", introspection.MaxWrapperDepth)}
	}

	switch t.Kind {
	case introspection.NonNull:
		if err := p.printTypeDepth(t.OfType, depth+1); err != nil {
			return err
		}
		p.WriteByte('!')
	case introspection.List:
		p.WriteByte('[')
		if err := p.printTypeDepth(t.OfType, depth+1); err != nil {
			return err
		}
		p.WriteByte(']')
	default:
		if t.Name == "" {
			return &introspection.SchemaError{Msg: "type reference does not end in a named type"}
		}

		href, ok := p.l.link(t)
		if !ok || href == "" {
			p.WriteString(t.Name)
			return nil
		}
		p.WriteString(`<a href="`)
		p.WriteString(html.EscapeString(href))
		p.WriteString(`">`)
		p.WriteString(t.Name)
		p.WriteString(`</a>`)
	}
	return nil
}

// renderType renders a type reference to a string.
func (l *linker) renderType(t *introspection.Type) (string, error) {
	p := &printer{l: l}
	err := p.printType(t)
	return p.String(), err
}
