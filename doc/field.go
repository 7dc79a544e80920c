package doc

import (
	"strings"

	"github.com/gqlc/graphql-markdown/introspection"
)

// Field labels, shown beneath each field heading.
const (
	queryLabel     = "query"
	mutationLabel  = "mutation"
	objectLabel    = "object"
	inputLabel     = "input"
	interfaceLabel = "interface"
)

// printField writes one output field as a self-contained block. Query and
// mutation fields describe their return type; all others their type.
// Arguments follow as a table, in declaration order.
func (p *printer) printField(f *introspection.Field, label string, level int) error {
	p.fieldHeader(f.Name, label, level)

	if err := p.typeLine(f.Type, label == queryLabel || label == mutationLabel); err != nil {
		return err
	}

	p.description(f.Description)
	if f.IsDeprecated {
		p.deprecation(f.DeprecationReason)
	}

	if len(f.Args) == 0 {
		return nil
	}

	p.WriteByte('\n')
	p.heading(level+1, "Arguments")
	p.WriteByte('\n')
	p.P("| Name | Type | Description |")
	p.P("| ---- | ---- | ----------- |")
	for _, a := range f.Args {
		p.WriteByte('|')
		p.WriteString(a.Name)
		p.WriteByte('|')
		if err := p.printType(a.Type); err != nil {
			return err
		}
		p.WriteByte('|')
		p.WriteString(tableCell(a.Description))
		if a.DefaultValue != nil {
			if a.Description != "" {
				p.WriteString("<br>")
			}
			p.WriteString("Default value <code>")
			p.WriteString(tableCell(*a.DefaultValue))
			p.WriteString("</code>")
		}
		p.P("|")
	}
	p.WriteByte('\n')
	p.P("---")
	return nil
}

// printInputField writes one input object field. Input fields take no
// arguments, so no table is written.
func (p *printer) printInputField(f *introspection.InputValue, level int) error {
	p.fieldHeader(f.Name, inputLabel, level)

	if err := p.typeLine(f.Type, false); err != nil {
		return err
	}

	if f.DefaultValue != nil {
		p.P()
		p.P("Default value `", *f.DefaultValue, "`")
	}
	p.description(f.Description)
	return nil
}

func (p *printer) fieldHeader(name, label string, level int) {
	p.P("<div>")
	p.P()
	p.heading(level, name)
	p.P()
	p.P("<label>", label, "</label>")
	p.P()
	p.P("</div>")
}

func (p *printer) typeLine(t *introspection.Type, returns bool) error {
	p.P("<span>")
	if returns {
		p.WriteString("Return type is ")
	} else {
		p.WriteString("Type ")
	}
	if err := p.printType(t); err != nil {
		return err
	}
	p.P()
	p.P("</span>")
	return nil
}

func (p *printer) description(descr string) {
	if descr == "" {
		return
	}
	p.P()
	p.P(descr)
}

// deprecation writes the call-out shared by fields and enum values.
func (p *printer) deprecation(reason string) {
	p.P("<blockquote>")
	p.P()
	p.P("<strong>DEPRECATED</strong>")
	p.P()
	if reason != "" {
		p.P(reason)
		p.P()
	}
	p.P("</blockquote>")
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

// tableCell makes text safe to embed in a Markdown table cell.
func tableCell(s string) string { return cellReplacer.Replace(s) }
