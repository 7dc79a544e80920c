package doc

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/gqlc/graphql-markdown/introspection"
)

func strPtr(s string) *string { return &s }

func str() *Type { return NamedType(Scalar, "String") }

// widgetSchema is a small schema touching every category.
func widgetSchema() *Schema {
	return &Schema{
		QueryType:    &TypeName{Name: "Query"},
		MutationType: &TypeName{Name: "RootMutation"},
		Types: []*Type{
			{
				Kind: Object,
				Name: "Query",
				Fields: []*Field{
					{Name: "widget", Type: NonNullOf(NamedType(Object, "Widget")), Description: "Fetch a widget."},
					{
						Name: "search",
						Type: NonNullOf(ListOf(NonNullOf(NamedType(Union, "SearchResult")))),
						Args: []*InputValue{
							{Name: "text", Type: NonNullOf(str()), Description: "Text to search for."},
							{Name: "first", Type: NamedType(Scalar, "Int"), DefaultValue: strPtr("10")},
						},
					},
				},
			},
			{
				Kind: Object,
				Name: "RootMutation",
				Fields: []*Field{
					{
						Name: "createWidget",
						Type: NamedType(Object, "Widget"),
						Args: []*InputValue{
							{Name: "input", Type: NonNullOf(NamedType(InputObject, "WidgetInput"))},
						},
					},
				},
			},
			{
				Kind:        Object,
				Name:        "Widget",
				Description: "A widget.",
				Fields: []*Field{
					{Name: "name", Type: NonNullOf(str())},
					{Name: "legacyName", Type: str(), IsDeprecated: true, DeprecationReason: "use name instead"},
					{Name: "shape", Type: NamedType(Enum, "Shape")},
				},
				Interfaces: []*Type{NamedType(Interface, "Node")},
			},
			{
				Kind:        Object,
				Name:        "Gadget",
				Description: "A gadget.",
				Fields: []*Field{
					{Name: "id", Type: NonNullOf(NamedType(Scalar, "ID"))},
				},
			},
			{
				Kind: Interface,
				Name: "Node",
				Fields: []*Field{
					{Name: "id", Type: NonNullOf(NamedType(Scalar, "ID"))},
				},
			},
			{
				Kind: InputObject,
				Name: "WidgetInput",
				InputFields: []*InputValue{
					{Name: "name", Type: NonNullOf(str()), Description: "The name."},
					{Name: "shape", Type: NamedType(Enum, "Shape"), DefaultValue: strPtr("ROUND")},
				},
			},
			{
				Kind:        Enum,
				Name:        "Shape",
				Description: "Shapes of things.",
				EnumValues: []*EnumValue{
					{Name: "ROUND", Description: "Round."},
					{Name: "SQUARE"},
					{Name: "OVAL", IsDeprecated: true, DeprecationReason: "too round"},
				},
			},
			{
				Kind:        Union,
				Name:        "SearchResult",
				Description: "Anything searchable.",
				PossibleTypes: []*Type{
					{Kind: Object, Name: "Widget", Description: "A matching widget."},
					NamedType(Object, "Gadget"),
				},
			},
			{Kind: Scalar, Name: "String", Description: "Text."},
			{Kind: Scalar, Name: "ID"},
			{Kind: Scalar, Name: "Int"},
			{Kind: Object, Name: "__Schema", Fields: []*Field{{Name: "types", Type: str()}}},
			{Kind: Enum, Name: "__TypeKind"},
		},
	}
}

func TestRender_Documents(t *testing.T) {
	docs, err := Render(widgetSchema(), nil)
	if err != nil {
		t.Errorf("unexpected error when rendering: %s", err)
		return
	}

	ex := []string{TableOfContentsDoc, QueryDoc, MutationDoc, ObjectsDoc, InputsDoc, EnumsDoc, ScalarsDoc, InterfacesDoc, UnionsDoc}
	if diff := cmp.Diff(ex, docs.Names()); diff != "" {
		t.Errorf("unexpected documents (-want +got):\n%s", diff)
	}
}

func TestRender_WidgetScenario(t *testing.T) {
	docs, err := Render(widgetSchema(), nil)
	if err != nil {
		t.Errorf("unexpected error when rendering: %s", err)
		return
	}

	testCases := []struct {
		Name     string
		Doc      string
		Contains []string
	}{
		{
			Name: "Query",
			Doc:  QueryDoc,
			Contains: []string{
				"# Query\n",
				"## widget\n",
				"<label>query</label>",
				`Return type is <a href="objects#widget">Widget</a>!`,
				"Fetch a widget.",
				`Return type is [<a href="unions#searchresult">SearchResult</a>!]!`,
				"### Arguments",
				`|text|<a href="scalars#string">String</a>!|Text to search for.|`,
				`|first|<a href="scalars#int">Int</a>|Default value <code>10</code>|`,
			},
		},
		{
			Name: "Mutation",
			Doc:  MutationDoc,
			Contains: []string{
				"# Mutation (RootMutation)\n",
				"<label>mutation</label>",
				`Return type is <a href="objects#widget">Widget</a>`,
				`|input|<a href="inputs#widgetinput">WidgetInput</a>!||`,
			},
		},
		{
			Name: "Objects",
			Doc:  ObjectsDoc,
			Contains: []string{
				"# Objects\n\n---\n",
				"## Widget\n\nA widget.\n",
				"### legacyName\n",
				"<strong>DEPRECATED</strong>",
				"use name instead",
				`Type <a href="enums#shape">Shape</a>`,
			},
		},
		{
			Name: "Inputs",
			Doc:  InputsDoc,
			Contains: []string{
				"## WidgetInput\n",
				"<label>input</label>",
				`Type <a href="scalars#string">String</a>!`,
				"Default value `ROUND`",
				"The name.",
			},
		},
		{
			Name: "Enums",
			Doc:  EnumsDoc,
			Contains: []string{
				"## Shape\n\nShapes of things.\n",
				"<td><strong>ROUND</strong></td>",
				"<td><strong>SQUARE</strong></td>\n<td></td>",
				"<td><strong>OVAL</strong> ⚠️</td>",
				"too round",
			},
		},
		{
			Name: "Scalars",
			Doc:  ScalarsDoc,
			Contains: []string{
				"## String\n\n<label>scalar</label>",
				"Text.",
			},
		},
		{
			Name: "Interfaces",
			Doc:  InterfacesDoc,
			Contains: []string{
				"## Node\n",
				"<label>interface</label>",
				`Type <a href="scalars#id">ID</a>!`,
			},
		},
		{
			Name: "Unions",
			Doc:  UnionsDoc,
			Contains: []string{
				"## SearchResult\n\nAnything searchable.\n",
				`<td><strong><a href="objects#widget">Widget</a></strong></td>` + "\n<td>A matching widget.</td>",
				`<td><strong><a href="objects#gadget">Gadget</a></strong></td>` + "\n<td>A gadget.</td>",
			},
		},
		{
			Name: "TableOfContents",
			Doc:  TableOfContentsDoc,
			Contains: []string{
				"# Schema Types\n",
				"<strong>Table of Contents</strong>",
				`<li><a href="query">Query</a></li>`,
				`<li><a href="mutation">Mutation</a></li>`,
				`<li><a href="objects">Objects</a></li>`,
				`<li><a href="objects#gadget">Gadget</a></li>` + "\n" + `<li><a href="objects#widget">Widget</a></li>`,
				`<li><a href="unions#searchresult">SearchResult</a></li>`,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			out, ok := docs[testCase.Doc]
			if !ok {
				subT.Errorf("missing document: %s", testCase.Doc)
				return
			}

			for _, s := range testCase.Contains {
				if !strings.Contains(out, s) {
					subT.Errorf("expected document to contain:\n%s\n\ngot:\n%s", s, out)
				}
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	opts := &Options{Prologue: "Hello.", Epilogue: "Bye.", HeadingLevel: 2}

	a, err := Render(widgetSchema(), opts)
	if err != nil {
		t.Error(err)
		return
	}
	b, err := Render(widgetSchema(), opts)
	if err != nil {
		t.Error(err)
		return
	}

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("renders differ (-first +second):\n%s", diff)
	}
}

var typeHeading = regexp.MustCompile(`(?m)^## (\S+)$`)

func TestRender_Completeness(t *testing.T) {
	s := widgetSchema()
	docs, err := Render(s, &Options{SkipTableOfContents: true})
	if err != nil {
		t.Error(err)
		return
	}

	seen := make(map[string]int)
	for _, name := range []string{ObjectsDoc, InputsDoc, EnumsDoc, ScalarsDoc, InterfacesDoc, UnionsDoc} {
		for _, m := range typeHeading.FindAllStringSubmatch(docs[name], -1) {
			seen[m[1]]++
		}
	}
	seen["Query"]++
	seen["RootMutation"]++

	for _, typ := range s.Types {
		if strings.HasPrefix(typ.Name, "__") {
			if seen[typ.Name] != 0 {
				t.Errorf("meta type %s should not be documented", typ.Name)
			}
			continue
		}
		if seen[typ.Name] != 1 {
			t.Errorf("expected %s to be documented exactly once, got: %d", typ.Name, seen[typ.Name])
		}
	}
}

func TestRender_Sorted(t *testing.T) {
	docs, err := Render(widgetSchema(), nil)
	if err != nil {
		t.Error(err)
		return
	}

	for _, name := range []string{ObjectsDoc, ScalarsDoc} {
		var prev string
		for _, m := range typeHeading.FindAllStringSubmatch(docs[name], -1) {
			if m[1] < prev {
				t.Errorf("%s: %s listed after %s", name, m[1], prev)
			}
			prev = m[1]
		}
	}
}

func TestRender_FieldOrder(t *testing.T) {
	docs, err := Render(widgetSchema(), nil)
	if err != nil {
		t.Error(err)
		return
	}

	out := docs[ObjectsDoc]
	name, legacy, shape := strings.Index(out, "### name\n"), strings.Index(out, "### legacyName\n"), strings.Index(out, "### shape\n")
	if !(name < legacy && legacy < shape) {
		t.Errorf("expected fields in declaration order, got offsets: %d %d %d", name, legacy, shape)
	}
}

func TestRender_Frame(t *testing.T) {
	testCases := []struct {
		Name   string
		Opts   *Options
		First  string
		Prefix string
		Last   string
		Suffix string
	}{
		{
			Name:   "Defaults",
			Opts:   &Options{},
			First:  TableOfContentsDoc,
			Prefix: "# Schema Types\n\n<div>",
		},
		{
			Name:   "Title",
			Opts:   &Options{Title: "Widget API", Prologue: "Read me first.", Epilogue: "The end."},
			First:  TableOfContentsDoc,
			Prefix: "# Widget API\n\nRead me first.\n\n<div>",
			Last:   UnionsDoc,
			Suffix: "---\n\nThe end.\n",
		},
		{
			Name:   "SkipTitle",
			Opts:   &Options{Title: "Ignored", SkipTitle: true},
			First:  TableOfContentsDoc,
			Prefix: "<div>",
		},
		{
			Name:   "SkipTableOfContents",
			Opts:   &Options{SkipTableOfContents: true, HeadingLevel: 2},
			First:  QueryDoc,
			Prefix: "## Schema Types\n\n## Query\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			docs, err := Render(widgetSchema(), testCase.Opts)
			if err != nil {
				subT.Error(err)
				return
			}

			if names := docs.Names(); names[0] != testCase.First {
				subT.Errorf("expected first document %s, got: %s", testCase.First, names[0])
			}
			if !strings.HasPrefix(docs[testCase.First], testCase.Prefix) {
				subT.Errorf("expected prefix %q, got:\n%s", testCase.Prefix, docs[testCase.First])
			}

			if testCase.Last == "" {
				return
			}
			if !strings.HasSuffix(docs[testCase.Last], testCase.Suffix) {
				subT.Errorf("expected suffix %q, got:\n%s", testCase.Suffix, docs[testCase.Last])
			}
		})
	}
}

func TestRender_HeadingLevel(t *testing.T) {
	docs, err := Render(widgetSchema(), &Options{HeadingLevel: 3, SkipTitle: true})
	if err != nil {
		t.Error(err)
		return
	}

	for _, s := range []string{"### Objects\n", "#### Widget\n", "##### legacyName\n", "#### createWidget\n", "##### Arguments\n"} {
		if !strings.Contains(docs[ObjectsDoc]+docs[MutationDoc], s) {
			t.Errorf("expected heading %q", s)
		}
	}
}

func TestRender_EmptySchema(t *testing.T) {
	docs, err := Render(&Schema{Types: []*Type{}}, &Options{SkipTitle: true})
	if err != nil {
		t.Error(err)
		return
	}

	if len(docs) != 0 {
		t.Errorf("expected no documents, got: %v", docs.Names())
	}
}

func TestRender_Malformed(t *testing.T) {
	testCases := []struct {
		Name   string
		Schema *Schema
	}{
		{
			Name:   "NoTypes",
			Schema: &Schema{},
		},
		{
			Name: "MissingFieldType",
			Schema: &Schema{Types: []*Type{
				{Kind: Object, Name: "A", Fields: []*Field{{Name: "b"}}},
			}},
		},
		{
			Name: "UnterminatedWrapper",
			Schema: &Schema{Types: []*Type{
				{Kind: Object, Name: "A", Fields: []*Field{{Name: "b", Type: NonNullOf(ListOf(nil))}}},
			}},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			docs, err := Render(testCase.Schema, nil)
			if !errors.Is(err, ErrMalformed) {
				subT.Errorf("expected malformed schema error, got: %v", err)
			}
			if docs != nil {
				subT.Errorf("expected no documents, got: %v", docs.Names())
			}
		})
	}
}

func TestRender_UnknownKindSkipped(t *testing.T) {
	s := &Schema{Types: []*Type{
		{Kind: KindUnknown, Name: "Future"},
		{Kind: Scalar, Name: "Date"},
	}}

	docs, err := Render(s, nil)
	if err != nil {
		t.Error(err)
		return
	}

	for name, out := range docs {
		if strings.Contains(out, "Future") {
			t.Errorf("%s: unknown kind should not be documented", name)
		}
	}
	if !strings.Contains(docs[ScalarsDoc], "## Date") {
		t.Error("expected Date to be documented")
	}
}
