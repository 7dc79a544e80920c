package doc

import (
	"context"
	"errors"
	"io"

	"github.com/gqlc/graphql-markdown/gen"
	"github.com/gqlc/graphql-markdown/introspection"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/sync/errgroup"
)

// Generator generates Markdown documentation for introspected GraphQL schemas.
type Generator struct{}

// Generate renders the documentation for schema and writes every document
// to <name>.md in the GeneratorContext carried by ctx. Documents share no
// state, so they are written concurrently.
func (g *Generator) Generate(ctx context.Context, schema *introspection.Schema, opts map[string]interface{}) (err error) {
	defer func() {
		var gerr gen.GeneratorError
		if err != nil && !errors.As(err, &gerr) {
			err = gen.GeneratorError{
				GenName: "doc",
				Msg:     err.Error(),
				Err:     err,
			}
		}
	}()

	// Get generator options
	gOpts, err := getOptions(opts)
	if err != nil {
		return
	}

	gCtx := gen.Context(ctx)
	if gCtx == nil {
		return errors.New("no generator context")
	}

	docs, err := Render(schema, gOpts)
	if err != nil {
		return
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, name := range docs.Names() {
		name, src := name, []byte(docs[name])
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			files := []string{name + ".md"}
			if gOpts.HTML {
				files = append(files, name+".html")
			}
			for _, filename := range files {
				b := src
				if filename != files[0] {
					b = blackfriday.Run(src)
				}

				if err := writeFile(gCtx, filename, b); err != nil {
					return gen.GeneratorError{
						DocName: filename,
						GenName: "doc",
						Msg:     err.Error(),
						Err:     err,
					}
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

func writeFile(gCtx gen.GeneratorContext, name string, b []byte) (err error) {
	var f io.WriteCloser
	f, err = gCtx.Open(name)
	if err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(b)
	return
}
