// Package gen contains and utils for working with generators.
package gen

//go:generate mockgen -write_package_comment=false -package=gen -destination=./mock.go github.com/gqlc/graphql-markdown/gen Generator,GeneratorContext

import (
	"context"
	"fmt"
	"io"

	"github.com/gqlc/graphql-markdown/introspection"
)

// Generator provides a simple API for turning an introspected
// GraphQL schema into a set of output files.
type Generator interface {
	// Generate renders the schema and writes its output through the
	// GeneratorContext attached to ctx.
	Generate(ctx context.Context, schema *introspection.Schema, opts map[string]interface{}) error
}

// GeneratorContext represents the directory to which
// the Generator is to write to.
type GeneratorContext interface {
	// Open opens a file in the GeneratorContext (i.e. directory).
	Open(filename string) (io.WriteCloser, error)
}

type genCtx string

var genCtxKey = genCtx("genCtx")

// WithContext returns a prepared context.Context
// with the given GeneratorContext.
func WithContext(ctx context.Context, gCtx GeneratorContext) context.Context {
	return context.WithValue(ctx, genCtxKey, gCtx)
}

// Context returns the generator context, or nil if ctx carries none.
func Context(ctx context.Context) GeneratorContext {
	gCtx, _ := ctx.Value(genCtxKey).(GeneratorContext)
	return gCtx
}

// GeneratorError represents an error from a generator.
type GeneratorError struct {
	// DocName is the output document being worked on when error was encountered.
	DocName string

	// GenName is the generator name which encountered a problem.
	GenName string

	// Msg is any message the generator wants to provide back to the caller.
	Msg string

	// Err is the underlying error, if any.
	Err error
}

func (e GeneratorError) Error() string {
	if e.DocName == "" {
		return fmt.Sprintf("graphql-markdown: generator error occurred in %s: %s", e.GenName, e.Msg)
	}
	return fmt.Sprintf("graphql-markdown: generator error occurred in %s:%s %s", e.GenName, e.DocName, e.Msg)
}

func (e GeneratorError) Unwrap() error { return e.Err }
