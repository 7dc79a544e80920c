package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"

	"github.com/gqlc/graphql-markdown/introspection"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// schemaLoader resolves a schema source into its introspection result.
//
// Sources are either local files or URLs. Files ending in .graphql or .gql
// are SDL, files ending in .json are introspection results. A URL whose
// path ends in one of those extensions is downloaded and read the same
// way; any other http(s) or ws(s) URL is taken to be a GraphQL endpoint
// and is introspected.
type schemaLoader struct {
	fs      afero.Fs
	client  *fetchClient
	headers http.Header
}

func (l *schemaLoader) load(ctx context.Context, src string) (*introspection.Schema, error) {
	if !isRemote(src) {
		return l.loadFile(src)
	}

	u, err := url.Parse(src)
	if err != nil {
		return nil, err
	}

	switch ext := path.Ext(u.Path); {
	case (u.Scheme == "http" || u.Scheme == "https") && isSchemaExt(ext):
		r, err := l.client.fetch(ctx, u, l.headers)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		return readSchema(path.Base(u.Path), ext, r)
	default:
		return l.client.introspect(ctx, u, l.headers)
	}
}

func (l *schemaLoader) loadFile(name string) (*introspection.Schema, error) {
	zap.L().Info("reading schema", zap.String("file", name))

	f, err := l.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readSchema(filepath.Base(name), filepath.Ext(name), f)
}

func isSchemaExt(ext string) bool {
	return ext == extGraphQL || ext == extGql || ext == extJSON
}

func readSchema(name, ext string, r io.Reader) (*introspection.Schema, error) {
	switch ext {
	case extJSON:
		return introspection.Decode(r)
	case extGraphQL, extGql:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return fromSDL(name, string(b))
	default:
		return nil, fmt.Errorf("graphql-markdown: unsupported schema format: %s", name)
	}
}
