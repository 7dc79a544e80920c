package cmd

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gqlc/graphql-markdown/gen"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmd struct {
	baseCmd

	fs      afero.Fs
	v       *viper.Viper
	client  *fetchClient
	headers http.Header
	gens    []genConfig

	undoLogger func()
}

func (c *CommandLine) newRootCmd() *rootCmd {
	cmd := &rootCmd{
		fs:         c.fs,
		v:          newConfig(c.fs),
		client:     &fetchClient{Client: c.client, dialer: c.dialer},
		headers:    make(http.Header),
		gens:       c.gens,
		undoLogger: func() {},
	}

	cmd.Command = &cobra.Command{
		Use:   "graphql-markdown [flags] schema",
		Short: "Generate Markdown documentation for a GraphQL schema",
		Long: `graphql-markdown renders Markdown documentation for a GraphQL schema.

The schema can be given as either:
	1) a GraphQL SDL file, ending in .graphql or .gql
	2) an introspection result, ending in .json
	3) the URL of a file of either kind
	4) the http(s) or ws(s) URL of a GraphQL endpoint, which is introspected

Every flag may also be set in a config file given by --config, using the
flag's name as key, or in the environment, e.g. GRAPHQL_MARKDOWN_HEADING_LEVEL.`,
		Example: `  graphql-markdown --title "My API" -o ./docs schema.graphql
  graphql-markdown -H "Authorization=Bearer abc" --html https://example.com/graphql`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: chainPreRunEs(
			validateSource,
			initLogger(&cmd.undoLogger),
			initConfig(cmd.v),
			initOutDir(c.fs, func() string { return cmd.v.GetString("out") }),
		),
		RunE: cmd.run,
	}

	flags := cmd.Flags()
	flags.StringArray("title", nil, "Title of the documentation. May be repeated; the last title wins")
	flags.Bool("no-title", false, "Omit the title heading")
	flags.Bool("toc", true, "Render the table of contents")
	flags.String("prologue", "", "Markdown to include before the documentation")
	flags.String("epilogue", "", "Markdown to include after the documentation")
	flags.Int("heading-level", 1, "Level of the top-level headings")
	flags.String("unknown-type-url", "", "Base URL to link types not defined by the schema to")
	flags.Bool("html", false, "Also render each document to HTML")
	markDocFlags(flags, "title", "no-title", "toc", "prologue", "epilogue", "heading-level", "unknown-type-url", "html")

	flags.StringP("out", "o", ".", "Directory to write the documentation to")
	flags.VarP(&headerFlag{value: &cmd.headers}, "header", "H", "HTTP header to send when fetching the schema, as key=value. May be repeated")
	flags.String("config", "", "Config file to read flags from")
	flags.BoolP("verbose", "v", false, "Output logging")

	cmd.SetUsageTemplate(usageTmpl)
	return cmd
}

type genCtx struct {
	fs  afero.Fs
	dir string
}

func (ctx *genCtx) Open(name string) (io.WriteCloser, error) {
	return ctx.fs.OpenFile(filepath.Join(ctx.dir, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
}

func (cmd *rootCmd) run(c *cobra.Command, args []string) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loader := &schemaLoader{
		fs:      cmd.fs,
		client:  cmd.client,
		headers: configHeaders(cmd.v, cmd.headers),
	}
	schema, err := loader.load(ctx, args[0])
	if err != nil {
		return err
	}

	opts := generatorOptions(cmd.v)
	ctx = gen.WithContext(ctx, &genCtx{fs: cmd.fs, dir: cmd.v.GetString("out")})
	for _, g := range cmd.gens {
		zap.L().Info("running generator", zap.String("name", g.name), zap.Any("options", opts))

		if err = g.g.Generate(ctx, schema, opts); err != nil {
			return err
		}
	}
	return nil
}
