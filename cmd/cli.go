// Package cmd implements the command line interface for graphql-markdown.
package cmd

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/websocket"
	"github.com/gqlc/graphql-markdown/gen"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type option func(*CommandLine)

// WithFS configures the underlying afero.FS used to read/write files.
func WithFS(fs afero.Fs) option {
	return func(c *CommandLine) {
		c.fs = fs
	}
}

// WithHTTPClient configures the client used to fetch remote schemas.
func WithHTTPClient(client *http.Client) option {
	return func(c *CommandLine) {
		c.client = client
	}
}

// WithDialer configures the dialer used for introspection over websockets.
func WithDialer(d *websocket.Dialer) option {
	return func(c *CommandLine) {
		c.dialer = d
	}
}

type genConfig struct {
	g    gen.Generator
	name string
	help string
}

// CommandLine provides a convient API for running generators over
// introspected GraphQL schemas.
type CommandLine struct {
	fs     afero.Fs
	client *http.Client
	dialer *websocket.Dialer

	cmds []cmder
	gens []genConfig
}

type cmder interface {
	getCommand() *cobra.Command
}

type baseCmd struct {
	*cobra.Command
}

func (cmd *baseCmd) getCommand() *cobra.Command { return cmd.Command }

func (c *CommandLine) addCommand(cmds ...cmder) *CommandLine {
	c.cmds = append(c.cmds, cmds...)
	return c
}

func (c *CommandLine) build() *rootCmd {
	cmd := c.newRootCmd()
	for _, cmdr := range c.cmds {
		cmd.AddCommand(cmdr.getCommand())
	}

	return cmd
}

// NewCLI returns a CommandLine implementation.
func NewCLI(opts ...option) (c *CommandLine) {
	c = new(CommandLine)

	for _, opt := range opts {
		opt(c)
	}

	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.client == nil {
		c.client = http.DefaultClient
	}
	if c.dialer == nil {
		c.dialer = websocket.DefaultDialer
	}

	return
}

// RegisterGenerator registers a generator to be run over every schema.
func (c *CommandLine) RegisterGenerator(g gen.Generator, name, help string) {
	c.gens = append(c.gens, genConfig{
		g:    g,
		name: name,
		help: help,
	})
}

func wrapPanic(err error, stack []byte) error {
	return fmt.Errorf("graphql-markdown: recovered from unexpected panic: %w\n\n%s", err, stack)
}

// Run executes the command line with the given args, where args[0]
// is the program name.
func (c *CommandLine) Run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			rerr, ok := r.(error)
			if ok {
				err = wrapPanic(rerr, stack)
				return
			}

			err = wrapPanic(fmt.Errorf("%#v", r), stack)
		}
	}()

	cmd := c.addCommand(c.newVersionCmd()).build()
	c.cmds = nil
	defer func() {
		_ = zap.L().Sync()
		cmd.undoLogger()
	}()

	cmd.SetArgs(args[1:])
	return cmd.Execute()
}
