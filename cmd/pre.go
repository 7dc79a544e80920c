package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func chainPreRunEs(preRunEs ...func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		for i := 0; i < len(preRunEs) && err == nil; i++ {
			err = preRunEs[i](cmd, args)
		}
		return
	}
}

// Schema file extensions.
const (
	extGraphQL = ".graphql"
	extGql     = ".gql"
	extJSON    = ".json"
)

// validateSource validates that a single schema source is provided and,
// when it is a local file, that it is either SDL or introspection JSON.
func validateSource(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("graphql-markdown: expected exactly one schema, got %d", len(args))
	}

	if isRemote(args[0]) {
		return nil
	}

	switch ext := filepath.Ext(args[0]); ext {
	case extGraphQL, extGql, extJSON:
		return nil
	default:
		return fmt.Errorf("graphql-markdown: invalid file extension: %s", args[0])
	}
}

// isRemote reports whether src names a schema served over the network.
func isRemote(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}

	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return u.Host != ""
	}
	return false
}

// initOutDir initializes the directory the generators will be outputting to.
func initOutDir(fs afero.Fs, dir func() string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		d := dir()
		zap.S().Info("creating directory: ", d)
		return fs.MkdirAll(d, os.ModePerm)
	}
}
