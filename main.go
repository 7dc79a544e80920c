package main

import (
	"fmt"
	"os"

	"github.com/gqlc/graphql-markdown/cmd"
	"github.com/gqlc/graphql-markdown/doc"
)

func main() {
	cli := cmd.NewCLI()

	// Register Documentation generator
	cli.RegisterGenerator(&doc.Generator{}, "doc",
		"Generate Markdown documentation from a GraphQL schema.")

	if err := cli.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
