package cmd

import (
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// docFlagAnnotation marks the flags which are passed on to the generators.
const docFlagAnnotation = "graphql-markdown/doc"

const usageTmpl = `Usage:
  graphql-markdown [flags] schema
  graphql-markdown [command]{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{$docflags := filter .LocalFlags "graphql-markdown/doc" true}}{{if gt (len $docflags.FlagUsages) 0}}

Documentation Flags:
{{$docflags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{$exflags := filter .LocalFlags "graphql-markdown/doc" false}}{{if gt (len $exflags.FlagUsages) 0}}

General Flags:
{{$exflags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasExample}}

Example:
{{.Example}}{{end}}
`

// filterFlags returns the flags of set which carry the annotation key,
// or which do not when ex is false.
func filterFlags(set *pflag.FlagSet, key string, ex bool) *pflag.FlagSet {
	fs := new(pflag.FlagSet)
	set.VisitAll(func(flag *pflag.Flag) {
		_, annotated := flag.Annotations[key]
		if annotated == ex {
			fs.AddFlag(flag)
		}
	})
	return fs
}

// markDocFlags annotates the named flags as documentation flags.
func markDocFlags(set *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = set.SetAnnotation(name, docFlagAnnotation, []string{"true"})
	}
}

func init() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"filter": filterFlags,
	})
}
