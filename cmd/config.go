package cmd

import (
	"net/http"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix prefixes the environment variables which mirror the flags,
// e.g. GRAPHQL_MARKDOWN_HEADING_LEVEL.
const envPrefix = "GRAPHQL_MARKDOWN"

func newConfig(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// initConfig binds the command line flags to v and reads the config
// file, if one was given. Flags take precedence over the file.
func initConfig(v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		name, err := cmd.Flags().GetString("config")
		if err != nil || name == "" {
			return err
		}

		zap.L().Info("reading config", zap.String("file", name))
		v.SetConfigFile(name)
		return v.ReadInConfig()
	}
}

// configHeaders returns the headers set by the config file's headers
// table, followed by those given on the command line.
func configHeaders(v *viper.Viper, flagHeaders http.Header) http.Header {
	headers := make(http.Header)
	for k, val := range v.GetStringMapString("headers") {
		headers.Add(k, val)
	}
	for k, vals := range flagHeaders {
		for _, val := range vals {
			headers.Add(k, val)
		}
	}
	return headers
}

// generatorOptions assembles the generator options from the flags and
// config file, keeping the loosely typed values the generators decode.
func generatorOptions(v *viper.Viper) map[string]interface{} {
	opts := make(map[string]interface{})

	var title []interface{}
	if v.IsSet("title") {
		title = append(title, v.Get("title"))
	}
	if v.GetBool("no-title") {
		title = append(title, false)
	}
	if len(title) > 0 {
		opts["title"] = title
	}

	opts["skipTableOfContents"] = !v.GetBool("toc")
	opts["headingLevel"] = v.GetInt("heading-level")
	opts["html"] = v.GetBool("html")

	for key, opt := range map[string]string{
		"prologue":         "prologue",
		"epilogue":         "epilogue",
		"unknown-type-url": "unknownTypeURL",
	} {
		if s := v.GetString(key); s != "" {
			opts[opt] = s
		}
	}
	return opts
}
