package doc

import (
	"fmt"
	"strconv"

	"github.com/gqlc/graphql-markdown/introspection"
)

// DefaultTitle is the heading used when no title is configured.
const DefaultTitle = "Schema Types"

// Options contains the options for the Documentation generator.
type Options struct {
	// Title is the heading opening the output. Empty means DefaultTitle.
	Title string

	// SkipTitle suppresses the title heading whatever Title holds.
	SkipTitle bool

	SkipTableOfContents bool

	// Prologue and Epilogue are emitted before and after the full output.
	Prologue string
	Epilogue string

	// HeadingLevel is the level of the top-level headings; values below 1 mean 1.
	HeadingLevel int

	// UnknownTypeURL is prefixed to the anchor of types outside the schema.
	// UnknownTypeFunc takes precedence over it when both are set.
	UnknownTypeURL  string
	UnknownTypeFunc UnknownTypeFunc

	// HTML additionally renders every document to HTML.
	HTML bool
}

func (o *Options) title() (string, bool) {
	if o.SkipTitle {
		return "", false
	}
	if o.Title == "" {
		return DefaultTitle, true
	}
	return o.Title, true
}

func (o *Options) headingLevel() int {
	if o.HeadingLevel < 1 {
		return 1
	}
	return o.HeadingLevel
}

// getOptions decodes generator options given as loosely typed values,
// e.g. parsed from the command line or a config file.
//
// The title may be a string, false, or a list of both; a false or empty
// title in any position suppresses the title.
func getOptions(opts map[string]interface{}) (gOpts *Options, err error) {
	gOpts = new(Options)

	for key, val := range opts {
		switch key {
		case "title":
			err = setTitle(gOpts, val)
		case "skipTitle":
			var skip bool
			skip, err = asBool(key, val)
			gOpts.SkipTitle = gOpts.SkipTitle || skip
		case "skipTableOfContents":
			gOpts.SkipTableOfContents, err = asBool(key, val)
		case "prologue":
			gOpts.Prologue, err = asString(key, val)
		case "epilogue":
			gOpts.Epilogue, err = asString(key, val)
		case "headingLevel":
			gOpts.HeadingLevel, err = asInt(key, val)
		case "unknownTypeURL":
			switch v := val.(type) {
			case nil:
			case string:
				gOpts.UnknownTypeURL = v
			case UnknownTypeFunc:
				gOpts.UnknownTypeFunc = v
			case func(*introspection.Type) (string, bool):
				gOpts.UnknownTypeFunc = v
			default:
				err = fmt.Errorf("doc: option %s must be a string or function, got %T", key, val)
			}
		case "html":
			gOpts.HTML, err = asBool(key, val)
		}
		if err != nil {
			return nil, err
		}
	}
	return
}

func setTitle(o *Options, val interface{}) error {
	switch v := val.(type) {
	case nil:
	case string:
		if v == "" {
			o.SkipTitle = true
			break
		}
		o.Title = v
	case bool:
		if !v {
			o.SkipTitle = true
		}
	case []string:
		for _, s := range v {
			if err := setTitle(o, s); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, s := range v {
			if err := setTitle(o, s); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("doc: option title must be a string or false, got %T", val)
	}
	return nil
}

func asBool(key string, val interface{}) (bool, error) {
	switch v := val.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("doc: option %s: %w", key, err)
		}
		return b, nil
	}
	return false, fmt.Errorf("doc: option %s must be a bool, got %T", key, val)
}

func asString(key string, val interface{}) (string, error) {
	switch v := val.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}
	return "", fmt.Errorf("doc: option %s must be a string, got %T", key, val)
}

func asInt(key string, val interface{}) (int, error) {
	switch v := val.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("doc: option %s: %w", key, err)
		}
		return i, nil
	}
	return 0, fmt.Errorf("doc: option %s must be a number, got %T", key, val)
}
