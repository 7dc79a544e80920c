package introspection

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// MaxWrapperDepth is the maximum number of LIST / NON_NULL modifiers a
// type reference may stack before it is considered unterminated.
const MaxWrapperDepth = 16

// ErrMalformed is matched by every error describing a structurally
// invalid schema.
var ErrMalformed = errors.New("malformed schema")

// SchemaError describes one structural problem in a schema.
type SchemaError struct {
	// Path locates the problem, e.g. types[Widget].fields[name].type
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("introspection: %s: %s", ErrMalformed, e.Msg)
	}
	return fmt.Sprintf("introspection: %s: %s %s", ErrMalformed, e.Path, e.Msg)
}

// Unwrap makes every SchemaError match ErrMalformed.
func (e *SchemaError) Unwrap() error { return ErrMalformed }

// Validate checks the structural invariants the documentation renderer
// depends on. Every problem found is reported; the returned error is a
// multierr combination of *SchemaError values.
//
// Types of an unrecognized kind are not an error.
func Validate(s *Schema) error {
	if s == nil {
		return &SchemaError{Msg: "schema is nil"}
	}
	if s.Types == nil {
		return &SchemaError{Path: "types", Msg: "is required"}
	}

	var err error
	seen := make(map[string]struct{}, len(s.Types))
	for i, t := range s.Types {
		if t == nil {
			err = multierr.Append(err, &SchemaError{Path: fmt.Sprintf("types[%d]", i), Msg: "is null"})
			continue
		}
		if t.Kind.IsWrapper() {
			err = multierr.Append(err, &SchemaError{Path: fmt.Sprintf("types[%d]", i), Msg: "is a " + t.Kind.String() + " wrapper, not a named type"})
			continue
		}
		if t.Name == "" {
			err = multierr.Append(err, &SchemaError{Path: fmt.Sprintf("types[%d]", i), Msg: "has no name"})
			continue
		}
		if _, dup := seen[t.Name]; dup {
			err = multierr.Append(err, &SchemaError{Path: typePath(t), Msg: "is declared more than once"})
		}
		seen[t.Name] = struct{}{}

		err = multierr.Append(err, validateType(t))
	}
	return err
}

func validateType(t *Type) (err error) {
	path := typePath(t)
	for _, f := range t.Fields {
		if f == nil {
			err = multierr.Append(err, &SchemaError{Path: path + ".fields", Msg: "contains null"})
			continue
		}
		fpath := fmt.Sprintf("%s.fields[%s]", path, f.Name)
		err = multierr.Append(err, validateRef(fpath+".type", f.Type))

		for _, a := range f.Args {
			if a == nil {
				err = multierr.Append(err, &SchemaError{Path: fpath + ".args", Msg: "contains null"})
				continue
			}
			err = multierr.Append(err, validateRef(fmt.Sprintf("%s.args[%s].type", fpath, a.Name), a.Type))
		}
	}

	for _, f := range t.InputFields {
		if f == nil {
			err = multierr.Append(err, &SchemaError{Path: path + ".inputFields", Msg: "contains null"})
			continue
		}
		err = multierr.Append(err, validateRef(fmt.Sprintf("%s.inputFields[%s].type", path, f.Name), f.Type))
	}

	for i, m := range t.PossibleTypes {
		if m == nil || m.Name == "" {
			err = multierr.Append(err, &SchemaError{Path: fmt.Sprintf("%s.possibleTypes[%d]", path, i), Msg: "has no name"})
		}
	}

	for i, v := range t.EnumValues {
		if v == nil {
			err = multierr.Append(err, &SchemaError{Path: fmt.Sprintf("%s.enumValues[%d]", path, i), Msg: "is null"})
		}
	}
	return
}

// validateRef checks that a type reference is present and that its
// wrapper chain terminates in a named type within MaxWrapperDepth.
func validateRef(path string, t *Type) error {
	if t == nil {
		return &SchemaError{Path: path, Msg: "is required"}
	}

	for depth := 0; t.Kind.IsWrapper(); depth++ {
		if depth == MaxWrapperDepth {
			return &SchemaError{Path: path, Msg: fmt.Sprintf("nests more than %d wrappers", MaxWrapperDepth)}
		}
		if t.OfType == nil {
			return &SchemaError{Path: path, Msg: t.Kind.String() + " wrapper has no ofType"}
		}
		t = t.OfType
	}

	if t.Name == "" {
		return &SchemaError{Path: path, Msg: "does not end in a named type"}
	}
	return nil
}

func typePath(t *Type) string { return "types[" + t.Name + "]" }
