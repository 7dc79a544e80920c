package introspection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode reads an introspection result from r and validates it.
//
// The schema object may be given bare, nested under a "__schema" key, or
// as a full GraphQL response, {"data": {"__schema": {...}}}.
func Decode(r io.Reader) (*Schema, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("introspection: decoding schema: %w", err)
	}

	s, err := unmarshalSchema(raw)
	if err != nil {
		return nil, err
	}

	return s, Validate(s)
}

// DecodeBytes is like Decode but reads from b.
func DecodeBytes(b []byte) (*Schema, error) { return Decode(bytes.NewReader(b)) }

// maxEnvelopeDepth bounds how many "data" / "__schema" keys are unwrapped.
const maxEnvelopeDepth = 2

func unmarshalSchema(raw json.RawMessage) (*Schema, error) {
	for i := 0; ; i++ {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, &SchemaError{Msg: "schema must be a JSON object"}
		}
		if obj == nil {
			return nil, &SchemaError{Msg: "schema is null"}
		}

		inner, ok := obj["__schema"]
		if !ok {
			inner, ok = obj["data"]
			if ok {
				if errs, hasErrs := obj["errors"]; hasErrs && !isNull(errs) && isNull(inner) {
					return nil, fmt.Errorf("introspection: query returned errors: %s", errs)
				}
			}
		}
		if ok && i < maxEnvelopeDepth {
			raw = inner
			continue
		}

		types, ok := obj["types"]
		if !ok || isNull(types) {
			return nil, &SchemaError{Path: "types", Msg: "is required"}
		}

		s := new(Schema)
		if err := json.Unmarshal(raw, s); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return nil, &SchemaError{Path: typeErr.Field, Msg: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value)}
			}
			return nil, fmt.Errorf("introspection: decoding schema: %w", err)
		}
		return s, nil
	}
}

func isNull(raw json.RawMessage) bool { return bytes.Equal(bytes.TrimSpace(raw), []byte("null")) }
