// Package introspection models the result of a GraphQL introspection query.
//
// The types mirror the JSON shape returned for the standard introspection
// query (see Query), so a schema fetched from a live endpoint, read from a
// .json file or converted from SDL all end up as the same immutable value.
package introspection

import (
	"encoding/json"
	"fmt"
)

// Kind is the kind tag of a GraphQL type.
type Kind uint8

// The kinds a type may have. KindUnknown is assigned to any kind
// string this package does not recognize.
const (
	KindUnknown Kind = iota
	Scalar
	Object
	InputObject
	Enum
	Interface
	Union
	List
	NonNull
)

var kindNames = [...]string{
	KindUnknown: "UNKNOWN",
	Scalar:      "SCALAR",
	Object:      "OBJECT",
	InputObject: "INPUT_OBJECT",
	Enum:        "ENUM",
	Interface:   "INTERFACE",
	Union:       "UNION",
	List:        "LIST",
	NonNull:     "NON_NULL",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsWrapper reports whether k is one of the unnamed modifier kinds.
func (k Kind) IsWrapper() bool { return k == List || k == NonNull }

// ParseKind returns the Kind for the given introspection kind name.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if k != int(KindUnknown) && name == s {
			return Kind(k)
		}
	}
	return KindUnknown
}

// MarshalJSON encodes the kind as its introspection name.
func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON decodes an introspection kind name. Unrecognized names
// decode to KindUnknown, so newer schema formats still load.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*k = KindUnknown
	if s != nil {
		*k = ParseKind(*s)
	}
	return nil
}

// Type is either a named type from the schema's type list or a type
// reference, in which case LIST and NON_NULL nodes wrap OfType.
type Type struct {
	Kind          Kind          `json:"kind"`
	Name          string        `json:"name,omitempty"`
	Description   string        `json:"description,omitempty"`
	Fields        []*Field      `json:"fields,omitempty"`
	InputFields   []*InputValue `json:"inputFields,omitempty"`
	Interfaces    []*Type       `json:"interfaces,omitempty"`
	EnumValues    []*EnumValue  `json:"enumValues,omitempty"`
	PossibleTypes []*Type       `json:"possibleTypes,omitempty"`
	OfType        *Type         `json:"ofType,omitempty"`
}

// Field is a field of an OBJECT or INTERFACE type.
type Field struct {
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Args              []*InputValue `json:"args"`
	Type              *Type         `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason string        `json:"deprecationReason,omitempty"`
}

// InputValue is either a field argument or an input object field.
type InputValue struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        *Type  `json:"type"`

	// DefaultValue is the GraphQL literal of the default value; nil if none.
	DefaultValue *string `json:"defaultValue,omitempty"`
}

// EnumValue is a single value of an ENUM type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
}

// TypeName references a named type by name, as the schema root
// operation types do.
type TypeName struct {
	Name string `json:"name"`
}

// Schema is the root of an introspection result.
type Schema struct {
	QueryType        *TypeName `json:"queryType"`
	MutationType     *TypeName `json:"mutationType"`
	SubscriptionType *TypeName `json:"subscriptionType,omitempty"`
	Types            []*Type   `json:"types"`
}

// Lookup returns the named type with the given name, or nil.
func (s *Schema) Lookup(name string) *Type {
	for _, t := range s.Types {
		if t != nil && t.Name == name {
			return t
		}
	}
	return nil
}

// Named returns the named type at the end of t's wrapper chain.
func Named(t *Type) (*Type, error) {
	for i := 0; t != nil; i++ {
		if !t.Kind.IsWrapper() {
			return t, nil
		}
		if i >= MaxWrapperDepth {
			return nil, &SchemaError{Msg: fmt.Sprintf("wrapper chain exceeds %d levels", MaxWrapperDepth)}
		}
		t = t.OfType
	}
	return nil, &SchemaError{Msg: "wrapper chain does not end in a named type"}
}

// NamedType returns a reference to the named type called name.
func NamedType(kind Kind, name string) *Type { return &Type{Kind: kind, Name: name} }

// NonNullOf wraps t in a NON_NULL modifier.
func NonNullOf(t *Type) *Type { return &Type{Kind: NonNull, OfType: t} }

// ListOf wraps t in a LIST modifier.
func ListOf(t *Type) *Type { return &Type{Kind: List, OfType: t} }
