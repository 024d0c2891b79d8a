package schema

import (
	"fmt"

	"github.com/luxlabs/go-lux/ir"
)

// Kind is the type constraint of a SchemaNode. It mirrors the JSON
// Schema type vocabulary, with IntegerKind distinct from NumberKind
// and UnionKind for declarations whose type is a list of primitives.
type Kind int

const (
	ObjectKind Kind = iota
	ArrayKind
	StringKind
	NumberKind
	IntegerKind
	BooleanKind
	NullKind
	UnionKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ObjectKind:  "object",
		ArrayKind:   "array",
		StringKind:  "string",
		NumberKind:  "number",
		IntegerKind: "integer",
		BooleanKind: "boolean",
		NullKind:    "null",
		UnionKind:   "union",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind parses a declaration type name. UnionKind has no name: it
// is formed from a list-valued `type` keyword, never named directly.
func ParseKind(s string) (Kind, error) {
	k, ok := map[string]Kind{
		"object":  ObjectKind,
		"array":   ArrayKind,
		"string":  StringKind,
		"number":  NumberKind,
		"integer": IntegerKind,
		"boolean": BooleanKind,
		"null":    NullKind,
	}[s]
	if !ok {
		return 0, fmt.Errorf("unrecognized type %q", s)
	}
	return k, nil
}

// Matches reports whether a payload value's runtime type satisfies
// the kind. IntegerKind accepts whole-valued numbers, so 5.0 passes
// an integer constraint but 5.5 does not.
func (k Kind) Matches(doc *ir.Node) bool {
	switch k {
	case ObjectKind:
		return doc.Type == ir.ObjectType
	case ArrayKind:
		return doc.Type == ir.ArrayType
	case StringKind:
		return doc.Type == ir.StringType
	case NumberKind:
		return doc.Type == ir.NumberType
	case IntegerKind:
		return doc.Type == ir.NumberType && doc.IsWhole()
	case BooleanKind:
		return doc.Type == ir.BoolType
	case NullKind:
		return doc.Type == ir.NullType
	}
	return false
}
