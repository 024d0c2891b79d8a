package schema

import (
	"regexp"

	"github.com/luxlabs/go-lux/ir"
)

// SchemaNode is one compiled type constraint. Nodes are immutable
// once compiled; schema evolution produces a new tree under a new
// version, never an in-place edit.
type SchemaNode struct {
	Kind        Kind
	Description string

	// Members holds the primitive kinds of a union node.
	Members []Kind

	// Enum restricts the value to one of the listed literals.
	Enum []*ir.Node

	// Format names a structural string format (date-time, date, ...).
	// Unknown formats are carried but not enforced.
	Format string

	// Pattern is the compiled `pattern` keyword, nil when absent.
	Pattern *regexp.Regexp

	// Minimum and Maximum are inclusive numeric bounds; nil means
	// unset.
	Minimum *float64
	Maximum *float64

	// Properties lists child constraints of an object node in
	// declaration order. Required is always a subset of the property
	// names; the compiler rejects declarations that break this.
	Properties      []Property
	Required        []string
	AllowAdditional bool

	// Items constrains every element of an array node; nil leaves
	// elements unconstrained.
	Items    *SchemaNode
	MinItems *int
	MaxItems *int

	// Extra preserves declaration keywords outside the enforced
	// subset as opaque metadata. They are reported as compile
	// warnings and never enforced.
	Extra []ExtraKeyword
}

type Property struct {
	Name string
	Node *SchemaNode
}

type ExtraKeyword struct {
	Name  string
	Value *ir.Node
}

// Property returns the child constraint for a named object property,
// or nil.
func (n *SchemaNode) Property(name string) *SchemaNode {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return n.Properties[i].Node
		}
	}
	return nil
}

// RequiredSet reports whether a property name is required.
func (n *SchemaNode) RequiredSet(name string) bool {
	for _, r := range n.Required {
		if r == name {
			return true
		}
	}
	return false
}
