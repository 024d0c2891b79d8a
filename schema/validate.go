package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/luxlabs/go-lux/debug"
	"github.com/luxlabs/go-lux/ir"
)

// DefaultPayloadDepth bounds payload nesting during validation so a
// pathological input cannot cause unbounded recursion.
const DefaultPayloadDepth = 128

type ValidateConfig struct {
	MaxDepth int
}

type ValidateOption func(*ValidateConfig)

func ValidateMaxDepth(n int) ValidateOption {
	return func(c *ValidateConfig) { c.MaxDepth = n }
}

type ViolationCode int

const (
	TypeMismatch ViolationCode = iota
	MissingRequired
	UnexpectedProperty
	EnumMismatch
	FormatMismatch
	RangeViolation
)

func (c ViolationCode) String() string {
	s, ok := map[ViolationCode]string{
		TypeMismatch:       "type-mismatch",
		MissingRequired:    "missing-required",
		UnexpectedProperty: "unexpected-property",
		EnumMismatch:       "enum-mismatch",
		FormatMismatch:     "format-mismatch",
		RangeViolation:     "range-violation",
	}[c]
	if ok {
		return s
	}
	return "<unknown violation>"
}

func (c ViolationCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ViolationCode) UnmarshalText(d []byte) error {
	cc, ok := map[string]ViolationCode{
		"type-mismatch":       TypeMismatch,
		"missing-required":    MissingRequired,
		"unexpected-property": UnexpectedProperty,
		"enum-mismatch":       EnumMismatch,
		"format-mismatch":     FormatMismatch,
		"range-violation":     RangeViolation,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized violation code %q", d)
	}
	*c = cc
	return nil
}

// Violation is one structured report of one way a payload fails its
// schema. Code and Path are the machine-readable part; Expected and
// Actual are short human summaries.
type Violation struct {
	Path     ir.Path
	Code     ViolationCode
	Expected string
	Actual   string
}

func (v Violation) String() string {
	if v.Actual == "" {
		return fmt.Sprintf("%s: %s: expected %s", v.Path, v.Code, v.Expected)
	}
	return fmt.Sprintf("%s: %s: expected %s, got %s", v.Path, v.Code, v.Expected, v.Actual)
}

// Validate walks a compiled schema node against a payload and returns
// every violation found. An empty result means the payload conforms.
//
// Validation is exhaustive and deterministic: all sibling violations
// are collected, ordered by schema property declaration order, then
// array index order. The same (node, payload) pair always yields the
// same list.
func Validate(node *SchemaNode, doc *ir.Node, opts ...ValidateOption) []Violation {
	cfg := &ValidateConfig{MaxDepth: DefaultPayloadDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	v := &validator{cfg: cfg}
	v.walk(node, doc, nil, 0)
	return v.out
}

type validator struct {
	cfg *ValidateConfig
	out []Violation
}

func (v *validator) report(path ir.Path, code ViolationCode, expected, actual string) {
	if debug.Validate() {
		debug.Logf("validate: %s at %s\n", code, path)
	}
	v.out = append(v.out, Violation{Path: path, Code: code, Expected: expected, Actual: actual})
}

func (v *validator) walk(n *SchemaNode, doc *ir.Node, path ir.Path, depth int) {
	if depth > v.cfg.MaxDepth {
		v.report(path, TypeMismatch,
			fmt.Sprintf("payload nesting of at most %d levels", v.cfg.MaxDepth), "deeper tree")
		return
	}
	if !v.kindMatch(n, doc, path) {
		// no recursion into a mistyped subtree; one violation is
		// enough and cascades would be noise
		return
	}
	if len(n.Enum) > 0 && !enumMember(n.Enum, doc) {
		v.report(path, EnumMismatch, "one of "+enumText(n.Enum), summarize(doc))
	}
	switch doc.Type {
	case ir.StringType:
		v.checkString(n, doc, path)
	case ir.NumberType:
		v.checkNumber(n, doc, path)
	case ir.ObjectType:
		if n.Kind == ObjectKind {
			v.checkObject(n, doc, path, depth)
		}
	case ir.ArrayType:
		if n.Kind == ArrayKind {
			v.checkArray(n, doc, path, depth)
		}
	}
}

func (v *validator) kindMatch(n *SchemaNode, doc *ir.Node, path ir.Path) bool {
	if n.Kind == UnionKind {
		for _, m := range n.Members {
			if m.Matches(doc) {
				return true
			}
		}
		names := make([]string, len(n.Members))
		for i, m := range n.Members {
			names[i] = m.String()
		}
		v.report(path, TypeMismatch, strings.Join(names, " or "), summarize(doc))
		return false
	}
	if n.Kind.Matches(doc) {
		return true
	}
	v.report(path, TypeMismatch, n.Kind.String(), summarize(doc))
	return false
}

func (v *validator) checkString(n *SchemaNode, doc *ir.Node, path ir.Path) {
	if n.Format != "" && KnownFormat(n.Format) && !checkFormat(n.Format, doc.String) {
		v.report(path, FormatMismatch, n.Format, summarize(doc))
	}
	if n.Pattern != nil && !n.Pattern.MatchString(doc.String) {
		v.report(path, FormatMismatch, "pattern "+strconv.Quote(n.Pattern.String()), summarize(doc))
	}
}

func (v *validator) checkNumber(n *SchemaNode, doc *ir.Node, path ir.Path) {
	f, ok := doc.AsFloat()
	if !ok {
		return
	}
	if n.Minimum != nil && f < *n.Minimum {
		v.report(path, RangeViolation, ">= "+floatText(*n.Minimum), summarize(doc))
	}
	if n.Maximum != nil && f > *n.Maximum {
		v.report(path, RangeViolation, "<= "+floatText(*n.Maximum), summarize(doc))
	}
}

func (v *validator) checkObject(n *SchemaNode, doc *ir.Node, path ir.Path, depth int) {
	for _, name := range n.Required {
		if ir.Get(doc, name) == nil {
			v.report(path.Field(name), MissingRequired, "property "+strconv.Quote(name), "")
		}
	}
	for i := range n.Properties {
		prop := &n.Properties[i]
		child := ir.Get(doc, prop.Name)
		if child == nil {
			continue
		}
		v.walk(prop.Node, child, path.Field(prop.Name), depth+1)
	}
	if n.AllowAdditional {
		return
	}
	// sorted so the report does not depend on payload key order
	var unexpected []string
	for _, f := range doc.Fields {
		if n.Property(f.String) == nil {
			unexpected = append(unexpected, f.String)
		}
	}
	slices.Sort(unexpected)
	for _, name := range unexpected {
		v.report(path.Field(name), UnexpectedProperty, "no additional properties", "property "+strconv.Quote(name))
	}
}

func (v *validator) checkArray(n *SchemaNode, doc *ir.Node, path ir.Path, depth int) {
	if n.MinItems != nil && len(doc.Values) < *n.MinItems {
		v.report(path, RangeViolation,
			fmt.Sprintf("at least %d items", *n.MinItems), fmt.Sprintf("%d items", len(doc.Values)))
	}
	if n.MaxItems != nil && len(doc.Values) > *n.MaxItems {
		v.report(path, RangeViolation,
			fmt.Sprintf("at most %d items", *n.MaxItems), fmt.Sprintf("%d items", len(doc.Values)))
	}
	if n.Items == nil {
		return
	}
	for i, e := range doc.Values {
		v.walk(n.Items, e, path.Elem(i), depth+1)
	}
}

func enumMember(enum []*ir.Node, doc *ir.Node) bool {
	for _, e := range enum {
		if ir.Equal(e, doc) {
			return true
		}
	}
	return false
}

func enumText(enum []*ir.Node) string {
	parts := make([]string, len(enum))
	for i, e := range enum {
		parts[i] = summarize(e)
	}
	return strings.Join(parts, ", ")
}

// summarize renders a short description of a payload value for
// violation reports.
func summarize(y *ir.Node) string {
	switch y.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(y.Bool)
	case ir.StringType:
		s := y.String
		if len(s) > 40 {
			s = s[:37] + "..."
		}
		return strconv.Quote(s)
	case ir.NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return floatText(*y.Float64)
		}
		return y.Number
	case ir.ArrayType:
		return fmt.Sprintf("array of %d items", len(y.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d properties", len(y.Fields))
	}
	return "<unknown value>"
}

func floatText(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
