package schema

import (
	"regexp"

	"github.com/luxlabs/go-lux/debug"
	"github.com/luxlabs/go-lux/ir"
)

// DefaultMaxDepth bounds declaration nesting. Catalog schemas nest a
// handful of levels; anything deeper is a malformed or adversarial
// declaration.
const DefaultMaxDepth = 32

type CompileConfig struct {
	MaxDepth int
}

type CompileOption func(*CompileConfig)

func CompileMaxDepth(n int) CompileOption {
	return func(c *CompileConfig) { c.MaxDepth = n }
}

// SchemaDefinition is the registry's stored unit: a named, versioned,
// compiled schema.
type SchemaDefinition struct {
	Name        string
	Version     Version
	Description string
	Root        *SchemaNode
	Deprecated  bool

	// Raw is a detached copy of the declaration the definition was
	// compiled from, kept for display and diffing.
	Raw *ir.Node

	// Warnings carries compile-time notices (unsupported keywords,
	// unenforced formats) for bootstrap reporting.
	Warnings []Warning
}

// Ref renders the canonical "name@version" reference.
func (d *SchemaDefinition) Ref() string {
	return d.Name + "@" + d.Version.String()
}

// Compile builds a SchemaDefinition from a raw declaration tree.
// Compilation is pure and deterministic: identical input always
// yields a structurally identical SchemaNode tree.
func Compile(name, version, description string, raw *ir.Node, opts ...CompileOption) (*SchemaDefinition, error) {
	cfg := &CompileConfig{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	if name == "" {
		return nil, compileErrf(ErrMalformed, nil, "schema name must be non-empty")
	}
	if description == "" {
		return nil, compileErrf(ErrMalformed, nil, "schema description must be non-empty")
	}
	v, err := ParseVersion(version)
	if err != nil {
		return nil, compileErrf(ErrMalformed, nil, "%v", err)
	}
	if raw == nil {
		return nil, compileErrf(ErrMalformed, nil, "schema declaration must be provided")
	}
	c := &compiler{cfg: cfg}
	root, err := c.compileNode(raw, nil, 0)
	if err != nil {
		return nil, err
	}
	if root.Kind != ObjectKind {
		return nil, compileErrf(ErrMalformed, nil, "schema must define an object type, got %s", root.Kind)
	}
	def := &SchemaDefinition{
		Name:        name,
		Version:     v,
		Description: description,
		Root:        root,
		Raw:         detach(raw),
		Warnings:    c.warnings,
	}
	if debug.Compile() {
		for _, w := range c.warnings {
			debug.Logf("compile %s: warning %s\n", def.Ref(), w)
		}
	}
	return def, nil
}

type compiler struct {
	cfg      *CompileConfig
	warnings []Warning
}

func (c *compiler) warnf(path ir.Path, keyword, detail string) {
	c.warnings = append(c.warnings, Warning{Path: path, Keyword: keyword, Detail: detail})
}

func (c *compiler) compileNode(raw *ir.Node, path ir.Path, depth int) (*SchemaNode, error) {
	if depth > c.cfg.MaxDepth {
		return nil, compileErrf(ErrDepthExceeded, path, "nesting deeper than %d levels", c.cfg.MaxDepth)
	}
	if raw.Type != ir.ObjectType {
		return nil, compileErrf(ErrMalformed, path, "declaration must be an object, got %s", raw.Type)
	}
	n := &SchemaNode{AllowAdditional: true}
	if err := c.compileType(n, raw, path); err != nil {
		return nil, err
	}

	var inlineRequired []string
	for i, field := range raw.Fields {
		key := field.String
		val := raw.Values[i]
		switch key {
		case "type":
			// handled above
		case "description":
			if val.Type != ir.StringType {
				return nil, compileErrf(ErrMalformed, path, "description must be a string")
			}
			n.Description = val.String
		case "properties":
			if val.Type != ir.ObjectType {
				return nil, compileErrf(ErrMalformed, path, "properties must be an object")
			}
			for j, propField := range val.Fields {
				propName := propField.String
				propRaw := val.Values[j]
				child, err := c.compileNode(propRaw, path.Field(propName), depth+1)
				if err != nil {
					return nil, err
				}
				n.Properties = append(n.Properties, Property{Name: propName, Node: child})
				// The catalog's inline style: a `required: true`
				// boolean inside a property marks it required in the
				// enclosing object.
				if req := ir.Get(propRaw, "required"); req != nil && req.Type == ir.BoolType && req.Bool {
					inlineRequired = append(inlineRequired, propName)
				}
			}
		case "required":
			switch val.Type {
			case ir.ArrayType:
				for _, e := range val.Values {
					if e.Type != ir.StringType {
						return nil, compileErrf(ErrMalformed, path, "required entries must be strings")
					}
					n.Required = append(n.Required, e.String)
				}
			case ir.BoolType:
				// inline marker, consumed by the enclosing object
			default:
				return nil, compileErrf(ErrMalformed, path, "required must be a list of strings")
			}
		case "enum":
			if val.Type != ir.ArrayType || len(val.Values) == 0 {
				return nil, compileErrf(ErrMalformed, path, "enum must be a non-empty array")
			}
			for _, e := range val.Values {
				n.Enum = append(n.Enum, detach(e))
			}
		case "format":
			if val.Type != ir.StringType {
				return nil, compileErrf(ErrMalformed, path, "format must be a string")
			}
			n.Format = val.String
			if !KnownFormat(val.String) {
				c.warnf(path, "format", "format "+val.String+" is not enforced")
			}
		case "pattern":
			if val.Type != ir.StringType {
				return nil, compileErrf(ErrMalformed, path, "pattern must be a string")
			}
			re, err := regexp.Compile(val.String)
			if err != nil {
				return nil, compileErrf(ErrMalformed, path, "pattern: %v", err)
			}
			n.Pattern = re
		case "minimum", "maximum":
			f, ok := val.AsFloat()
			if !ok {
				return nil, compileErrf(ErrMalformed, path, "%s must be a number", key)
			}
			if key == "minimum" {
				n.Minimum = &f
			} else {
				n.Maximum = &f
			}
		case "minItems", "maxItems":
			if val.Type != ir.NumberType || !val.IsWhole() {
				return nil, compileErrf(ErrMalformed, path, "%s must be an integer", key)
			}
			f, _ := val.AsFloat()
			m := int(f)
			if m < 0 {
				return nil, compileErrf(ErrMalformed, path, "%s must be non-negative", key)
			}
			if key == "minItems" {
				n.MinItems = &m
			} else {
				n.MaxItems = &m
			}
		case "additionalProperties":
			if val.Type == ir.BoolType {
				n.AllowAdditional = val.Bool
				break
			}
			n.Extra = append(n.Extra, ExtraKeyword{Name: key, Value: detach(val)})
			c.warnf(path, key, "schema-valued additionalProperties is not enforced")
		case "items":
			child, err := c.compileNode(val, path.Field("items"), depth+1)
			if err != nil {
				return nil, err
			}
			n.Items = child
		default:
			n.Extra = append(n.Extra, ExtraKeyword{Name: key, Value: detach(val)})
			c.warnf(path, key, "unsupported keyword preserved but not enforced")
		}
	}

	n.Required = dedup(append(n.Required, inlineRequired...))
	for _, r := range n.Required {
		if n.Property(r) == nil {
			return nil, compileErrf(ErrDanglingRequired, path, "%q is required but not declared in properties", r)
		}
	}
	return n, nil
}

func (c *compiler) compileType(n *SchemaNode, raw *ir.Node, path ir.Path) error {
	typeNode := ir.Get(raw, "type")
	if typeNode == nil {
		return compileErrf(ErrMalformed, path, "missing type")
	}
	switch typeNode.Type {
	case ir.StringType:
		k, err := ParseKind(typeNode.String)
		if err != nil {
			return compileErrf(ErrMalformed, path, "%v", err)
		}
		n.Kind = k
		return nil
	case ir.ArrayType:
		if len(typeNode.Values) == 0 {
			return compileErrf(ErrMalformed, path, "type list must be non-empty")
		}
		members := make([]Kind, 0, len(typeNode.Values))
		for _, e := range typeNode.Values {
			if e.Type != ir.StringType {
				return compileErrf(ErrMalformed, path, "type list entries must be strings")
			}
			k, err := ParseKind(e.String)
			if err != nil {
				return compileErrf(ErrMalformed, path, "%v", err)
			}
			if k == ObjectKind || k == ArrayKind {
				return compileErrf(ErrMalformed, path, "union type members must be primitive, got %s", k)
			}
			members = append(members, k)
		}
		if len(members) == 1 {
			n.Kind = members[0]
			return nil
		}
		n.Kind = UnionKind
		n.Members = members
		return nil
	default:
		return compileErrf(ErrMalformed, path, "type must be a string or list of strings")
	}
}

// detach clones a declaration subtree and severs it from its parent
// so compiled nodes hold no references into the caller's tree.
func detach(y *ir.Node) *ir.Node {
	res := y.Clone()
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

func dedup(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ss))
	res := ss[:0]
	for _, s := range ss {
		if seen[s] {
			continue
		}
		seen[s] = true
		res = append(res, s)
	}
	return res
}
