// Package encode renders ir node trees as JSON text.
//
// Output is canonical: object fields appear in declaration order and
// number formatting is stable, so encoding the same tree twice yields
// identical bytes. Schema-version diffs and test assertions rely on
// that. Colors, when enabled, wrap tokens in ANSI escapes for terminal
// display and are not part of the canonical form.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luxlabs/go-lux/ir"
)

type EncodeConfig struct {
	Indent string
	Wire   bool
	Colors *Colors
}

type EncodeOption func(*EncodeConfig)

// EncodeIndent sets the indentation unit (default two spaces).
func EncodeIndent(s string) EncodeOption {
	return func(c *EncodeConfig) { c.Indent = s }
}

// EncodeWire selects compact single-line output.
func EncodeWire(v bool) EncodeOption {
	return func(c *EncodeConfig) { c.Wire = v }
}

func EncodeColors(colors *Colors) EncodeOption {
	return func(c *EncodeConfig) { c.Colors = colors }
}

func Encode(y *ir.Node, w io.Writer, opts ...EncodeOption) error {
	cfg := &EncodeConfig{Indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}
	e := &encoder{cfg: cfg, w: w}
	if err := e.encode(y, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Bytes returns the canonical encoding of a node.
func Bytes(y *ir.Node, opts ...EncodeOption) ([]byte, error) {
	var sb strings.Builder
	if err := Encode(y, &sb, opts...); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// WireJSON returns a compact, uncolored JSON encoding, suitable for
// interchange (e.g. as input to an RFC 6902 patch).
func WireJSON(y *ir.Node) ([]byte, error) {
	var sb strings.Builder
	e := &encoder{cfg: &EncodeConfig{Wire: true}, w: &sb}
	if err := e.encode(y, 0); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

type encoder struct {
	cfg *EncodeConfig
	w   io.Writer
}

func (e *encoder) encode(y *ir.Node, depth int) error {
	switch y.Type {
	case ir.NullType:
		return e.token(y.Type, ValueColor, "null")
	case ir.BoolType:
		return e.token(y.Type, ValueColor, strconv.FormatBool(y.Bool))
	case ir.NumberType:
		return e.token(y.Type, ValueColor, numberText(y))
	case ir.StringType:
		return e.token(y.Type, ValueColor, quote(y.String))
	case ir.ArrayType:
		return e.encodeArray(y, depth)
	case ir.ObjectType:
		return e.encodeObject(y, depth)
	}
	return fmt.Errorf("cannot encode node type %s", y.Type)
}

func (e *encoder) encodeArray(y *ir.Node, depth int) error {
	if len(y.Values) == 0 {
		return e.raw("[]")
	}
	if err := e.raw("["); err != nil {
		return err
	}
	for i, v := range y.Values {
		if i > 0 {
			if err := e.raw(","); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.encode(v, depth+1); err != nil {
			return err
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.raw("]")
}

func (e *encoder) encodeObject(y *ir.Node, depth int) error {
	if len(y.Fields) == 0 {
		return e.raw("{}")
	}
	if err := e.raw("{"); err != nil {
		return err
	}
	for i, f := range y.Fields {
		if i > 0 {
			if err := e.raw(","); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.token(y.Type, FieldColor, quote(f.String)); err != nil {
			return err
		}
		if err := e.raw(": "); err != nil {
			return err
		}
		if err := e.encode(y.Values[i], depth+1); err != nil {
			return err
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.raw("}")
}

func (e *encoder) token(t ir.Type, attr ColorAttr, s string) error {
	if e.cfg.Colors != nil {
		s = e.cfg.Colors.Sprintf(t, attr, "%s", s)
	}
	return e.raw(s)
}

func (e *encoder) raw(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *encoder) newline(depth int) error {
	if e.cfg.Wire {
		return nil
	}
	if err := e.raw("\n"); err != nil {
		return err
	}
	return e.raw(strings.Repeat(e.cfg.Indent, depth))
}

func numberText(y *ir.Node) string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return y.Number
}

func quote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}
