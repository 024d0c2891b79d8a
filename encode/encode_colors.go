package encode

import (
	"github.com/fatih/color"

	"github.com/luxlabs/go-lux/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.NullType
	colors.Map[able] = color.New(color.Faint).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.MagentaString

	able.Type = ir.StringType
	colors.Map[able] = color.GreenString

	return colors
}

func (c *Colors) Sprintf(t ir.Type, attr ColorAttr, format string, args ...any) string {
	fn := c.Map[Colorable{Type: t, Attr: attr}]
	if fn == nil {
		fn = c.Default
	}
	return fn(format, args...)
}

func colorDefault(format string, args ...any) string {
	return color.New().SprintfFunc()(format, args...)
}
