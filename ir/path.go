package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns a JSONPath-style location for a node within its tree,
// such as "$.objectives[0].priority".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Step is one element of a Path: either an object field or an array
// index.
type Step struct {
	Field string
	Index int
	Elem  bool
}

// Path locates a value within a payload or declaration tree. Unlike
// Node.Path it is a value type built top-down, so tree walkers can
// extend it as they descend without back-pointers.
type Path []Step

func (p Path) Field(name string) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, Step{Field: name})
}

func (p Path) Elem(i int) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, Step{Index: i, Elem: true})
}

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, s := range p {
		if s.Elem {
			fmt.Fprintf(buf, "[%d]", s.Index)
			continue
		}
		if s.Field != "" && strings.IndexAny(s.Field, "'.*$[]") == -1 {
			buf.WriteString("." + s.Field)
			continue
		}
		buf.WriteString(".'" + strings.Replace(s.Field, "'", "\\'", -1) + "'")
	}
	return buf.String()
}
