package ir

import (
	"testing"
)

func TestFromKeyValsOrder(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
		{Key: "m", Val: FromInt(3)},
	})
	want := []string{"z", "a", "m"}
	for i, f := range y.Fields {
		if f.String != want[i] {
			t.Errorf("field %d: got %q, want %q", i, f.String, want[i])
		}
	}
	if v := Get(y, "a"); v == nil || *v.Int64 != 2 {
		t.Errorf("Get(a): got %v", v)
	}
	if v := Get(y, "nope"); v != nil {
		t.Errorf("Get(nope): got %v, want nil", v)
	}
}

func TestFromMapSorted(t *testing.T) {
	y := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
	})
	if y.Fields[0].String != "a" || y.Fields[1].String != "z" {
		t.Errorf("FromMap order: got %q, %q", y.Fields[0].String, y.Fields[1].String)
	}
}

func TestCloneDetachesValues(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromString("x"), Null()})},
	})
	c := y.Clone()
	if !Equal(y, c) {
		t.Errorf("clone not equal to original")
	}
	c.Values[0].Values[0].String = "changed"
	if Equal(y, c) {
		t.Errorf("mutating clone changed original")
	}
	if inner := c.Values[0].Values[0]; inner.Parent != c.Values[0] {
		t.Errorf("clone parent pointers not rebuilt")
	}
}

func TestIsWhole(t *testing.T) {
	tests := []struct {
		y    *Node
		want bool
	}{
		{FromInt(5), true},
		{FromFloat(5.0), true},
		{FromFloat(5.5), false},
		{FromString("5"), false},
		{FromBool(true), false},
	}
	for i, tc := range tests {
		if got := tc.y.IsWhole(); got != tc.want {
			t.Errorf("test %d: IsWhole=%v, want %v", i, got, tc.want)
		}
	}
}

func TestNodePath(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "objectives", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{
				{Key: "priority", Val: FromInt(1)},
			}),
		})},
	})
	prio := Get(y.Values[0].Values[0], "priority")
	if got := prio.Path(); got != "$.objectives[0].priority" {
		t.Errorf("Path: got %q", got)
	}
	if got := y.Path(); got != "$" {
		t.Errorf("root Path: got %q", got)
	}
}

func TestPathSteps(t *testing.T) {
	var p Path
	p2 := p.Field("a").Elem(3).Field("weird.key")
	if got := p2.String(); got != "$.a[3].'weird.key'" {
		t.Errorf("Path.String: got %q", got)
	}
	// extending a shared prefix must not alias
	base := p.Field("x")
	b1 := base.Field("y")
	b2 := base.Field("z")
	if b1.String() == b2.String() {
		t.Errorf("paths alias: %q", b1)
	}
	if got := base.String(); got != "$.x" {
		t.Errorf("base mutated: %q", got)
	}
}
