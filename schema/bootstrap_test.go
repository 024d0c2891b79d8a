package schema

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseDecl(t *testing.T) {
	decl, err := ParseDecl([]byte(`
name: task.example
version: "1.0"
description: an example
schema:
  type: object
  properties:
    a: {type: string}
`), "example.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if decl.Name != "task.example" || decl.Version != "1.0" {
		t.Errorf("decl: %s@%s", decl.Name, decl.Version)
	}
	if decl.Schema == nil {
		t.Fatalf("missing schema node")
	}
	if decl.Source != "example.yaml" {
		t.Errorf("source: %q", decl.Source)
	}
}

func TestParseDeclErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `[1, 2]`},
		{"missing name", "version: \"1.0\"\ndescription: d\nschema: {type: object}\n"},
		{"non-string version", "name: x\nversion: 1.0\ndescription: d\nschema: {type: object}\n"},
		{"missing schema", "name: x\nversion: \"1.0\"\ndescription: d\n"},
	}
	for _, tc := range tests {
		if _, err := ParseDecl([]byte(tc.doc), "t.yaml"); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/b.yaml": &fstest.MapFile{Data: []byte(
			"name: b\nversion: \"1.0\"\ndescription: d\nschema: {type: object}\n")},
		"defs/a.yaml": &fstest.MapFile{Data: []byte(
			"name: a\nversion: \"1.0\"\ndescription: d\nschema: {type: object}\n")},
		"defs/skip.txt": &fstest.MapFile{Data: []byte("not a declaration")},
		"defs/c.json": &fstest.MapFile{Data: []byte(
			`{"name": "c", "version": "1.0", "description": "d", "schema": {"type": "object"}}`)},
	}
	decls, err := LoadFS(fsys, "defs")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}
	// lexical path order
	want := []string{"a", "b", "c"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("names: %v, want %v", names, want)
	}
}

func TestBootstrapPartialTolerance(t *testing.T) {
	reg := NewRegistry()
	decls := []Decl{
		{
			Name: "good.one", Version: "1.0", Description: "fine",
			Schema: mustDecode(t, `{"type": "object"}`),
			Source: "good_one.yaml",
		},
		{
			Name: "bad.one", Version: "1.0", Description: "broken",
			Schema: mustDecode(t, `{"type": "object", "required": ["ghost"]}`),
			Source: "bad_one.yaml",
		},
		{
			Name: "good.two", Version: "1.0", Description: "fine",
			Schema: mustDecode(t, `{"type": "object", "properties": {"x": {"type": "string", "format": "markdown"}}}`),
			Source: "good_two.yaml",
		},
	}
	res := Bootstrap(reg, decls)
	if len(res.Registered) != 2 {
		t.Errorf("registered: %d", len(res.Registered))
	}
	if len(res.Failures) != 1 {
		t.Fatalf("failures: %v", res.Failures)
	}
	if res.Failures[0].Name != "bad.one" || res.Failures[0].Source != "bad_one.yaml" {
		t.Errorf("failure: %+v", res.Failures[0])
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Ref != "good.two@1.0" {
		t.Errorf("warnings: %+v", res.Warnings)
	}
	if err := res.Err(); err == nil || !strings.Contains(err.Error(), "bad_one.yaml") {
		t.Errorf("Err(): %v", err)
	}

	// the good declarations are served despite the bad one
	if _, err := reg.Lookup("good.one", ""); err != nil {
		t.Errorf("lookup good.one: %v", err)
	}
	if _, err := reg.Lookup("good.two", ""); err != nil {
		t.Errorf("lookup good.two: %v", err)
	}
}

func TestBootstrapAllGood(t *testing.T) {
	reg := NewRegistry()
	res := Bootstrap(reg, []Decl{
		{
			Name: "a", Version: "1.0", Description: "d",
			Schema: mustDecode(t, `{"type": "object"}`),
		},
	})
	if err := res.Err(); err != nil {
		t.Errorf("Err(): %v", err)
	}
}
