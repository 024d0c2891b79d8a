package schema

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/luxlabs/go-lux/debug"
	"github.com/luxlabs/go-lux/ir"
)

// Decl is one raw schema declaration tuple, as read from a catalog
// file: the (name, version, description, schema) signature every
// signal schema carries.
type Decl struct {
	Name        string
	Version     string
	Description string
	Schema      *ir.Node

	// Source identifies the declaration's origin (file path) for
	// bootstrap failure reports.
	Source string
}

// ParseDecl decodes a declaration document (YAML or JSON) with
// top-level name, version, description, and schema fields.
func ParseDecl(d []byte, source string) (*Decl, error) {
	node, err := ir.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%s: declaration must be an object", source)
	}
	decl := &Decl{Source: source}
	for _, key := range []string{"name", "version", "description"} {
		val := ir.Get(node, key)
		if val == nil || val.Type != ir.StringType {
			return nil, fmt.Errorf("%s: missing or non-string %q", source, key)
		}
		switch key {
		case "name":
			decl.Name = val.String
		case "version":
			decl.Version = val.String
		case "description":
			decl.Description = val.String
		}
	}
	decl.Schema = ir.Get(node, "schema")
	if decl.Schema == nil {
		return nil, fmt.Errorf("%s: missing schema", source)
	}
	return decl, nil
}

// LoadFS reads every .yaml, .yml, and .json declaration under dir in
// fsys, in lexical path order.
func LoadFS(fsys fs.FS, dir string) ([]Decl, error) {
	var decls []Decl
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch path.Ext(p) {
		case ".yaml", ".yml", ".json":
		default:
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", p, err)
		}
		decl, err := ParseDecl(data, p)
		if err != nil {
			return err
		}
		decls = append(decls, *decl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decls, nil
}

// BootstrapFailure records one declaration that failed to register,
// with enough context to identify the offending file.
type BootstrapFailure struct {
	Name    string
	Version string
	Source  string
	Err     error
}

func (f BootstrapFailure) String() string {
	return fmt.Sprintf("%s (%s@%s): %v", f.Source, f.Name, f.Version, f.Err)
}

// SourceWarning ties a compile warning back to its declaration.
type SourceWarning struct {
	Source  string
	Ref     string
	Warning Warning
}

// BootstrapResult reports the outcome of a batch registration.
type BootstrapResult struct {
	Registered []*SchemaDefinition
	Failures   []BootstrapFailure
	Warnings   []SourceWarning
}

// Err returns nil when every declaration registered, otherwise an
// error summarizing all failures.
func (r *BootstrapResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	parts := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		parts[i] = f.String()
	}
	return fmt.Errorf("bootstrap: %d of %d declarations failed:\n  %s",
		len(r.Failures), len(r.Failures)+len(r.Registered), strings.Join(parts, "\n  "))
}

// Bootstrap registers a batch of declarations with partial-failure
// tolerance: one bad declaration never blocks the rest, and the
// result reports every failure and every compile warning.
func Bootstrap(reg *Registry, decls []Decl, opts ...CompileOption) *BootstrapResult {
	res := &BootstrapResult{}
	for i := range decls {
		decl := &decls[i]
		def, err := reg.RegisterRaw(decl.Name, decl.Version, decl.Description, decl.Schema, opts...)
		if err != nil {
			res.Failures = append(res.Failures, BootstrapFailure{
				Name:    decl.Name,
				Version: decl.Version,
				Source:  decl.Source,
				Err:     err,
			})
			continue
		}
		res.Registered = append(res.Registered, def)
		for _, w := range def.Warnings {
			res.Warnings = append(res.Warnings, SourceWarning{
				Source:  decl.Source,
				Ref:     def.Ref(),
				Warning: w,
			})
		}
	}
	if debug.Bootstrap() {
		debug.Logf("bootstrap: %d registered, %d failed, %d warnings\n",
			len(res.Registered), len(res.Failures), len(res.Warnings))
	}
	return res
}
