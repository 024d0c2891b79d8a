// Package catalog embeds the built-in signal schema declarations and
// registers them into a schema.Registry. The declarations live under
// defs/ as YAML files, one schema version per file, grouped by domain.
package catalog

import (
	"embed"

	"github.com/luxlabs/go-lux/schema"
)

//go:embed defs
var defsFS embed.FS

// Decls parses every embedded declaration file, in lexical path order.
func Decls() ([]schema.Decl, error) {
	return schema.LoadFS(defsFS, "defs")
}

// Bootstrap registers the embedded catalog into reg. Registration is
// partial-failure tolerant; inspect the result for failures and
// compile warnings.
func Bootstrap(reg *schema.Registry, opts ...schema.CompileOption) (*schema.BootstrapResult, error) {
	decls, err := Decls()
	if err != nil {
		return nil, err
	}
	return schema.Bootstrap(reg, decls, opts...), nil
}

// New returns a frozen registry holding the embedded catalog. Every
// embedded declaration is expected to register; any failure is an
// error.
func New() (*schema.Registry, error) {
	reg := schema.NewRegistry()
	res, err := Bootstrap(reg)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}
