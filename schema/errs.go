package schema

import (
	"errors"
	"fmt"

	"github.com/luxlabs/go-lux/ir"
)

var (
	// Compile errors.
	ErrMalformed        = errors.New("malformed declaration")
	ErrDanglingRequired = errors.New("required lists undeclared property")
	ErrDepthExceeded    = errors.New("declaration depth exceeded")

	// Registry errors.
	ErrDuplicateVersion = errors.New("schema version already registered")
	ErrNotFound         = errors.New("schema not found")
	ErrVersionNotFound  = errors.New("schema version not found")
	ErrFrozen           = errors.New("registry is frozen")
)

// CompileError reports where in a declaration compilation failed.
// It unwraps to one of the compile sentinel errors, so callers can
// branch with errors.Is.
type CompileError struct {
	Err    error
	Path   ir.Path
	Detail string
}

func (e *CompileError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at %s", e.Err, e.Path)
	}
	return fmt.Sprintf("%v at %s: %s", e.Err, e.Path, e.Detail)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func compileErrf(sentinel error, path ir.Path, format string, args ...any) *CompileError {
	return &CompileError{
		Err:    sentinel,
		Path:   path,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Warning flags a declaration keyword that compiled but will not be
// enforced. Warnings are attached to the SchemaDefinition and
// reported at bootstrap; they never fail compilation.
type Warning struct {
	Path    ir.Path
	Keyword string
	Detail  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: keyword %q: %s", w.Path, w.Keyword, w.Detail)
}
