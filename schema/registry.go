package schema

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/luxlabs/go-lux/debug"
	"github.com/luxlabs/go-lux/ir"
)

// Registry stores schema definitions keyed by (name, version).
//
// The expected lifecycle is write-then-freeze: bootstrap registers
// the catalog, Freeze closes the registry, and from then on lookups
// run lock-free against the effectively immutable store. Registries
// are constructed explicitly and passed to consumers; there is no
// process-global instance, so tests can run isolated registries.
type Registry struct {
	mu     sync.RWMutex
	frozen atomic.Bool

	// name -> definitions sorted ascending by version
	byName map[string][]*SchemaDefinition
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string][]*SchemaDefinition),
	}
}

// Register stores a compiled definition. Registering an existing
// (name, version) pair fails with ErrDuplicateVersion and leaves the
// first registration intact.
func (r *Registry) Register(def *SchemaDefinition) error {
	if def == nil || def.Root == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	if def.Name == "" {
		return fmt.Errorf("schema must have a name")
	}
	if r.frozen.Load() {
		return fmt.Errorf("%w: cannot register %s", ErrFrozen, def.Ref())
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	defs := r.byName[def.Name]
	i, found := slices.BinarySearchFunc(defs, def, func(a, b *SchemaDefinition) int {
		return a.Version.Compare(b.Version)
	})
	if found {
		return fmt.Errorf("%w: %s", ErrDuplicateVersion, def.Ref())
	}
	r.byName[def.Name] = slices.Insert(defs, i, def)
	if debug.Registry() {
		debug.Logf("registry: registered %s\n", def.Ref())
	}
	return nil
}

// RegisterRaw compiles a declaration and registers the result.
func (r *Registry) RegisterRaw(name, version, description string, raw *ir.Node, opts ...CompileOption) (*SchemaDefinition, error) {
	def, err := Compile(name, version, description, raw, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Lookup resolves a definition. An empty version resolves to the
// highest registered version of the name, preferring versions not
// marked deprecated.
func (r *Registry) Lookup(name, version string) (*SchemaDefinition, error) {
	defer r.rlock()()

	defs := r.byName[name]
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if version == "" {
		for i := len(defs) - 1; i >= 0; i-- {
			if !defs[i].Deprecated {
				return defs[i], nil
			}
		}
		// every version deprecated: resolve the highest anyway
		return defs[len(defs)-1], nil
	}
	v, err := ParseVersion(version)
	if err != nil {
		return nil, fmt.Errorf("%w: %q@%q: %v", ErrVersionNotFound, name, version, err)
	}
	for _, def := range defs {
		if def.Version.Equal(v) {
			return def, nil
		}
	}
	return nil, fmt.Errorf("%w: %q has no version %q", ErrVersionNotFound, name, version)
}

// Entry is one (name, version) row of a registry listing.
type Entry struct {
	Name        string
	Version     Version
	Description string
	Deprecated  bool
}

func (e Entry) Ref() string {
	return e.Name + "@" + e.Version.String()
}

// List enumerates registered schemas, optionally restricted to a name
// prefix, ordered by name then version ascending.
func (r *Registry) List(namePrefix string) []Entry {
	defer r.rlock()()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		if namePrefix != "" && !strings.HasPrefix(name, namePrefix) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	var res []Entry
	for _, name := range names {
		for _, def := range r.byName[name] {
			res = append(res, Entry{
				Name:        def.Name,
				Version:     def.Version,
				Description: def.Description,
				Deprecated:  def.Deprecated,
			})
		}
	}
	return res
}

// Deprecate marks a registered version as retired. Deprecated
// versions still resolve when requested explicitly but are skipped by
// latest-version resolution while a live version exists.
func (r *Registry) Deprecate(name, version string) error {
	if r.frozen.Load() {
		return fmt.Errorf("%w: cannot deprecate %s@%s", ErrFrozen, name, version)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	defs := r.byName[name]
	if len(defs) == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	v, err := ParseVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q@%q: %v", ErrVersionNotFound, name, version, err)
	}
	for _, def := range defs {
		if def.Version.Equal(v) {
			def.Deprecated = true
			return nil
		}
	}
	return fmt.Errorf("%w: %q has no version %q", ErrVersionNotFound, name, version)
}

// Freeze closes the registry. Registration and deprecation fail with
// ErrFrozen afterwards, and read paths stop taking the lock.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen.Store(true)
	if debug.Registry() {
		debug.Logf("registry: frozen with %d names\n", len(r.byName))
	}
}

func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

func (r *Registry) rlock() func() {
	if r.frozen.Load() {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}
