// Package schema provides the signal schema compiler, validator, and
// registry.
//
// # Declarations
//
// A schema declaration is the JSON-Schema subset used by the Lux
// signal catalog: object/array/string/number/integer/boolean/null
// types, nested properties, required (both the standard string-list
// form and the catalog's inline `required: true` property marker),
// enum, format, pattern, minimum/maximum, minItems/maxItems, and
// additionalProperties. Declarations arrive as ir.Node trees, usually
// decoded from YAML or JSON files.
//
// # Compilation
//
// Compile turns a (name, version, description, schema) declaration
// into an immutable SchemaDefinition holding a tree of SchemaNodes.
// Compilation is pure: the same declaration always compiles to a
// structurally identical tree. Keywords outside the supported subset
// are preserved as opaque metadata on the node and reported as
// Warnings so authors notice the gap between the declared contract
// and enforced behavior.
//
// # Validation
//
// Validate walks a SchemaNode tree against a payload and returns the
// complete, deterministically ordered list of Violations; an empty
// list means the payload conforms. Validation never stops at the
// first problem: downstream consumers want the whole diff in one
// pass.
//
// # Registry
//
// Registry stores definitions keyed by (name, version) with
// numeric-tuple version ordering. Registration happens at bootstrap;
// after Freeze the registry is immutable and lookups run without
// locking. Bootstrap registers a batch of declarations with
// partial-failure tolerance, reporting every failure rather than
// aborting on the first.
//
// # Usage
//
//	reg := schema.NewRegistry()
//	def, err := schema.Compile("task.task_definition", "1.0", "Task definitions", raw)
//	if err != nil { ... }
//	if err := reg.Register(def); err != nil { ... }
//	reg.Freeze()
//
//	def, _ = reg.Lookup("task.task_definition", "")
//	violations := schema.Validate(def.Root, payload)
package schema
