// Package ir provides the in-memory representation of signal payloads
// and raw schema declarations.
//
// All values handled by the engine (whether decoded from JSON or YAML,
// or built programmatically) are represented as ir.Node trees. A Node
// is a recursive tagged union: null, bool, number, string, array, or
// object. Object nodes keep their fields in declaration order via
// parallel Fields/Values slices, so for ObjectType nodes Fields[i] is
// the key for the value at Values[i] and both slices always have the
// same length. Declaration order is semantic here: the validator's
// deterministic violation ordering depends on it.
//
// Numbers are placed under Int64 if they are 64-bit integers, under
// Float64 if they are floats, and under the Number string as a
// fallback for values neither can represent.
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField); use Path() for a JSONPath-style location string such
// as "$.objectives[0].priority".
//
// Node structures are not thread-safe. Trees handed to the schema
// compiler or validator must not be mutated concurrently; Clone gives
// each goroutine its own copy.
package ir
