// Package rpc exposes the schema registry and signal constructor over
// JSON-RPC 2.0. The server speaks the following methods:
//
//	schema.register  {name, version, description, schema}
//	schema.lookup    {name, version}      version "" means latest
//	schema.list      {prefix}
//	payload.validate {name, version, payload}
//	signal.create    {schema_name, schema_version, payload, sender, ...}
//
// Validation violations are data, not transport errors: a payload that
// fails validation still yields a successful JSON-RPC response whose
// result carries the violation list.
package rpc
