// Package signal provides schema-bound message instances.
//
// A Signal binds a payload to a registered schema at construction
// time. Construction validates the payload and fails atomically on
// any violation, so a Signal that exists is a Signal whose payload
// conforms to its schema. Signals are immutable: revalidation and
// patching produce new instances.
package signal

import (
	"fmt"
	"strings"
	"time"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/uuid"

	"github.com/luxlabs/go-lux/encode"
	"github.com/luxlabs/go-lux/ir"
	"github.com/luxlabs/go-lux/schema"
)

// Signal is a validated, schema-bound message exchanged between
// agents. The envelope fields (ID, Sender, Recipient, Topic,
// Metadata, Timestamp) are routing metadata; only Payload is subject
// to schema validation.
type Signal struct {
	ID            string
	SchemaName    string
	SchemaVersion string
	Payload       *ir.Node

	Sender    string
	Recipient string
	Topic     string
	Timestamp time.Time
	Metadata  map[string]string

	def *schema.SchemaDefinition
}

// ValidationError carries the complete violation list for a rejected
// payload. Validation failure is an expected outcome callers branch
// on, so the violations travel as data on the error.
type ValidationError struct {
	Ref        string
	Violations []schema.Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("payload rejected by %s:\n  %s", e.Ref, strings.Join(parts, "\n  "))
}

type Option func(*Signal)

func WithID(id string) Option {
	return func(s *Signal) { s.ID = id }
}

func WithSender(sender string) Option {
	return func(s *Signal) { s.Sender = sender }
}

func WithRecipient(recipient string) Option {
	return func(s *Signal) { s.Recipient = recipient }
}

func WithTopic(topic string) Option {
	return func(s *Signal) { s.Topic = topic }
}

func WithTimestamp(t time.Time) Option {
	return func(s *Signal) { s.Timestamp = t.UTC() }
}

func WithMetadata(md map[string]string) Option {
	return func(s *Signal) { s.Metadata = md }
}

// New resolves the schema, validates the payload, and constructs a
// Signal. An empty version resolves to the latest registered version;
// the Signal records the concrete version it was validated against.
// On violations the error is a *ValidationError and no Signal is
// produced.
func New(reg *schema.Registry, name, version string, payload *ir.Node, opts ...Option) (*Signal, error) {
	def, err := reg.Lookup(name, version)
	if err != nil {
		return nil, err
	}
	if violations := schema.Validate(def.Root, payload); len(violations) > 0 {
		return nil, &ValidationError{Ref: def.Ref(), Violations: violations}
	}
	s := &Signal{
		ID:            uuid.NewString(),
		SchemaName:    def.Name,
		SchemaVersion: def.Version.String(),
		Payload:       payload,
		Timestamp:     time.Now().UTC(),
		def:           def,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Revalidate builds a new Signal carrying the given payload under the
// same schema and envelope. The receiver is never mutated; on any
// violation no new Signal is produced.
func (s *Signal) Revalidate(payload *ir.Node) (*Signal, error) {
	if violations := schema.Validate(s.def.Root, payload); len(violations) > 0 {
		return nil, &ValidationError{Ref: s.def.Ref(), Violations: violations}
	}
	ns := *s
	ns.Payload = payload
	return &ns, nil
}

// Patch applies an RFC 6902 JSON patch to the payload through a JSON
// round trip and revalidates the result into a new Signal.
func (s *Signal) Patch(patchDoc []byte) (*Signal, error) {
	ops, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}
	d, err := encode.WireJSON(s.Payload)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("patch failed: %w", err)
	}
	payload, err := ir.Decode(out)
	if err != nil {
		return nil, err
	}
	return s.Revalidate(payload)
}
