package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.lsp.dev/jsonrpc2"

	"github.com/luxlabs/go-lux/debug"
	"github.com/luxlabs/go-lux/encode"
	"github.com/luxlabs/go-lux/ir"
	"github.com/luxlabs/go-lux/schema"
	"github.com/luxlabs/go-lux/signal"
)

// Server serves registry and signal operations over a jsonrpc2
// connection. One Server may back any number of connections; all state
// lives in the registry.
type Server struct {
	reg *schema.Registry
}

func NewServer(reg *schema.Registry) *Server {
	return &Server{reg: reg}
}

// Serve runs the JSON-RPC loop on rwc until the connection closes or
// ctx is cancelled.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handler())
	<-conn.Done()
	if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Handler dispatches the server's method set.
func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if debug.RPC() {
			debug.Logf("rpc: <- %s\n", req.Method())
		}
		switch req.Method() {
		case "schema.register":
			return handle(ctx, reply, req, s.schemaRegister)
		case "schema.lookup":
			return handle(ctx, reply, req, s.schemaLookup)
		case "schema.list":
			return handle(ctx, reply, req, s.schemaList)
		case "payload.validate":
			return handle(ctx, reply, req, s.payloadValidate)
		case "signal.create":
			return handle(ctx, reply, req, s.signalCreate)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func handle[P, R any](ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, f func(ctx context.Context, params *P) (R, error)) error {
	var params P
	if raw := req.Params(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
		}
	}
	res, err := f(ctx, &params)
	return reply(ctx, res, err)
}

// wireViolation is the JSON rendering of a schema.Violation.
type wireViolation struct {
	Path     string               `json:"path"`
	Code     schema.ViolationCode `json:"code"`
	Expected string               `json:"expected"`
	Actual   string               `json:"actual,omitempty"`
}

func wireViolations(vs []schema.Violation) []wireViolation {
	res := make([]wireViolation, len(vs))
	for i, v := range vs {
		res[i] = wireViolation{
			Path:     v.Path.String(),
			Code:     v.Code,
			Expected: v.Expected,
			Actual:   v.Actual,
		}
	}
	return res
}

type registerParams struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`
}

type registerResult struct {
	Ref      string   `json:"ref"`
	Warnings []string `json:"warnings,omitempty"`
}

func (s *Server) schemaRegister(ctx context.Context, params *registerParams) (*registerResult, error) {
	raw, err := ir.Decode(params.Schema)
	if err != nil {
		return nil, fmt.Errorf("%w: schema: %v", jsonrpc2.ErrInvalidParams, err)
	}
	def, err := s.reg.RegisterRaw(params.Name, params.Version, params.Description, raw)
	if err != nil {
		return nil, err
	}
	res := &registerResult{Ref: def.Ref()}
	for _, w := range def.Warnings {
		res.Warnings = append(res.Warnings, w.String())
	}
	return res, nil
}

type lookupParams struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type lookupResult struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Deprecated  bool            `json:"deprecated,omitempty"`
	Schema      json.RawMessage `json:"schema"`
}

func (s *Server) schemaLookup(ctx context.Context, params *lookupParams) (*lookupResult, error) {
	def, err := s.reg.Lookup(params.Name, params.Version)
	if err != nil {
		return nil, err
	}
	raw, err := encode.WireJSON(def.Raw)
	if err != nil {
		return nil, err
	}
	return &lookupResult{
		Name:        def.Name,
		Version:     def.Version.String(),
		Description: def.Description,
		Deprecated:  def.Deprecated,
		Schema:      raw,
	}, nil
}

type listParams struct {
	Prefix string `json:"prefix,omitempty"`
}

type listEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

func (s *Server) schemaList(ctx context.Context, params *listParams) ([]listEntry, error) {
	entries := s.reg.List(params.Prefix)
	res := make([]listEntry, len(entries))
	for i, e := range entries {
		res[i] = listEntry{
			Name:        e.Name,
			Version:     e.Version.String(),
			Description: e.Description,
			Deprecated:  e.Deprecated,
		}
	}
	return res, nil
}

type validateParams struct {
	Name    string          `json:"name"`
	Version string          `json:"version,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

type validateResult struct {
	Ref        string          `json:"ref"`
	Valid      bool            `json:"valid"`
	Violations []wireViolation `json:"violations,omitempty"`
}

func (s *Server) payloadValidate(ctx context.Context, params *validateParams) (*validateResult, error) {
	def, err := s.reg.Lookup(params.Name, params.Version)
	if err != nil {
		return nil, err
	}
	payload, err := ir.Decode(params.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", jsonrpc2.ErrInvalidParams, err)
	}
	violations := schema.Validate(def.Root, payload)
	return &validateResult{
		Ref:        def.Ref(),
		Valid:      len(violations) == 0,
		Violations: wireViolations(violations),
	}, nil
}

type createParams struct {
	SchemaName    string            `json:"schema_name"`
	SchemaVersion string            `json:"schema_version,omitempty"`
	Payload       json.RawMessage   `json:"payload"`
	Sender        string            `json:"sender,omitempty"`
	Recipient     string            `json:"recipient,omitempty"`
	Topic         string            `json:"topic,omitempty"`
	Timestamp     *time.Time        `json:"timestamp,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type createResult struct {
	Signal     json.RawMessage `json:"signal,omitempty"`
	Violations []wireViolation `json:"violations,omitempty"`
}

// signalCreate builds a signal from the payload. A payload rejected by
// its schema is not a transport error: the result carries the
// violation list and no signal.
func (s *Server) signalCreate(ctx context.Context, params *createParams) (*createResult, error) {
	payload, err := ir.Decode(params.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", jsonrpc2.ErrInvalidParams, err)
	}
	opts := []signal.Option{
		signal.WithSender(params.Sender),
		signal.WithRecipient(params.Recipient),
		signal.WithTopic(params.Topic),
		signal.WithMetadata(params.Metadata),
	}
	if params.Timestamp != nil {
		opts = append(opts, signal.WithTimestamp(*params.Timestamp))
	}
	sig, err := signal.New(s.reg, params.SchemaName, params.SchemaVersion, payload, opts...)
	if err != nil {
		var verr *signal.ValidationError
		if errors.As(err, &verr) {
			return &createResult{Violations: wireViolations(verr.Violations)}, nil
		}
		return nil, err
	}
	d, err := json.Marshal(sig)
	if err != nil {
		return nil, err
	}
	return &createResult{Signal: d}, nil
}
