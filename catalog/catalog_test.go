package catalog

import (
	"testing"

	"github.com/luxlabs/go-lux/ir"
	"github.com/luxlabs/go-lux/schema"
	"github.com/luxlabs/go-lux/signal"
)

func TestEmbeddedDecls(t *testing.T) {
	decls, err := Decls()
	if err != nil {
		t.Fatalf("decls: %v", err)
	}
	if len(decls) == 0 {
		t.Fatalf("no embedded declarations")
	}
	for _, d := range decls {
		if d.Name == "" || d.Version == "" || d.Description == "" {
			t.Errorf("%s: incomplete declaration %s@%s", d.Source, d.Name, d.Version)
		}
	}
}

func TestNewRegistersEverything(t *testing.T) {
	reg, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !reg.Frozen() {
		t.Errorf("registry not frozen")
	}
	decls, err := Decls()
	if err != nil {
		t.Fatalf("decls: %v", err)
	}
	for _, d := range decls {
		if _, err := reg.Lookup(d.Name, d.Version); err != nil {
			t.Errorf("lookup %s@%s: %v", d.Name, d.Version, err)
		}
	}
}

func TestCatalogVersionResolution(t *testing.T) {
	reg, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	// emotional_trigger ships 1.0 and 1.1
	def, err := reg.Lookup("emotional.emotional_trigger", "")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if def.Version.String() != "1.1" {
		t.Errorf("latest: %s", def.Ref())
	}
	if _, err := reg.Lookup("emotional.emotional_trigger", "1.0"); err != nil {
		t.Errorf("explicit 1.0: %v", err)
	}
}

func TestCatalogSignal(t *testing.T) {
	reg, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	raw, err := ir.Decode([]byte(`{
		"timestamp": "2026-08-31T10:00:00Z",
		"priority_id": "p-1",
		"task_id": "t-1",
		"priority_level": {"level": "high", "score": 80},
		"criteria": [
			{"name": "revenue", "weight": 0.7, "score": 90},
			{"name": "effort", "weight": 0.3, "score": 55}
		],
		"impact_assessment": {"business_value": 8, "urgency": 7},
		"metadata": {
			"assigned_by": "agent-a",
			"assignment_date": "2026-08-31T10:00:00Z"
		}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s, err := signal.New(reg, "task.task_priority", "", raw)
	if err != nil {
		t.Fatalf("signal: %v", err)
	}
	if s.SchemaName != "task.task_priority" {
		t.Errorf("schema binding: %s", s.SchemaName)
	}
}

func TestCatalogValidation(t *testing.T) {
	reg, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	def, err := reg.Lookup("monitoring.error_log", "")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	bad, err := ir.Decode([]byte(`{"error_id": "nope", "unexpected": 1}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	violations := schema.Validate(def.Root, bad)
	if len(violations) == 0 {
		t.Errorf("expected violations for a malformed error log")
	}
}
