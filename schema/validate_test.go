package schema

import (
	"testing"
)

type violationWant struct {
	path string
	code ViolationCode
}

func checkViolations(t *testing.T, got []Violation, want []violationWant) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %d violations, want %d:", len(got), len(want))
		for _, v := range got {
			t.Errorf("  %s", v)
		}
		return
	}
	for i, w := range want {
		if got[i].Path.String() != w.path || got[i].Code != w.code {
			t.Errorf("violation %d: got %s at %s, want %s at %s",
				i, got[i].Code, got[i].Path, w.code, w.path)
		}
	}
}

func TestValidateBounds(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"required": ["a"],
		"properties": {
			"a": {"type": "number", "minimum": 0, "maximum": 10}
		}
	}`)
	tests := []struct {
		payload string
		want    []violationWant
	}{
		{`{"a": 5}`, nil},
		{`{"a": 5.0}`, nil},
		{`{"a": 0}`, nil},
		{`{"a": 10}`, nil},
		{`{"a": 15}`, []violationWant{{"$.a", RangeViolation}}},
		{`{"a": -0.5}`, []violationWant{{"$.a", RangeViolation}}},
		{`{}`, []violationWant{{"$.a", MissingRequired}}},
		{`{"a": "five"}`, []violationWant{{"$.a", TypeMismatch}}},
	}
	for _, tc := range tests {
		got := Validate(def.Root, mustDecode(t, tc.payload))
		checkViolations(t, got, tc.want)
	}
}

func TestValidateInteger(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {"n": {"type": "integer"}}
	}`)
	tests := []struct {
		payload string
		want    []violationWant
	}{
		{`{"n": 5}`, nil},
		{`{"n": 5.0}`, nil},
		{`{"n": 5.5}`, []violationWant{{"$.n", TypeMismatch}}},
		{`{"n": "5"}`, []violationWant{{"$.n", TypeMismatch}}},
	}
	for _, tc := range tests {
		got := Validate(def.Root, mustDecode(t, tc.payload))
		checkViolations(t, got, tc.want)
	}
}

func TestValidateEnum(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {
			"status": {"type": "string", "enum": ["open", "closed"]},
			"level": {"type": "number", "enum": [1, 2, 3]}
		}
	}`)
	tests := []struct {
		payload string
		want    []violationWant
	}{
		{`{"status": "open"}`, nil},
		{`{"status": "ajar"}`, []violationWant{{"$.status", EnumMismatch}}},
		{`{"level": 2}`, nil},
		{`{"level": 2.0}`, nil},
		{`{"level": 4}`, []violationWant{{"$.level", EnumMismatch}}},
	}
	for _, tc := range tests {
		got := Validate(def.Root, mustDecode(t, tc.payload))
		checkViolations(t, got, tc.want)
	}
}

func TestValidateFormats(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {
			"at": {"type": "string", "format": "date-time"},
			"on": {"type": "string", "format": "date"},
			"ref": {"type": "string", "format": "uri"},
			"who": {"type": "string", "format": "email"},
			"text": {"type": "string", "format": "markdown"}
		}
	}`)
	tests := []struct {
		payload string
		want    []violationWant
	}{
		{`{"at": "2026-08-31T12:00:00Z"}`, nil},
		{`{"at": "2026-08-31T12:00:00.25+02:00"}`, nil},
		{`{"at": "yesterday"}`, []violationWant{{"$.at", FormatMismatch}}},
		{`{"on": "2026-08-31"}`, nil},
		{`{"on": "31/08/2026"}`, []violationWant{{"$.on", FormatMismatch}}},
		{`{"ref": "https://example.com/x"}`, nil},
		{`{"ref": "not a uri"}`, []violationWant{{"$.ref", FormatMismatch}}},
		{`{"who": "a@b.example"}`, nil},
		{`{"who": "nope"}`, []violationWant{{"$.who", FormatMismatch}}},
		// unknown formats are accepted, not enforced
		{`{"text": "anything at all"}`, nil},
	}
	for _, tc := range tests {
		got := Validate(def.Root, mustDecode(t, tc.payload))
		checkViolations(t, got, tc.want)
	}
}

func TestValidatePattern(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {
			"id": {"type": "string", "pattern": "^error_[0-9]{8}_[0-9]{6}$"}
		}
	}`)
	tests := []struct {
		payload string
		want    []violationWant
	}{
		{`{"id": "error_20260831_120000"}`, nil},
		{`{"id": "error_2026_12"}`, []violationWant{{"$.id", FormatMismatch}}},
	}
	for _, tc := range tests {
		got := Validate(def.Root, mustDecode(t, tc.payload))
		checkViolations(t, got, tc.want)
	}
}

func TestValidateUnion(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {"v": {"type": ["string", "null"]}}
	}`)
	tests := []struct {
		payload string
		want    []violationWant
	}{
		{`{"v": "x"}`, nil},
		{`{"v": null}`, nil},
		{`{"v": 3}`, []violationWant{{"$.v", TypeMismatch}}},
	}
	for _, tc := range tests {
		got := Validate(def.Root, mustDecode(t, tc.payload))
		checkViolations(t, got, tc.want)
	}
	got := Validate(def.Root, mustDecode(t, `{"v": 3}`))
	if len(got) == 1 && got[0].Expected != "string or null" {
		t.Errorf("union expected text: %q", got[0].Expected)
	}
}

func TestValidateArrays(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {
			"tags": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 1,
				"maxItems": 3
			}
		}
	}`)
	tests := []struct {
		payload string
		want    []violationWant
	}{
		{`{"tags": ["a"]}`, nil},
		{`{"tags": []}`, []violationWant{{"$.tags", RangeViolation}}},
		{`{"tags": ["a", "b", "c", "d"]}`, []violationWant{{"$.tags", RangeViolation}}},
		{`{"tags": ["a", 2, "c"]}`, []violationWant{{"$.tags[1]", TypeMismatch}}},
		{`{"tags": [1, "b", 3]}`, []violationWant{
			{"$.tags[0]", TypeMismatch},
			{"$.tags[2]", TypeMismatch},
		}},
	}
	for _, tc := range tests {
		got := Validate(def.Root, mustDecode(t, tc.payload))
		checkViolations(t, got, tc.want)
	}
}

func TestValidateUnexpectedProperties(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"additionalProperties": false
	}`)
	// extras are reported in sorted name order regardless of payload
	// key order
	for _, payload := range []string{
		`{"a": "x", "zz": 1, "bb": 2}`,
		`{"zz": 1, "a": "x", "bb": 2}`,
	} {
		got := Validate(def.Root, mustDecode(t, payload))
		checkViolations(t, got, []violationWant{
			{"$.bb", UnexpectedProperty},
			{"$.zz", UnexpectedProperty},
		})
	}

	open := mustCompile(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}}
	}`)
	got := Validate(open.Root, mustDecode(t, `{"a": "x", "extra": true}`))
	checkViolations(t, got, nil)
}

func TestValidateExhaustive(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"required": ["a", "b"],
		"properties": {
			"a": {"type": "string"},
			"b": {"type": "number", "minimum": 0},
			"c": {"type": "string", "format": "date"}
		}
	}`)
	got := Validate(def.Root, mustDecode(t, `{"b": -1, "c": "not a date"}`))
	checkViolations(t, got, []violationWant{
		{"$.a", MissingRequired},
		{"$.b", RangeViolation},
		{"$.c", FormatMismatch},
	})
}

func TestValidateNoCascade(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {
			"o": {
				"type": "object",
				"required": ["x"],
				"properties": {"x": {"type": "string"}}
			}
		}
	}`)
	// a mistyped subtree yields one violation, not one per nested rule
	got := Validate(def.Root, mustDecode(t, `{"o": "not an object"}`))
	checkViolations(t, got, []violationWant{
		{"$.o", TypeMismatch},
	})
}

func TestValidateDeterministic(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"required": ["a", "b"],
		"properties": {
			"a": {"type": "string"},
			"b": {"type": "number"}
		}
	}`)
	doc := mustDecode(t, `{"a": 3, "b": "x"}`)
	first := Validate(def.Root, doc)
	for range 10 {
		got := Validate(def.Root, doc)
		if len(got) != len(first) {
			t.Fatalf("violation count changed: %d vs %d", len(got), len(first))
		}
		for i := range got {
			if got[i].String() != first[i].String() {
				t.Fatalf("violation %d changed: %s vs %s", i, got[i], first[i])
			}
		}
	}
}

func TestValidateDepthGuard(t *testing.T) {
	def := mustCompile(t, `{
		"type": "object",
		"properties": {
			"a": {"type": "object", "properties": {
				"b": {"type": "object", "properties": {
					"c": {"type": "string"}
				}}
			}}
		}
	}`)
	doc := mustDecode(t, `{"a": {"b": {"c": "deep"}}}`)
	if got := Validate(def.Root, doc); len(got) != 0 {
		t.Errorf("default depth: %v", got)
	}
	got := Validate(def.Root, doc, ValidateMaxDepth(1))
	if len(got) == 0 {
		t.Errorf("expected a depth violation")
	}
	for _, v := range got {
		if v.Code != TypeMismatch {
			t.Errorf("depth violation code: %s", v.Code)
		}
	}
}
