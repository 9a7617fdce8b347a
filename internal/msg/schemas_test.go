package msg

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func compileSchema(t *testing.T, name string) *jsonschema.Schema {
	t.Helper()
	s, err := jsonschema.Compile(filepath.Join("..", "..", "schemas", name))
	if err != nil {
		t.Fatalf("compile %s: %v", name, err)
	}
	return s
}

// toAny re-parses v's JSON encoding, which is the form the validator and
// any non-Go peer sees.
func toAny(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestRequestEncodingMatchesSchema(t *testing.T) {
	s := compileSchema(t, "request.schema.json")

	three := 3
	for _, req := range []*Request{
		{Action: ActionAdd, Content: "hello"},
		{Action: ActionList},
		{Action: ActionPaste, Index: &three},
		{Action: ActionPasteDirect},
		{Action: ActionClear},
		{Action: ActionRemove, Index: &three},
		{Action: ActionPasteAll, Paste: true},
		{Action: ActionCombo, Indices: []int{2, 0, 1}},
		{Action: ActionPreview, MaxChars: 50},
		{Action: ActionStatus},
	} {
		if err := s.Validate(toAny(t, req)); err != nil {
			t.Errorf("%s request rejected by schema: %v", req.Action, err)
		}
	}
}

func TestRequestSchemaRejectsMissingAction(t *testing.T) {
	s := compileSchema(t, "request.schema.json")

	var v any
	if err := json.Unmarshal([]byte(`{"content":"orphan"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := s.Validate(v); err == nil {
		t.Fatal("request without action passed schema validation")
	}
}

func TestResponseEncodingMatchesSchema(t *testing.T) {
	s := compileSchema(t, "response.schema.json")

	for _, resp := range []*Response{
		OK(),
		Errorf("Unknown action: %s", "bogus"),
		{Success: true, Items: []string{"a", "b"}},
		{Success: true, Content: "joined"},
		{Success: true, Preview: map[int]string{0: "0: first", 1: "1: second"}},
		{Success: true, Size: 2, MaxSize: 10, Dirty: true, Path: "/tmp/board.json"},
		{},
	} {
		if err := s.Validate(toAny(t, resp)); err != nil {
			t.Errorf("response %+v rejected by schema: %v", resp, err)
		}
	}
}
