package registry_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
	"github.com/editkit/resolve-mcp/internal/resolve/registry"
)

func mustRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return r
}

func TestCatalogSize(t *testing.T) {
	r := mustRegistry(t)
	if got := r.Len(); got != 120 {
		t.Errorf("registry holds %d tools, want 120", got)
	}
	if got := len(r.All()); got != r.Len() {
		t.Errorf("All() returned %d tools, want %d", got, r.Len())
	}
}

func TestEverySchemaIsValidJSON(t *testing.T) {
	r := mustRegistry(t)
	for _, tool := range r.All() {
		var doc map[string]any
		if err := json.Unmarshal(tool.Schema, &doc); err != nil {
			t.Errorf("%s: schema is not valid JSON: %v", tool.Name, err)
			continue
		}
		if doc["type"] != "object" {
			t.Errorf("%s: schema type is %v, want object", tool.Name, doc["type"])
		}
		if tool.Description == "" {
			t.Errorf("%s: missing description", tool.Name)
		}
	}
}

func TestEveryDefaultKeyExistsInSchema(t *testing.T) {
	r := mustRegistry(t)
	for _, tool := range r.All() {
		if len(tool.Defaults) == 0 {
			continue
		}
		var doc struct {
			Properties map[string]json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(tool.Schema, &doc); err != nil {
			t.Fatalf("%s: %v", tool.Name, err)
		}
		for key := range tool.Defaults {
			if _, ok := doc.Properties[key]; !ok {
				t.Errorf("%s: default for %q has no schema property", tool.Name, key)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	r := mustRegistry(t)
	if _, ok := r.Lookup("create_project"); !ok {
		t.Error("create_project not found")
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Error("unknown tool resolved")
	}
}

func TestValidateRequiredField(t *testing.T) {
	r := mustRegistry(t)
	tool, _ := r.Lookup("create_project")

	if err := tool.Validate(map[string]any{"name": "Doc"}); err != nil {
		t.Errorf("valid args rejected: %v", err)
	}

	err := tool.Validate(map[string]any{})
	if err == nil {
		t.Fatal("missing required field accepted")
	}
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Errorf("kind = %v, want invalid_parameter", bridge.KindOf(err))
	}
}

func TestValidateNamesTheFailingField(t *testing.T) {
	r := mustRegistry(t)
	tool, _ := r.Lookup("set_timeline_item_crop")

	err := tool.Validate(map[string]any{
		"timeline_item_id": "item_1",
		"crop_type":        "Left",
		"crop_value":       2.0,
	})
	if err == nil {
		t.Fatal("out-of-range crop_value accepted")
	}
	if got := err.Error(); !strings.Contains(got, "crop_value") {
		t.Errorf("error %q does not name crop_value", got)
	}
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	r := mustRegistry(t)
	tool, _ := r.Lookup("save_project")
	if err := tool.Validate(map[string]any{"bogus": true}); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestValidateEnum(t *testing.T) {
	r := mustRegistry(t)
	tool, _ := r.Lookup("switch_page")
	if err := tool.Validate(map[string]any{"page": "color"}); err != nil {
		t.Errorf("valid page rejected: %v", err)
	}
	if err := tool.Validate(map[string]any{"page": "grading"}); err == nil {
		t.Error("unknown page accepted")
	}
}

func TestApplyDefaults(t *testing.T) {
	r := mustRegistry(t)
	tool, _ := r.Lookup("add_marker")

	in := map[string]any{"frame": float64(10)}
	out := tool.ApplyDefaults(in)
	if out["color"] != "Blue" {
		t.Errorf("color = %v, want Blue", out["color"])
	}
	if out["note"] != "" {
		t.Errorf("note = %v, want empty", out["note"])
	}
	if _, touched := in["color"]; touched {
		t.Error("ApplyDefaults modified its input")
	}

	out = tool.ApplyDefaults(map[string]any{"frame": float64(10), "color": "Green"})
	if out["color"] != "Green" {
		t.Errorf("explicit color overridden: %v", out["color"])
	}
}
