// Package registry declares the tool catalog: every tool the server exposes,
// its input schema, and the defaults filled in before dispatch. The catalog
// is the single source of truth for both tools/list responses and argument
// validation, so schemas are never duplicated.
package registry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

// Tool is one catalog entry. Schema is the raw JSON-Schema document served
// to clients; Defaults are applied to absent optional fields after
// validation and before dispatch.
type Tool struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Defaults    map[string]any

	compiled *jsonschema.Schema
}

// Registry is the immutable tool catalog, built once at startup.
type Registry struct {
	tools map[string]*Tool
	order []string
}

// New builds and compiles the full catalog. A schema that fails to compile
// is a programming error surfaced at startup, not at call time.
func New() (*Registry, error) {
	groups := [][]Tool{
		projectTools(),
		timelineTools(),
		mediaTools(),
		colorTools(),
		itemTools(),
		keyframeTools(),
		renderTools(),
		systemTools(),
	}

	r := &Registry{tools: make(map[string]*Tool)}
	for _, group := range groups {
		for i := range group {
			t := group[i]
			if _, dup := r.tools[t.Name]; dup {
				return nil, fmt.Errorf("registry: duplicate tool %q", t.Name)
			}
			compiled, err := jsonschema.CompileString(t.Name+".json", string(t.Schema))
			if err != nil {
				return nil, fmt.Errorf("registry: compile schema for %q: %w", t.Name, err)
			}
			t.compiled = compiled
			r.tools[t.Name] = &t
			r.order = append(r.order, t.Name)
		}
	}
	return r, nil
}

// All returns the catalog in registration order.
func (r *Registry) All() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Lookup finds a tool by name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.order) }

// Validate checks args against the tool's compiled schema. On failure it
// returns an InvalidParameter error naming the first failing field.
func (t *Tool) Validate(args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}
	err := t.compiled.Validate(anyMap(args))
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return bridge.InvalidParameterf("arguments", "%v", err)
	}
	leaf := deepestCause(ve)
	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if field == "" {
		// Root-level failures are usually "missing properties: 'x'".
		field = quotedName(leaf.Message)
	}
	if field == "" {
		field = "arguments"
	}
	return bridge.InvalidParameterf(field, "%s", leaf.Message)
}

// ApplyDefaults returns args with every declared default filled in for keys
// the caller omitted. The input map is not modified.
func (t *Tool) ApplyDefaults(args map[string]any) map[string]any {
	out := make(map[string]any, len(args)+len(t.Defaults))
	for k, v := range args {
		out[k] = v
	}
	for k, v := range t.Defaults {
		if _, present := out[k]; !present {
			out[k] = v
		}
	}
	return out
}

// anyMap widens the map type so the validator sees a plain decoded document.
func anyMap(m map[string]any) any {
	return map[string]any(m)
}

// deepestCause walks a validation error to its most specific leaf.
func deepestCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// quotedName pulls the first single-quoted token out of a validator message,
// e.g. "missing properties: 'name'" yields "name".
func quotedName(msg string) string {
	start := strings.IndexByte(msg, '\'')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(msg[start+1:], '\'')
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
