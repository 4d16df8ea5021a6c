package sim

import (
	"encoding/json"
	"math"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

// Argument extraction helpers. The registry validates shapes before handlers
// run, but handlers still check types so the backend behaves when driven
// directly, e.g. from tests.

func reqString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", bridge.InvalidParameterf(key, "required parameter is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", bridge.InvalidParameterf(key, "expected a string")
	}
	if s == "" {
		return "", bridge.InvalidParameterf(key, "must not be empty")
	}
	return s, nil
}

func optString(args map[string]any, key string) (string, bool) {
	s, ok := args[key].(string)
	return s, ok
}

func strOr(args map[string]any, key, def string) string {
	if s, ok := args[key].(string); ok && s != "" {
		return s
	}
	return def
}

func reqNumber(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, bridge.InvalidParameterf(key, "required parameter is missing")
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, bridge.InvalidParameterf(key, "expected a number")
	}
	return f, nil
}

func optNumber(args map[string]any, key string) (float64, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	f, ok := toFloat(v)
	return f, ok
}

func numOr(args map[string]any, key string, def float64) float64 {
	if f, ok := optNumber(args, key); ok {
		return f
	}
	return def
}

func reqInt(args map[string]any, key string) (int, error) {
	f, err := reqNumber(args, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, bridge.InvalidParameterf(key, "expected an integer")
	}
	return int(f), nil
}

func optInt(args map[string]any, key string) (int, bool) {
	f, ok := optNumber(args, key)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func boolOr(args map[string]any, key string, def bool) bool {
	if b, ok := args[key].(bool); ok {
		return b
	}
	return def
}

func stringSlice(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, bridge.InvalidParameterf(key, "required parameter is missing")
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, bridge.InvalidParameterf(key, "expected an array of strings")
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, bridge.InvalidParameterf(key, "expected an array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// jsonResult renders getter output as compact JSON.
func jsonResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", bridge.Internalf("encode result: %v", err)
	}
	return string(data), nil
}
