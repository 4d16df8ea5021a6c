package registry

import "encoding/json"

// systemTools covers page switching, caches, layout presets, application
// control, and introspection.
func systemTools() []Tool {
	return []Tool{
		{
			Name:        "switch_page",
			Description: "Switch the editor to another page",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"page": {"type": "string", "enum": ["media", "cut", "edit", "fusion", "color", "fairlight", "deliver"], "description": "Page to open"}
				},
				"required": ["page"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_cache_mode",
			Description: "Set the project render cache mode",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"mode": {"type": "string", "enum": ["auto", "on", "off"], "description": "Cache mode"}
				},
				"required": ["mode"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_cache_path",
			Description: "Set a cache storage location",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path_type": {"type": "string", "enum": ["cache", "gallery", "proxy"], "description": "Which storage location to set"},
					"path": {"type": "string", "description": "Directory path"}
				},
				"required": ["path_type", "path"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "save_layout_preset",
			Description: "Save the current UI layout under a preset name",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_name": {"type": "string", "description": "Name for the layout preset"}
				},
				"required": ["preset_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "load_layout_preset",
			Description: "Restore a saved UI layout preset",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_name": {"type": "string", "description": "Layout preset to load"}
				},
				"required": ["preset_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "export_layout_preset",
			Description: "Export a saved layout preset to a file",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_name": {"type": "string", "description": "Layout preset to export"},
					"export_path": {"type": "string", "description": "Destination file path"}
				},
				"required": ["preset_name", "export_path"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "import_layout_preset",
			Description: "Import a layout preset from a file",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"import_path": {"type": "string", "description": "File to import"},
					"preset_name": {"type": "string", "description": "Name for the imported preset; defaults to the file name"}
				},
				"required": ["import_path"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_layout_preset",
			Description: "Delete a saved layout preset",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_name": {"type": "string", "description": "Layout preset to delete"}
				},
				"required": ["preset_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "quit_app",
			Description: "Quit the editor, optionally saving the current project first",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"force": {"type": "boolean", "description": "Quit even with unsaved changes", "default": false},
					"save_project": {"type": "boolean", "description": "Save the current project before quitting", "default": true}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"force": false, "save_project": true},
		},
		{
			Name:        "restart_app",
			Description: "Restart the editor, waiting between shutdown and relaunch",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"wait_seconds": {"type": "integer", "minimum": 0, "description": "Seconds to wait before relaunching", "default": 5}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"wait_seconds": float64(5)},
		},
		{
			Name:        "open_settings",
			Description: "Open the project settings dialog",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "open_app_preferences",
			Description: "Open the application preferences dialog",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "object_help",
			Description: "Describe the scripting API of an editor object type",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"object_type": {"type": "string", "description": "Object type, e.g. Timeline, MediaPool, Project"}
				},
				"required": ["object_type"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "inspect_custom_object",
			Description: "Inspect an editor object reachable by a dotted path",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"object_path": {"type": "string", "description": "Dotted path from the scripting root, e.g. resolve.GetProjectManager"}
				},
				"required": ["object_path"],
				"additionalProperties": false
			}`),
		},
	}
}
