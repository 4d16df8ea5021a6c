package registry

import "encoding/json"

// colorTools covers grading: nodes, wheels, LUTs, CDL, stills, and color
// preset albums.
func colorTools() []Tool {
	return []Tool{
		{
			Name:        "add_node",
			Description: "Add a node to the grade of the current clip on the color page",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"node_type": {"type": "string", "enum": ["serial", "parallel", "layer"], "description": "Node kind", "default": "serial"},
					"label": {"type": "string", "description": "Optional label for the node"}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"node_type": "serial"},
		},
		{
			Name:        "set_color_wheel_param",
			Description: "Set one channel of a color wheel; out-of-range values are clamped to [-1, 1]",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"wheel": {"type": "string", "enum": ["lift", "gamma", "gain", "offset"], "description": "Which wheel to adjust"},
					"param": {"type": "string", "enum": ["red", "green", "blue", "master"], "description": "Which channel of the wheel"},
					"value": {"type": "number", "description": "Channel value; clamped to [-1, 1]"},
					"node_index": {"type": "integer", "minimum": 1, "description": "1-based node index; defaults to the current node"}
				},
				"required": ["wheel", "param", "value"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "copy_grade",
			Description: "Copy the grade from one clip to another",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"source_clip_name": {"type": "string", "description": "Clip to copy from; defaults to the current clip"},
					"target_clip_name": {"type": "string", "description": "Clip to copy to; defaults to the current clip"},
					"mode": {"type": "string", "enum": ["full", "current_node", "all_nodes"], "description": "How much of the grade to copy", "default": "full"}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"mode": "full"},
		},
		{
			Name:        "copy_grades",
			Description: "Copy the grade of one timeline item onto several others",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"source_timeline_item_id": {"type": "string", "description": "Item to copy the grade from"},
					"target_timeline_item_ids": {"type": "array", "items": {"type": "string"}, "minItems": 1, "description": "Items to copy the grade onto"}
				},
				"required": ["source_timeline_item_id", "target_timeline_item_ids"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "apply_lut",
			Description: "Apply a LUT file to a node of the current grade",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"lut_path": {"type": "string", "description": "Path of the LUT file"},
					"node_index": {"type": "integer", "minimum": 1, "description": "1-based node index; defaults to the current node"}
				},
				"required": ["lut_path"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "export_lut",
			Description: "Export a clip's grade as a LUT file",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip whose grade to export; defaults to the current clip"},
					"export_path": {"type": "string", "description": "Destination path for the LUT"},
					"lut_format": {"type": "string", "enum": ["Cube", "Panasonic"], "description": "LUT file format", "default": "Cube"},
					"lut_size": {"type": "string", "enum": ["17Point", "33Point", "65Point"], "description": "LUT cube size", "default": "33Point"}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"lut_format": "Cube", "lut_size": "33Point"},
		},
		{
			Name:        "export_all_power_grade_luts",
			Description: "Export every PowerGrade still as a LUT into a directory",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"export_dir": {"type": "string", "description": "Directory to write the LUTs into"}
				},
				"required": ["export_dir"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "grab_still",
			Description: "Grab a gallery still from a timeline, or from every clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to grab from; defaults to the current timeline"},
					"still_frame_source": {"type": "string", "description": "Frame source hint for the still"},
					"grab_all": {"type": "boolean", "description": "Grab a still from every clip in the timeline", "default": false}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"grab_all": false},
		},
		{
			Name:        "create_color_preset_album",
			Description: "Create a new album in the color preset gallery",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"album_name": {"type": "string", "description": "Name of the album to create"}
				},
				"required": ["album_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_color_preset_album",
			Description: "Delete a color preset album and every preset in it",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"album_name": {"type": "string", "description": "Name of the album to delete"}
				},
				"required": ["album_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "save_color_preset",
			Description: "Save a clip's grade as a preset in an album",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip whose grade to save; defaults to the current clip"},
					"preset_name": {"type": "string", "description": "Name for the preset; defaults to the clip name"},
					"album_name": {"type": "string", "description": "Album to save into", "default": "DaVinci Resolve"}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"album_name": "DaVinci Resolve"},
		},
		{
			Name:        "apply_color_preset",
			Description: "Apply a saved color preset to a clip, by preset id or name",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_id": {"type": "string", "description": "Identifier of the preset"},
					"preset_name": {"type": "string", "description": "Name of the preset, looked up within the album"},
					"clip_name": {"type": "string", "description": "Clip to grade; defaults to the current clip"},
					"album_name": {"type": "string", "description": "Album holding the preset", "default": "DaVinci Resolve"}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"album_name": "DaVinci Resolve"},
		},
		{
			Name:        "delete_color_preset",
			Description: "Delete a saved color preset, by preset id or name",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_id": {"type": "string", "description": "Identifier of the preset"},
					"preset_name": {"type": "string", "description": "Name of the preset, looked up within the album"},
					"album_name": {"type": "string", "description": "Album holding the preset", "default": "DaVinci Resolve"}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"album_name": "DaVinci Resolve"},
		},
		{
			Name:        "set_cdl",
			Description: "Set ASC CDL parameters on a timeline item's grade",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to grade"},
					"cdl_map": {"type": "object", "description": "CDL values: NodeIndex, Slope, Offset, Power, Saturation"}
				},
				"required": ["timeline_item_id", "cdl_map"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "node_lut",
			Description: "Set or read the LUT on one node of a timeline item's grade",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item whose grade to touch"},
					"node_index": {"type": "integer", "minimum": 1, "description": "1-based node index"},
					"lut_path": {"type": "string", "description": "LUT to set; omit to read the current LUT"}
				},
				"required": ["timeline_item_id", "node_index"],
				"additionalProperties": false
			}`),
		},
	}
}
