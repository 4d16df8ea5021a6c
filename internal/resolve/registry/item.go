package registry

import "encoding/json"

// itemTools covers per-item editing: transform, crop, composite, retime,
// stabilization, audio, generic properties, item markers, flags, takes,
// and versions.
func itemTools() []Tool {
	return []Tool{
		{
			Name:        "set_timeline_item_transform",
			Description: "Set one transform property of a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to change"},
					"property_name": {"type": "string", "enum": ["Pan", "Tilt", "ZoomX", "ZoomY", "Rotation", "AnchorPointX", "AnchorPointY", "Pitch", "Yaw"], "description": "Transform property"},
					"property_value": {"type": "number", "description": "New value"}
				},
				"required": ["timeline_item_id", "property_name", "property_value"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_item_crop",
			Description: "Set one crop edge of a timeline item; values are fractions in [0, 1]",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to change"},
					"crop_type": {"type": "string", "enum": ["Left", "Right", "Top", "Bottom"], "description": "Crop edge"},
					"crop_value": {"type": "number", "minimum": 0, "maximum": 1, "description": "Crop fraction in [0, 1]"}
				},
				"required": ["timeline_item_id", "crop_type", "crop_value"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_item_composite",
			Description: "Set the composite mode and/or opacity of a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to change"},
					"composite_mode": {"type": "string", "enum": ["Normal", "Add", "Multiply", "Screen", "Overlay", "SoftLight", "HardLight", "ColorDodge", "ColorBurn", "Darken", "Lighten", "Difference", "Exclusion"], "description": "Blend mode"},
					"opacity": {"type": "number", "minimum": 0, "maximum": 1, "description": "Opacity in [0, 1]"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_item_retime",
			Description: "Set the playback speed and/or retime process of a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to change"},
					"speed": {"type": "number", "exclusiveMinimum": 0, "maximum": 10, "description": "Playback speed multiplier in (0, 10]"},
					"process": {"type": "string", "enum": ["NearestFrame", "FrameBlend", "OpticalFlow"], "description": "Retime interpolation engine"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_item_stabilization",
			Description: "Configure stabilization of a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to change"},
					"enabled": {"type": "boolean", "description": "Turn stabilization on or off"},
					"method": {"type": "string", "enum": ["Perspective", "Similarity", "Translation"], "description": "Stabilizer analysis mode"},
					"strength": {"type": "number", "minimum": 0, "maximum": 1, "description": "Stabilization strength in [0, 1]"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_item_audio",
			Description: "Set the audio volume, pan, and/or EQ state of a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to change"},
					"volume": {"type": "number", "minimum": 0, "maximum": 2, "description": "Volume multiplier in [0, 2]"},
					"pan": {"type": "number", "minimum": -1, "maximum": 1, "description": "Stereo pan in [-1, 1]"},
					"eq_enabled": {"type": "boolean", "description": "Turn the clip EQ on or off"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_item_properties",
			Description: "Read every editable property of a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to read"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "reset_timeline_item_properties",
			Description: "Reset a timeline item's properties to their defaults",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to reset"},
					"property_type": {"type": "string", "enum": ["transform", "crop", "composite", "retime", "stabilization", "audio", "all"], "description": "Property group to reset; defaults to all"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_item_property",
			Description: "Set an arbitrary named property on a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to change"},
					"property_key": {"type": "string", "description": "Property name"},
					"property_value": {"type": ["string", "number", "boolean"], "description": "Value to assign"}
				},
				"required": ["timeline_item_id", "property_key", "property_value"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_item_property",
			Description: "Read one named property of a timeline item, or all properties",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to read"},
					"property_key": {"type": "string", "description": "Property to read; omit for all"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_item_details",
			Description: "Read the position, duration, and structural details of a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to read"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "add_timeline_item_marker",
			Description: "Add a marker to a timeline item at an item-relative frame",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to mark"},
					"frame_id": {"type": "number", "minimum": 0, "description": "Item-relative frame to mark"},
					"color": {"type": "string", "enum": ["Blue", "Cyan", "Green", "Yellow", "Red", "Pink", "Purple", "Fuchsia", "Rose", "Lavender", "Sky", "Mint", "Lemon", "Sand", "Cocoa", "Cream"], "description": "Marker color", "default": "Blue"},
					"name": {"type": "string", "description": "Marker name", "default": ""},
					"note": {"type": "string", "description": "Marker note text", "default": ""},
					"duration": {"type": "number", "minimum": 1, "description": "Marker duration in frames", "default": 1},
					"custom_data": {"type": "string", "description": "Opaque data attached to the marker", "default": ""}
				},
				"required": ["timeline_item_id", "frame_id"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"color": "Blue", "name": "", "note": "", "duration": float64(1), "custom_data": ""},
		},
		{
			Name:        "get_timeline_item_markers",
			Description: "List the markers on a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to query"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_timeline_item_marker",
			Description: "Delete item markers by frame, by color, or by custom data",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to edit"},
					"frame_num": {"type": "number", "minimum": 0, "description": "Delete the marker at this frame"},
					"color": {"type": "string", "description": "Delete all markers of this color"},
					"custom_data": {"type": "string", "description": "Delete the marker carrying this custom data"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "timeline_item_flag",
			Description: "Add a flag to a timeline item, or list its flags when no color is given",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to flag or query"},
					"color": {"type": "string", "enum": ["Blue", "Cyan", "Green", "Yellow", "Red", "Pink", "Purple", "Fuchsia", "Rose", "Lavender", "Sky", "Mint", "Lemon", "Sand", "Cocoa", "Cream"], "description": "Flag color to add; omit to list flags"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "timeline_item_color",
			Description: "Set the clip color of a timeline item, or read it when no color is given",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to color or query"},
					"color_name": {"type": "string", "description": "Clip color to set; omit to read the current color"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "take",
			Description: "Manage takes on a timeline item: add a take from a media pool clip, or select one by index",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item whose takes to manage"},
					"media_pool_item": {"type": "string", "description": "Clip to add as a new take"},
					"start_frame": {"type": "number", "minimum": 0, "description": "First frame of the new take"},
					"end_frame": {"type": "number", "minimum": 0, "description": "Last frame of the new take"},
					"take_index": {"type": "integer", "minimum": 1, "description": "1-based take to select"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "version",
			Description: "Manage color versions of a timeline item: add, load, or rename by name",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item whose versions to manage"},
					"version_name": {"type": "string", "description": "Version the operation targets"},
					"version_type": {"type": "string", "enum": ["local", "remote"], "description": "Version family", "default": "local"},
					"new_version_name": {"type": "string", "description": "New name when renaming"}
				},
				"required": ["timeline_item_id", "version_name"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"version_type": "local"},
		},
	}
}
