package registry

import "encoding/json"

// keyframeTools covers keyframe CRUD and interpolation on timeline item
// properties.
func keyframeTools() []Tool {
	return []Tool{
		{
			Name:        "enable_keyframes",
			Description: "Enable a keyframe mode on a timeline item",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to enable keyframing on"},
					"keyframe_mode": {"type": "string", "enum": ["All", "Color", "Sizing"], "description": "Keyframe track to enable", "default": "All"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"keyframe_mode": "All"},
		},
		{
			Name:        "add_keyframe",
			Description: "Add a keyframe to an item property; fails if the frame already has one",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to keyframe"},
					"property_name": {"type": "string", "enum": ["Pan", "Tilt", "ZoomX", "ZoomY", "Rotation", "AnchorPointX", "AnchorPointY", "Pitch", "Yaw", "Left", "Right", "Top", "Bottom", "Opacity", "Speed", "Strength", "Volume", "AudioPan"], "description": "Animatable property"},
					"frame": {"type": "integer", "minimum": 0, "description": "Frame of the keyframe"},
					"value": {"type": "number", "description": "Property value at the keyframe"}
				},
				"required": ["timeline_item_id", "property_name", "frame", "value"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "modify_keyframe",
			Description: "Change the value and/or relocate the frame of an existing keyframe",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item holding the keyframe"},
					"property_name": {"type": "string", "description": "Property the keyframe animates"},
					"frame": {"type": "integer", "minimum": 0, "description": "Frame of the keyframe to modify"},
					"new_value": {"type": "number", "description": "New property value"},
					"new_frame": {"type": "integer", "minimum": 0, "description": "Frame to move the keyframe to; must be unoccupied"}
				},
				"required": ["timeline_item_id", "property_name", "frame"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_keyframe",
			Description: "Delete a keyframe; deleting an absent keyframe succeeds with no change",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item holding the keyframe"},
					"property_name": {"type": "string", "description": "Property the keyframe animates"},
					"frame": {"type": "integer", "minimum": 0, "description": "Frame of the keyframe to delete"}
				},
				"required": ["timeline_item_id", "property_name", "frame"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_keyframes",
			Description: "List an item's keyframes, for one property or all",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item to query"},
					"property_name": {"type": "string", "description": "Property to list; omit for all"}
				},
				"required": ["timeline_item_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_keyframe_interpolation",
			Description: "Set the easing curve of one keyframe",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_item_id": {"type": "string", "description": "Item holding the keyframe"},
					"property_name": {"type": "string", "description": "Property the keyframe animates"},
					"frame": {"type": "integer", "minimum": 0, "description": "Frame of the keyframe"},
					"interpolation_type": {"type": "string", "enum": ["Linear", "Bezier", "Ease-In", "Ease-Out", "Hold"], "description": "Easing curve"}
				},
				"required": ["timeline_item_id", "property_name", "frame", "interpolation_type"],
				"additionalProperties": false
			}`),
		},
	}
}
