package registry

import "encoding/json"

// timelineTools covers timeline CRUD, querying, markers, and inserted
// generators/titles.
func timelineTools() []Tool {
	return []Tool{
		{
			Name:        "create_timeline",
			Description: "Create a new timeline in the current project and make it current if none is",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the timeline"},
					"frame_rate": {"type": "string", "description": "Frame rate, e.g. \"24\" or \"29.97\""},
					"resolution_width": {"type": "integer", "minimum": 1, "description": "Horizontal resolution in pixels"},
					"resolution_height": {"type": "integer", "minimum": 1, "description": "Vertical resolution in pixels"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "create_empty_timeline",
			Description: "Create a new timeline with explicit format and track counts",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the timeline"},
					"frame_rate": {"type": "string", "description": "Frame rate, e.g. \"24\""},
					"resolution_width": {"type": "integer", "minimum": 1, "description": "Horizontal resolution in pixels"},
					"resolution_height": {"type": "integer", "minimum": 1, "description": "Vertical resolution in pixels"},
					"start_timecode": {"type": "string", "description": "SMPTE start timecode, e.g. \"01:00:00:00\""},
					"video_tracks": {"type": "integer", "minimum": 1, "description": "Number of video tracks"},
					"audio_tracks": {"type": "integer", "minimum": 1, "description": "Number of audio tracks"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_timeline",
			Description: "Delete a timeline and everything on it from the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the timeline to delete"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "duplicate_timeline",
			Description: "Duplicate a timeline under a new name",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"source_timeline_name": {"type": "string", "description": "Timeline to copy"},
					"new_timeline_name": {"type": "string", "description": "Name for the duplicate"}
				},
				"required": ["source_timeline_name", "new_timeline_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_current_timeline",
			Description: "Switch the current timeline of the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the timeline to make current"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "list_timelines_tool",
			Description: "List the names of all timelines in the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_name",
			Description: "Get the name of a timeline; defaults to the current timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to query; defaults to the current timeline"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_name",
			Description: "Rename a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Current name of the timeline"},
					"new_name": {"type": "string", "description": "New name for the timeline"}
				},
				"required": ["timeline_name", "new_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_frames",
			Description: "Get the frame range and frame rate of a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to query; defaults to the current timeline"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_timeline_format",
			Description: "Change the resolution and frame rate of the current timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"width": {"type": "integer", "minimum": 1, "description": "Horizontal resolution in pixels"},
					"height": {"type": "integer", "minimum": 1, "description": "Vertical resolution in pixels"},
					"frame_rate": {"type": "number", "exclusiveMinimum": 0, "description": "Frame rate in frames per second"},
					"interlaced": {"type": "boolean", "description": "Use interlaced scanning", "default": false}
				},
				"required": ["width", "height", "frame_rate"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"interlaced": false},
		},
		{
			Name:        "set_timeline_timecode",
			Description: "Set the start timecode of a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to change; defaults to the current timeline"},
					"timecode": {"type": "string", "description": "SMPTE timecode, e.g. \"01:00:00:00\""}
				},
				"required": ["timecode"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_track_count",
			Description: "Count the tracks of a given type on a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to query; defaults to the current timeline"},
					"track_type": {"type": "string", "enum": ["video", "audio", "subtitle"], "description": "Track class to count"}
				},
				"required": ["track_type"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_tracks",
			Description: "List the track layout of a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to query; defaults to the current timeline"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_timeline_items_in_track",
			Description: "List the items placed on one track of a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to query; defaults to the current timeline"},
					"track_type": {"type": "string", "enum": ["video", "audio", "subtitle"], "description": "Track class"},
					"track_index": {"type": "integer", "minimum": 1, "description": "1-based track index"}
				},
				"required": ["track_type", "track_index"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "add_marker",
			Description: "Add a marker to the current timeline at the given frame",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"frame": {"type": "integer", "minimum": 0, "description": "Frame to mark; defaults to the playhead"},
					"color": {"type": "string", "enum": ["Blue", "Cyan", "Green", "Yellow", "Red", "Pink", "Purple", "Fuchsia", "Rose", "Lavender", "Sky", "Mint", "Lemon", "Sand", "Cocoa", "Cream"], "description": "Marker color", "default": "Blue"},
					"note": {"type": "string", "description": "Marker note text", "default": ""}
				},
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"color": "Blue", "note": ""},
		},
		{
			Name:        "add_timeline_marker",
			Description: "Add a marker with full attributes to a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to mark; defaults to the current timeline"},
					"frame_id": {"type": "number", "minimum": 0, "description": "Frame to mark"},
					"color": {"type": "string", "enum": ["Blue", "Cyan", "Green", "Yellow", "Red", "Pink", "Purple", "Fuchsia", "Rose", "Lavender", "Sky", "Mint", "Lemon", "Sand", "Cocoa", "Cream"], "description": "Marker color", "default": "Blue"},
					"name": {"type": "string", "description": "Marker name", "default": ""},
					"note": {"type": "string", "description": "Marker note text", "default": ""},
					"duration": {"type": "number", "minimum": 1, "description": "Marker duration in frames", "default": 1},
					"custom_data": {"type": "string", "description": "Opaque data attached to the marker", "default": ""}
				},
				"required": ["frame_id"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"color": "Blue", "name": "", "note": "", "duration": float64(1), "custom_data": ""},
		},
		{
			Name:        "get_timeline_markers",
			Description: "List the markers on a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to query; defaults to the current timeline"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_timeline_marker",
			Description: "Delete timeline markers by frame, by color, or by custom data",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to edit; defaults to the current timeline"},
					"frame_num": {"type": "number", "minimum": 0, "description": "Delete the marker at this frame"},
					"color": {"type": "string", "description": "Delete all markers of this color"},
					"custom_data": {"type": "string", "description": "Delete the marker carrying this custom data"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "export_timeline",
			Description: "Export a timeline to an interchange format such as AAF, EDL, or XML",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to export; defaults to the current timeline"},
					"file_name": {"type": "string", "description": "Destination file path"},
					"export_type": {"type": "string", "description": "Interchange format, e.g. AAF, EDL, XML"},
					"export_subtype": {"type": "string", "description": "Format-specific variant"}
				},
				"required": ["file_name", "export_type"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "insert_generator",
			Description: "Insert a generator clip into the current timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to edit; defaults to the current timeline"},
					"generator_name": {"type": "string", "description": "Name of the generator, e.g. \"Solid Color\""},
					"generator_type": {"type": "string", "enum": ["standard", "fusion", "ofx"], "description": "Generator family", "default": "standard"}
				},
				"required": ["generator_name"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"generator_type": "standard"},
		},
		{
			Name:        "insert_title",
			Description: "Insert a title clip into the current timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline to edit; defaults to the current timeline"},
					"title_name": {"type": "string", "description": "Name of the title, e.g. \"Text\""},
					"title_type": {"type": "string", "enum": ["standard", "fusion"], "description": "Title family", "default": "standard"}
				},
				"required": ["title_name"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"title_type": "standard"},
		},
	}
}
