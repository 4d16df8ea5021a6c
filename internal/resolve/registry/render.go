package registry

import "encoding/json"

// renderTools covers the render queue and render preset management.
func renderTools() []Tool {
	return []Tool{
		{
			Name:        "add_to_render_queue",
			Description: "Queue a render job for a timeline with a named render preset",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_name": {"type": "string", "description": "Render preset to use"},
					"timeline_name": {"type": "string", "description": "Timeline to render; defaults to the current timeline"},
					"use_in_out_range": {"type": "boolean", "description": "Render only the in/out range", "default": false}
				},
				"required": ["preset_name"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"use_in_out_range": false},
		},
		{
			Name:        "start_render",
			Description: "Start rendering every queued job",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "clear_render_queue",
			Description: "Remove every job from the render queue",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_render_status",
			Description: "Report the status and progress of every render job",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "create_render_preset",
			Description: "Create a named render preset with format, codec, resolution, and audio settings",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"preset_name": {"type": "string", "description": "Name for the preset"},
					"format": {"type": "string", "description": "Container format, e.g. mp4, mov, mxf"},
					"codec": {"type": "string", "description": "Video codec, e.g. H.264, ProRes"},
					"resolution_width": {"type": "integer", "minimum": 1, "description": "Horizontal resolution in pixels"},
					"resolution_height": {"type": "integer", "minimum": 1, "description": "Vertical resolution in pixels"},
					"frame_rate": {"type": "number", "exclusiveMinimum": 0, "description": "Frame rate in frames per second"},
					"quality": {"type": "integer", "minimum": 1, "maximum": 100, "description": "Encoder quality, 1-100"},
					"audio_codec": {"type": "string", "description": "Audio codec", "default": "AAC"},
					"audio_bitrate": {"type": "integer", "minimum": 1, "description": "Audio bitrate in bits per second", "default": 192000}
				},
				"required": ["preset_name", "format", "codec", "resolution_width", "resolution_height", "frame_rate", "quality"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"audio_codec": "AAC", "audio_bitrate": float64(192000)},
		},
	}
}
