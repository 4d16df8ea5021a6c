package registry

import "encoding/json"

// mediaTools covers the media pool: import, bins, clip manipulation, proxy
// and optimized media, and audio transcription.
func mediaTools() []Tool {
	return []Tool{
		{
			Name:        "import_media",
			Description: "Import a media file into the media pool",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"file_path": {"type": "string", "description": "Path of the media file to import"}
				},
				"required": ["file_path"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_media",
			Description: "Delete a clip from the media pool",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Name of the clip to delete"}
				},
				"required": ["clip_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "create_bin",
			Description: "Create a bin in the media pool",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the bin to create"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "move_media_to_bin",
			Description: "Move a clip into a bin",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip to move"},
					"bin_name": {"type": "string", "description": "Destination bin"}
				},
				"required": ["clip_name", "bin_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "export_folder",
			Description: "Export a media pool folder to a file",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"folder_name": {"type": "string", "description": "Folder to export"},
					"export_path": {"type": "string", "description": "Destination path"},
					"export_type": {"type": "string", "enum": ["DRB"], "description": "Export format", "default": "DRB"}
				},
				"required": ["folder_name", "export_path"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"export_type": "DRB"},
		},
		{
			Name:        "create_sub_clip",
			Description: "Create a subclip from a frame range of an existing clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Source clip"},
					"start_frame": {"type": "integer", "minimum": 0, "description": "First frame of the subclip"},
					"end_frame": {"type": "integer", "minimum": 0, "description": "Last frame of the subclip; must be after start_frame"},
					"sub_clip_name": {"type": "string", "description": "Name for the subclip; defaults to \"<clip> subclip\""},
					"bin_name": {"type": "string", "description": "Bin to place the subclip in"}
				},
				"required": ["clip_name", "start_frame", "end_frame"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "create_compound_clip",
			Description: "Combine timeline items into a compound clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline holding the items; defaults to the current timeline"},
					"timeline_item_ids": {"type": "array", "items": {"type": "string"}, "minItems": 1, "description": "Items to combine"},
					"clip_name": {"type": "string", "description": "Name for the compound clip"}
				},
				"required": ["timeline_item_ids", "clip_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "create_fusion_clip",
			Description: "Convert timeline items into a Fusion clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"timeline_name": {"type": "string", "description": "Timeline holding the items; defaults to the current timeline"},
					"timeline_item_ids": {"type": "array", "items": {"type": "string"}, "minItems": 1, "description": "Items to convert"}
				},
				"required": ["timeline_item_ids"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "add_clip_to_timeline",
			Description: "Append a media pool clip to a timeline",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip to append"},
					"timeline_name": {"type": "string", "description": "Destination timeline; defaults to the current timeline"}
				},
				"required": ["clip_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "auto_sync_audio",
			Description: "Synchronize the audio of two or more clips",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_names": {"type": "array", "items": {"type": "string"}, "minItems": 2, "description": "Clips to synchronize"},
					"sync_method": {"type": "string", "enum": ["waveform", "timecode"], "description": "Synchronization method", "default": "waveform"},
					"append_mode": {"type": "boolean", "description": "Append audio tracks instead of replacing", "default": false},
					"target_bin": {"type": "string", "description": "Bin for the synchronized clips"}
				},
				"required": ["clip_names"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"sync_method": "waveform", "append_mode": false},
		},
		{
			Name:        "unlink_clips",
			Description: "Unlink clips from their source media files",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_names": {"type": "array", "items": {"type": "string"}, "minItems": 1, "description": "Clips to unlink"}
				},
				"required": ["clip_names"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "relink_clips",
			Description: "Relink clips to media files, by explicit paths or by folder search",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_names": {"type": "array", "items": {"type": "string"}, "minItems": 1, "description": "Clips to relink"},
					"media_paths": {"type": "array", "items": {"type": "string"}, "description": "Explicit file paths, one per clip"},
					"folder_path": {"type": "string", "description": "Folder to search for matching media"},
					"recursive": {"type": "boolean", "description": "Search the folder recursively", "default": false}
				},
				"required": ["clip_names"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"recursive": false},
		},
		{
			Name:        "replace_clip",
			Description: "Replace a clip's source media with another file",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip to replace"},
					"replacement_path": {"type": "string", "description": "Path of the replacement media file"}
				},
				"required": ["clip_name", "replacement_path"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "link_proxy_media",
			Description: "Attach a proxy media file to a clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip to attach the proxy to"},
					"proxy_file_path": {"type": "string", "description": "Path of the proxy media file"}
				},
				"required": ["clip_name", "proxy_file_path"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "unlink_proxy_media",
			Description: "Detach the proxy media from a clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip to detach the proxy from"}
				},
				"required": ["clip_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_proxy_mode",
			Description: "Set the project-wide proxy media mode",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"mode": {"type": "string", "enum": ["auto", "on", "off"], "description": "Proxy mode"}
				},
				"required": ["mode"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_proxy_quality",
			Description: "Set the proxy media generation quality",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"quality": {"type": "string", "enum": ["quarter", "half", "threeQuarter", "full"], "description": "Proxy resolution fraction"}
				},
				"required": ["quality"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "generate_optimized_media",
			Description: "Generate optimized media for clips; all clips when none are named",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_names": {"type": "array", "items": {"type": "string"}, "description": "Clips to optimize; defaults to every clip"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_optimized_media",
			Description: "Delete optimized media for clips; all clips when none are named",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_names": {"type": "array", "items": {"type": "string"}, "description": "Clips to clean up; defaults to every clip"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_optimized_media_mode",
			Description: "Set the project-wide optimized media playback mode",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"mode": {"type": "string", "enum": ["auto", "on", "off"], "description": "Optimized media mode"}
				},
				"required": ["mode"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "transcribe_audio",
			Description: "Transcribe the audio of a clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip to transcribe"},
					"language": {"type": "string", "description": "BCP-47 language tag", "default": "en-US"}
				},
				"required": ["clip_name"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"language": "en-US"},
		},
		{
			Name:        "clear_transcription",
			Description: "Remove the transcription attached to a clip",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"clip_name": {"type": "string", "description": "Clip to clear"}
				},
				"required": ["clip_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "transcribe_folder_audio",
			Description: "Transcribe the audio of every clip in a folder",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"folder_name": {"type": "string", "description": "Folder whose clips to transcribe"},
					"language": {"type": "string", "description": "BCP-47 language tag", "default": "en-US"}
				},
				"required": ["folder_name"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"language": "en-US"},
		},
		{
			Name:        "clear_folder_transcription",
			Description: "Remove the transcriptions of every clip in a folder",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"folder_name": {"type": "string", "description": "Folder whose clips to clear"}
				},
				"required": ["folder_name"],
				"additionalProperties": false
			}`),
		},
	}
}
