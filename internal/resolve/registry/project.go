package registry

import "encoding/json"

// projectTools covers project lifecycle, settings, and cloud project
// operations.
func projectTools() []Tool {
	return []Tool{
		{
			Name:        "create_project",
			Description: "Create a new project with the given name and make it current",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the project to create"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "open_project",
			Description: "Open an existing project by name and make it current",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the project to open"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "save_project",
			Description: "Save the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "close_project",
			Description: "Close the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "delete_project",
			Description: "Delete a project by name; deleting the last project recreates the default one",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Name of the project to delete"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "export_project",
			Description: "Export a project to a file, optionally bundling its media",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"export_path": {"type": "string", "description": "Destination path for the exported project"},
					"include_media": {"type": "boolean", "description": "Bundle source media with the export", "default": false},
					"project_name": {"type": "string", "description": "Project to export; defaults to the current project"}
				},
				"required": ["export_path"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"include_media": false},
		},
		{
			Name:        "get_project_name",
			Description: "Get the name of the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_project_name",
			Description: "Rename the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "New project name"}
				},
				"required": ["name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "get_project_timeline_count",
			Description: "Get the number of timelines in the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_project_setting",
			Description: "Set a project setting such as timelineFrameRate or timelineResolutionWidth",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"setting_name": {"type": "string", "description": "Name of the setting"},
					"setting_value": {"type": ["string", "number", "boolean"], "description": "Value to assign"}
				},
				"required": ["setting_name", "setting_value"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "set_project_property",
			Description: "Set an arbitrary property on the current project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"property_name": {"type": "string", "description": "Name of the property"},
					"property_value": {"type": ["string", "number", "boolean"], "description": "Value to assign"}
				},
				"required": ["property_name", "property_value"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "create_cloud_project",
			Description: "Create a new cloud project in the project library",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"project_name": {"type": "string", "description": "Name of the cloud project"},
					"folder_path": {"type": "string", "description": "Library folder to create the project in"}
				},
				"required": ["project_name"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "import_cloud_project",
			Description: "Import a cloud project into the local project library",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"cloud_id": {"type": "string", "description": "Identifier of the cloud project"},
					"project_name": {"type": "string", "description": "Local name for the imported project"}
				},
				"required": ["cloud_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "restore_cloud_project",
			Description: "Restore a cloud project from its cloud backup",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"cloud_id": {"type": "string", "description": "Identifier of the cloud project"},
					"project_name": {"type": "string", "description": "Local name for the restored project"}
				},
				"required": ["cloud_id"],
				"additionalProperties": false
			}`),
		},
		{
			Name:        "export_project_to_cloud",
			Description: "Export a project to the cloud library",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"project_name": {"type": "string", "description": "Project to export; defaults to the current project"}
				},
				"additionalProperties": false
			}`),
		},
		{
			Name:        "add_user_to_cloud_project",
			Description: "Grant a user access to a cloud project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"cloud_id": {"type": "string", "description": "Identifier of the cloud project"},
					"user_email": {"type": "string", "description": "Email address of the user to add"},
					"permissions": {"type": "string", "enum": ["viewer", "editor", "admin"], "description": "Access level to grant", "default": "viewer"}
				},
				"required": ["cloud_id", "user_email"],
				"additionalProperties": false
			}`),
			Defaults: map[string]any{"permissions": "viewer"},
		},
		{
			Name:        "remove_user_from_cloud_project",
			Description: "Revoke a user's access to a cloud project",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"cloud_id": {"type": "string", "description": "Identifier of the cloud project"},
					"user_email": {"type": "string", "description": "Email address of the user to remove"}
				},
				"required": ["cloud_id", "user_email"],
				"additionalProperties": false
			}`),
		},
	}
}
