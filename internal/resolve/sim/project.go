package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func (b *Backend) registerProject(m map[string]handler) {
	m["create_project"] = b.createProject
	m["open_project"] = b.openProject
	m["save_project"] = b.saveProject
	m["close_project"] = b.closeProject
	m["delete_project"] = b.deleteProject
	m["export_project"] = b.exportProject
	m["get_project_name"] = b.getProjectName
	m["set_project_name"] = b.setProjectName
	m["get_project_timeline_count"] = b.getProjectTimelineCount
	m["set_project_setting"] = b.setProjectSetting
	m["set_project_property"] = b.setProjectProperty
	m["create_cloud_project"] = b.createCloudProject
	m["import_cloud_project"] = b.importCloudProject
	m["restore_cloud_project"] = b.restoreCloudProject
	m["export_project_to_cloud"] = b.exportProjectToCloud
	m["add_user_to_cloud_project"] = b.addUserToCloudProject
	m["remove_user_from_cloud_project"] = b.removeUserFromCloudProject
}

func (b *Backend) createProject(args map[string]any) (string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return "", err
	}
	if _, exists := b.st.projects[name]; exists {
		return "", bridge.InvalidParameterf("name", "project %q already exists", name)
	}
	b.st.addProject(newProject(name))
	b.st.current = name
	return fmt.Sprintf("Successfully created project '%s'", name), nil
}

func (b *Backend) openProject(args map[string]any) (string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return "", err
	}
	if _, ok := b.st.projects[name]; !ok {
		return "", bridge.NotFoundf("project %q not found", name)
	}
	b.st.current = name
	return fmt.Sprintf("Successfully opened project '%s'", name), nil
}

func (b *Backend) saveProject(args map[string]any) (string, error) {
	p := b.st.currentProject()
	p.saved = true
	return fmt.Sprintf("Successfully saved project '%s'", p.name), nil
}

// closeProject saves the current project and, when another project exists in
// the library, makes the oldest other project current. An editor session
// always keeps some project open.
func (b *Backend) closeProject(args map[string]any) (string, error) {
	p := b.st.currentProject()
	p.saved = true
	for _, name := range b.st.order {
		if name != p.name {
			b.st.current = name
			break
		}
	}
	return fmt.Sprintf("Successfully closed project '%s'", p.name), nil
}

func (b *Backend) deleteProject(args map[string]any) (string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return "", err
	}
	if _, ok := b.st.projects[name]; !ok {
		return "", bridge.NotFoundf("project %q not found", name)
	}
	b.st.removeProjectName(name)
	if len(b.st.projects) == 0 {
		b.st.addProject(newProject(defaultProjectName))
		b.st.current = defaultProjectName
	} else if b.st.current == name {
		b.st.current = b.st.order[0]
	}
	return fmt.Sprintf("Successfully deleted project '%s'", name), nil
}

func (b *Backend) exportProject(args map[string]any) (string, error) {
	path, err := reqString(args, "export_path")
	if err != nil {
		return "", err
	}
	name := strOr(args, "project_name", b.st.current)
	if _, ok := b.st.projects[name]; !ok {
		return "", bridge.NotFoundf("project %q not found", name)
	}
	if boolOr(args, "include_media", false) {
		return fmt.Sprintf("Successfully exported project '%s' with media to '%s'", name, path), nil
	}
	return fmt.Sprintf("Successfully exported project '%s' to '%s'", name, path), nil
}

func (b *Backend) getProjectName(args map[string]any) (string, error) {
	return b.st.current, nil
}

func (b *Backend) setProjectName(args map[string]any) (string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	if name == p.name {
		return fmt.Sprintf("Successfully renamed project to '%s'", name), nil
	}
	if _, exists := b.st.projects[name]; exists {
		return "", bridge.InvalidParameterf("name", "project %q already exists", name)
	}
	delete(b.st.projects, p.name)
	for i, n := range b.st.order {
		if n == p.name {
			b.st.order[i] = name
			break
		}
	}
	p.name = name
	b.st.projects[name] = p
	b.st.current = name
	return fmt.Sprintf("Successfully renamed project to '%s'", name), nil
}

func (b *Backend) getProjectTimelineCount(args map[string]any) (string, error) {
	return jsonResult(map[string]any{"timeline_count": len(b.st.currentProject().timelines)})
}

func (b *Backend) setProjectSetting(args map[string]any) (string, error) {
	name, err := reqString(args, "setting_name")
	if err != nil {
		return "", err
	}
	value, ok := args["setting_value"]
	if !ok {
		return "", bridge.InvalidParameterf("setting_value", "required parameter is missing")
	}
	b.st.currentProject().settings[name] = value
	return fmt.Sprintf("Successfully set project setting '%s' to '%v'", name, value), nil
}

func (b *Backend) setProjectProperty(args map[string]any) (string, error) {
	name, err := reqString(args, "property_name")
	if err != nil {
		return "", err
	}
	value, ok := args["property_value"]
	if !ok {
		return "", bridge.InvalidParameterf("property_value", "required parameter is missing")
	}
	b.st.currentProject().properties[name] = value
	return fmt.Sprintf("Successfully set project property '%s' to '%v'", name, value), nil
}

func (b *Backend) createCloudProject(args map[string]any) (string, error) {
	name, err := reqString(args, "project_name")
	if err != nil {
		return "", err
	}
	cp := &cloudProject{
		id:    uuid.NewString(),
		name:  name,
		users: make(map[string]string),
	}
	b.st.cloudProjects[cp.id] = cp
	return fmt.Sprintf("Successfully created cloud project '%s' with id '%s'", name, cp.id), nil
}

func (b *Backend) importCloudProject(args map[string]any) (string, error) {
	cp, err := b.cloudProject(args)
	if err != nil {
		return "", err
	}
	name := strOr(args, "project_name", cp.name)
	if _, exists := b.st.projects[name]; exists {
		return "", bridge.InvalidParameterf("project_name", "project %q already exists", name)
	}
	b.st.addProject(newProject(name))
	return fmt.Sprintf("Successfully imported cloud project '%s' as '%s'", cp.id, name), nil
}

func (b *Backend) restoreCloudProject(args map[string]any) (string, error) {
	cp, err := b.cloudProject(args)
	if err != nil {
		return "", err
	}
	name := strOr(args, "project_name", cp.name)
	if _, exists := b.st.projects[name]; !exists {
		b.st.addProject(newProject(name))
	}
	return fmt.Sprintf("Successfully restored cloud project '%s' as '%s'", cp.id, name), nil
}

func (b *Backend) exportProjectToCloud(args map[string]any) (string, error) {
	name := strOr(args, "project_name", b.st.current)
	if _, ok := b.st.projects[name]; !ok {
		return "", bridge.NotFoundf("project %q not found", name)
	}
	cp := &cloudProject{
		id:    uuid.NewString(),
		name:  name,
		users: make(map[string]string),
	}
	b.st.cloudProjects[cp.id] = cp
	return fmt.Sprintf("Successfully exported project '%s' to cloud with id '%s'", name, cp.id), nil
}

func (b *Backend) addUserToCloudProject(args map[string]any) (string, error) {
	cp, err := b.cloudProject(args)
	if err != nil {
		return "", err
	}
	email, err := reqString(args, "user_email")
	if err != nil {
		return "", err
	}
	perm := strOr(args, "permissions", "viewer")
	if err := bridge.CheckEnum("permissions", perm, []string{"viewer", "editor", "admin"}); err != nil {
		return "", err
	}
	cp.users[email] = perm
	return fmt.Sprintf("Successfully added user '%s' to cloud project '%s' as %s", email, cp.id, perm), nil
}

func (b *Backend) removeUserFromCloudProject(args map[string]any) (string, error) {
	cp, err := b.cloudProject(args)
	if err != nil {
		return "", err
	}
	email, err := reqString(args, "user_email")
	if err != nil {
		return "", err
	}
	if _, ok := cp.users[email]; !ok {
		return "", bridge.NotFoundf("user %q has no access to cloud project %q", email, cp.id)
	}
	delete(cp.users, email)
	return fmt.Sprintf("Successfully removed user '%s' from cloud project '%s'", email, cp.id), nil
}

func (b *Backend) cloudProject(args map[string]any) (*cloudProject, error) {
	id, err := reqString(args, "cloud_id")
	if err != nil {
		return nil, err
	}
	cp, ok := b.st.cloudProjects[id]
	if !ok {
		return nil, bridge.NotFoundf("cloud project %q not found", id)
	}
	return cp, nil
}
