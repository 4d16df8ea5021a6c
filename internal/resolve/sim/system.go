package sim

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func (b *Backend) registerSystem(m map[string]handler) {
	m["switch_page"] = b.switchPage
	m["set_cache_mode"] = b.setCacheMode
	m["set_cache_path"] = b.setCachePath
	m["save_layout_preset"] = b.saveLayoutPreset
	m["load_layout_preset"] = b.loadLayoutPreset
	m["export_layout_preset"] = b.exportLayoutPreset
	m["import_layout_preset"] = b.importLayoutPreset
	m["delete_layout_preset"] = b.deleteLayoutPreset
	m["quit_app"] = b.quitApp
	m["restart_app"] = b.restartApp
	m["open_settings"] = b.openSettings
	m["open_app_preferences"] = b.openAppPreferences
	m["object_help"] = b.objectHelp
	m["inspect_custom_object"] = b.inspectCustomObject
}

func (b *Backend) switchPage(args map[string]any) (string, error) {
	page, err := reqString(args, "page")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("page", page, bridge.Pages); err != nil {
		return "", err
	}
	b.st.page = page
	return fmt.Sprintf("Successfully switched to %s page", page), nil
}

func (b *Backend) setCacheMode(args map[string]any) (string, error) {
	mode, err := reqString(args, "mode")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("mode", mode, bridge.CacheModes); err != nil {
		return "", err
	}
	b.st.cacheMode = mode
	return fmt.Sprintf("Successfully set cache mode to %s", mode), nil
}

func (b *Backend) setCachePath(args map[string]any) (string, error) {
	pathType, err := reqString(args, "path_type")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("path_type", pathType, []string{"cache", "gallery", "proxy"}); err != nil {
		return "", err
	}
	path, err := reqString(args, "path")
	if err != nil {
		return "", err
	}
	b.st.cachePaths[pathType] = path
	return fmt.Sprintf("Successfully set %s path to '%s'", pathType, path), nil
}

func (b *Backend) saveLayoutPreset(args map[string]any) (string, error) {
	name, err := reqString(args, "preset_name")
	if err != nil {
		return "", err
	}
	b.st.layoutPresets[name] = b.st.page
	return fmt.Sprintf("Successfully saved layout preset '%s'", name), nil
}

func (b *Backend) loadLayoutPreset(args map[string]any) (string, error) {
	name, err := reqString(args, "preset_name")
	if err != nil {
		return "", err
	}
	layout, ok := b.st.layoutPresets[name]
	if !ok {
		return "", bridge.NotFoundf("layout preset %q not found", name)
	}
	if layout != "" {
		b.st.page = layout
	}
	return fmt.Sprintf("Successfully loaded layout preset '%s'", name), nil
}

func (b *Backend) exportLayoutPreset(args map[string]any) (string, error) {
	name, err := reqString(args, "preset_name")
	if err != nil {
		return "", err
	}
	path, err := reqString(args, "export_path")
	if err != nil {
		return "", err
	}
	if _, ok := b.st.layoutPresets[name]; !ok {
		return "", bridge.NotFoundf("layout preset %q not found", name)
	}
	return fmt.Sprintf("Successfully exported layout preset '%s' to '%s'", name, path), nil
}

func (b *Backend) importLayoutPreset(args map[string]any) (string, error) {
	path, err := reqString(args, "import_path")
	if err != nil {
		return "", err
	}
	name := strOr(args, "preset_name", strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if _, exists := b.st.layoutPresets[name]; exists {
		return "", bridge.InvalidParameterf("preset_name", "layout preset %q already exists", name)
	}
	b.st.layoutPresets[name] = ""
	return fmt.Sprintf("Successfully imported layout preset '%s' from '%s'", name, path), nil
}

func (b *Backend) deleteLayoutPreset(args map[string]any) (string, error) {
	name, err := reqString(args, "preset_name")
	if err != nil {
		return "", err
	}
	if _, ok := b.st.layoutPresets[name]; !ok {
		return "", bridge.NotFoundf("layout preset %q not found", name)
	}
	delete(b.st.layoutPresets, name)
	return fmt.Sprintf("Successfully deleted layout preset '%s'", name), nil
}

// quitApp marks the session ended. Subsequent calls fail until the backend
// is re-initialized.
func (b *Backend) quitApp(args map[string]any) (string, error) {
	if boolOr(args, "save_project", true) {
		b.st.currentProject().saved = true
	}
	b.ready = false
	return "Successfully quit DaVinci Resolve", nil
}

func (b *Backend) restartApp(args map[string]any) (string, error) {
	wait := 5
	if w, ok := optInt(args, "wait_seconds"); ok {
		if w < 0 {
			return "", bridge.InvalidParameterf("wait_seconds", "must be at least 0")
		}
		wait = w
	}
	st, err := newState()
	if err != nil {
		return "", bridge.Internalf("reseed state: %v", err)
	}
	b.st = st
	return fmt.Sprintf("Successfully restarted DaVinci Resolve after %d second(s)", wait), nil
}

func (b *Backend) openSettings(args map[string]any) (string, error) {
	return "Successfully opened project settings", nil
}

func (b *Backend) openAppPreferences(args map[string]any) (string, error) {
	return "Successfully opened application preferences", nil
}

// objectHelp documents the scripting surface of the simulated object model.
var objectDocs = map[string]string{
	"Resolve":        "Application root. Pages, project manager, and layout presets hang off this object.",
	"ProjectManager": "Creates, opens, saves, and deletes projects; manages cloud projects.",
	"Project":        "One edited program: timelines, media pool, render queue, and settings.",
	"MediaPool":      "Bins and clips of the current project, including proxies and optimized media.",
	"Timeline":       "Tracks, items, and markers of one timeline.",
	"TimelineItem":   "One clip instance on a timeline: transform, crop, composite, retime, audio, keyframes, grade.",
	"Gallery":        "Grabbed stills and PowerGrade albums of the color page.",
}

func (b *Backend) objectHelp(args map[string]any) (string, error) {
	objectType, err := reqString(args, "object_type")
	if err != nil {
		return "", err
	}
	doc, ok := objectDocs[objectType]
	if !ok {
		known := make([]string, 0, len(objectDocs))
		for name := range objectDocs {
			known = append(known, name)
		}
		return "", bridge.NotFoundf("unknown object type %q; known types: %s", objectType, strings.Join(known, ", "))
	}
	return jsonResult(map[string]any{
		"object_type": objectType,
		"help":        doc,
	})
}

func (b *Backend) inspectCustomObject(args map[string]any) (string, error) {
	path, err := reqString(args, "object_path")
	if err != nil {
		return "", err
	}
	root := strings.SplitN(path, ".", 2)[0]
	if !strings.EqualFold(root, "resolve") {
		return "", bridge.NotFoundf("object path %q does not start at the scripting root", path)
	}
	return jsonResult(map[string]any{
		"object_path":     path,
		"current_project": b.st.current,
		"current_page":    b.st.page,
		"project_count":   len(b.st.projects),
		"layout_presets":  len(b.st.layoutPresets),
		"render_presets":  len(b.st.renderPresets),
	})
}
