package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

// gradeState is the node graph of one clip's grade on the color page.
type gradeState struct {
	nodes   []*colorNode
	current int // 1-based index of the current node
}

func newGradeState() *gradeState {
	return &gradeState{
		nodes:   []*colorNode{newColorNode(1, "serial")},
		current: 1,
	}
}

func newColorNode(index int, typ string) *colorNode {
	return &colorNode{
		index: index,
		typ:   typ,
		wheels: map[string]map[string]float64{
			"lift":   {"red": 0, "green": 0, "blue": 0, "master": 0},
			"gamma":  {"red": 0, "green": 0, "blue": 0, "master": 0},
			"gain":   {"red": 0, "green": 0, "blue": 0, "master": 0},
			"offset": {"red": 0, "green": 0, "blue": 0, "master": 0},
		},
	}
}

func (b *Backend) registerColor(m map[string]handler) {
	m["add_node"] = b.addNode
	m["set_color_wheel_param"] = b.setColorWheelParam
	m["copy_grade"] = b.copyGrade
	m["copy_grades"] = b.copyGrades
	m["apply_lut"] = b.applyLUT
	m["export_lut"] = b.exportLUT
	m["export_all_power_grade_luts"] = b.exportAllPowerGradeLUTs
	m["grab_still"] = b.grabStill
	m["create_color_preset_album"] = b.createColorPresetAlbum
	m["delete_color_preset_album"] = b.deleteColorPresetAlbum
	m["save_color_preset"] = b.saveColorPreset
	m["apply_color_preset"] = b.applyColorPreset
	m["delete_color_preset"] = b.deleteColorPreset
	m["set_cdl"] = b.setCDL
	m["node_lut"] = b.nodeLUT
}

// grade resolves a clip's grade, creating an empty one-node grade on first
// touch. An empty clipName addresses the clip under the playhead.
func (b *Backend) grade(clipName string) *gradeState {
	p := b.st.currentProject()
	if p.grades == nil {
		p.grades = make(map[string]*gradeState)
	}
	g, ok := p.grades[clipName]
	if !ok {
		g = newGradeState()
		p.grades[clipName] = g
	}
	return g
}

// gradeNode resolves a node by 1-based index, or the current node when the
// index is absent.
func gradeNode(g *gradeState, args map[string]any) (*colorNode, error) {
	idx := g.current
	if i, ok := optInt(args, "node_index"); ok {
		idx = i
	}
	if idx < 1 || idx > len(g.nodes) {
		return nil, bridge.NotFoundf("node %d not found; grade has %d node(s)", idx, len(g.nodes))
	}
	return g.nodes[idx-1], nil
}

func (b *Backend) addNode(args map[string]any) (string, error) {
	typ := strOr(args, "node_type", "serial")
	if err := bridge.CheckEnum("node_type", typ, bridge.NodeTypes); err != nil {
		return "", err
	}
	g := b.grade("")
	node := newColorNode(len(g.nodes)+1, typ)
	if label, ok := optString(args, "label"); ok {
		node.label = label
	}
	g.nodes = append(g.nodes, node)
	g.current = node.index
	return fmt.Sprintf("Successfully added %s node %d", typ, node.index), nil
}

func (b *Backend) setColorWheelParam(args map[string]any) (string, error) {
	wheel, err := reqString(args, "wheel")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("wheel", wheel, bridge.ColorWheels); err != nil {
		return "", err
	}
	param, err := reqString(args, "param")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("param", param, bridge.WheelParams); err != nil {
		return "", err
	}
	value, err := reqNumber(args, "value")
	if err != nil {
		return "", err
	}
	node, err := gradeNode(b.grade(""), args)
	if err != nil {
		return "", err
	}
	clamped := bridge.ClampWheelValue(value)
	node.wheels[wheel][param] = clamped
	return fmt.Sprintf("Successfully set %s %s to %g on node %d", wheel, param, clamped, node.index), nil
}

func copyGradeState(src *gradeState) *gradeState {
	dst := &gradeState{current: src.current}
	for _, n := range src.nodes {
		cn := *n
		cn.wheels = make(map[string]map[string]float64, len(n.wheels))
		for w, ch := range n.wheels {
			cn.wheels[w] = make(map[string]float64, len(ch))
			for k, v := range ch {
				cn.wheels[w][k] = v
			}
		}
		dst.nodes = append(dst.nodes, &cn)
	}
	return dst
}

func (b *Backend) copyGrade(args map[string]any) (string, error) {
	mode := strOr(args, "mode", "full")
	if err := bridge.CheckEnum("mode", mode, []string{"full", "current_node", "all_nodes"}); err != nil {
		return "", err
	}
	srcName := strOr(args, "source_clip_name", "")
	dstName := strOr(args, "target_clip_name", "")
	src := b.grade(srcName)
	p := b.st.currentProject()
	switch mode {
	case "current_node":
		dst := b.grade(dstName)
		node, err := gradeNode(src, map[string]any{})
		if err != nil {
			return "", err
		}
		copied := copyGradeState(&gradeState{nodes: []*colorNode{node}, current: 1})
		cur, err := gradeNode(dst, map[string]any{})
		if err != nil {
			return "", err
		}
		copied.nodes[0].index = cur.index
		dst.nodes[cur.index-1] = copied.nodes[0]
	default: // full and all_nodes both replace the whole node graph
		p.grades[dstName] = copyGradeState(src)
	}
	return fmt.Sprintf("Successfully copied grade (%s)", mode), nil
}

func (b *Backend) copyGrades(args map[string]any) (string, error) {
	srcID, err := reqString(args, "source_timeline_item_id")
	if err != nil {
		return "", err
	}
	targets, err := stringSlice(args, "target_timeline_item_ids")
	if err != nil {
		return "", err
	}
	if len(targets) == 0 {
		return "", bridge.InvalidParameterf("target_timeline_item_ids", "at least one item is required")
	}
	src, err := b.st.ensureItem(srcID)
	if err != nil {
		return "", err
	}
	items := make([]*item, 0, len(targets))
	for _, id := range targets {
		it, err := b.st.ensureItem(id)
		if err != nil {
			return "", err
		}
		items = append(items, it)
	}
	for _, it := range items {
		it.nodes = copyItemNodes(src.nodes)
	}
	return fmt.Sprintf("Successfully copied grade from %s to %d item(s)", srcID, len(items)), nil
}

func copyItemNodes(src []*colorNode) []*colorNode {
	out := make([]*colorNode, 0, len(src))
	for _, n := range src {
		cn := *n
		cn.wheels = make(map[string]map[string]float64, len(n.wheels))
		for w, ch := range n.wheels {
			cn.wheels[w] = make(map[string]float64, len(ch))
			for k, v := range ch {
				cn.wheels[w][k] = v
			}
		}
		if n.cdl != nil {
			cn.cdl = make(map[string]any, len(n.cdl))
			for k, v := range n.cdl {
				cn.cdl[k] = v
			}
		}
		out = append(out, &cn)
	}
	return out
}

func (b *Backend) applyLUT(args map[string]any) (string, error) {
	path, err := reqString(args, "lut_path")
	if err != nil {
		return "", err
	}
	node, err := gradeNode(b.grade(""), args)
	if err != nil {
		return "", err
	}
	node.lutPath = path
	return fmt.Sprintf("Successfully applied LUT '%s' to node %d", path, node.index), nil
}

func (b *Backend) exportLUT(args map[string]any) (string, error) {
	format := strOr(args, "lut_format", "Cube")
	if err := bridge.CheckEnum("lut_format", format, []string{"Cube", "Panasonic"}); err != nil {
		return "", err
	}
	size := strOr(args, "lut_size", "33Point")
	if err := bridge.CheckEnum("lut_size", size, []string{"17Point", "33Point", "65Point"}); err != nil {
		return "", err
	}
	clipName := strOr(args, "clip_name", "current clip")
	path := strOr(args, "export_path", "")
	if path == "" {
		return fmt.Sprintf("Successfully exported %s %s LUT for '%s'", size, format, clipName), nil
	}
	return fmt.Sprintf("Successfully exported %s %s LUT for '%s' to '%s'", size, format, clipName, path), nil
}

func (b *Backend) exportAllPowerGradeLUTs(args map[string]any) (string, error) {
	dir, err := reqString(args, "export_dir")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	return fmt.Sprintf("Successfully exported %d PowerGrade LUT(s) to '%s'", p.stills, dir), nil
}

func (b *Backend) grabStill(args map[string]any) (string, error) {
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	if boolOr(args, "grab_all", false) {
		n := len(tl.items)
		if n == 0 {
			n = 1
		}
		p.stills += n
		return fmt.Sprintf("Successfully grabbed %d still(s) from timeline '%s'", n, tl.name), nil
	}
	p.stills++
	return fmt.Sprintf("Successfully grabbed still from timeline '%s'", tl.name), nil
}

func (b *Backend) createColorPresetAlbum(args map[string]any) (string, error) {
	name, err := reqString(args, "album_name")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	if _, exists := p.albums[name]; exists {
		return "", bridge.InvalidParameterf("album_name", "album %q already exists", name)
	}
	p.albums[name] = make(map[string]*colorPreset)
	return fmt.Sprintf("Successfully created color preset album '%s'", name), nil
}

func (b *Backend) deleteColorPresetAlbum(args map[string]any) (string, error) {
	name, err := reqString(args, "album_name")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	if _, ok := p.albums[name]; !ok {
		return "", bridge.NotFoundf("album %q not found", name)
	}
	if name == defaultAlbum {
		return "", bridge.NotSupportedf("the built-in album %q cannot be deleted", defaultAlbum)
	}
	delete(p.albums, name)
	return fmt.Sprintf("Successfully deleted color preset album '%s'", name), nil
}

func (b *Backend) saveColorPreset(args map[string]any) (string, error) {
	album := strOr(args, "album_name", defaultAlbum)
	p := b.st.currentProject()
	presets, ok := p.albums[album]
	if !ok {
		return "", bridge.NotFoundf("album %q not found", album)
	}
	clipName := strOr(args, "clip_name", "current clip")
	name := strOr(args, "preset_name", clipName)
	pr := &colorPreset{
		id:       uuid.NewString(),
		name:     name,
		album:    album,
		clipName: clipName,
	}
	presets[name] = pr
	return fmt.Sprintf("Successfully saved color preset '%s' (id %s) in album '%s'", name, pr.id, album), nil
}

// lookupPreset resolves a preset by id across all albums, or by name within
// the given album.
func (b *Backend) lookupPreset(args map[string]any) (*colorPreset, error) {
	p := b.st.currentProject()
	if id, ok := optString(args, "preset_id"); ok && id != "" {
		for _, presets := range p.albums {
			for _, pr := range presets {
				if pr.id == id {
					return pr, nil
				}
			}
		}
		return nil, bridge.NotFoundf("color preset with id %q not found", id)
	}
	name, ok := optString(args, "preset_name")
	if !ok || name == "" {
		return nil, bridge.InvalidParameterf("preset_id", "either preset_id or preset_name is required")
	}
	album := strOr(args, "album_name", defaultAlbum)
	presets, ok := p.albums[album]
	if !ok {
		return nil, bridge.NotFoundf("album %q not found", album)
	}
	pr, ok := presets[name]
	if !ok {
		return nil, bridge.NotFoundf("color preset %q not found in album %q", name, album)
	}
	return pr, nil
}

func (b *Backend) applyColorPreset(args map[string]any) (string, error) {
	pr, err := b.lookupPreset(args)
	if err != nil {
		return "", err
	}
	clipName := strOr(args, "clip_name", "current clip")
	return fmt.Sprintf("Successfully applied color preset '%s' to '%s'", pr.name, clipName), nil
}

func (b *Backend) deleteColorPreset(args map[string]any) (string, error) {
	pr, err := b.lookupPreset(args)
	if err != nil {
		return "", err
	}
	delete(b.st.currentProject().albums[pr.album], pr.name)
	return fmt.Sprintf("Successfully deleted color preset '%s' from album '%s'", pr.name, pr.album), nil
}

// ensureItemNodes grows an item's node graph with serial nodes up to the
// requested 1-based index.
func ensureItemNodes(it *item, idx int) *colorNode {
	for len(it.nodes) < idx {
		it.nodes = append(it.nodes, newColorNode(len(it.nodes)+1, "serial"))
	}
	return it.nodes[idx-1]
}

func (b *Backend) setCDL(args map[string]any) (string, error) {
	id, err := reqString(args, "timeline_item_id")
	if err != nil {
		return "", err
	}
	cdl, ok := args["cdl_map"].(map[string]any)
	if !ok {
		return "", bridge.InvalidParameterf("cdl_map", "expected an object")
	}
	idx := 1
	if n, found := cdl["NodeIndex"]; found {
		f, numeric := toFloat(n)
		if !numeric || f < 1 {
			return "", bridge.InvalidParameterf("cdl_map", "NodeIndex must be a positive integer")
		}
		idx = int(f)
	}
	it, err := b.st.ensureItem(id)
	if err != nil {
		return "", err
	}
	node := ensureItemNodes(it, idx)
	node.cdl = make(map[string]any, len(cdl))
	for k, v := range cdl {
		node.cdl[k] = v
	}
	return fmt.Sprintf("Successfully set CDL on node %d of %s", idx, id), nil
}

func (b *Backend) nodeLUT(args map[string]any) (string, error) {
	id, err := reqString(args, "timeline_item_id")
	if err != nil {
		return "", err
	}
	idx, err := reqInt(args, "node_index")
	if err != nil {
		return "", err
	}
	if idx < 1 {
		return "", bridge.InvalidParameterf("node_index", "must be at least 1")
	}
	it, err := b.st.ensureItem(id)
	if err != nil {
		return "", err
	}
	node := ensureItemNodes(it, idx)
	if path, ok := optString(args, "lut_path"); ok {
		node.lutPath = path
		return fmt.Sprintf("Successfully set LUT '%s' on node %d of %s", path, idx, id), nil
	}
	return jsonResult(map[string]any{
		"timeline_item_id": id,
		"node_index":       idx,
		"lut_path":         node.lutPath,
	})
}
