package sim

import (
	"fmt"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func (b *Backend) registerItem(m map[string]handler) {
	m["set_timeline_item_transform"] = b.setItemTransform
	m["set_timeline_item_crop"] = b.setItemCrop
	m["set_timeline_item_composite"] = b.setItemComposite
	m["set_timeline_item_retime"] = b.setItemRetime
	m["set_timeline_item_stabilization"] = b.setItemStabilization
	m["set_timeline_item_audio"] = b.setItemAudio
	m["get_timeline_item_properties"] = b.getItemProperties
	m["reset_timeline_item_properties"] = b.resetItemProperties
	m["set_timeline_item_property"] = b.setItemProperty
	m["get_timeline_item_property"] = b.getItemProperty
	m["get_timeline_item_details"] = b.getItemDetails
	m["add_timeline_item_marker"] = b.addItemMarker
	m["get_timeline_item_markers"] = b.getItemMarkers
	m["delete_timeline_item_marker"] = b.deleteItemMarker
	m["timeline_item_flag"] = b.itemFlag
	m["timeline_item_color"] = b.itemColor
	m["take"] = b.itemTake
	m["version"] = b.itemVersion
}

func (b *Backend) itemByArg(args map[string]any) (*item, error) {
	id, err := reqString(args, "timeline_item_id")
	if err != nil {
		return nil, err
	}
	return b.st.ensureItem(id)
}

func (b *Backend) setItemTransform(args map[string]any) (string, error) {
	prop, err := reqString(args, "property_name")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("property_name", prop, bridge.TransformProperties); err != nil {
		return "", err
	}
	value, err := reqNumber(args, "property_value")
	if err != nil {
		return "", err
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	it.transform[prop] = value
	return fmt.Sprintf("Successfully set %s to %g on %s", prop, value, it.id), nil
}

func (b *Backend) setItemCrop(args map[string]any) (string, error) {
	edge, err := reqString(args, "crop_type")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("crop_type", edge, bridge.CropTypes); err != nil {
		return "", err
	}
	value, err := reqNumber(args, "crop_value")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckRange("crop_value", value, 0, 1); err != nil {
		return "", err
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	it.crop[edge] = value
	return fmt.Sprintf("Successfully set crop %s to %g on %s", edge, value, it.id), nil
}

func (b *Backend) setItemComposite(args map[string]any) (string, error) {
	mode, hasMode := optString(args, "composite_mode")
	opacity, hasOpacity := optNumber(args, "opacity")
	if !hasMode && !hasOpacity {
		return "", bridge.InvalidParameterf("composite_mode", "either composite_mode or opacity is required")
	}
	if hasMode {
		if err := bridge.CheckEnum("composite_mode", mode, bridge.CompositeModes); err != nil {
			return "", err
		}
	}
	if hasOpacity {
		if err := bridge.CheckRange("opacity", opacity, 0, 1); err != nil {
			return "", err
		}
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if hasMode {
		it.compositeMode = mode
	}
	if hasOpacity {
		it.opacity = opacity
	}
	return fmt.Sprintf("Successfully updated composite settings on %s", it.id), nil
}

func (b *Backend) setItemRetime(args map[string]any) (string, error) {
	speed, hasSpeed := optNumber(args, "speed")
	process, hasProcess := optString(args, "process")
	if !hasSpeed && !hasProcess {
		return "", bridge.InvalidParameterf("speed", "either speed or process is required")
	}
	if hasSpeed {
		if err := bridge.CheckSpeed("speed", speed); err != nil {
			return "", err
		}
	}
	if hasProcess {
		if err := bridge.CheckEnum("process", process, bridge.RetimeProcesses); err != nil {
			return "", err
		}
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if hasSpeed {
		it.speed = speed
	}
	if hasProcess {
		it.process = process
	}
	return fmt.Sprintf("Successfully updated retime settings on %s", it.id), nil
}

func (b *Backend) setItemStabilization(args map[string]any) (string, error) {
	method, hasMethod := optString(args, "method")
	if hasMethod {
		if err := bridge.CheckEnum("method", method, bridge.StabilizationMethods); err != nil {
			return "", err
		}
	}
	strength, hasStrength := optNumber(args, "strength")
	if hasStrength {
		if err := bridge.CheckRange("strength", strength, 0, 1); err != nil {
			return "", err
		}
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if enabled, ok := args["enabled"].(bool); ok {
		it.stabEnabled = enabled
	}
	if hasMethod {
		it.stabMethod = method
	}
	if hasStrength {
		it.stabStrength = strength
	}
	return fmt.Sprintf("Successfully updated stabilization settings on %s", it.id), nil
}

func (b *Backend) setItemAudio(args map[string]any) (string, error) {
	volume, hasVolume := optNumber(args, "volume")
	if hasVolume {
		if err := bridge.CheckRange("volume", volume, 0, 2); err != nil {
			return "", err
		}
	}
	pan, hasPan := optNumber(args, "pan")
	if hasPan {
		if err := bridge.CheckRange("pan", pan, -1, 1); err != nil {
			return "", err
		}
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if hasVolume {
		it.volume = volume
	}
	if hasPan {
		it.pan = pan
	}
	if eq, ok := args["eq_enabled"].(bool); ok {
		it.eqEnabled = eq
	}
	return fmt.Sprintf("Successfully updated audio settings on %s", it.id), nil
}

func itemProperties(it *item) map[string]any {
	return map[string]any{
		"id":        it.id,
		"transform": it.transform,
		"crop":      it.crop,
		"composite": map[string]any{
			"mode":    it.compositeMode,
			"opacity": it.opacity,
		},
		"retime": map[string]any{
			"speed":   it.speed,
			"process": it.process,
		},
		"stabilization": map[string]any{
			"enabled":  it.stabEnabled,
			"method":   it.stabMethod,
			"strength": it.stabStrength,
		},
		"audio": map[string]any{
			"volume":     it.volume,
			"pan":        it.pan,
			"eq_enabled": it.eqEnabled,
		},
	}
}

func (b *Backend) getItemProperties(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	return jsonResult(itemProperties(it))
}

func (b *Backend) resetItemProperties(args map[string]any) (string, error) {
	group := strOr(args, "property_type", "all")
	allowed := []string{"transform", "crop", "composite", "retime", "stabilization", "audio", "all"}
	if err := bridge.CheckEnum("property_type", group, allowed); err != nil {
		return "", err
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	resetItem(it, group)
	return fmt.Sprintf("Successfully reset %s properties on %s", group, it.id), nil
}

func (b *Backend) setItemProperty(args map[string]any) (string, error) {
	key, err := reqString(args, "property_key")
	if err != nil {
		return "", err
	}
	value, ok := args["property_value"]
	if !ok {
		return "", bridge.InvalidParameterf("property_value", "required parameter is missing")
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	it.props[key] = value
	return fmt.Sprintf("Successfully set property '%s' to '%v' on %s", key, value, it.id), nil
}

func (b *Backend) getItemProperty(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	key, ok := optString(args, "property_key")
	if !ok || key == "" {
		return jsonResult(map[string]any{
			"timeline_item_id": it.id,
			"properties":       it.props,
		})
	}
	value, found := it.props[key]
	if !found {
		return "", bridge.NotFoundf("property %q not set on %s", key, it.id)
	}
	return jsonResult(map[string]any{
		"timeline_item_id": it.id,
		"property_key":     key,
		"property_value":   value,
	})
}

func (b *Backend) getItemDetails(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	return jsonResult(map[string]any{
		"id":          it.id,
		"clip_name":   it.clipName,
		"track_type":  it.trackType,
		"track_index": it.trackIdx,
		"start_frame": it.start,
		"end_frame":   it.end,
		"duration":    it.end - it.start,
		"clip_color":  it.clipColor,
		"flags":       it.flags,
		"takes":       len(it.takes),
		"versions":    len(it.versions),
	})
}

func (b *Backend) addItemMarker(args map[string]any) (string, error) {
	frame, err := reqInt(args, "frame_id")
	if err != nil {
		return "", err
	}
	if frame < 0 {
		return "", bridge.InvalidParameterf("frame_id", "must be at least 0")
	}
	color := strOr(args, "color", "Blue")
	if err := bridge.CheckEnum("color", color, bridge.MarkerColors); err != nil {
		return "", err
	}
	duration := numOr(args, "duration", 1)
	if duration < 1 {
		return "", bridge.InvalidParameterf("duration", "must be at least 1")
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if _, occupied := it.markers[frame]; occupied {
		return "", bridge.InvalidParameterf("frame_id", "a marker already exists at frame %d", frame)
	}
	it.markers[frame] = &marker{
		frame:      frame,
		color:      color,
		name:       strOr(args, "name", ""),
		note:       strOr(args, "note", ""),
		duration:   duration,
		customData: strOr(args, "custom_data", ""),
	}
	return fmt.Sprintf("Successfully added %s marker at frame %d on %s", color, frame, it.id), nil
}

func (b *Backend) getItemMarkers(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	return jsonResult(map[string]any{
		"timeline_item_id": it.id,
		"markers":          markerList(it.markers),
	})
}

func (b *Backend) deleteItemMarker(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	return deleteMarkersBy(it.markers, args)
}

func (b *Backend) itemFlag(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	color, ok := optString(args, "color")
	if !ok || color == "" {
		return jsonResult(map[string]any{
			"timeline_item_id": it.id,
			"flags":            it.flags,
		})
	}
	if err := bridge.CheckEnum("color", color, bridge.MarkerColors); err != nil {
		return "", err
	}
	for _, existing := range it.flags {
		if existing == color {
			return fmt.Sprintf("Item %s already carries a %s flag", it.id, color), nil
		}
	}
	it.flags = append(it.flags, color)
	return fmt.Sprintf("Successfully added %s flag to %s", color, it.id), nil
}

func (b *Backend) itemColor(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	color, ok := optString(args, "color_name")
	if !ok || color == "" {
		return jsonResult(map[string]any{
			"timeline_item_id": it.id,
			"clip_color":       it.clipColor,
		})
	}
	it.clipColor = color
	return fmt.Sprintf("Successfully set clip color of %s to %s", it.id, color), nil
}

// itemTake either adds a take from a media pool clip or selects an existing
// take by its 1-based index.
func (b *Backend) itemTake(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if clipName, ok := optString(args, "media_pool_item"); ok && clipName != "" {
		if _, found := b.pool().clips[clipName]; !found {
			return "", bridge.NotFoundf("clip %q not found in media pool", clipName)
		}
		start := 0
		if f, ok := optInt(args, "start_frame"); ok {
			start = f
		}
		end := start
		if f, ok := optInt(args, "end_frame"); ok {
			end = f
		}
		if end < start {
			return "", bridge.InvalidParameterf("end_frame", "must not be before start_frame")
		}
		it.takes = append(it.takes, take{clipName: clipName, start: start, end: end})
		if it.selectedTake == 0 {
			it.selectedTake = len(it.takes)
		}
		return fmt.Sprintf("Successfully added take %d ('%s') to %s", len(it.takes), clipName, it.id), nil
	}
	if idx, ok := optInt(args, "take_index"); ok {
		if idx < 1 || idx > len(it.takes) {
			return "", bridge.NotFoundf("take %d not found; item has %d take(s)", idx, len(it.takes))
		}
		it.selectedTake = idx
		return fmt.Sprintf("Successfully selected take %d on %s", idx, it.id), nil
	}
	return "", bridge.InvalidParameterf("media_pool_item", "either media_pool_item or take_index is required")
}

// itemVersion manages color versions: first use of a name creates it,
// new_version_name renames, and version_type selects the family.
func (b *Backend) itemVersion(args map[string]any) (string, error) {
	name, err := reqString(args, "version_name")
	if err != nil {
		return "", err
	}
	kind := strOr(args, "version_type", "local")
	if err := bridge.CheckEnum("version_type", kind, []string{"local", "remote"}); err != nil {
		return "", err
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if newName, ok := optString(args, "new_version_name"); ok && newName != "" {
		if _, found := it.versions[name]; !found {
			return "", bridge.NotFoundf("version %q not found on %s", name, it.id)
		}
		if _, exists := it.versions[newName]; exists {
			return "", bridge.InvalidParameterf("new_version_name", "version %q already exists", newName)
		}
		delete(it.versions, name)
		it.versions[newName] = kind
		return fmt.Sprintf("Successfully renamed version '%s' to '%s' on %s", name, newName, it.id), nil
	}
	if _, exists := it.versions[name]; exists {
		return fmt.Sprintf("Successfully loaded %s version '%s' on %s", kind, name, it.id), nil
	}
	it.versions[name] = kind
	return fmt.Sprintf("Successfully added %s version '%s' to %s", kind, name, it.id), nil
}
