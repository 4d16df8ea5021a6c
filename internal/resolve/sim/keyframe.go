package sim

import (
	"fmt"
	"sort"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func (b *Backend) registerKeyframe(m map[string]handler) {
	m["enable_keyframes"] = b.enableKeyframes
	m["add_keyframe"] = b.addKeyframe
	m["modify_keyframe"] = b.modifyKeyframe
	m["delete_keyframe"] = b.deleteKeyframe
	m["get_keyframes"] = b.getKeyframes
	m["set_keyframe_interpolation"] = b.setKeyframeInterpolation
}

func (b *Backend) enableKeyframes(args map[string]any) (string, error) {
	mode := strOr(args, "keyframe_mode", "All")
	if err := bridge.CheckEnum("keyframe_mode", mode, bridge.KeyframeModes); err != nil {
		return "", err
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	switch mode {
	case "Color":
		it.kfColor = true
	case "Sizing":
		it.kfSizing = true
	default:
		it.kfAll = true
		it.kfColor = true
		it.kfSizing = true
	}
	return fmt.Sprintf("Successfully enabled %s keyframes on %s", mode, it.id), nil
}

// keyframeTarget validates the shared item/property pair of the keyframe
// tools.
func (b *Backend) keyframeTarget(args map[string]any) (*item, string, error) {
	prop, err := reqString(args, "property_name")
	if err != nil {
		return nil, "", err
	}
	if err := bridge.CheckEnum("property_name", prop, bridge.KeyframeProperties); err != nil {
		return nil, "", err
	}
	it, err := b.itemByArg(args)
	if err != nil {
		return nil, "", err
	}
	return it, prop, nil
}

// findKeyframe returns the index of the keyframe at frame, or -1.
func findKeyframe(kfs []keyframe, frame int) int {
	for i, kf := range kfs {
		if kf.frame == frame {
			return i
		}
	}
	return -1
}

func insertKeyframe(kfs []keyframe, kf keyframe) []keyframe {
	kfs = append(kfs, kf)
	sort.Slice(kfs, func(i, j int) bool { return kfs[i].frame < kfs[j].frame })
	return kfs
}

// addKeyframe places a keyframe. Two keyframes of one property cannot share
// a frame; the caller must modify or delete the existing one first.
func (b *Backend) addKeyframe(args map[string]any) (string, error) {
	frame, err := reqInt(args, "frame")
	if err != nil {
		return "", err
	}
	if frame < 0 {
		return "", bridge.InvalidParameterf("frame", "must be at least 0")
	}
	value, err := reqNumber(args, "value")
	if err != nil {
		return "", err
	}
	it, prop, err := b.keyframeTarget(args)
	if err != nil {
		return "", err
	}
	if findKeyframe(it.keys[prop], frame) != -1 {
		return "", bridge.InvalidParameterf("frame", "a %s keyframe already exists at frame %d", prop, frame)
	}
	it.keys[prop] = insertKeyframe(it.keys[prop], keyframe{frame: frame, value: value, interp: "Linear"})
	return fmt.Sprintf("Successfully added %s keyframe at frame %d on %s", prop, frame, it.id), nil
}

// modifyKeyframe updates the value and/or relocates an existing keyframe.
// Relocation onto an occupied frame is rejected.
func (b *Backend) modifyKeyframe(args map[string]any) (string, error) {
	frame, err := reqInt(args, "frame")
	if err != nil {
		return "", err
	}
	newValue, hasValue := optNumber(args, "new_value")
	newFrame, hasFrame := optInt(args, "new_frame")
	if !hasValue && !hasFrame {
		return "", bridge.InvalidParameterf("new_value", "either new_value or new_frame is required")
	}
	if hasFrame && newFrame < 0 {
		return "", bridge.InvalidParameterf("new_frame", "must be at least 0")
	}
	it, prop, err := b.keyframeTarget(args)
	if err != nil {
		return "", err
	}
	kfs := it.keys[prop]
	idx := findKeyframe(kfs, frame)
	if idx == -1 {
		return "", bridge.NotFoundf("no %s keyframe at frame %d on %s", prop, frame, it.id)
	}
	if hasFrame && newFrame != frame && findKeyframe(kfs, newFrame) != -1 {
		return "", bridge.InvalidParameterf("new_frame", "a %s keyframe already exists at frame %d", prop, newFrame)
	}
	kf := kfs[idx]
	if hasValue {
		kf.value = newValue
	}
	if hasFrame {
		kf.frame = newFrame
	}
	kfs = append(kfs[:idx], kfs[idx+1:]...)
	it.keys[prop] = insertKeyframe(kfs, kf)
	return fmt.Sprintf("Successfully modified %s keyframe at frame %d on %s", prop, frame, it.id), nil
}

// deleteKeyframe removes a keyframe. Deleting an absent keyframe succeeds;
// the end state is the same either way.
func (b *Backend) deleteKeyframe(args map[string]any) (string, error) {
	frame, err := reqInt(args, "frame")
	if err != nil {
		return "", err
	}
	it, prop, err := b.keyframeTarget(args)
	if err != nil {
		return "", err
	}
	kfs := it.keys[prop]
	if idx := findKeyframe(kfs, frame); idx != -1 {
		it.keys[prop] = append(kfs[:idx], kfs[idx+1:]...)
	}
	return fmt.Sprintf("Successfully deleted %s keyframe at frame %d on %s", prop, frame, it.id), nil
}

func keyframeList(kfs []keyframe) []map[string]any {
	out := make([]map[string]any, 0, len(kfs))
	for _, kf := range kfs {
		out = append(out, map[string]any{
			"frame":         kf.frame,
			"value":         kf.value,
			"interpolation": kf.interp,
		})
	}
	return out
}

// getKeyframes lists keyframes for one property, or for every keyframed
// property when property_name is omitted.
func (b *Backend) getKeyframes(args map[string]any) (string, error) {
	it, err := b.itemByArg(args)
	if err != nil {
		return "", err
	}
	if prop, ok := optString(args, "property_name"); ok && prop != "" {
		if err := bridge.CheckEnum("property_name", prop, bridge.KeyframeProperties); err != nil {
			return "", err
		}
		return jsonResult(map[string]any{
			"timeline_item_id": it.id,
			"property_name":    prop,
			"keyframes":        keyframeList(it.keys[prop]),
		})
	}
	props := make([]string, 0, len(it.keys))
	for prop, kfs := range it.keys {
		if len(kfs) > 0 {
			props = append(props, prop)
		}
	}
	sort.Strings(props)
	all := make(map[string]any, len(props))
	for _, prop := range props {
		all[prop] = keyframeList(it.keys[prop])
	}
	return jsonResult(map[string]any{
		"timeline_item_id": it.id,
		"keyframes":        all,
	})
}

func (b *Backend) setKeyframeInterpolation(args map[string]any) (string, error) {
	frame, err := reqInt(args, "frame")
	if err != nil {
		return "", err
	}
	interp, err := reqString(args, "interpolation_type")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("interpolation_type", interp, bridge.InterpolationTypes); err != nil {
		return "", err
	}
	it, prop, err := b.keyframeTarget(args)
	if err != nil {
		return "", err
	}
	kfs := it.keys[prop]
	idx := findKeyframe(kfs, frame)
	if idx == -1 {
		return "", bridge.NotFoundf("no %s keyframe at frame %d on %s", prop, frame, it.id)
	}
	kfs[idx].interp = interp
	return fmt.Sprintf("Successfully set %s interpolation on %s keyframe at frame %d", interp, prop, frame), nil
}
