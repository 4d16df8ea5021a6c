package sim

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func (b *Backend) registerTimeline(m map[string]handler) {
	m["create_timeline"] = b.createTimeline
	m["create_empty_timeline"] = b.createEmptyTimeline
	m["delete_timeline"] = b.deleteTimeline
	m["duplicate_timeline"] = b.duplicateTimeline
	m["set_current_timeline"] = b.setCurrentTimeline
	m["list_timelines_tool"] = b.listTimelines
	m["get_timeline_name"] = b.getTimelineName
	m["set_timeline_name"] = b.setTimelineName
	m["get_timeline_frames"] = b.getTimelineFrames
	m["set_timeline_format"] = b.setTimelineFormat
	m["set_timeline_timecode"] = b.setTimelineTimecode
	m["get_timeline_track_count"] = b.getTimelineTrackCount
	m["get_timeline_tracks"] = b.getTimelineTracks
	m["get_timeline_items_in_track"] = b.getTimelineItemsInTrack
	m["add_marker"] = b.addMarker
	m["add_timeline_marker"] = b.addTimelineMarker
	m["get_timeline_markers"] = b.getTimelineMarkers
	m["delete_timeline_marker"] = b.deleteTimelineMarker
	m["export_timeline"] = b.exportTimeline
	m["insert_generator"] = b.insertGenerator
	m["insert_title"] = b.insertTitle
}

// newNamedTimeline validates the shared creation parameters and registers
// the timeline, inheriting unspecified format values from project settings.
func (b *Backend) newNamedTimeline(args map[string]any) (*timeline, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return nil, err
	}
	p := b.st.currentProject()
	if _, exists := p.timelines[name]; exists {
		return nil, bridge.InvalidParameterf("name", "timeline %q already exists", name)
	}
	frameRate := strOr(args, "frame_rate", defaultFrameRate)
	width := defaultWidth
	if w, ok := optInt(args, "resolution_width"); ok {
		if w < 1 {
			return nil, bridge.InvalidParameterf("resolution_width", "must be at least 1")
		}
		width = w
	}
	height := defaultHeight
	if h, ok := optInt(args, "resolution_height"); ok {
		if h < 1 {
			return nil, bridge.InvalidParameterf("resolution_height", "must be at least 1")
		}
		height = h
	}
	tl := newTimeline(name, frameRate, width, height)
	p.timelines[name] = tl
	p.order = append(p.order, name)
	if p.current == "" {
		p.current = name
	}
	return tl, nil
}

func (b *Backend) createTimeline(args map[string]any) (string, error) {
	tl, err := b.newNamedTimeline(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully created timeline '%s'", tl.name), nil
}

func (b *Backend) createEmptyTimeline(args map[string]any) (string, error) {
	// Validate the extras before newNamedTimeline registers anything.
	vt, vtSet := optInt(args, "video_tracks")
	if vtSet && vt < 1 {
		return "", bridge.InvalidParameterf("video_tracks", "must be at least 1")
	}
	at, atSet := optInt(args, "audio_tracks")
	if atSet && at < 1 {
		return "", bridge.InvalidParameterf("audio_tracks", "must be at least 1")
	}
	tl, err := b.newNamedTimeline(args)
	if err != nil {
		return "", err
	}
	if tc, ok := optString(args, "start_timecode"); ok {
		tl.startTimecode = tc
	}
	if vtSet {
		tl.videoTracks = vt
	}
	if atSet {
		tl.audioTracks = at
	}
	return fmt.Sprintf("Successfully created timeline '%s'", tl.name), nil
}

// deleteTimeline removes the timeline and everything on it. Deleting the
// current timeline leaves the project without one.
func (b *Backend) deleteTimeline(args map[string]any) (string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	if _, ok := p.timelines[name]; !ok {
		return "", bridge.NotFoundf("timeline %q not found", name)
	}
	delete(p.timelines, name)
	for i, n := range p.order {
		if n == name {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	if p.current == name {
		p.current = ""
	}
	return fmt.Sprintf("Successfully deleted timeline '%s'", name), nil
}

func (b *Backend) duplicateTimeline(args map[string]any) (string, error) {
	src, err := reqString(args, "source_timeline_name")
	if err != nil {
		return "", err
	}
	dst, err := reqString(args, "new_timeline_name")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	from, ok := p.timelines[src]
	if !ok {
		return "", bridge.NotFoundf("timeline %q not found", src)
	}
	if _, exists := p.timelines[dst]; exists {
		return "", bridge.InvalidParameterf("new_timeline_name", "timeline %q already exists", dst)
	}
	dup := b.copyTimeline(from, dst)
	p.timelines[dst] = dup
	p.order = append(p.order, dst)
	return fmt.Sprintf("Successfully duplicated timeline '%s' as '%s'", src, dst), nil
}

// copyTimeline deep-copies a timeline. Duplicated items receive fresh ids so
// item identity stays unique across the project.
func (b *Backend) copyTimeline(from *timeline, name string) *timeline {
	tl := newTimeline(name, from.frameRate, from.width, from.height)
	tl.interlaced = from.interlaced
	tl.startTimecode = from.startTimecode
	tl.videoTracks = from.videoTracks
	tl.audioTracks = from.audioTracks
	tl.subtitleTracks = from.subtitleTracks
	for f, mk := range from.markers {
		dup := *mk
		tl.markers[f] = &dup
	}
	for _, id := range from.itemOrder {
		dup := copyItem(from.items[id])
		dup.id = b.st.nextItemID()
		tl.items[dup.id] = dup
		tl.itemOrder = append(tl.itemOrder, dup.id)
	}
	return tl
}

func copyItem(src *item) *item {
	dup := *src
	dup.transform = make(map[string]float64, len(src.transform))
	for k, v := range src.transform {
		dup.transform[k] = v
	}
	dup.crop = make(map[string]float64, len(src.crop))
	for k, v := range src.crop {
		dup.crop[k] = v
	}
	dup.props = make(map[string]any, len(src.props))
	for k, v := range src.props {
		dup.props[k] = v
	}
	dup.markers = make(map[int]*marker, len(src.markers))
	for f, mk := range src.markers {
		m := *mk
		dup.markers[f] = &m
	}
	dup.flags = append([]string(nil), src.flags...)
	dup.takes = append([]take(nil), src.takes...)
	dup.versions = make(map[string]string, len(src.versions))
	for k, v := range src.versions {
		dup.versions[k] = v
	}
	dup.nodes = make([]*colorNode, 0, len(src.nodes))
	for _, n := range src.nodes {
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
		dup.nodes = append(dup.nodes, &cn)
	}
	dup.keys = make(map[string][]keyframe, len(src.keys))
	for prop, kfs := range src.keys {
		dup.keys[prop] = append([]keyframe(nil), kfs...)
	}
	return &dup
}

func (b *Backend) setCurrentTimeline(args map[string]any) (string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	if _, ok := p.timelines[name]; !ok {
		return "", bridge.NotFoundf("timeline %q not found", name)
	}
	p.current = name
	return fmt.Sprintf("Successfully switched to timeline '%s'", name), nil
}

func (b *Backend) listTimelines(args map[string]any) (string, error) {
	p := b.st.currentProject()
	return jsonResult(map[string]any{
		"timelines":        p.order,
		"current_timeline": p.current,
	})
}

func (b *Backend) getTimelineName(args map[string]any) (string, error) {
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	return tl.name, nil
}

func (b *Backend) setTimelineName(args map[string]any) (string, error) {
	oldName, err := reqString(args, "timeline_name")
	if err != nil {
		return "", err
	}
	newName, err := reqString(args, "new_name")
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	tl, ok := p.timelines[oldName]
	if !ok {
		return "", bridge.NotFoundf("timeline %q not found", oldName)
	}
	if newName == oldName {
		return fmt.Sprintf("Successfully renamed timeline to '%s'", newName), nil
	}
	if _, exists := p.timelines[newName]; exists {
		return "", bridge.InvalidParameterf("new_name", "timeline %q already exists", newName)
	}
	delete(p.timelines, oldName)
	tl.name = newName
	p.timelines[newName] = tl
	for i, n := range p.order {
		if n == oldName {
			p.order[i] = newName
			break
		}
	}
	if p.current == oldName {
		p.current = newName
	}
	return fmt.Sprintf("Successfully renamed timeline to '%s'", newName), nil
}

func (b *Backend) getTimelineFrames(args map[string]any) (string, error) {
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	end := 0
	for _, id := range tl.itemOrder {
		if it := tl.items[id]; it.end > end {
			end = it.end
		}
	}
	return jsonResult(map[string]any{
		"timeline_name": tl.name,
		"start_frame":   0,
		"end_frame":     end,
		"frame_rate":    tl.frameRate,
	})
}

func (b *Backend) setTimelineFormat(args map[string]any) (string, error) {
	width, err := reqInt(args, "width")
	if err != nil {
		return "", err
	}
	height, err := reqInt(args, "height")
	if err != nil {
		return "", err
	}
	rate, err := reqNumber(args, "frame_rate")
	if err != nil {
		return "", err
	}
	if width < 1 {
		return "", bridge.InvalidParameterf("width", "must be at least 1")
	}
	if height < 1 {
		return "", bridge.InvalidParameterf("height", "must be at least 1")
	}
	if rate <= 0 {
		return "", bridge.InvalidParameterf("frame_rate", "must be greater than 0")
	}
	tl, err := b.st.currentTimeline()
	if err != nil {
		return "", err
	}
	tl.width = width
	tl.height = height
	tl.frameRate = strconv.FormatFloat(rate, 'f', -1, 64)
	tl.interlaced = boolOr(args, "interlaced", false)
	return fmt.Sprintf("Successfully set timeline format to %dx%d at %s fps", width, height, tl.frameRate), nil
}

func (b *Backend) setTimelineTimecode(args map[string]any) (string, error) {
	tc, err := reqString(args, "timecode")
	if err != nil {
		return "", err
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	tl.startTimecode = tc
	return fmt.Sprintf("Successfully set timeline '%s' start timecode to %s", tl.name, tc), nil
}

func (b *Backend) getTimelineTrackCount(args map[string]any) (string, error) {
	trackType, err := reqString(args, "track_type")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("track_type", trackType, bridge.TrackTypes); err != nil {
		return "", err
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	count := 0
	switch trackType {
	case "video":
		count = tl.videoTracks
	case "audio":
		count = tl.audioTracks
	case "subtitle":
		count = tl.subtitleTracks
	}
	return jsonResult(map[string]any{
		"timeline_name": tl.name,
		"track_type":    trackType,
		"track_count":   count,
	})
}

func (b *Backend) getTimelineTracks(args map[string]any) (string, error) {
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	return jsonResult(map[string]any{
		"timeline_name":   tl.name,
		"video_tracks":    tl.videoTracks,
		"audio_tracks":    tl.audioTracks,
		"subtitle_tracks": tl.subtitleTracks,
	})
}

func (b *Backend) getTimelineItemsInTrack(args map[string]any) (string, error) {
	trackType, err := reqString(args, "track_type")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("track_type", trackType, bridge.TrackTypes); err != nil {
		return "", err
	}
	idx, err := reqInt(args, "track_index")
	if err != nil {
		return "", err
	}
	if idx < 1 {
		return "", bridge.InvalidParameterf("track_index", "must be at least 1")
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	items := make([]map[string]any, 0)
	for _, id := range tl.itemOrder {
		it := tl.items[id]
		if it.trackType != trackType || it.trackIdx != idx {
			continue
		}
		items = append(items, map[string]any{
			"id":          it.id,
			"clip_name":   it.clipName,
			"start_frame": it.start,
			"end_frame":   it.end,
		})
	}
	return jsonResult(map[string]any{
		"timeline_name": tl.name,
		"track_type":    trackType,
		"track_index":   idx,
		"items":         items,
	})
}

// addMarkerAt places a marker, enforcing the one-marker-per-frame rule.
func addMarkerAt(tl *timeline, mk *marker) error {
	if err := bridge.CheckEnum("color", mk.color, bridge.MarkerColors); err != nil {
		return err
	}
	if mk.frame < 0 {
		return bridge.InvalidParameterf("frame", "must be at least 0")
	}
	if mk.duration < 1 {
		return bridge.InvalidParameterf("duration", "must be at least 1")
	}
	if _, occupied := tl.markers[mk.frame]; occupied {
		return bridge.InvalidParameterf("frame", "a marker already exists at frame %d", mk.frame)
	}
	tl.markers[mk.frame] = mk
	return nil
}

func (b *Backend) addMarker(args map[string]any) (string, error) {
	tl, err := b.st.currentTimeline()
	if err != nil {
		return "", err
	}
	frame := 0
	if f, ok := optInt(args, "frame"); ok {
		frame = f
	}
	mk := &marker{
		frame:    frame,
		color:    strOr(args, "color", "Blue"),
		note:     strOr(args, "note", ""),
		duration: 1,
	}
	if err := addMarkerAt(tl, mk); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully added %s marker at frame %d", mk.color, mk.frame), nil
}

func (b *Backend) addTimelineMarker(args map[string]any) (string, error) {
	frame, err := reqInt(args, "frame_id")
	if err != nil {
		return "", err
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	mk := &marker{
		frame:      frame,
		color:      strOr(args, "color", "Blue"),
		name:       strOr(args, "name", ""),
		note:       strOr(args, "note", ""),
		duration:   numOr(args, "duration", 1),
		customData: strOr(args, "custom_data", ""),
	}
	if err := addMarkerAt(tl, mk); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully added %s marker at frame %d on timeline '%s'", mk.color, mk.frame, tl.name), nil
}

func markerList(markers map[int]*marker) []map[string]any {
	frames := make([]int, 0, len(markers))
	for f := range markers {
		frames = append(frames, f)
	}
	sort.Ints(frames)
	out := make([]map[string]any, 0, len(frames))
	for _, f := range frames {
		mk := markers[f]
		out = append(out, map[string]any{
			"frame":       mk.frame,
			"color":       mk.color,
			"name":        mk.name,
			"note":        mk.note,
			"duration":    mk.duration,
			"custom_data": mk.customData,
		})
	}
	return out
}

func (b *Backend) getTimelineMarkers(args map[string]any) (string, error) {
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	return jsonResult(map[string]any{
		"timeline_name": tl.name,
		"markers":       markerList(tl.markers),
	})
}

// deleteMarkersBy removes markers by frame, color, or custom data. Frame
// deletion of an absent marker is a no-op; the other selectors report how
// many markers matched.
func deleteMarkersBy(markers map[int]*marker, args map[string]any) (string, error) {
	if frame, ok := optInt(args, "frame_num"); ok {
		delete(markers, frame)
		return fmt.Sprintf("Successfully deleted marker at frame %d", frame), nil
	}
	if color, ok := optString(args, "color"); ok {
		if err := bridge.CheckEnum("color", color, bridge.MarkerColors); err != nil {
			return "", err
		}
		n := 0
		for f, mk := range markers {
			if mk.color == color {
				delete(markers, f)
				n++
			}
		}
		return fmt.Sprintf("Successfully deleted %d %s marker(s)", n, color), nil
	}
	if data, ok := optString(args, "custom_data"); ok {
		n := 0
		for f, mk := range markers {
			if mk.customData == data {
				delete(markers, f)
				n++
			}
		}
		return fmt.Sprintf("Successfully deleted %d marker(s) with matching custom data", n), nil
	}
	return "", bridge.InvalidParameterf("frame_num", "one of frame_num, color, or custom_data is required")
}

func (b *Backend) deleteTimelineMarker(args map[string]any) (string, error) {
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	return deleteMarkersBy(tl.markers, args)
}

func (b *Backend) exportTimeline(args map[string]any) (string, error) {
	fileName, err := reqString(args, "file_name")
	if err != nil {
		return "", err
	}
	exportType, err := reqString(args, "export_type")
	if err != nil {
		return "", err
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully exported timeline '%s' as %s to '%s'", tl.name, exportType, fileName), nil
}

// insertClip backs the generator and title insertions. The inserted item
// lands at the end of video track 1.
func (b *Backend) insertClip(tl *timeline, clipName string) *item {
	end := 0
	for _, id := range tl.itemOrder {
		if it := tl.items[id]; it.trackType == "video" && it.trackIdx == 1 && it.end > end {
			end = it.end
		}
	}
	it := newItem(b.st.nextItemID())
	it.clipName = clipName
	it.trackType = "video"
	it.trackIdx = 1
	it.start = end
	it.end = end + 120
	tl.items[it.id] = it
	tl.itemOrder = append(tl.itemOrder, it.id)
	return it
}

func (b *Backend) insertGenerator(args map[string]any) (string, error) {
	name, err := reqString(args, "generator_name")
	if err != nil {
		return "", err
	}
	kind := strOr(args, "generator_type", "standard")
	if err := bridge.CheckEnum("generator_type", kind, []string{"standard", "fusion", "ofx"}); err != nil {
		return "", err
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	it := b.insertClip(tl, name)
	return fmt.Sprintf("Successfully inserted %s generator '%s' as %s", kind, name, it.id), nil
}

func (b *Backend) insertTitle(args map[string]any) (string, error) {
	name, err := reqString(args, "title_name")
	if err != nil {
		return "", err
	}
	kind := strOr(args, "title_type", "standard")
	if err := bridge.CheckEnum("title_type", kind, []string{"standard", "fusion"}); err != nil {
		return "", err
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	it := b.insertClip(tl, name)
	return fmt.Sprintf("Successfully inserted %s title '%s' as %s", kind, name, it.id), nil
}
