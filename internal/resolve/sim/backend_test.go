package sim_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
	"github.com/editkit/resolve-mcp/internal/resolve/sim"
)

func newBackend(t *testing.T) *sim.Backend {
	t.Helper()
	b := sim.New()
	if err := b.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return b
}

func call(t *testing.T, b *sim.Backend, tool string, args map[string]any) string {
	t.Helper()
	out, err := b.Call(context.Background(), tool, args)
	if err != nil {
		t.Fatalf("Call(%s): %v", tool, err)
	}
	return out
}

func callErr(t *testing.T, b *sim.Backend, tool string, args map[string]any) error {
	t.Helper()
	_, err := b.Call(context.Background(), tool, args)
	if err == nil {
		t.Fatalf("Call(%s): expected an error", tool)
	}
	return err
}

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return m
}

func TestUninitializedBackendRejectsCalls(t *testing.T) {
	b := sim.New()
	_, err := b.Call(context.Background(), "get_project_name", nil)
	if bridge.KindOf(err) != bridge.KindNotRunning {
		t.Fatalf("kind = %v, want NotRunning", bridge.KindOf(err))
	}
	if b.Connected() {
		t.Fatal("Connected() = true before Initialize")
	}
}

func TestSeededDefaults(t *testing.T) {
	b := newBackend(t)
	if got := call(t, b, "get_project_name", nil); got != "Untitled Project" {
		t.Fatalf("project name = %q", got)
	}
	if got := call(t, b, "get_timeline_name", nil); got != "Timeline 1" {
		t.Fatalf("timeline name = %q", got)
	}
	tracks := decode(t, call(t, b, "get_timeline_tracks", nil))
	if tracks["video_tracks"].(float64) != 1 || tracks["audio_tracks"].(float64) != 1 {
		t.Fatalf("track layout = %v", tracks)
	}
}

func TestCreateTimelineAppearsInList(t *testing.T) {
	b := newBackend(t)
	call(t, b, "create_timeline", map[string]any{"name": "T"})
	out := call(t, b, "list_timelines_tool", nil)
	if !strings.Contains(out, `"T"`) {
		t.Fatalf("list_timelines_tool = %q, want it to mention T", out)
	}
}

func TestMarkerRoundTrip(t *testing.T) {
	b := newBackend(t)
	call(t, b, "add_marker", map[string]any{"frame": 120, "color": "Green", "note": "check this"})
	out := call(t, b, "get_timeline_markers", nil)
	if !strings.Contains(out, `"frame":120`) || !strings.Contains(out, `"Green"`) {
		t.Fatalf("markers = %q, want frame 120 and Green", out)
	}
}

func TestMarkerFrameCollision(t *testing.T) {
	b := newBackend(t)
	call(t, b, "add_marker", map[string]any{"frame": 50})
	err := callErr(t, b, "add_marker", map[string]any{"frame": 50, "color": "Red"})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("error = %q, want a collision message", err)
	}
}

func TestKeyframeLifecycle(t *testing.T) {
	b := newBackend(t)
	call(t, b, "add_keyframe", map[string]any{
		"timeline_item_id": "item_1", "property_name": "ZoomX", "frame": 20, "value": 1.5,
	})
	call(t, b, "add_keyframe", map[string]any{
		"timeline_item_id": "item_1", "property_name": "ZoomX", "frame": 10, "value": 1.0,
	})

	out := decode(t, call(t, b, "get_keyframes", map[string]any{
		"timeline_item_id": "item_1", "property_name": "ZoomX",
	}))
	kfs := out["keyframes"].([]any)
	if len(kfs) != 2 {
		t.Fatalf("keyframes = %v, want 2", kfs)
	}
	first := kfs[0].(map[string]any)
	second := kfs[1].(map[string]any)
	if first["frame"].(float64) != 10 || second["frame"].(float64) != 20 {
		t.Fatalf("keyframes out of frame order: %v", kfs)
	}

	err := callErr(t, b, "add_keyframe", map[string]any{
		"timeline_item_id": "item_1", "property_name": "ZoomX", "frame": 10, "value": 2.0,
	})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("error = %q, want a collision message", err)
	}
}

func TestModifyKeyframeRelocationCollision(t *testing.T) {
	b := newBackend(t)
	for _, frame := range []int{10, 20} {
		call(t, b, "add_keyframe", map[string]any{
			"timeline_item_id": "item_1", "property_name": "Pan", "frame": frame, "value": 0.0,
		})
	}
	err := callErr(t, b, "modify_keyframe", map[string]any{
		"timeline_item_id": "item_1", "property_name": "Pan", "frame": 10, "new_frame": 20,
	})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
}

func TestDeleteKeyframeIsIdempotent(t *testing.T) {
	b := newBackend(t)
	args := map[string]any{"timeline_item_id": "item_1", "property_name": "Opacity", "frame": 30}
	if _, err := b.Call(context.Background(), "delete_keyframe", args); err != nil {
		t.Fatalf("deleting an absent keyframe should succeed: %v", err)
	}
	call(t, b, "add_keyframe", map[string]any{
		"timeline_item_id": "item_1", "property_name": "Opacity", "frame": 30, "value": 0.5,
	})
	call(t, b, "delete_keyframe", args)
	out := decode(t, call(t, b, "get_keyframes", map[string]any{
		"timeline_item_id": "item_1", "property_name": "Opacity",
	}))
	if kfs := out["keyframes"].([]any); len(kfs) != 0 {
		t.Fatalf("keyframes = %v, want none", kfs)
	}
}

func TestCropRangeRejected(t *testing.T) {
	b := newBackend(t)
	err := callErr(t, b, "set_timeline_item_crop", map[string]any{
		"timeline_item_id": "item_1", "crop_type": "Left", "crop_value": 2.0,
	})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
	if !strings.Contains(err.Error(), "crop_value") {
		t.Fatalf("error = %q, want it to name crop_value", err)
	}
}

func TestItemVersionLifecycle(t *testing.T) {
	b := newBackend(t)
	out := call(t, b, "version", map[string]any{
		"timeline_item_id": "item_1", "version_name": "v1",
	})
	if !strings.Contains(out, "added") {
		t.Fatalf("first call = %q, want an add", out)
	}
	out = call(t, b, "version", map[string]any{
		"timeline_item_id": "item_1", "version_name": "v1",
	})
	if !strings.Contains(out, "loaded") {
		t.Fatalf("second call = %q, want a load", out)
	}
	out = call(t, b, "version", map[string]any{
		"timeline_item_id": "item_1", "version_name": "v1", "new_version_name": "graded",
	})
	if !strings.Contains(out, "renamed") {
		t.Fatalf("rename call = %q", out)
	}
	err := callErr(t, b, "version", map[string]any{
		"timeline_item_id": "item_1", "version_name": "v1", "new_version_name": "again",
	})
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("kind = %v, want NotFound after rename", bridge.KindOf(err))
	}
}

func TestRetimeSpeedRange(t *testing.T) {
	b := newBackend(t)
	err := callErr(t, b, "set_timeline_item_retime", map[string]any{
		"timeline_item_id": "item_1", "speed": 12.0,
	})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
	if !strings.Contains(err.Error(), "speed") {
		t.Fatalf("error = %q, want it to name speed", err)
	}
	call(t, b, "set_timeline_item_retime", map[string]any{
		"timeline_item_id": "item_1", "speed": 2.0,
	})
	props := decode(t, call(t, b, "get_timeline_item_properties", map[string]any{
		"timeline_item_id": "item_1",
	}))
	retime, ok := props["retime"].(map[string]any)
	if !ok || retime["speed"] != 2.0 {
		t.Fatalf("retime = %v, want speed 2", props["retime"])
	}
}

func TestUnknownToolIsNotFound(t *testing.T) {
	b := newBackend(t)
	err := callErr(t, b, "does_not_exist", nil)
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("kind = %v, want NotFound", bridge.KindOf(err))
	}
}

func TestRenderQueueLifecycle(t *testing.T) {
	b := newBackend(t)
	for i := 0; i < 3; i++ {
		call(t, b, "add_to_render_queue", map[string]any{"preset_name": "H.264 1080p"})
	}
	call(t, b, "start_render", nil)
	out := decode(t, call(t, b, "get_render_status", nil))
	jobs := out["jobs"].([]any)
	if len(jobs) != 3 {
		t.Fatalf("jobs = %v, want 3", jobs)
	}
	for _, j := range jobs {
		job := j.(map[string]any)
		if job["status"] != "Completed" || job["progress"].(float64) != 100 {
			t.Fatalf("job = %v, want Completed at 100", job)
		}
	}
	call(t, b, "clear_render_queue", nil)
	out = decode(t, call(t, b, "get_render_status", nil))
	if jobs := out["jobs"].([]any); len(jobs) != 0 {
		t.Fatalf("jobs after clear = %v, want none", jobs)
	}
}

func TestRenderUnknownPreset(t *testing.T) {
	b := newBackend(t)
	err := callErr(t, b, "add_to_render_queue", map[string]any{"preset_name": "No Such Preset"})
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("kind = %v, want NotFound", bridge.KindOf(err))
	}
}

func TestCreateRenderPreset(t *testing.T) {
	b := newBackend(t)
	call(t, b, "create_render_preset", map[string]any{
		"preset_name": "Review", "format": "mp4", "codec": "H264",
		"resolution_width": 1280, "resolution_height": 720,
		"frame_rate": 24.0, "quality": 60,
	})
	call(t, b, "add_to_render_queue", map[string]any{"preset_name": "Review"})
	err := callErr(t, b, "create_render_preset", map[string]any{
		"preset_name": "Review", "format": "mp4", "codec": "H264",
		"resolution_width": 1280, "resolution_height": 720,
		"frame_rate": 24.0, "quality": 60,
	})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
}

func TestDeleteLastProjectReseedsDefault(t *testing.T) {
	b := newBackend(t)
	call(t, b, "delete_project", map[string]any{"name": "Untitled Project"})
	if got := call(t, b, "get_project_name", nil); got != "Untitled Project" {
		t.Fatalf("project after reseed = %q", got)
	}
	if got := call(t, b, "get_timeline_name", nil); got != "Timeline 1" {
		t.Fatalf("timeline after reseed = %q", got)
	}
}

func TestProjectLifecycle(t *testing.T) {
	b := newBackend(t)
	call(t, b, "create_project", map[string]any{"name": "Feature"})
	if got := call(t, b, "get_project_name", nil); got != "Feature" {
		t.Fatalf("current project = %q, want Feature", got)
	}
	err := callErr(t, b, "create_project", map[string]any{"name": "Feature"})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("duplicate create kind = %v", bridge.KindOf(err))
	}
	call(t, b, "open_project", map[string]any{"name": "Untitled Project"})
	if got := call(t, b, "get_project_name", nil); got != "Untitled Project" {
		t.Fatalf("current project = %q", got)
	}
	err = callErr(t, b, "open_project", map[string]any{"name": "Missing"})
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("open missing kind = %v", bridge.KindOf(err))
	}
}

func TestTimelineRenameTracksCurrent(t *testing.T) {
	b := newBackend(t)
	call(t, b, "set_timeline_name", map[string]any{"timeline_name": "Timeline 1", "new_name": "Cut A"})
	if got := call(t, b, "get_timeline_name", nil); got != "Cut A" {
		t.Fatalf("current timeline = %q, want Cut A", got)
	}
}

func TestDeleteTimelineCascades(t *testing.T) {
	b := newBackend(t)
	call(t, b, "add_marker", map[string]any{"frame": 10})
	call(t, b, "add_keyframe", map[string]any{
		"timeline_item_id": "item_1", "property_name": "Pan", "frame": 5, "value": 0.2,
	})
	call(t, b, "delete_timeline", map[string]any{"name": "Timeline 1"})
	err := callErr(t, b, "get_timeline_markers", nil)
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("kind = %v, want NotFound with no current timeline", bridge.KindOf(err))
	}
	count := decode(t, call(t, b, "get_project_timeline_count", nil))
	if count["timeline_count"].(float64) != 0 {
		t.Fatalf("timeline count = %v, want 0", count)
	}
}

func TestColorWheelClamping(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.5, "0.5"},
		{7.5, "1"},
		{-3.0, "-1"},
	}
	for _, tt := range tests {
		b := newBackend(t)
		out := call(t, b, "set_color_wheel_param", map[string]any{
			"wheel": "lift", "param": "red", "value": tt.value,
		})
		if !strings.Contains(out, "to "+tt.want+" ") {
			t.Errorf("value %g: result %q, want clamped to %s", tt.value, out, tt.want)
		}
	}
}

func TestCompositeValidatesBeforeMutating(t *testing.T) {
	b := newBackend(t)
	call(t, b, "set_timeline_item_composite", map[string]any{
		"timeline_item_id": "item_1", "composite_mode": "Multiply", "opacity": 0.25,
	})
	// A request with a bad opacity must not apply its valid mode either.
	err := callErr(t, b, "set_timeline_item_composite", map[string]any{
		"timeline_item_id": "item_1", "composite_mode": "Screen", "opacity": 4.0,
	})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
	props := decode(t, call(t, b, "get_timeline_item_properties", map[string]any{
		"timeline_item_id": "item_1",
	}))
	composite := props["composite"].(map[string]any)
	if composite["mode"] != "Multiply" || composite["opacity"].(float64) != 0.25 {
		t.Fatalf("composite = %v, want Multiply at 0.25 after failed call", composite)
	}
}

func TestResetItemPropertiesKeepsKeyframes(t *testing.T) {
	b := newBackend(t)
	call(t, b, "set_timeline_item_retime", map[string]any{
		"timeline_item_id": "item_1", "speed": 2.0, "process": "FrameBlend",
	})
	call(t, b, "add_keyframe", map[string]any{
		"timeline_item_id": "item_1", "property_name": "Speed", "frame": 0, "value": 2.0,
	})
	call(t, b, "reset_timeline_item_properties", map[string]any{
		"timeline_item_id": "item_1", "property_type": "retime",
	})
	props := decode(t, call(t, b, "get_timeline_item_properties", map[string]any{
		"timeline_item_id": "item_1",
	}))
	retime := props["retime"].(map[string]any)
	if retime["speed"].(float64) != 1 || retime["process"] != "OpticalFlow" {
		t.Fatalf("retime after reset = %v", retime)
	}
	out := decode(t, call(t, b, "get_keyframes", map[string]any{
		"timeline_item_id": "item_1", "property_name": "Speed",
	}))
	if kfs := out["keyframes"].([]any); len(kfs) != 1 {
		t.Fatalf("keyframes after reset = %v, want 1", kfs)
	}
}

func TestMediaPoolRoundTrip(t *testing.T) {
	b := newBackend(t)
	call(t, b, "import_media", map[string]any{"file_path": "/footage/interview.mov"})
	call(t, b, "create_bin", map[string]any{"name": "Interviews"})
	call(t, b, "move_media_to_bin", map[string]any{"clip_name": "interview.mov", "bin_name": "Interviews"})
	out := call(t, b, "add_clip_to_timeline", map[string]any{"clip_name": "interview.mov"})
	if !strings.Contains(out, "item_") {
		t.Fatalf("add_clip_to_timeline = %q, want an item id", out)
	}
	err := callErr(t, b, "move_media_to_bin", map[string]any{"clip_name": "missing.mov", "bin_name": "Interviews"})
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("kind = %v, want NotFound", bridge.KindOf(err))
	}
}

func TestItemIDsAreNeverReused(t *testing.T) {
	b := newBackend(t)
	call(t, b, "import_media", map[string]any{"file_path": "/footage/a.mov"})
	first := call(t, b, "add_clip_to_timeline", map[string]any{"clip_name": "a.mov"})
	if !strings.Contains(first, "item_1") {
		t.Fatalf("first item = %q, want item_1", first)
	}
	call(t, b, "delete_timeline", map[string]any{"name": "Timeline 1"})
	call(t, b, "create_timeline", map[string]any{"name": "Timeline 2"})
	call(t, b, "set_current_timeline", map[string]any{"name": "Timeline 2"})
	second := call(t, b, "add_clip_to_timeline", map[string]any{"clip_name": "a.mov"})
	if strings.Contains(second, "item_1\"") || strings.Contains(second, "as item_1") {
		t.Fatalf("second item reused item_1: %q", second)
	}
	if !strings.Contains(second, "item_2") {
		t.Fatalf("second item = %q, want item_2", second)
	}
}

func TestQuitAppEndsSession(t *testing.T) {
	b := newBackend(t)
	call(t, b, "quit_app", nil)
	_, err := b.Call(context.Background(), "get_project_name", nil)
	if bridge.KindOf(err) != bridge.KindNotRunning {
		t.Fatalf("kind = %v, want NotRunning after quit", bridge.KindOf(err))
	}
}

func TestSwitchPage(t *testing.T) {
	b := newBackend(t)
	call(t, b, "switch_page", map[string]any{"page": "color"})
	err := callErr(t, b, "switch_page", map[string]any{"page": "render"})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
}

func TestSwitchPageRepeatIsIdempotent(t *testing.T) {
	b := newBackend(t)
	first := call(t, b, "switch_page", map[string]any{"page": "edit"})
	second := call(t, b, "switch_page", map[string]any{"page": "edit"})
	if first != second {
		t.Fatalf("repeated switch_page diverged: %q vs %q", first, second)
	}
	state := decode(t, call(t, b, "inspect_custom_object", map[string]any{"object_path": "resolve"}))
	if state["current_page"] != "edit" {
		t.Fatalf("current_page = %v, want edit", state["current_page"])
	}
}

func TestLayoutPresets(t *testing.T) {
	b := newBackend(t)
	call(t, b, "save_layout_preset", map[string]any{"preset_name": "Grading"})
	call(t, b, "load_layout_preset", map[string]any{"preset_name": "Grading"})
	call(t, b, "delete_layout_preset", map[string]any{"preset_name": "Grading"})
	err := callErr(t, b, "load_layout_preset", map[string]any{"preset_name": "Grading"})
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("kind = %v, want NotFound", bridge.KindOf(err))
	}
}

func TestLayoutPresetRoundTripRestoresPage(t *testing.T) {
	b := newBackend(t)
	call(t, b, "switch_page", map[string]any{"page": "color"})
	call(t, b, "save_layout_preset", map[string]any{"preset_name": "Grading"})

	// An immediate load leaves the recorded page as it was.
	call(t, b, "load_layout_preset", map[string]any{"preset_name": "Grading"})
	state := decode(t, call(t, b, "inspect_custom_object", map[string]any{"object_path": "resolve"}))
	if state["current_page"] != "color" {
		t.Fatalf("current_page = %v after load on same page, want color", state["current_page"])
	}

	// Loading from another page restores the recorded one.
	call(t, b, "switch_page", map[string]any{"page": "edit"})
	call(t, b, "load_layout_preset", map[string]any{"preset_name": "Grading"})
	state = decode(t, call(t, b, "inspect_custom_object", map[string]any{"object_path": "resolve"}))
	if state["current_page"] != "color" {
		t.Fatalf("current_page = %v after round trip, want color", state["current_page"])
	}
}
