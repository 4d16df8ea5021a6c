package sim

import (
	"fmt"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func (b *Backend) registerRender(m map[string]handler) {
	m["add_to_render_queue"] = b.addToRenderQueue
	m["start_render"] = b.startRender
	m["clear_render_queue"] = b.clearRenderQueue
	m["get_render_status"] = b.getRenderStatus
	m["create_render_preset"] = b.createRenderPreset
}

func (b *Backend) addToRenderQueue(args map[string]any) (string, error) {
	preset, err := reqString(args, "preset_name")
	if err != nil {
		return "", err
	}
	if _, ok := b.st.renderPresets[preset]; !ok {
		return "", bridge.NotFoundf("render preset %q not found", preset)
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	p := b.st.currentProject()
	p.jobSeq++
	job := &renderJob{
		id:       p.jobSeq,
		preset:   preset,
		timeline: tl.name,
		inOut:    boolOr(args, "use_in_out_range", false),
		status:   "Queued",
	}
	p.queue = append(p.queue, job)
	return fmt.Sprintf("Successfully queued render job %d for timeline '%s' with preset '%s'", job.id, tl.name, preset), nil
}

// startRender runs the queue to completion. The simulation renders
// instantly, so every queued job finishes within the call.
func (b *Backend) startRender(args map[string]any) (string, error) {
	p := b.st.currentProject()
	n := 0
	for _, job := range p.queue {
		if job.status == "Queued" {
			job.status = "Completed"
			job.progress = 100
			n++
		}
	}
	if n == 0 {
		return "", bridge.NotFoundf("the render queue has no queued jobs")
	}
	return fmt.Sprintf("Successfully rendered %d job(s)", n), nil
}

func (b *Backend) clearRenderQueue(args map[string]any) (string, error) {
	p := b.st.currentProject()
	n := len(p.queue)
	p.queue = nil
	return fmt.Sprintf("Successfully cleared %d job(s) from the render queue", n), nil
}

func (b *Backend) getRenderStatus(args map[string]any) (string, error) {
	p := b.st.currentProject()
	jobs := make([]map[string]any, 0, len(p.queue))
	for _, job := range p.queue {
		jobs = append(jobs, map[string]any{
			"id":               job.id,
			"preset_name":      job.preset,
			"timeline_name":    job.timeline,
			"use_in_out_range": job.inOut,
			"status":           job.status,
			"progress":         job.progress,
		})
	}
	return jsonResult(map[string]any{"jobs": jobs})
}

func (b *Backend) createRenderPreset(args map[string]any) (string, error) {
	name, err := reqString(args, "preset_name")
	if err != nil {
		return "", err
	}
	if _, exists := b.st.renderPresets[name]; exists {
		return "", bridge.InvalidParameterf("preset_name", "render preset %q already exists", name)
	}
	format, err := reqString(args, "format")
	if err != nil {
		return "", err
	}
	codec, err := reqString(args, "codec")
	if err != nil {
		return "", err
	}
	width, err := reqInt(args, "resolution_width")
	if err != nil {
		return "", err
	}
	height, err := reqInt(args, "resolution_height")
	if err != nil {
		return "", err
	}
	if width < 1 {
		return "", bridge.InvalidParameterf("resolution_width", "must be at least 1")
	}
	if height < 1 {
		return "", bridge.InvalidParameterf("resolution_height", "must be at least 1")
	}
	rate, err := reqNumber(args, "frame_rate")
	if err != nil {
		return "", err
	}
	if rate <= 0 {
		return "", bridge.InvalidParameterf("frame_rate", "must be greater than 0")
	}
	quality, err := reqInt(args, "quality")
	if err != nil {
		return "", err
	}
	if quality < 1 || quality > 100 {
		return "", bridge.InvalidParameterf("quality", "must be between 1 and 100")
	}
	bitrate := 192000
	if v, ok := optInt(args, "audio_bitrate"); ok {
		if v < 1 {
			return "", bridge.InvalidParameterf("audio_bitrate", "must be at least 1")
		}
		bitrate = v
	}
	b.st.renderPresets[name] = &renderPreset{
		name:         name,
		format:       format,
		codec:        codec,
		width:        width,
		height:       height,
		frameRate:    rate,
		quality:      quality,
		audioCodec:   strOr(args, "audio_codec", "AAC"),
		audioBitrate: bitrate,
	}
	return fmt.Sprintf("Successfully created render preset '%s'", name), nil
}
