package sim

import (
	"fmt"
	"path/filepath"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func (b *Backend) registerMedia(m map[string]handler) {
	m["import_media"] = b.importMedia
	m["delete_media"] = b.deleteMedia
	m["create_bin"] = b.createBin
	m["move_media_to_bin"] = b.moveMediaToBin
	m["export_folder"] = b.exportFolder
	m["create_sub_clip"] = b.createSubClip
	m["create_compound_clip"] = b.createCompoundClip
	m["create_fusion_clip"] = b.createFusionClip
	m["add_clip_to_timeline"] = b.addClipToTimeline
	m["auto_sync_audio"] = b.autoSyncAudio
	m["unlink_clips"] = b.unlinkClips
	m["relink_clips"] = b.relinkClips
	m["replace_clip"] = b.replaceClip
	m["link_proxy_media"] = b.linkProxyMedia
	m["unlink_proxy_media"] = b.unlinkProxyMedia
	m["set_proxy_mode"] = b.setProxyMode
	m["set_proxy_quality"] = b.setProxyQuality
	m["generate_optimized_media"] = b.generateOptimizedMedia
	m["delete_optimized_media"] = b.deleteOptimizedMedia
	m["set_optimized_media_mode"] = b.setOptimizedMediaMode
	m["transcribe_audio"] = b.transcribeAudio
	m["clear_transcription"] = b.clearTranscription
	m["transcribe_folder_audio"] = b.transcribeFolderAudio
	m["clear_folder_transcription"] = b.clearFolderTranscription
}

func (b *Backend) pool() *mediaPool {
	return b.st.currentProject().pool
}

func (b *Backend) clipByName(args map[string]any, key string) (*clip, error) {
	name, err := reqString(args, key)
	if err != nil {
		return nil, err
	}
	c, ok := b.pool().clips[name]
	if !ok {
		return nil, bridge.NotFoundf("clip %q not found in media pool", name)
	}
	return c, nil
}

func (b *Backend) binByName(args map[string]any, key string) (*bin, error) {
	name, err := reqString(args, key)
	if err != nil {
		return nil, err
	}
	bn, ok := b.pool().bins[name]
	if !ok {
		return nil, bridge.NotFoundf("bin %q not found in media pool", name)
	}
	return bn, nil
}

// importMedia registers a clip named after the file's base name. Importing
// the same file twice is rejected rather than silently duplicated.
func (b *Backend) importMedia(args map[string]any) (string, error) {
	path, err := reqString(args, "file_path")
	if err != nil {
		return "", err
	}
	name := filepath.Base(path)
	pool := b.pool()
	if _, exists := pool.clips[name]; exists {
		return "", bridge.InvalidParameterf("file_path", "clip %q already exists in media pool", name)
	}
	pool.clips[name] = &clip{
		name:     name,
		filePath: path,
		bin:      masterBin,
		linked:   true,
	}
	return fmt.Sprintf("Successfully imported '%s' into the media pool", name), nil
}

func (b *Backend) deleteMedia(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	pool := b.pool()
	delete(pool.clips, c.name)
	// Subclips cut from the deleted clip lose their parent.
	for _, other := range pool.clips {
		if other.subclipOf == c.name {
			other.subclipOf = ""
		}
	}
	return fmt.Sprintf("Successfully deleted clip '%s' from the media pool", c.name), nil
}

func (b *Backend) createBin(args map[string]any) (string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return "", err
	}
	pool := b.pool()
	if _, exists := pool.bins[name]; exists {
		return "", bridge.InvalidParameterf("name", "bin %q already exists", name)
	}
	pool.bins[name] = &bin{name: name, parent: masterBin}
	return fmt.Sprintf("Successfully created bin '%s'", name), nil
}

func (b *Backend) moveMediaToBin(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	bn, err := b.binByName(args, "bin_name")
	if err != nil {
		return "", err
	}
	c.bin = bn.name
	return fmt.Sprintf("Successfully moved clip '%s' to bin '%s'", c.name, bn.name), nil
}

func (b *Backend) exportFolder(args map[string]any) (string, error) {
	bn, err := b.binByName(args, "folder_name")
	if err != nil {
		return "", err
	}
	path, err := reqString(args, "export_path")
	if err != nil {
		return "", err
	}
	kind := strOr(args, "export_type", "DRB")
	if err := bridge.CheckEnum("export_type", kind, []string{"DRB"}); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully exported folder '%s' as %s to '%s'", bn.name, kind, path), nil
}

func (b *Backend) createSubClip(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	start, err := reqInt(args, "start_frame")
	if err != nil {
		return "", err
	}
	end, err := reqInt(args, "end_frame")
	if err != nil {
		return "", err
	}
	if start < 0 {
		return "", bridge.InvalidParameterf("start_frame", "must be at least 0")
	}
	if end <= start {
		return "", bridge.InvalidParameterf("end_frame", "must be after start_frame")
	}
	name := strOr(args, "sub_clip_name", c.name+" subclip")
	pool := b.pool()
	if _, exists := pool.clips[name]; exists {
		return "", bridge.InvalidParameterf("sub_clip_name", "clip %q already exists in media pool", name)
	}
	binName := c.bin
	if requested, ok := optString(args, "bin_name"); ok {
		target, ok := pool.bins[requested]
		if !ok {
			return "", bridge.NotFoundf("bin %q not found in media pool", requested)
		}
		binName = target.name
	}
	pool.clips[name] = &clip{
		name:      name,
		filePath:  c.filePath,
		bin:       binName,
		linked:    c.linked,
		subclipOf: c.name,
		subStart:  start,
		subEnd:    end,
	}
	return fmt.Sprintf("Successfully created subclip '%s' from '%s' [%d-%d]", name, c.name, start, end), nil
}

// combineItems backs compound and Fusion clip creation: the named items are
// replaced on their timeline by a single new item.
func (b *Backend) combineItems(args map[string]any, clipName string) (*item, error) {
	ids, err := stringSlice(args, "timeline_item_ids")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, bridge.InvalidParameterf("timeline_item_ids", "at least one item is required")
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return nil, err
	}
	start, end := -1, 0
	for _, id := range ids {
		it, ok := tl.items[id]
		if !ok {
			return nil, bridge.NotFoundf("timeline item %q not found on timeline %q", id, tl.name)
		}
		if start == -1 || it.start < start {
			start = it.start
		}
		if it.end > end {
			end = it.end
		}
	}
	for _, id := range ids {
		delete(tl.items, id)
		for i, n := range tl.itemOrder {
			if n == id {
				tl.itemOrder = append(tl.itemOrder[:i], tl.itemOrder[i+1:]...)
				break
			}
		}
	}
	combined := newItem(b.st.nextItemID())
	combined.clipName = clipName
	combined.trackType = "video"
	combined.trackIdx = 1
	combined.start = start
	combined.end = end
	tl.items[combined.id] = combined
	tl.itemOrder = append(tl.itemOrder, combined.id)
	return combined, nil
}

func (b *Backend) createCompoundClip(args map[string]any) (string, error) {
	name, err := reqString(args, "clip_name")
	if err != nil {
		return "", err
	}
	pool := b.pool()
	if _, exists := pool.clips[name]; exists {
		return "", bridge.InvalidParameterf("clip_name", "clip %q already exists in media pool", name)
	}
	combined, err := b.combineItems(args, name)
	if err != nil {
		return "", err
	}
	pool.clips[name] = &clip{name: name, bin: masterBin, linked: true}
	return fmt.Sprintf("Successfully created compound clip '%s' as %s", name, combined.id), nil
}

func (b *Backend) createFusionClip(args map[string]any) (string, error) {
	combined, err := b.combineItems(args, "Fusion Clip")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully created Fusion clip as %s", combined.id), nil
}

func (b *Backend) addClipToTimeline(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	tl, err := b.st.timelineByName(strOr(args, "timeline_name", ""))
	if err != nil {
		return "", err
	}
	it := b.insertClip(tl, c.name)
	return fmt.Sprintf("Successfully added clip '%s' to timeline '%s' as %s", c.name, tl.name, it.id), nil
}

func (b *Backend) autoSyncAudio(args map[string]any) (string, error) {
	names, err := stringSlice(args, "clip_names")
	if err != nil {
		return "", err
	}
	if len(names) < 2 {
		return "", bridge.InvalidParameterf("clip_names", "at least two clips are required")
	}
	method := strOr(args, "sync_method", "waveform")
	if err := bridge.CheckEnum("sync_method", method, []string{"waveform", "timecode"}); err != nil {
		return "", err
	}
	pool := b.pool()
	for _, name := range names {
		if _, ok := pool.clips[name]; !ok {
			return "", bridge.NotFoundf("clip %q not found in media pool", name)
		}
	}
	if target, ok := optString(args, "target_bin"); ok {
		bn, ok := pool.bins[target]
		if !ok {
			return "", bridge.NotFoundf("bin %q not found in media pool", target)
		}
		for _, name := range names {
			pool.clips[name].bin = bn.name
		}
	}
	return fmt.Sprintf("Successfully synchronized %d clips by %s", len(names), method), nil
}

func (b *Backend) unlinkClips(args map[string]any) (string, error) {
	names, err := stringSlice(args, "clip_names")
	if err != nil {
		return "", err
	}
	pool := b.pool()
	for _, name := range names {
		if _, ok := pool.clips[name]; !ok {
			return "", bridge.NotFoundf("clip %q not found in media pool", name)
		}
	}
	for _, name := range names {
		pool.clips[name].linked = false
	}
	return fmt.Sprintf("Successfully unlinked %d clip(s)", len(names)), nil
}

func (b *Backend) relinkClips(args map[string]any) (string, error) {
	names, err := stringSlice(args, "clip_names")
	if err != nil {
		return "", err
	}
	pool := b.pool()
	for _, name := range names {
		if _, ok := pool.clips[name]; !ok {
			return "", bridge.NotFoundf("clip %q not found in media pool", name)
		}
	}
	if paths, perr := stringSlice(args, "media_paths"); perr == nil {
		if len(paths) != len(names) {
			return "", bridge.InvalidParameterf("media_paths", "expected %d path(s), got %d", len(names), len(paths))
		}
		for i, name := range names {
			c := pool.clips[name]
			c.filePath = paths[i]
			c.linked = true
		}
		return fmt.Sprintf("Successfully relinked %d clip(s) to explicit paths", len(names)), nil
	}
	folder, ok := optString(args, "folder_path")
	if !ok {
		return "", bridge.InvalidParameterf("media_paths", "either media_paths or folder_path is required")
	}
	for _, name := range names {
		c := pool.clips[name]
		c.filePath = filepath.Join(folder, filepath.Base(c.filePath))
		c.linked = true
	}
	return fmt.Sprintf("Successfully relinked %d clip(s) from folder '%s'", len(names), folder), nil
}

func (b *Backend) replaceClip(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	path, err := reqString(args, "replacement_path")
	if err != nil {
		return "", err
	}
	c.filePath = path
	c.linked = true
	return fmt.Sprintf("Successfully replaced clip '%s' with '%s'", c.name, path), nil
}

func (b *Backend) linkProxyMedia(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	path, err := reqString(args, "proxy_file_path")
	if err != nil {
		return "", err
	}
	c.proxyPath = path
	return fmt.Sprintf("Successfully linked proxy media to clip '%s'", c.name), nil
}

func (b *Backend) unlinkProxyMedia(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	c.proxyPath = ""
	return fmt.Sprintf("Successfully unlinked proxy media from clip '%s'", c.name), nil
}

func (b *Backend) setProxyMode(args map[string]any) (string, error) {
	mode, err := reqString(args, "mode")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("mode", mode, bridge.CacheModes); err != nil {
		return "", err
	}
	b.st.proxyMode = mode
	return fmt.Sprintf("Successfully set proxy mode to %s", mode), nil
}

func (b *Backend) setProxyQuality(args map[string]any) (string, error) {
	quality, err := reqString(args, "quality")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("quality", quality, bridge.ProxyQualities); err != nil {
		return "", err
	}
	b.st.proxyQuality = quality
	return fmt.Sprintf("Successfully set proxy quality to %s", quality), nil
}

// namedOrAllClips resolves the optional clip_names argument; absent means
// every clip in the pool.
func (b *Backend) namedOrAllClips(args map[string]any) ([]*clip, error) {
	pool := b.pool()
	if _, ok := args["clip_names"]; !ok {
		out := make([]*clip, 0, len(pool.clips))
		for _, c := range pool.clips {
			out = append(out, c)
		}
		return out, nil
	}
	names, err := stringSlice(args, "clip_names")
	if err != nil {
		return nil, err
	}
	out := make([]*clip, 0, len(names))
	for _, name := range names {
		c, ok := pool.clips[name]
		if !ok {
			return nil, bridge.NotFoundf("clip %q not found in media pool", name)
		}
		out = append(out, c)
	}
	return out, nil
}

func (b *Backend) generateOptimizedMedia(args map[string]any) (string, error) {
	clips, err := b.namedOrAllClips(args)
	if err != nil {
		return "", err
	}
	for _, c := range clips {
		c.optimized = true
	}
	return fmt.Sprintf("Successfully generated optimized media for %d clip(s)", len(clips)), nil
}

func (b *Backend) deleteOptimizedMedia(args map[string]any) (string, error) {
	clips, err := b.namedOrAllClips(args)
	if err != nil {
		return "", err
	}
	for _, c := range clips {
		c.optimized = false
	}
	return fmt.Sprintf("Successfully deleted optimized media for %d clip(s)", len(clips)), nil
}

func (b *Backend) setOptimizedMediaMode(args map[string]any) (string, error) {
	mode, err := reqString(args, "mode")
	if err != nil {
		return "", err
	}
	if err := bridge.CheckEnum("mode", mode, bridge.CacheModes); err != nil {
		return "", err
	}
	b.st.optimizedMode = mode
	return fmt.Sprintf("Successfully set optimized media mode to %s", mode), nil
}

func (b *Backend) transcribeAudio(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	lang := strOr(args, "language", "en-US")
	c.transcription = lang
	return fmt.Sprintf("Successfully transcribed audio of clip '%s' (%s)", c.name, lang), nil
}

func (b *Backend) clearTranscription(args map[string]any) (string, error) {
	c, err := b.clipByName(args, "clip_name")
	if err != nil {
		return "", err
	}
	c.transcription = ""
	return fmt.Sprintf("Successfully cleared transcription of clip '%s'", c.name), nil
}

func (b *Backend) folderClips(bn *bin) []*clip {
	out := make([]*clip, 0)
	for _, c := range b.pool().clips {
		if c.bin == bn.name {
			out = append(out, c)
		}
	}
	return out
}

func (b *Backend) transcribeFolderAudio(args map[string]any) (string, error) {
	bn, err := b.binByName(args, "folder_name")
	if err != nil {
		return "", err
	}
	lang := strOr(args, "language", "en-US")
	clips := b.folderClips(bn)
	for _, c := range clips {
		c.transcription = lang
	}
	return fmt.Sprintf("Successfully transcribed audio of %d clip(s) in folder '%s' (%s)", len(clips), bn.name, lang), nil
}

func (b *Backend) clearFolderTranscription(args map[string]any) (string, error) {
	bn, err := b.binByName(args, "folder_name")
	if err != nil {
		return "", err
	}
	clips := b.folderClips(bn)
	for _, c := range clips {
		c.transcription = ""
	}
	return fmt.Sprintf("Successfully cleared transcription of %d clip(s) in folder '%s'", len(clips), bn.name), nil
}
