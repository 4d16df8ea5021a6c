package sim

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetCatalog []byte

type presetFile struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name         string  `yaml:"name"`
	Format       string  `yaml:"format"`
	Codec        string  `yaml:"codec"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FrameRate    float64 `yaml:"frame_rate"`
	Quality      int     `yaml:"quality"`
	AudioCodec   string  `yaml:"audio_codec"`
	AudioBitrate int     `yaml:"audio_bitrate"`
}

// builtinRenderPresets parses the embedded catalog. A parse failure means
// the binary shipped with a broken catalog, so it surfaces as an
// initialization error rather than a per-call one.
func builtinRenderPresets() (map[string]*renderPreset, error) {
	var file presetFile
	if err := yaml.Unmarshal(presetCatalog, &file); err != nil {
		return nil, fmt.Errorf("parse embedded render preset catalog: %w", err)
	}
	out := make(map[string]*renderPreset, len(file.Presets))
	for _, e := range file.Presets {
		out[e.Name] = &renderPreset{
			name:         e.Name,
			format:       e.Format,
			codec:        e.Codec,
			width:        e.Width,
			height:       e.Height,
			frameRate:    e.FrameRate,
			quality:      e.Quality,
			audioCodec:   e.AudioCodec,
			audioBitrate: e.AudioBitrate,
		}
	}
	return out, nil
}
