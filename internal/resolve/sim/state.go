// Package sim implements the simulation backend: an in-memory shadow of the
// host editor's state, mutated only by dispatched tool calls. It is the
// reference implementation of every tool's semantics; the live backend
// mirrors its validation so tests written here stay meaningful there.
package sim

import (
	"fmt"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

// Defaults seeded at initialization.
const (
	defaultProjectName  = "Untitled Project"
	defaultTimelineName = "Timeline 1"
	defaultWidth        = 1920
	defaultHeight       = 1080
	defaultFrameRate    = "24"
	defaultAlbum        = "DaVinci Resolve"
	masterBin           = "Master"
)

// state is the single owned state root. Access is serialized by the
// Backend's mutex; nothing here locks.
type state struct {
	projects map[string]*project
	order    []string // project creation order
	current  string   // current project name, always set

	page    string
	itemSeq int // monotonic TimelineItem id counter, never reused

	renderPresets map[string]*renderPreset
	layoutPresets map[string]string // preset name -> recorded layout

	cloudProjects map[string]*cloudProject // keyed by cloud id

	cacheMode     string
	cachePaths    map[string]string
	proxyMode     string
	proxyQuality  string
	optimizedMode string
}

type project struct {
	name       string
	timelines  map[string]*timeline
	order      []string // timeline creation order
	current    string   // current timeline name, or "" for none
	settings   map[string]any
	properties map[string]any
	pool       *mediaPool
	queue      []*renderJob
	jobSeq     int
	albums     map[string]map[string]*colorPreset // album -> preset name
	grades     map[string]*gradeState             // color-page grades by clip name
	stills     int                                // gallery stills grabbed
	saved      bool
}

type timeline struct {
	name           string
	frameRate      string
	width, height  int
	interlaced     bool
	startTimecode  string
	videoTracks    int
	audioTracks    int
	subtitleTracks int
	items          map[string]*item
	itemOrder      []string
	markers        map[int]*marker // keyed by frame, one per frame
}

type marker struct {
	frame      int
	color      string
	name       string
	note       string
	duration   float64
	customData string
}

type item struct {
	id        string
	clipName  string
	trackType string
	trackIdx  int
	start     int
	end       int

	transform map[string]float64 // keyed by transform property name
	crop      map[string]float64 // keyed by crop edge

	compositeMode string
	opacity       float64

	speed   float64
	process string

	stabEnabled  bool
	stabMethod   string
	stabStrength float64

	volume    float64
	pan       float64
	eqEnabled bool

	props     map[string]any // free-form set_timeline_item_property bag
	markers   map[int]*marker
	flags     []string
	clipColor string

	takes        []take
	selectedTake int // 1-based, 0 for none

	versions map[string]string // version name -> version type

	nodes []*colorNode

	kfAll    bool
	kfColor  bool
	kfSizing bool
	keys     map[string][]keyframe // property -> keyframes sorted by frame
}

type keyframe struct {
	frame  int
	value  float64
	interp string
}

type take struct {
	clipName   string
	start, end int
}

type colorNode struct {
	index   int
	typ     string
	label   string
	wheels  map[string]map[string]float64 // wheel -> channel -> value
	lutPath string
	cdl     map[string]any
}

type colorPreset struct {
	id       string
	name     string
	album    string
	clipName string
}

type mediaPool struct {
	bins  map[string]*bin
	clips map[string]*clip
}

type bin struct {
	name   string
	parent string // "" for the Master bin
}

type clip struct {
	name          string
	filePath      string
	bin           string
	linked        bool
	proxyPath     string
	optimized     bool
	transcription string
	subclipOf     string // parent clip name, "" for full clips
	subStart      int
	subEnd        int
}

type renderJob struct {
	id       int
	preset   string
	timeline string
	inOut    bool
	status   string // Queued, Rendering, Completed, Failed, Cancelled
	progress int
}

type renderPreset struct {
	name         string
	format       string
	codec        string
	width        int
	height       int
	frameRate    float64
	quality      int
	audioCodec   string
	audioBitrate int
}

type cloudProject struct {
	id    string
	name  string
	users map[string]string // email -> permission
}

// newState seeds the default editor state: one project with one timeline,
// both current, an empty media pool, and the built-in render presets.
func newState() (*state, error) {
	presets, err := builtinRenderPresets()
	if err != nil {
		return nil, err
	}
	s := &state{
		projects:      make(map[string]*project),
		page:          "edit",
		renderPresets: presets,
		layoutPresets: make(map[string]string),
		cloudProjects: make(map[string]*cloudProject),
		cacheMode:     "auto",
		cachePaths:    make(map[string]string),
		proxyMode:     "auto",
		proxyQuality:  "half",
		optimizedMode: "auto",
	}
	s.addProject(newProject(defaultProjectName))
	s.current = defaultProjectName
	return s, nil
}

func newProject(name string) *project {
	p := &project{
		name:       name,
		timelines:  make(map[string]*timeline),
		settings:   defaultProjectSettings(),
		properties: make(map[string]any),
		pool: &mediaPool{
			bins:  map[string]*bin{masterBin: {name: masterBin}},
			clips: make(map[string]*clip),
		},
		albums: map[string]map[string]*colorPreset{
			defaultAlbum: make(map[string]*colorPreset),
		},
		grades: make(map[string]*gradeState),
		saved:  true,
	}
	tl := newTimeline(defaultTimelineName, defaultFrameRate, defaultWidth, defaultHeight)
	p.timelines[tl.name] = tl
	p.order = append(p.order, tl.name)
	p.current = tl.name
	return p
}

func defaultProjectSettings() map[string]any {
	return map[string]any{
		"timelineFrameRate":        defaultFrameRate,
		"timelineResolutionWidth":  defaultWidth,
		"timelineResolutionHeight": defaultHeight,
		"colorScienceMode":         "davinciYRGB",
		"timelineColorSpace":       "Rec.709 Gamma 2.4",
	}
}

func newTimeline(name, frameRate string, width, height int) *timeline {
	return &timeline{
		name:        name,
		frameRate:   frameRate,
		width:       width,
		height:      height,
		videoTracks: 1,
		audioTracks: 1,
		items:       make(map[string]*item),
		markers:     make(map[int]*marker),
	}
}

func (s *state) addProject(p *project) {
	s.projects[p.name] = p
	s.order = append(s.order, p.name)
}

func (s *state) removeProjectName(name string) {
	delete(s.projects, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// currentProject never fails: the process always holds at least one project.
func (s *state) currentProject() *project {
	return s.projects[s.current]
}

// currentTimeline resolves the current project's current timeline.
func (s *state) currentTimeline() (*timeline, error) {
	p := s.currentProject()
	if p.current == "" {
		return nil, bridge.NotFoundf("no current timeline in project %q", p.name)
	}
	return p.timelines[p.current], nil
}

// timelineByName resolves a timeline by name, falling back to the current
// timeline when name is empty.
func (s *state) timelineByName(name string) (*timeline, error) {
	if name == "" {
		return s.currentTimeline()
	}
	tl, ok := s.currentProject().timelines[name]
	if !ok {
		return nil, bridge.NotFoundf("timeline %q not found", name)
	}
	return tl, nil
}

// nextItemID allocates the next item_<n> identifier.
func (s *state) nextItemID() string {
	s.itemSeq++
	return fmt.Sprintf("item_%d", s.itemSeq)
}

// findItem searches every timeline of the current project for an item id.
func (s *state) findItem(id string) (*item, bool) {
	p := s.currentProject()
	for _, name := range p.order {
		tl := p.timelines[name]
		if it, ok := tl.items[id]; ok {
			return it, true
		}
	}
	return nil, false
}

// ensureItem resolves an item id, creating a fresh item on the current
// timeline when the id is unknown. Item tools address items by opaque id;
// ids not minted by an earlier call materialize so that keyframe and
// property edits compose from a fresh state.
func (s *state) ensureItem(id string) (*item, error) {
	if it, ok := s.findItem(id); ok {
		return it, nil
	}
	tl, err := s.currentTimeline()
	if err != nil {
		return nil, err
	}
	it := newItem(id)
	tl.items[id] = it
	tl.itemOrder = append(tl.itemOrder, id)
	return it, nil
}

// newItem builds an item with the documented property defaults.
func newItem(id string) *item {
	return &item{
		id: id,
		transform: map[string]float64{
			"Pan": 0, "Tilt": 0, "ZoomX": 1, "ZoomY": 1, "Rotation": 0,
			"AnchorPointX": 0, "AnchorPointY": 0, "Pitch": 0, "Yaw": 0,
		},
		crop:          map[string]float64{"Left": 0, "Right": 0, "Top": 0, "Bottom": 0},
		compositeMode: "Normal",
		opacity:       1.0,
		speed:         1.0,
		process:       "OpticalFlow",
		stabMethod:    "Perspective",
		stabStrength:  0.5,
		volume:        1.0,
		props:         make(map[string]any),
		markers:       make(map[int]*marker),
		versions:      make(map[string]string),
		keys:          make(map[string][]keyframe),
	}
}

// resetItem restores one property group (or all) to defaults, preserving
// identity, placement, markers, keyframes, and grade.
func resetItem(it *item, group string) {
	fresh := newItem(it.id)
	switch group {
	case "transform":
		it.transform = fresh.transform
	case "crop":
		it.crop = fresh.crop
	case "composite":
		it.compositeMode = fresh.compositeMode
		it.opacity = fresh.opacity
	case "retime":
		it.speed = fresh.speed
		it.process = fresh.process
	case "stabilization":
		it.stabEnabled = fresh.stabEnabled
		it.stabMethod = fresh.stabMethod
		it.stabStrength = fresh.stabStrength
	case "audio":
		it.volume = fresh.volume
		it.pan = fresh.pan
		it.eqEnabled = fresh.eqEnabled
	default: // all
		it.transform = fresh.transform
		it.crop = fresh.crop
		it.compositeMode = fresh.compositeMode
		it.opacity = fresh.opacity
		it.speed = fresh.speed
		it.process = fresh.process
		it.stabEnabled = fresh.stabEnabled
		it.stabMethod = fresh.stabMethod
		it.stabStrength = fresh.stabStrength
		it.volume = fresh.volume
		it.pan = fresh.pan
		it.eqEnabled = fresh.eqEnabled
	}
}
