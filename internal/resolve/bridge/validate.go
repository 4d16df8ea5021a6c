package bridge

import "strings"

// Pages of the host editor, in tab order.
var Pages = []string{"media", "cut", "edit", "fusion", "color", "fairlight", "deliver"}

// MarkerColors are the marker and flag colors the host editor accepts.
var MarkerColors = []string{
	"Blue", "Cyan", "Green", "Yellow", "Red", "Pink", "Purple", "Fuchsia",
	"Rose", "Lavender", "Sky", "Mint", "Lemon", "Sand", "Cocoa", "Cream",
}

// ColorWheels are the primary-correction wheels that accept clamped values.
var ColorWheels = []string{"lift", "gamma", "gain", "offset"}

// WheelParams are the per-wheel channels.
var WheelParams = []string{"red", "green", "blue", "master"}

// TrackTypes are the timeline track classes.
var TrackTypes = []string{"video", "audio", "subtitle"}

// NodeTypes are the color-graph node kinds add_node accepts.
var NodeTypes = []string{"serial", "parallel", "layer"}

// CacheModes are the values the cache, proxy, and optimized-media mode
// switches accept.
var CacheModes = []string{"auto", "on", "off"}

// ProxyQualities are the proxy generation quality levels.
var ProxyQualities = []string{"quarter", "half", "threeQuarter", "full"}

// CompositeModes are the blend modes a timeline item accepts.
var CompositeModes = []string{
	"Normal", "Add", "Multiply", "Screen", "Overlay", "SoftLight", "HardLight",
	"ColorDodge", "ColorBurn", "Darken", "Lighten", "Difference", "Exclusion",
}

// RetimeProcesses are the speed-change interpolation engines.
var RetimeProcesses = []string{"NearestFrame", "FrameBlend", "OpticalFlow"}

// StabilizationMethods are the stabilizer analysis modes.
var StabilizationMethods = []string{"Perspective", "Similarity", "Translation"}

// InterpolationTypes are the keyframe easing curves.
var InterpolationTypes = []string{"Linear", "Bezier", "Ease-In", "Ease-Out", "Hold"}

// KeyframeModes are the per-item keyframe tracks enable_keyframes switches.
var KeyframeModes = []string{"All", "Color", "Sizing"}

// TransformProperties are the animatable transform fields of a timeline item.
var TransformProperties = []string{
	"Pan", "Tilt", "ZoomX", "ZoomY", "Rotation",
	"AnchorPointX", "AnchorPointY", "Pitch", "Yaw",
}

// CropTypes are the crop edges.
var CropTypes = []string{"Left", "Right", "Top", "Bottom"}

// KeyframeProperties are every property name that accepts keyframes: the
// transform fields, the crop edges, and the scalar item properties.
var KeyframeProperties = append(append(append([]string{},
	TransformProperties...), CropTypes...),
	"Opacity", "Speed", "Strength", "Volume", "AudioPan")

// ClampWheelValue clamps a color-wheel channel value to [-1, 1]. Wheel values
// are the one place out-of-range input is normalized instead of rejected.
func ClampWheelValue(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// CheckRange rejects v outside [lo, hi] with an InvalidParameter error
// naming the parameter.
func CheckRange(param string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return InvalidParameterf(param, "value %g out of range [%g, %g]", v, lo, hi)
	}
	return nil
}

// CheckSpeed rejects retime speeds outside (0, 10].
func CheckSpeed(param string, v float64) error {
	if v <= 0 || v > 10 {
		return InvalidParameterf(param, "speed %g out of range (0, 10]", v)
	}
	return nil
}

// CheckEnum rejects values not in the allowed set, listing the set in the
// error so the caller can self-correct.
func CheckEnum(param, v string, allowed []string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return InvalidParameterf(param, "%q is not one of %s", v, strings.Join(allowed, ", "))
}

// CheckNonEmpty rejects empty or all-whitespace names.
func CheckNonEmpty(param, v string) error {
	if strings.TrimSpace(v) == "" {
		return InvalidParameterf(param, "must not be empty")
	}
	return nil
}
