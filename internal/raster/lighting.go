package raster

import "mc-skin-renderer/internal/atlas"

// LightConfig holds the per-axis flat shading factors. Face materials
// are unlit by policy, so shading is a host-side option applied per
// face axis, never per pixel: the classic top-bright, bottom-dark look
// without washing out the pixel art.
type LightConfig struct {
	Top    float64
	Bottom float64
	Front  float64 // front and back
	Side   float64 // left and right
}

// DefaultLightConfig returns the standard axis shading.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Top:    1.0,
		Bottom: 0.6,
		Front:  0.9,
		Side:   0.8,
	}
}

// Unlit renders every face at full brightness.
func Unlit() LightConfig {
	return LightConfig{Top: 1, Bottom: 1, Front: 1, Side: 1}
}

// ShadeFor returns the brightness multiplier for a face.
func (lc LightConfig) ShadeFor(f atlas.Face) float64 {
	switch f {
	case atlas.FaceTop:
		return lc.Top
	case atlas.FaceBottom:
		return lc.Bottom
	case atlas.FaceFront, atlas.FaceBack:
		return lc.Front
	}
	return lc.Side
}
