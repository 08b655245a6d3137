// Package material turns sliced atlas sub-images into renderable
// surface descriptions. Filtering is always nearest-neighbor and wrap
// is always clamp-to-edge: the blocky pixel-art look depends on it and
// clamping prevents atlas bleed at face seams.
package material

import (
	"image"
	"image/color"
	"image/draw"

	"mc-skin-renderer/internal/skin"
)

// Filter is the texture sampling filter. Only nearest exists here.
type Filter int

// FilterNearest applies to both magnification and minification.
const FilterNearest Filter = iota

// Wrap is the texture coordinate wrap mode. Only clamp exists here.
type Wrap int

// WrapClamp clamps coordinates to the edge texel.
const WrapClamp Wrap = iota

// Mode describes how a face composites against what is behind it.
type Mode int

const (
	// ModeOpaque writes color and depth, no blending. All base-layer
	// faces use it.
	ModeOpaque Mode = iota
	// ModeBlended alpha-blends at the material's Opacity. Overlay faces
	// without detected transparency use it at 0.9 so the base layer
	// stays faintly visible through the enclosing box.
	ModeBlended
	// ModeBlendedDoubleSided blends at full alpha and renders both
	// sides, so an overlay with real transparency is visible from
	// inside its box as well.
	ModeBlendedDoubleSided
)

// outerOpacity is applied to overlay faces with no detected
// transparency. Overlay boxes enclose their base part, so rendering
// them fully opaque would hide the base layer from the inside.
const outerOpacity = 0.9

// FaceMaterial is the renderable description of one box face.
type FaceMaterial struct {
	Image *image.NRGBA

	Filter  Filter
	Wrap    Wrap
	Mode    Mode
	Opacity float64

	// Placeholder marks a diagnostic fallback produced after a
	// RegionOutOfBounds slice.
	Placeholder bool
}

// DoubleSided reports whether both sides of the face are rendered.
func (m FaceMaterial) DoubleSided() bool {
	return m.Mode == ModeBlendedDoubleSided
}

// Build derives the material for a sliced sub-image. isOuter selects
// the overlay policy: overlays always blend, and detected transparency
// additionally makes them double-sided. Base faces are flat-shaded and
// fully opaque.
func Build(slice *skin.Image, isOuter bool) FaceMaterial {
	m := FaceMaterial{
		Image:   slice.Pix,
		Filter:  FilterNearest,
		Wrap:    WrapClamp,
		Mode:    ModeOpaque,
		Opacity: 1,
	}
	if !isOuter {
		return m
	}
	if slice.AlphaCapable {
		m.Mode = ModeBlendedDoubleSided
	} else {
		m.Mode = ModeBlended
		m.Opacity = outerOpacity
	}
	return m
}

// Placeholder diagnostic colors: a missing base face shows opaque red,
// a missing overlay face translucent blue.
var (
	placeholderBase    = color.NRGBA{R: 0xcc, G: 0x22, B: 0x22, A: 0xff}
	placeholderOverlay = color.NRGBA{R: 0x22, G: 0x44, B: 0xcc, A: 0x80}
)

// Placeholder builds the fallback material substituted when a face's
// atlas region cannot be sliced from the source bitmap.
func Placeholder(isOuter bool) FaceMaterial {
	c := placeholderBase
	mode := ModeOpaque
	opacity := 1.0
	if isOuter {
		c = placeholderOverlay
		mode = ModeBlendedDoubleSided
	}
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return FaceMaterial{
		Image:       img,
		Filter:      FilterNearest,
		Wrap:        WrapClamp,
		Mode:        mode,
		Opacity:     opacity,
		Placeholder: true,
	}
}
