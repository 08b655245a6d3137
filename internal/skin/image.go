package skin

import "image"

// Image is an immutable RGBA pixel buffer plus its transparency
// classification. Transforms (Slice, Rotate180) always allocate a new
// buffer; nothing in the pipeline mutates Pix in place.
type Image struct {
	Pix *image.NRGBA

	// AlphaCapable records whether the source pixel format carries a
	// usable alpha channel. This is a format-level classification, not a
	// per-pixel scan: an alpha-capable image counts as potentially
	// transparent even if every pixel happens to be opaque. Unknown
	// formats classify as alpha-capable.
	AlphaCapable bool
}

// New wraps a decoded NRGBA buffer.
func New(pix *image.NRGBA, alphaCapable bool) *Image {
	return &Image{Pix: pix, AlphaCapable: alphaCapable}
}

func (im *Image) Width() int  { return im.Pix.Rect.Dx() }
func (im *Image) Height() int { return im.Pix.Rect.Dy() }

// Scale returns the integer atlas scale relative to the 64px base
// layout (1 for 64x64 and 64x32 skins, 2 for 128x128, ...).
func (im *Image) Scale() int {
	s := im.Width() / 64
	if s < 1 {
		s = 1
	}
	return s
}

// Legacy reports whether the buffer uses the pre-1.8 half-height layout.
func (im *Image) Legacy() bool {
	return im.Height()*2 == im.Width()
}

// ValidateSkin checks the skin texture format contract: 64x64, 64x32,
// or an exact integer multiple preserving aspect ratio.
func ValidateSkin(im *Image) error {
	if im == nil || im.Pix == nil {
		return ErrSourceMissing
	}
	w, h := im.Width(), im.Height()
	if w <= 0 || h <= 0 || w%64 != 0 {
		return dimensionError("skin", w, h)
	}
	if w != h && h*2 != w {
		return dimensionError("skin", w, h)
	}
	return nil
}

// ValidateCape checks the cape texture format contract: width twice the
// height, width a multiple of 64.
func ValidateCape(im *Image) error {
	if im == nil || im.Pix == nil {
		return ErrSourceMissing
	}
	w, h := im.Width(), im.Height()
	if w <= 0 || h*2 != w || w%64 != 0 {
		return dimensionError("cape", w, h)
	}
	return nil
}
