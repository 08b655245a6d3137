package skin

import "image"

// Slice crops the given rectangle out of src into a fresh buffer,
// optionally rotating it 180 degrees. The rectangle must fit the source
// bounds entirely; a rectangle that sticks out returns
// ErrRegionOutOfBounds and the caller falls back to a placeholder
// material so one bad face never aborts the whole build.
func Slice(src *Image, r image.Rectangle, rotate180 bool) (*Image, error) {
	if src == nil || src.Pix == nil {
		return nil, ErrSourceMissing
	}
	bounds := src.Pix.Rect
	if r.Empty() || !r.In(bounds) {
		return nil, regionError(r, bounds)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		si := src.Pix.PixOffset(r.Min.X, r.Min.Y+y)
		di := dst.PixOffset(0, y)
		copy(dst.Pix[di:di+r.Dx()*4], src.Pix.Pix[si:si+r.Dx()*4])
	}

	out := &Image{Pix: dst, AlphaCapable: src.AlphaCapable}
	if rotate180 {
		out = Rotate180(out)
	}
	return out, nil
}

// Rotate180 returns a new buffer with the pixels rotated half a turn.
// Dimensions are preserved; applying it twice reproduces the input.
func Rotate180(im *Image) *Image {
	w, h := im.Width(), im.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := im.Pix.PixOffset(im.Pix.Rect.Min.X+x, im.Pix.Rect.Min.Y+y)
			di := dst.PixOffset(w-1-x, h-1-y)
			copy(dst.Pix[di:di+4], im.Pix.Pix[si:si+4])
		}
	}
	return &Image{Pix: dst, AlphaCapable: im.AlphaCapable}
}
