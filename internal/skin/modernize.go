package skin

import (
	"image"
	"image/draw"
)

// legacyCopy describes one sub-rectangle move used when extending a
// pre-1.8 half-height skin: left limbs are horizontally mirrored copies
// of the right limbs. Coordinates are in 64px base units.
type legacyCopy struct {
	sx, sy, w, h int
	dx, dy       int
}

var legacyCopies = []legacyCopy{
	// right leg -> left leg slot
	{4, 16, 4, 4, 20, 48},   // top
	{8, 16, 4, 4, 24, 48},   // bottom
	{0, 20, 4, 12, 24, 52},  // outside
	{4, 20, 4, 12, 20, 52},  // front
	{8, 20, 4, 12, 16, 52},  // inside
	{12, 20, 4, 12, 28, 52}, // back
	// right arm -> left arm slot
	{44, 16, 4, 4, 36, 48},
	{48, 16, 4, 4, 40, 48},
	{40, 20, 4, 12, 40, 52},
	{44, 20, 4, 12, 36, 52},
	{48, 20, 4, 12, 32, 52},
	{52, 20, 4, 12, 44, 52},
}

// Modernize converts a legacy half-height skin to the square layout by
// extending the canvas and mirroring the right limbs into the left-limb
// slots. Overlay areas in the new lower half stay fully transparent.
// Non-legacy skins are returned unchanged.
func Modernize(im *Image) *Image {
	if !im.Legacy() {
		return im
	}
	s := im.Scale()
	size := im.Width()
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, im.Pix.Rect, im.Pix, im.Pix.Rect.Min, draw.Src)

	for _, c := range legacyCopies {
		copyMirrored(dst, im.Pix, c.sx*s, c.sy*s, c.w*s, c.h*s, c.dx*s, c.dy*s)
	}
	return &Image{Pix: dst, AlphaCapable: im.AlphaCapable}
}

// copyMirrored copies a w*h block from src at (sx,sy) to dst at (dx,dy),
// flipping it horizontally.
func copyMirrored(dst *image.NRGBA, src *image.NRGBA, sx, sy, w, h, dx, dy int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(sx+x, sy+y)
			di := dst.PixOffset(dx+w-1-x, dy+y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}
