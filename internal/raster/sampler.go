package raster

import "image"

// SampleNearest performs nearest-neighbor filtering with clamp-to-edge
// wrapping, matching the FaceMaterial contract: no bilinear smoothing
// of the pixel art, no bleed across face seams. Accesses tex.Pix
// directly for performance.
func SampleNearest(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	x := int(u * float64(w))
	y := int(v * float64(h))
	if x < 0 {
		x = 0
	} else if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= h {
		y = h - 1
	}

	i := y*tex.Stride + x*4
	pix := tex.Pix
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}
