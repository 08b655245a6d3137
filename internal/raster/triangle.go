package raster

import (
	"image"
	"math"
)

// RasterizeTriangle rasterizes a single textured triangle with z-buffer
// test and optional alpha blending.
//
// This is the HOT PATH — designed for zero allocation in the inner
// loop. Depth bias has already been folded into the z values by the
// caller; larger z is closer to the viewer.
func RasterizeTriangle(
	fb *FrameBuffer,
	x, y, z [3]float64,
	u, v [3]float64,
	tex *image.NRGBA,
	opacity float64,
	blend bool,
	shade float64,
) {
	x0, y0, z0 := x[0], y[0], z[0]
	x1, y1, z1 := x[1], y[1], z[1]
	x2, y2, z2 := x[2], y[2], z[2]

	// Bounding box
	w := fb.Width
	h := fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Pixel loop — zero allocations
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			zp := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if zp <= fb.ZBuf[zIdx] {
				continue
			}

			up := w0*u[0] + w1*u[1] + w2*u[2]
			vp := w0*v[0] + w1*v[1] + w2*v[2]
			cr, cg, cb, ca := SampleNearest(tex, up, vp)

			a := float64(ca) / 255 * opacity
			if a < 0.004 {
				continue
			}

			fr := float64(cr) * shade
			fg := float64(cg) * shade
			fbv := float64(cb) * shade

			pxIdx := zIdx * 4
			if blend && a < 0.999 {
				da := float64(fb.Color[pxIdx+3]) / 255
				outA := a + da*(1-a)
				inv := 1 - a
				fb.Color[pxIdx] = clamp255(fr*a + float64(fb.Color[pxIdx])*inv)
				fb.Color[pxIdx+1] = clamp255(fg*a + float64(fb.Color[pxIdx+1])*inv)
				fb.Color[pxIdx+2] = clamp255(fbv*a + float64(fb.Color[pxIdx+2])*inv)
				fb.Color[pxIdx+3] = clamp255(outA * 255)
			} else {
				fb.Color[pxIdx] = clamp255(fr)
				fb.Color[pxIdx+1] = clamp255(fg)
				fb.Color[pxIdx+2] = clamp255(fbv)
				fb.Color[pxIdx+3] = ca
			}
			fb.ZBuf[zIdx] = zp
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
