// Package postprocess reduces supersampled renders to their target
// size.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a supersampled frame with premultiplied-alpha
// CatmullRom filtering. Filtering straight NRGBA would mix color from
// fully transparent texels and leave dark halos around the character's
// silhouette.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := premultiply(img)
	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)
	return unpremultiply(dst)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		out.Pix[i] = uint8((uint32(img.Pix[i])*a + 127) / 255)
		out.Pix[i+1] = uint8((uint32(img.Pix[i+1])*a + 127) / 255)
		out.Pix[i+2] = uint8((uint32(img.Pix[i+2])*a + 127) / 255)
		out.Pix[i+3] = img.Pix[i+3]
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		if a > 1 {
			out.Pix[i] = clamp8(uint32(img.Pix[i]) * 255 / a)
			out.Pix[i+1] = clamp8(uint32(img.Pix[i+1]) * 255 / a)
			out.Pix[i+2] = clamp8(uint32(img.Pix[i+2]) * 255 / a)
		}
		out.Pix[i+3] = img.Pix[i+3]
	}
	return out
}

func clamp8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
