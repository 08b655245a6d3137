// Package texture decodes skin and cape files into the pipeline's
// in-memory pixel buffers. This is the only file I/O in the module: the
// build pipeline itself assumes bitmaps are already resident in memory.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"

	"mc-skin-renderer/internal/skin"
)

// Load reads and decodes an image file into a skin.Image. TGA carries
// no magic bytes, so it is routed by extension; everything else goes
// through the registered-format sniffer.
func Load(path string) (*skin.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	var im *skin.Image
	if strings.ToLower(filepath.Ext(path)) == ".tga" {
		im, err = DecodeTGA(f)
	} else {
		im, err = Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return im, nil
}

// Decode decodes PNG, JPEG, GIF or BMP data into an NRGBA buffer plus
// its transparency classification. TGA data cannot be sniffed; use
// DecodeTGA for it.
func Decode(r io.Reader) (*skin.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", skin.ErrUnsupportedFormat, err)
	}
	return skin.New(toNRGBA(img), alphaCapable(img)), nil
}

// DecodeTGA decodes TGA data into an NRGBA buffer.
func DecodeTGA(r io.Reader) (*skin.Image, error) {
	img, err := tga.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", skin.ErrUnsupportedFormat, err)
	}
	return skin.New(toNRGBA(img), alphaCapable(img)), nil
}

// alphaCapable classifies the decoded pixel format. This is deliberately
// a format-level check, not a per-pixel scan: any format that can carry
// alpha counts as potentially transparent, and a format we cannot
// classify fails open toward transparency so layering stays correct.
func alphaCapable(img image.Image) bool {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	}
	return true
}

// toNRGBA converts any decoded image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if !alphaCapable(src) {
		// No alpha — draw and force alpha to 255
		draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
		return dst
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := dst.PixOffset(x, y)
			dst.Pix[i] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = c.A
		}
	}
	return dst
}
