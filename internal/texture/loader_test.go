package texture

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"mc-skin-renderer/internal/skin"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeClassifiesAlpha(t *testing.T) {
	rgba := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 3; i < len(rgba.Pix); i += 4 {
		rgba.Pix[i] = 255
	}
	gray := image.NewGray(image.Rect(0, 0, 8, 8))

	t.Run("alpha-capable png", func(t *testing.T) {
		im, err := Decode(bytes.NewReader(encodePNG(t, rgba)))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !im.AlphaCapable {
			t.Error("NRGBA png classified as not alpha-capable")
		}
		if im.Width() != 8 || im.Height() != 8 {
			t.Errorf("dims = %dx%d, want 8x8", im.Width(), im.Height())
		}
	})

	t.Run("grayscale png", func(t *testing.T) {
		im, err := Decode(bytes.NewReader(encodePNG(t, gray)))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if im.AlphaCapable {
			t.Error("grayscale png classified as alpha-capable")
		}
		// Alpha forced opaque during conversion.
		if a := im.Pix.Pix[3]; a != 255 {
			t.Errorf("converted alpha = %d, want 255", a)
		}
	})
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Fatal("Decode accepted garbage data")
	}
	if !errors.Is(err, skin.ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skin.png")
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	if err := os.WriteFile(path, encodePNG(t, img), 0644); err != nil {
		t.Fatal(err)
	}

	im, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if im.Width() != 64 {
		t.Errorf("width = %d, want 64", im.Width())
	}

	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

// TGA has no magic bytes for the sniffer, so Load routes it by file
// extension while sniffed formats keep working alongside it.
func TestLoadTGA(t *testing.T) {
	// 1x1 uncompressed true-color TGA, 32-bit BGRA.
	raw := []byte{
		0, 0, 2, // no ID, no color map, image type 2
		0, 0, 0, 0, 0, // color map spec
		0, 0, 0, 0, // origin
		1, 0, 1, 0, // 1x1
		32, 8, // 32bpp, 8 alpha bits
		0x22, 0x44, 0xcc, 0xff, // BGRA
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "cape.tga")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	im, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if im.Width() != 1 || im.Height() != 1 {
		t.Fatalf("dims = %dx%d, want 1x1", im.Width(), im.Height())
	}
	if !im.AlphaCapable {
		t.Error("32-bit tga classified as not alpha-capable")
	}
	if r, b := im.Pix.Pix[0], im.Pix.Pix[2]; r != 0xcc || b != 0x22 {
		t.Errorf("pixel = %v, want BGRA channel order unpacked", im.Pix.Pix[:4])
	}

	// The extension route must not break the sniffer route.
	png64 := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	pngPath := filepath.Join(dir, "skin.png")
	if err := os.WriteFile(pngPath, encodePNG(t, png64), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(pngPath); err != nil {
		t.Errorf("Load(png) alongside tga routing: %v", err)
	}
}
