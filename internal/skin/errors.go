package skin

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for the build pipeline. Callers classify with errors.Is.
var (
	// ErrSourceMissing means no bitmap was supplied for a required build.
	// Fatal for that build attempt; the rig is left empty.
	ErrSourceMissing = errors.New("skin: no source bitmap")

	// ErrDimensionMismatch means a bitmap failed the aspect/multiple-of-64
	// validation. The whole texture is rejected.
	ErrDimensionMismatch = errors.New("skin: dimension mismatch")

	// ErrRegionOutOfBounds means one atlas rectangle does not fit the
	// supplied bitmap. Recovered per face with a placeholder material.
	ErrRegionOutOfBounds = errors.New("skin: region out of bounds")

	// ErrUnsupportedFormat means a file could not be decoded by any
	// registered image format. The whole texture is rejected.
	ErrUnsupportedFormat = errors.New("skin: unsupported image format")
)

func dimensionError(kind string, w, h int) error {
	return fmt.Errorf("%w: %s %dx%d", ErrDimensionMismatch, kind, w, h)
}

func regionError(r image.Rectangle, bounds image.Rectangle) error {
	return fmt.Errorf("%w: %v outside %v", ErrRegionOutOfBounds, r, bounds)
}
