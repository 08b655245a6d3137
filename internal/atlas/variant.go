package atlas

import "fmt"

// Variant selects the body proportions of the character model.
type Variant int

const (
	// Steve is the classic model with 4px-wide arms.
	Steve Variant = iota
	// Alex is the slim model with 3px-wide arms.
	Alex
)

func (v Variant) String() string {
	switch v {
	case Steve:
		return "steve"
	case Alex:
		return "alex"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a config/CLI string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "", "steve", "classic":
		return Steve, nil
	case "alex", "slim":
		return Alex, nil
	}
	return Steve, fmt.Errorf("atlas: unknown variant %q", s)
}

// Dims holds box dimensions in game units (width, height, length).
type Dims struct {
	W, H, D float64
}

// VariantSpec carries everything that differs between the two models as
// pure data. All other part dimensions are identical across variants.
type VariantSpec struct {
	// ArmWidth is the arm box width in atlas pixels; it drives the
	// derived arm region offsets.
	ArmWidth int

	ArmDims    Dims
	SleeveDims Dims

	// ArmOffsetX is the attachment distance from the body centerline to
	// the arm center, in game units. Left arm at +ArmOffsetX, right at
	// -ArmOffsetX.
	ArmOffsetX float64
}

var variantSpecs = [...]VariantSpec{
	Steve: {
		ArmWidth:   4,
		ArmDims:    Dims{4, 12, 4},
		SleeveDims: Dims{4.5, 12.5, 4.5},
		ArmOffsetX: 6,
	},
	Alex: {
		ArmWidth:   3,
		ArmDims:    Dims{3, 12, 4},
		SleeveDims: Dims{3.5, 12.5, 4.5},
		ArmOffsetX: 5.5,
	},
}

// Spec returns the dimension table for the variant.
func (v Variant) Spec() VariantSpec {
	return variantSpecs[v]
}
