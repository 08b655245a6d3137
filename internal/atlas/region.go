package atlas

import "image"

// Region is a pixel rectangle within the source texture, in 64px base
// units, plus the half-turn flag applied when slicing.
type Region struct {
	X, Y, W, H int

	// Rotate180 marks regions stored upside-down in the atlas. Only the
	// bottom faces of head, hat, body and jacket carry it; limb and cape
	// bottoms are never rotated.
	Rotate180 bool
}

// Rect returns the region as an image rectangle scaled by the integer
// atlas scale.
func (r Region) Rect(scale int) image.Rectangle {
	return image.Rect(r.X*scale, r.Y*scale, (r.X+r.W)*scale, (r.Y+r.H)*scale)
}

// Area returns the region's pixel area at scale 1.
func (r Region) Area() int {
	return r.W * r.H
}

// boxRegions derives the six face rectangles for a box whose texture
// unwrap starts at (ox, oy), with face width w, height h and depth d.
// The unwrap places, across x: right strip, front, left strip, back;
// top and bottom sit above front and left. Face order is the fixed
// front, right, back, left, top, bottom.
//
// For arms, w is the variant arm width: the left strip lands at
// ox+d+w and the back at ox+2d+w, so the derived offsets from the front
// face's x origin are exactly w and w+d. Nothing here may assume w == 4.
func boxRegions(ox, oy, w, h, d int) [FaceCount]Region {
	return [FaceCount]Region{
		FaceFront:  {X: ox + d, Y: oy + d, W: w, H: h},
		FaceRight:  {X: ox, Y: oy + d, W: d, H: h},
		FaceBack:   {X: ox + 2*d + w, Y: oy + d, W: w, H: h},
		FaceLeft:   {X: ox + d + w, Y: oy + d, W: d, H: h},
		FaceTop:    {X: ox + d, Y: oy, W: w, H: d},
		FaceBottom: {X: ox + d + w, Y: oy, W: w, H: d},
	}
}

// skinOrigin holds the unwrap origin for each constant-size part.
var skinOrigins = map[Part][2]int{
	PartHead:        {0, 0},
	PartHat:         {32, 0},
	PartBody:        {16, 16},
	PartJacket:      {16, 32},
	PartRightArm:    {40, 16},
	PartRightSleeve: {40, 32},
	PartLeftArm:     {32, 48},
	PartLeftSleeve:  {48, 48},
	PartRightLeg:    {0, 16},
	PartRightPants:  {0, 32},
	PartLeftLeg:     {16, 48},
	PartLeftPants:   {0, 48},
}

// Regions returns the six face rectangles for a skin part in the fixed
// face order. Arm rectangles are derived from the variant's arm width;
// everything else is constant across variants. The table is static:
// whether a region fits a given bitmap is the slicer's concern.
func Regions(p Part, v Variant) [FaceCount]Region {
	if p == PartCape {
		return CapeRegions()
	}
	o := skinOrigins[p]
	var w, h, d int
	switch {
	case p == PartHead || p == PartHat:
		w, h, d = 8, 8, 8
	case p.Arm():
		w, h, d = v.Spec().ArmWidth, 12, 4
	case p == PartBody || p == PartJacket:
		w, h, d = 8, 12, 4
	default: // legs and pants
		w, h, d = 4, 12, 4
	}
	regs := boxRegions(o[0], o[1], w, h, d)
	if !p.Limb() {
		regs[FaceBottom].Rotate180 = true
	}
	return regs
}

// CapeRegions returns the six face rectangles of the cape cloth within
// a cape texture. The cloth is 10x16 with a 1px side strip.
func CapeRegions() [FaceCount]Region {
	return boxRegions(0, 0, 10, 16, 1)
}
