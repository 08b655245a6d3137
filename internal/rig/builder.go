package rig

import (
	"math"

	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/material"
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/skin"
)

// Fixed part dimensions in game units. Overlay boxes enclose their base
// part by half a unit per axis. Arm and sleeve dimensions come from the
// variant table instead.
var fixedDims = map[PartID]atlas.Dims{
	Head:       {W: 8, H: 8, D: 8},
	Hat:        {W: 9, H: 9, D: 9},
	Body:       {W: 8, H: 12, D: 4},
	Jacket:     {W: 8.5, H: 12.5, D: 4.5},
	RightLeg:   {W: 4, H: 12, D: 4},
	LeftLeg:    {W: 4, H: 12, D: 4},
	RightPants: {W: 4.5, H: 12.5, D: 4.5},
	LeftPants:  {W: 4.5, H: 12.5, D: 4.5},
	Cape:       {W: 10, H: 16, D: 1},
}

// Fixed part offsets. The character faces +z; its left side is +x. The
// origin sits at hip height: head center +16, torso +6, legs -6.
var fixedPos = map[PartID]mathutil.Vec3{
	Head:       {0, 16, 0},
	Hat:        {0, 16, 0},
	Body:       {0, 6, 0},
	Jacket:     {0, 6, 0},
	RightLeg:   {-2, -6, 0},
	LeftLeg:    {2, -6, 0},
	RightPants: {-2, -6, 0},
	LeftPants:  {2, -6, 0},
}

// Cape attachment: pivot at shoulder height behind the body, cloth
// hanging below it, resting at a slight backward tilt.
var (
	capePivotPos = mathutil.Vec3{0, 12, -2}
	capeHangPos  = mathutil.Vec3{0, -8, -0.5}
)

// CapeRestTilt is the cape's rest rotation around the pivot X axis.
const CapeRestTilt = 10 * math.Pi / 180

// Build assembles a complete rig from a skin bitmap, an optional
// already-validated cape bitmap, and a model variant. A missing skin
// bitmap is the one fatal condition; any single face whose atlas region
// does not fit the bitmap degrades to a placeholder material instead.
func Build(sk *skin.Image, cape *skin.Image, v atlas.Variant) (*CharacterRig, error) {
	if sk == nil || sk.Pix == nil {
		return nil, skin.ErrSourceMissing
	}
	sk = skin.Modernize(sk)

	r := &CharacterRig{Variant: v}
	spec := v.Spec()

	for id := Head; id <= LeftPants; id++ {
		n := r.Node(id)
		n.ID = id
		n.Parent = NoParent
		n.Visible = true

		part, _ := id.AtlasPart()
		switch id {
		case RightArm:
			n.Dims = spec.ArmDims
			n.Position = mathutil.Vec3{-spec.ArmOffsetX, 6, 0}
		case LeftArm:
			n.Dims = spec.ArmDims
			n.Position = mathutil.Vec3{spec.ArmOffsetX, 6, 0}
		case RightSleeve:
			n.Dims = spec.SleeveDims
			n.Position = mathutil.Vec3{-spec.ArmOffsetX, 6, 0}
		case LeftSleeve:
			n.Dims = spec.SleeveDims
			n.Position = mathutil.Vec3{spec.ArmOffsetX, 6, 0}
		default:
			n.Dims = fixedDims[id]
			n.Position = fixedPos[id]
		}

		buildFaces(n, sk, atlas.Regions(part, v), sk.Scale(), part.Layer() == atlas.LayerOverlay)
		n.RenderOrder, n.DepthBias = Composite(id)
	}

	pivot := r.Node(CapePivot)
	pivot.ID = CapePivot
	pivot.Parent = NoParent
	pivot.Position = capePivotPos
	pivot.Rotation = mathutil.Vec3{CapeRestTilt, 0, 0}
	pivot.PivotOnly = true
	pivot.RenderOrder, pivot.DepthBias = Composite(CapePivot)

	cn := r.Node(Cape)
	cn.ID = Cape
	cn.Parent = CapePivot
	cn.Dims = fixedDims[Cape]
	cn.Position = capeHangPos
	cn.RenderOrder, cn.DepthBias = Composite(Cape)

	if cape != nil && cape.Pix != nil {
		buildFaces(cn, cape, atlas.CapeRegions(), cape.Scale(), true)
		r.HasCape = true
		pivot.Visible = true
		cn.Visible = true
	}

	return r, nil
}

// buildFaces slices the six regions and attaches the resulting
// materials in face order. A RegionOutOfBounds slice falls back to the
// diagnostic placeholder so one missing face never blocks the rest of
// the character.
func buildFaces(n *PartNode, src *skin.Image, regs [atlas.FaceCount]atlas.Region, scale int, outer bool) {
	for f := atlas.Face(0); f < atlas.FaceCount; f++ {
		reg := regs[f]
		sl, err := skin.Slice(src, reg.Rect(scale), reg.Rotate180)
		if err != nil {
			n.Faces[f] = material.Placeholder(outer)
			continue
		}
		n.Faces[f] = material.Build(sl, outer)
	}
}
