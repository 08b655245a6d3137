package raster

import (
	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/mathutil"
)

// faceCorner scales box half-extents into one corner of a face quad.
// sx/sy/sz multiply the half width/height/depth.
type faceCorner struct {
	sx, sy, sz float64
}

// faceQuads lists, per face, the four corners in texture order:
// top-left, top-right, bottom-right, bottom-left as seen from outside
// the box. The character faces +z; +x is its left side.
var faceQuads = [atlas.FaceCount][4]faceCorner{
	atlas.FaceFront: {
		{-1, 1, 1}, {1, 1, 1}, {1, -1, 1}, {-1, -1, 1},
	},
	atlas.FaceRight: {
		{-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1}, {-1, -1, -1},
	},
	atlas.FaceBack: {
		{1, 1, -1}, {-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	},
	atlas.FaceLeft: {
		{1, 1, 1}, {1, 1, -1}, {1, -1, -1}, {1, -1, 1},
	},
	atlas.FaceTop: {
		{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1},
	},
	atlas.FaceBottom: {
		{-1, -1, 1}, {1, -1, 1}, {1, -1, -1}, {-1, -1, -1},
	},
}

// quadUV maps the four quad corners across the whole face material.
var quadUV = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// faceCorners returns the four local-space corners of a face for a box
// of the given dimensions centered at the origin.
func faceCorners(f atlas.Face, dims atlas.Dims) [4]mathutil.Vec3 {
	hw, hh, hd := dims.W/2, dims.H/2, dims.D/2
	var out [4]mathutil.Vec3
	for i, c := range faceQuads[f] {
		out[i] = mathutil.Vec3{c.sx * hw, c.sy * hh, c.sz * hd}
	}
	return out
}

// eulerMat builds the local rotation matrix for a node's Euler angles,
// applied X then Z (the only axes the cape pivot drives).
func eulerMat(r mathutil.Vec3) mathutil.Mat3 {
	m := mathutil.RotX(r[0])
	if r[1] != 0 {
		m = mathutil.Mat3Mul(mathutil.RotY(r[1]), m)
	}
	if r[2] != 0 {
		m = mathutil.Mat3Mul(mathutil.RotZ(r[2]), m)
	}
	return m
}
