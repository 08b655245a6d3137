package raster

import (
	"image"
	"math"
	"sort"

	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/material"
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/rig"
)

// Options control one rig render.
type Options struct {
	// Size is the output edge length in pixels.
	Size int
	// Supersample renders at Size*Supersample; the caller downsamples.
	Supersample int
	// Yaw is the turntable angle in radians.
	Yaw float64
	// Lit applies per-face axis shading; materials themselves stay
	// unlit per policy.
	Lit bool
}

// depthBiasUnits converts the compositor's bias values into model
// units along the view axis. Overlay boxes clear their base part by a
// quarter unit, so biases in the 0.1–0.3 unit range separate coincident
// geometry without reordering genuinely distinct surfaces.
const depthBiasUnits = 100

// RenderRig renders a character rig to an NRGBA image with an
// orthographic camera. Parts draw in compositor order: the z-buffer
// resolves true depth, the per-part bias resolves the near-coincident
// base/overlay pairs.
func RenderRig(r *rig.CharacterRig, opts Options) *image.NRGBA {
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	renderSize := opts.Size * opts.Supersample
	if r == nil {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	view := mathutil.CharacterYaw(opts.Yaw)
	nodes := drawOrder(r)

	// Bounding box of all transformed vertices
	allMin := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, n := range nodes {
		for f := atlas.Face(0); f < atlas.FaceCount; f++ {
			for _, wv := range worldCorners(r, n, f) {
				t := view.MulVec3(wv)
				for k := 0; k < 3; k++ {
					allMin[k] = math.Min(allMin[k], t[k])
					allMax[k] = math.Max(allMax[k], t[k])
				}
			}
		}
	}

	center := allMin.Add(allMax).Scale(0.5)
	span := math.Max(allMax[0]-allMin[0], allMax[1]-allMin[1])
	if span < 0.001 {
		span = 0.001
	}

	margin := 16 * opts.Supersample
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := Unlit()
	if opts.Lit {
		lc = DefaultLightConfig()
	}

	for _, n := range nodes {
		for f := atlas.Face(0); f < atlas.FaceCount; f++ {
			renderFace(fb, r, n, f, view, center, scale, half, lc)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img
}

// drawOrder returns the visible geometry nodes sorted by render order,
// ties broken by node ID for determinism.
func drawOrder(r *rig.CharacterRig) []*rig.PartNode {
	nodes := make([]*rig.PartNode, 0, rig.NodeCount)
	for id := rig.PartID(0); id < rig.NodeCount; id++ {
		n := r.Node(id)
		if !n.Visible || n.PivotOnly {
			continue
		}
		nodes = append(nodes, n)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].RenderOrder != nodes[j].RenderOrder {
			return nodes[i].RenderOrder < nodes[j].RenderOrder
		}
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// worldCorners resolves a face quad to rig space, walking the one-level
// pivot chain (a rotated parent rotates the child around the parent's
// position).
func worldCorners(r *rig.CharacterRig, n *rig.PartNode, f atlas.Face) [4]mathutil.Vec3 {
	corners := faceCorners(f, n.Dims)
	var out [4]mathutil.Vec3
	if n.Parent == rig.NoParent {
		for i, c := range corners {
			out[i] = n.Position.Add(c)
		}
		return out
	}
	p := r.Node(n.Parent)
	rot := eulerMat(p.Rotation)
	for i, c := range corners {
		out[i] = p.Position.Add(rot.MulVec3(n.Position.Add(c)))
	}
	return out
}

func renderFace(
	fb *FrameBuffer,
	r *rig.CharacterRig,
	n *rig.PartNode,
	f atlas.Face,
	view mathutil.Mat3,
	center mathutil.Vec3,
	scale, half float64,
	lc LightConfig,
) {
	m := n.Faces[f]
	if m.Image == nil {
		return
	}

	var px, py, pz [4]float64
	for i, wv := range worldCorners(r, n, f) {
		t := view.MulVec3(wv)
		px[i] = (t[0]-center[0])*scale + half
		py[i] = -(t[1]-center[1])*scale + half
		pz[i] = (t[2] - n.DepthBias*depthBiasUnits) * scale
	}

	// Backface test on the projected quad; screen y points down, so a
	// front-facing quad winds with positive signed area.
	area := (px[1]-px[0])*(py[2]-py[0]) - (py[1]-py[0])*(px[2]-px[0])
	if area <= 0 && !m.DoubleSided() {
		return
	}

	shade := lc.ShadeFor(f)
	blend := m.Mode != material.ModeOpaque

	for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
		var x, y, z, u, v [3]float64
		for k, i := range tri {
			x[k], y[k], z[k] = px[i], py[i], pz[i]
			u[k], v[k] = quadUV[i][0], quadUV[i][1]
		}
		RasterizeTriangle(fb, x, y, z, u, v, m.Image, m.Opacity, blend, shade)
	}
}
