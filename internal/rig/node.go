// Package rig assembles the character's box meshes from a skin (and
// optional cape) bitmap: one PartNode per body part and layer, composed
// through a fixed render-order/depth-bias table so overlay layers draw
// in front of their base counterparts without z-fighting.
package rig

import (
	"fmt"

	"mc-skin-renderer/internal/atlas"
	"mc-skin-renderer/internal/material"
	"mc-skin-renderer/internal/mathutil"
)

// PartID is a typed handle into the rig's node array. Nodes are always
// addressed by handle, never by name.
type PartID int

const (
	Head PartID = iota
	Hat
	Body
	Jacket
	RightArm
	LeftArm
	RightSleeve
	LeftSleeve
	RightLeg
	LeftLeg
	RightPants
	LeftPants
	CapePivot
	Cape

	NodeCount = 14
)

// NoParent marks a node attached directly to the rig root.
const NoParent PartID = -1

var nodeNames = [NodeCount]string{
	"head", "hat", "body", "jacket",
	"rightArm", "leftArm", "rightSleeve", "leftSleeve",
	"rightLeg", "leftLeg", "rightPants", "leftPants",
	"capePivot", "cape",
}

func (id PartID) String() string {
	if id < 0 || id >= NodeCount {
		return fmt.Sprintf("PartID(%d)", int(id))
	}
	return nodeNames[id]
}

// AtlasPart maps the node to its texture part. The cape pivot carries
// no texture and reports false.
func (id PartID) AtlasPart() (atlas.Part, bool) {
	switch id {
	case CapePivot:
		return 0, false
	case Cape:
		return atlas.PartCape, true
	}
	return atlas.Part(id), true
}

// PartNode is one named box mesh: dimensions, local offset, six face
// materials in the fixed face order, and its compositor slot.
type PartNode struct {
	ID   PartID
	Dims atlas.Dims

	// Position is the node's local offset: relative to the rig origin
	// for root nodes, relative to the parent for attached nodes.
	Position mathutil.Vec3

	// Rotation is a local Euler rotation (X, Y, Z radians) applied at
	// the node's position. Only the cape pivot uses it.
	Rotation mathutil.Vec3

	Parent PartID

	Faces [atlas.FaceCount]material.FaceMaterial

	RenderOrder int
	DepthBias   float64

	Visible bool

	// PivotOnly marks attachment nodes without geometry of their own.
	PivotOnly bool
}

// CharacterRig owns the full node set for one character instance. A rig
// is built in one shot and replaced wholesale; it is never partially
// rebuilt, so the displayed character never mixes materials from two
// source bitmaps.
type CharacterRig struct {
	Variant atlas.Variant
	Nodes   [NodeCount]PartNode

	// HasCape reports whether a valid cape texture was supplied; when
	// false the cape node exists but stays hidden.
	HasCape bool
}

// Node returns the addressed node.
func (r *CharacterRig) Node(id PartID) *PartNode {
	return &r.Nodes[id]
}
