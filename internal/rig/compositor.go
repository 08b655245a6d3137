package rig

// compositeSlot is one row of the layering policy: an explicit draw
// priority and a view-depth nudge. More negative bias pushes the part
// toward the viewer.
type compositeSlot struct {
	Order int
	Bias  float64
}

// compositeTable is the whole z-fighting policy in one place. Base
// limbs draw after the torso to resolve the shoulder overlap; overlay
// parts draw after everything underneath them. The ordering is a fixed
// global property of the rig, independent of camera angle — it resolves
// the known overlap pairs, not general visibility.
var compositeTable = [NodeCount]compositeSlot{
	Head: {100, 0},
	Body: {100, 0},

	RightArm: {105, -0.001},
	LeftArm:  {105, -0.001},
	RightLeg: {105, -0.001},
	LeftLeg:  {105, -0.001},

	Hat:    {200, -0.002},
	Jacket: {200, -0.002},

	RightSleeve: {210, -0.003},
	LeftSleeve:  {210, -0.003},
	RightPants:  {210, -0.003},
	LeftPants:   {210, -0.003},

	// The cape is a base-layer part hanging clear of the torso; the
	// base-limb slot keeps it behind every overlay.
	CapePivot: {105, -0.001},
	Cape:      {105, -0.001},
}

// Composite returns the render order and depth bias for a node.
func Composite(id PartID) (order int, bias float64) {
	s := compositeTable[id]
	return s.Order, s.Bias
}
