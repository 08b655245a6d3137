package atlas

// Face identifies one side of a part box. The fixed face order
// front, right, back, left, top, bottom is used everywhere a set of six
// faces appears.
type Face int

const (
	FaceFront Face = iota
	FaceRight
	FaceBack
	FaceLeft
	FaceTop
	FaceBottom

	FaceCount = 6
)

var faceNames = [FaceCount]string{"front", "right", "back", "left", "top", "bottom"}

func (f Face) String() string {
	if f < 0 || f >= FaceCount {
		return "face?"
	}
	return faceNames[f]
}

// Layer distinguishes the base skin from the outer overlay.
type Layer int

const (
	LayerBase Layer = iota
	LayerOverlay
)

func (l Layer) String() string {
	if l == LayerOverlay {
		return "overlay"
	}
	return "base"
}

// Part identifies one textured body part.
type Part int

const (
	PartHead Part = iota
	PartHat
	PartBody
	PartJacket
	PartRightArm
	PartLeftArm
	PartRightSleeve
	PartLeftSleeve
	PartRightLeg
	PartLeftLeg
	PartRightPants
	PartLeftPants
	PartCape

	PartCount = 13
)

var partNames = [PartCount]string{
	"head", "hat", "body", "jacket",
	"rightArm", "leftArm", "rightSleeve", "leftSleeve",
	"rightLeg", "leftLeg", "rightPants", "leftPants",
	"cape",
}

func (p Part) String() string {
	if p < 0 || p >= PartCount {
		return "part?"
	}
	return partNames[p]
}

// Layer returns which render layer the part belongs to.
func (p Part) Layer() Layer {
	switch p {
	case PartHat, PartJacket, PartRightSleeve, PartLeftSleeve, PartRightPants, PartLeftPants:
		return LayerOverlay
	}
	return LayerBase
}

// Limb reports whether the part is an arm or leg (or their sleeves).
// Limb bottom faces are never rotated and limbs take their own
// compositor row.
func (p Part) Limb() bool {
	switch p {
	case PartRightArm, PartLeftArm, PartRightSleeve, PartLeftSleeve,
		PartRightLeg, PartLeftLeg, PartRightPants, PartLeftPants:
		return true
	}
	return false
}

// Arm reports whether the part's geometry depends on the model variant.
func (p Part) Arm() bool {
	switch p {
	case PartRightArm, PartLeftArm, PartRightSleeve, PartLeftSleeve:
		return true
	}
	return false
}
