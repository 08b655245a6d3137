package mathutil

// Precomputed view matrices for the character renderer.
var (
	// CharacterView tilts the camera slightly downward so the top faces
	// of the head and shoulders stay visible: Rx(-15°).
	CharacterView = RotX(Deg2Rad(-15))
)

// CharacterYaw composes the turntable rotation with the fixed camera
// tilt. Angle in radians, positive spins the character to its left.
func CharacterYaw(yaw float64) Mat3 {
	return Mat3Mul(CharacterView, RotY(yaw))
}
