package bindings

import "fmt"

// Vector3 matches the native script layout: three floats, each padded
// out to a full 8-byte slot. Natives that return coordinates produce
// this shape in the result area, and natives taking a Vector3* expect
// it, so the padding fields are load-bearing; do not reorder or remove
// them.
type Vector3 struct {
	X float32
	_ [4]byte
	Y float32
	_ [4]byte
	Z float32
	_ [4]byte
}

// Vec3 builds a Vector3 from plain components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
