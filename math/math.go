// Package math holds the small float32 helpers shared by the camera, the
// light and the render passes. Vector and matrix types come from mgl32.
package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	Vec3Zero = mgl32.Vec3{0, 0, 0}
	Vec3Up   = mgl32.Vec3{0, 1, 0}
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// Remap linearly maps v from [inMin, inMax] into [outMin, outMax].
func Remap(v, inMin, inMax, outMin, outMax float32) float32 {
	return (v-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of m.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}

// StripTranslation keeps only the rotation/scale part of a view matrix so
// that geometry drawn with it stays centred on the eye (skyboxes).
func StripTranslation(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// IsOrthographic reports whether a projection matrix is orthographic.
// Perspective matrices carry -1 in column 2, row 3 and 0 at w.
func IsOrthographic(proj mgl32.Mat4) bool {
	return proj.At(3, 2) == 0 && proj.At(3, 3) == 1
}

// HalfFOVToFull converts a half-angle field of view (radians) into the
// equivalent full vertical angle for the given aspect ratio.
func HalfFOVToFull(halfFOV, aspect float32) float32 {
	return 2 * math32.Atan(math32.Tan(halfFOV*0.5)/aspect)
}
