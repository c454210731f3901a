package gosurf3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TransformPoint applies m to p with w = 1.
func TransformPoint(m mgl64.Mat4, p Vector3) Vector3 {
	return FromVec3(m.Mul4x1(p.Vec3().Vec4(1)).Vec3())
}

// TransformDirection applies m to d with w = 0, ignoring translation.
func TransformDirection(m mgl64.Mat4, d Vector3) Vector3 {
	return FromVec3(m.Mul4x1(d.Vec3().Vec4(0)).Vec3())
}

// NormalMatrix is the inverse transpose of modelView, which keeps normals
// perpendicular to surfaces under non-uniform transforms.
func NormalMatrix(modelView mgl64.Mat4) mgl64.Mat4 {
	return modelView.Inv().Transpose()
}

// AxisRotation rotates by angle radians about axis, which need not be unit
// length.
func AxisRotation(axis Vector3, angle float64) mgl64.Mat4 {
	return mgl64.HomogRotate3D(angle, axis.Vec3().Normalize())
}

// Translation returns the column-major translation of Translate3D.
func Translation(m mgl64.Mat4) Vector3 {
	return Vector3{m[12], m[13], m[14]}
}
