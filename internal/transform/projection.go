package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LookAt builds a view matrix for a camera at eye looking toward target with
// the given up direction. The result is the basis rotation times Translate(-eye).
// If eye, target and up are collinear only the translation is returned.
func LookAt(eye, target, up mgl32.Vec3) Matrix {
	tv := Translate(-eye[0], -eye[1], -eye[2])

	// t axis points from the target back to the eye
	tx := eye[0] - target[0]
	ty := eye[1] - target[1]
	tz := eye[2] - target[2]

	// r = up x t
	rx := up[1]*tz - up[2]*ty
	ry := up[2]*tx - up[0]*tz
	rz := up[0]*ty - up[1]*tx

	// s = t x r
	sx := ty*rz - tz*ry
	sy := tz*rx - tx*rz
	sz := tx*ry - ty*rx

	s2 := sx*sx + sy*sy + sz*sz
	r2 := rx*rx + ry*ry + rz*rz
	if s2 == 0 || r2 == 0 {
		return tv
	}

	rv := Identity()

	r := math32.Sqrt(r2)
	rv[0] = rx / r
	rv[4] = ry / r
	rv[8] = rz / r

	s := math32.Sqrt(s2)
	rv[1] = sx / s
	rv[5] = sy / s
	rv[9] = sz / s

	t := math32.Sqrt(tx*tx + ty*ty + tz*tz)
	rv[2] = tx / t
	rv[6] = ty / t
	rv[10] = tz / t

	return rv.Mul(tv)
}

// Orthogonal returns an orthographic projection of the given box onto clip space.
// Any zero span yields the identity.
func Orthogonal(left, right, bottom, top, zNear, zFar float32) Matrix {
	t := Identity()
	dx := right - left
	dy := top - bottom
	dz := zFar - zNear
	if dx == 0 || dy == 0 || dz == 0 {
		return t
	}

	t[0] = 2 / dx
	t[5] = 2 / dy
	t[10] = -2 / dz
	t[12] = -(right + left) / dx
	t[13] = -(top + bottom) / dy
	t[14] = -(zFar + zNear) / dz
	return t
}

// Frustum returns an off-axis perspective projection. Any zero span yields the identity.
func Frustum(left, right, bottom, top, zNear, zFar float32) Matrix {
	t := Identity()
	dx := right - left
	dy := top - bottom
	dz := zFar - zNear
	if dx == 0 || dy == 0 || dz == 0 {
		return t
	}

	t[0] = 2 * zNear / dx
	t[5] = 2 * zNear / dy
	t[8] = (right + left) / dx
	t[9] = (top + bottom) / dy
	t[10] = -(zFar + zNear) / dz
	t[11] = -1
	t[14] = -2 * zFar * zNear / dz
	t[15] = 0
	return t
}

// Perspective returns a symmetric perspective projection for a vertical field
// of view fovy (radians) and aspect ratio width/height. A zero depth span, zero
// aspect or zero field of view yields the identity.
func Perspective(fovy, aspect, zNear, zFar float32) Matrix {
	t := Identity()
	dz := zFar - zNear
	tn := math32.Tan(fovy * 0.5)
	if dz == 0 || aspect == 0 || tn == 0 {
		return t
	}

	t[5] = 1 / tn
	t[0] = t[5] / aspect
	t[10] = -(zFar + zNear) / dz
	t[11] = -1
	t[14] = -2 * zFar * zNear / dz
	t[15] = 0
	return t
}
