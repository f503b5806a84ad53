package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Matrix is a 4x4 transform stored column-major: column j, row i lives at index j*4+i.
// This is the layout glUniformMatrix4fv expects with transpose=false.
type Matrix [16]float32

// Identity returns the multiplicative identity.
func Identity() Matrix {
	var m Matrix
	m.loadIdentity()
	return m
}

func (m *Matrix) loadIdentity() {
	*m = Matrix{}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul returns m*n, the transform that applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	var t Matrix
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+i] * n[j*4+k]
			}
			t[j*4+i] = sum
		}
	}
	return t
}

// Data returns the coefficients as a flat column-major slice.
func (m *Matrix) Data() []float32 {
	return m[:]
}

// Ptr returns a pointer to the first coefficient for uniform upload.
func (m *Matrix) Ptr() *float32 {
	return &m[0]
}

// At returns the element in the given row and column.
func (m Matrix) At(row, col int) float32 {
	return m[col*4+row]
}

// Mat4 converts to the mathgl representation. Both are column-major so this is a copy.
func (m Matrix) Mat4() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

// FromMat4 converts a mathgl matrix.
func FromMat4(m mgl32.Mat4) Matrix {
	return Matrix(m)
}

// MulVec4 applies the transform to a homogeneous vector.
func (m Matrix) MulVec4(v mgl32.Vec4) mgl32.Vec4 {
	var out mgl32.Vec4
	for i := 0; i < 4; i++ {
		out[i] = m[i]*v[0] + m[4+i]*v[1] + m[8+i]*v[2] + m[12+i]*v[3]
	}
	return out
}

// MulPoint applies the transform to a point (w=1). When the result is projective
// the coordinates are divided by w.
func (m Matrix) MulPoint(p mgl32.Vec3) mgl32.Vec3 {
	v := m.MulVec4(mgl32.Vec4{p[0], p[1], p[2], 1})
	if v[3] != 0 && v[3] != 1 {
		return mgl32.Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return v.Vec3()
}

// ApproxEqual reports whether every coefficient of m and n differs by at most eps.
func (m Matrix) ApproxEqual(n Matrix, eps float32) bool {
	for i := range m {
		d := m[i] - n[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}
