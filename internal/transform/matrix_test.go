package transform_test

import (
	"math/rand"
	"testing"

	"glsample/internal/transform"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertMatrix(t *testing.T, want, got transform.Matrix, eps float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], float64(eps), "element %d (row %d, col %d)", i, i%4, i/4)
	}
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}

func randomMatrix(r *rand.Rand) transform.Matrix {
	var m transform.Matrix
	for i := range m {
		m[i] = r.Float32()*2 - 1
	}
	return m
}

func TestIdentityIsNeutral(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	id := transform.Identity()
	for n := 0; n < 20; n++ {
		m := randomMatrix(r)
		assertMatrix(t, m, id.Mul(m), tol)
		assertMatrix(t, m, m.Mul(id), tol)
	}
}

func TestIdentityLayout(t *testing.T) {
	id := transform.Identity()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			assert.Equal(t, want, id.At(row, col))
		}
	}
}

func TestMulAppliesRightOperandFirst(t *testing.T) {
	// scale then translate
	m := transform.Translate(1, 2, 3).Mul(transform.Scale(2, 2, 2))
	assertVec3(t, mgl32.Vec3{3, 4, 5}, m.MulPoint(mgl32.Vec3{1, 1, 1}))

	// translate then scale
	m = transform.Scale(2, 2, 2).Mul(transform.Translate(1, 2, 3))
	assertVec3(t, mgl32.Vec3{4, 6, 8}, m.MulPoint(mgl32.Vec3{1, 1, 1}))
}

func TestMulMatchesMathgl(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 20; n++ {
		a, b := randomMatrix(r), randomMatrix(r)
		want := transform.FromMat4(a.Mat4().Mul4(b.Mat4()))
		assertMatrix(t, want, a.Mul(b), tol)
	}
}

func TestMulIsAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 50; n++ {
		a, b, c := randomMatrix(r), randomMatrix(r), randomMatrix(r)
		assertMatrix(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), 1e-4)
	}
}

func TestMulDoesNotModifyOperands(t *testing.T) {
	a := transform.Translate(1, 2, 3)
	b := transform.Scale(4, 5, 6)
	aCopy, bCopy := a, b
	_ = a.Mul(b)
	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

func TestDataIsColumnMajor(t *testing.T) {
	m := transform.Translate(7, 8, 9)
	data := m.Data()
	require.Len(t, data, 16)
	assert.Equal(t, []float32{7, 8, 9, 1}, data[12:16])
	assert.Equal(t, &data[0], m.Ptr())
}

func TestMat4RoundTrip(t *testing.T) {
	m := transform.RotateX(0.3).Mul(transform.Translate(1, -2, 3))
	assert.Equal(t, m, transform.FromMat4(m.Mat4()))
	assert.Equal(t, mgl32.Translate3D(1, -2, 3), transform.Translate(1, -2, 3).Mat4())
}

func TestMulVec4KeepsW(t *testing.T) {
	v := transform.Translate(1, 2, 3).MulVec4(mgl32.Vec4{0, 0, 0, 0})
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 0}, v, "directions are not translated")
}

func TestApproxEqual(t *testing.T) {
	a := transform.Identity()
	b := a
	b[3] = 1e-7
	assert.True(t, a.ApproxEqual(b, 1e-6))
	b[3] = 1e-3
	assert.False(t, a.ApproxEqual(b, 1e-6))
}
