package transform_test

import (
	"math"
	"testing"

	"glsample/internal/transform"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTranslateMovesOrigin(t *testing.T) {
	got := transform.Translate(1.5, -2, 3).MulPoint(mgl32.Vec3{})
	assertVec3(t, mgl32.Vec3{1.5, -2, 3}, got)
}

func TestTranslateRoundTrip(t *testing.T) {
	m := transform.Translate(3, -4, 5).Mul(transform.Translate(-3, 4, -5))
	assertMatrix(t, transform.Identity(), m, tol)
}

func TestScaleUnitPoint(t *testing.T) {
	got := transform.Scale(2, 3, -4).MulPoint(mgl32.Vec3{1, 1, 1})
	assertVec3(t, mgl32.Vec3{2, 3, -4}, got)
}

func TestShear(t *testing.T) {
	tests := []struct {
		name  string
		m     transform.Matrix
		index int
		in    mgl32.Vec3
		want  mgl32.Vec3
	}{
		{"xy", transform.ShearXY(2), 4, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{3, 1, 1}},
		{"yz", transform.ShearYZ(2), 9, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 3, 1}},
		{"zx", transform.ShearZX(2), 2, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 3}},
		{"yx", transform.ShearYX(2), 1, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 3, 1}},
		{"zy", transform.ShearZY(2), 6, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 3}},
		{"xz", transform.ShearXZ(2), 8, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{3, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := transform.Identity()
			want[tt.index] = 2
			assert.Equal(t, want, tt.m, "exactly one off-diagonal element is set")
			assertVec3(t, tt.want, tt.m.MulPoint(tt.in))
		})
	}
}

func TestShearOnlyUsesSourceAxis(t *testing.T) {
	// x += s*y must not react to z
	assertVec3(t, mgl32.Vec3{0, 0, 1}, transform.ShearXY(5).MulPoint(mgl32.Vec3{0, 0, 1}))
}

func TestRotateZUnitX(t *testing.T) {
	for _, theta := range []float32{0, 0.25, math.Pi / 2, 2, math.Pi, -1.2} {
		got := transform.RotateZ(theta).MulPoint(mgl32.Vec3{1, 0, 0})
		c, s := float32(math.Cos(float64(theta))), float32(math.Sin(float64(theta)))
		assertVec3(t, mgl32.Vec3{c, s, 0}, got)
	}
}

func TestPrincipalRotationsAreRightHanded(t *testing.T) {
	quarter := float32(math.Pi / 2)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, transform.RotateX(quarter).MulPoint(mgl32.Vec3{0, 1, 0}))
	assertVec3(t, mgl32.Vec3{1, 0, 0}, transform.RotateY(quarter).MulPoint(mgl32.Vec3{0, 0, 1}))
	assertVec3(t, mgl32.Vec3{0, 1, 0}, transform.RotateZ(quarter).MulPoint(mgl32.Vec3{1, 0, 0}))
}

func TestPrincipalRotationsMatchMathgl(t *testing.T) {
	for _, theta := range []float32{-2.5, -0.7, 0, 0.3, 1.1, 3} {
		assertMatrix(t, transform.FromMat4(mgl32.HomogRotate3DX(theta)), transform.RotateX(theta), tol)
		assertMatrix(t, transform.FromMat4(mgl32.HomogRotate3DY(theta)), transform.RotateY(theta), tol)
		assertMatrix(t, transform.FromMat4(mgl32.HomogRotate3DZ(theta)), transform.RotateZ(theta), tol)
	}
}

func TestRotateAboutPrincipalAxes(t *testing.T) {
	for _, theta := range []float32{-3, -1, 0, 0.5, 1.7, 4} {
		assertMatrix(t, transform.RotateX(theta), transform.Rotate(theta, 1, 0, 0), tol)
		assertMatrix(t, transform.RotateY(theta), transform.Rotate(theta, 0, 1, 0), tol)
		assertMatrix(t, transform.RotateZ(theta), transform.Rotate(theta, 0, 0, 1), tol)
	}
}

func TestRotateNormalizesAxis(t *testing.T) {
	assertMatrix(t, transform.RotateY(0.8), transform.Rotate(0.8, 0, 12, 0), tol)

	axis := mgl32.Vec3{1, 2, 3}
	want := transform.FromMat4(mgl32.HomogRotate3D(0.6, axis.Normalize()))
	assertMatrix(t, want, transform.Rotate(0.6, 1, 2, 3), tol)
}

func TestRotateZeroAxisIsIdentity(t *testing.T) {
	assert.Equal(t, transform.Identity(), transform.Rotate(1.234, 0, 0, 0))
}

func TestRotateLeavesAxisFixed(t *testing.T) {
	got := transform.Rotate(2.2, 1, 1, 1).MulPoint(mgl32.Vec3{2, 2, 2})
	assertVec3(t, mgl32.Vec3{2, 2, 2}, got)
}
