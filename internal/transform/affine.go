package transform

import (
	"github.com/chewxy/math32"
)

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float32) Matrix {
	t := Identity()
	t[12] = x
	t[13] = y
	t[14] = z
	return t
}

// Scale returns a scaling by (x, y, z).
func Scale(x, y, z float32) Matrix {
	t := Identity()
	t[0] = x
	t[5] = y
	t[10] = z
	return t
}

// ShearXY adds s*y to x.
func ShearXY(s float32) Matrix { return shear(4, s) }

// ShearYZ adds s*z to y.
func ShearYZ(s float32) Matrix { return shear(9, s) }

// ShearZX adds s*x to z.
func ShearZX(s float32) Matrix { return shear(2, s) }

// ShearYX adds s*x to y.
func ShearYX(s float32) Matrix { return shear(1, s) }

// ShearZY adds s*y to z.
func ShearZY(s float32) Matrix { return shear(6, s) }

// ShearXZ adds s*z to x.
func ShearXZ(s float32) Matrix { return shear(8, s) }

func shear(index int, s float32) Matrix {
	t := Identity()
	t[index] = s
	return t
}

// RotateX rotates by theta radians about the x axis.
func RotateX(theta float32) Matrix {
	c, s := math32.Cos(theta), math32.Sin(theta)
	t := Identity()
	t[5] = c
	t[6] = s
	t[9] = -s
	t[10] = c
	return t
}

// RotateY rotates by theta radians about the y axis.
func RotateY(theta float32) Matrix {
	c, s := math32.Cos(theta), math32.Sin(theta)
	t := Identity()
	t[0] = c
	t[2] = -s
	t[8] = s
	t[10] = c
	return t
}

// RotateZ rotates by theta radians about the z axis.
func RotateZ(theta float32) Matrix {
	c, s := math32.Cos(theta), math32.Sin(theta)
	t := Identity()
	t[0] = c
	t[1] = s
	t[4] = -s
	t[5] = c
	return t
}

// Rotate rotates by theta radians about the axis (x, y, z). The axis does not
// need to be normalized. A zero-length axis yields the identity.
func Rotate(theta, x, y, z float32) Matrix {
	t := Identity()
	d := math32.Sqrt(x*x + y*y + z*z)
	if d == 0 {
		return t
	}

	l, m, n := x/d, y/d, z/d
	l2, m2, n2 := l*l, m*m, n*n
	lm, mn, nl := l*m, m*n, n*l
	c, s := math32.Cos(theta), math32.Sin(theta)
	c1 := 1 - c

	t[0] = (1-l2)*c + l2
	t[1] = lm*c1 + n*s
	t[2] = nl*c1 - m*s
	t[4] = lm*c1 - n*s
	t[5] = (1-m2)*c + m2
	t[6] = mn*c1 + l*s
	t[8] = nl*c1 + m*s
	t[9] = mn*c1 - l*s
	t[10] = (1-n2)*c + n2
	return t
}
