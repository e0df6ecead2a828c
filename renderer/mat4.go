package renderer

import "math"

// Mat4 is a 4x4 transformation matrix stored in column-major order, the
// layout GLSL expects:
//
//	| m[0] m[4] m[8]  m[12] |
//	| m[1] m[5] m[9]  m[13] |
//	| m[2] m[6] m[10] m[14] |
//	| m[3] m[7] m[11] m[15] |
//
// The framework uses the column-vector convention throughout: a matrix
// multiplies a column vector on its right, and composing with Mul applies the
// receiver after the argument.
type Mat4 [16]float32

// Identity returns the identity transformation.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix moving points by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling returns a matrix scaling each axis independently. Negative factors
// mirror that axis.
func Scaling(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a right-handed rotation about the X axis (radians).
func RotationX(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a right-handed rotation about the Y axis (radians).
func RotationY(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a right-handed rotation about the Z axis (radians).
// With the identity projection this turns counter-clockwise on screen.
func RotationZ(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m × n: the transform that applies n first, then m.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

func sincos(angle float32) (s, c float32) {
	sf, cf := math.Sincos(float64(angle))
	return float32(sf), float32(cf)
}
