package frost

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Transform is a 2D affine transformation in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// A point (x, y) maps to (A*x + B*y + C, D*x + E*y + F).
// The compositor only builds scale and translation transforms, but hosts
// receive a general affine value.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Transform {
	return Transform{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scale by (x, y) around the origin.
func Scale(x, y float64) Transform {
	return Transform{A: x, E: y}
}

// Multiply returns t * other: the result applies other first, then t.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Apply maps the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

// Invert returns the inverse transform.
// Returns false if the transform is singular.
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-12 {
		return Transform{}, false
	}

	inv := 1 / det
	return Transform{
		A: t.E * inv,
		B: -t.B * inv,
		C: (t.B*t.F - t.C*t.E) * inv,
		D: -t.D * inv,
		E: t.A * inv,
		F: (t.C*t.D - t.A*t.F) * inv,
	}, true
}

// IsScaleTranslate reports whether t has no rotation or shear.
func (t Transform) IsScaleTranslate() bool {
	return t.B == 0 && t.D == 0
}

// Aff3 converts t to the matrix type used by golang.org/x/image/draw.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
}
