package softgfx

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// TransformType is a bit set classifying a Transform. An empty set is the
// identity.
type TransformType uint8

const (
	// TypeIdentity means the transform maps every point to itself.
	TypeIdentity TransformType = 0
	// TypeTranslate is set when the translation is non-zero.
	TypeTranslate TransformType = 1 << (iota - 1)
	// TypeScale is set when either scale factor differs from one.
	TypeScale
	// TypeRotate is set when either shear term is non-zero.
	TypeRotate

	// typeKnown marks a classified Transform; the zero value lacks it.
	typeKnown TransformType = 1 << 7
)

// String lists the set bits.
func (t TransformType) String() string {
	if t == TypeIdentity {
		return "identity"
	}
	s := ""
	for _, f := range []struct {
		bit  TransformType
		name string
	}{{TypeTranslate, "translate"}, {TypeScale, "scale"}, {TypeRotate, "rotate"}} {
		if t&f.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	return s
}

// Transform is a 2D affine transformation:
//
//	x' = scaleX*x + shearX*y + translateX
//	y' = shearY*x + scaleY*y + translateY
//
// Transform is a value type; every operation returns a new value and keeps
// the type classification in step with the coefficients. The zero value has
// all coefficients zero and is singular.
type Transform struct {
	scaleX, shearY, shearX, scaleY float64
	translateX, translateY         float64
	typ                            TransformType
}

// NewTransform returns the transform with the given coefficients.
func NewTransform(scaleX, shearY, shearX, scaleY, translateX, translateY float64) Transform {
	t := Transform{
		scaleX: scaleX, shearY: shearY,
		shearX: shearX, scaleY: scaleY,
		translateX: translateX, translateY: translateY,
	}
	t.typ = t.classify() | typeKnown
	return t
}

func (t Transform) classify() TransformType {
	var typ TransformType
	if t.translateX != 0 || t.translateY != 0 {
		typ |= TypeTranslate
	}
	if t.scaleX != 1 || t.scaleY != 1 {
		typ |= TypeScale
	}
	if t.shearX != 0 || t.shearY != 0 {
		typ |= TypeRotate
	}
	return typ
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{scaleX: 1, scaleY: 1, typ: typeKnown}
}

// TranslateTransform returns a translation.
func TranslateTransform(x, y float64) Transform {
	return NewTransform(1, 0, 0, 1, x, y)
}

// ScaleTransform returns a scale about the origin.
func ScaleTransform(sx, sy float64) Transform {
	return NewTransform(sx, 0, 0, sy, 0, 0)
}

// RotateTransform returns a rotation about the origin, angle in radians.
// Positive angles turn the x axis toward the y axis.
func RotateTransform(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return NewTransform(cos, sin, -sin, cos, 0, 0)
}

// ShearTransform returns a shear.
func ShearTransform(shx, shy float64) Transform {
	return NewTransform(1, shy, shx, 1, 0, 0)
}

// TransformFromAff3 converts an x/image affine matrix.
func TransformFromAff3(m f64.Aff3) Transform {
	return NewTransform(m[0], m[3], m[1], m[4], m[2], m[5])
}

// Aff3 returns t as an x/image affine matrix.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.scaleX, t.shearX, t.translateX,
		t.shearY, t.scaleY, t.translateY,
	}
}

// Type returns the classification of t.
func (t Transform) Type() TransformType {
	if t.typ&typeKnown == 0 {
		return t.classify()
	}
	return t.typ &^ typeKnown
}

// IsIdentity reports whether t is the identity.
func (t Transform) IsIdentity() bool { return t.Type() == TypeIdentity }

// ScaleX returns the x scale coefficient.
func (t Transform) ScaleX() float64 { return t.scaleX }

// ScaleY returns the y scale coefficient.
func (t Transform) ScaleY() float64 { return t.scaleY }

// ShearX returns the coefficient of y in x'.
func (t Transform) ShearX() float64 { return t.shearX }

// ShearY returns the coefficient of x in y'.
func (t Transform) ShearY() float64 { return t.shearY }

// TranslateX returns the x translation.
func (t Transform) TranslateX() float64 { return t.translateX }

// TranslateY returns the y translation.
func (t Transform) TranslateY() float64 { return t.translateY }

// Concatenate returns t·other: other is applied first, then t.
func (t Transform) Concatenate(other Transform) Transform {
	return NewTransform(
		t.scaleX*other.scaleX+t.shearX*other.shearY,
		t.shearY*other.scaleX+t.scaleY*other.shearY,
		t.scaleX*other.shearX+t.shearX*other.scaleY,
		t.shearY*other.shearX+t.scaleY*other.scaleY,
		t.scaleX*other.translateX+t.shearX*other.translateY+t.translateX,
		t.shearY*other.translateX+t.scaleY*other.translateY+t.translateY,
	)
}

// PreConcatenate returns other·t: t is applied first, then other.
func (t Transform) PreConcatenate(other Transform) Transform {
	return other.Concatenate(t)
}

// Translate returns t with a translation applied before it.
func (t Transform) Translate(x, y float64) Transform {
	return t.Concatenate(TranslateTransform(x, y))
}

// Scale returns t with a scale applied before it.
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Concatenate(ScaleTransform(sx, sy))
}

// Rotate returns t with a rotation applied before it.
func (t Transform) Rotate(angle float64) Transform {
	return t.Concatenate(RotateTransform(angle))
}

// RotateAbout returns t with a rotation about (x, y) applied before it.
func (t Transform) RotateAbout(angle, x, y float64) Transform {
	return t.Translate(x, y).Rotate(angle).Translate(-x, -y)
}

// Shear returns t with a shear applied before it.
func (t Transform) Shear(shx, shy float64) Transform {
	return t.Concatenate(ShearTransform(shx, shy))
}

// Determinant returns scaleX*scaleY - shearX*shearY.
func (t Transform) Determinant() float64 {
	return t.scaleX*t.scaleY - t.shearX*t.shearY
}

// Invert returns the inverse of t. ok is false, and the identity is
// returned, when t is singular.
func (t Transform) Invert() (inv Transform, ok bool) {
	det := t.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	return NewTransform(
		t.scaleY/det,
		-t.shearY/det,
		-t.shearX/det,
		t.scaleX/det,
		(t.shearX*t.translateY-t.scaleY*t.translateX)/det,
		(t.shearY*t.translateX-t.scaleX*t.translateY)/det,
	), true
}

// TransformPoint maps (x, y) through t.
func (t Transform) TransformPoint(x, y float64) (float64, float64) {
	return t.scaleX*x + t.shearX*y + t.translateX,
		t.shearY*x + t.scaleY*y + t.translateY
}

// TransformVector maps (x, y) through t ignoring translation.
func (t Transform) TransformVector(x, y float64) (float64, float64) {
	return t.scaleX*x + t.shearX*y, t.shearY*x + t.scaleY*y
}

// Bounds returns the device-space bounding box of the w×h rectangle at the
// origin.
func (t Transform) Bounds(w, h float64) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		x, y := t.TransformPoint(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY
}

// Equal reports whether t and other have identical coefficients.
func (t Transform) Equal(other Transform) bool {
	return t.scaleX == other.scaleX && t.shearY == other.shearY &&
		t.shearX == other.shearX && t.scaleY == other.scaleY &&
		t.translateX == other.translateX && t.translateY == other.translateY
}

// String formats the coefficients row by row.
func (t Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]",
		t.scaleX, t.shearX, t.translateX, t.shearY, t.scaleY, t.translateY)
}
