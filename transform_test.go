package softgfx

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestTransformType(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
		want TransformType
	}{
		{"identity", Identity(), TypeIdentity},
		{"translate", TranslateTransform(1, 2), TypeTranslate},
		{"zero translate", TranslateTransform(0, 0), TypeIdentity},
		{"scale", ScaleTransform(2, 3), TypeScale},
		{"unit scale", ScaleTransform(1, 1), TypeIdentity},
		{"rotate", RotateTransform(0.3), TypeScale | TypeRotate},
		{"shear", ShearTransform(0.5, 0), TypeRotate},
		{"translate then scale", TranslateTransform(3, 3).Scale(2, 2), TypeTranslate | TypeScale},
		{"round trip", TranslateTransform(4, 5).Translate(-4, -5), TypeIdentity},
		{"from coefficients", NewTransform(1, 0, 0, 1, 0, 7), TypeTranslate},
		{"zero value", Transform{}, TypeScale},
		{"collapsed", NewTransform(0, 0, 0, 0, 3, 4), TypeTranslate | TypeScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Type(); got != tt.want {
				t.Errorf("Type() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZeroTransformIsSingular(t *testing.T) {
	var z Transform
	if z.IsIdentity() {
		t.Error("zero value reports identity")
	}
	if d := z.Determinant(); d != 0 {
		t.Errorf("Determinant() = %v, want 0", d)
	}
	if _, ok := z.Invert(); ok {
		t.Error("zero value inverted")
	}
}

func TestTransformTypeString(t *testing.T) {
	if got := (TypeTranslate | TypeRotate).String(); got != "translate|rotate" {
		t.Errorf("String() = %q", got)
	}
	if got := TypeIdentity.String(); got != "identity" {
		t.Errorf("String() = %q", got)
	}
}

// The operation added last is applied to points first.
func TestConcatenateOrder(t *testing.T) {
	m := Identity().Translate(3, 3).Scale(2, 2)
	x, y := m.TransformPoint(10, 10)
	if x != 23 || y != 23 {
		t.Errorf("TransformPoint(10,10) = (%v,%v), want (23,23)", x, y)
	}
	x, y = m.PreConcatenate(TranslateTransform(1, 0)).TransformPoint(0, 0)
	if x != 4 || y != 3 {
		t.Errorf("PreConcatenate result maps origin to (%v,%v), want (4,3)", x, y)
	}
}

func TestInvert(t *testing.T) {
	m := Identity().Translate(5, -2).Rotate(0.7).Scale(1.5, 0.25).Shear(0.2, 0)
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert failed")
	}
	x, y := m.TransformPoint(3, 4)
	x, y = inv.TransformPoint(x, y)
	if math.Abs(x-3) > 1e-9 || math.Abs(y-4) > 1e-9 {
		t.Errorf("round trip = (%v,%v), want (3,4)", x, y)
	}
	if _, ok := ScaleTransform(0, 1).Invert(); ok {
		t.Error("singular transform inverted")
	}
}

func TestRotateAbout(t *testing.T) {
	m := RotateTransform(0).RotateAbout(math.Pi/2, 5, 5)
	x, y := m.TransformPoint(6, 5)
	if math.Abs(x-5) > 1e-12 || math.Abs(y-6) > 1e-12 {
		t.Errorf("RotateAbout maps (6,5) to (%v,%v), want (5,6)", x, y)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	x, y := TranslateTransform(100, 100).Scale(2, 3).TransformVector(1, 1)
	if x != 2 || y != 3 {
		t.Errorf("TransformVector = (%v,%v), want (2,3)", x, y)
	}
}

func TestBounds(t *testing.T) {
	minX, minY, maxX, maxY := RotateTransform(math.Pi/2).Bounds(4, 2)
	if math.Abs(minX+2) > 1e-12 || math.Abs(minY) > 1e-12 || math.Abs(maxX) > 1e-12 || math.Abs(maxY-4) > 1e-12 {
		t.Errorf("Bounds = %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestAff3RoundTrip(t *testing.T) {
	m := NewTransform(1, 2, 3, 4, 5, 6)
	a := m.Aff3()
	want := f64.Aff3{1, 3, 5, 2, 4, 6}
	if a != want {
		t.Errorf("Aff3() = %v, want %v", a, want)
	}
	if back := TransformFromAff3(a); !back.Equal(m) || back.Type() != m.Type() {
		t.Errorf("TransformFromAff3 = %v, want %v", back, m)
	}
}

func TestDeterminant(t *testing.T) {
	if d := ScaleTransform(2, 3).Determinant(); d != 6 {
		t.Errorf("Determinant = %v, want 6", d)
	}
}
