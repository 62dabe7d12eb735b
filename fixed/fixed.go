// Package fixed provides 16.16 signed fixed-point arithmetic.
//
// All per-pixel stepping in softgfx is done in this format: the upper 16 bits
// hold the signed integer part and the lower 16 bits the fraction. Products
// and quotients use 64-bit intermediates so they never overflow before the
// final narrowing.
package fixed

import (
	"fmt"
	"math"
)

// Fixed is a 16.16 fixed-point number.
type Fixed int32

// Fixed-point constants.
const (
	// Shift is the number of fractional bits.
	Shift = 16
	// One represents 1.0 (65536).
	One Fixed = 1 << Shift
	// Half represents 0.5.
	Half Fixed = One >> 1
	// FracMask extracts the fractional bits.
	FracMask Fixed = One - 1
	// MaxValue is the largest representable value (just under 32768.0).
	MaxValue Fixed = math.MaxInt32
	// MinValue is the smallest representable value (-32768.0).
	MinValue Fixed = math.MinInt32
)

// FromInt converts an integer, saturating outside [-32768, 32767].
func FromInt(i int) Fixed {
	switch {
	case i > int(MaxValue>>Shift):
		return MaxValue
	case i < int(MinValue>>Shift):
		return MinValue
	}
	return Fixed(i << Shift)
}

// FromFloat converts a float64 rounding to the nearest representable value.
// Values outside the range saturate; NaN converts to zero.
func FromFloat(f float64) Fixed {
	if f != f {
		return 0
	}
	v := math.Round(f * float64(One))
	switch {
	case v >= float64(MaxValue):
		return MaxValue
	case v <= float64(MinValue):
		return MinValue
	}
	return Fixed(v)
}

// Float returns the value as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / float64(One)
}

// Floor returns the largest integer not greater than f.
func (f Fixed) Floor() int {
	return int(f >> Shift)
}

// Ceil returns the smallest integer not less than f.
func (f Fixed) Ceil() int {
	return int((int64(f) + int64(FracMask)) >> Shift)
}

// Round returns the nearest integer, rounding halves up.
func (f Fixed) Round() int {
	return int((int64(f) + int64(Half)) >> Shift)
}

// Trunc returns the integer part, rounding toward zero.
func (f Fixed) Trunc() int {
	if f < 0 {
		return -int((-int64(f)) >> Shift)
	}
	return int(f >> Shift)
}

// Frac returns the fraction above Floor, always in [0, One).
func (f Fixed) Frac() Fixed {
	return f & FracMask
}

// String formats the value as a decimal number.
func (f Fixed) String() string {
	return fmt.Sprintf("%g", f.Float())
}

// Mul returns a*b.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> Shift)
}

// Div returns a/b. b must not be zero.
func Div(a, b Fixed) Fixed {
	return Fixed((int64(a) << Shift) / int64(b))
}

// MulDiv returns a*b/c with a 64-bit intermediate product. c must not be zero.
func MulDiv(a, b, c Fixed) Fixed {
	return Fixed(int64(a) * int64(b) / int64(c))
}

// Abs returns the absolute value of f.
func Abs(f Fixed) Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Min returns the smaller of a and b.
func Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}
