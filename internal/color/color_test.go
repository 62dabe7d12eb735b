package color

import "testing"

func TestPremultiply(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want uint32
	}{
		{"opaque unchanged", 0xff336699, 0xff336699},
		{"transparent to zero", 0x00ffffff, 0},
		{"half white", 0x80ffffff, 0x80808080},
		{"half red", 0x80ff0000, 0x80800000},
		{"rounding", 0x0a646464, 0x0a040404},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Premultiply(tt.in); got != tt.want {
				t.Errorf("Premultiply(%08x) = %08x, want %08x", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnpremultiplyClampsInvalid(t *testing.T) {
	// Colour above alpha is invalid premultiplied data.
	if got := Unpremultiply(0x10ff0000); got != 0x10ff0000 {
		t.Errorf("Unpremultiply = %08x, want %08x", got, uint32(0x10ff0000))
	}
}

// Every valid premultiplied pixel survives a trip through straight alpha.
func TestPremultipliedRoundTripExact(t *testing.T) {
	for a := uint32(1); a < 255; a++ {
		for c := uint32(0); c <= a; c++ {
			p := Pack(a, c, c, c)
			if got := Premultiply(Unpremultiply(p)); got != p {
				t.Fatalf("alpha %d channel %d: round trip %08x -> %08x", a, c, p, got)
			}
		}
	}
}

// Straight channels survive within one step once alpha leaves enough
// precision in the premultiplied value.
func TestStraightRoundTrip(t *testing.T) {
	for a := uint32(86); a <= 255; a++ {
		for c := uint32(0); c <= 255; c++ {
			p := Pack(a, c, 255-c, c/2)
			got := Unpremultiply(Premultiply(p))
			ga, gr, gg, gb := Unpack(got)
			if ga != a || absDiff(gr, c) > 1 || absDiff(gg, 255-c) > 1 || absDiff(gb, c/2) > 1 {
				t.Fatalf("alpha %d: %08x -> %08x", a, p, got)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		from, to Format
		in, want uint32
	}{
		{"argb to rgba", ARGB, RGBA, 0x80112233, 0x11223380},
		{"rgba to argb", RGBA, ARGB, 0x11223380, 0x80112233},
		{"argb to premultiplied", ARGB, ARGBPremultiplied, 0x80ff0000, 0x80800000},
		{"premultiplied to argb", ARGBPremultiplied, ARGB, 0x80800000, 0x80ff0000},
		{"rgba to premultiplied argb", RGBA, ARGBPremultiplied, 0xff000080, 0x80800000},
		{"premultiplied argb to premultiplied rgba", ARGBPremultiplied, RGBAPremultiplied, 0x80800000, 0x80000080},
		{"same format", RGBA, RGBA, 0x12345678, 0x12345678},
		{"unknown format", Format(9), ARGB, 0x12345678, 0x12345678},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := []uint32{tt.in}
			Convert(tt.from, tt.to, pix)
			if pix[0] != tt.want {
				t.Errorf("Convert = %08x, want %08x", pix[0], tt.want)
			}
		})
	}
}

func TestConvertDoesNotAllocate(t *testing.T) {
	pix := make([]uint32, 256)
	for i := range pix {
		pix[i] = uint32(i) * 0x01010101
	}
	allocs := testing.AllocsPerRun(10, func() {
		Convert(RGBA, ARGBPremultiplied, pix)
		Convert(ARGBPremultiplied, RGBA, pix)
	})
	if allocs != 0 {
		t.Errorf("Convert allocated %v times", allocs)
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func BenchmarkConvert(b *testing.B) {
	pix := make([]uint32, 4096)
	for i := range pix {
		pix[i] = uint32(i) * 2654435761
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Convert(RGBA, ARGBPremultiplied, pix)
	}
}
